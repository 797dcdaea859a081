//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"mad-gol/internal/app"
	"mad-gol/internal/logging"
)

func main() {
	boot := logging.New(os.Stderr, "info", true)
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		boot.Fatal().Err(err).Msg("bad environment")
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logging.New(os.Stderr, cfg.LogLevel, cfg.PrettyLog)
	session, err := cfg.NewSession(log)
	if err != nil {
		log.Fatal().Err(err).Msg("could not start session")
	}

	game := app.New(session, cfg.Scale, cfg.Seed, log)
	vp := session.Viewport()
	w, h := game.Layout(vp.Size.W*cfg.Scale, vp.Size.H*cfg.Scale)

	ebiten.SetWindowTitle("mad-gol: " + session.Name() + " " + cfg.Notation())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game exited")
	}
}
