package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"mad-gol/internal/app"
	"mad-gol/internal/logging"
	"mad-gol/internal/term"
)

// openLog returns the log sink for path. An empty path discards logs since
// the viewer owns the terminal.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func main() {
	boot := logging.New(os.Stderr, "info", true)
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		boot.Fatal().Err(err).Msg("bad environment")
	}
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log-file", "", "write logs here; the terminal is owned by the viewer")
	flag.Parse()

	out, closeLog, err := openLog(*logFile)
	if err != nil {
		boot.Fatal().Err(err).Msg("open log file")
	}
	defer closeLog()
	log := logging.New(out, cfg.LogLevel, false)

	session, err := cfg.NewSession(log)
	if err != nil {
		boot.Fatal().Err(err).Msg("could not start session")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		boot.Fatal().Err(err).Msg("no terminal")
	}
	if err := screen.Init(); err != nil {
		boot.Fatal().Err(err).Msg("init terminal")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	viewer := term.New(screen, session, cfg.TPS, cfg.Seed, log)
	err = viewer.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("viewer exited")
		os.Exit(1)
	}
}
