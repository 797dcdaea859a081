// Command gol-run advances a pattern headlessly and writes the result in
// plaintext .cells format.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"mad-gol/internal/app"
	"mad-gol/internal/logging"
	"mad-gol/internal/rules"
	"mad-gol/pkg/golstate"
	"mad-gol/pkg/pattern"
)

type options struct {
	in          string
	out         string
	generations uint
	rule        string
	engine      string
	maxPop      int
	fit         bool
}

func main() {
	var o options
	flag.StringVar(&o.in, "in", "glider", "built-in pattern name or .cells file")
	flag.StringVar(&o.out, "out", "-", "output .cells file, - for stdout")
	flag.UintVar(&o.generations, "generations", 100, "generations to advance")
	flag.StringVar(&o.rule, "rule", "B3/S23", "rule notation")
	flag.StringVar(&o.engine, "engine", "hashed", "stepping engine: hashed or simple")
	flag.IntVar(&o.maxPop, "max-population", 0, "abort past this many live cells (0 = unlimited)")
	flag.BoolVar(&o.fit, "fit", false, "write the live bounding box instead of the input window")
	level := flag.String("log-level", "info", "zerolog level")
	flag.Parse()

	log := logging.New(os.Stderr, *level, true)
	if err := run(o, log); err != nil {
		log.Fatal().Err(err).Msg("gol-run failed")
	}
}

func run(o options, log zerolog.Logger) error {
	cfg := rules.DefaultConfig(o.rule)
	cfg.Engine = o.engine
	cfg.Wrap = false
	cfg.MaxPopulation = o.maxPop
	sim, err := cfg.Build(golstate.WithLogger(log))
	if err != nil {
		return err
	}

	start, err := app.LoadPattern(o.in)
	if err != nil {
		return err
	}
	state := golstate.FromSparse(start)
	log.Info().Str("in", o.in).Int("population", start.Len()).Msg("loaded")

	began := time.Now()
	if err := sim.Simulate(state, o.generations); err != nil {
		return eris.Wrapf(err, "simulate %d generations", o.generations)
	}
	final := state.Sparse()
	log.Info().
		Uint("generations", o.generations).
		Int("population", final.Len()).
		Dur("elapsed", time.Since(began)).
		Msg("done")

	if o.fit {
		state.SetViewport(final.Bounds())
	}

	var w io.Writer = os.Stdout
	if o.out != "-" {
		f, err := os.Create(o.out)
		if err != nil {
			return eris.Wrap(err, "create output")
		}
		defer f.Close()
		w = f
	}
	vp := state.Viewport()
	return pattern.Write(w, state.Dense(),
		fmt.Sprintf("Name: %s after %d generations", o.in, o.generations),
		fmt.Sprintf("Rule: %s", cfg.Rule),
		fmt.Sprintf("Origin: %d,%d", vp.Origin.X, vp.Origin.Y),
	)
}
