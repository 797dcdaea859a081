// Command gol-sweep cross-checks the sparse and dense engines on random soups.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"mad-gol/internal/logging"
	"mad-gol/pkg/core"
	"mad-gol/pkg/grid"
	"mad-gol/pkg/sims/life"
)

type sweepConfig struct {
	rule    life.Rule
	size    int
	density float64
	steps   int
}

type seedResult struct {
	seed       int64
	start      int
	hashed     int
	simple     int
	mismatches int
	elapsed    time.Duration
}

func main() {
	seeds := flag.Int("seeds", 32, "number of random soups to check")
	first := flag.Int64("first-seed", 1, "seed of the first soup")
	steps := flag.Int("steps", 64, "generations to simulate per soup")
	size := flag.Int("size", 48, "soup width and height")
	density := flag.Float64("density", 0.35, "fraction of live cells in each soup")
	notation := flag.String("rule", "B3/S23", "rule notation")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	level := flag.String("log-level", "info", "zerolog level")
	flag.Parse()

	log := logging.New(os.Stderr, *level, true)
	rule, err := life.ParseRule(*notation)
	if err != nil {
		log.Fatal().Err(err).Msg("bad rule")
	}
	cfg := sweepConfig{rule: rule, size: *size, density: *density, steps: *steps}

	fmt.Printf("Sweeping %d soups of %dx%d (%d workers, %d steps, rule %s)\n",
		*seeds, *size, *size, *workers, *steps, rule)

	start := time.Now()
	results, err := sweep(context.Background(), cfg, *first, *seeds, *workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("sweep failed")
	}

	failed := 0
	for _, res := range results {
		status := "ok"
		if res.mismatches > 0 {
			status = fmt.Sprintf("MISMATCH %d cells", res.mismatches)
			failed++
		}
		fmt.Printf("seed=%-6d start=%-5d hashed=%-5d simple=%-5d %-8s %s\n",
			res.seed, res.start, res.hashed, res.simple, res.elapsed.Round(time.Millisecond), status)
	}
	fmt.Printf("\n%d/%d soups agree (elapsed %s)\n", len(results)-failed, len(results), time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}

// sweep checks count soups starting at seed first, at most workers at a time.
// Results are returned in seed order.
func sweep(ctx context.Context, cfg sweepConfig, first int64, count, workers int, log zerolog.Logger) ([]seedResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]seedResult, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runSeed(cfg, first+int64(i))
			if err != nil {
				return err
			}
			log.Debug().Int64("seed", res.seed).Int("mismatches", res.mismatches).Msg("seed checked")
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runSeed evolves one soup with both engines. The dense run gets steps cells
// of dead padding per side so its edges cannot influence the compared window.
func runSeed(cfg sweepConfig, seed int64) (seedResult, error) {
	began := time.Now()
	window := core.R(0, 0, cfg.size, cfg.size)
	soup := grid.NewDense(window)
	core.FillBinary(core.NewRNG(seed), soup.Cells(), cfg.density)

	hashedOut, err := life.NewHashed(cfg.rule).Simulate(grid.ToSparse(soup), uint(cfg.steps))
	if err != nil {
		return seedResult{}, err
	}

	pad := cfg.steps
	padded := soup.Subrange(core.R(-pad, -pad, cfg.size+2*pad, cfg.size+2*pad))
	simpleOut, err := life.NewSimple(cfg.rule, false).Simulate(padded, uint(cfg.steps))
	if err != nil {
		return seedResult{}, err
	}

	res := seedResult{
		seed:    seed,
		start:   soup.Population(),
		hashed:  hashedOut.Subrange(window).Len(),
		simple:  simpleOut.Subrange(window).Population(),
		elapsed: time.Since(began),
	}
	for y := 0; y < window.Size.H; y++ {
		for x := 0; x < window.Size.W; x++ {
			p := window.At(x, y)
			if hashedOut.Get(p) != simpleOut.Get(p) {
				res.mismatches++
			}
		}
	}
	return res, nil
}
