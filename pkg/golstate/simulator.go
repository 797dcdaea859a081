package golstate

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"mad-gol/pkg/grid"
	"mad-gol/pkg/sims/life"
)

// ErrNoEngine is returned by Simulate when the Simulator was built without an
// engine.
var ErrNoEngine = eris.New("simulator has no engine")

// HashedEngine advances an unbounded sparse grid.
type HashedEngine interface {
	Simulate(state grid.Sparse, generations uint) (grid.Sparse, error)
}

// SimpleEngine advances a bounded dense grid.
type SimpleEngine interface {
	Simulate(state grid.Dense, generations uint) (grid.Dense, error)
}

// Simulator feeds a State to a stepping engine in the engine's native
// representation and stores the result back.
type Simulator struct {
	hashed HashedEngine
	simple SimpleEngine
	log    zerolog.Logger
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger routes step diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

// NewSimulator drives a sparse engine. States end up sparse after each step.
func NewSimulator(engine HashedEngine, opts ...Option) *Simulator {
	s := &Simulator{hashed: engine, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSimpleSimulator drives a dense engine. States end up dense after each step.
func NewSimpleSimulator(engine SimpleEngine, opts ...Option) *Simulator {
	s := &Simulator{simple: engine, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewGOLSimulator returns a Simulator running Conway's rules on the unbounded
// sparse engine.
func NewGOLSimulator(opts ...Option) *Simulator {
	return NewSimulator(life.NewHashed(life.GameOfLife), opts...)
}

// Native reports the representation the engine consumes and produces.
func (s *Simulator) Native() Kind {
	if s.hashed != nil {
		return KindSparse
	}
	return KindDense
}

// Simulate advances state by the given number of generations. On success the
// state holds the engine's output and its revision grows by one, even for zero
// generations. On failure the engine's error is returned as is and state is
// left untouched.
func (s *Simulator) Simulate(state *State, generations uint) error {
	if s == nil || (s.hashed == nil && s.simple == nil) {
		return ErrNoEngine
	}
	before := state.Kind()
	if s.hashed != nil {
		out, err := s.hashed.Simulate(state.sparseState().Clone(), generations)
		if err != nil {
			s.log.Warn().Err(err).Uint("generations", generations).Msg("hashed step failed")
			return err
		}
		state.setSparse(out)
		s.log.Debug().
			Uint("generations", generations).
			Stringer("from", before).
			Int("population", out.Len()).
			Uint64("revision", state.Revision()).
			Msg("hashed step")
		return nil
	}

	out, err := s.simple.Simulate(state.denseState().Clone(), generations)
	if err != nil {
		s.log.Warn().Err(err).Uint("generations", generations).Msg("simple step failed")
		return err
	}
	state.setDense(out)
	s.log.Debug().
		Uint("generations", generations).
		Stringer("from", before).
		Int("population", out.Population()).
		Uint64("revision", state.Revision()).
		Msg("simple step")
	return nil
}
