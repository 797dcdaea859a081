package golstate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-gol/pkg/core"
	"mad-gol/pkg/grid"
	"mad-gol/pkg/sims/life"
)

var errEngine = eris.New("engine exploded")

type failingHashed struct{ calls int }

func (f *failingHashed) Simulate(state grid.Sparse, generations uint) (grid.Sparse, error) {
	f.calls++
	// Scribble on the input to prove the state handed it a private copy.
	state.Set(core.Pt(99, 99), grid.Active)
	return grid.Sparse{}, errEngine
}

type failingSimple struct{}

func (failingSimple) Simulate(state grid.Dense, generations uint) (grid.Dense, error) {
	return grid.Dense{}, errEngine
}

func TestSimulateZeroGenerationsSwitchesToSparse(t *testing.T) {
	s := newBacked(KindDense, core.R(0, 0, 3, 3), core.Pt(0, 0), core.Pt(1, 2))
	before := s.Dense()

	require.NoError(t, NewGOLSimulator().Simulate(s, 0))

	assert.Equal(t, KindSparse, s.Kind())
	assert.Equal(t, uint64(1), s.Revision())
	assert.Equal(t, before.Viewport(), s.Viewport())
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			p := core.Pt(x, y)
			assert.Equal(t, before.Get(p).Alive(), s.Cell(p), "cell %v", p)
		}
	}
}

func TestSimulateBlinker(t *testing.T) {
	s := New()
	s.SetViewport(core.R(0, 0, 5, 5))
	s.SetCell(true, core.Pt(1, 2))
	s.SetCell(true, core.Pt(2, 2))
	s.SetCell(true, core.Pt(3, 2))
	rev := s.Revision()

	sim := NewGOLSimulator()
	require.NoError(t, sim.Simulate(s, 1))
	assert.Equal(t, rev+1, s.Revision())
	assert.True(t, s.Cell(core.Pt(2, 1)))
	assert.True(t, s.Cell(core.Pt(2, 3)))
	assert.False(t, s.Cell(core.Pt(1, 2)))

	require.NoError(t, sim.Simulate(s, 2))
	assert.True(t, s.Cell(core.Pt(2, 1)))
	assert.Equal(t, rev+2, s.Revision())
}

func TestSimulateFailureLeavesStateUntouched(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := newBacked(kind, core.R(0, 0, 3, 3), core.Pt(1, 1))
			engine := &failingHashed{}

			err := NewSimulator(engine).Simulate(s, 5)
			assert.ErrorIs(t, err, errEngine)
			assert.Equal(t, 1, engine.calls)
			assert.Equal(t, kind, s.Kind())
			assert.Equal(t, uint64(0), s.Revision())
			assert.True(t, s.Cell(core.Pt(1, 1)))
			assert.False(t, s.Cell(core.Pt(99, 99)))
		})
	}
}

func TestSimulatePropagatesRuleErrors(t *testing.T) {
	s := newBacked(KindSparse, core.R(0, 0, 3, 3), core.Pt(1, 1))
	sim := NewSimulator(life.NewHashed(life.MustParseRule("B0/S8")))

	err := sim.Simulate(s, 1)
	assert.ErrorIs(t, err, life.ErrUnboundedRule)
	assert.Equal(t, uint64(0), s.Revision())

	// Retrying after a failure is safe.
	require.NoError(t, NewGOLSimulator().Simulate(s, 1))
	assert.Equal(t, uint64(1), s.Revision())
}

func TestSimpleSimulatorKeepsDense(t *testing.T) {
	s := newBacked(KindSparse, core.R(0, 0, 5, 5), core.Pt(2, 1), core.Pt(2, 2), core.Pt(2, 3))
	sim := NewSimpleSimulator(life.NewSimple(life.GameOfLife, false))
	assert.Equal(t, KindDense, sim.Native())

	require.NoError(t, sim.Simulate(s, 1))
	assert.Equal(t, KindDense, s.Kind())
	assert.Equal(t, uint64(1), s.Revision())
	assert.True(t, s.Cell(core.Pt(1, 2)))
	assert.True(t, s.Cell(core.Pt(3, 2)))
	assert.False(t, s.Cell(core.Pt(2, 1)))
}

func TestSimpleSimulatorFailure(t *testing.T) {
	s := newBacked(KindSparse, core.R(0, 0, 2, 2), core.Pt(0, 0))
	err := NewSimpleSimulator(failingSimple{}).Simulate(s, 1)
	assert.ErrorIs(t, err, errEngine)
	assert.Equal(t, KindSparse, s.Kind())
	assert.Equal(t, uint64(0), s.Revision())
}

func TestSimulateWithoutEngine(t *testing.T) {
	for name, sim := range map[string]*Simulator{
		"nil engine": NewSimulator(nil),
		"zero value": {},
	} {
		t.Run(name, func(t *testing.T) {
			s := newBacked(KindDense, core.R(0, 0, 3, 3), core.Pt(1, 1))
			err := sim.Simulate(s, 1)
			require.Error(t, err)
			assert.True(t, eris.Is(err, ErrNoEngine))
			assert.Equal(t, uint64(0), s.Revision())
			assert.Equal(t, KindDense, s.Kind())
		})
	}
}

func TestSimulateLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	s := newBacked(KindDense, core.R(0, 0, 2, 2), core.Pt(0, 0))
	require.NoError(t, NewGOLSimulator(WithLogger(logger)).Simulate(s, 3))
	assert.True(t, strings.Contains(buf.String(), `"message":"hashed step"`), buf.String())
	assert.True(t, strings.Contains(buf.String(), `"from":"dense"`), buf.String())

	buf.Reset()
	_ = NewSimulator(&failingHashed{}, WithLogger(logger)).Simulate(s, 1)
	assert.True(t, strings.Contains(buf.String(), `"level":"warn"`), buf.String())
}
