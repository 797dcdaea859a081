package life

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-gol/pkg/core"
	"mad-gol/pkg/grid"
)

func sparseOf(viewport core.Rect, pts ...core.Point) grid.Sparse {
	s := grid.NewSparse(viewport)
	for _, p := range pts {
		s.Set(p, grid.Active)
	}
	return s
}

func glider() []core.Point {
	return []core.Point{core.Pt(1, 0), core.Pt(2, 1), core.Pt(0, 2), core.Pt(1, 2), core.Pt(2, 2)}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"B3/S23", "B3/S23"},
		{"b36/s23", "B36/S23"},
		{"S23/B3", "B3/S23"},
		{"B2/S", "B2/S"},
		{" B3678/S34678 ", "B3678/S34678"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := ParseRule(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestParseRuleRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "B3", "B3/S23/X", "X3/S23", "B9/S23", "B3/B3", "/S23"} {
		_, err := ParseRule(in)
		assert.True(t, errors.Is(err, ErrInvalidRule), "input %q: %v", in, err)
	}
}

func TestHashedGliderTravels(t *testing.T) {
	h := NewHashed(GameOfLife)
	start := sparseOf(core.R(0, 0, 8, 8), glider()...)

	out, err := h.Simulate(start, 4)
	require.NoError(t, err)

	want := sparseOf(core.ZR)
	for _, p := range glider() {
		want.Set(p.Add(core.Pt(1, 1)), grid.Active)
	}
	assert.Equal(t, want.Points(), out.Points())
	assert.Equal(t, core.R(0, 0, 8, 8), out.Viewport())
	assert.Equal(t, glider(), start.Points(), "input must not change")
}

func TestHashedCrossesNegativeCoordinates(t *testing.T) {
	h := NewHashed(GameOfLife)
	blinker := sparseOf(core.ZR, core.Pt(-1, -5), core.Pt(0, -5), core.Pt(1, -5))

	out, err := h.Simulate(blinker, 1)
	require.NoError(t, err)
	assert.Equal(t, []core.Point{core.Pt(0, -6), core.Pt(0, -5), core.Pt(0, -4)}, out.Points())
}

func TestHashedZeroGenerationsIsIdentity(t *testing.T) {
	h := NewHashed(GameOfLife)
	in := sparseOf(core.R(1, 1, 3, 3), core.Pt(7, 7))
	out, err := h.Simulate(in, 0)
	require.NoError(t, err)
	assert.Equal(t, in.Points(), out.Points())
	assert.Equal(t, in.Viewport(), out.Viewport())

	out.Set(core.Pt(8, 8), grid.Active)
	assert.Equal(t, 1, in.Len(), "result must not alias input")
}

func TestHashedRejectsBirthOnZero(t *testing.T) {
	h := NewHashed(MustParseRule("B0/S"))
	_, err := h.Simulate(grid.NewSparse(core.ZR), 1)
	assert.ErrorIs(t, err, ErrUnboundedRule)
}

func TestHashedPopulationLimit(t *testing.T) {
	h := &Hashed{Rule: MustParseRule("B1/S"), MaxPopulation: 20}
	_, err := h.Simulate(sparseOf(core.ZR, core.Pt(0, 0)), 3)
	assert.ErrorIs(t, err, ErrPopulationLimit)
}

func TestHashedSurviveOnZeroKeepsIsolatedCells(t *testing.T) {
	h := NewHashed(MustParseRule("B/S0"))
	out, err := h.Simulate(sparseOf(core.ZR, core.Pt(0, 0), core.Pt(10, 10)), 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Point{core.Pt(0, 0), core.Pt(10, 10)}, out.Points())
}

func TestSimpleWithoutWrapLosesEdgeCells(t *testing.T) {
	d := grid.NewDense(core.R(0, 0, 3, 3))
	// Vertical blinker on the left edge: without wrap it decays to a domino.
	d.Set(core.Pt(0, 0), grid.Active)
	d.Set(core.Pt(0, 1), grid.Active)
	d.Set(core.Pt(0, 2), grid.Active)

	out, err := NewSimple(GameOfLife, false).Simulate(d, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Population())
	assert.Equal(t, grid.Active, out.Get(core.Pt(0, 1)))
	assert.Equal(t, grid.Active, out.Get(core.Pt(1, 1)))
	assert.Equal(t, 3, d.Population(), "input must not change")
}

func TestSimpleMatchesHashedAwayFromEdges(t *testing.T) {
	const steps = 6
	window := core.R(0, 0, 12, 12)
	padded := core.R(-steps, -steps, 12+2*steps, 12+2*steps)

	soup := grid.NewDense(window)
	core.FillBinary(core.NewRNG(3), soup.Cells(), 0.35)

	hashed, err := NewHashed(GameOfLife).Simulate(grid.ToSparse(soup), steps)
	require.NoError(t, err)

	dense := soup.Subrange(padded)
	simple, err := NewSimple(GameOfLife, false).Simulate(dense, steps)
	require.NoError(t, err)

	for y := 0; y < window.Size.H; y++ {
		for x := 0; x < window.Size.W; x++ {
			p := window.At(x, y)
			assert.Equal(t, hashed.Get(p), simple.Get(p), "cell %v", p)
		}
	}
}
