package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-gol/internal/core"
	pkgcore "mad-gol/pkg/core"
	"mad-gol/pkg/golstate"
	"mad-gol/pkg/sims/life"
)

func newTestViewer(t *testing.T, w, h int) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	s := core.NewSession(core.SessionConfig{
		Name:        "life",
		Rule:        "B3/S23",
		Viewport:    pkgcore.R(0, 0, 4, 4),
		Generations: 1,
	}, golstate.NewGOLSimulator(), zerolog.Nop())
	v := New(screen, s, 10, 1, zerolog.Nop())
	v.Fit()
	return v, screen
}

func TestFitPacksTwoRowsPerLine(t *testing.T) {
	v, _ := newTestViewer(t, 12, 5)
	assert.Equal(t, pkgcore.R(0, 0, 12, 8), v.session.Viewport())
}

func TestDrawHalfBlocks(t *testing.T) {
	v, screen := newTestViewer(t, 6, 3)
	v.session.Paint(pkgcore.Pt(0, 0), true)
	v.session.Paint(pkgcore.Pt(1, 1), true)
	v.session.Paint(pkgcore.Pt(2, 0), true)
	v.session.Paint(pkgcore.Pt(2, 1), true)
	v.Draw()

	glyph := func(x, y int) rune {
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}
	assert.Equal(t, '▀', glyph(0, 0))
	assert.Equal(t, '▄', glyph(1, 0))
	assert.Equal(t, '█', glyph(2, 0))
	assert.Equal(t, ' ', glyph(3, 0))
	assert.Equal(t, 'l', glyph(1, 2), "status line starts with the session name")
}

func TestKeysEditAndStep(t *testing.T) {
	v, _ := newTestViewer(t, 8, 4)
	start := v.Cursor()

	assert.True(t, v.HandleKey(tcell.KeyLeft, 0))
	assert.True(t, v.HandleKey(tcell.KeyEnter, 0))
	assert.True(t, v.HandleKey(tcell.KeyRight, 0))
	assert.True(t, v.HandleKey(tcell.KeyRune, 't'))
	assert.True(t, v.HandleKey(tcell.KeyRight, 0))
	assert.True(t, v.HandleKey(tcell.KeyRune, 't'))

	st := v.session.State()
	for dx := -1; dx <= 1; dx++ {
		assert.True(t, st.Cell(start.Add(pkgcore.Pt(dx, 0))))
	}

	v.HandleKey(tcell.KeyRune, 'n')
	assert.Equal(t, uint64(1), v.session.Ticks())
	assert.True(t, v.session.State().Cell(start.Add(pkgcore.Pt(0, -1))))
	assert.False(t, v.session.State().Cell(start.Add(pkgcore.Pt(-1, 0))))
}

func TestCursorStaysInViewport(t *testing.T) {
	v, _ := newTestViewer(t, 3, 2)
	for i := 0; i < 10; i++ {
		v.HandleKey(tcell.KeyRight, 0)
		v.HandleKey(tcell.KeyDown, 0)
	}
	assert.Equal(t, pkgcore.Pt(2, 1), v.Cursor())
}

func TestPanMovesWindowAndCursor(t *testing.T) {
	v, _ := newTestViewer(t, 8, 4)
	c := v.Cursor()
	v.HandleKey(tcell.KeyRune, 'l')
	assert.Equal(t, pkgcore.Pt(1, 0), v.session.Viewport().Origin)
	assert.Equal(t, c.Add(pkgcore.Pt(1, 0)), v.Cursor())
}

func TestSelectCopyPaste(t *testing.T) {
	v, _ := newTestViewer(t, 10, 6)
	v.session.Paint(pkgcore.Pt(0, 0), true)
	v.cursor = pkgcore.Pt(0, 0)

	v.HandleKey(tcell.KeyRune, 'v')
	v.HandleKey(tcell.KeyRight, 0)
	assert.Equal(t, pkgcore.R(0, 0, 2, 1), v.Selection())
	v.HandleKey(tcell.KeyRune, 'y')
	assert.Equal(t, pkgcore.ZR, v.Selection())

	v.cursor = pkgcore.Pt(5, 5)
	v.HandleKey(tcell.KeyRune, 'p')
	assert.True(t, v.session.State().Cell(pkgcore.Pt(5, 5)))
	assert.False(t, v.session.State().Cell(pkgcore.Pt(6, 5)))
}

func TestPauseGenerationsAndQuit(t *testing.T) {
	v, _ := newTestViewer(t, 8, 4)
	v.HandleKey(tcell.KeyRune, ' ')
	assert.True(t, v.Paused())

	v.HandleKey(tcell.KeyRune, '+')
	v.HandleKey(tcell.KeyRune, '+')
	assert.Equal(t, 3, v.session.Generations())
	for i := 0; i < 5; i++ {
		v.HandleKey(tcell.KeyRune, '-')
	}
	assert.Equal(t, 0, v.session.Generations())

	assert.False(t, v.HandleKey(tcell.KeyRune, 'q'))
	assert.False(t, v.HandleKey(tcell.KeyEscape, 0))
}

func TestAdvanceRespectsPause(t *testing.T) {
	v, _ := newTestViewer(t, 8, 4)
	v.HandleKey(tcell.KeyRune, ' ')
	assert.Equal(t, 0, v.Advance())
	assert.Equal(t, uint64(0), v.session.Ticks())

	v.HandleKey(tcell.KeyRune, ' ')
	assert.Equal(t, 1, v.Advance(), "first tick is due immediately")
	assert.Equal(t, uint64(1), v.session.Ticks())
}

func TestAdvancePausesOnStepFailure(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	sim := golstate.NewSimulator(life.NewHashed(life.MustParseRule("B0/S23")))
	s := core.NewSession(core.SessionConfig{Name: "bad", Viewport: pkgcore.R(0, 0, 4, 4), Generations: 1}, sim, zerolog.Nop())
	v := New(screen, s, 10, 1, zerolog.Nop())

	assert.Equal(t, 0, v.Advance())
	assert.True(t, v.Paused())
	assert.Contains(t, v.status, "step failed")
}

func TestPumpExitsWhenViewerStops(t *testing.T) {
	v, screen := newTestViewer(t, 8, 4)
	require.NoError(t, screen.PostEvent(tcell.NewEventInterrupt(nil)))

	events := make(chan tcell.Event)
	done := make(chan struct{})
	close(done)
	go v.pump(events, done)

	_, ok := <-events
	assert.False(t, ok, "pump must close its channel instead of blocking on a send")
}
