// Package term renders a session in a terminal with tcell. Two cell rows are
// packed into each character row using half-block glyphs.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"mad-gol/internal/core"
	"mad-gol/internal/ui"
	pkgcore "mad-gol/pkg/core"
)

var (
	styleCell   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleCursor = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorDarkRed)
	styleMark   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Viewer drives a session from terminal input and draws it to a screen.
type Viewer struct {
	screen  tcell.Screen
	session *core.Session
	stepper *core.FixedStep
	log     zerolog.Logger

	paused bool
	seed   int64
	cursor pkgcore.Point
	anchor *pkgcore.Point
	status string
}

// New constructs a Viewer. The screen must already be initialised.
func New(screen tcell.Screen, s *core.Session, tps int, seed int64, log zerolog.Logger) *Viewer {
	vp := s.Viewport()
	return &Viewer{
		screen:  screen,
		session: s,
		stepper: core.NewFixedStep(tps),
		log:     log,
		seed:    seed,
		cursor:  vp.At(vp.Size.W/2, vp.Size.H/2),
	}
}

// Paused reports whether automatic stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Cursor returns the absolute cell under the cursor.
func (v *Viewer) Cursor() pkgcore.Point { return v.cursor }

// Run polls events and steps the session until ctx is cancelled or the user
// quits.
func (v *Viewer) Run(ctx context.Context) error {
	v.Fit()
	v.log.Info().Interface("viewport", v.session.Viewport()).Msg("terminal viewer started")
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go v.pump(events, done)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			v.Advance()
			v.Draw()
		}
	}
}

// pump forwards screen events until the screen is finalised or done closes.
func (v *Viewer) pump(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Advance runs the session steps that are due at the configured rate and
// returns how many succeeded. Paused time is not made up later.
func (v *Viewer) Advance() int {
	if v.paused {
		v.stepper.Reset()
		return 0
	}
	n := 0
	for due := v.stepper.Due(); due > 0; due-- {
		if !v.step() {
			break
		}
		n++
	}
	return n
}

// Fit sizes the session viewport to the screen, leaving a status row.
func (v *Viewer) Fit() {
	w, h := v.screen.Size()
	v.session.Resize(pkgcore.Sz(w, 2*max(h-1, 0)))
	v.clampCursor()
}

// HandleEvent applies a tcell event. It returns false when the viewer should
// exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
		v.Fit()
	}
	return true
}

// HandleKey applies a single key press.
func (v *Viewer) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.moveCursor(pkgcore.Pt(0, -1))
	case tcell.KeyDown:
		v.moveCursor(pkgcore.Pt(0, 1))
	case tcell.KeyLeft:
		v.moveCursor(pkgcore.Pt(-1, 0))
	case tcell.KeyRight:
		v.moveCursor(pkgcore.Pt(1, 0))
	case tcell.KeyEnter:
		v.session.Toggle(v.cursor)
	case tcell.KeyRune:
		return v.handleRune(r)
	}
	return true
}

func (v *Viewer) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		v.paused = !v.paused
	case 'n':
		v.step()
	case 't':
		v.session.Toggle(v.cursor)
	case 'h', 'j', 'k', 'l':
		d := vimDelta(r)
		v.session.Pan(d)
		v.cursor = v.cursor.Add(d)
	case 'H', 'J', 'K', 'L':
		d := vimDelta(r + 'a' - 'A')
		v.session.Shift(d)
		v.cursor = v.cursor.Add(d)
	case 'v':
		if v.anchor != nil {
			v.anchor = nil
			break
		}
		a := v.cursor
		v.anchor = &a
	case 'y':
		if v.anchor != nil {
			v.session.Copy(v.Selection())
			v.status = fmt.Sprintf("copied %dx%d", v.Selection().Size.W, v.Selection().Size.H)
			v.anchor = nil
		}
	case 'p':
		if !v.session.Paste(v.cursor) {
			v.status = "clipboard empty"
		}
	case 'r':
		v.session.Reset(v.seed)
	case 's':
		v.seed = time.Now().UnixNano()
		v.session.Reset(v.seed)
	case '+':
		v.session.SetIntParameter("generations", v.session.Generations()+1)
	case '-':
		v.session.SetIntParameter("generations", v.session.Generations()-1)
	}
	return true
}

// Selection returns the marked rect, or an empty rect when nothing is marked.
func (v *Viewer) Selection() pkgcore.Rect {
	if v.anchor == nil {
		return pkgcore.ZR
	}
	return ui.SelectionRect(*v.anchor, v.cursor)
}

func vimDelta(r rune) pkgcore.Point {
	switch r {
	case 'h':
		return pkgcore.Pt(-1, 0)
	case 'l':
		return pkgcore.Pt(1, 0)
	case 'k':
		return pkgcore.Pt(0, -1)
	default:
		return pkgcore.Pt(0, 1)
	}
}

func (v *Viewer) moveCursor(d pkgcore.Point) {
	v.cursor = v.cursor.Add(d)
	v.clampCursor()
}

func (v *Viewer) clampCursor() {
	vp := v.session.Viewport()
	if vp.Empty() {
		return
	}
	hi := vp.Max()
	v.cursor.X = min(max(v.cursor.X, vp.Origin.X), hi.X-1)
	v.cursor.Y = min(max(v.cursor.Y, vp.Origin.Y), hi.Y-1)
}

func (v *Viewer) step() bool {
	if err := v.session.Step(); err != nil {
		v.paused = true
		v.status = "step failed: " + err.Error()
		return false
	}
	return true
}

// Draw renders the viewport and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	state := v.session.State()
	vp := state.Viewport()
	sel := v.Selection()
	for row := 0; row*2 < vp.Size.H; row++ {
		for x := 0; x < vp.Size.W; x++ {
			top := vp.At(x, row*2)
			bottom := vp.At(x, row*2+1)
			glyph := halfBlock(state.Cell(top), bottom.Y < vp.Max().Y && state.Cell(bottom))

			style := styleCell
			switch {
			case top == v.cursor || bottom == v.cursor:
				style = styleCursor
			case sel.Contains(top) || sel.Contains(bottom):
				style = styleMark
			}
			v.screen.SetContent(x, row, glyph, nil, style)
		}
	}
	v.drawStatus((vp.Size.H + 1) / 2)
	v.screen.Show()
}

func (v *Viewer) drawStatus(y int) {
	w, _ := v.screen.Size()
	mode := "running"
	if v.paused {
		mode = "paused"
	}
	line := fmt.Sprintf(" %s %s | gen/tick %d | tick %d | pop %d | (%d,%d) %s",
		v.session.Name(), mode, v.session.Generations(), v.session.Ticks(),
		v.session.Population(), v.cursor.X, v.cursor.Y, v.status)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(line) {
			ch = rune(line[x])
		}
		v.screen.SetContent(x, y, ch, nil, styleStatus)
	}
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
