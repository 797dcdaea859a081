//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"mad-gol/internal/core"
	"mad-gol/internal/render"
	"mad-gol/internal/ui"
	pkgcore "mad-gol/pkg/core"
)

const hudWidth = 220

// Game adapts a core session to the ebiten.Game interface.
type Game struct {
	session *core.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	log     zerolog.Logger

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided session.
func New(s *core.Session, scale int, seed int64, log zerolog.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	vp := s.Viewport()
	return &Game{
		session:  s,
		painter:  render.NewGridPainter(vp.Size.W, vp.Size.H),
		overlay:  ui.NewOverlay(scale),
		hud:      ui.NewHUD(s, hudWidth),
		log:      log,
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the session with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.session.Reset(seed)
	g.overlay.ClearSelection()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.handleNavigation()
	g.handleEditing()
	g.overlay.Update(g.session.Viewport())
	g.hud.Update(g.viewWidth())

	if !g.paused || g.tickOnce {
		if err := g.session.Step(); err != nil {
			g.paused = true
		}
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleNavigation() {
	delta := pkgcore.Point{}
	if repeating(ebiten.KeyArrowLeft) {
		delta.X--
	}
	if repeating(ebiten.KeyArrowRight) {
		delta.X++
	}
	if repeating(ebiten.KeyArrowUp) {
		delta.Y--
	}
	if repeating(ebiten.KeyArrowDown) {
		delta.Y++
	}
	if delta == (pkgcore.Point{}) {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		g.session.Shift(delta)
		return
	}
	g.session.Pan(delta)
}

func (g *Game) handleEditing() {
	mx, my := ebiten.CursorPosition()
	inView := mx >= 0 && my >= 0 && mx < g.viewWidth() && my < g.viewHeight()
	cell := ui.CellAt(g.session.Viewport(), mx, my, g.scale)

	if inView && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.session.Paint(cell, !ebiten.IsKeyPressed(ebiten.KeyControl))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Copy(g.overlay.Selection())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) && inView {
		if !g.session.Paste(cell) {
			g.log.Debug().Msg("clipboard empty")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.overlay.ClearSelection()
	}
}

// repeating reports a key press on the first frame and then every few frames
// while the key is held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 15 && d%3 == 0)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	vp := g.session.Viewport()
	g.painter.Blit(screen, g.session.State().Dense(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, vp)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

func (g *Game) viewWidth() int  { return g.session.Viewport().Size.W * g.scale }
func (g *Game) viewHeight() int { return g.session.Viewport().Size.H * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + g.hud.Width(), g.viewHeight()
}
