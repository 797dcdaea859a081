//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	pkgcore "mad-gol/pkg/core"
)

// Overlay tracks the right-drag selection and draws it, plus an optional
// cell grid, on top of the simulation view.
type Overlay struct {
	scale    int
	showGrid bool

	dragging  bool
	anchor    pkgcore.Point
	selection pkgcore.Rect

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Selection returns the selected rect in absolute cell coordinates. It is
// empty when nothing is selected.
func (o *Overlay) Selection() pkgcore.Rect { return o.selection }

// ClearSelection drops the current selection.
func (o *Overlay) ClearSelection() { o.selection = pkgcore.ZR }

// Update tracks the selection drag and the grid toggle.
func (o *Overlay) Update(viewport pkgcore.Rect) {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	mx, my := ebiten.CursorPosition()
	cell := CellAt(viewport, mx, my, o.scale)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		o.dragging = true
		o.anchor = cell
		o.selection = SelectionRect(cell, cell)
	case o.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		o.selection = SelectionRect(o.anchor, cell)
	case o.dragging:
		o.dragging = false
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, viewport pkgcore.Rect) {
	scale := float64(o.scale)
	if o.showGrid && o.scale >= 4 {
		col := color.RGBA{R: 40, G: 40, B: 48, A: 160}
		w := float64(viewport.Size.W) * scale
		h := float64(viewport.Size.H) * scale
		for x := 0; x <= viewport.Size.W; x++ {
			o.drawLine(screen, float64(x)*scale, 0, float64(x)*scale, h, 1, col)
		}
		for y := 0; y <= viewport.Size.H; y++ {
			o.drawLine(screen, 0, float64(y)*scale, w, float64(y)*scale, 1, col)
		}
	}

	sel := o.selection.Intersect(viewport)
	if sel.Empty() {
		return
	}
	local := sel.Origin.Sub(viewport.Origin)
	x1 := float64(local.X) * scale
	y1 := float64(local.Y) * scale
	x2 := x1 + float64(sel.Size.W)*scale
	y2 := y1 + float64(sel.Size.H)*scale

	o.fillRect(screen, x1, y1, x2-x1, y2-y1, color.RGBA{R: 64, G: 164, B: 223, A: 48})
	border := color.RGBA{R: 90, G: 190, B: 240, A: 220}
	o.drawLine(screen, x1, y1, x2, y1, 1, border)
	o.drawLine(screen, x2, y1, x2, y2, 1, border)
	o.drawLine(screen, x2, y2, x1, y2, 1, border)
	o.drawLine(screen, x1, y2, x1, y1, 1, border)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
