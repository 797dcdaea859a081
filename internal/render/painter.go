//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"mad-gol/pkg/grid"
)

// GridPainter uploads a dense viewport to a texture and draws it scaled.
type GridPainter struct {
	img *ebiten.Image
	buf []byte
	w   int
	h   int
}

// NewGridPainter allocates a painter for a w×h viewport.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	gp.img = ebiten.NewImage(w, h)
	gp.w, gp.h = w, h
}

// Blit draws d onto screen at the given integer scale.
func (gp *GridPainter) Blit(screen *ebiten.Image, d grid.Dense, on, off color.Color, scale int) {
	size := d.Viewport().Size
	if size.Area() == 0 {
		return
	}
	gp.resize(size.W, size.H)
	gp.buf = Pixels(gp.buf, d, on, off)
	gp.img.WritePixels(gp.buf)

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(gp.img, op)
}
