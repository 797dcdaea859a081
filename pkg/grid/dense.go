package grid

import "mad-gol/pkg/core"

// Dense stores a bounded grid of cells in row-major order. Index (x, y) of the
// backing slice holds the cell at absolute coordinate viewport.Origin+(x, y).
//
// Writes outside the viewport are dropped: the array has no room to grow.
type Dense struct {
	viewport core.Rect
	data     []Cell
}

// NewDense allocates an inactive grid covering viewport.
func NewDense(viewport core.Rect) Dense {
	viewport.Size = core.Sz(viewport.Size.W, viewport.Size.H)
	return Dense{viewport: viewport, data: make([]Cell, viewport.Size.Area())}
}

// Viewport returns the rectangle covered by the array.
func (d Dense) Viewport() core.Rect { return d.viewport }

// Cells exposes the backing slice so callers can read values directly.
func (d Dense) Cells() []Cell { return d.data }

// Get returns the cell at absolute coordinate p, or Inactive outside the viewport.
func (d Dense) Get(p core.Point) Cell {
	if !d.viewport.Contains(p) {
		return Inactive
	}
	return d.data[d.viewport.Index(p)]
}

// At returns the cell at local offset (x, y).
func (d Dense) At(x, y int) Cell {
	return d.Get(d.viewport.At(x, y))
}

// Set writes c at absolute coordinate p. It reports false, leaving the grid
// untouched, when p lies outside the viewport.
func (d *Dense) Set(p core.Point, c Cell) bool {
	if !d.viewport.Contains(p) {
		return false
	}
	d.data[d.viewport.Index(p)] = c
	return true
}

// Population counts the active cells.
func (d Dense) Population() int {
	n := 0
	for _, c := range d.data {
		if c == Active {
			n++
		}
	}
	return n
}

// Clear fills the grid with Inactive.
func (d *Dense) Clear() {
	for i := range d.data {
		d.data[i] = Inactive
	}
}

// Clone returns a copy that shares no storage with d.
func (d Dense) Clone() Dense {
	return Dense{viewport: d.viewport, data: append([]Cell(nil), d.data...)}
}

// Subrange returns a new grid whose viewport is exactly r. Positions outside
// d's own viewport read as Inactive.
func (d Dense) Subrange(r core.Rect) Dense {
	out := NewDense(r)
	overlap := d.viewport.Intersect(r)
	for y := 0; y < overlap.Size.H; y++ {
		for x := 0; x < overlap.Size.W; x++ {
			p := overlap.At(x, y)
			out.data[out.viewport.Index(p)] = d.data[d.viewport.Index(p)]
		}
	}
	return out
}

// SetSubrange copies src into r, mapping local offset (x, y) of src's viewport
// onto r.Origin+(x, y). The write is clipped to d's viewport and overwrites
// every covered position, Inactive values included.
func (d *Dense) SetSubrange(src Sampler, r core.Rect) {
	target := d.viewport.Intersect(r)
	for y := 0; y < target.Size.H; y++ {
		for x := 0; x < target.Size.W; x++ {
			p := target.At(x, y)
			off := p.Sub(r.Origin)
			d.data[d.viewport.Index(p)] = sampleLocal(src, off.X, off.Y)
		}
	}
}

// Translate shifts the viewport by delta. The stored cells move with it.
func (d *Dense) Translate(delta core.Point) {
	d.viewport = d.viewport.Translate(delta)
}

// SetViewport resizes or repositions the grid. Cells still covered by r keep
// their absolute coordinate; new area is Inactive.
func (d *Dense) SetViewport(r core.Rect) {
	if r == d.viewport {
		return
	}
	*d = d.Subrange(r)
}

// Wrap applies toroidal wrapping to local coordinates.
func (d Dense) Wrap(x, y int) (int, int) {
	w, h := d.viewport.Size.W, d.viewport.Size.H
	x = (x%w + w) % w
	y = (y%h + h) % h
	return x, y
}
