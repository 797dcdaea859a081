package grid

import (
	"slices"

	"mad-gol/pkg/core"
)

// Sparse maps absolute coordinates to cells. Absent keys read as Inactive and
// Inactive writes delete their key, so the map only ever holds live cells.
//
// The viewport is advisory: it is the default window for Densify and for
// callers that want "the visible part", but cells may live anywhere.
type Sparse struct {
	viewport core.Rect
	cells    map[core.Point]Cell
}

// NewSparse returns an empty sparse grid with the given advisory viewport.
// Negative extents are clamped to zero.
func NewSparse(viewport core.Rect) Sparse {
	viewport.Size = core.Sz(viewport.Size.W, viewport.Size.H)
	return Sparse{viewport: viewport, cells: make(map[core.Point]Cell)}
}

// Viewport returns the advisory window.
func (s Sparse) Viewport() core.Rect { return s.viewport }

// SetViewport replaces the advisory window without touching stored cells.
func (s *Sparse) SetViewport(r core.Rect) {
	r.Size = core.Sz(r.Size.W, r.Size.H)
	s.viewport = r
}

// Get returns the cell at p.
func (s Sparse) Get(p core.Point) Cell {
	return s.cells[p]
}

// Set writes c at p. It always succeeds.
func (s *Sparse) Set(p core.Point, c Cell) bool {
	if c == Inactive {
		delete(s.cells, p)
		return true
	}
	if s.cells == nil {
		s.cells = make(map[core.Point]Cell)
	}
	s.cells[p] = c
	return true
}

// Len returns the number of stored live cells.
func (s Sparse) Len() int { return len(s.cells) }

// Each calls fn for every stored cell in unspecified order.
func (s Sparse) Each(fn func(p core.Point, c Cell)) {
	for p, c := range s.cells {
		fn(p, c)
	}
}

// Points returns the live coordinates sorted by row, then column.
func (s Sparse) Points() []core.Point {
	pts := make([]core.Point, 0, len(s.cells))
	for p := range s.cells {
		pts = append(pts, p)
	}
	slices.SortFunc(pts, func(a, b core.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return pts
}

// Bounds returns the smallest rectangle containing every live cell.
func (s Sparse) Bounds() core.Rect {
	var b core.Rect
	for p := range s.cells {
		b = b.Union(core.Rect{Origin: p, Size: core.Size{W: 1, H: 1}})
	}
	return b
}

// Clone returns a copy that shares no storage with s.
func (s Sparse) Clone() Sparse {
	out := Sparse{viewport: s.viewport, cells: make(map[core.Point]Cell, len(s.cells))}
	for p, c := range s.cells {
		out.cells[p] = c
	}
	return out
}

// Subrange returns a sparse grid with viewport r holding exactly the live
// cells inside r.
func (s Sparse) Subrange(r core.Rect) Sparse {
	out := NewSparse(r)
	if r.Empty() {
		return out
	}
	// Walk whichever side is smaller.
	if len(s.cells) <= r.Size.Area() {
		for p, c := range s.cells {
			if r.Contains(p) {
				out.cells[p] = c
			}
		}
		return out
	}
	for y := 0; y < r.Size.H; y++ {
		for x := 0; x < r.Size.W; x++ {
			p := r.At(x, y)
			if c, ok := s.cells[p]; ok {
				out.cells[p] = c
			}
		}
	}
	return out
}

// SetSubrange overwrites every coordinate in r with the value src holds at
// the same local offset of its own viewport.
func (s *Sparse) SetSubrange(src Sampler, r core.Rect) {
	for y := 0; y < r.Size.H; y++ {
		for x := 0; x < r.Size.W; x++ {
			s.Set(r.At(x, y), sampleLocal(src, x, y))
		}
	}
}

// Translate shifts every stored cell and the viewport by delta.
func (s *Sparse) Translate(delta core.Point) {
	s.viewport = s.viewport.Translate(delta)
	if delta == (core.Point{}) || len(s.cells) == 0 {
		return
	}
	moved := make(map[core.Point]Cell, len(s.cells))
	for p, c := range s.cells {
		moved[p.Add(delta)] = c
	}
	s.cells = moved
}

// Densify materializes the cells inside the viewport as a Dense grid.
func (s Sparse) Densify() Dense {
	return s.DensifyRect(s.viewport)
}

// DensifyRect materializes the cells inside r as a Dense grid with viewport r.
func (s Sparse) DensifyRect(r core.Rect) Dense {
	out := NewDense(r)
	for p, c := range s.cells {
		out.Set(p, c)
	}
	return out
}

// ToSparse copies the live cells of d into a sparse grid keyed by absolute
// coordinate. The viewport is carried over unchanged.
func ToSparse(d Dense) Sparse {
	out := NewSparse(d.viewport)
	for i, c := range d.data {
		if c == Inactive {
			continue
		}
		w := d.viewport.Size.W
		out.cells[d.viewport.At(i%w, i/w)] = c
	}
	return out
}
