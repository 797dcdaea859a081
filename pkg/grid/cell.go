// Package grid holds the two storage strategies for binary cell states: a
// bounded Dense array addressed through its viewport and an unbounded Sparse
// map keyed by absolute coordinate.
//
// Both types are values whose zero form is ready to use. Mutating methods have
// pointer receivers and never touch another value's storage; use Clone before
// handing a state to code that may keep it.
package grid

import "mad-gol/pkg/core"

// Cell is the value stored per coordinate.
type Cell uint8

const (
	// Inactive is the background value returned for absent or out-of-range cells.
	Inactive Cell = iota
	// Active marks a live cell.
	Active
)

// CellOf maps a boolean onto the cell domain.
func CellOf(alive bool) Cell {
	if alive {
		return Active
	}
	return Inactive
}

// Alive reports whether c is Active.
func (c Cell) Alive() bool { return c == Active }

// Sampler is implemented by every state that can be read by absolute coordinate.
type Sampler interface {
	Viewport() core.Rect
	Get(p core.Point) Cell
}

// sampleLocal reads src at the local offset (x, y) of its own viewport.
func sampleLocal(src Sampler, x, y int) Cell {
	return src.Get(src.Viewport().At(x, y))
}
