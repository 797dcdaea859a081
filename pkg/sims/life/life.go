// Package life implements outer-totalistic binary automata such as Conway's
// Game of Life, on both sparse unbounded grids and dense bounded grids.
package life

import (
	"mad-gol/pkg/grid"
)

// Simple runs a rule on a bounded dense grid.
type Simple struct {
	Rule Rule
	// Wrap joins opposite edges into a torus. Without it, cells past the edge
	// are permanently dead.
	Wrap bool
}

// NewSimple returns a bounded engine for rule.
func NewSimple(rule Rule, wrap bool) *Simple {
	return &Simple{Rule: rule, Wrap: wrap}
}

// Simulate advances state by generations steps inside its viewport. The input
// is not modified.
func (s *Simple) Simulate(state grid.Dense, generations uint) (grid.Dense, error) {
	cur := state.Clone()
	if generations == 0 || cur.Viewport().Empty() {
		return cur, nil
	}
	nxt := grid.NewDense(cur.Viewport())
	for gen := uint(0); gen < generations; gen++ {
		s.step(cur, nxt)
		cur, nxt = nxt, cur
	}
	return cur, nil
}

// Step advances state by one generation in place.
func (s *Simple) Step(state *grid.Dense) {
	if state.Viewport().Empty() {
		return
	}
	nxt := grid.NewDense(state.Viewport())
	s.step(*state, nxt)
	*state = nxt
}

func (s *Simple) step(cur, nxt grid.Dense) {
	size := cur.Viewport().Size
	w, h := size.W, size.H
	src, dst := cur.Cells(), nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if s.Wrap {
						nx, ny = cur.Wrap(nx, ny)
					} else if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if src[ny*w+nx].Alive() {
						neighbors++
					}
				}
			}
			idx := y*w + x
			dst[idx] = grid.CellOf(s.Rule.next(src[idx].Alive(), neighbors))
		}
	}
}
