// Package golstate exposes a mutable Game of Life state that hides whether its
// cells live in a dense array or a sparse map, and a Simulator that advances it.
package golstate

import (
	"mad-gol/pkg/core"
	"mad-gol/pkg/grid"
)

// Kind identifies the representation currently held by a State.
type Kind uint8

const (
	// KindDense backs the state with a bounded grid.Dense.
	KindDense Kind = iota
	// KindSparse backs the state with an unbounded grid.Sparse.
	KindSparse
)

func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// representation is a tagged union; only the field selected by kind is valid.
type representation struct {
	kind   Kind
	dense  grid.Dense
	sparse grid.Sparse
}

// State is a cellular automaton state addressed by absolute coordinates.
//
// Reads never change the stored representation. Every mutating call commits
// its result through setDense or setSparse, which bump Revision by exactly one.
// A State is not safe for concurrent use.
type State struct {
	rep      representation
	revision uint64
}

// New returns an empty dense state with a zero-area viewport.
func New() *State {
	return &State{rep: representation{kind: KindDense}}
}

// FromDense wraps d. The state takes ownership of d's storage.
func FromDense(d grid.Dense) *State {
	return &State{rep: representation{kind: KindDense, dense: d}}
}

// FromSparse wraps s. The state takes ownership of s's storage.
func FromSparse(s grid.Sparse) *State {
	return &State{rep: representation{kind: KindSparse, sparse: s}}
}

// Revision counts successful mutations.
func (s *State) Revision() uint64 { return s.revision }

// Kind reports the stored representation.
func (s *State) Kind() Kind { return s.rep.kind }

func (s *State) setDense(d grid.Dense) {
	s.rep = representation{kind: KindDense, dense: d}
	s.revision++
}

func (s *State) setSparse(sp grid.Sparse) {
	s.rep = representation{kind: KindSparse, sparse: sp}
	s.revision++
}

// denseState returns the dense form. When the state is dense the result
// aliases internal storage and must not be mutated.
func (s *State) denseState() grid.Dense {
	switch s.rep.kind {
	case KindDense:
		return s.rep.dense
	case KindSparse:
		return s.rep.sparse.Densify()
	default:
		panic("golstate: unknown representation")
	}
}

// sparseState returns the sparse form. When the state is sparse the result
// aliases internal storage and must not be mutated.
func (s *State) sparseState() grid.Sparse {
	switch s.rep.kind {
	case KindDense:
		return grid.ToSparse(s.rep.dense)
	case KindSparse:
		return s.rep.sparse
	default:
		panic("golstate: unknown representation")
	}
}

// Dense returns a private copy of the cells inside the viewport.
func (s *State) Dense() grid.Dense {
	if s.rep.kind == KindDense {
		return s.rep.dense.Clone()
	}
	return s.denseState()
}

// Sparse returns a private sparse copy of every stored cell.
func (s *State) Sparse() grid.Sparse {
	if s.rep.kind == KindSparse {
		return s.rep.sparse.Clone()
	}
	return s.sparseState()
}

// Viewport returns the current window.
func (s *State) Viewport() core.Rect {
	switch s.rep.kind {
	case KindDense:
		return s.rep.dense.Viewport()
	case KindSparse:
		return s.rep.sparse.Viewport()
	default:
		panic("golstate: unknown representation")
	}
}

// SetViewport changes the window without switching representation. A dense
// state keeps the cells still covered by r; a sparse state keeps everything.
func (s *State) SetViewport(r core.Rect) {
	switch s.rep.kind {
	case KindDense:
		d := s.rep.dense
		d.SetViewport(r)
		s.setDense(d)
	case KindSparse:
		sp := s.rep.sparse
		sp.SetViewport(r)
		s.setSparse(sp)
	default:
		panic("golstate: unknown representation")
	}
}

// Cell reports whether the cell at p is alive.
func (s *State) Cell(p core.Point) bool {
	switch s.rep.kind {
	case KindDense:
		return s.rep.dense.Get(p).Alive()
	case KindSparse:
		return s.rep.sparse.Get(p).Alive()
	default:
		panic("golstate: unknown representation")
	}
}

// SetCell writes alive at p.
//
// A dense state cannot store a live cell outside its viewport; such a write
// converts the state to the sparse representation instead of being lost.
func (s *State) SetCell(alive bool, p core.Point) {
	c := grid.CellOf(alive)
	switch s.rep.kind {
	case KindDense:
		d := s.rep.dense
		if d.Set(p, c) || !alive {
			s.setDense(d)
			return
		}
		sp := grid.ToSparse(d)
		sp.Set(p, c)
		s.setSparse(sp)
	case KindSparse:
		sp := s.rep.sparse
		sp.Set(p, c)
		s.setSparse(sp)
	default:
		panic("golstate: unknown representation")
	}
}

// Substate extracts the cells inside r as a new dense-backed state whose
// viewport is exactly r. The result shares nothing with s.
func (s *State) Substate(r core.Rect) *State {
	switch s.rep.kind {
	case KindDense:
		return FromDense(s.rep.dense.Subrange(r))
	case KindSparse:
		return FromDense(s.rep.sparse.DensifyRect(r))
	default:
		panic("golstate: unknown representation")
	}
}

// SetSubstate writes the viewport contents of v into r, local offset (x, y)
// of v landing on r.Origin+(x, y). A dense destination clips to its viewport.
func (s *State) SetSubstate(v *State, r core.Rect) {
	src := v.denseState()
	if v == s {
		src = src.Clone()
	}
	switch s.rep.kind {
	case KindDense:
		d := s.rep.dense
		d.SetSubrange(src, r)
		s.setDense(d)
	case KindSparse:
		sp := s.rep.sparse
		sp.SetSubrange(src, r)
		s.setSparse(sp)
	default:
		panic("golstate: unknown representation")
	}
}

// Translate moves the viewport origin to, carrying every cell by the same delta.
func (s *State) Translate(to core.Point) {
	delta := to.Sub(s.Viewport().Origin)
	switch s.rep.kind {
	case KindDense:
		d := s.rep.dense
		d.Translate(delta)
		s.setDense(d)
	case KindSparse:
		sp := s.rep.sparse
		sp.Translate(delta)
		s.setSparse(sp)
	default:
		panic("golstate: unknown representation")
	}
}

// Copy returns an independent state with the same representation, cells and
// revision. Copying is not a mutation.
func (s *State) Copy() *State {
	c := &State{revision: s.revision}
	switch s.rep.kind {
	case KindDense:
		c.rep = representation{kind: KindDense, dense: s.rep.dense.Clone()}
	case KindSparse:
		c.rep = representation{kind: KindSparse, sparse: s.rep.sparse.Clone()}
	default:
		panic("golstate: unknown representation")
	}
	return c
}
