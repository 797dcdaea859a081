package life

import (
	"github.com/rotisserie/eris"

	"mad-gol/pkg/core"
	"mad-gol/pkg/grid"
)

var (
	// ErrUnboundedRule is returned for rules that give birth on zero
	// neighbours, which would fill an infinite plane in one generation.
	ErrUnboundedRule = eris.New("rule is unbounded on an infinite grid")
	// ErrPopulationLimit is returned when a generation grows past MaxPopulation.
	ErrPopulationLimit = eris.New("population limit exceeded")
)

// Hashed runs a rule on an unbounded sparse grid.
type Hashed struct {
	Rule Rule
	// MaxPopulation aborts the run once a generation holds more live cells.
	// Zero disables the check.
	MaxPopulation int
}

// NewHashed returns an unbounded engine for rule.
func NewHashed(rule Rule) *Hashed {
	return &Hashed{Rule: rule}
}

// Simulate advances state by generations steps. The input is not modified and
// the viewport is carried over unchanged.
func (h *Hashed) Simulate(state grid.Sparse, generations uint) (grid.Sparse, error) {
	if h.Rule.Birth[0] {
		return grid.Sparse{}, eris.Wrapf(ErrUnboundedRule, "rule %s", h.Rule)
	}
	cur := state.Clone()
	for gen := uint(0); gen < generations; gen++ {
		cur = h.step(cur)
		if h.MaxPopulation > 0 && cur.Len() > h.MaxPopulation {
			return grid.Sparse{}, eris.Wrapf(ErrPopulationLimit, "generation %d: %d > %d", gen+1, cur.Len(), h.MaxPopulation)
		}
	}
	return cur, nil
}

// Step advances state by a single generation.
func (h *Hashed) Step(state grid.Sparse) grid.Sparse {
	return h.step(state)
}

func (h *Hashed) step(cur grid.Sparse) grid.Sparse {
	counts := make(map[core.Point]int, cur.Len()*8)
	cur.Each(func(p core.Point, c grid.Cell) {
		if !c.Alive() {
			return
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				counts[core.Point{X: p.X + dx, Y: p.Y + dy}]++
			}
		}
	})

	next := grid.NewSparse(cur.Viewport())
	for p, n := range counts {
		if h.Rule.next(cur.Get(p).Alive(), n) {
			next.Set(p, grid.Active)
		}
	}
	if h.Rule.Survive[0] {
		// Isolated cells never show up in counts.
		cur.Each(func(p core.Point, c grid.Cell) {
			if _, ok := counts[p]; !ok && c.Alive() {
				next.Set(p, grid.Active)
			}
		})
	}
	return next
}
