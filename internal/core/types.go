package core

import (
	"slices"

	pkgcore "mad-gol/pkg/core"
	"mad-gol/pkg/golstate"
)

// Sim defines the minimal contract the viewers drive.
type Sim interface {
	Name() string
	Viewport() pkgcore.Rect
	Reset(seed int64)
	Step() error
	State() *golstate.State
}

// Factory constructs a Simulator using an optional configuration map.
type Factory func(cfg map[string]string, opts ...golstate.Option) (*golstate.Simulator, error)

var rules = map[string]Factory{}

// Register adds a rule factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	rules[name] = f
}

// Rules exposes the registry of available rule factories.
func Rules() map[string]Factory {
	return rules
}

// Names returns the registered rule names in sorted order.
func Names() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
