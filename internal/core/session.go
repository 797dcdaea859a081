package core

import (
	"strconv"

	"github.com/rs/zerolog"

	pkgcore "mad-gol/pkg/core"
	"mad-gol/pkg/golstate"
	"mad-gol/pkg/grid"
)

// SessionConfig controls a Session.
type SessionConfig struct {
	Name        string
	Rule        string
	Viewport    pkgcore.Rect
	Generations int
	Density     float64
}

// Session couples a State with the Simulator that advances it and tracks the
// viewer-facing knobs around them.
type Session struct {
	cfg   SessionConfig
	sim   *golstate.Simulator
	state *golstate.State
	ticks uint64
	clip  *golstate.State
	log   zerolog.Logger
}

// NewSession returns a session holding an empty dense state sized to
// cfg.Viewport.
func NewSession(cfg SessionConfig, sim *golstate.Simulator, log zerolog.Logger) *Session {
	if cfg.Generations < 0 {
		cfg.Generations = 0
	}
	state := golstate.New()
	state.SetViewport(cfg.Viewport)
	return &Session{cfg: cfg, sim: sim, state: state, log: log}
}

// Name returns the session identifier.
func (s *Session) Name() string { return s.cfg.Name }

// State returns the live state. Reset replaces it, so callers should not hold
// on to the pointer across frames.
func (s *Session) State() *golstate.State { return s.state }

// Viewport returns the window currently shown.
func (s *Session) Viewport() pkgcore.Rect { return s.state.Viewport() }

// Ticks counts successful steps since the last reset.
func (s *Session) Ticks() uint64 { return s.ticks }

// Load replaces the state with src, keeping the current viewport.
func (s *Session) Load(src grid.Sparse) {
	vp := s.state.Viewport()
	s.state = golstate.FromSparse(src)
	s.state.SetViewport(vp)
	s.ticks = 0
	s.log.Info().Int("population", src.Len()).Msg("pattern loaded")
}

// Reset fills the viewport with a random soup drawn from seed.
func (s *Session) Reset(seed int64) {
	vp := s.state.Viewport()
	soup := grid.NewDense(vp)
	pkgcore.FillBinary(pkgcore.NewRNG(seed), soup.Cells(), s.cfg.Density)
	s.state = golstate.FromDense(soup)
	s.ticks = 0
	s.log.Info().Int64("seed", seed).Int("population", soup.Population()).Msg("reset")
}

// Step advances the state by the configured number of generations.
func (s *Session) Step() error {
	if err := s.sim.Simulate(s.state, uint(s.cfg.Generations)); err != nil {
		s.log.Error().Err(err).Uint64("tick", s.ticks).Msg("step failed")
		return err
	}
	s.ticks++
	return nil
}

// Paint sets the cell at p.
func (s *Session) Paint(p pkgcore.Point, alive bool) {
	s.state.SetCell(alive, p)
}

// Toggle flips the cell at p.
func (s *Session) Toggle(p pkgcore.Point) {
	s.state.SetCell(!s.state.Cell(p), p)
}

// Pan moves the window by delta, leaving the cells where they are.
func (s *Session) Pan(delta pkgcore.Point) {
	s.state.SetViewport(s.state.Viewport().Translate(delta))
}

// Resize changes the window size, keeping its origin.
func (s *Session) Resize(size pkgcore.Size) {
	vp := s.state.Viewport()
	if vp.Size == size {
		return
	}
	s.state.SetViewport(pkgcore.Rect{Origin: vp.Origin, Size: size})
}

// Generations returns the number of generations advanced per Step.
func (s *Session) Generations() int { return s.cfg.Generations }

// Shift moves the cells and the window together by delta.
func (s *Session) Shift(delta pkgcore.Point) {
	s.state.Translate(s.state.Viewport().Origin.Add(delta))
}

// Copy stores the cells inside r in the clipboard.
func (s *Session) Copy(r pkgcore.Rect) {
	if r.Empty() {
		return
	}
	s.clip = s.state.Substate(r)
	s.log.Debug().Interface("rect", r).Msg("copied selection")
}

// Clipboard returns the last copied region, or nil.
func (s *Session) Clipboard() *golstate.State { return s.clip }

// Paste writes the clipboard with its top-left corner at p. It reports false
// when the clipboard is empty.
func (s *Session) Paste(p pkgcore.Point) bool {
	if s.clip == nil {
		return false
	}
	s.state.SetSubstate(s.clip, pkgcore.Rect{Origin: p, Size: s.clip.Viewport().Size})
	return true
}

// Population counts every live cell, inside the window or not.
func (s *Session) Population() int {
	return s.state.Sparse().Len()
}

// Parameters reports the session's values for the HUD and status lines.
func (s *Session) Parameters() ParameterSnapshot {
	vp := s.state.Viewport()
	return ParameterSnapshot{Groups: []ParameterGroup{
		{
			Name: "Rule",
			Params: []Parameter{
				stringParam("rule", "Rule", s.cfg.Rule),
				stringParam("engine", "Engine", s.sim.Native().String()),
			},
		},
		{
			Name: "Stepping",
			Params: []Parameter{
				intParam("generations", "Generations/tick", s.cfg.Generations),
				intParam("ticks", "Ticks", int(s.ticks)),
			},
		},
		{
			Name: "State",
			Params: []Parameter{
				intParam("revision", "Revision", int(s.state.Revision())),
				stringParam("representation", "Storage", s.state.Kind().String()),
				intParam("population", "Population", s.Population()),
				intParam("x", "Origin X", vp.Origin.X),
				intParam("y", "Origin Y", vp.Origin.Y),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Session) ParameterControls() []ParameterControl {
	return []ParameterControl{
		{Key: "generations", Label: "Generations/tick", Step: 1, Min: 0, Max: 64},
	}
}

// SetIntParameter updates an adjustable value.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "generations":
		if value < 0 {
			value = 0
		}
		s.cfg.Generations = value
		return true
	default:
		return false
	}
}

func intParam(key, label string, value int) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func stringParam(key, label, value string) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeString,
		Value: value,
	}
}

var _ Sim = (*Session)(nil)
