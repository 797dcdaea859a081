// Package rules registers the built-in binary automata with the core registry.
package rules

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"mad-gol/internal/core"
	"mad-gol/pkg/golstate"
	"mad-gol/pkg/sims/life"
)

// ErrUnknownEngine is returned for an engine option other than hashed or simple.
var ErrUnknownEngine = eris.New("unknown engine")

// Config holds the options shared by every registered rule.
type Config struct {
	Rule          string
	Engine        string
	Wrap          bool
	MaxPopulation int
}

// DefaultConfig returns the defaults for the given rule notation.
func DefaultConfig(rule string) Config {
	return Config{Rule: rule, Engine: "hashed", Wrap: true}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(rule string, cfg map[string]string) Config {
	c := DefaultConfig(rule)
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["engine"]; ok && v != "" {
		c.Engine = strings.ToLower(v)
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Wrap = parsed
		}
	}
	if v, ok := cfg["max_population"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxPopulation = parsed
		}
	}
	return c
}

// Build constructs the Simulator described by c.
func (c Config) Build(opts ...golstate.Option) (*golstate.Simulator, error) {
	rule, err := life.ParseRule(c.Rule)
	if err != nil {
		return nil, err
	}
	switch c.Engine {
	case "hashed", "sparse":
		return golstate.NewSimulator(&life.Hashed{Rule: rule, MaxPopulation: c.MaxPopulation}, opts...), nil
	case "simple", "dense":
		return golstate.NewSimpleSimulator(life.NewSimple(rule, c.Wrap), opts...), nil
	default:
		return nil, eris.Wrapf(ErrUnknownEngine, "%q", c.Engine)
	}
}

// Builtin maps registry names to rule notation.
var Builtin = map[string]string{
	"life":       "B3/S23",
	"highlife":   "B36/S23",
	"seeds":      "B2/S",
	"daynight":   "B3678/S34678",
	"replicator": "B1357/S1357",
}

func init() {
	for name, notation := range Builtin {
		core.Register(name, func(cfg map[string]string, opts ...golstate.Option) (*golstate.Simulator, error) {
			return FromMap(notation, cfg).Build(opts...)
		})
	}
}
