package app

import (
	"flag"
	"os"
	"strconv"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"mad-gol/internal/core"
	"mad-gol/internal/rules"
	pkgcore "mad-gol/pkg/core"
	"mad-gol/pkg/golstate"
	"mad-gol/pkg/grid"
	"mad-gol/pkg/pattern"
)

// Config represents the parameters shared by the binaries. Environment
// variables are applied by LoadEnv; flags bound with Bind override both.
type Config struct {
	Sim           string  `config:"GOL_SIM"`
	Rule          string  `config:"GOL_RULE"`
	Engine        string  `config:"GOL_ENGINE"`
	Wrap          bool    `config:"GOL_WRAP"`
	MaxPopulation int     `config:"GOL_MAX_POPULATION"`
	Pattern       string  `config:"GOL_PATTERN"`
	Scale         int     `config:"GOL_SCALE"`
	TPS           int     `config:"GOL_TPS"`
	Seed          int64   `config:"GOL_SEED"`
	Width         int     `config:"GOL_WIDTH"`
	Height        int     `config:"GOL_HEIGHT"`
	Density       float64 `config:"GOL_DENSITY"`
	Generations   int     `config:"GOL_GENERATIONS"`
	LogLevel      string  `config:"GOL_LOG_LEVEL"`
	PrettyLog     bool    `config:"GOL_PRETTY_LOG"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "life",
		Engine:      "hashed",
		Wrap:        true,
		Scale:       4,
		TPS:         15,
		Seed:        42,
		Width:       160,
		Height:      120,
		Density:     0.25,
		Generations: 1,
		LogLevel:    "info",
		PrettyLog:   true,
	}
}

// LoadEnv applies GOL_* environment variables on top of the current values.
func (c *Config) LoadEnv() error {
	return eris.Wrap(jlconfig.FromEnv().To(c), "load environment")
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "registered rule to run")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule notation overriding -sim, e.g. B36/S23")
	fs.StringVar(&c.Engine, "engine", c.Engine, "stepping engine: hashed or simple")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "toroidal edges for the simple engine")
	fs.IntVar(&c.MaxPopulation, "max-population", c.MaxPopulation, "abort a step past this many live cells (0 = unlimited)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern name or .cells file to load instead of a random soup")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
	fs.IntVar(&c.Width, "w", c.Width, "viewport width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "viewport height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of live cells in a random soup")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations per tick")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "zerolog level")
	fs.BoolVar(&c.PrettyLog, "pretty-log", c.PrettyLog, "human-readable logs")
}

// RuleOptions converts the config into the factory option map.
func (c *Config) RuleOptions() map[string]string {
	return map[string]string{
		"rule":           c.Rule,
		"engine":         c.Engine,
		"wrap":           strconv.FormatBool(c.Wrap),
		"max_population": strconv.Itoa(c.MaxPopulation),
	}
}

// Notation returns the rule string in effect.
func (c *Config) Notation() string {
	if c.Rule != "" {
		return c.Rule
	}
	return rules.Builtin[c.Sim]
}

// NewSession builds the simulator and session described by c, then seeds it
// with the configured pattern or a random soup.
func (c *Config) NewSession(log zerolog.Logger) (*core.Session, error) {
	factory, ok := core.Rules()[c.Sim]
	if !ok {
		return nil, eris.Errorf("unknown sim %q", c.Sim)
	}
	sim, err := factory(c.RuleOptions(), golstate.WithLogger(log))
	if err != nil {
		return nil, eris.Wrapf(err, "build %s", c.Sim)
	}
	viewport := pkgcore.R(0, 0, c.Width, c.Height)
	s := core.NewSession(core.SessionConfig{
		Name:        c.Sim,
		Rule:        c.Notation(),
		Viewport:    viewport,
		Generations: c.Generations,
		Density:     c.Density,
	}, sim, log)

	if c.Pattern == "" {
		s.Reset(c.Seed)
		return s, nil
	}
	p, err := LoadPattern(c.Pattern)
	if err != nil {
		return nil, err
	}
	p.Translate(Centered(viewport, p.Viewport()))
	s.Load(p)
	return s, nil
}

// LoadPattern resolves a built-in pattern name or reads a .cells file.
func LoadPattern(ref string) (grid.Sparse, error) {
	if p, err := pattern.Builtin(ref, pkgcore.Point{}); err == nil {
		return p, nil
	}
	f, err := os.Open(ref)
	if err != nil {
		return grid.Sparse{}, eris.Wrapf(err, "open pattern %q", ref)
	}
	defer f.Close()
	return pattern.Read(f, pkgcore.Point{})
}

// Centered returns the delta that moves inner to the middle of outer.
func Centered(outer, inner pkgcore.Rect) pkgcore.Point {
	target := pkgcore.Pt(
		outer.Origin.X+(outer.Size.W-inner.Size.W)/2,
		outer.Origin.Y+(outer.Size.H-inner.Size.H)/2,
	)
	return target.Sub(inner.Origin)
}
