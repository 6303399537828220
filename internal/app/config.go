package app

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"mad-life/pkg/life"
)

// patternRandom fills the board from the seed instead of stamping a template.
const patternRandom = "random"

// patternNone starts from an empty board.
const patternNone = "none"

// Config represents the runtime parameters shared by the GUI and the headless
// runner. Environment variables seed the values; flags override them.
type Config struct {
	Rows        int     `env:"LIFE_ROWS"`
	Cols        int     `env:"LIFE_COLS"`
	Rule        string  `env:"LIFE_RULE"`
	Density     float64 `env:"LIFE_DENSITY"`
	Pattern     string  `env:"LIFE_PATTERN"`
	Scale       int     `env:"LIFE_SCALE"`
	TPS         int     `env:"LIFE_TPS"`
	Seed        int64   `env:"LIFE_SEED"`
	Generations int     `env:"LIFE_GENERATIONS"`
	Every       int     `env:"LIFE_EVERY"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:        120,
		Cols:        160,
		Rule:        "B3/S23",
		Density:     life.DefaultDensity,
		Pattern:     patternRandom,
		Scale:       5,
		TPS:         15,
		Seed:        42,
		Generations: 100,
		Every:       0,
	}
}

// LoadEnv overlays values from LIFE_* environment variables.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule as B/S notation or preset name")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for random fills")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial board: random, none, or a pattern name")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to run (headless)")
	fs.IntVar(&c.Every, "every", c.Every, "print a frame every N generations, 0 for first and last only (headless)")
}

// Validate checks the values the engine cannot absorb on its own.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", c.Generations)
	}
	if c.Every < 0 {
		return fmt.Errorf("every must not be negative, got %d", c.Every)
	}
	return nil
}

// Build constructs and seeds an engine from the configuration.
func (c *Config) Build() (*life.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rule, err := life.ParseRule(c.Rule)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	e := life.NewWithConfig(life.Config{Rows: c.Rows, Cols: c.Cols, Rule: rule, Density: c.Density})
	switch c.Pattern {
	case "", patternRandom:
		e.Reset(c.Seed)
	case patternNone:
	default:
		p, err := life.PatternByName(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		e.Stamp(p, 1, 1)
	}
	return e, nil
}
