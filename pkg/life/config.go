package life

import "strconv"

// Config holds parameters for the Life simulation.
type Config struct {
	Rows    int
	Cols    int
	Rule    Rule
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rows: 128, Cols: 128, Rule: Conway, Density: DefaultDensity}
}

// FromMap populates a Config from a string map. Unparseable values keep their
// defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Density = parsed
		}
	}
	return c
}
