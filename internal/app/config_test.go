package app

import (
	"errors"
	"flag"
	"testing"

	"mad-life/pkg/life"
)

func TestConfigEnvThenFlags(t *testing.T) {
	t.Setenv("LIFE_ROWS", "33")
	t.Setenv("LIFE_COLS", "44")
	t.Setenv("LIFE_RULE", "highlife")
	t.Setenv("LIFE_DENSITY", "0.5")

	cfg := NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-cols", "21", "-seed", "9"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Rows != 33 || cfg.Cols != 21 || cfg.Rule != "highlife" || cfg.Density != 0.5 || cfg.Seed != 9 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Scale != NewConfig().Scale {
		t.Fatalf("unset values should keep defaults, scale=%d", cfg.Scale)
	}
}

func TestConfigEnvRejectsGarbage(t *testing.T) {
	t.Setenv("LIFE_ROWS", "many")
	if err := NewConfig().LoadEnv(); err == nil {
		t.Fatal("expected error for non-numeric LIFE_ROWS")
	}
}

func TestBuildPatterns(t *testing.T) {
	cfg := NewConfig()
	cfg.Rows, cfg.Cols = 10, 10

	cfg.Pattern = "none"
	e, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build(none): %v", err)
	}
	if e.Population() != 0 {
		t.Fatalf("none population = %d", e.Population())
	}

	cfg.Pattern = "glider"
	e, err = cfg.Build()
	if err != nil {
		t.Fatalf("Build(glider): %v", err)
	}
	if e.Population() != 5 || !e.Cell(1, 2) {
		t.Fatalf("glider not stamped at (1,1), population %d", e.Population())
	}

	cfg.Pattern = "random"
	cfg.Density = 1
	e, err = cfg.Build()
	if err != nil {
		t.Fatalf("Build(random): %v", err)
	}
	if e.Population() != 100 {
		t.Fatalf("density 1 population = %d, want 100", e.Population())
	}
}

func TestBuildErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Rule = "B3/S23/X"
	if _, err := cfg.Build(); !errors.Is(err, life.ErrBadRule) {
		t.Fatalf("bad rule error = %v", err)
	}

	cfg = NewConfig()
	cfg.Pattern = "unknown"
	if _, err := cfg.Build(); err == nil {
		t.Fatal("expected error for unknown pattern")
	}

	for _, mutate := range []func(*Config){
		func(c *Config) { c.Rows = 0 },
		func(c *Config) { c.Cols = -1 },
		func(c *Config) { c.Scale = 0 },
		func(c *Config) { c.Generations = -1 },
		func(c *Config) { c.Every = -2 },
	} {
		cfg := NewConfig()
		mutate(cfg)
		if _, err := cfg.Build(); err == nil {
			t.Fatalf("expected validation error for %+v", cfg)
		}
	}
}
