package main

import (
	"bytes"
	"strings"
	"testing"

	"mad-life/internal/app"
)

func TestRunWritesFirstAndLastFrames(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Rows, cfg.Cols = 8, 8
	cfg.Pattern = "glider"
	cfg.Generations = 4

	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if strings.Count(got, "generation ") != 2 {
		t.Fatalf("expected two frames, got:\n%s", got)
	}
	if !strings.Contains(got, "generation 0 population 5\n........\n..O.....\n...O....\n.OOO....\n") {
		t.Fatalf("missing initial frame:\n%s", got)
	}
	if !strings.Contains(got, "generation 4 population 5\n........\n........\n...O....\n....O...\n..OOO...\n") {
		t.Fatalf("missing final frame:\n%s", got)
	}
}

func TestRunEvery(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Rows, cfg.Cols = 6, 6
	cfg.Pattern = "blinker"
	cfg.Generations = 6
	cfg.Every = 2

	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, gen := range []string{"generation 0 ", "generation 2 ", "generation 4 ", "generation 6 "} {
		if !strings.Contains(out.String(), gen) {
			t.Fatalf("missing %q in:\n%s", gen, out.String())
		}
	}
	if strings.Contains(out.String(), "generation 3 ") {
		t.Fatal("unexpected off-cycle frame")
	}
}

func TestRunStopsWhenPopulationDies(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Rows, cfg.Cols = 5, 5
	cfg.Pattern = "none"
	cfg.Generations = 50

	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "generation 1 population 0") {
		t.Fatalf("expected early stop frame:\n%s", out.String())
	}
	if strings.Contains(out.String(), "generation 2 ") {
		t.Fatal("run kept going after the board emptied")
	}
}

func TestRunDeathFrameWrittenOnce(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Rows, cfg.Cols = 5, 5
	cfg.Pattern = "none"
	cfg.Generations = 50
	cfg.Every = 1

	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := strings.Count(out.String(), "generation 1 "); n != 1 {
		t.Fatalf("generation 1 written %d times:\n%s", n, out.String())
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Rule = "nope"
	if err := run(cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for bad rule")
	}
}
