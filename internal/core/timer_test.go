package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before the interval elapsed")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after 100ms at 10 TPS")
	}

	clock = clock.Add(10 * time.Second)
	steps := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("a stall should yield at most two catch-up steps, got %d", steps)
	}
}

func TestFixedStepTPSDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 60 {
		t.Fatalf("TPS = %d, want 60", fs.TPS())
	}
	fs.SetTPS(15)
	if fs.TPS() != 15 {
		t.Fatalf("TPS = %d, want 15", fs.TPS())
	}
	fs.SetTPS(-1)
	if fs.TPS() != 60 {
		t.Fatalf("TPS = %d, want 60 after invalid value", fs.TPS())
	}
}
