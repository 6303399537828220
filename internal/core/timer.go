package core

import "time"

// FixedStep paces generation advances at a steady ticks-per-second rate
// independent of the frame rate.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop backlog after a stall so a long pause doesn't burst.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
