package core

import "time"

// FixedStep gates simulation steps on elapsed time so the step cadence does
// not depend on how often frames are rendered.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep that fires once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the step interval. Non-positive values fall back to one
// second.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	f.step = interval
}

// Interval returns the configured step interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Advance adds delta to the accumulator and reports whether a step is due.
// At most one step fires per call; backlog beyond one interval is dropped.
func (f *FixedStep) Advance(delta time.Duration) bool {
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator >= f.step {
		f.accumulator = 0
	}
	return true
}

// Reset discards any accumulated time.
func (f *FixedStep) Reset() { f.accumulator = 0 }
