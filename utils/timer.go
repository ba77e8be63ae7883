package utils

import "time"

// FixedStep decides when an auto-advancing front-end should step the
// engine. Elapsed time accumulates between polls and one period is
// subtracted per step, so a late poll carries the surplus forward.
type FixedStep struct {
	period      time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep firing every period
func NewFixedStep(period time.Duration) *FixedStep {
	return newFixedStepWithClock(period, time.Now)
}

func newFixedStepWithClock(period time.Duration, now func() time.Time) *FixedStep {
	f := &FixedStep{now: now}
	f.SetPeriod(period)
	return f
}

// SetPeriod changes the step period, clamped to the allowed range
func (f *FixedStep) SetPeriod(period time.Duration) {
	f.period = min(max(period, MinAutoProgressionTime), MaxAutoProgressionTime)
}

// Period returns the current step period
func (f *FixedStep) Period() time.Duration {
	return f.period
}

// Reset drops accumulated time, e.g. after resuming from pause
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the caller should advance by one generation
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.period {
		f.accumulator -= f.period
		return true
	}
	return false
}
