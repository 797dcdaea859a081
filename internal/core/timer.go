package core

import "time"

// maxCatchUp bounds how many ticks Due reports after a stall, so a slow frame
// cannot snowball into an ever longer burst of session steps.
const maxCatchUp = 4

// FixedStep turns wall-clock time into session ticks at a ticks-per-second
// rate.
type FixedStep struct {
	step    time.Duration
	pending time.Duration
	last    time.Time
	now     func() time.Time
}

// NewFixedStep returns a stepper targeting tps. The first call to Due
// reports one tick.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.pending = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current rate.
func (f *FixedStep) TPS() int { return int(time.Second / f.step) }

// Due reports how many ticks have elapsed since the previous call, at most
// maxCatchUp. Time beyond the cap is dropped.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.pending += now.Sub(f.last)
	f.last = now

	n := int(f.pending / f.step)
	if n > maxCatchUp {
		n = maxCatchUp
		f.pending = 0
		return n
	}
	f.pending -= time.Duration(n) * f.step
	return n
}

// Reset forgets accumulated time, e.g. while the session is paused.
func (f *FixedStep) Reset() {
	f.pending = 0
	f.last = time.Time{}
}
