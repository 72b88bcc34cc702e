package sim

import "time"

// FixedInterval is a run condition that fires once per elapsed step of wall
// clock time, independent of how many frames were rendered in between.
//
// Due intervals are counted from the start time rather than accumulated
// frame by frame, so rounding in the caller's frame deltas never drops or
// adds a firing.
type FixedInterval struct {
	step  time.Duration
	start time.Time
	fired int64
}

// NewFixedInterval creates a condition whose first firing is one step after start.
func NewFixedInterval(step time.Duration, start time.Time) *FixedInterval {
	return &FixedInterval{step: step, start: start}
}

// Step returns the interval length.
func (f *FixedInterval) Step() time.Duration {
	return f.step
}

// Due returns how many intervals completed since the previous call and
// marks them as fired.
func (f *FixedInterval) Due(now time.Time) int {
	if f.step <= 0 {
		return 0
	}

	elapsed := now.Sub(f.start)
	if elapsed < 0 {
		return 0
	}

	total := int64(elapsed / f.step)
	n := total - f.fired
	if n <= 0 {
		return 0
	}
	f.fired = total
	return int(n)
}

// release marks n fired intervals as due again.
func (f *FixedInterval) release(n int) {
	f.fired -= int64(n)
}
