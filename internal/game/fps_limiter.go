package game

import "time"

// spinWindow is how long before the deadline the limiter stops sleeping and
// busy-waits instead.
const spinWindow = 200 * time.Microsecond

// FPSLimiter paces frames to a fixed rate.
type FPSLimiter struct {
	limit int
	next  time.Time
}

// NewFPSLimiter creates a limiter for limit frames per second; 0 disables it.
func NewFPSLimiter(limit int) *FPSLimiter {
	return &FPSLimiter{limit: limit}
}

// Wait blocks until the next frame is due. It sleeps for most of the gap and
// spins for the last few microseconds, which is much more precise at high caps.
func (f *FPSLimiter) Wait() {
	if f.limit <= 0 {
		return
	}
	target := time.Second / time.Duration(f.limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// Resync after a hitch instead of trying to catch up.
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
