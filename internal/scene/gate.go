package scene

import "time"

// DefaultUpdateInterval caps rotation updates at 60 per second.
const DefaultUpdateInterval = time.Second / 60

// UpdateGate decides whether enough time has passed to advance the state.
// Timestamps are seconds on a monotonic clock such as glfw.GetTime.
// A zero interval opens the gate on every call, so the rotation speed then
// follows the frame rate.
type UpdateGate struct {
	interval float64
	last     float64
}

// NewUpdateGate starts a gate whose first interval is measured from start.
func NewUpdateGate(interval time.Duration, start float64) *UpdateGate {
	return &UpdateGate{interval: interval.Seconds(), last: start}
}

// Open reports whether an update is due at now and, if so, records now as
// the last update time.
func (g *UpdateGate) Open(now float64) bool {
	if now-g.last < g.interval {
		return false
	}
	g.last = now
	return true
}
