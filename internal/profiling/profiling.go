// Package profiling records per-frame CPU time by named phase.
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Frame accumulates durations for one frame. Use it from the render thread
// only.
type Frame struct {
	totals map[string]time.Duration
	now    func() time.Time
}

// NewFrame returns an empty frame profile.
func NewFrame() *Frame {
	return &Frame{totals: make(map[string]time.Duration), now: time.Now}
}

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer f.Track("frame.Draw")()
func (f *Frame) Track(name string) func() {
	start := f.now()
	return func() {
		f.totals[name] += f.now().Sub(start)
	}
}

// Add records d under name directly.
func (f *Frame) Add(name string, d time.Duration) {
	f.totals[name] += d
}

// Reset clears the totals. Call at the start of each frame.
func (f *Frame) Reset() {
	clear(f.totals)
}

// SumWithPrefix adds up every phase whose name starts with prefix.
func (f *Frame) SumWithPrefix(prefix string) time.Duration {
	var sum time.Duration
	for k, v := range f.totals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n slowest phases, e.g. "frame.Draw:4.2ms, glfw.SwapBuffers:1ms".
func (f *Frame) TopN(n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(f.totals))
	for k, v := range f.totals {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur != list[j].dur {
			return list[i].dur > list[j].dur
		}
		return list[i].name < list[j].name
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, p.name+":"+formatMs(p.dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	s := fmt.Sprintf("%.1f", float64(d.Microseconds())/1000.0)
	return strings.TrimSuffix(s, ".0") + "ms"
}
