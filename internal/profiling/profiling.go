package profiling

import (
	"maps"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Frame accumulates named CPU durations for one rendered frame. The HUD reads
// it while the frame driver writes it, so access is serialized.
type Frame struct {
	mu     sync.Mutex
	totals map[string]time.Duration
}

func NewFrame() *Frame {
	return &Frame{totals: make(map[string]time.Duration)}
}

// Track returns a stop function that records the elapsed time under name.
// Usage: defer frame.Track("render.Terrain")()
// A nil Frame tracks nothing.
func (f *Frame) Track(name string) func() {
	if f == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		d := time.Since(start)
		f.mu.Lock()
		f.totals[name] += d
		f.mu.Unlock()
	}
}

// Reset clears the totals. Call at the start of each frame.
func (f *Frame) Reset() {
	f.mu.Lock()
	clear(f.totals)
	f.mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func (f *Frame) Snapshot() map[string]time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.totals)
}

// SumWithPrefix adds every total whose name starts with prefix.
func (f *Frame) SumWithPrefix(prefix string) time.Duration {
	var sum time.Duration
	for k, v := range f.Snapshot() {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n largest totals, longest first.
// Example: "render.Terrain:4.2ms, render.Trees:0.8ms"
func (f *Frame) TopN(n int) string {
	ss := f.Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur != list[j].dur {
			return list[i].dur > list[j].dur
		}
		return list[i].name < list[j].name
	})
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, list[i].name+":"+FormatMs(list[i].dur))
	}
	return strings.Join(parts, ", ")
}

// FormatMs renders d in milliseconds with one decimal, dropping ".0".
func FormatMs(d time.Duration) string {
	tenths := d.Microseconds() / 100
	s := strconv.FormatInt(tenths/10, 10)
	if frac := tenths % 10; frac != 0 {
		s += "." + strconv.FormatInt(frac, 10)
	}
	return s + "ms"
}
