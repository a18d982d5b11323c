package game

import (
	"time"
)

// FPSLimiter paces a frame loop to a fixed rate.
type FPSLimiter struct {
	Limit int // frames per second; <= 0 disables pacing
	next  time.Time
}

// NewFPSLimiter creates a limiter for limit frames per second.
func NewFPSLimiter(limit int) *FPSLimiter {
	return &FPSLimiter{Limit: limit}
}

// Wait blocks until the next frame is due.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait() {
	if f.Limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(f.Limit)

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
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// spin out the last few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// Resync after a hitch instead of bursting to catch up.
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
