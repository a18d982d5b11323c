package profiling

import (
	"testing"
	"time"
)

func TestFormatMs(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ms"},
		{4200 * time.Microsecond, "4.2ms"},
		{3 * time.Millisecond, "3ms"},
		{1049 * time.Microsecond, "1ms"},
		{12345 * time.Microsecond, "12.3ms"},
	}
	for _, tt := range tests {
		if got := FormatMs(tt.d); got != tt.want {
			t.Errorf("FormatMs(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFrameAccumulates(t *testing.T) {
	f := NewFrame()
	f.Track("render.Terrain")()
	f.Track("render.Terrain")()
	f.Track("render.Water")()
	f.Track("session.Input")()

	snap := f.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot has %d entries, want 3", len(snap))
	}
	if got := f.SumWithPrefix("render."); got != snap["render.Terrain"]+snap["render.Water"] {
		t.Errorf("SumWithPrefix = %v", got)
	}

	f.Reset()
	if len(f.Snapshot()) != 0 {
		t.Errorf("Reset left totals behind")
	}
}

func TestTopNOrdering(t *testing.T) {
	f := NewFrame()
	f.totals["a"] = 2 * time.Millisecond
	f.totals["b"] = 5 * time.Millisecond
	f.totals["c"] = 1 * time.Millisecond

	if got := f.TopN(2); got != "b:5ms, a:2ms" {
		t.Errorf("TopN(2) = %q", got)
	}
	if got := f.TopN(10); got != "b:5ms, a:2ms, c:1ms" {
		t.Errorf("TopN(10) = %q", got)
	}
}

func TestNilFrameTrack(t *testing.T) {
	var f *Frame
	f.Track("noop")()
}
