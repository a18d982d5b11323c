package canvas

import (
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Op identifies a recorded Surface call.
type Op int

const (
	OpClear Op = iota
	OpAlpha
	OpFill
	OpText
)

// Call is one recorded Surface call. Alpha is the global alpha in effect when
// the call was made.
type Call struct {
	Op     Op
	W, H   int
	Points []mgl32.Vec2
	Color  color.RGBA
	Alpha  float32
	Text   string
}

// Recorder is a TextSurface that draws nothing and keeps every call.
type Recorder struct {
	Calls []Call
	alpha float32
}

func NewRecorder() *Recorder {
	return &Recorder{alpha: 1}
}

func (r *Recorder) Clear(w, h int) {
	r.alpha = 1
	r.Calls = append(r.Calls, Call{Op: OpClear, W: w, H: h, Alpha: r.alpha})
}

func (r *Recorder) SetGlobalAlpha(a float32) {
	r.alpha = a
	r.Calls = append(r.Calls, Call{Op: OpAlpha, Alpha: a})
}

func (r *Recorder) FillConvexPolygon(pts []mgl32.Vec2, c color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpFill, Points: slices.Clone(pts), Color: c, Alpha: r.alpha})
}

func (r *Recorder) DrawText(x, y int, s string, c color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpText, Points: []mgl32.Vec2{{float32(x), float32(y)}}, Color: c, Alpha: r.alpha, Text: s})
}

// Fills returns only the polygon fills, in call order.
func (r *Recorder) Fills() []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == OpFill {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.alpha = 1
}
