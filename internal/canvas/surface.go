// Package canvas is the 2D drawing target the isometric renderer paints on.
package canvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Surface is the minimal drawing contract: clear to a size, fill convex
// polygons with a solid color, and scale every later fill by a global alpha.
type Surface interface {
	Clear(w, h int)
	FillConvexPolygon(pts []mgl32.Vec2, c color.RGBA)
	SetGlobalAlpha(a float32)
}

// TextSurface is a Surface that can also draw a line of text with its
// baseline starting at (x, y).
type TextSurface interface {
	Surface
	DrawText(x, y int, s string, c color.RGBA)
}

// ParseHex parses a "#rrggbb" color.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
