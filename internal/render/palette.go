package render

import (
	"image/color"
	"math"

	"isocraft/internal/canvas"
	"isocraft/internal/world"
)

// Face brightness multipliers for the three visible faces of a voxel.
const (
	topShade   = 1.0
	leftShade  = 0.9
	rightShade = 0.8
)

// Shades are the base colors of a voxel's top, left and right faces.
type Shades [3]color.RGBA

// Palette maps every voxel type to its three face colors.
type Palette [world.VoxelCount]Shades

func shades(top, left, right string) Shades {
	return Shades{canvas.MustParseHex(top), canvas.MustParseHex(left), canvas.MustParseHex(right)}
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	var p Palette
	p[world.Grass] = shades("#3cb371", "#2e8b57", "#236b46")
	p[world.CherryGrass] = shades("#f2a7c6", "#de8fb2", "#c7759c")
	p[world.Sand] = shades("#e6d690", "#d1c37a", "#bfae64")
	p[world.Dirt] = shades("#6b4f3a", "#5a3f2b", "#4a3324")
	p[world.Stone] = shades("#8f9aa3", "#6e7781", "#565e66")
	p[world.Water] = shades("#4da3ff", "#2b78e4", "#1e4f91")
	p[world.Wood] = shades("#8b5a2b", "#6f451e", "#5a3718")
	p[world.Leaf] = shades("#4caf50", "#3e8e41", "#2f6b31")
	p[world.CherryLeaf] = shades("#ffb7d5", "#e89bbd", "#c97fa1")
	return p
}

// Shade scales each color channel by k and floors the result. Alpha is kept.
func Shade(c color.RGBA, k float64) color.RGBA {
	f := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, math.Floor(float64(v)*k))))
	}
	return color.RGBA{R: f(c.R), G: f(c.G), B: f(c.B), A: c.A}
}

// Faces returns the final top, left and right colors for v.
func (p *Palette) Faces(v world.Voxel) (top, left, right color.RGBA) {
	s := p[v]
	return Shade(s[0], topShade), Shade(s[1], leftShade), Shade(s[2], rightShade)
}
