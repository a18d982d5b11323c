package iso

import (
	"math"

	"isocraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera maps grid voxels to screen pixels with a 2:1 diamond projection.
// Tile is the half-width of one tile footprint in pixels.
type Camera struct {
	Tile   float32
	Origin mgl32.Vec2
}

// Project returns the top vertex of the voxel at (ix, iy, iz).
func (c Camera) Project(ix, iy, iz int) mgl32.Vec2 {
	t := c.Tile
	return mgl32.Vec2{
		float32(ix-iy)*t + c.Origin.X(),
		float32(ix+iy)*t/2 + c.Origin.Y() - float32(iz)*t,
	}
}

// Fit returns a camera whose origin centers a dims-sized world horizontally
// and centers its bounding box vertically in a width x height surface. top is
// the highest layer anything can occupy.
func Fit(tile float32, width, height int, dims world.Dims, top int) Camera {
	t := tile
	// Leftmost pixel is -H*t, rightmost W*t relative to the origin.
	ox := float32(width)/2 - float32(dims.W-dims.H)*t/2

	// Highest pixel is the back corner at layer top, lowest the bottom edge of
	// the front voxel at layer 0.
	minY := -float32(top) * t
	maxY := float32(dims.W+dims.H-2)*t/2 + 2*t
	oy := (float32(height)-(maxY-minY))/2 - minY

	return Camera{Tile: tile, Origin: mgl32.Vec2{ox, oy}}
}

// Bounds reports the screen rectangle covered by a world of the given extent
// and stack height, as min and max corners.
func (c Camera) Bounds(dims world.Dims, top int) (mgl32.Vec2, mgl32.Vec2) {
	t := c.Tile
	lo := c.Origin.Add(mgl32.Vec2{-float32(dims.H) * t, -float32(top) * t})
	hi := c.Origin.Add(mgl32.Vec2{float32(dims.W) * t, float32(dims.W+dims.H-2)*t/2 + 2*t})
	return lo, hi
}

// round is floor(v+0.5); halves round toward positive infinity.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Unproject inverts Project for a pointer p assumed to lie on layer iz. The
// result is not clamped.
func (c Camera) Unproject(p mgl32.Vec2, iz int) (int, int) {
	t := float64(c.Tile)
	mx := float64(p.X()) - float64(c.Origin.X())
	my := float64(p.Y()) - float64(c.Origin.Y()) + float64(iz)*t

	u := my / (t / 2)
	v := mx / t
	return round((u + v) / 2), round((u - v) / 2)
}

// Pick unprojects p on layer 0 and clamps each axis into the world.
func (c Camera) Pick(p mgl32.Vec2, dims world.Dims) (int, int) {
	ix, iy := c.Unproject(p, 0)
	return dims.Clamp(ix, iy)
}

// PickSurface finds the column whose visible top lies under p. It walks the
// layers from top down to 0 and returns the first in-bounds column whose
// surface equals the layer it was unprojected on. When no column matches it
// falls back to Pick.
func (c Camera) PickSurface(p mgl32.Vec2, dims world.Dims, top int, surface func(x, y int) int) (int, int) {
	for iz := top; iz >= 0; iz-- {
		ix, iy := c.Unproject(p, iz)
		if !dims.Contains(ix, iy) {
			continue
		}
		if surface(ix, iy) == iz {
			return ix, iy
		}
	}
	return c.Pick(p, dims)
}
