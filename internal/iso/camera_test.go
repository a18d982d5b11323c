package iso

import (
	"testing"

	"isocraft/internal/config"
	"isocraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

var dims = world.Dims{W: 20, H: 20}

const top = 12

func testCamera() Camera {
	return Fit(24, 800, 600, dims, top)
}

func TestProjectFormula(t *testing.T) {
	c := Camera{Tile: 10, Origin: mgl32.Vec2{100, 50}}
	tests := []struct {
		ix, iy, iz int
		want       mgl32.Vec2
	}{
		{0, 0, 0, mgl32.Vec2{100, 50}},
		{1, 0, 0, mgl32.Vec2{110, 55}},
		{0, 1, 0, mgl32.Vec2{90, 55}},
		{2, 2, 1, mgl32.Vec2{100, 60}},
	}
	for _, tt := range tests {
		if got := c.Project(tt.ix, tt.iy, tt.iz); got != tt.want {
			t.Errorf("Project(%d,%d,%d) = %v, want %v", tt.ix, tt.iy, tt.iz, got, tt.want)
		}
	}
}

func TestProjectRoundTrip(t *testing.T) {
	c := testCamera()
	for iz := 0; iz <= top; iz++ {
		for iy := 0; iy < dims.H; iy++ {
			for ix := 0; ix < dims.W; ix++ {
				gx, gy := c.Unproject(c.Project(ix, iy, iz), iz)
				if gx != ix || gy != iy {
					t.Fatalf("round trip (%d,%d,%d) -> (%d,%d)", ix, iy, iz, gx, gy)
				}
			}
		}
	}
}

func TestFitCentersWorld(t *testing.T) {
	for _, tc := range []struct {
		w, h int
		d    world.Dims
	}{
		{800, 600, dims},
		{1024, 768, world.Dims{W: 32, H: 16}},
		{300, 900, world.Dims{W: 8, H: 24}},
	} {
		c := Fit(24, tc.w, tc.h, tc.d, top)
		lo, hi := c.Bounds(tc.d, top)
		if cx := (lo.X() + hi.X()) / 2; cx != float32(tc.w)/2 {
			t.Errorf("%v: horizontal center %v, want %v", tc.d, cx, float32(tc.w)/2)
		}
		if cy := (lo.Y() + hi.Y()) / 2; cy != float32(tc.h)/2 {
			t.Errorf("%v: vertical center %v, want %v", tc.d, cy, float32(tc.h)/2)
		}
	}
	if c := testCamera(); c.Origin.X() != 400 {
		t.Errorf("square world origin x = %v, want 400", c.Origin.X())
	}
}

func TestPickClamps(t *testing.T) {
	c := testCamera()
	tests := []struct {
		p      mgl32.Vec2
		wx, wy int
	}{
		{c.Project(-3, 25, 0), 0, 19},
		{c.Project(30, -5, 0), 19, 0},
		{c.Project(-10, -10, 0), 0, 0},
		{c.Project(7, 3, 0), 7, 3},
	}
	for _, tt := range tests {
		if x, y := c.Pick(tt.p, dims); x != tt.wx || y != tt.wy {
			t.Errorf("Pick(%v) = (%d,%d), want (%d,%d)", tt.p, x, y, tt.wx, tt.wy)
		}
	}
}

func TestPickUsesCurrentOrigin(t *testing.T) {
	before := testCamera()
	after := Fit(24, 1600, 1200, dims, top)
	p := after.Project(5, 9, 0)
	if x, y := after.Pick(p, dims); x != 5 || y != 9 {
		t.Fatalf("Pick with resized camera = (%d,%d), want (5,9)", x, y)
	}
	if x, y := before.Pick(p, dims); x == 5 && y == 9 {
		t.Fatalf("stale origin should not match the resized projection")
	}
}

func TestPickSurfaceFlat(t *testing.T) {
	c := testCamera()
	flat := func(x, y int) int { return 4 }
	p := c.Project(5, 5, 4)
	if x, y := c.PickSurface(p, dims, top, flat); x != 5 || y != 5 {
		t.Fatalf("PickSurface = (%d,%d), want (5,5)", x, y)
	}
}

func TestPickSurfaceTerrain(t *testing.T) {
	c := testCamera()
	tr := world.NewTerrain(42, config.DefaultTerrain())
	surface := func(x, y int) int { return world.TopSolidZ(tr, x, y) }

	for _, cell := range [][2]int{{5, 5}, {0, 0}, {10, 10}, {19, 19}, {3, 14}} {
		h := surface(cell[0], cell[1])
		p := c.Project(cell[0], cell[1], h)
		x, y := c.PickSurface(p, dims, top, surface)
		// A taller column further forward can cover the same point; either
		// way the picked top must sit exactly under the pointer.
		if got := c.Project(x, y, surface(x, y)); got != p {
			t.Errorf("pointer at top of %v picked (%d,%d) whose top is at %v, want %v", cell, x, y, got, p)
		}
	}
}

func TestPickSurfaceFallsBack(t *testing.T) {
	c := testCamera()
	never := func(x, y int) int { return -1 }
	p := c.Project(30, 30, 0)
	if x, y := c.PickSurface(p, dims, top, never); x != 19 || y != 19 {
		t.Fatalf("fallback = (%d,%d), want (19,19)", x, y)
	}
}
