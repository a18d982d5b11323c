package render

import (
	"fmt"
	"image/color"

	"isocraft/internal/canvas"
	"isocraft/internal/config"
	"isocraft/internal/iso"
	"isocraft/internal/profiling"
	"isocraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer paints a world onto a canvas.Surface with the painter's algorithm:
// every voxel is drawn as three flat faces and later voxels cover earlier
// ones, so each pass emits voxels farthest first.
type Renderer struct {
	Palette     Palette
	Background  color.RGBA
	WaterAlpha  float32
	CursorAlpha float32
	HUD         bool
	HUDColor    color.RGBA

	Profile *profiling.Frame
}

// New builds a renderer from render settings. prof may be nil.
func New(cfg config.Render, prof *profiling.Frame) (*Renderer, error) {
	bg, err := canvas.ParseHex(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("render background: %w", err)
	}
	r := &Renderer{
		Palette:     DefaultPalette(),
		Background:  bg,
		WaterAlpha:  float32(cfg.WaterAlpha),
		CursorAlpha: float32(cfg.CursorAlpha),
		HUD:         cfg.HUD,
		HUDColor:    color.RGBA{0xf0, 0xf0, 0xf0, 0xff},
		Profile:     prof,
	}
	return r, nil
}

// Scene is everything one frame depends on besides the renderer settings.
type Scene struct {
	World  *world.World
	Camera iso.Camera
	Width  int
	Height int

	// Cursor is the column under the pointer. The preview block is drawn one
	// layer above its surface when ShowCursor is set.
	Cursor     [2]int
	ShowCursor bool

	HUDLines []string
}

// Stats counts the voxels each pass emitted.
type Stats struct {
	Terrain int
	Water   int
	Trees   int
	Overlay int
}

// Total is the number of voxels drawn.
func (s Stats) Total() int { return s.Terrain + s.Water + s.Trees + s.Overlay }

// Draw renders one frame: clear, terrain, water, trees, placed blocks, cursor
// preview and the HUD.
func (r *Renderer) Draw(s canvas.Surface, sc Scene) Stats {
	defer r.Profile.Track("render.Frame")()

	var st Stats
	s.Clear(sc.Width, sc.Height)
	s.SetGlobalAlpha(1)

	st.Terrain = r.drawAll(s, sc.Camera, "render.Terrain", TerrainVoxels(sc.World))

	water := WaterVoxels(sc.World)
	s.SetGlobalAlpha(r.WaterAlpha)
	st.Water = r.drawAll(s, sc.Camera, "render.Water", water)
	s.SetGlobalAlpha(1)

	st.Trees = r.drawAll(s, sc.Camera, "render.Trees", world.TreeVoxels(sc.World.Trees()))
	st.Overlay = r.drawAll(s, sc.Camera, "render.Overlay", sc.World.Overlay.Sorted())

	if sc.ShowCursor {
		x, y := sc.Cursor[0], sc.Cursor[1]
		s.SetGlobalAlpha(r.CursorAlpha)
		r.DrawVoxel(s, sc.Camera, world.BlockPos{X: x, Y: y, Z: sc.World.SurfaceZ(x, y) + 1}, world.Stone)
		s.SetGlobalAlpha(1)
	}

	if ts, ok := s.(canvas.TextSurface); ok && r.HUD {
		r.drawHUD(ts, sc.HUDLines)
	}
	return st
}

func (r *Renderer) drawAll(s canvas.Surface, cam iso.Camera, pass string, voxels []world.PlacedVoxel) int {
	defer r.Profile.Track(pass)()
	for _, pv := range voxels {
		r.DrawVoxel(s, cam, pv.Pos, pv.Voxel)
	}
	return len(voxels)
}

// DrawVoxel fills the top, left and right faces of one voxel.
func (r *Renderer) DrawVoxel(s canvas.Surface, cam iso.Camera, pos world.BlockPos, v world.Voxel) {
	t := cam.Tile
	p := cam.Project(pos.X, pos.Y, pos.Z)
	top, left, right := r.Palette.Faces(v)

	s.FillConvexPolygon([]mgl32.Vec2{
		p,
		p.Add(mgl32.Vec2{t, t / 2}),
		p.Add(mgl32.Vec2{0, t}),
		p.Add(mgl32.Vec2{-t, t / 2}),
	}, top)
	s.FillConvexPolygon([]mgl32.Vec2{
		p.Add(mgl32.Vec2{-t, t / 2}),
		p.Add(mgl32.Vec2{-t, t * 1.5}),
		p.Add(mgl32.Vec2{0, 2 * t}),
		p.Add(mgl32.Vec2{0, t}),
	}, left)
	s.FillConvexPolygon([]mgl32.Vec2{
		p.Add(mgl32.Vec2{t, t / 2}),
		p.Add(mgl32.Vec2{t, t * 1.5}),
		p.Add(mgl32.Vec2{0, 2 * t}),
		p.Add(mgl32.Vec2{0, t}),
	}, right)
}

func (r *Renderer) drawHUD(s canvas.TextSurface, lines []string) {
	defer r.Profile.Track("render.HUD")()
	lh := canvas.LineHeight(canvas.DefaultFace())
	for i, line := range lines {
		s.DrawText(8, 8+lh*(i+1), line, r.HUDColor)
	}
}

// TerrainVoxels lists every solid terrain voxel of w in paint order. Layers
// above a column's height and cave voxels are skipped.
func TerrainVoxels(w *world.World) []world.PlacedVoxel {
	heights := make([]int, w.Dims.W*w.Dims.H)
	top := 0
	for y := 0; y < w.Dims.H; y++ {
		for x := 0; x < w.Dims.W; x++ {
			h := w.HeightAt(x, y)
			heights[y*w.Dims.W+x] = h
			top = max(top, h)
		}
	}

	out := make([]world.PlacedVoxel, 0, len(heights)*(top+1))
	for z := 0; z <= top; z++ {
		for y := 0; y < w.Dims.H; y++ {
			for x := 0; x < w.Dims.W; x++ {
				if z > heights[y*w.Dims.W+x] {
					continue
				}
				if v := w.VoxelAt(x, y, z); v != world.Air {
					out = append(out, world.PlacedVoxel{Pos: world.BlockPos{X: x, Y: y, Z: z}, Voxel: v})
				}
			}
		}
	}
	return out
}

// WaterVoxels places one water voxel at sea level on every column whose
// surface is at or below it, in paint order.
func WaterVoxels(w *world.World) []world.PlacedVoxel {
	sea := w.Terrain.SeaLevel
	var out []world.PlacedVoxel
	for y := 0; y < w.Dims.H; y++ {
		for x := 0; x < w.Dims.W; x++ {
			if w.HeightAt(x, y) <= sea {
				out = append(out, world.PlacedVoxel{Pos: world.BlockPos{X: x, Y: y, Z: sea}, Voxel: world.Water})
			}
		}
	}
	return out
}
