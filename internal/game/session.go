package game

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"log"
	"time"

	"isocraft/internal/canvas"
	"isocraft/internal/config"
	"isocraft/internal/iso"
	"isocraft/internal/profiling"
	"isocraft/internal/render"
	"isocraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Session is the interactive state around one world: the camera fitted to the
// current surface, the cursor column and the renderer. It never touches a
// window; front ends feed it pointer positions and surfaces.
type Session struct {
	Config   config.Config
	World    *world.World
	Camera   iso.Camera
	Renderer *render.Renderer
	Profile  *profiling.Frame
	Limiter  *FPSLimiter

	Cursor        [2]int
	ShowCursor    bool
	Width, Height int
	ShowProfiling bool

	Frames           int
	FPS              int
	LastFPSCheckTime time.Time
	LastStats        render.Stats

	// BuildTime is how long the current world took to generate and memoize.
	BuildTime time.Duration
}

// RandomSeed draws a world seed from the system entropy source.
func RandomSeed() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("random seed: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ResolveSeed returns the configured seed or a fresh random one, and logs it.
func ResolveSeed(cfg config.Config) (uint32, error) {
	if cfg.World.Seed != nil {
		log.Printf("seed: %d", *cfg.World.Seed)
		return *cfg.World.Seed, nil
	}
	seed, err := RandomSeed()
	if err != nil {
		return 0, err
	}
	log.Printf("seed: %d", seed)
	return seed, nil
}

// NewSession builds a memoized world for seed and fits the camera to a
// width x height surface.
func NewSession(cfg config.Config, seed uint32, width, height int) (*Session, error) {
	prof := profiling.NewFrame()
	r, err := render.New(cfg.Render, prof)
	if err != nil {
		return nil, err
	}
	s := &Session{
		Config:           cfg,
		Renderer:         r,
		Profile:          prof,
		Limiter:          NewFPSLimiter(cfg.Render.FPSLimit),
		ShowCursor:       true,
		LastFPSCheckTime: time.Now(),
	}
	s.buildWorld(seed)
	s.Cursor = [2]int{s.World.Dims.W / 2, s.World.Dims.H / 2}
	s.Resize(width, height)
	return s, nil
}

func (s *Session) buildWorld(seed uint32) {
	start := time.Now()
	s.World = world.New(seed, s.Config)
	s.World.Memoize()
	s.BuildTime = time.Since(start)
}

// Resize refits the camera to a new surface size. The world is untouched.
func (s *Session) Resize(width, height int) {
	s.Width, s.Height = width, height
	s.Camera = iso.Fit(float32(s.Config.Render.Tile), width, height, s.World.Dims, s.World.StackHeight())
}

// PointerMove moves the cursor to the column whose visible top is under the
// pointer at pixel (x, y).
func (s *Session) PointerMove(x, y float64) {
	p := mgl32.Vec2{float32(x), float32(y)}
	ix, iy := s.Camera.PickSurface(p, s.World.Dims, s.World.StackHeight(), s.World.SurfaceZ)
	s.Cursor = [2]int{ix, iy}
}

// CommitCursor places a stone block on the cursor column.
func (s *Session) CommitCursor() (world.BlockPos, bool) {
	pos, ok := s.World.Commit(s.Cursor[0], s.Cursor[1])
	if ok {
		log.Printf("placed stone at %d,%d,%d", pos.X, pos.Y, pos.Z)
	}
	return pos, ok
}

// Commit moves the cursor to the pointer and places a block there in one
// step, as a touch does.
func (s *Session) Commit(x, y float64) (world.BlockPos, bool) {
	s.PointerMove(x, y)
	return s.CommitCursor()
}

// Reseed replaces the world with a fresh one for seed. Placed blocks are
// discarded; dimensions, configuration and cursor are kept.
func (s *Session) Reseed(seed uint32) {
	s.buildWorld(seed)
	s.Resize(s.Width, s.Height)
	log.Printf("seed: %d", seed)
}

// ToggleCaves flips cave carving and rebuilds the terrain field.
func (s *Session) ToggleCaves() bool {
	s.Config.Terrain.Caves = !s.Config.Terrain.Caves
	s.World.SetTerrain(s.Config.Terrain)
	log.Printf("caves: %v", s.Config.Terrain.Caves)
	return s.Config.Terrain.Caves
}

func (s *Session) ToggleProfiling() {
	s.ShowProfiling = !s.ShowProfiling
}

// Frame draws the current state onto surf.
func (s *Session) Frame(surf canvas.Surface) render.Stats {
	hud := s.HUDLines()
	s.Profile.Reset()
	s.LastStats = s.Renderer.Draw(surf, render.Scene{
		World:      s.World,
		Camera:     s.Camera,
		Width:      s.Width,
		Height:     s.Height,
		Cursor:     s.Cursor,
		ShowCursor: s.ShowCursor,
		HUDLines:   hud,
	})

	s.Frames++
	if since := time.Since(s.LastFPSCheckTime); since >= time.Second {
		s.FPS = int(float64(s.Frames) / since.Seconds())
		s.Frames = 0
		s.LastFPSCheckTime = time.Now()
	}
	return s.LastStats
}

// HUDLines is the overlay text for the next frame.
func (s *Session) HUDLines() []string {
	x, y := s.Cursor[0], s.Cursor[1]
	lines := []string{
		fmt.Sprintf("seed %d  %dx%d", s.World.Seed, s.World.Dims.W, s.World.Dims.H),
		fmt.Sprintf("cursor %d,%d  surface %d  %s", x, y, s.World.SurfaceZ(x, y), s.World.BiomeAt(x, y)),
		fmt.Sprintf("placed %d  caves %v  fps %d", s.World.Overlay.Len(), s.Config.Terrain.Caves, s.FPS),
	}
	if s.ShowProfiling {
		lines = append(lines,
			fmt.Sprintf("voxels %d  render %s  build %s", s.LastStats.Total(),
				profiling.FormatMs(s.Profile.SumWithPrefix("render.")), profiling.FormatMs(s.BuildTime)),
			s.Profile.TopN(4),
		)
	}
	return lines
}
