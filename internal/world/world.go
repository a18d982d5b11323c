package world

import (
	"isocraft/internal/config"
)

// Dims is the fixed extent of the grid in columns.
type Dims struct {
	W, H int
}

// Contains reports whether column (x, y) lies inside the extent.
func (d Dims) Contains(x, y int) bool {
	return x >= 0 && x < d.W && y >= 0 && y < d.H
}

// Clamp moves (x, y) onto the nearest column inside the extent.
func (d Dims) Clamp(x, y int) (int, int) {
	return clamp(x, 0, d.W-1), clamp(y, 0, d.H-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// World is the aggregate of everything derived from one seed plus the blocks a
// player placed on top of it.
type World struct {
	Seed       uint32
	Dims       Dims
	Terrain    config.Terrain
	Vegetation config.Vegetation
	Field      Field
	Overlay    *Overlay
}

// New builds a world for seed. Terrain samples are recomputed on every query;
// call Memoize to switch to dense per-column arrays.
func New(seed uint32, cfg config.Config) *World {
	return &World{
		Seed:       seed,
		Dims:       Dims{W: cfg.World.Width, H: cfg.World.Height},
		Terrain:    cfg.Terrain,
		Vegetation: cfg.Vegetation,
		Field:      NewTerrain(seed, cfg.Terrain),
		Overlay:    NewOverlay(),
	}
}

// Memoize replaces the field with a Cached copy covering the world extent.
func (w *World) Memoize() {
	if _, ok := w.Field.(*Cached); ok {
		return
	}
	w.Field = NewCached(w.Field, w.Dims)
}

// HeightAt is the surface layer of column (x, y).
func (w *World) HeightAt(x, y int) int { return w.Field.HeightAt(x, y) }

// BiomeAt is the biome of column (x, y).
func (w *World) BiomeAt(x, y int) Biome { return w.Field.BiomeAt(x, y) }

// VoxelAt is the terrain voxel at (x, y, z), ignoring trees and the overlay.
func (w *World) VoxelAt(x, y, z int) Voxel { return VoxelAt(w.Field, x, y, z) }

// SurfaceZ is the top solid terrain layer of column (x, y).
func (w *World) SurfaceZ(x, y int) int { return TopSolidZ(w.Field, x, y) }

// StackHeight is the highest layer anything can occupy: terrain, a tree on
// top of it, or a block placed on the surface.
func (w *World) StackHeight() int {
	return w.Terrain.MaxHeight + TreeHeight
}

// Trees places vegetation for the current field.
func (w *World) Trees() []Tree {
	return PlaceTrees(w.Seed, w.Field, w.Dims, w.Terrain.SeaLevel, w.Vegetation)
}

// Commit places a stone block one layer above the surface of column (x, y).
// The surface is evaluated now, not taken from an earlier pick. It returns
// the target position and whether a block was added; committing on an
// occupied position leaves the overlay untouched.
func (w *World) Commit(x, y int) (BlockPos, bool) {
	x, y = w.Dims.Clamp(x, y)
	pos := BlockPos{X: x, Y: y, Z: w.HeightAt(x, y) + 1}
	return pos, w.Overlay.Place(pos, Stone)
}

// SetTerrain swaps the terrain settings and rebuilds the field from the same
// seed. Placed blocks are kept. A memoized world stays memoized.
func (w *World) SetTerrain(cfg config.Terrain) {
	_, cached := w.Field.(*Cached)
	w.Terrain = cfg
	w.Field = NewTerrain(w.Seed, cfg)
	if cached {
		w.Memoize()
	}
}
