package world

import (
	"math"

	"isocraft/internal/config"
)

// Field answers terrain queries for grid columns inside the world extent.
// Implementations must be pure: the same coordinates always give the same
// answer. Coordinates outside the world are a caller error with undefined
// results.
type Field interface {
	HeightAt(x, y int) int
	BiomeAt(x, y int) Biome
	IsCave(x, y, z int) bool
}

// Terrain is the noise-driven Field. It holds no mutable state and recomputes
// every sample on demand.
type Terrain struct {
	noise Noise
	cfg   config.Terrain
}

// NewTerrain creates a terrain field for seed.
func NewTerrain(seed uint32, cfg config.Terrain) *Terrain {
	return &Terrain{
		noise: Noise{Seed: seed},
		cfg:   cfg,
	}
}

// Seed returns the world seed the field was built from.
func (t *Terrain) Seed() uint32 { return t.noise.Seed }

// Config returns the generation settings.
func (t *Terrain) Config() config.Terrain { return t.cfg }

// HeightAt computes the surface layer of column (x, y): a dominant low
// frequency octave blended with a high frequency one, floored onto
// [MinHeight, MaxHeight].
func (t *Terrain) HeightAt(x, y int) int {
	c := t.cfg
	fx, fy := float64(x), float64(y)

	low := t.noise.Value(fx*c.Low.Scale, fy*c.Low.Scale, c.Cell, c.Low.Salt)
	high := t.noise.Value(fx*c.High.Scale, fy*c.High.Scale, c.Cell, c.High.Salt)
	n := (low*c.Low.Weight + high*c.High.Weight) / (c.Low.Weight + c.High.Weight)

	height := int(math.Floor(float64(c.MinHeight) + n*float64(c.MaxHeight-c.MinHeight)))
	if height < c.MinHeight {
		height = c.MinHeight
	}
	if height > c.MaxHeight {
		height = c.MaxHeight
	}
	return height
}

// BiomeNoise is the raw biome channel sample at (x, y).
func (t *Terrain) BiomeNoise(x, y int) float64 {
	c := t.cfg
	return t.noise.Value(float64(x)*c.BiomeScale, float64(y)*c.BiomeScale, c.BiomeCell, c.BiomeSalt)
}

// BiomeAt classifies column (x, y).
func (t *Terrain) BiomeAt(x, y int) Biome {
	return BiomeForNoise(t.BiomeNoise(x, y))
}

// IsCave reports whether voxel (x, y, z) is carved out. Caves never reach the
// top CaveMargin layers of a column nor the world floor.
func (t *Terrain) IsCave(x, y, z int) bool {
	c := t.cfg
	if !c.Caves {
		return false
	}
	if z <= c.CaveFloor {
		return false
	}
	if z >= t.HeightAt(x, y)-c.CaveMargin {
		return false
	}
	n := t.noise.Value3(float64(x), float64(y), float64(z), c.CaveScale, c.CaveDepth, c.CaveCell, c.CaveSalt)
	return n > c.CaveThreshold
}

// VoxelAt returns the terrain voxel at (x, y, z), or Air above the surface and
// inside caves. The surface takes its biome's top voxel, the two layers
// beneath it are dirt and everything deeper is stone.
func VoxelAt(f Field, x, y, z int) Voxel {
	h := f.HeightAt(x, y)
	if z < 0 || z > h || f.IsCave(x, y, z) {
		return Air
	}
	switch {
	case z == h:
		return f.BiomeAt(x, y).TopVoxel()
	case z >= h-2:
		return Dirt
	default:
		return Stone
	}
}

// TopSolidZ returns the highest non-hollow layer of column (x, y), or 0 when
// the whole column is hollow.
func TopSolidZ(f Field, x, y int) int {
	for z := f.HeightAt(x, y); z >= 0; z-- {
		if !f.IsCave(x, y, z) {
			return z
		}
	}
	return 0
}
