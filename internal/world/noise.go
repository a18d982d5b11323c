package world

import (
	"math"
)

// Seeded 2D value noise. Lattice values come from a trigonometric hash of a
// single integer corner index, so any (seed, coordinate) pair always yields the
// same sample and nothing needs to be cached between frames.

const (
	hashMultiplier = 918273
	hashScale      = 10000

	// Corner index multipliers. Kept coprime so neighbouring lattice corners
	// never alias within the small world extents we sample.
	cornerStrideI = 1619
	cornerStrideJ = 31337
)

// Noise samples the value-noise field for one world seed.
type Noise struct {
	Seed uint32
}

// Hash maps n to a pseudo-random value in [0,1) that depends only on n and the
// seed. Not cryptographically strong.
func (nz Noise) Hash(n int64) float64 {
	v := math.Abs(math.Sin(float64(n)*hashMultiplier+float64(nz.Seed)) * hashScale)
	return math.Mod(v, 1)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// corner encodes lattice corner (i, j) of a channel into a single hash input.
func corner(i, j, salt int64) int64 {
	return i*cornerStrideI + j*cornerStrideJ + salt
}

// Value bilinearly interpolates the lattice of cell size cell at (x, y).
// salt selects an independent channel over the same seed.
func (nz Noise) Value(x, y, cell float64, salt int64) float64 {
	fi := math.Floor(x / cell)
	fj := math.Floor(y / cell)
	fx := (x - fi*cell) / cell
	fy := (y - fj*cell) / cell

	i, j := int64(fi), int64(fj)
	a := nz.Hash(corner(i, j, salt))
	b := nz.Hash(corner(i+1, j, salt))
	c := nz.Hash(corner(i, j+1, salt))
	d := nz.Hash(corner(i+1, j+1, salt))

	return lerp(lerp(a, b, fx), lerp(c, d, fx), fy)
}

// Value3 folds a vertical coordinate into both horizontal axes before sampling,
// giving a cheap 3D-correlated field: neighbouring layers sample neighbouring
// points of the same 2D lattice.
func (nz Noise) Value3(x, y, z, scale, depth, cell float64, salt int64) float64 {
	return nz.Value(x*scale+z*depth, y*scale+z*depth, cell, salt)
}
