package world

import "cmp"

// Voxel labels a unit cube of the world. The zero value is Air, meaning "no
// voxel here"; every other value has a palette entry in the renderer.
type Voxel uint8

const (
	Air Voxel = iota
	Grass
	Sand
	CherryGrass
	Dirt
	Stone
	Water
	Wood
	Leaf
	CherryLeaf
	VoxelCount // Sentinel value for array sizing
)

var voxelNames = [VoxelCount]string{
	Air:         "air",
	Grass:       "grass",
	Sand:        "sand",
	CherryGrass: "cherry_grass",
	Dirt:        "dirt",
	Stone:       "stone",
	Water:       "water",
	Wood:        "wood",
	Leaf:        "leaf",
	CherryLeaf:  "cherry_leaf",
}

func (v Voxel) String() string {
	if v >= VoxelCount {
		return "unknown"
	}
	return voxelNames[v]
}

// Solid reports whether v occupies space.
func (v Voxel) Solid() bool {
	return v != Air && v < VoxelCount
}

// BlockPos is the composite key of a voxel: grid column (X, Y) and layer Z.
type BlockPos struct {
	X, Y, Z int
}

// PlacedVoxel pairs a position with the voxel drawn there.
type PlacedVoxel struct {
	Pos   BlockPos
	Voxel Voxel
}

// PaintOrder orders positions back to front for the isometric painter: layer
// ascending, then row and column ascending. The nearer voxel of any two whose
// projections overlap always compares greater.
func PaintOrder(a, b BlockPos) int {
	switch {
	case a.Z != b.Z:
		return cmp.Compare(a.Z, b.Z)
	case a.Y != b.Y:
		return cmp.Compare(a.Y, b.Y)
	default:
		return cmp.Compare(a.X, b.X)
	}
}
