package world

import (
	"slices"

	"isocraft/internal/config"
)

// Tree is a two-voxel trunk with a small leaf cluster on top.
type Tree struct {
	X, Y int
	Base int // layer of the lowest trunk voxel
	Leaf Voxel
}

const trunkHeight = 2

// TreeHeight is how many layers a tree adds above its column's surface.
const TreeHeight = 4

// Leaf cluster offsets relative to the trunk base.
var leafOffsets = [...]BlockPos{
	{0, 0, 2},
	{1, 0, 2},
	{-1, 0, 2},
	{0, 1, 2},
	{0, -1, 2},
	{0, 0, 3},
}

// Voxels lists the trunk then the leaves of t.
func (t Tree) Voxels() []PlacedVoxel {
	out := make([]PlacedVoxel, 0, trunkHeight+len(leafOffsets))
	for dz := 0; dz < trunkHeight; dz++ {
		out = append(out, PlacedVoxel{Pos: BlockPos{t.X, t.Y, t.Base + dz}, Voxel: Wood})
	}
	for _, o := range leafOffsets {
		out = append(out, PlacedVoxel{Pos: BlockPos{t.X + o.X, t.Y + o.Y, t.Base + o.Z}, Voxel: t.Leaf})
	}
	return out
}

// treeChance is the probability that an eligible cell in biome b grows a tree.
func treeChance(b Biome, cfg config.Vegetation) float64 {
	switch b {
	case BiomeForest:
		return cfg.ForestChance
	case BiomeCherry:
		return cfg.CherryChance
	default:
		return 0
	}
}

// PlaceTrees picks at most one tree per Cell x Cell block of the grid. Each
// cell draws three hashes from its own index: one for acceptance and two for
// the column offset. Offsets are confined to [0, Cell-Spacing] so trees in
// different cells are always at least Spacing apart (Chebyshev distance).
// Columns at or below sea level and desert columns never grow trees.
func PlaceTrees(seed uint32, f Field, dims Dims, seaLevel int, cfg config.Vegetation) []Tree {
	if cfg.Cell <= 0 {
		return nil
	}
	nz := Noise{Seed: seed}
	span := cfg.Cell - cfg.Spacing + 1
	if span < 1 {
		span = 1
	}

	var trees []Tree
	for cy := 0; cy*cfg.Cell < dims.H; cy++ {
		for cx := 0; cx*cfg.Cell < dims.W; cx++ {
			base := (int64(cx)*7919 + int64(cy)*104729 + cfg.Salt) * 3
			roll := nz.Hash(base)

			x := cx*cfg.Cell + int(nz.Hash(base+1)*float64(span))
			y := cy*cfg.Cell + int(nz.Hash(base+2)*float64(span))
			if !dims.Contains(x, y) {
				continue
			}

			h := f.HeightAt(x, y)
			if h <= seaLevel {
				continue
			}
			biome := f.BiomeAt(x, y)
			if roll >= treeChance(biome, cfg) {
				continue
			}
			trees = append(trees, Tree{X: x, Y: y, Base: h + 1, Leaf: biome.LeafVoxel()})
		}
	}
	return trees
}

// TreeVoxels flattens trees into one slice sorted in paint order.
func TreeVoxels(trees []Tree) []PlacedVoxel {
	var out []PlacedVoxel
	for _, t := range trees {
		out = append(out, t.Voxels()...)
	}
	slices.SortStableFunc(out, func(a, b PlacedVoxel) int { return PaintOrder(a.Pos, b.Pos) })
	return out
}
