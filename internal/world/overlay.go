package world

import (
	"slices"
)

// Overlay stores player-placed voxels on top of the generated terrain. A key
// is written at most once; later placements at the same position are ignored.
type Overlay struct {
	index  map[BlockPos]int
	blocks []PlacedVoxel
}

// NewOverlay creates an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{index: make(map[BlockPos]int)}
}

// Place inserts v at pos unless pos is already occupied. It reports whether
// the overlay changed.
func (o *Overlay) Place(pos BlockPos, v Voxel) bool {
	if _, ok := o.index[pos]; ok {
		return false
	}
	o.index[pos] = len(o.blocks)
	o.blocks = append(o.blocks, PlacedVoxel{Pos: pos, Voxel: v})
	return true
}

// Get returns the voxel placed at pos.
func (o *Overlay) Get(pos BlockPos) (Voxel, bool) {
	i, ok := o.index[pos]
	if !ok {
		return Air, false
	}
	return o.blocks[i].Voxel, true
}

func (o *Overlay) Has(pos BlockPos) bool {
	_, ok := o.index[pos]
	return ok
}

func (o *Overlay) Len() int { return len(o.blocks) }

// All returns the placed voxels in insertion order.
func (o *Overlay) All() []PlacedVoxel {
	return slices.Clone(o.blocks)
}

// Sorted returns the placed voxels in paint order.
func (o *Overlay) Sorted() []PlacedVoxel {
	out := slices.Clone(o.blocks)
	slices.SortStableFunc(out, func(a, b PlacedVoxel) int { return PaintOrder(a.Pos, b.Pos) })
	return out
}
