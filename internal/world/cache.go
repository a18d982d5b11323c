package world

// Cached memoizes a Field over a fixed world extent. Columns and voxels inside
// the extent are answered from dense arrays filled at construction; anything
// outside is delegated to the wrapped field, so a Cached is observably
// identical to its source.
type Cached struct {
	src     Field
	dims    Dims
	depth   int
	heights []int
	biomes  []Biome
	caves   []bool
}

// NewCached evaluates src once for every column and voxel in dims.
func NewCached(src Field, dims Dims) *Cached {
	n := dims.W * dims.H
	c := &Cached{
		src:     src,
		dims:    dims,
		heights: make([]int, n),
		biomes:  make([]Biome, n),
	}

	for y := 0; y < dims.H; y++ {
		for x := 0; x < dims.W; x++ {
			i := y*dims.W + x
			c.heights[i] = src.HeightAt(x, y)
			c.biomes[i] = src.BiomeAt(x, y)
			if c.heights[i]+1 > c.depth {
				c.depth = c.heights[i] + 1
			}
		}
	}

	c.caves = make([]bool, n*c.depth)
	for y := 0; y < dims.H; y++ {
		for x := 0; x < dims.W; x++ {
			h := c.heights[y*dims.W+x]
			for z := 0; z <= h; z++ {
				c.caves[c.voxelIndex(x, y, z)] = src.IsCave(x, y, z)
			}
		}
	}
	return c
}

// Source returns the wrapped field.
func (c *Cached) Source() Field { return c.src }

func (c *Cached) voxelIndex(x, y, z int) int {
	return (z*c.dims.H+y)*c.dims.W + x
}

func (c *Cached) HeightAt(x, y int) int {
	if !c.dims.Contains(x, y) {
		return c.src.HeightAt(x, y)
	}
	return c.heights[y*c.dims.W+x]
}

func (c *Cached) BiomeAt(x, y int) Biome {
	if !c.dims.Contains(x, y) {
		return c.src.BiomeAt(x, y)
	}
	return c.biomes[y*c.dims.W+x]
}

func (c *Cached) IsCave(x, y, z int) bool {
	if !c.dims.Contains(x, y) || z < 0 || z >= c.depth {
		return c.src.IsCave(x, y, z)
	}
	if z > c.heights[y*c.dims.W+x] {
		// Only layers up to the surface were evaluated.
		return c.src.IsCave(x, y, z)
	}
	return c.caves[c.voxelIndex(x, y, z)]
}
