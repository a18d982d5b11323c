package world

// Biome classifies a column from a coarse noise channel.
type Biome uint8

const (
	BiomeDesert Biome = iota
	BiomeForest
	BiomeCherry
)

// Band edges. The three bands [0,1/3), [1/3,2/3), [2/3,1] partition the noise
// range with no gaps.
const (
	desertForestEdge = 1.0 / 3.0
	forestCherryEdge = 2.0 / 3.0
)

// Biomes lists every biome in band order.
var Biomes = []Biome{BiomeDesert, BiomeForest, BiomeCherry}

func (b Biome) String() string {
	switch b {
	case BiomeDesert:
		return "desert"
	case BiomeForest:
		return "forest"
	case BiomeCherry:
		return "cherry"
	default:
		return "unknown"
	}
}

// BiomeForNoise buckets a noise sample into its band. Values outside [0,1]
// fall into the nearest band.
func BiomeForNoise(n float64) Biome {
	if n < desertForestEdge {
		return BiomeDesert
	} else if n < forestCherryEdge {
		return BiomeForest
	}
	return BiomeCherry
}

// TopVoxel is the surface voxel of a column in this biome.
func (b Biome) TopVoxel() Voxel {
	switch b {
	case BiomeDesert:
		return Sand
	case BiomeCherry:
		return CherryGrass
	default:
		return Grass
	}
}

// LeafVoxel is the canopy voxel of trees growing in this biome.
func (b Biome) LeafVoxel() Voxel {
	if b == BiomeCherry {
		return CherryLeaf
	}
	return Leaf
}
