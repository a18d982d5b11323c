package config

// Octave is one height-noise layer: samples are taken at coordinate*Scale on a
// lattice of the terrain cell size and weighted by Weight.
type Octave struct {
	Scale  float64 `yaml:"scale" json:"scale"`
	Weight float64 `yaml:"weight" json:"weight"`
	Salt   int64   `yaml:"salt" json:"salt"`
}

// Terrain holds world generation tuning. Every field feeds a pure function of
// (seed, coordinates), so changing one only changes the generated world, never
// its determinism.
type Terrain struct {
	MinHeight int     `yaml:"min_height" json:"min_height"`
	MaxHeight int     `yaml:"max_height" json:"max_height"`
	SeaLevel  int     `yaml:"sea_level" json:"sea_level"`
	Cell      float64 `yaml:"cell" json:"cell"`
	Low       Octave  `yaml:"low" json:"low"`
	High      Octave  `yaml:"high" json:"high"`

	BiomeScale float64 `yaml:"biome_scale" json:"biome_scale"`
	BiomeCell  float64 `yaml:"biome_cell" json:"biome_cell"`
	BiomeSalt  int64   `yaml:"biome_salt" json:"biome_salt"`

	Caves         bool    `yaml:"caves" json:"caves"`
	CaveMargin    int     `yaml:"cave_margin" json:"cave_margin"`
	CaveFloor     int     `yaml:"cave_floor" json:"cave_floor"`
	CaveThreshold float64 `yaml:"cave_threshold" json:"cave_threshold"`
	CaveScale     float64 `yaml:"cave_scale" json:"cave_scale"`
	CaveDepth     float64 `yaml:"cave_depth" json:"cave_depth"`
	CaveCell      float64 `yaml:"cave_cell" json:"cave_cell"`
	CaveSalt      int64   `yaml:"cave_salt" json:"cave_salt"`
}

// Vegetation controls cell-declustered tree placement.
type Vegetation struct {
	Cell         int     `yaml:"cell" json:"cell"`
	Spacing      int     `yaml:"spacing" json:"spacing"`
	ForestChance float64 `yaml:"forest_chance" json:"forest_chance"`
	CherryChance float64 `yaml:"cherry_chance" json:"cherry_chance"`
	Salt         int64   `yaml:"salt" json:"salt"`
}

// DefaultTerrain returns the standard generation settings.
func DefaultTerrain() Terrain {
	return Terrain{
		MinHeight: 3,
		MaxHeight: 8,
		SeaLevel:  4,
		Cell:      64,
		Low:       Octave{Scale: 20, Weight: 0.85, Salt: 0},
		High:      Octave{Scale: 60, Weight: 0.15, Salt: 1013},

		BiomeScale: 5,
		BiomeCell:  128,
		BiomeSalt:  7919,

		Caves:         true,
		CaveMargin:    2,
		CaveFloor:     0,
		CaveThreshold: 0.7,
		CaveScale:     18,
		CaveDepth:     12,
		CaveCell:      64,
		CaveSalt:      3571,
	}
}

// DefaultVegetation returns the standard tree placement settings.
func DefaultVegetation() Vegetation {
	return Vegetation{
		Cell:         4,
		Spacing:      3,
		ForestChance: 0.75,
		CherryChance: 0.7,
		Salt:         104729,
	}
}
