package world

import (
	"testing"

	"isocraft/internal/config"
)

var testDims = Dims{W: 20, H: 20}

func TestTerrainImplementsField(t *testing.T) {
	var _ Field = NewTerrain(123, config.DefaultTerrain())
}

func TestCachedImplementsField(t *testing.T) {
	var _ Field = NewCached(NewTerrain(123, config.DefaultTerrain()), testDims)
}

// TestHeightGolden pins heights and biomes for seed 42 on the default 20x20
// world with max height 8.
func TestHeightGolden(t *testing.T) {
	tr := NewTerrain(42, config.DefaultTerrain())
	tests := []struct {
		x, y   int
		height int
		biome  Biome
	}{
		{0, 0, 4, BiomeCherry},
		{5, 5, 5, BiomeCherry},
		{10, 10, 5, BiomeForest},
		{19, 19, 6, BiomeDesert},
	}
	for _, tt := range tests {
		if h := tr.HeightAt(tt.x, tt.y); h != tt.height {
			t.Errorf("HeightAt(%d,%d) = %d, want %d", tt.x, tt.y, h, tt.height)
		}
		if b := tr.BiomeAt(tt.x, tt.y); b != tt.biome {
			t.Errorf("BiomeAt(%d,%d) = %v, want %v", tt.x, tt.y, b, tt.biome)
		}
	}
}

func TestTerrainDeterminism(t *testing.T) {
	cfg := config.DefaultTerrain()
	a := NewTerrain(12345, cfg)
	b := NewTerrain(12345, cfg)

	for y := 0; y < testDims.H; y++ {
		for x := 0; x < testDims.W; x++ {
			if a.HeightAt(x, y) != b.HeightAt(x, y) {
				t.Fatalf("HeightAt(%d,%d) differs between identical terrains", x, y)
			}
			if a.HeightAt(x, y) != a.HeightAt(x, y) {
				t.Fatalf("HeightAt(%d,%d) unstable under repeated evaluation", x, y)
			}
			if a.BiomeAt(x, y) != b.BiomeAt(x, y) {
				t.Fatalf("BiomeAt(%d,%d) differs between identical terrains", x, y)
			}
			for z := 0; z <= cfg.MaxHeight; z++ {
				if a.IsCave(x, y, z) != b.IsCave(x, y, z) {
					t.Fatalf("IsCave(%d,%d,%d) differs between identical terrains", x, y, z)
				}
			}
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	cfg := config.DefaultTerrain()
	a := NewTerrain(1, cfg)
	b := NewTerrain(2, cfg)

	diff := 0
	for y := 0; y < testDims.H; y++ {
		for x := 0; x < testDims.W; x++ {
			if a.HeightAt(x, y) != b.HeightAt(x, y) {
				diff++
			}
		}
	}
	if diff == 0 {
		t.Errorf("seeds 1 and 2 produced identical height maps")
	}
}

func TestHeightBounded(t *testing.T) {
	cfg := config.DefaultTerrain()
	for _, seed := range []uint32{0, 1, 42, 99, 1234, 0xFFFFFFFF} {
		tr := NewTerrain(seed, cfg)
		for y := 0; y < testDims.H; y++ {
			for x := 0; x < testDims.W; x++ {
				h := tr.HeightAt(x, y)
				if h < cfg.MinHeight || h > cfg.MaxHeight {
					t.Fatalf("seed %d: HeightAt(%d,%d) = %d outside [%d,%d]", seed, x, y, h, cfg.MinHeight, cfg.MaxHeight)
				}
			}
		}
	}
}

func TestHeightMapHasRelief(t *testing.T) {
	tr := NewTerrain(42, config.DefaultTerrain())
	seen := map[int]bool{}
	for y := 0; y < testDims.H; y++ {
		for x := 0; x < testDims.W; x++ {
			seen[tr.HeightAt(x, y)] = true
		}
	}
	if len(seen) < 3 {
		t.Errorf("expected at least 3 distinct heights, got %d", len(seen))
	}
}

func TestBiomeBandsPartition(t *testing.T) {
	tests := []struct {
		n    float64
		want Biome
	}{
		{0, BiomeDesert},
		{0.2, BiomeDesert},
		{desertForestEdge - 1e-12, BiomeDesert},
		{desertForestEdge, BiomeForest},
		{0.5, BiomeForest},
		{forestCherryEdge - 1e-12, BiomeForest},
		{forestCherryEdge, BiomeCherry},
		{0.99, BiomeCherry},
		{1, BiomeCherry},
	}
	for _, tt := range tests {
		if got := BiomeForNoise(tt.n); got != tt.want {
			t.Errorf("BiomeForNoise(%v) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestBiomeTotality(t *testing.T) {
	tr := NewTerrain(42, config.DefaultTerrain())
	for y := 0; y < testDims.H; y++ {
		for x := 0; x < testDims.W; x++ {
			switch b := tr.BiomeAt(x, y); b {
			case BiomeDesert, BiomeForest, BiomeCherry:
			default:
				t.Fatalf("BiomeAt(%d,%d) = %v, not a known biome", x, y, b)
			}
		}
	}
}

// TestCaveNeverBreaksSurface checks that no cave fires within the margin of
// the surface, above it, or on the floor.
func TestCaveNeverBreaksSurface(t *testing.T) {
	cfg := config.DefaultTerrain()
	caves := 0
	for _, seed := range []uint32{1, 7, 42, 99, 1234} {
		tr := NewTerrain(seed, cfg)
		for y := 0; y < testDims.H; y++ {
			for x := 0; x < testDims.W; x++ {
				h := tr.HeightAt(x, y)
				for z := 0; z <= cfg.MaxHeight+2; z++ {
					cave := tr.IsCave(x, y, z)
					if cave {
						caves++
					}
					if cave && z >= h-cfg.CaveMargin {
						t.Fatalf("seed %d: cave at (%d,%d,%d) with height %d and margin %d", seed, x, y, z, h, cfg.CaveMargin)
					}
					if cave && z <= cfg.CaveFloor {
						t.Fatalf("seed %d: cave at floor (%d,%d,%d)", seed, x, y, z)
					}
				}
			}
		}
	}
	if caves == 0 {
		t.Errorf("expected some caves across seeds")
	}
}

func TestCavesDisabled(t *testing.T) {
	cfg := config.DefaultTerrain()
	cfg.Caves = false
	tr := NewTerrain(42, cfg)
	for y := 0; y < testDims.H; y++ {
		for x := 0; x < testDims.W; x++ {
			for z := 0; z <= cfg.MaxHeight; z++ {
				if tr.IsCave(x, y, z) {
					t.Fatalf("IsCave(%d,%d,%d) with caves disabled", x, y, z)
				}
			}
		}
	}
}

func TestVoxelAtLayers(t *testing.T) {
	cfg := config.DefaultTerrain()
	cfg.Caves = false
	tr := NewTerrain(42, cfg)

	h := tr.HeightAt(0, 0) // 4, cherry
	if v := VoxelAt(tr, 0, 0, h); v != CherryGrass {
		t.Errorf("surface voxel = %v, want cherry_grass", v)
	}
	if v := VoxelAt(tr, 0, 0, h-1); v != Dirt {
		t.Errorf("voxel below surface = %v, want dirt", v)
	}
	if v := VoxelAt(tr, 0, 0, h-2); v != Dirt {
		t.Errorf("voxel two below surface = %v, want dirt", v)
	}
	if v := VoxelAt(tr, 0, 0, h-3); v != Stone {
		t.Errorf("deep voxel = %v, want stone", v)
	}
	if v := VoxelAt(tr, 0, 0, h+1); v != Air {
		t.Errorf("voxel above surface = %v, want air", v)
	}
	if v := VoxelAt(tr, 19, 19, tr.HeightAt(19, 19)); v != Sand {
		t.Errorf("desert surface = %v, want sand", v)
	}
}

func TestTopSolidZIsSurface(t *testing.T) {
	tr := NewTerrain(42, config.DefaultTerrain())
	for y := 0; y < testDims.H; y++ {
		for x := 0; x < testDims.W; x++ {
			if got, want := TopSolidZ(tr, x, y), tr.HeightAt(x, y); got != want {
				t.Fatalf("TopSolidZ(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func BenchmarkHeightAt(b *testing.B) {
	tr := NewTerrain(42, config.DefaultTerrain())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.HeightAt(i%20, (i*31)%20)
	}
}
