package world

import (
	"testing"

	"isocraft/internal/config"
)

// TestCachedMatchesSource verifies memoization does not change any answer,
// including coordinates outside the cached extent.
func TestCachedMatchesSource(t *testing.T) {
	cfg := config.DefaultTerrain()
	for _, seed := range []uint32{1, 42, 1234} {
		src := NewTerrain(seed, cfg)
		c := NewCached(src, testDims)

		for y := -2; y < testDims.H+2; y++ {
			for x := -2; x < testDims.W+2; x++ {
				if c.HeightAt(x, y) != src.HeightAt(x, y) {
					t.Fatalf("seed %d: HeightAt(%d,%d) cached=%d source=%d", seed, x, y, c.HeightAt(x, y), src.HeightAt(x, y))
				}
				if c.BiomeAt(x, y) != src.BiomeAt(x, y) {
					t.Fatalf("seed %d: BiomeAt(%d,%d) differs", seed, x, y)
				}
				for z := -1; z <= cfg.MaxHeight+2; z++ {
					if c.IsCave(x, y, z) != src.IsCave(x, y, z) {
						t.Fatalf("seed %d: IsCave(%d,%d,%d) differs", seed, x, y, z)
					}
				}
			}
		}
	}
}

func TestCachedSource(t *testing.T) {
	src := NewTerrain(5, config.DefaultTerrain())
	if NewCached(src, testDims).Source() != Field(src) {
		t.Errorf("Source should return the wrapped field")
	}
}

func BenchmarkCachedHeightAt(b *testing.B) {
	c := NewCached(NewTerrain(42, config.DefaultTerrain()), testDims)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.HeightAt(i%20, (i*31)%20)
	}
}
