package world

import (
	"math"
	"math/rand"
	"testing"
)

// TestHashDeterministic verifies Hash produces identical results for same inputs
func TestHashDeterministic(t *testing.T) {
	nz := Noise{Seed: 42}
	var results [100]float64
	for i := range results {
		results[i] = nz.Hash(12345)
	}

	first := results[0]
	for i := 1; i < len(results); i++ {
		if results[i] != first {
			t.Errorf("Hash not deterministic: results[0]=%f, results[%d]=%f", first, i, results[i])
		}
	}
}

func TestHashRange(t *testing.T) {
	for _, seed := range []uint32{0, 7, 0xFFFFFFFF} {
		nz := Noise{Seed: seed}
		for n := int64(-5000); n < 5000; n++ {
			v := nz.Hash(n)
			if v < 0 || v >= 1 {
				t.Fatalf("seed %d: Hash(%d) = %f, expected in [0,1)", seed, n, v)
			}
		}
		for _, n := range []int64{1 << 40, -(1 << 40), 1<<62 - 1} {
			if v := nz.Hash(n); v < 0 || v >= 1 {
				t.Fatalf("seed %d: Hash(%d) = %f, expected in [0,1)", seed, n, v)
			}
		}
	}
}

// TestHashKnownValue pins the hash for seed 42 at n=0: |sin(42)*10000| mod 1.
func TestHashKnownValue(t *testing.T) {
	got := Noise{Seed: 42}.Hash(0)
	want := math.Mod(math.Abs(math.Sin(42)*10000), 1)
	if got != want {
		t.Errorf("Hash(0) = %v, want %v", got, want)
	}
	if math.Abs(got-0.2154791563) > 1e-6 {
		t.Errorf("Hash(0) = %v, want ~0.2154791563", got)
	}
}

func TestHashDependsOnSeed(t *testing.T) {
	a := Noise{Seed: 1}.Hash(77)
	b := Noise{Seed: 2}.Hash(77)
	if a == b {
		t.Errorf("Hash should differ for different seeds: %f == %f", a, b)
	}
}

// TestValueRange verifies Value outputs are in [0,1)
func TestValueRange(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	nz := Noise{Seed: 99}

	for i := 0; i < 1000; i++ {
		x := rng.Float64() * 2000
		y := rng.Float64() * 2000

		v := nz.Value(x, y, 64, 0)
		if v < 0 || v >= 1 {
			t.Errorf("Value(%f, %f) = %f, expected in [0,1)", x, y, v)
		}
	}
}

// TestValueAtLatticeCorners checks that exact multiples of the cell size
// interpolate with a zero fractional part and return the corner hash.
func TestValueAtLatticeCorners(t *testing.T) {
	nz := Noise{Seed: 42}
	const cell = 64.0
	for i := int64(0); i < 4; i++ {
		for j := int64(0); j < 4; j++ {
			got := nz.Value(float64(i)*cell, float64(j)*cell, cell, 5)
			want := nz.Hash(corner(i, j, 5))
			if got != want {
				t.Errorf("Value at corner (%d,%d) = %f, want %f", i, j, got, want)
			}
		}
	}
}

func TestValueContinuity(t *testing.T) {
	nz := Noise{Seed: 42}

	v1 := nz.Value(100.0, 100.0, 64, 0)
	v2 := nz.Value(100.5, 100.0, 64, 0)
	if diff := math.Abs(v1 - v2); diff >= 0.05 {
		t.Errorf("Value not continuous: %f vs %f, diff=%f", v1, v2, diff)
	}
}

func TestValueSaltSeparatesChannels(t *testing.T) {
	nz := Noise{Seed: 42}
	same := 0
	for i := 0; i < 50; i++ {
		x := float64(i) * 17
		if nz.Value(x, x, 64, 0) == nz.Value(x, x, 64, 7919) {
			same++
		}
	}
	if same == 50 {
		t.Errorf("salted channel identical to base channel")
	}
}

func TestValue3FoldsDepth(t *testing.T) {
	nz := Noise{Seed: 3}
	got := nz.Value3(2, 5, 4, 18, 12, 64, 11)
	want := nz.Value(2*18+4*12, 5*18+4*12, 64, 11)
	if got != want {
		t.Errorf("Value3 = %f, want %f", got, want)
	}
}
