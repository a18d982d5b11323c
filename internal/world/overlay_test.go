package world

import "testing"

func TestOverlayPlaceIsIdempotent(t *testing.T) {
	o := NewOverlay()
	pos := BlockPos{5, 5, 5}

	if !o.Place(pos, Stone) {
		t.Fatalf("first Place should insert")
	}
	if o.Place(pos, Wood) {
		t.Fatalf("second Place at the same key should be a no-op")
	}
	if o.Len() != 1 {
		t.Fatalf("Len = %d, want 1", o.Len())
	}
	if v, ok := o.Get(pos); !ok || v != Stone {
		t.Fatalf("Get = %v,%v; want stone,true", v, ok)
	}
}

func TestOverlayMissingKey(t *testing.T) {
	o := NewOverlay()
	if o.Has(BlockPos{1, 2, 3}) {
		t.Errorf("empty overlay reports key present")
	}
	if v, ok := o.Get(BlockPos{1, 2, 3}); ok || v != Air {
		t.Errorf("Get on empty overlay = %v,%v", v, ok)
	}
}

func TestOverlayOrders(t *testing.T) {
	o := NewOverlay()
	o.Place(BlockPos{3, 3, 6}, Stone)
	o.Place(BlockPos{1, 1, 5}, Stone)
	o.Place(BlockPos{2, 1, 5}, Stone)
	o.Place(BlockPos{0, 4, 5}, Stone)

	all := o.All()
	if all[0].Pos != (BlockPos{3, 3, 6}) || all[3].Pos != (BlockPos{0, 4, 5}) {
		t.Errorf("All not in insertion order: %+v", all)
	}

	sorted := o.Sorted()
	want := []BlockPos{{1, 1, 5}, {2, 1, 5}, {0, 4, 5}, {3, 3, 6}}
	for i, p := range want {
		if sorted[i].Pos != p {
			t.Errorf("Sorted[%d] = %+v, want %+v", i, sorted[i].Pos, p)
		}
	}

	// Callers may not mutate the store through the returned slices.
	all[0].Voxel = Wood
	if v, _ := o.Get(BlockPos{3, 3, 6}); v != Stone {
		t.Errorf("All leaked internal storage")
	}
}

func TestPaintOrder(t *testing.T) {
	tests := []struct {
		a, b BlockPos
		want int
	}{
		{BlockPos{0, 0, 0}, BlockPos{0, 0, 1}, -1},
		{BlockPos{9, 9, 0}, BlockPos{0, 0, 1}, -1},
		{BlockPos{0, 1, 2}, BlockPos{5, 0, 2}, 1},
		{BlockPos{1, 1, 2}, BlockPos{2, 1, 2}, -1},
		{BlockPos{4, 4, 4}, BlockPos{4, 4, 4}, 0},
	}
	for _, tt := range tests {
		if got := PaintOrder(tt.a, tt.b); got != tt.want {
			t.Errorf("PaintOrder(%+v,%+v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
