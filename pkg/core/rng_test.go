package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		if a.Range(0, 10) != b.Range(0, 10) {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestRNGBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if v := r.Range(2, 5); v < 2 || v >= 5 {
			t.Fatalf("Range out of bounds: %v", v)
		}
		if v := r.Spread(0.5); v < -0.5 || v >= 0.5 {
			t.Fatalf("Spread out of bounds: %v", v)
		}
	}
	if v := r.Range(3, 3); v != 3 {
		t.Fatalf("empty range = %v, want 3", v)
	}
}

func TestPickReturnsOneOfTwo(t *testing.T) {
	r := NewRNG(3)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[Pick(r, "a", "b")] = true
	}
	if !seen["a"] || !seen["b"] || len(seen) != 2 {
		t.Fatalf("Pick produced %v", seen)
	}
}
