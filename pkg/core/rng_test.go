package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewStream(7, 0)
	b := NewStream(7, 0)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestStreamsDiffer(t *testing.T) {
	a := NewStream(7, 1)
	b := NewStream(7, 2)
	same := 0
	for i := 0; i < 64; i++ {
		if a.IntN(1<<30) == b.IntN(1<<30) {
			same++
		}
	}
	if same == 64 {
		t.Fatal("independent streams produced identical draws")
	}
}

func TestIntNRange(t *testing.T) {
	r := NewStream(1, 0)
	for i := 0; i < 1000; i++ {
		if v := r.IntN(3); v < 0 || v >= 3 {
			t.Fatalf("IntN(3) = %d", v)
		}
	}
}
