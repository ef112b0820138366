package world

import "testing"

func TestRNGKnownSequence(t *testing.T) {
	// Reference values of the LCG for seed 0.
	r := NewRNG(0)
	expected := []int{21, 70, 54, 73, 81, 6}
	for i, want := range expected {
		if got := r.NextInt(0, 99); got != want {
			t.Fatalf("draw %d: NextInt(0, 99) = %d, expected %d", i, got, want)
		}
	}
}

func TestRNGDeterminism(t *testing.T) {
	seeds := []int64{0, 1, 800, 3000, 123456789}
	for _, seed := range seeds {
		a := NewRNG(seed)
		b := NewRNG(seed)
		for i := 0; i < 1000; i++ {
			x, y := a.NextInt(-50, 450), b.NextInt(-50, 450)
			if x != y {
				t.Fatalf("seed %d draw %d: sequences diverged (%d != %d)", seed, i, x, y)
			}
		}
	}
}

func TestRNGInclusiveRange(t *testing.T) {
	r := NewRNG(42)
	seenLo, seenHi := false, false
	for i := 0; i < 5000; i++ {
		v := r.NextInt(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("NextInt(3, 7) = %d, out of range", v)
		}
		if v == 3 {
			seenLo = true
		}
		if v == 7 {
			seenHi = true
		}
	}
	if !seenLo || !seenHi {
		t.Errorf("range endpoints not produced (lo=%v, hi=%v)", seenLo, seenHi)
	}
}

func TestRNGSwappedBounds(t *testing.T) {
	a := NewRNG(9)
	b := NewRNG(9)
	for i := 0; i < 100; i++ {
		if a.NextInt(10, 1) != b.NextInt(1, 10) {
			t.Fatal("swapped bounds should behave like ordered bounds")
		}
	}
}

func TestRNGEquivalentSeeds(t *testing.T) {
	// Seeds are reduced modulo the LCG modulus, which does not change the
	// sequence.
	a := NewRNG(5)
	b := NewRNG(5 + lcgModulus)
	for i := 0; i < 20; i++ {
		if a.NextInt(0, 1000) != b.NextInt(0, 1000) {
			t.Fatal("seeds congruent modulo the modulus should match")
		}
	}
}
