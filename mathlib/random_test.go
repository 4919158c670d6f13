// mathlib/random_test.go
package mathlib

import "testing"

func TestSeedRoundTrip(t *testing.T) {
	lib := New()
	if got := lib.Seed(); got != DefaultSeed {
		t.Fatalf("fresh Seed() = %d, want %d", got, DefaultSeed)
	}
	lib.SetSeed(42)
	if got := lib.Seed(); got != 42 {
		t.Fatalf("Seed() = %d after SetSeed(42)", got)
	}
}

// The generator is pinned to RandMax = 2^31-1 so sequences reproduce across
// platforms. These values are the glibc-constant LCG stream for seed 42.
func TestRandomDeterministic(t *testing.T) {
	lib := New()
	lib.SetSeed(42)

	want := []int32{1250496027, 1116302264, 1000676753, 1668674806, 908095735}
	for i, w := range want {
		if got := lib.Random(); got != w {
			t.Fatalf("Random() #%d = %d, want %d", i, got, w)
		}
	}

	// Re-seeding replays the identical sequence.
	lib.SetSeed(42)
	for i, w := range want {
		if got := lib.Random(); got != w {
			t.Fatalf("replay Random() #%d = %d, want %d", i, got, w)
		}
	}
}

func TestRandomDefaultSeedStream(t *testing.T) {
	lib := New()
	want := []int32{1406932606, 654583775, 1449466924}
	for i, w := range want {
		if got := lib.Random(); got != w {
			t.Fatalf("Random() #%d = %d, want %d", i, got, w)
		}
	}
}

func TestRandomRange(t *testing.T) {
	lib := New()
	for i := 0; i < 1000; i++ {
		v := lib.Random()
		if v < 0 || v >= RandMax {
			t.Fatalf("Random() = %d, outside [0, RandMax)", v)
		}
	}
}
