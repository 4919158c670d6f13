// mathlib/geometry_test.go
package mathlib

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	lib := New()

	if got := lib.Distance(&Point{0, 0}, &Point{3, 4}); got != 5.0 {
		t.Errorf("Distance((0,0),(3,4)) = %v, want 5", got)
	}
	if got := lib.Distance(&Point{1, 1}, &Point{1, 1}); got != 0.0 {
		t.Errorf("Distance of identical points = %v, want 0", got)
	}

	got := lib.Distance(&Point{-1, -1}, &Point{2, 3})
	if math.Abs(got-5.0) > 1e-12 {
		t.Errorf("Distance((-1,-1),(2,3)) = %v, want 5", got)
	}
}

func TestDistanceNilSentinel(t *testing.T) {
	lib := New()
	p := &Point{3, 4}

	if got := lib.Distance(nil, p); got != -1.0 {
		t.Errorf("Distance(nil, p) = %v, want -1", got)
	}
	if got := lib.Distance(p, nil); got != -1.0 {
		t.Errorf("Distance(p, nil) = %v, want -1", got)
	}
	if got := lib.Distance(nil, nil); got != -1.0 {
		t.Errorf("Distance(nil, nil) = %v, want -1", got)
	}
}
