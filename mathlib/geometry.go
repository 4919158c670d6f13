// mathlib/geometry.go
package mathlib

import "math"

// Point is a 2-D point. Two consecutive float64 fields, matching the C
// MathPoint layout (two doubles, natural alignment).
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between p1 and p2, or -1.0 when
// either pointer is nil. The -1.0 sentinel is outside the valid codomain
// [0, +Inf), so absent input is distinguishable here, unlike the arithmetic
// zero sentinels.
func (l *Library) Distance(p1, p2 *Point) float64 {
	l.count()
	if p1 == nil || p2 == nil {
		return -1.0
	}
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return math.Sqrt(dx*dx + dy*dy)
}
