// mathlib/array.go
package mathlib

import "math"

// Array aggregation over a caller-owned slice. The slice is never mutated.
//
// The empty-input sentinels are inherited from the original library and are
// deliberately inverted from intuition: Max reports MinInt32 for "no data"
// and Min reports MaxInt32. Downstream analyzers key on these exact values.

// Sum returns the arithmetic sum of values, or 0 for an empty or nil slice.
// The accumulation is intentionally unguarded; a sum past the int32 range
// wraps, as it does in the original.
func (l *Library) Sum(values []int32) int32 {
	l.count()
	if len(values) == 0 {
		return 0
	}
	var sum int32
	for _, v := range values {
		sum += v
	}
	return sum
}

// Average returns the mean of values as a float64, or 0.0 for an empty or
// nil slice.
func (l *Library) Average(values []int32) float64 {
	l.count()
	if len(values) == 0 {
		return 0.0
	}
	var sum int32
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// Max returns the largest element, or MinInt32 for an empty or nil slice.
func (l *Library) Max(values []int32) int32 {
	l.count()
	if len(values) == 0 {
		return math.MinInt32
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Min returns the smallest element, or MaxInt32 for an empty or nil slice.
func (l *Library) Min(values []int32) int32 {
	l.count()
	if len(values) == 0 {
		return math.MaxInt32
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
