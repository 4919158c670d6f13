// mathlib/arith.go
package mathlib

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the Checked variants. The legacy operations never
// return these; they collapse every failure into a zero result.
var (
	ErrOverflow     = errors.New("arithmetic overflow")
	ErrDivideByZero = errors.New("division by zero")
)

// Add returns a+b, or 0 when the signed 32-bit sum would overflow. The zero
// return is ambiguous with a legitimate sum of zero; that is the legacy
// contract and callers wanting a distinct failure use AddChecked.
func (l *Library) Add(a, b int32) int32 {
	l.count()
	if (b > 0 && a > math.MaxInt32-b) || (b < 0 && a < math.MinInt32-b) {
		return 0
	}
	return a + b
}

// Subtract returns a-b, or 0 on signed 32-bit overflow.
func (l *Library) Subtract(a, b int32) int32 {
	l.count()
	if (b < 0 && a > math.MaxInt32+b) || (b > 0 && a < math.MinInt32+b) {
		return 0
	}
	return a - b
}

// Multiply returns a*b, or 0 when the product's magnitude exceeds the signed
// 32-bit range. The magnitudes are compared in 64 bits so abs(MinInt32) is
// well defined.
func (l *Library) Multiply(a, b int32) int32 {
	l.count()
	if a != 0 && abs64(b) > math.MaxInt32/abs64(a) {
		return 0
	}
	return a * b
}

// Divide returns a/b, or 0.0 when b is zero.
func (l *Library) Divide(a, b float64) float64 {
	l.count()
	if b == 0.0 {
		return 0.0
	}
	return a / b
}

// AddChecked is Add with an explicit error channel for new callers.
func (l *Library) AddChecked(a, b int32) (int32, error) {
	l.count()
	if (b > 0 && a > math.MaxInt32-b) || (b < 0 && a < math.MinInt32-b) {
		return 0, fmt.Errorf("add %d + %d: %w", a, b, ErrOverflow)
	}
	return a + b, nil
}

// SubtractChecked is Subtract with an explicit error channel.
func (l *Library) SubtractChecked(a, b int32) (int32, error) {
	l.count()
	if (b < 0 && a > math.MaxInt32+b) || (b > 0 && a < math.MinInt32+b) {
		return 0, fmt.Errorf("subtract %d - %d: %w", a, b, ErrOverflow)
	}
	return a - b, nil
}

// MultiplyChecked is Multiply with an explicit error channel.
func (l *Library) MultiplyChecked(a, b int32) (int32, error) {
	l.count()
	if a != 0 && abs64(b) > math.MaxInt32/abs64(a) {
		return 0, fmt.Errorf("multiply %d * %d: %w", a, b, ErrOverflow)
	}
	return a * b, nil
}

// DivideChecked is Divide with an explicit error channel.
func (l *Library) DivideChecked(a, b float64) (float64, error) {
	l.count()
	if b == 0.0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

func abs64(v int32) int64 {
	if v < 0 {
		return -int64(v)
	}
	return int64(v)
}
