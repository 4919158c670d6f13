// mathlib/sequence.go
package mathlib

// factorialCap bounds the factorial product to 20 terms; 21! no longer fits
// in a signed 64-bit result, so larger inputs are silently truncated to the
// 20-term product. This matches the original library exactly.
const factorialCap = 20

// Factorial returns n! for n in [0,20], the 20-term product for n > 20, and
// -1 for negative n.
func (l *Library) Factorial(n int32) int64 {
	l.count()
	if n < 0 {
		return -1
	}
	if n == 0 || n == 1 {
		return 1
	}
	result := int64(1)
	for i := int64(2); i <= int64(n) && i <= factorialCap; i++ {
		result *= i
	}
	return result
}

// Fibonacci returns the n-th Fibonacci number: 0 for n <= 0, 1 for n == 1,
// then the standard iterative recurrence.
func (l *Library) Fibonacci(n int32) int32 {
	l.count()
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	a, b := int32(0), int32(1)
	for i := int32(2); i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// GCD returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. GCD(0, 0) is 0.
func (l *Library) GCD(a, b int32) int32 {
	l.count()
	x, y := abs64(a), abs64(b)
	for y != 0 {
		x, y = y, x%y
	}
	return int32(x)
}

// IsPrime reports whether n is prime, using trial division by 6k±1 up to
// the square root of n.
func (l *Library) IsPrime(n int32) bool {
	l.count()
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i*i <= int64(n); i += 6 {
		if int64(n)%i == 0 || int64(n)%(i+2) == 0 {
			return false
		}
	}
	return true
}
