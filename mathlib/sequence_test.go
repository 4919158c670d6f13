// mathlib/sequence_test.go
package mathlib

import "testing"

func TestFactorial(t *testing.T) {
	lib := New()
	cases := []struct {
		n    int32
		want int64
	}{
		{-1, -1},
		{-100, -1},
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, c := range cases {
		if got := lib.Factorial(c.n); got != c.want {
			t.Errorf("Factorial(%d) = %d, want %d", c.n, got, c.want)
		}
	}

	// Inputs past the cap truncate to the 20-term product.
	if lib.Factorial(21) != lib.Factorial(20) {
		t.Errorf("Factorial(21) != Factorial(20); cap not applied")
	}
	if lib.Factorial(1000) != lib.Factorial(20) {
		t.Errorf("Factorial(1000) != Factorial(20); cap not applied")
	}
}

func TestFibonacci(t *testing.T) {
	lib := New()
	cases := []struct {
		n    int32
		want int32
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 55},
		{20, 6765},
	}
	for _, c := range cases {
		if got := lib.Fibonacci(c.n); got != c.want {
			t.Errorf("Fibonacci(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestGCD(t *testing.T) {
	lib := New()
	cases := []struct {
		a, b, want int32
	}{
		{48, 18, 6},
		{18, 48, 6},
		{-48, 18, 6},
		{48, -18, 6},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{17, 13, 1},
	}
	for _, c := range cases {
		if got := lib.GCD(c.a, c.b); got != c.want {
			t.Errorf("GCD(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestIsPrime(t *testing.T) {
	lib := New()
	primes := []int32{2, 3, 5, 7, 11, 13, 17, 97, 7919, 2147483647}
	for _, n := range primes {
		if !lib.IsPrime(n) {
			t.Errorf("IsPrime(%d) = false, want true", n)
		}
	}
	composites := []int32{-7, 0, 1, 4, 6, 9, 15, 18, 25, 49, 7917}
	for _, n := range composites {
		if lib.IsPrime(n) {
			t.Errorf("IsPrime(%d) = true, want false", n)
		}
	}
}
