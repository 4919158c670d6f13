// cmd/libmathlib/exports.go
// C-ABI surface for the mathlib package, built with -buildmode=c-shared.
// Symbol names match the original shared library so existing harnesses and
// analyzers link unchanged. Lifecycle is explicit: hosts call mathlib_init
// and mathlib_shutdown instead of relying on loader attach/detach hooks.
//
// Build:
//
//	go build -buildmode=c-shared -o libmathlib.so ./cmd/libmathlib
package main

/*
#include "callback.h"
*/
import "C"

import (
	"unsafe"

	"samples/mathlib"
)

var lib = mathlib.New()

var versionString = C.CString(mathlib.VersionString)

//export mathlib_init
func mathlib_init() {
	lib = mathlib.New()
}

//export mathlib_shutdown
func mathlib_shutdown() {
	lib.Shutdown()
}

//export mathlib_version
func mathlib_version() *C.char {
	lib.Version()
	return versionString
}

//export mathlib_version_major
func mathlib_version_major() C.int {
	return C.int(lib.VersionMajor())
}

//export mathlib_version_minor
func mathlib_version_minor() C.int {
	return C.int(lib.VersionMinor())
}

//export mathlib_add
func mathlib_add(a, b C.int) C.int {
	return C.int(lib.Add(int32(a), int32(b)))
}

//export mathlib_subtract
func mathlib_subtract(a, b C.int) C.int {
	return C.int(lib.Subtract(int32(a), int32(b)))
}

//export mathlib_multiply
func mathlib_multiply(a, b C.int) C.int {
	return C.int(lib.Multiply(int32(a), int32(b)))
}

//export mathlib_divide
func mathlib_divide(a, b C.double) C.double {
	return C.double(lib.Divide(float64(a), float64(b)))
}

//export mathlib_factorial
func mathlib_factorial(n C.int) C.longlong {
	return C.longlong(lib.Factorial(int32(n)))
}

//export mathlib_fibonacci
func mathlib_fibonacci(n C.int) C.int {
	return C.int(lib.Fibonacci(int32(n)))
}

//export mathlib_gcd
func mathlib_gcd(a, b C.int) C.int {
	return C.int(lib.GCD(int32(a), int32(b)))
}

//export mathlib_is_prime
func mathlib_is_prime(n C.int) C.int {
	if lib.IsPrime(int32(n)) {
		return 1
	}
	return 0
}

//export mathlib_array_sum
func mathlib_array_sum(array *C.int, size C.int) C.int {
	return C.int(lib.Sum(intSlice(array, size)))
}

//export mathlib_array_average
func mathlib_array_average(array *C.int, size C.int) C.double {
	return C.double(lib.Average(intSlice(array, size)))
}

//export mathlib_array_max
func mathlib_array_max(array *C.int, size C.int) C.int {
	return C.int(lib.Max(intSlice(array, size)))
}

//export mathlib_array_min
func mathlib_array_min(array *C.int, size C.int) C.int {
	return C.int(lib.Min(intSlice(array, size)))
}

//export mathlib_apply_operation
func mathlib_apply_operation(value C.int, operation C.mathlib_callback) C.int {
	if operation == nil {
		return C.int(lib.Apply(int32(value), nil))
	}
	cb := func(v int32) int32 {
		return int32(C.mathlib_invoke_callback(operation, C.int(v)))
	}
	return C.int(lib.Apply(int32(value), cb))
}

//export mathlib_set_global_seed
func mathlib_set_global_seed(seed C.uint) {
	lib.SetSeed(uint32(seed))
}

//export mathlib_get_global_seed
func mathlib_get_global_seed() C.uint {
	return C.uint(lib.Seed())
}

//export mathlib_random
func mathlib_random() C.int {
	return C.int(lib.Random())
}

//export mathlib_point_distance
func mathlib_point_distance(p1, p2 *C.MathPoint) C.double {
	var gp1, gp2 *mathlib.Point
	if p1 != nil {
		gp1 = &mathlib.Point{X: float64(p1.x), Y: float64(p1.y)}
	}
	if p2 != nil {
		gp2 = &mathlib.Point{X: float64(p2.x), Y: float64(p2.y)}
	}
	return C.double(lib.Distance(gp1, gp2))
}

// Deliberately absent from include/mathlib.h. Diagnostic only.
//
//export mathlib_get_call_count
func mathlib_get_call_count() C.int {
	return C.int(lib.Calls())
}

// intSlice views a C int array as a Go slice without copying. The caller
// owns the memory; the view is only valid for the duration of one call.
func intSlice(array *C.int, size C.int) []int32 {
	if array == nil || size <= 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(array)), int(size))
}

func main() {}
