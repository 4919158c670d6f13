// cmd/libmathlib/bridge.go
package main

/*
#include "callback.h"

int mathlib_invoke_callback(mathlib_callback op, int value) {
    return op(value);
}
*/
import "C"
