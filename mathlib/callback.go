// mathlib/callback.go
package mathlib

// Callback is a caller-supplied unary integer transform. The library holds
// no reference to it beyond the duration of a single Apply call.
type Callback func(int32) int32

// Apply invokes cb on value and returns the result, or value unchanged when
// cb is nil. The callback runs synchronously on the caller's goroutine; a
// callback must not call back into the same Library handle in a way that
// assumes a stable call count mid-operation.
func (l *Library) Apply(value int32, cb Callback) int32 {
	l.count()
	if cb == nil {
		return value
	}
	return cb(value)
}
