// mathlib/mathlib.go
// Package mathlib is the numeric utility library shared by the sample
// corpus. It reproduces the exported surface of the original C library,
// including its sentinel-based error signaling: overflow and invalid input
// return values that are indistinguishable from legitimate results. Callers
// that need unambiguous failures should use the Checked variants.
package mathlib

import (
	"sync/atomic"
)

// Version constants
const (
	VersionMajor  = 1
	VersionMinor  = 0
	VersionString = "1.0.0"
)

// DefaultSeed is the seed a fresh Library starts from.
const DefaultSeed = 12345

// Library is the explicit state handle replacing the original's process-wide
// globals. All operations are safe for concurrent use: both state cells are
// atomics, so every call is a short lock-free critical section.
type Library struct {
	seed  atomic.Uint32
	calls atomic.Uint64
}

// New creates a Library with the default seed and a zero call counter.
// This replaces the original's load-time constructor: hosts call New
// explicitly instead of relying on dynamic-library attach hooks.
func New() *Library {
	l := &Library{}
	l.seed.Store(DefaultSeed)
	return l
}

// Shutdown resets the handle to its initial state. State does not persist
// across lifecycles; a Library may be reused after Shutdown.
func (l *Library) Shutdown() {
	l.seed.Store(DefaultSeed)
	l.calls.Store(0)
}

// count records one public operation invocation.
func (l *Library) count() {
	l.calls.Add(1)
}

// Version returns the library version string. Counts as a public operation.
func (l *Library) Version() string {
	l.count()
	return VersionString
}

// VersionMajor returns the major version. Unlike Version, the major/minor
// getters do not touch the call counter; the original library had the same
// asymmetry and existing callers depend on the counter's exact behavior.
func (l *Library) VersionMajor() int {
	return VersionMajor
}

// VersionMinor returns the minor version. See VersionMajor about the counter.
func (l *Library) VersionMinor() int {
	return VersionMinor
}

// Calls reports how many public operations have been invoked on this handle.
// Diagnostic only; not part of the versioned contract and absent from the
// published C header. Reading it does not increment the counter.
func (l *Library) Calls() uint64 {
	return l.calls.Load()
}
