// mathlib/random.go
package mathlib

// LCG parameters (glibc's constants) and the pinned modulus for Random
// results. The original reduced by the platform's RAND_MAX; pinning the
// bound makes sequences reproducible across platforms.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgMask       = 0x7fffffff

	// RandMax bounds Random results to [0, RandMax).
	RandMax = 1<<31 - 1
)

// SetSeed overwrites the generator seed.
func (l *Library) SetSeed(seed uint32) {
	l.count()
	l.seed.Store(seed)
}

// Seed returns the current generator seed.
func (l *Library) Seed() uint32 {
	l.count()
	return l.seed.Load()
}

// Random advances the linear-congruential generator and returns the next
// value in [0, RandMax). The seed step is a CAS loop so concurrent callers
// each observe a distinct generator state.
func (l *Library) Random() int32 {
	l.count()
	for {
		old := l.seed.Load()
		next := (old*lcgMultiplier + lcgIncrement) & lcgMask
		if l.seed.CompareAndSwap(old, next) {
			return int32(next % RandMax)
		}
	}
}
