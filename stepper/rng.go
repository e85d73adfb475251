// SPDX-License-Identifier: MIT
// Package stepper: deterministic RNG helpers shared by all steppers.
//
// Policy:
//   - Same seed ⇒ identical chain on every platform.
//   - No time-based sources; callers that want entropy pass their own *rand.Rand.
//   - *rand.Rand is NOT goroutine-safe; Derive splits off independent streams
//     (NewAmwg gives each array-valued parameter its own).

package stepper

import "math/rand/v2"

// defaultSeed replaces seed 0 so that the zero value still gives a fixed stream.
const defaultSeed uint64 = 1

// NewRand returns a PCG-backed *rand.Rand for seed. Seed 0 maps to a fixed default.
// Complexity: O(1).
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewPCG(seed, deriveSeed(seed, 0)))
}

// Derive returns an independent stream keyed by stream, consuming one value
// from base. A nil base uses the default seed as parent.
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Uint64()
	}
	s := deriveSeed(parent, stream)

	return rand.New(rand.NewPCG(s, deriveSeed(s, stream+1)))
}

// deriveSeed is a SplitMix64 finalizer over parent and stream.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// Shuffle permutes a in place (Durstenfeld). A nil r uses the default stream.
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, r *rand.Rand) {
	if len(a) <= 1 {
		return
	}
	if r == nil {
		r = NewRand(0)
	}
	for i := len(a) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a random permutation of 0..n-1 drawn from r. n <= 0 yields nil.
// Complexity: O(n) time and space.
func Perm(n int, r *rand.Rand) []int {
	if n <= 0 {
		return nil
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(p, r)

	return p
}
