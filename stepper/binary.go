// SPDX-License-Identifier: MIT
// Package stepper: exact Gibbs update of a binary slot.

package stepper

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/amwg/ndarray"
)

// Binary draws a binary slot from its exact full conditional.
type Binary struct {
	Base
	arr     *ndarray.Array
	offset  int
	logPost LogDensity
	rng     *rand.Rand
}

// NewBinary builds an exact stepper for slot offset of arr.
func NewBinary(arr *ndarray.Array, offset int, logPost LogDensity, rng *rand.Rand) (*Binary, error) {
	if arr == nil || logPost == nil || rng == nil {
		return nil, fmt.Errorf("NewBinary: %w", ErrNilArgument)
	}
	if offset < 0 || offset >= arr.Len() {
		return nil, fmt.Errorf("NewBinary: offset %d of %d: %w", offset, arr.Len(), ErrBadSlot)
	}

	return &Binary{arr: arr, offset: offset, logPost: logPost, rng: rng}, nil
}

// Step evaluates the posterior at 0 and at 1 and draws the slot from the
// normalized pair. Both log densities are shifted by their maximum first.
// Complexity: two posterior evaluations.
func (b *Binary) Step() {
	b.arr.SetFlat(b.offset, 0)
	l0 := b.logPost()
	b.arr.SetFlat(b.offset, 1)
	l1 := b.logPost()

	top := math.Max(l0, l1)
	e0, e1 := math.Exp(l0-top), math.Exp(l1-top)
	if b.rng.Float64() < e0/(e0+e1) {
		b.arr.SetFlat(b.offset, 0)
	}
}

// Value returns the current value of the slot.
func (b *Binary) Value() float64 {
	return b.arr.Flat(b.offset)
}

// Info reports the binary kind; there are no counters.
func (b *Binary) Info() Info {
	return Info{Kind: KindBinary}
}
