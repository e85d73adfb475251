// SPDX-License-Identifier: MIT
package stepper_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/amwg/stepper"
)

// TestNewRand_Deterministic checks the seed policy.
func TestNewRand_Deterministic(t *testing.T) {
	a, b := stepper.NewRand(0), stepper.NewRand(1)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	c, d := stepper.NewRand(42), stepper.NewRand(43)
	assert.NotEqual(t, c.Uint64(), d.Uint64())
}

// TestDerive_IndependentStreams checks that stream ids separate children.
func TestDerive_IndependentStreams(t *testing.T) {
	x := stepper.Derive(stepper.NewRand(9), 1)
	y := stepper.Derive(stepper.NewRand(9), 2)
	assert.NotEqual(t, x.Uint64(), y.Uint64())

	z1 := stepper.Derive(nil, 5)
	z2 := stepper.Derive(nil, 5)
	assert.Equal(t, z1.Uint64(), z2.Uint64())
}

// TestPerm returns a permutation of 0..n-1.
func TestPerm(t *testing.T) {
	r := stepper.NewRand(3)
	for _, n := range []int{1, 2, 7, 100} {
		p := stepper.Perm(n, r)
		sorted := append([]int(nil), p...)
		sort.Ints(sorted)
		for i, v := range sorted {
			assert.Equal(t, i, v)
		}
	}
	assert.Nil(t, stepper.Perm(0, r))
}
