// SPDX-License-Identifier: MIT
package stepper_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amwg/ndarray"
	"github.com/katalvlaran/amwg/stepper"
)

// TestBinary_MatchesExactConditional compares long-run frequency to exp(L1)/(exp(L0)+exp(L1)).
func TestBinary_MatchesExactConditional(t *testing.T) {
	const draws = 20000
	cases := []struct{ l0, l1 float64 }{
		{0, math.Log(3)},
		{-700, -701},
		{2, 2},
	}
	for _, tc := range cases {
		arr := ndarray.Scalar(1)
		logPost := func() float64 {
			if arr.Value() == 1 {
				return tc.l1
			}
			return tc.l0
		}
		b, err := stepper.NewBinary(arr, 0, logPost, stepper.NewRand(11))
		require.NoError(t, err)

		ones := 0
		for i := 0; i < draws; i++ {
			b.Step()
			if b.Value() == 1 {
				ones++
			}
		}
		want := math.Exp(tc.l1) / (math.Exp(tc.l0) + math.Exp(tc.l1))
		sd := math.Sqrt(want * (1 - want) / draws)
		assert.InDelta(t, want, float64(ones)/draws, 4*sd+1e-9, "l0=%g l1=%g", tc.l0, tc.l1)
	}
}

// TestBinary_DegenerateSide always picks the only supported value.
func TestBinary_DegenerateSide(t *testing.T) {
	arr := ndarray.Scalar(1)
	logPost := func() float64 {
		if arr.Value() == 1 {
			return math.Inf(-1)
		}
		return -5
	}
	b, err := stepper.NewBinary(arr, 0, logPost, stepper.NewRand(12))
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		b.Step()
		require.Equal(t, 0.0, b.Value())
	}
	assert.Equal(t, stepper.KindBinary, b.Info().Kind)
	assert.Nil(t, b.Info().Adaptation)

	// Adaptation hooks are no-ops.
	b.StartAdaptation()
	b.StopAdaptation()
}

// TestBase_StepPanics ensures Base is not a usable stepper.
func TestBase_StepPanics(t *testing.T) {
	var s stepper.Stepper = stepper.Base{}
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, stepper.ErrNotImplemented))
	}()
	s.Step()
}
