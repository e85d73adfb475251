// SPDX-License-Identifier: MIT
// Package stepper: the Stepper interface and shared function types.

package stepper

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Stepper advances part of the shared chain state by one transition.
type Stepper interface {
	Step()
	StartAdaptation()
	StopAdaptation()
	Info() Info
}

// LogDensity evaluates the unnormalized log-posterior of the current state.
// -Inf means zero density.
type LogDensity func() float64

// Proposal draws a candidate around cur with standard deviation exp(logScale).
type Proposal func(r *rand.Rand, cur, logScale float64) float64

// NormalProposal draws cur + N(0, exp(logScale)²).
func NormalProposal(r *rand.Rand, cur, logScale float64) float64 {
	return cur + math.Exp(logScale)*r.NormFloat64()
}

// DiscreteNormalProposal rounds a NormalProposal draw to the nearest integer,
// halves rounding up.
func DiscreteNormalProposal(r *rand.Rand, cur, logScale float64) float64 {
	return math.Floor(NormalProposal(r, cur, logScale) + 0.5)
}

// AcceptanceProbability returns min(1, exp(l1-l0)). An undefined ratio (both
// densities -Inf, or any NaN) gives 0.
func AcceptanceProbability(l0, l1 float64) float64 {
	p := math.Exp(l1 - l0)
	if math.IsNaN(p) {
		return 0
	}

	return math.Min(1, p)
}

// AdaptationStep returns min(maxStep, 1/sqrt(k)) for the k-th completed batch.
// k < 1 returns maxStep.
func AdaptationStep(k int, maxStep float64) float64 {
	if k < 1 {
		return maxStep
	}

	return math.Min(maxStep, 1/math.Sqrt(float64(k)))
}

// Base supplies no-op adaptation hooks. Its Step panics with ErrNotImplemented;
// concrete steppers embed Base and override Step.
type Base struct{}

// Step panics: Base has no transition of its own.
func (Base) Step() {
	panic(fmt.Errorf("Step: %w", ErrNotImplemented))
}

// StartAdaptation is a no-op.
func (Base) StartAdaptation() {}

// StopAdaptation is a no-op.
func (Base) StopAdaptation() {}

// Info returns an empty Info.
func (Base) Info() Info { return Info{} }
