// SPDX-License-Identifier: MIT
// Package stepper: scalar adaptive random-walk Metropolis.

package stepper

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/amwg/ndarray"
)

// Metropolis updates one real or int slot of a parameter array.
type Metropolis struct {
	arr          *ndarray.Array
	offset       int
	lower, upper float64
	propose      Proposal
	logPost      LogDensity
	rng          *rand.Rand
	kind         Kind

	batchSize  int
	maxStep    float64
	target     float64
	logScale   float64
	adapting   bool
	accepted   int
	sinceBatch int
	batches    int
}

// NewMetropolis builds a stepper for slot offset of arr (row-major), bounded
// by [lower, upper]. opts must pass Validate.
// Complexity: O(1).
func NewMetropolis(
	arr *ndarray.Array,
	offset int,
	lower, upper float64,
	propose Proposal,
	logPost LogDensity,
	rng *rand.Rand,
	opts Options,
) (*Metropolis, error) {
	// Stage 1 (Validate).
	if arr == nil || propose == nil || logPost == nil || rng == nil {
		return nil, fmt.Errorf("NewMetropolis: %w", ErrNilArgument)
	}
	if offset < 0 || offset >= arr.Len() {
		return nil, fmt.Errorf("NewMetropolis: offset %d of %d: %w", offset, arr.Len(), ErrBadSlot)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("NewMetropolis: %w", err)
	}

	// Stage 2 (Assemble).
	return &Metropolis{
		arr:       arr,
		offset:    offset,
		lower:     lower,
		upper:     upper,
		propose:   propose,
		logPost:   logPost,
		rng:       rng,
		kind:      KindMetropolisReal,
		batchSize: opts.BatchSize,
		maxStep:   opts.MaxAdaptationStep,
		target:    opts.TargetAcceptRate,
		logScale:  opts.LogScale,
		adapting:  opts.Adapting,
	}, nil
}

// NewRealMetropolis is NewMetropolis with NormalProposal.
func NewRealMetropolis(arr *ndarray.Array, offset int, lower, upper float64, logPost LogDensity, rng *rand.Rand, opts Options) (*Metropolis, error) {
	return NewMetropolis(arr, offset, lower, upper, NormalProposal, logPost, rng, opts)
}

// NewIntMetropolis is NewMetropolis with DiscreteNormalProposal.
func NewIntMetropolis(arr *ndarray.Array, offset int, lower, upper float64, logPost LogDensity, rng *rand.Rand, opts Options) (*Metropolis, error) {
	m, err := NewMetropolis(arr, offset, lower, upper, DiscreteNormalProposal, logPost, rng, opts)
	if err != nil {
		return nil, err
	}
	m.kind = KindMetropolisInt

	return m, nil
}

// Step performs one Metropolis transition. Candidates outside [lower, upper]
// are rejected without evaluating the posterior. On rejection the slot is
// restored to its previous value.
func (m *Metropolis) Step() {
	cur := m.arr.Flat(m.offset)
	cand := m.propose(m.rng, cur, m.logScale)

	accepted := false
	if cand >= m.lower && cand <= m.upper {
		l0 := m.logPost()
		m.arr.SetFlat(m.offset, cand)
		l1 := m.logPost()
		// NaN ratios compare false and reject.
		if m.rng.Float64() < math.Exp(l1-l0) {
			accepted = true
		} else {
			m.arr.SetFlat(m.offset, cur)
		}
	}

	if m.adapting {
		m.adapt(accepted)
	}
}

// adapt updates the batch counters and, at a batch boundary, the log scale.
func (m *Metropolis) adapt(accepted bool) {
	if accepted {
		m.accepted++
	}
	m.sinceBatch++
	if m.sinceBatch < m.batchSize {
		return
	}

	m.batches++
	delta := AdaptationStep(m.batches, m.maxStep)
	if float64(m.accepted)/float64(m.batchSize) > m.target {
		m.logScale += delta
	} else {
		m.logScale -= delta
	}
	m.accepted = 0
	m.sinceBatch = 0
}

// Value returns the current value of the slot.
func (m *Metropolis) Value() float64 {
	return m.arr.Flat(m.offset)
}

// StartAdaptation resumes adaptation; counters are kept.
func (m *Metropolis) StartAdaptation() { m.adapting = true }

// StopAdaptation freezes the proposal scale; counters are kept.
func (m *Metropolis) StopAdaptation() { m.adapting = false }

// Info reports the adaptation counters.
func (m *Metropolis) Info() Info {
	return Info{
		Kind: m.kind,
		Adaptation: &AdaptationInfo{
			LogScale:             m.logScale,
			Adapting:             m.adapting,
			AcceptanceCount:      m.accepted,
			IterationsSinceBatch: m.sinceBatch,
			BatchCount:           m.batches,
		},
	}
}
