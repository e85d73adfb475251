// SPDX-License-Identifier: MIT
// Package sampler: recorded draws and descriptive summaries.

package sampler

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/amwg/ndarray"
)

// Samples maps each monitored name to its recorded draws, oldest first.
type Samples map[string][]*ndarray.Array

// Names returns the recorded names in sorted order.
func (s Samples) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of draws recorded for name.
func (s Samples) Len(name string) int {
	return len(s[name])
}

// Scalars returns the first slot of every draw of name; for scalar
// parameters this is the whole trace. Unknown names give nil.
func (s Samples) Scalars(name string) []float64 {
	draws, ok := s[name]
	if !ok {
		return nil
	}
	out := make([]float64, len(draws))
	for i, a := range draws {
		out[i] = a.Value()
	}

	return out
}

// Component returns the trace of the slot at idx of name.
func (s Samples) Component(name string, idx ...int) ([]float64, error) {
	draws, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("Component(%q): %w", name, ErrUnknownMonitor)
	}
	out := make([]float64, len(draws))
	for i, a := range draws {
		v, err := a.At(idx...)
		if err != nil {
			return nil, fmt.Errorf("Component(%q, %v): %w", name, idx, err)
		}
		out[i] = v
	}

	return out, nil
}

// Summary describes the draws of one slot. It is descriptive only.
type Summary struct {
	Index  []int   `json:"index" yaml:"index"`
	N      int     `json:"n" yaml:"n"`
	Mean   float64 `json:"mean" yaml:"mean"`
	SD     float64 `json:"sd" yaml:"sd"`
	Min    float64 `json:"min" yaml:"min"`
	Q025   float64 `json:"q025" yaml:"q025"`
	Median float64 `json:"median" yaml:"median"`
	Q975   float64 `json:"q975" yaml:"q975"`
	Max    float64 `json:"max" yaml:"max"`
}

// Summarize computes one Summary per slot of every recorded name, in
// row-major slot order. Names without draws map to nil.
// Complexity: O(draws × slots × log draws).
func Summarize(s Samples) map[string][]Summary {
	out := make(map[string][]Summary, len(s))
	for name, draws := range s {
		if len(draws) == 0 {
			out[name] = nil
			continue
		}
		// Derived quantities may change shape; only draws shaped like the first count.
		first := draws[0]
		same := make([]*ndarray.Array, 0, len(draws))
		for _, a := range draws {
			if ndarray.SameDim(first.Dim(), a.Dim()) {
				same = append(same, a)
			}
		}
		sums := make([]Summary, first.Len())
		trace := make([]float64, len(same))
		for off := range sums {
			for i, a := range same {
				trace[i] = a.Flat(off)
			}
			idx, _ := first.Index(off)
			sums[off] = summarize(idx, trace)
		}
		out[name] = sums
	}

	return out
}

// summarize reduces one trace; xs is reordered.
func summarize(idx []int, xs []float64) Summary {
	sum := Summary{
		Index: idx,
		N:     len(xs),
		Mean:  stat.Mean(xs, nil),
		Min:   floats.Min(xs),
		Max:   floats.Max(xs),
	}
	if len(xs) > 1 {
		sum.SD = stat.StdDev(xs, nil)
	}
	sort.Float64s(xs)
	sum.Q025 = stat.Quantile(0.025, stat.Empirical, xs, nil)
	sum.Median = stat.Quantile(0.5, stat.Empirical, xs, nil)
	sum.Q975 = stat.Quantile(0.975, stat.Empirical, xs, nil)

	return sum
}
