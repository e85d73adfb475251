// SPDX-License-Identifier: MIT
// Package stepper: read-only diagnostics.

package stepper

import "sort"

// Kind names a stepper variant in Info.
type Kind string

const (
	KindMetropolisReal Kind = "metropolis-real"
	KindMetropolisInt  Kind = "metropolis-int"
	KindBinary         Kind = "binary"
	KindComponent      Kind = "component"
	KindAmwg           Kind = "amwg"
)

// AdaptationInfo is a snapshot of one adaptive stepper's counters.
type AdaptationInfo struct {
	LogScale             float64 `json:"log_scale" yaml:"log_scale"`
	Adapting             bool    `json:"adapting" yaml:"adapting"`
	AcceptanceCount      int     `json:"acceptance_count" yaml:"acceptance_count"`
	IterationsSinceBatch int     `json:"iterations_since_batch" yaml:"iterations_since_batch"`
	BatchCount           int     `json:"batch_count" yaml:"batch_count"`
}

// Info describes a stepper tree. Component nodes carry one child per index of
// their axis, so Children nests exactly like the parameter's shape. Amwg nodes
// carry Params keyed by parameter name.
type Info struct {
	Kind       Kind            `json:"kind" yaml:"kind"`
	Adaptation *AdaptationInfo `json:"adaptation,omitempty" yaml:"adaptation,omitempty"`
	Children   []Info          `json:"children,omitempty" yaml:"children,omitempty"`
	Params     map[string]Info `json:"params,omitempty" yaml:"params,omitempty"`
}

// Leaves returns the adaptation snapshots of every leaf under i in
// depth-first order: row-major for component nodes, sorted by parameter name
// for amwg nodes. Binary leaves carry no snapshot and are skipped.
func (i Info) Leaves() []AdaptationInfo {
	var out []AdaptationInfo
	var walk func(Info)
	walk = func(n Info) {
		if n.Adaptation != nil {
			out = append(out, *n.Adaptation)
		}
		for _, c := range n.Children {
			walk(c)
		}
		names := make([]string, 0, len(n.Params))
		for name := range n.Params {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			walk(n.Params[name])
		}
	}
	walk(i)

	return out
}
