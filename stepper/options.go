// SPDX-License-Identifier: MIT
// Package stepper: adaptation options and their layered resolution.
//
// Layers, lowest first:
//   DefaultOptions() → AmwgOptions.Global → ParamOptions → SlotOverrides.
// A nil pointer in a layer means "inherit"; any non-nil value wins, including 0 and false.

package stepper

import (
	"fmt"
	"math"
)

// Hard defaults for adaptive scalar steppers.
const (
	DefaultLogScale          = 0.0
	DefaultBatchSize         = 50
	DefaultMaxAdaptationStep = 0.01
	DefaultTargetAcceptRate  = 0.44
)

// Options is a fully resolved set of adaptation knobs for one scalar slot.
type Options struct {
	LogScale          float64 `yaml:"log_scale" json:"log_scale"`
	BatchSize         int     `yaml:"batch_size" json:"batch_size"`
	MaxAdaptationStep float64 `yaml:"max_adaptation_step" json:"max_adaptation_step"`
	TargetAcceptRate  float64 `yaml:"target_accept_rate" json:"target_accept_rate"`
	Adapting          bool    `yaml:"adapting" json:"adapting"`
}

// DefaultOptions returns {LogScale 0, BatchSize 50, MaxAdaptationStep 0.01,
// TargetAcceptRate 0.44, Adapting true}.
func DefaultOptions() Options {
	return Options{
		LogScale:          DefaultLogScale,
		BatchSize:         DefaultBatchSize,
		MaxAdaptationStep: DefaultMaxAdaptationStep,
		TargetAcceptRate:  DefaultTargetAcceptRate,
		Adapting:          true,
	}
}

// Validate reports the first out-of-range field, wrapped in ErrBadOption.
func (o Options) Validate() error {
	switch {
	case math.IsNaN(o.LogScale) || math.IsInf(o.LogScale, 0):
		return fmt.Errorf("%w: log_scale %g", ErrBadOption, o.LogScale)
	case o.BatchSize < 1:
		return fmt.Errorf("%w: batch_size %d < 1", ErrBadOption, o.BatchSize)
	case !(o.MaxAdaptationStep >= 0):
		return fmt.Errorf("%w: max_adaptation_step %g", ErrBadOption, o.MaxAdaptationStep)
	case !(o.TargetAcceptRate >= 0 && o.TargetAcceptRate <= 1):
		return fmt.Errorf("%w: target_accept_rate %g not in [0,1]", ErrBadOption, o.TargetAcceptRate)
	}

	return nil
}

// Overrides is a partial Options; nil fields inherit from the layer below.
type Overrides struct {
	LogScale          *float64 `yaml:"log_scale,omitempty" json:"log_scale,omitempty"`
	BatchSize         *int     `yaml:"batch_size,omitempty" json:"batch_size,omitempty"`
	MaxAdaptationStep *float64 `yaml:"max_adaptation_step,omitempty" json:"max_adaptation_step,omitempty"`
	TargetAcceptRate  *float64 `yaml:"target_accept_rate,omitempty" json:"target_accept_rate,omitempty"`
	Adapting          *bool    `yaml:"adapting,omitempty" json:"adapting,omitempty"`
}

// Ptr returns a pointer to v, for filling Overrides literals.
func Ptr[T any](v T) *T {
	return &v
}

// Apply returns base with every non-nil field of o written over it.
func (o Overrides) Apply(base Options) Options {
	if o.LogScale != nil {
		base.LogScale = *o.LogScale
	}
	if o.BatchSize != nil {
		base.BatchSize = *o.BatchSize
	}
	if o.MaxAdaptationStep != nil {
		base.MaxAdaptationStep = *o.MaxAdaptationStep
	}
	if o.TargetAcceptRate != nil {
		base.TargetAcceptRate = *o.TargetAcceptRate
	}
	if o.Adapting != nil {
		base.Adapting = *o.Adapting
	}

	return base
}

// Resolve applies layers over defaults in order; later layers win.
// Complexity: O(len(layers)).
func Resolve(defaults Options, layers ...Overrides) Options {
	out := defaults
	for _, l := range layers {
		out = l.Apply(out)
	}

	return out
}

// SlotOverrides targets one scalar slot of a multi-dimensional parameter.
type SlotOverrides struct {
	Index     []int `yaml:"index" json:"index"`
	Overrides `yaml:",inline"`
}

// ParamOptions holds the overrides for one named parameter.
type ParamOptions struct {
	Overrides `yaml:",inline"`
	Slots     []SlotOverrides `yaml:"slots,omitempty" json:"slots,omitempty"`
}

// AmwgOptions configures every sub-stepper built by NewAmwg.
type AmwgOptions struct {
	Global Overrides               `yaml:"global" json:"global"`
	Params map[string]ParamOptions `yaml:"params" json:"params"`
}
