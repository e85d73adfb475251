// SPDX-License-Identifier: MIT
// Package stepper: the AMWG composite over every named parameter.

package stepper

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/amwg/chain"
	"github.com/katalvlaran/amwg/ndarray"
	"github.com/katalvlaran/amwg/param"
)

// Amwg holds one sub-stepper per parameter and sweeps them in random order.
type Amwg struct {
	names    []string // sorted
	steppers []Stepper
	rng      *rand.Rand
}

// NewAmwg selects a sub-stepper for every parameter in specs:
//
//	type    dim == [1]        otherwise
//	real    Metropolis(real)  Component(real)
//	int     Metropolis(int)   Component(int)
//	binary  Binary            Component(binary)
//
// Options resolve as DefaultOptions, then opts.Global, then opts.Params[name],
// then the parameter's per-slot entries. Params entries for unknown names are
// rejected with ErrBadOption. Every array-valued parameter draws its slot
// order and leaf proposals from its own stream, derived from rng by the
// parameter's position in sorted order.
// Complexity: O(total number of slots).
func NewAmwg(specs param.Specs, state *chain.State, logPost LogDensity, rng *rand.Rand, opts AmwgOptions) (*Amwg, error) {
	// Stage 1 (Validate).
	if state == nil || logPost == nil || rng == nil {
		return nil, fmt.Errorf("NewAmwg: %w", ErrNilArgument)
	}
	unknown := make([]string, 0)
	for name := range opts.Params {
		if _, ok := specs[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("NewAmwg: options for undeclared parameters %v: %w", unknown, ErrBadOption)
	}

	// Stage 2 (Dispatch per parameter).
	a := &Amwg{names: specs.Names(), rng: rng}
	a.steppers = make([]Stepper, 0, len(a.names))
	for i, name := range a.names {
		s, err := newParamStepper(name, specs[name], state, logPost, rng, uint64(i), opts)
		if err != nil {
			return nil, fmt.Errorf("NewAmwg: param %q: %w", name, err)
		}
		a.steppers = append(a.steppers, s)
	}

	return a, nil
}

// newParamStepper implements the (type, scalar?) dispatch table.
func newParamStepper(name string, spec param.Spec, state *chain.State, logPost LogDensity, rng *rand.Rand, stream uint64, opts AmwgOptions) (Stepper, error) {
	arr := state.Param(name)
	if arr == nil {
		return nil, fmt.Errorf("missing from state: %w", chain.ErrUnknownName)
	}
	po := opts.Params[name]
	base := Resolve(DefaultOptions(), opts.Global, po.Overrides)

	if !spec.IsScalar() {
		return NewComponent(spec, arr, logPost, Derive(rng, stream), base, po.Slots)
	}
	if len(po.Slots) > 0 {
		layers, err := slotLayers(arr, po.Slots)
		if err != nil {
			return nil, err
		}
		base = Resolve(base, layers...)
	}
	switch spec.Type {
	case param.Real:
		return NewRealMetropolis(arr, 0, spec.Lower, spec.Upper, logPost, rng, base)
	case param.Int:
		return NewIntMetropolis(arr, 0, spec.Lower, spec.Upper, logPost, rng, base)
	case param.Binary:
		return NewBinary(arr, 0, logPost, rng)
	}

	return nil, fmt.Errorf("type %q: %w", spec.Type, ErrUnsupportedType)
}

// slotLayers flattens slot entries for a scalar parameter, whose only slot is [0].
func slotLayers(arr *ndarray.Array, slots []SlotOverrides) ([]Overrides, error) {
	out := make([]Overrides, 0, len(slots))
	for _, s := range slots {
		if _, err := arr.Offset(s.Index...); err != nil {
			return nil, fmt.Errorf("index %v: %w: %w", s.Index, ErrBadSlot, err)
		}
		out = append(out, s.Overrides)
	}

	return out, nil
}

// Step runs every sub-stepper once, in a fresh random order.
func (a *Amwg) Step() {
	for _, i := range Perm(len(a.steppers), a.rng) {
		a.steppers[i].Step()
	}
}

// StartAdaptation fans out to every sub-stepper.
func (a *Amwg) StartAdaptation() {
	for _, s := range a.steppers {
		s.StartAdaptation()
	}
}

// StopAdaptation fans out to every sub-stepper.
func (a *Amwg) StopAdaptation() {
	for _, s := range a.steppers {
		s.StopAdaptation()
	}
}

// Info maps every parameter name to its sub-stepper's Info.
func (a *Amwg) Info() Info {
	out := Info{Kind: KindAmwg, Params: make(map[string]Info, len(a.names))}
	for i, name := range a.names {
		out.Params[name] = a.steppers[i].Info()
	}

	return out
}

// Names returns the parameter names in sorted order.
func (a *Amwg) Names() []string {
	return append([]string(nil), a.names...)
}

// Stepper returns the sub-stepper for name, or nil.
func (a *Amwg) Stepper(name string) Stepper {
	i := sort.SearchStrings(a.names, name)
	if i < len(a.names) && a.names[i] == name {
		return a.steppers[i]
	}

	return nil
}
