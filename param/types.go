// SPDX-License-Identifier: MIT
// Package param: descriptor and spec types.

package param

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/katalvlaran/amwg/ndarray"
)

// Type is the value domain of a parameter.
type Type string

const (
	// Real parameters take any value in [Lower, Upper].
	Real Type = "real"

	// Int parameters take integer values in [Lower, Upper].
	Int Type = "int"

	// Binary parameters take the values 0 and 1.
	Binary Type = "binary"
)

// Valid reports whether t is one of Real, Int, Binary.
func (t Type) Valid() bool {
	switch t {
	case Real, Int, Binary:
		return true
	default:
		return false
	}
}

// Init is an initial-value source: a single value, a generator called once
// per slot, or a complete array. Construct with InitValue, InitGenerator or
// InitArray.
type Init struct {
	value *float64
	gen   func() float64
	array *ndarray.Array
}

// InitValue broadcasts v over every slot of the parameter.
func InitValue(v float64) *Init {
	return &Init{value: &v}
}

// InitGenerator calls fn once per slot, in row-major order.
// Panics on nil to surface programmer error early.
func InitGenerator(fn func() float64) *Init {
	if fn == nil {
		panic("param: InitGenerator(nil)")
	}

	return &Init{gen: fn}
}

// InitArray uses a (copy of) a as the initial value; its shape must equal Dim.
// Panics on nil.
func InitArray(a *ndarray.Array) *Init {
	if a == nil {
		panic("param: InitArray(nil)")
	}

	return &Init{array: a.Clone()}
}

// Bound returns a pointer to v, for Descriptor.Lower and Descriptor.Upper.
func Bound(v float64) *float64 {
	return &v
}

// Descriptor is a partial parameter definition. Zero-valued fields
// (empty Type, nil Dim, nil bounds, nil Init) are "not given".
type Descriptor struct {
	Type  Type
	Dim   []int
	Lower *float64
	Upper *float64
	Init  *Init
}

// Spec is a completed parameter definition: every field is populated and
// Init has exactly the shape Dim.
type Spec struct {
	Type  Type
	Dim   []int
	Lower float64
	Upper float64
	Init  *ndarray.Array
}

// IsScalar reports whether the parameter has dimension vector [1].
func (s Spec) IsScalar() bool {
	return len(s.Dim) == 1 && s.Dim[0] == 1
}

// Clone returns a deep copy of s.
func (s Spec) Clone() Spec {
	return Spec{
		Type:  s.Type,
		Dim:   append([]int(nil), s.Dim...),
		Lower: s.Lower,
		Upper: s.Upper,
		Init:  s.Init.Clone(),
	}
}

// Equal reports field-wise equality, including the init values.
func (s Spec) Equal(o Spec) bool {
	return s.Type == o.Type &&
		ndarray.SameDim(s.Dim, o.Dim) &&
		s.Lower == o.Lower &&
		s.Upper == o.Upper &&
		s.Init.Equal(o.Init)
}

// Descriptor converts s back into a fully specified Descriptor.
func (s Spec) Descriptor() Descriptor {
	return Descriptor{
		Type:  s.Type,
		Dim:   append([]int(nil), s.Dim...),
		Lower: Bound(s.Lower),
		Upper: Bound(s.Upper),
		Init:  InitArray(s.Init),
	}
}

// specJSON mirrors Spec for encoding; infinite bounds are written as null.
type specJSON struct {
	Type  Type           `json:"type"`
	Dim   []int          `json:"dim"`
	Lower *float64       `json:"lower"`
	Upper *float64       `json:"upper"`
	Init  *ndarray.Array `json:"init"`
}

// MarshalJSON encodes s with ±Inf bounds as null, the format used by the
// completed-descriptor fixtures.
func (s Spec) MarshalJSON() ([]byte, error) {
	finite := func(v float64) *float64 {
		if math.IsInf(v, 0) {
			return nil
		}
		return &v
	}

	return json.Marshal(specJSON{
		Type:  s.Type,
		Dim:   s.Dim,
		Lower: finite(s.Lower),
		Upper: finite(s.Upper),
		Init:  s.Init,
	})
}

// Specs maps parameter names to completed definitions.
type Specs map[string]Spec

// Names returns the parameter names in sorted order. Every component that
// iterates over parameters uses this order, which keeps seeded runs
// reproducible.
func (ss Specs) Names() []string {
	names := make([]string, 0, len(ss))
	for name := range ss {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Descriptors converts every Spec back into a Descriptor.
func (ss Specs) Descriptors() map[string]Descriptor {
	out := make(map[string]Descriptor, len(ss))
	for name, s := range ss {
		out[name] = s.Descriptor()
	}

	return out
}

// Equal reports whether both maps hold the same names with equal specs.
func (ss Specs) Equal(o Specs) bool {
	if len(ss) != len(o) {
		return false
	}
	for name, s := range ss {
		other, ok := o[name]
		if !ok || !s.Equal(other) {
			return false
		}
	}

	return true
}
