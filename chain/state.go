// SPDX-License-Identifier: MIT
// Package chain: State, the shared chain state.

package chain

import (
	"fmt"

	"github.com/katalvlaran/amwg/ndarray"
	"github.com/katalvlaran/amwg/param"
)

// State is the current value of every parameter and derived quantity.
type State struct {
	params  map[string]*ndarray.Array // declared parameters, fixed key set
	names   []string                  // parameter names, sorted
	derived map[string]*ndarray.Array // written by the log-posterior
	dnames  []string                  // derived names, in first-write order
}

// New builds a State whose parameters hold copies of the specs' init arrays.
// Complexity: O(total number of slots).
func New(specs param.Specs) *State {
	s := &State{
		params:  make(map[string]*ndarray.Array, len(specs)),
		names:   specs.Names(),
		derived: make(map[string]*ndarray.Array),
	}
	for _, name := range s.names {
		s.params[name] = specs[name].Init.Clone()
	}

	return s
}

// Names returns the declared parameter names in sorted order.
func (s *State) Names() []string {
	return append([]string(nil), s.names...)
}

// Param returns the live array of a declared parameter, or nil if name is
// not declared. Writes through the returned array change the state.
func (s *State) Param(name string) *ndarray.Array {
	return s.params[name]
}

// IsParam reports whether name is a declared parameter.
func (s *State) IsParam(name string) bool {
	_, ok := s.params[name]
	return ok
}

// Lookup returns the array stored under name, searching parameters first and
// derived quantities second.
func (s *State) Lookup(name string) (*ndarray.Array, bool) {
	if a, ok := s.params[name]; ok {
		return a, true
	}
	a, ok := s.derived[name]

	return a, ok
}

// Scalar returns the first slot of the named parameter or derived quantity.
// It panics on an unknown name: a log-posterior reading an undeclared
// parameter is a programming error, and it surfaces when the sampler
// evaluates the posterior during construction.
func (s *State) Scalar(name string) float64 {
	a, ok := s.Lookup(name)
	if !ok {
		panic(fmt.Errorf("Scalar(%q): %w", name, ErrUnknownName))
	}

	return a.Value()
}

// At returns one slot of the named parameter or derived quantity.
// It panics on an unknown name or an out-of-range index.
func (s *State) At(name string, idx ...int) float64 {
	a, ok := s.Lookup(name)
	if !ok {
		panic(fmt.Errorf("At(%q): %w", name, ErrUnknownName))
	}
	v, err := a.At(idx...)
	if err != nil {
		panic(fmt.Errorf("At(%q): %w", name, err))
	}

	return v
}

// SetDerived stores a scalar derived quantity.
func (s *State) SetDerived(name string, v float64) error {
	if cur, ok := s.derived[name]; ok && cur.IsScalar() {
		cur.SetFlat(0, v)
		return nil
	}

	return s.SetDerivedArray(name, ndarray.Scalar(v))
}

// SetDerivedArray stores a copy of a as a derived quantity. Writing the same
// name again with the same shape updates the stored array in place.
func (s *State) SetDerivedArray(name string, a *ndarray.Array) error {
	if _, ok := s.params[name]; ok {
		return fmt.Errorf("SetDerived(%q): %w", name, ErrShadowsParam)
	}
	cur, ok := s.derived[name]
	if ok && ndarray.SameDim(cur.Dim(), a.Dim()) {
		return cur.CopyFrom(a)
	}
	if !ok {
		s.dnames = append(s.dnames, name)
	}
	s.derived[name] = a.Clone()

	return nil
}

// Derived returns the named derived quantity, or nil.
func (s *State) Derived(name string) *ndarray.Array {
	return s.derived[name]
}

// DerivedNames returns derived-quantity names in the order they first appeared.
func (s *State) DerivedNames() []string {
	return append([]string(nil), s.dnames...)
}

// HasDerived reports whether the log-posterior has written any derived quantity.
func (s *State) HasDerived() bool {
	return len(s.dnames) > 0
}

// Keys returns all parameter names followed by all derived names.
func (s *State) Keys() []string {
	keys := make([]string, 0, len(s.names)+len(s.dnames))
	keys = append(keys, s.names...)

	return append(keys, s.dnames...)
}

// Snapshot returns deep copies of every parameter and derived quantity.
// Complexity: O(total number of slots).
func (s *State) Snapshot() map[string]*ndarray.Array {
	out := make(map[string]*ndarray.Array, len(s.params)+len(s.derived))
	for name, a := range s.params {
		out[name] = a.Clone()
	}
	for name, a := range s.derived {
		out[name] = a.Clone()
	}

	return out
}

// Restore overwrites parameter values from a snapshot taken on this state.
// Names missing from snap are left untouched; unknown names are an error.
func (s *State) Restore(snap map[string]*ndarray.Array) error {
	for name, a := range snap {
		if cur, ok := s.params[name]; ok {
			if err := cur.CopyFrom(a); err != nil {
				return fmt.Errorf("Restore(%q): %w", name, err)
			}
			continue
		}
		if _, ok := s.derived[name]; ok {
			if err := s.SetDerivedArray(name, a); err != nil {
				return err
			}
			continue
		}

		return fmt.Errorf("Restore(%q): %w", name, ErrUnknownName)
	}

	return nil
}
