// SPDX-License-Identifier: MIT
// Package param: completion of partial descriptors and the default init policy.

package param

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/amwg/ndarray"
)

// InitFunc returns an initial value for one slot of a parameter with the
// given type and bounds. Complete calls it once per slot of every parameter
// that has no explicit Init.
type InitFunc func(t Type, lower, upper float64) (float64, error)

// FixedInit is the default initialization policy:
//
//	real:   0.5 if unbounded, upper-0.5 / lower+0.5 if bounded on one side,
//	        the midpoint if bounded on both sides;
//	int:    1, upper-1 / lower+1, or the midpoint rounded half up;
//	binary: 1.
//
// It fails with ErrBadBounds when lower > upper.
func FixedInit(t Type, lower, upper float64) (float64, error) {
	loInf, hiInf := math.IsInf(lower, -1), math.IsInf(upper, 1)
	switch t {
	case Real:
		switch {
		case loInf && hiInf:
			return 0.5, nil
		case loInf:
			return upper - 0.5, nil
		case hiInf:
			return lower + 0.5, nil
		case lower <= upper:
			return (lower + upper) / 2, nil
		}
	case Int:
		switch {
		case loInf && hiInf:
			return 1, nil
		case loInf:
			return upper - 1, nil
		case hiInf:
			return lower + 1, nil
		case lower <= upper:
			return math.Floor((lower+upper)/2 + 0.5), nil
		}
	case Binary:
		return 1, nil
	default:
		return 0, fmt.Errorf("cannot initialize type %q: %w: %w", t, ErrInvalidParameter, ErrInvalidType)
	}

	return 0, fmt.Errorf("cannot initialize %s on [%g, %g]: %w: %w", t, lower, upper, ErrInvalidParameter, ErrBadBounds)
}

// Complete returns a fully populated copy of descs. A nil initFn selects
// FixedInit. Parameters are processed in sorted name order, so generators
// and init policies are invoked deterministically.
//
// Errors (all satisfy errors.Is(err, ErrInvalidParameter)):
//   - ErrInvalidType — Type is given but not real/int/binary.
//   - ErrBadDim      — Dim holds a non-positive extent.
//   - ErrBadBounds   — lower > upper and no Init is given (from FixedInit).
//   - ErrInitShape   — an explicit init array does not have shape Dim.
//
// Complexity: O(total number of slots).
func Complete(descs map[string]Descriptor, initFn InitFunc) (Specs, error) {
	if initFn == nil {
		initFn = FixedInit
	}
	names := make([]string, 0, len(descs))
	for name := range descs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Specs, len(descs))
	for _, name := range names {
		spec, err := completeOne(descs[name], initFn)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", name, err)
		}
		out[name] = spec
	}

	return out, nil
}

// completeOne fills in a single descriptor.
// Stage 1: type. Stage 2: dim. Stage 3: bounds. Stage 4: init.
func completeOne(d Descriptor, initFn InitFunc) (Spec, error) {
	t := d.Type
	if t == "" {
		t = Real
	}
	if !t.Valid() {
		return Spec{}, fmt.Errorf("type %q: %w: %w", t, ErrInvalidParameter, ErrInvalidType)
	}

	dim := []int{1}
	if len(d.Dim) > 0 {
		dim = append([]int(nil), d.Dim...)
	}
	for _, n := range dim {
		if n <= 0 {
			return Spec{}, fmt.Errorf("dim %v: %w: %w", dim, ErrInvalidParameter, ErrBadDim)
		}
	}

	lower, upper := math.Inf(-1), math.Inf(1)
	if d.Lower != nil {
		lower = *d.Lower
	}
	if d.Upper != nil {
		upper = *d.Upper
	}
	if t == Binary {
		lower, upper = 0, 1
	}

	initVal, err := resolveInit(d.Init, t, dim, lower, upper, initFn)
	if err != nil {
		return Spec{}, err
	}

	return Spec{Type: t, Dim: dim, Lower: lower, Upper: upper, Init: initVal}, nil
}

// resolveInit turns an Init source (or its absence) into a concrete array.
func resolveInit(src *Init, t Type, dim []int, lower, upper float64, initFn InitFunc) (*ndarray.Array, error) {
	switch {
	case src == nil:
		var initErr error
		a, err := ndarray.Generate(dim, func() float64 {
			if initErr != nil {
				return 0
			}
			v, err := initFn(t, lower, upper)
			if err != nil {
				initErr = err
			}
			return v
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
		}
		if initErr != nil {
			if errors.Is(initErr, ErrInvalidParameter) {
				return nil, initErr
			}
			return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, initErr)
		}
		return a, nil
	case src.array != nil:
		if !ndarray.SameDim(src.array.Dim(), dim) {
			return nil, fmt.Errorf("init dim %v, want %v: %w: %w",
				src.array.Dim(), dim, ErrInvalidParameter, ErrInitShape)
		}
		return src.array.Clone(), nil
	case src.gen != nil:
		return ndarray.Generate(dim, src.gen)
	case src.value != nil:
		return ndarray.Full(dim, *src.value)
	default:
		// An empty Init{} literal carries nothing; treat it as absent.
		return resolveInit(nil, t, dim, lower, upper, initFn)
	}
}
