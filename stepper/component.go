// SPDX-License-Identifier: MIT
// Package stepper: component-wise composition over a multi-dimensional parameter.

package stepper

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/amwg/ndarray"
	"github.com/katalvlaran/amwg/param"
)

// Component owns one leaf stepper per slot of a parameter array and steps
// them all, visiting every array level in a freshly shuffled order.
type Component struct {
	dim    []int
	leaves []Stepper // row-major, len == product(dim)
	rng    *rand.Rand
}

// NewComponent builds a leaf stepper for every slot of arr, choosing the leaf
// kind from spec.Type. Every leaf starts from base; slot entries are applied
// on top for the slots they name, in order.
// Complexity: O(number of slots + len(slots)).
func NewComponent(
	spec param.Spec,
	arr *ndarray.Array,
	logPost LogDensity,
	rng *rand.Rand,
	base Options,
	slots []SlotOverrides,
) (*Component, error) {
	// Stage 1 (Validate).
	if arr == nil || logPost == nil || rng == nil {
		return nil, fmt.Errorf("NewComponent: %w", ErrNilArgument)
	}
	if !ndarray.SameDim(spec.Dim, arr.Dim()) {
		return nil, fmt.Errorf("NewComponent: dim %v vs array %v: %w", spec.Dim, arr.Dim(), ErrBadSlot)
	}
	perSlot := make(map[int][]Overrides, len(slots))
	for _, s := range slots {
		off, err := arr.Offset(s.Index...)
		if err != nil {
			return nil, fmt.Errorf("NewComponent: index %v: %w: %w", s.Index, ErrBadSlot, err)
		}
		perSlot[off] = append(perSlot[off], s.Overrides)
	}

	// Stage 2 (Build leaves).
	leaves := make([]Stepper, arr.Len())
	for off := range leaves {
		var (
			leaf Stepper
			err  error
		)
		opts := Resolve(base, perSlot[off]...)
		switch spec.Type {
		case param.Real:
			leaf, err = NewRealMetropolis(arr, off, spec.Lower, spec.Upper, logPost, rng, opts)
		case param.Int:
			leaf, err = NewIntMetropolis(arr, off, spec.Lower, spec.Upper, logPost, rng, opts)
		case param.Binary:
			leaf, err = NewBinary(arr, off, logPost, rng)
		default:
			return nil, fmt.Errorf("NewComponent: type %q: %w", spec.Type, ErrUnsupportedType)
		}
		if err != nil {
			return nil, fmt.Errorf("NewComponent: slot %d: %w", off, err)
		}
		leaves[off] = leaf
	}

	return newComponent(arr.Dim(), leaves, rng), nil
}

// newComponent assembles a Component over prebuilt leaves.
func newComponent(dim []int, leaves []Stepper, rng *rand.Rand) *Component {
	return &Component{dim: append([]int(nil), dim...), leaves: leaves, rng: rng}
}

// Step visits every leaf once. Each array level draws its own permutation.
// Complexity: O(number of slots) leaf steps.
func (c *Component) Step() {
	c.walk(0, 0)
}

// walk visits the subarray at prefix offset base along axis.
func (c *Component) walk(axis, base int) {
	n := c.dim[axis]
	last := axis == len(c.dim)-1
	for _, i := range Perm(n, c.rng) {
		off := base*n + i
		if last {
			c.leaves[off].Step()
			continue
		}
		c.walk(axis+1, off)
	}
}

// StartAdaptation fans out to every leaf.
func (c *Component) StartAdaptation() {
	for _, l := range c.leaves {
		l.StartAdaptation()
	}
}

// StopAdaptation fans out to every leaf.
func (c *Component) StopAdaptation() {
	for _, l := range c.leaves {
		l.StopAdaptation()
	}
}

// Info returns one nested node per array level, mirroring the parameter shape.
func (c *Component) Info() Info {
	return c.info(0, 0)
}

func (c *Component) info(axis, base int) Info {
	n := c.dim[axis]
	node := Info{Kind: KindComponent, Children: make([]Info, n)}
	for i := 0; i < n; i++ {
		off := base*n + i
		if axis == len(c.dim)-1 {
			node.Children[i] = c.leaves[off].Info()
		} else {
			node.Children[i] = c.info(axis+1, off)
		}
	}

	return node
}

// Leaf returns the stepper for the slot at idx, or nil when idx is out of range.
func (c *Component) Leaf(idx ...int) Stepper {
	if len(idx) != len(c.dim) {
		return nil
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= c.dim[k] {
			return nil
		}
		off = off*c.dim[k] + i
	}

	return c.leaves[off]
}
