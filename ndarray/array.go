// SPDX-License-Identifier: MIT
// Package ndarray: Array, a row-major float64 container of arbitrary rank.

package ndarray

import (
	"encoding/json"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Array is a row-major array of float64 values with an explicit dimension vector.
// dim is never empty; len(data) == product(dim).
type Array struct {
	dim  []int     // extents per axis, each > 0
	data []float64 // flat backing storage in row-major order
}

// validateDim checks that dim is non-empty with positive extents and returns
// the number of slots it describes.
// Complexity: O(len(dim)).
func validateDim(dim []int) (int, error) {
	if len(dim) == 0 {
		return 0, fmt.Errorf("dim %v: %w", dim, ErrBadShape)
	}
	n := 1
	for _, d := range dim {
		if d <= 0 {
			return 0, fmt.Errorf("dim %v: %w", dim, ErrBadShape)
		}
		n *= d
	}

	return n, nil
}

// New creates a zero-filled Array of the given shape.
// The dim slice is copied; callers may reuse it.
// Complexity: O(product(dim)) time and memory.
func New(dim []int) (*Array, error) {
	n, err := validateDim(dim)
	if err != nil {
		return nil, err
	}

	return &Array{dim: append([]int(nil), dim...), data: make([]float64, n)}, nil
}

// Full creates an Array of the given shape with every slot set to v.
func Full(dim []int, v float64) (*Array, error) {
	a, err := New(dim)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = v
	}

	return a, nil
}

// Generate creates an Array of the given shape, calling fn once per slot in
// row-major order.
func Generate(dim []int, fn func() float64) (*Array, error) {
	a, err := New(dim)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = fn()
	}

	return a, nil
}

// Scalar returns a one-slot Array with dim [1].
func Scalar(v float64) *Array {
	return &Array{dim: []int{1}, data: []float64{v}}
}

// Dim returns a copy of the dimension vector.
func (a *Array) Dim() []int {
	return append([]int(nil), a.dim...)
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.dim)
}

// Len returns the number of scalar slots.
func (a *Array) Len() int {
	return len(a.data)
}

// IsScalar reports whether the array has dimension vector [1].
func (a *Array) IsScalar() bool {
	return len(a.dim) == 1 && a.dim[0] == 1
}

// Offset converts a multi-index into a flat row-major offset.
// Stage 1 (Validate): rank and per-axis bounds.
// Stage 2 (Execute): Horner-style accumulation over axes.
// Complexity: O(rank).
func (a *Array) Offset(idx ...int) (int, error) {
	if len(idx) != len(a.dim) {
		return 0, fmt.Errorf("Offset(%v) on dim %v: %w", idx, a.dim, ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.dim[k] {
			return 0, fmt.Errorf("Offset(%v) on dim %v: %w", idx, a.dim, ErrOutOfRange)
		}
		off = off*a.dim[k] + i
	}

	return off, nil
}

// Index converts a flat offset back into a multi-index.
// Complexity: O(rank).
func (a *Array) Index(off int) ([]int, error) {
	if off < 0 || off >= len(a.data) {
		return nil, fmt.Errorf("Index(%d) on dim %v: %w", off, a.dim, ErrOutOfRange)
	}
	idx := make([]int, len(a.dim))
	for k := len(a.dim) - 1; k >= 0; k-- {
		idx[k] = off % a.dim[k]
		off /= a.dim[k]
	}

	return idx, nil
}

// At returns the value stored at the given multi-index.
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.Offset(idx...)
	if err != nil {
		return 0, err
	}

	return a.data[off], nil
}

// Set stores v at the given multi-index.
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.Offset(idx...)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}

// Flat returns the value at flat offset i. It panics if i is out of range,
// like a slice index; use At for checked access.
func (a *Array) Flat(i int) float64 {
	return a.data[i]
}

// SetFlat stores v at flat offset i. It panics if i is out of range.
func (a *Array) SetFlat(i int, v float64) {
	a.data[i] = v
}

// Value returns the first slot; for scalars this is the value.
func (a *Array) Value() float64 {
	return a.data[0]
}

// Data returns a copy of the flat backing slice.
func (a *Array) Data() []float64 {
	return append([]float64(nil), a.data...)
}

// CopyFrom overwrites a's values with b's. Shapes must match.
// Complexity: O(Len).
func (a *Array) CopyFrom(b *Array) error {
	if !SameDim(a.dim, b.dim) {
		return fmt.Errorf("CopyFrom dim %v into %v: %w", b.dim, a.dim, ErrBadShape)
	}
	copy(a.data, b.data)

	return nil
}

// Clone returns a deep copy.
// Complexity: O(Len) time and memory.
func (a *Array) Clone() *Array {
	if a == nil {
		return nil
	}

	return &Array{dim: a.Dim(), data: a.Data()}
}

// Equal reports whether a and b have the same shape and identical values.
// NaN slots compare unequal, as with ==.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !SameDim(a.dim, b.dim) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// SameDim reports whether two dimension vectors are identical.
func SameDim(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Nested returns the values as nested []any slices following dim, suitable
// for encoding/json and yaml encoders. A scalar yields []any{v}.
// Complexity: O(Len).
func (a *Array) Nested() any {
	pos := 0
	var build func(axis int) []any
	build = func(axis int) []any {
		out := make([]any, a.dim[axis])
		for i := range out {
			if axis == len(a.dim)-1 {
				out[i] = a.data[pos]
				pos++
			} else {
				out[i] = build(axis + 1)
			}
		}

		return out
	}

	return build(0)
}

// MarshalJSON encodes the array as its nested form.
func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Nested())
}

// UnmarshalJSON decodes a number or nested list of numbers.
func (a *Array) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := FromNested(raw)
	if err != nil {
		return err
	}
	*a = *parsed

	return nil
}

// MarshalYAML encodes the array as its nested form.
func (a *Array) MarshalYAML() (any, error) {
	return a.Nested(), nil
}

// UnmarshalYAML decodes a number or nested sequence of numbers.
func (a *Array) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromNested(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*a = *parsed

	return nil
}

// String renders the nested form, e.g. "[[1 2] [3 4]]".
func (a *Array) String() string {
	return fmt.Sprint(a.Nested())
}

// FromNested converts a number or a rectangular nested slice of numbers into
// an Array. A bare number becomes a scalar with dim [1]. Any slice type is
// accepted ([]any, []float64, [][]int, ...); ragged input yields ErrBadShape.
// Complexity: O(number of leaves).
func FromNested(v any) (*Array, error) {
	if v == nil {
		return nil, fmt.Errorf("FromNested(nil): %w", ErrNotNumeric)
	}
	rv := reflect.ValueOf(v)
	if f, ok := numeric(rv); ok {
		return Scalar(f), nil
	}

	// Discover the shape by following the first element on each level.
	var dim []int
	for cur := rv; ; {
		if cur.Kind() == reflect.Interface {
			cur = cur.Elem()
		}
		if cur.Kind() != reflect.Slice && cur.Kind() != reflect.Array {
			break
		}
		if cur.Len() == 0 {
			return nil, fmt.Errorf("FromNested: empty axis: %w", ErrBadShape)
		}
		dim = append(dim, cur.Len())
		cur = cur.Index(0)
	}
	if len(dim) == 0 {
		return nil, fmt.Errorf("FromNested(%T): %w", v, ErrNotNumeric)
	}

	a, err := New(dim)
	if err != nil {
		return nil, err
	}
	pos := 0
	var fill func(cur reflect.Value, axis int) error
	fill = func(cur reflect.Value, axis int) error {
		if cur.Kind() == reflect.Interface {
			cur = cur.Elem()
		}
		if axis == len(dim) {
			f, ok := numeric(cur)
			if !ok {
				return fmt.Errorf("FromNested: leaf %v: %w", cur, ErrNotNumeric)
			}
			a.data[pos] = f
			pos++

			return nil
		}
		if (cur.Kind() != reflect.Slice && cur.Kind() != reflect.Array) || cur.Len() != dim[axis] {
			return fmt.Errorf("FromNested: ragged axis %d: %w", axis, ErrBadShape)
		}
		for i := 0; i < cur.Len(); i++ {
			if err := fill(cur.Index(i), axis+1); err != nil {
				return err
			}
		}

		return nil
	}
	if err := fill(rv, 0); err != nil {
		return nil, err
	}

	return a, nil
}

// numeric extracts a float64 from any integer or float kind.
func numeric(rv reflect.Value) (float64, bool) {
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}
