// SPDX-License-Identifier: MIT
package ndarray_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/amwg/ndarray"
)

// TestNew_BadShape verifies that empty and non-positive dims are rejected.
func TestNew_BadShape(t *testing.T) {
	for _, dim := range [][]int{nil, {}, {0}, {2, -1}} {
		_, err := ndarray.New(dim)
		assert.ErrorIs(t, err, ndarray.ErrBadShape, "dim %v", dim)
	}
}

// TestOffsetIndexRoundTrip checks row-major offsets on a 2x3x4 array.
func TestOffsetIndexRoundTrip(t *testing.T) {
	a, err := ndarray.New([]int{2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 24, a.Len())

	off, err := a.Offset(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 23, off)

	for i := 0; i < a.Len(); i++ {
		idx, err := a.Index(i)
		require.NoError(t, err)
		back, err := a.Offset(idx...)
		require.NoError(t, err)
		assert.Equal(t, i, back)
	}

	_, err = a.Offset(2, 0, 0)
	assert.ErrorIs(t, err, ndarray.ErrOutOfRange)
	_, err = a.Offset(0, 0)
	assert.ErrorIs(t, err, ndarray.ErrOutOfRange, "rank mismatch")
}

// TestSetAtClone ensures Clone is independent from the source.
func TestSetAtClone(t *testing.T) {
	a, err := ndarray.Full([]int{2, 2}, 0.5)
	require.NoError(t, err)
	require.NoError(t, a.Set(3, 1, 0))

	c := a.Clone()
	require.True(t, a.Equal(c))
	c.SetFlat(0, -1)
	assert.False(t, a.Equal(c))

	v, err := a.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, 0.5, a.Flat(0))
}

// TestFromNested covers scalars, typed slices, []any input and ragged input.
func TestFromNested(t *testing.T) {
	s, err := ndarray.FromNested(2)
	require.NoError(t, err)
	assert.True(t, s.IsScalar())
	assert.Equal(t, 2.0, s.Value())

	m, err := ndarray.FromNested([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, m.Dim())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data())

	anyNested := []any{[]any{1.0, 2.0}, []any{3, 4}}
	n, err := ndarray.FromNested(anyNested)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, n.Dim())

	_, err = ndarray.FromNested([]any{[]any{1.0}, []any{1.0, 2.0}})
	assert.ErrorIs(t, err, ndarray.ErrBadShape)

	_, err = ndarray.FromNested([]any{"x"})
	assert.ErrorIs(t, err, ndarray.ErrNotNumeric)

	_, err = ndarray.FromNested([]float64{})
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
}

// TestNestedJSON checks that JSON encoding follows the nested shape.
func TestNestedJSON(t *testing.T) {
	a, err := ndarray.Generate([]int{2, 2}, func() func() float64 {
		next := 0.0
		return func() float64 { next++; return next }
	}())
	require.NoError(t, err)

	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2],[3,4]]`, string(b))

	var back ndarray.Array
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, a.Equal(&back))
	assert.Equal(t, "[[1 2] [3 4]]", a.String())
}

// TestCopyFrom rejects shape mismatches.
func TestCopyFrom(t *testing.T) {
	a, _ := ndarray.New([]int{3})
	b, _ := ndarray.Full([]int{3}, 7)
	c, _ := ndarray.New([]int{1, 3})

	require.NoError(t, a.CopyFrom(b))
	assert.Equal(t, []float64{7, 7, 7}, a.Data())
	assert.ErrorIs(t, a.CopyFrom(c), ndarray.ErrBadShape)
}

// TestNestedYAML decodes flow and block sequences and encodes the nested form.
func TestNestedYAML(t *testing.T) {
	var doc struct {
		A *ndarray.Array `yaml:"a"`
		B *ndarray.Array `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: [[1, 2], [3, 4]]\nb: 7\n"), &doc))
	assert.Equal(t, []int{2, 2}, doc.A.Dim())
	assert.Equal(t, []float64{1, 2, 3, 4}, doc.A.Data())
	assert.True(t, doc.B.IsScalar())

	out, err := yaml.Marshal(map[string]*ndarray.Array{"a": doc.A})
	require.NoError(t, err)
	var back map[string][][]float64
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, back["a"])

	err = yaml.Unmarshal([]byte("a: [[1], [2, 3]]\n"), &doc)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
}
