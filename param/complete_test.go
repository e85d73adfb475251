// SPDX-License-Identifier: MIT
package param_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/amwg/ndarray"
	"github.com/katalvlaran/amwg/param"
)

// CompleteSuite exercises Complete and FixedInit.
type CompleteSuite struct {
	suite.Suite
}

// params1 is the two-parameter normal model definition.
func params1() map[string]param.Descriptor {
	return map[string]param.Descriptor{
		"mu":    {Type: param.Real},
		"sigma": {Type: param.Real, Lower: param.Bound(0), Init: param.InitValue(1)},
	}
}

// TestParams1 checks the completed form of the normal model definition.
func (s *CompleteSuite) TestParams1() {
	specs, err := param.Complete(params1(), param.FixedInit)
	require.NoError(s.T(), err)

	mu := specs["mu"]
	s.Equal(param.Real, mu.Type)
	s.Equal([]int{1}, mu.Dim)
	s.True(math.IsInf(mu.Lower, -1))
	s.True(math.IsInf(mu.Upper, 1))
	s.Equal([]float64{0.5}, mu.Init.Data())

	sigma := specs["sigma"]
	s.Equal([]int{1}, sigma.Dim)
	s.Equal(0.0, sigma.Lower)
	s.True(math.IsInf(sigma.Upper, 1))
	s.Equal([]float64{1}, sigma.Init.Data())
}

// TestParams2 covers an empty descriptor, a binary and a 3x3 int parameter.
func (s *CompleteSuite) TestParams2() {
	descs := map[string]param.Descriptor{
		"theta": {},
		"state": {Type: param.Binary, Init: param.InitValue(1)},
		"mat":   {Type: param.Int, Dim: []int{3, 3}},
	}
	specs, err := param.Complete(descs, nil)
	require.NoError(s.T(), err)

	s.Equal(param.Real, specs["theta"].Type)
	s.Equal([]float64{0.5}, specs["theta"].Init.Data())

	s.Equal(0.0, specs["state"].Lower)
	s.Equal(1.0, specs["state"].Upper)

	mat := specs["mat"]
	s.Equal([]int{3, 3}, mat.Dim)
	s.Equal([]int{3, 3}, mat.Init.Dim())
	for _, v := range mat.Init.Data() {
		s.Equal(1.0, v)
	}
}

// TestIdempotence verifies Complete(Complete(d)) == Complete(d).
func (s *CompleteSuite) TestIdempotence() {
	descs := params1()
	descs["mat"] = param.Descriptor{Type: param.Int, Dim: []int{2, 3}, Lower: param.Bound(-4), Upper: param.Bound(9)}
	descs["flags"] = param.Descriptor{Type: param.Binary, Dim: []int{4}}

	once, err := param.Complete(descs, param.FixedInit)
	require.NoError(s.T(), err)
	twice, err := param.Complete(once.Descriptors(), param.FixedInit)
	require.NoError(s.T(), err)
	s.True(once.Equal(twice))
}

// TestShapeInvariant asserts that init always has shape dim.
func (s *CompleteSuite) TestShapeInvariant() {
	counter := 0.0
	descs := map[string]param.Descriptor{
		"a": {Dim: []int{4}},
		"b": {Dim: []int{2, 3, 2}, Init: param.InitValue(7)},
		"c": {Dim: []int{5, 1}, Init: param.InitGenerator(func() float64 { counter++; return counter })},
		"d": {Type: param.Binary, Dim: []int{3}},
	}
	specs, err := param.Complete(descs, nil)
	require.NoError(s.T(), err)
	for name, spec := range specs {
		s.Equal(spec.Dim, spec.Init.Dim(), name)
	}
	s.Equal([]float64{1, 2, 3, 4, 5}, specs["c"].Init.Data(), "generator is called once per slot")
}

// TestInputNotMutated ensures Complete works on a copy.
func (s *CompleteSuite) TestInputNotMutated() {
	initArr, err := ndarray.Full([]int{2}, 3)
	require.NoError(s.T(), err)
	dim := []int{2}
	descs := map[string]param.Descriptor{"x": {Dim: dim, Init: param.InitArray(initArr)}, "y": {}}

	specs, err := param.Complete(descs, nil)
	require.NoError(s.T(), err)
	specs["x"].Init.SetFlat(0, 99)
	specs["x"].Dim[0] = 42

	s.Equal([]int{2}, dim)
	s.Equal(param.Type(""), descs["y"].Type)
	s.Nil(descs["y"].Dim)
	s.Equal(3.0, initArr.Flat(0))
}

// TestErrors checks the validation sentinels.
func (s *CompleteSuite) TestErrors() {
	cases := map[string]struct {
		desc param.Descriptor
		want error
	}{
		"unknown type":   {param.Descriptor{Type: "complex"}, param.ErrInvalidType},
		"zero extent":    {param.Descriptor{Dim: []int{2, 0}}, param.ErrBadDim},
		"inverted":       {param.Descriptor{Lower: param.Bound(2), Upper: param.Bound(1)}, param.ErrBadBounds},
		"inverted int":   {param.Descriptor{Type: param.Int, Lower: param.Bound(2), Upper: param.Bound(1)}, param.ErrBadBounds},
		"init wrong dim": {param.Descriptor{Dim: []int{3}, Init: param.InitArray(ndarray.Scalar(1))}, param.ErrInitShape},
	}
	for name, tc := range cases {
		_, err := param.Complete(map[string]param.Descriptor{"p": tc.desc}, nil)
		s.ErrorIs(err, tc.want, name)
		s.ErrorIs(err, param.ErrInvalidParameter, name)
	}

	// Explicit init bypasses the bounds check.
	_, err := param.Complete(map[string]param.Descriptor{
		"p": {Lower: param.Bound(2), Upper: param.Bound(1), Init: param.InitValue(1.5)},
	}, nil)
	s.NoError(err)
}

// TestBinaryForcesBounds checks that user bounds on binary params are overridden.
func (s *CompleteSuite) TestBinaryForcesBounds() {
	specs, err := param.Complete(map[string]param.Descriptor{
		"z": {Type: param.Binary, Lower: param.Bound(-5), Upper: param.Bound(5)},
	}, nil)
	require.NoError(s.T(), err)
	s.Equal(0.0, specs["z"].Lower)
	s.Equal(1.0, specs["z"].Upper)
	s.Equal([]float64{1}, specs["z"].Init.Data())
}

func TestCompleteSuite(t *testing.T) {
	suite.Run(t, new(CompleteSuite))
}

// TestFixedInit walks every branch of the default init policy.
func TestFixedInit(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		typ          param.Type
		lower, upper float64
		want         float64
	}{
		{param.Real, -inf, inf, 0.5},
		{param.Real, -inf, 3, 2.5},
		{param.Real, 3, inf, 3.5},
		{param.Real, 2, 4, 3},
		{param.Int, -inf, inf, 1},
		{param.Int, -inf, 3, 2},
		{param.Int, 3, inf, 4},
		{param.Int, 2, 5, 4},
		{param.Int, -5, -2, -3},
		{param.Binary, 0, 1, 1},
	}
	for _, tc := range cases {
		got, err := param.FixedInit(tc.typ, tc.lower, tc.upper)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s [%g, %g]", tc.typ, tc.lower, tc.upper)
	}

	_, err := param.FixedInit("complex", 0, 1)
	assert.ErrorIs(t, err, param.ErrInvalidType)
}

// TestNamesSorted verifies the deterministic iteration order.
func TestNamesSorted(t *testing.T) {
	specs, err := param.Complete(map[string]param.Descriptor{"b": {}, "c": {}, "a": {}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, specs.Names())
}
