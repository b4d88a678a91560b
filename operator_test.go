// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryOperatorsOnConstants(t *testing.T) {
	inf := math.Inf(1)
	var opTests = []struct {
		op       Operator
		a, b     float64
		expected float64
	}{
		{OPplus, 2, 3, 5},
		{OPplus, 2, 0, 2},
		{OPtimes, 2, 3, 6},
		{OPtimes, 2, 1, 2},
		{OPtimes, 2, 0, 0},
		{OPthreshold, 5, 3, 5},
		{OPthreshold, 2, 3, 0},
		{OPthreshold, 3, 3, 3},
		{OPsetnz, 2, 3, 3},
		{OPsetnz, 2, 0, 2},
		{OPdivide, 6, 3, 2},
		{OPdivide, 5, 1, 5},
		{OPminus, 5, 3, 2},
		{OPminus, 0, 3, -3},
		{OPmin, 2, 3, 2},
		{OPmin, 2, inf, 2},
		{OPmax, 2, 3, 3},
		{OPmax, 2, -2, 2},
		{OPonezeromax, 3, 2, 1},
		{OPonezeromax, 2, 3, 0},
		{OPonezeromax, 2, 2, 0},
		{OPdiff, 2, 2, inf},
		{OPdiff, 2, 3, 2},
		{OPdiff, 3, 2, 2},
		{OPagreement, 2, 2, 2},
		{OPagreement, 2, 3, 0},
		{OPor, 0, 0, 0},
		{OPor, 0, 1, 1},
		{OPor, 1, 1, 1},
		{OPnand, 1, 1, 0},
		{OPnand, 0, 1, 1},
		{OPnor, 0, 0, 1},
		{OPnor, 1, 0, 0},
		{OPxor, 1, 0, 1},
		{OPxor, 1, 1, 0},
		{OPxor, 0, 0, 0},
		{OPxnor, 1, 1, 1},
		{OPxnor, 0, 0, 1},
		{OPxnor, 1, 0, 0},
	}
	m, err := New(1)
	require.NoError(t, err)
	for _, tt := range opTests {
		a, err := m.Constant(tt.a)
		require.NoError(t, err)
		b, err := m.Constant(tt.b)
		require.NoError(t, err)
		r, err := m.Apply(a, b, tt.op)
		require.NoError(t, err)
		actual, err := m.Value(r)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, actual, "%s(%g, %g)", tt.op, tt.a, tt.b)
	}
}

func TestUnaryOperatorsOnConstants(t *testing.T) {
	m, err := New(1)
	require.NoError(t, err)
	var opTests = []struct {
		op       Operator
		a        float64
		expected float64
	}{
		{OPnegate, 2, -2},
		{OPnegate, 0, 0},
		{OPnegate, -3.5, 3.5},
		{OPlog, 1, 0},
		{OPlog, math.E, 1},
	}
	for _, tt := range opTests {
		a, err := m.Constant(tt.a)
		require.NoError(t, err)
		r, err := m.MonadicApply(a, tt.op)
		require.NoError(t, err)
		actual, err := m.Value(r)
		require.NoError(t, err)
		assert.InDelta(t, tt.expected, actual, 1e-12, "%s(%g)", tt.op, tt.a)
	}
}

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "plus", OPplus.String())
	assert.Equal(t, "onezeromax", OPonezeromax.String())
	assert.Equal(t, "negate", OPnegate.String())
	assert.Equal(t, "unknown", Operator(255).String())
	assert.Equal(t, "unknown", Operator(-1).String())
	assert.True(t, OPxor.Commutative())
	assert.False(t, OPminus.Commutative())
	assert.False(t, Operator(255).Commutative())
	assert.False(t, Operator(-1).Commutative())
}

func TestThresholdOnDiagrams(t *testing.T) {
	m, err := New(1)
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	c3, err := m.Constant(3)
	require.NoError(t, err)
	// x0 thresholded at 3 is 0 everywhere since x0 never reaches 3
	r, err := m.Apply(x0, c3, OPthreshold)
	require.NoError(t, err)
	for _, a := range [][]int{{0}, {1}} {
		v, err := m.Eval(r, a)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v)
	}
	// thresholding a diagram with itself is the identity
	r, err = m.Apply(x0, x0, OPthreshold)
	require.NoError(t, err)
	assert.True(t, m.Equal(r, x0))
}
