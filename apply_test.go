// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twice returns the diagram of 2*(x0 xor x1), a function with three distinct
// internal nodes and two terminals.
func twice(t *testing.T, m *Manager) Node {
	t.Helper()
	x0, err := m.Ithvar(0)
	require.NoError(t, err)
	x1, err := m.Ithvar(1)
	require.NoError(t, err)
	x, err := m.Apply(x0, x1, OPxor)
	require.NoError(t, err)
	f, err := m.Apply(x, x, OPplus)
	require.NoError(t, err)
	return f
}

func TestApplyEval(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	f := twice(t, m)
	var evalTests = []struct {
		assignment []int
		expected   float64
	}{
		{[]int{0, 0}, 0},
		{[]int{0, 1}, 2},
		{[]int{1, 0}, 2},
		{[]int{1, 1}, 0},
	}
	for _, tt := range evalTests {
		actual, err := m.Eval(f, tt.assignment)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, actual, "2*(x0 xor x1) on %v", tt.assignment)
	}
}

func TestApplyCanonical(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	x2, _ := m.Ithvar(2)
	f1, err := m.Apply(x0, x2, OPplus)
	require.NoError(t, err)
	produced := m.produced
	f2, err := m.Apply(x0, x2, OPplus)
	require.NoError(t, err)
	assert.True(t, m.Equal(f1, f2), "two identical applies must return the same node")
	assert.Equal(t, produced, m.produced, "a repeated apply must not create any node")
}

func TestApplyCommutative(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	x1, _ := m.Ithvar(1)
	for _, op := range []Operator{OPplus, OPtimes, OPmin, OPmax, OPor, OPnand, OPnor, OPxor, OPxnor} {
		require.True(t, op.Commutative())
		f1, err := m.Apply(x0, x1, op)
		require.NoError(t, err)
		f2, err := m.Apply(x1, x0, op)
		require.NoError(t, err)
		assert.True(t, m.Equal(f1, f2), "%s must not depend on operand order", op)
	}
}

func TestApplyIdentities(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	f := twice(t, m)
	check := func(actual Node, err error, expected Node, msg string) {
		t.Helper()
		require.NoError(t, err)
		assert.True(t, m.Equal(actual, expected), msg)
	}
	r, err := m.Apply(f, m.Zero(), OPplus)
	check(r, err, f, "f + 0 = f")
	r, err = m.Apply(f, m.One(), OPtimes)
	check(r, err, f, "f * 1 = f")
	r, err = m.Apply(f, m.Zero(), OPtimes)
	check(r, err, m.Zero(), "f * 0 = 0")
	r, err = m.Apply(f, f, OPxor)
	check(r, err, m.Zero(), "f xor f = 0")
	r, err = m.Apply(f, f, OPminus)
	check(r, err, m.Zero(), "f - f = 0")
	r, err = m.Apply(f, m.One(), OPor)
	check(r, err, m.One(), "f or 1 = 1")
	r, err = m.Apply(f, m.PlusInfinity(), OPmin)
	check(r, err, f, "min(f, +inf) = f")
	r, err = m.Apply(f, m.MinusInfinity(), OPmax)
	check(r, err, f, "max(f, -inf) = f")
}

func TestApplySharing(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	x1, _ := m.Ithvar(1)
	f, err := m.Apply(x0, x1, OPplus)
	require.NoError(t, err)
	// x0 + x1 has two internal nodes sharing a branch to x1, plus the node
	// for x1 and the terminals 0, 1 and 2
	assert.Equal(t, 6, m.NodeCount(f))
}

func TestMonadicApply(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	x1, _ := m.Ithvar(1)
	f, err := m.Apply(x0, x1, OPplus)
	require.NoError(t, err)
	g, err := m.MonadicApply(f, OPnegate)
	require.NoError(t, err)
	v, err := m.Eval(g, []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, -2.0, v)
	v, err = m.Eval(g, []int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	// negating twice gives back the original diagram
	h, err := m.MonadicApply(g, OPnegate)
	require.NoError(t, err)
	assert.True(t, m.Equal(f, h))
}

func TestApplyWrongArity(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	x1, _ := m.Ithvar(1)
	_, err = m.Apply(x0, x1, OPnegate)
	assert.Error(t, err, "negate is not a binary operator")
	_, err = m.MonadicApply(x0, OPplus)
	assert.Error(t, err, "plus is not a unary operator")
	_, err = m.Apply(x0, x1, Operator(-1))
	assert.Error(t, err, "out-of-range operators must be rejected, not panic")
	_, err = m.MonadicApply(x0, Operator(-1))
	assert.Error(t, err)
}

func TestApplyRebuildRetry(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	x1, _ := m.Ithvar(1)
	// force a table rebuild in the middle of the recursion; the apply must
	// transparently start over and still return the right diagram
	m.rebuildAfter = 2
	f, err := m.Apply(x0, x1, OPplus)
	require.NoError(t, err)
	assert.Equal(t, 1, m.rebuilds)
	v, err := m.Eval(f, []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	g, err := m.Apply(x0, x1, OPplus)
	require.NoError(t, err)
	assert.True(t, m.Equal(f, g), "canonicity must survive a rebuild")
}

func TestApplyTimeout(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	x1, _ := m.Ithvar(1)
	fired := 0
	m.RegisterTimeoutHandler(func(mm *Manager, arg interface{}) {
		fired++
		assert.Same(t, m, mm)
		assert.Equal(t, "budget", arg)
	}, "budget")
	m.SetDeadline(time.Now().Add(-time.Second))
	_, err = m.Apply(x0, x1, OPplus)
	require.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, 1, fired)
	// the handler only fires once; further operations still time out
	_, err = m.Apply(x0, x1, OPtimes)
	require.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, 1, fired)
	// clearing the deadline makes the manager usable again
	m.ClearDeadline()
	f, err := m.Apply(x0, x1, OPplus)
	require.NoError(t, err)
	v, err := m.Eval(f, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}
