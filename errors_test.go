// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorAccumulation(t *testing.T) {
	m, err := New(2, Maxnodesize(10))
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	x1, _ := m.Ithvar(1)

	m.SetDeadline(time.Now().Add(-time.Second))
	_, err = m.Apply(x0, x1, OPplus)
	require.ErrorIs(t, err, ErrTimeout)
	require.True(t, m.Errored())

	// the manager stays usable after a timeout; a later failure of another
	// kind must still be matchable even with the first one latched
	m.ClearDeadline()
	_, err = m.Apply(x0, x1, OPplus)
	require.ErrorIs(t, err, ErrMemory)
	assert.ErrorIs(t, err, ErrTimeout, "the latched failure stays on the chain")
	assert.Contains(t, m.Error(), "unable to free memory")
}

func TestSeterrorChain(t *testing.T) {
	m, err := New(1)
	require.NoError(t, err)
	first := m.seterror("first: %w", ErrTimeout)
	require.ErrorIs(t, first, ErrTimeout)
	second := m.seterror("second: %w", ErrMemory)
	assert.ErrorIs(t, second, ErrMemory)
	assert.ErrorIs(t, second, ErrTimeout)
	assert.True(t, errors.Is(m.lasterr, ErrMemory))
}
