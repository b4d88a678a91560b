// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	x1, _ := m.Ithvar(1)
	f, err := m.Apply(x0, x1, OPplus)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, m.Dot(&buf, f))
	g := goldie.New(t)
	g.Assert(t, "dot_plus", buf.Bytes())
}

func TestDotLabelsVariableIdentity(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	// move variable 0 to the bottom of the order; the label of its node must
	// still name the variable, not its position
	m.var2level = []int32{1, 0}
	m.level2var = []int32{1, 0}
	var buf bytes.Buffer
	require.NoError(t, m.Dot(&buf, x0))
	assert.Contains(t, buf.String(), ">x0<")
	assert.NotContains(t, buf.String(), ">x1<")
}

func TestPrint(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	x1, _ := m.Ithvar(1)
	f, err := m.Apply(x0, x1, OPplus)
	require.NoError(t, err)
	c2, err := m.Constant(2)
	require.NoError(t, err)
	assert.Equal(t, "2", m.Print(c2))
	assert.Equal(t, "(10[0] ? 9 : 6)", m.Print(f))
	assert.Equal(t, "Error", m.Print(nil))

	var buf bytes.Buffer
	require.NoError(t, m.print(&buf, f))
	assert.True(t, strings.HasPrefix(buf.String(), "node: 10\n"))
}

func TestStats(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	x1, _ := m.Ithvar(1)
	_, err = m.Apply(x0, x1, OPplus)
	require.NoError(t, err)
	stats := m.Stats()
	for _, want := range []string{"Varnum:", "Allocated:", "Produced:", "Terminals:", "Unique Access:", "Operator Miss:"} {
		assert.Contains(t, stats, want)
	}
}

func TestAllnodes(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	x0, _ := m.Ithvar(0)
	x1, _ := m.Ithvar(1)
	f, err := m.Apply(x0, x1, OPplus)
	require.NoError(t, err)
	count := 0
	terminals := 0
	err = m.Allnodes(func(id int, level int32, low, high int) error {
		count++
		if low == _CONSTMARK {
			terminals++
		}
		return nil
	})
	require.NoError(t, err)
	// four distinguished constants, four variable nodes, the terminal 2 and
	// the two internal nodes of x0 + x1
	assert.Equal(t, 11, count)
	assert.Equal(t, 5, terminals)
	assert.Equal(t, 6, m.NodeCount(f))
}
