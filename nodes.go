// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

// Node is a reference to an element of a decision diagram. It represents the
// atomic unit of interactions and computations within a manager.
type Node *int

// ddnode is one slot of the node table. A slot is in one of three states,
// distinguished by its low field: an internal node (low >= 0), a terminal
// (low == _CONSTMARK, value holds the constant), or a free slot
// (low == _FREEMARK, high chains the freelist).
type ddnode struct {
	level  int32   // index of the decision variable; _CONSTLEVEL for terminals
	low    int     // else branch, taken when the variable is 0
	high   int     // then branch, taken when the variable is 1
	value  float64 // constant held by a terminal
	refcou int32   // number of external and in-flight references
}

// inode returns a Node for pinned nodes, such as variables and the four
// distinguished constants, that do not need to increase their reference count.
func inode(n int) Node {
	x := n
	return &x
}

// ************************************************************

// Nodes are marked during garbage collection and traversals by borrowing one
// bit of the reference counter, as the count itself never exceeds
// _MAXREFCOUNT.

func (m *Manager) ismarked(n int) bool {
	return (m.nodes[n].refcou & 0x200000) != 0
}

func (m *Manager) marknode(n int) {
	m.nodes[n].refcou |= 0x200000
}

func (m *Manager) unmarknode(n int) {
	m.nodes[n].refcou &= 0x1FFFFF
}

// ************************************************************

func (m *Manager) isconstant(n int) bool {
	return m.nodes[n].low == _CONSTMARK
}

func (m *Manager) value(n int) float64 {
	return m.nodes[n].value
}

// position returns the place of a node in the current variable order. The
// level field of a node records the identity of its variable; its position
// must be looked up since it changes across reorders.
func (m *Manager) position(n int) int32 {
	if m.nodes[n].low == _CONSTMARK {
		return _CONSTLEVEL
	}
	return m.var2level[m.nodes[n].level]
}
