// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import "log/slog"

// gcstat stores status information about garbage collections. We use a stack
// (slice) of objects to record the sequence of GC during a computation.
type gcstat struct {
	setfinalizers int       // total number of external references to nodes
	rebuilds      int       // number of table rebuilds (simulated reorders included)
	history       []gcpoint // snapshot of GC stats at each occurrence
}

type gcpoint struct {
	nodes     int // total number of allocated slots in the node table
	freenodes int // number of free slots in the node table
}

// *************************************************************************

// AddRef increases the reference count on node n and returns n so that calls
// can be easily chained together. Reference counting is done on externally
// referenced nodes only; a held node, and everything reachable from it,
// survives garbage collection.
func (m *Manager) AddRef(n Node) Node {
	if n == nil || *n < 0 || *n >= len(m.nodes) {
		return n
	}
	if m.nodes[*n].low == _FREEMARK {
		return n
	}
	if m.nodes[*n].refcou < _MAXREFCOUNT {
		m.nodes[*n].refcou++
	}
	return n
}

// DelRef decreases the reference count on a node and returns n so that calls
// can be easily chained together. Every AddRef must be matched by exactly one
// DelRef; once unreferenced, a node and its now unreachable descendants are
// reclaimed as a whole by the next collection.
func (m *Manager) DelRef(n Node) Node {
	if n == nil || *n < 0 || *n >= len(m.nodes) {
		return n
	}
	if m.nodes[*n].low == _FREEMARK {
		return n
	}
	if m.nodes[*n].refcou <= 0 {
		return n
	}
	if m.nodes[*n].refcou < _MAXREFCOUNT {
		m.nodes[*n].refcou--
	}
	return n
}

// *************************************************************************

// gbc reclaims the slots of every node that is neither referenced, reachable
// from a referenced node, nor protected by the refstack. It is called from
// reserve, when there are no free slots left, and from rebuild. Surviving
// nodes do not move; the operation cache is voided since it may name swept
// nodes.
func (m *Manager) gbc() {
	m.history = append(m.history, gcpoint{
		nodes:     len(m.nodes),
		freenodes: m.freenum,
	})
	// we mark the nodes in the refstack to avoid collecting results that are
	// held by an in-flight recursion
	for _, r := range m.refstack {
		m.markrec(r)
	}
	// we also protect nodes with a positive refcount, and therefore also the
	// ones with a MAXREFCOUNT, such as constants and variables
	for k := range m.nodes {
		if m.nodes[k].refcou > 0 {
			m.markrec(k)
		}
	}
	m.freepos = 0
	m.freenum = 0
	// one pass through the table voids the unmarked nodes. After it, freepos
	// points to the first free slot, or 0 if we found none.
	for n := len(m.nodes) - 1; n > 3; n-- {
		if m.ismarked(n) && (m.nodes[n].low != _FREEMARK) {
			m.unmarknode(n)
		} else {
			m.delnode(n)
			m.nodes[n].low = _FREEMARK
			m.nodes[n].high = m.freepos
			m.freepos = n
			m.freenum++
		}
	}
	for n := 0; n < 4; n++ {
		m.unmarknode(n)
	}
	m.applycache.cachereset()
	m.log.Debug("garbage collection",
		slog.Int("free", m.freenum),
		slog.Int("allocated", len(m.nodes)))
}

// *************************************************************************

// markrec marks every node reachable from n.
func (m *Manager) markrec(n int) {
	if m.ismarked(n) || (m.nodes[n].low == _FREEMARK) {
		return
	}
	m.marknode(n)
	if m.nodes[n].low == _CONSTMARK {
		return
	}
	m.markrec(m.nodes[n].low)
	m.markrec(m.nodes[n].high)
}

// markcount returns the number of nodes reachable from n and marks them.
func (m *Manager) markcount(n int) int {
	if m.ismarked(n) || (m.nodes[n].low == _FREEMARK) {
		return 0
	}
	m.marknode(n)
	if m.nodes[n].low == _CONSTMARK {
		return 1
	}
	return 1 + m.markcount(m.nodes[n].low) + m.markcount(m.nodes[n].high)
}

func (m *Manager) unmarkall() {
	for k, v := range m.nodes {
		if !m.ismarked(k) || (v.low == _FREEMARK) {
			continue
		}
		m.unmarknode(k)
	}
}

// *************************************************************************
// private functions to manipulate the refstack; used to prevent nodes that
// are currently being built (e.g. transient results during an apply) from
// being reclaimed during GC. A pushref is the hold taken on a recursive
// result before it is combined; the matching popref releases it once
// ownership has transferred to the combined node.

func (m *Manager) initref() {
	m.refstack = m.refstack[:0]
}

func (m *Manager) pushref(n int) int {
	m.refstack = append(m.refstack, n)
	return n
}

func (m *Manager) popref(a int) {
	m.refstack = m.refstack[:len(m.refstack)-a]
}
