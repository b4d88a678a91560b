// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import (
	"log/slog"
	"math"
	"runtime"
)

// This file implements the unicity tables of the manager: internal nodes are
// hash-consed on their (variable, low, high) triple, terminals on their value.
// A node is only ever created through makenode or uniqueConst, so for any
// distinct sub-function there is exactly one node in the table.

// huddhash fills the scratch buffer with the unique key of an internal node.
func (m *Manager) huddhash(level int32, low, high int) {
	m.hbuff[0] = byte(level)
	m.hbuff[1] = byte(level >> 8)
	m.hbuff[2] = byte(level >> 16)
	m.hbuff[3] = byte(level >> 24)
	m.hbuff[4] = byte(low)
	m.hbuff[5] = byte(low >> 8)
	m.hbuff[6] = byte(low >> 16)
	m.hbuff[7] = byte(low >> 24)
	if huddsize == 20 {
		// 64 bits machine
		m.hbuff[8] = byte(low >> 32)
		m.hbuff[9] = byte(low >> 40)
		m.hbuff[10] = byte(low >> 48)
		m.hbuff[11] = byte(low >> 56)
		m.hbuff[12] = byte(high)
		m.hbuff[13] = byte(high >> 8)
		m.hbuff[14] = byte(high >> 16)
		m.hbuff[15] = byte(high >> 24)
		m.hbuff[16] = byte(high >> 32)
		m.hbuff[17] = byte(high >> 40)
		m.hbuff[18] = byte(high >> 48)
		m.hbuff[19] = byte(high >> 56)
		return
	}
	// 32 bits machine
	m.hbuff[8] = byte(high)
	m.hbuff[9] = byte(high >> 8)
	m.hbuff[10] = byte(high >> 16)
	m.hbuff[11] = byte(high >> 24)
}

func (m *Manager) nodehash(level int32, low, high int) (int, bool) {
	m.huddhash(level, low, high)
	hn, ok := m.unique[m.hbuff]
	return hn, ok
}

// When a slot is unused in m.nodes, its low field is _FREEMARK and its high
// field is the next free position. The value of m.freepos gives the index of
// the lowest unused slot, except when freenum is 0, in which case it is also 0.

func (m *Manager) setnode(level int32, low int, high int) int {
	m.huddhash(level, low, high)
	m.freenum--
	m.unique[m.hbuff] = m.freepos
	res := m.freepos
	m.freepos = m.nodes[m.freepos].high
	m.nodes[res] = ddnode{level: level, low: low, high: high}
	m.produced++
	return res
}

func (m *Manager) setconst(v float64) int {
	m.freenum--
	m.consts[v] = m.freepos
	res := m.freepos
	m.freepos = m.nodes[m.freepos].high
	m.nodes[res] = ddnode{level: _CONSTLEVEL, low: _CONSTMARK, high: _CONSTMARK, value: v}
	m.produced++
	return res
}

func (m *Manager) delnode(n int) {
	if m.nodes[n].low == _CONSTMARK {
		delete(m.consts, m.nodes[n].value)
		return
	}
	m.huddhash(m.nodes[n].level, m.nodes[n].low, m.nodes[n].high)
	delete(m.unique, m.hbuff)
}

// ************************************************************

// makenode returns the unique internal node (level, low, high), creating it
// if needed. When both children are equal the node is reduced away and the
// child itself is returned. When the table must be reclaimed or resized to
// make room, makenode signals errRebuild so that the in-flight computation is
// redone from the top against the new table; errMemory is definitive.
func (m *Manager) makenode(level int32, low, high int) (int, error) {
	m.uniqueAccess++
	// check whether children are equal, in which case we can skip the node
	if low == high {
		return low, nil
	}
	// otherwise try to find an existing node using the unicity table
	if res, ok := m.nodehash(level, low, high); ok {
		m.uniqueHit++
		return res, nil
	}
	m.uniqueMiss++
	if err := m.reserve(); err != nil {
		return -1, err
	}
	return m.setnode(level, low, high), nil
}

// uniqueConst returns the unique terminal holding value v, with the same
// allocation discipline as makenode.
func (m *Manager) uniqueConst(v float64) (int, error) {
	m.uniqueAccess++
	if res, ok := m.consts[v]; ok {
		m.uniqueHit++
		return res, nil
	}
	m.uniqueMiss++
	if err := m.reserve(); err != nil {
		return -1, err
	}
	return m.setconst(v), nil
}

// reserve makes sure there is at least one free slot in the node table. If
// garbage must be collected, or the table resized, the caller is told to
// restart through errRebuild; reclamation is never silently absorbed.
func (m *Manager) reserve() error {
	if m.rebuildAfter > 0 {
		m.rebuildAfter--
		if m.rebuildAfter == 0 {
			m.rebuild()
			return errRebuild
		}
	}
	if m.freepos != 0 {
		return nil
	}
	// We garbage collect unused nodes to try and find spare space.
	m.gbc()
	// We also test if we are under the threshold for resizing.
	if (m.freenum*100)/len(m.nodes) <= m.minfreenodes {
		if err := m.noderesize(); err != nil {
			return err
		}
	}
	if m.freepos == 0 {
		return ErrMemory
	}
	m.rebuilt = true
	return errRebuild
}

// noderesize grows the node table, typically doubling it, within the limits
// set by the Maxnodesize and Maxnodeincrease options.
func (m *Manager) noderesize() error {
	oldsize := len(m.nodes)
	if (oldsize >= m.maxnodesize) && (m.maxnodesize > 0) {
		return ErrMemory
	}
	nodesize := oldsize
	if oldsize > (math.MaxInt32 >> 1) {
		nodesize = math.MaxInt32 - 1
	} else {
		nodesize = nodesize << 1
	}
	if m.maxnodeincrease > 0 && nodesize > (oldsize+m.maxnodeincrease) {
		nodesize = oldsize + m.maxnodeincrease
	}
	if (nodesize > m.maxnodesize) && (m.maxnodesize > 0) {
		nodesize = m.maxnodesize
	}
	if nodesize <= oldsize {
		return ErrMemory
	}
	tmp := m.nodes
	m.nodes = make([]ddnode, nodesize)
	copy(m.nodes, tmp)
	for n := oldsize; n < nodesize; n++ {
		m.nodes[n] = ddnode{low: _FREEMARK, high: n + 1}
	}
	m.nodes[nodesize-1].high = m.freepos
	m.freepos = oldsize
	m.freenum += nodesize - oldsize
	m.applycache.cacheresize(nodesize)
	m.log.Debug("node table resized",
		slog.Int("from", oldsize),
		slog.Int("to", nodesize))
	return nil
}

// ************************************************************

// retnode creates a Node for external use and sets a finalizer on it so that
// we can reclaim the resource when the Go runtime dropped every handle to it.
func (m *Manager) retnode(n int) Node {
	if n < 0 || n >= len(m.nodes) {
		return nil
	}
	switch n {
	case slotZero:
		return m.zero
	case slotOne:
		return m.one
	case slotPosInf:
		return m.posinf
	case slotNegInf:
		return m.neginf
	}
	x := n
	if m.nodes[n].refcou < _MAXREFCOUNT {
		m.nodes[n].refcou++
		runtime.SetFinalizer(&x, m.nodefinalizer)
		m.setfinalizers++
	}
	return &x
}
