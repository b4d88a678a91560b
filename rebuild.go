// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import "time"

// The reordering heuristic itself (which variables get moved, and when) lives
// outside of this package: the engine only needs to know that the node table
// was rebuilt while a recursion was in flight, so that node identities and
// cached results can no longer be trusted and the whole top-level call must
// be redone. rebuild performs such a structural rebuild: it reclaims dead
// nodes, reconstructs both unicity tables from the surviving slots under the
// current order, voids the operation cache and raises the rebuilt flag.
func (m *Manager) rebuild() {
	m.gbc()
	m.unique = make(map[[huddsize]byte]int, len(m.nodes))
	m.consts = make(map[float64]int, len(m.consts)+1)
	for n := range m.nodes {
		switch m.nodes[n].low {
		case _FREEMARK:
		case _CONSTMARK:
			m.consts[m.nodes[n].value] = n
		default:
			m.huddhash(m.nodes[n].level, m.nodes[n].low, m.nodes[n].high)
			m.unique[m.hbuff] = n
		}
	}
	m.rebuilt = true
	m.rebuilds++
	m.log.Debug("node table rebuilt")
}

// ************************************************************

// SetDeadline arms the cooperative cancellation check: a recursion that is
// still running past t aborts with ErrTimeout. The check is polled once per
// recursive frame, not preemptive.
func (m *Manager) SetDeadline(t time.Time) {
	m.deadline = t
}

// ClearDeadline removes any deadline set on the manager.
func (m *Manager) ClearDeadline() {
	m.deadline = time.Time{}
}

// RegisterTimeoutHandler registers a callback invoked, with the manager and
// arg, when a top-level operation fails with ErrTimeout. The handler fires
// once and is then unregistered; register it again to watch the next
// deadline. A nil handler unregisters.
func (m *Manager) RegisterTimeoutHandler(handler func(*Manager, interface{}), arg interface{}) {
	m.timeoutHandler = handler
	m.tohArg = arg
}

// giveup is the cooperative cancellation poll, called once per recursive
// frame of an apply.
func (m *Manager) giveup() error {
	if m.deadline.IsZero() {
		return nil
	}
	if time.Now().After(m.deadline) {
		return ErrTimeout
	}
	return nil
}
