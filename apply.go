// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import "errors"

// Apply combines two diagrams pointwise with a binary operator and returns the
// canonical diagram of the result. When the node table runs out of slots mid
// way, the call garbage collects or grows the table and transparently starts
// over; partial results never leak out. Apply fails with ErrMemory when the
// table cannot grow further and with ErrTimeout when a deadline set with
// SetDeadline has passed.
func (m *Manager) Apply(left, right Node, op Operator) (Node, error) {
	if err := m.checkptr(left); err != nil {
		return nil, m.seterror("wrong operand in call to Apply %s: %w", op, err)
	}
	if err := m.checkptr(right); err != nil {
		return nil, m.seterror("wrong operand in call to Apply %s: %w", op, err)
	}
	if op < 0 || int(op) >= len(opdescs) || opdescs[op].bterm == nil {
		return nil, m.seterror("operator %s is not binary in call to Apply", op)
	}
	var res int
	var err error
	for {
		m.rebuilt = false
		m.initref()
		m.pushref(*left)
		m.pushref(*right)
		res, err = m.applyRec(op, *left, *right)
		m.popref(2)
		if m.rebuilt && err == nil {
			// the table was rebuilt under our feet; cached intermediate
			// results are gone so we simply recompute from the top
			continue
		}
		if errors.Is(err, errRebuild) {
			continue
		}
		break
	}
	if err != nil {
		if errors.Is(err, ErrTimeout) && m.timeoutHandler != nil {
			handler := m.timeoutHandler
			m.timeoutHandler = nil
			handler(m, m.tohArg)
		}
		return nil, m.seterror("error during Apply %s: %w", op, err)
	}
	return m.retnode(res), nil
}

// applyRec is the recursive step of Apply. Operands may be swapped in place by
// the terminal-case function of a commutative operator, so the cache always
// sees the same unordered pair under the same key.
func (m *Manager) applyRec(op Operator, left, right int) (int, error) {
	if res, err := opdescs[op].bterm(m, &left, &right); res >= 0 || err != nil {
		return res, err
	}
	if res, ok := m.matchbinary(op, left, right); ok {
		return res, nil
	}
	if err := m.giveup(); err != nil {
		return -1, err
	}
	ltop, rtop := m.position(left), m.position(right)
	top := ltop
	if rtop < top {
		top = rtop
	}
	var lvar int32
	llow, lhigh := left, left
	if ltop == top {
		lvar = m.nodes[left].level
		llow, lhigh = m.nodes[left].low, m.nodes[left].high
	}
	rlow, rhigh := right, right
	if rtop == top {
		lvar = m.nodes[right].level
		rlow, rhigh = m.nodes[right].low, m.nodes[right].high
	}
	low, err := m.applyRec(op, llow, rlow)
	if err != nil {
		return -1, err
	}
	m.pushref(low)
	high, err := m.applyRec(op, lhigh, rhigh)
	if err != nil {
		m.popref(1)
		return -1, err
	}
	m.pushref(high)
	res, err := m.makenode(lvar, low, high)
	m.popref(2)
	if err != nil {
		return -1, err
	}
	m.setbinary(op, left, right, res)
	return res, nil
}

// MonadicApply transforms every terminal of a diagram with a unary operator
// and returns the canonical diagram of the result. It obeys the same retry,
// memory and deadline contract as Apply.
func (m *Manager) MonadicApply(f Node, op Operator) (Node, error) {
	if err := m.checkptr(f); err != nil {
		return nil, m.seterror("wrong operand in call to MonadicApply %s: %w", op, err)
	}
	if op < 0 || int(op) >= len(opdescs) || opdescs[op].uterm == nil {
		return nil, m.seterror("operator %s is not unary in call to MonadicApply", op)
	}
	var res int
	var err error
	for {
		m.rebuilt = false
		m.initref()
		m.pushref(*f)
		res, err = m.monadicRec(op, *f)
		m.popref(1)
		if m.rebuilt && err == nil {
			continue
		}
		if errors.Is(err, errRebuild) {
			continue
		}
		break
	}
	if err != nil {
		if errors.Is(err, ErrTimeout) && m.timeoutHandler != nil {
			handler := m.timeoutHandler
			m.timeoutHandler = nil
			handler(m, m.tohArg)
		}
		return nil, m.seterror("error during MonadicApply %s: %w", op, err)
	}
	return m.retnode(res), nil
}

func (m *Manager) monadicRec(op Operator, f int) (int, error) {
	if res, err := opdescs[op].uterm(m, f); res >= 0 || err != nil {
		return res, err
	}
	if res, ok := m.matchunary(op, f); ok {
		return res, nil
	}
	if err := m.giveup(); err != nil {
		return -1, err
	}
	low, err := m.monadicRec(op, m.nodes[f].low)
	if err != nil {
		return -1, err
	}
	m.pushref(low)
	high, err := m.monadicRec(op, m.nodes[f].high)
	if err != nil {
		m.popref(1)
		return -1, err
	}
	m.pushref(high)
	res, err := m.makenode(m.nodes[f].level, low, high)
	m.popref(2)
	if err != nil {
		return -1, err
	}
	m.setunary(op, f, res)
	return res, nil
}
