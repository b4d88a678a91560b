// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import "math"

// Operator identifies one of the operations available through Apply and
// MonadicApply. The identity of an operator is part of the cache key of its
// results, so two operators never share a cache entry.
type Operator int

const (
	OPplus       Operator = iota // arithmetic addition
	OPtimes                      // arithmetic multiplication; also the AND of two 0/1 diagrams
	OPthreshold                  // f when f >= g, 0 otherwise
	OPsetnz                      // value of g wherever g is not 0, f elsewhere
	OPdivide                     // arithmetic division
	OPminus                      // arithmetic subtraction
	OPmin                        // minimum
	OPmax                        // maximum
	OPonezeromax                 // 1 when f > g, 0 otherwise
	OPdiff                       // +inf when f = g, the smaller of the two otherwise
	OPagreement                  // f when f = g, the background value otherwise
	OPor                         // disjunction of two 0/1 diagrams
	OPnand                       // negated conjunction of two 0/1 diagrams
	OPnor                        // negated disjunction of two 0/1 diagrams
	OPxor                        // exclusive or of two 0/1 diagrams
	OPxnor                       // equivalence of two 0/1 diagrams
	OPlog                        // unary, natural logarithm of every terminal
	OPnegate                     // unary, arithmetic negation
)

// opdesc describes one operator: a stable name, whether recursive sub-calls
// may present its operands in canonical order (commutative operators only),
// and the terminal-case function that resolves the algebraic fast paths.
// Binary functions receive their operands through pointers and may swap them;
// they return -1 when no terminal case applies.
type opdesc struct {
	name        string
	commutative bool
	bterm       func(*Manager, *int, *int) (int, error)
	uterm       func(*Manager, int) (int, error)
}

var opdescs [OPnegate + 1]opdesc

// The table is filled in init rather than in the variable declaration because
// the terminal-case functions refer back to opdescs through the recursion,
// which the compiler would reject as an initialization cycle.
func init() {
	opdescs = [...]opdesc{
		OPplus:       {name: "plus", commutative: true, bterm: (*Manager).opPlus},
		OPtimes:      {name: "times", commutative: true, bterm: (*Manager).opTimes},
		OPthreshold:  {name: "threshold", bterm: (*Manager).opThreshold},
		OPsetnz:      {name: "setnz", bterm: (*Manager).opSetNZ},
		OPdivide:     {name: "divide", bterm: (*Manager).opDivide},
		OPminus:      {name: "minus", bterm: (*Manager).opMinus},
		OPmin:        {name: "min", commutative: true, bterm: (*Manager).opMinimum},
		OPmax:        {name: "max", commutative: true, bterm: (*Manager).opMaximum},
		OPonezeromax: {name: "onezeromax", bterm: (*Manager).opOneZeroMaximum},
		OPdiff:       {name: "diff", bterm: (*Manager).opDiff},
		OPagreement:  {name: "agreement", bterm: (*Manager).opAgreement},
		OPor:         {name: "or", commutative: true, bterm: (*Manager).opOr},
		OPnand:       {name: "nand", commutative: true, bterm: (*Manager).opNand},
		OPnor:        {name: "nor", commutative: true, bterm: (*Manager).opNor},
		OPxor:        {name: "xor", commutative: true, bterm: (*Manager).opXor},
		OPxnor:       {name: "xnor", commutative: true, bterm: (*Manager).opXnor},
		OPlog:        {name: "log", uterm: (*Manager).opLog},
		OPnegate:     {name: "negate", uterm: (*Manager).opNegate},
	}
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(opdescs) {
		return "unknown"
	}
	return opdescs[op].name
}

// Commutative reports whether recursive sub-calls canonically reorder the
// operands of op. The reordering improves cache hit rates and carries no
// semantic meaning.
func (op Operator) Commutative() bool {
	if op < 0 || int(op) >= len(opdescs) {
		return false
	}
	return opdescs[op].commutative
}

// ************************************************************
//
// Terminal-case functions. Each one detects the algebraic fast paths of its
// operator, computes the combined constant when both operands are terminal,
// and otherwise reports "not a terminal case" with -1. Commutative operators
// additionally swap their operands under the node-handle order so that the
// same unordered pair always presents itself the same way to the cache.

func (m *Manager) opPlus(f, g *int) (int, error) {
	switch {
	case *f == slotZero:
		return *g, nil
	case *g == slotZero:
		return *f, nil
	case m.isconstant(*f) && m.isconstant(*g):
		return m.uniqueConst(m.value(*f) + m.value(*g))
	}
	if *f > *g {
		*f, *g = *g, *f
	}
	return -1, nil
}

func (m *Manager) opTimes(f, g *int) (int, error) {
	switch {
	case *f == slotZero || *g == slotZero:
		return slotZero, nil
	case *f == slotOne:
		return *g, nil
	case *g == slotOne:
		return *f, nil
	case m.isconstant(*f) && m.isconstant(*g):
		return m.uniqueConst(m.value(*f) * m.value(*g))
	}
	if *f > *g {
		*f, *g = *g, *f
	}
	return -1, nil
}

func (m *Manager) opThreshold(f, g *int) (int, error) {
	switch {
	case *f == *g || *f == slotPosInf:
		return *f, nil
	case m.isconstant(*f) && m.isconstant(*g):
		if m.value(*f) >= m.value(*g) {
			return *f, nil
		}
		return slotZero, nil
	}
	return -1, nil
}

func (m *Manager) opSetNZ(f, g *int) (int, error) {
	switch {
	case *f == *g:
		return *f, nil
	case *f == slotZero:
		return *g, nil
	case *g == slotZero:
		return *f, nil
	case m.isconstant(*g):
		return *g, nil
	}
	return -1, nil
}

// opDivide has no f == g fast path since f and g may hold zeroes. Division by
// an exact zero is not validated; the quotient terminal is whatever IEEE
// arithmetic produces.
func (m *Manager) opDivide(f, g *int) (int, error) {
	switch {
	case *f == slotZero:
		return slotZero, nil
	case *g == slotOne:
		return *f, nil
	case m.isconstant(*f) && m.isconstant(*g):
		return m.uniqueConst(m.value(*f) / m.value(*g))
	}
	return -1, nil
}

func (m *Manager) opMinus(f, g *int) (int, error) {
	switch {
	case *f == *g:
		return slotZero, nil
	case *f == slotZero:
		return m.monadicRec(OPnegate, *g)
	case *g == slotZero:
		return *f, nil
	case m.isconstant(*f) && m.isconstant(*g):
		return m.uniqueConst(m.value(*f) - m.value(*g))
	}
	return -1, nil
}

func (m *Manager) opMinimum(f, g *int) (int, error) {
	switch {
	case *f == slotPosInf:
		return *g, nil
	case *g == slotPosInf:
		return *f, nil
	case *f == *g:
		return *f, nil
	case m.isconstant(*f) && m.isconstant(*g):
		if m.value(*f) <= m.value(*g) {
			return *f, nil
		}
		return *g, nil
	}
	if *f > *g {
		*f, *g = *g, *f
	}
	return -1, nil
}

func (m *Manager) opMaximum(f, g *int) (int, error) {
	switch {
	case *f == *g:
		return *f, nil
	case *f == slotNegInf:
		return *g, nil
	case *g == slotNegInf:
		return *f, nil
	case m.isconstant(*f) && m.isconstant(*g):
		if m.value(*f) >= m.value(*g) {
			return *f, nil
		}
		return *g, nil
	}
	if *f > *g {
		*f, *g = *g, *f
	}
	return -1, nil
}

func (m *Manager) opOneZeroMaximum(f, g *int) (int, error) {
	switch {
	case *f == *g:
		return slotZero, nil
	case *g == slotPosInf:
		return slotZero, nil
	case m.isconstant(*f) && m.isconstant(*g):
		if m.value(*f) > m.value(*g) {
			return slotOne, nil
		}
		return slotZero, nil
	}
	return -1, nil
}

func (m *Manager) opDiff(f, g *int) (int, error) {
	switch {
	case *f == *g:
		return slotPosInf, nil
	case *f == slotPosInf:
		return *g, nil
	case *g == slotPosInf:
		return *f, nil
	case m.isconstant(*f) && m.isconstant(*g):
		switch {
		case m.value(*f) == m.value(*g):
			return slotPosInf, nil
		case m.value(*f) < m.value(*g):
			return *f, nil
		default:
			return *g, nil
		}
	}
	return -1, nil
}

func (m *Manager) opAgreement(f, g *int) (int, error) {
	switch {
	case *f == *g:
		return *f, nil
	case *f == m.background:
		return *f, nil
	case *g == m.background:
		return *g, nil
	case m.isconstant(*f) && m.isconstant(*g):
		return m.background, nil
	}
	return -1, nil
}

func (m *Manager) opOr(f, g *int) (int, error) {
	switch {
	case *f == slotOne || *g == slotOne:
		return slotOne, nil
	case m.isconstant(*f):
		return *g, nil
	case m.isconstant(*g):
		return *f, nil
	case *f == *g:
		return *f, nil
	}
	if *f > *g {
		*f, *g = *g, *f
	}
	return -1, nil
}

func (m *Manager) opNand(f, g *int) (int, error) {
	switch {
	case *f == slotZero || *g == slotZero:
		return slotOne, nil
	case m.isconstant(*f) && m.isconstant(*g):
		return slotZero, nil
	}
	if *f > *g {
		*f, *g = *g, *f
	}
	return -1, nil
}

func (m *Manager) opNor(f, g *int) (int, error) {
	switch {
	case *f == slotOne || *g == slotOne:
		return slotZero, nil
	case m.isconstant(*f) && m.isconstant(*g):
		return slotOne, nil
	}
	if *f > *g {
		*f, *g = *g, *f
	}
	return -1, nil
}

func (m *Manager) opXor(f, g *int) (int, error) {
	switch {
	case *f == *g:
		return slotZero, nil
	case *f == slotOne && *g == slotZero:
		return slotOne, nil
	case *g == slotOne && *f == slotZero:
		return slotOne, nil
	case m.isconstant(*f) && m.isconstant(*g):
		return slotZero, nil
	}
	if *f > *g {
		*f, *g = *g, *f
	}
	return -1, nil
}

func (m *Manager) opXnor(f, g *int) (int, error) {
	switch {
	case *f == *g:
		return slotOne, nil
	case *f == slotOne && *g == slotOne:
		return slotOne, nil
	case *f == slotZero && *g == slotZero:
		return slotOne, nil
	case m.isconstant(*f) && m.isconstant(*g):
		return slotZero, nil
	}
	if *f > *g {
		*f, *g = *g, *f
	}
	return -1, nil
}

// opLog takes the natural logarithm of every terminal. Terminals are expected
// to hold positive values; nothing is validated.
func (m *Manager) opLog(f int) (int, error) {
	if m.isconstant(f) {
		return m.uniqueConst(math.Log(m.value(f)))
	}
	return -1, nil
}

func (m *Manager) opNegate(f int) (int, error) {
	if f == slotZero {
		return slotZero, nil
	}
	if m.isconstant(f) {
		return m.uniqueConst(-m.value(f))
	}
	return -1, nil
}
