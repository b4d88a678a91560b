// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import "fmt"

// cache is the memoization table for apply results. It is lossy: an entry can
// be evicted by any later insertion that hashes to the same slot. A miss is
// always safe; a hit is only trusted because entries name their operator and
// both operands, and because the whole table is voided whenever the node
// table is collected or rebuilt.
type cache struct {
	cacheratio int // when positive, resize the cache to table-size/ratio
	table      []cacheData
}

// cacheData is a unit of information stored in the cache: a result for
// operator c applied to operands a and b (b is -1 for unary operators).
type cacheData struct {
	res int
	a   int
	b   int
	c   int
}

// cacheStat stores status information about the unique table and cache usage.
type cacheStat struct {
	uniqueAccess int // accesses to the unique node tables
	uniqueHit    int // entries actually found in the unique node tables
	uniqueMiss   int // entries not found in the unique node tables
	opHit        int // entries found in the operation cache
	opMiss       int // entries not found in the operation cache
}

// ************************************************************

func (bc *cache) cacheinit(size int) {
	size = primeGte(size)
	bc.table = make([]cacheData, size)
	bc.cachereset()
}

func (bc *cache) cacheresize(nodesize int) {
	if bc.cacheratio > 0 {
		bc.cacheinit(nodesize / bc.cacheratio)
		return
	}
	bc.cachereset()
}

func (bc *cache) cachereset() {
	for k := range bc.table {
		bc.table[k].a = -1
	}
}

func (m *Manager) cacheinit(cachesize int, cacheratio int) {
	if cachesize <= 0 {
		cachesize = len(m.nodes)/5 + 1
	}
	m.applycache.cacheratio = cacheratio
	m.applycache.cacheinit(cachesize)
}

// ************************************************************

// matchbinary checks the cache for the result of a binary apply. Operands
// must already be in canonical order for commutative operators.
func (m *Manager) matchbinary(op Operator, left, right int) (int, bool) {
	entry := m.applycache.table[_TRIPLE(left, right, int(op), len(m.applycache.table))]
	if entry.a == left && entry.b == right && entry.c == int(op) {
		m.opHit++
		return entry.res, true
	}
	m.opMiss++
	return -1, false
}

func (m *Manager) setbinary(op Operator, left, right, res int) {
	m.applycache.table[_TRIPLE(left, right, int(op), len(m.applycache.table))] = cacheData{
		a:   left,
		b:   right,
		c:   int(op),
		res: res,
	}
}

// matchunary checks the cache for the result of a unary apply.
func (m *Manager) matchunary(op Operator, f int) (int, bool) {
	entry := m.applycache.table[_PAIR(f, int(op), len(m.applycache.table))]
	if entry.a == f && entry.b == -1 && entry.c == int(op) {
		m.opHit++
		return entry.res, true
	}
	m.opMiss++
	return -1, false
}

func (m *Manager) setunary(op Operator, f, res int) {
	m.applycache.table[_PAIR(f, int(op), len(m.applycache.table))] = cacheData{
		a:   f,
		b:   -1,
		c:   int(op),
		res: res,
	}
}

// ************************************************************

// String prints information about the cache performance: the number of
// accesses to the unique node tables, how often an entry was (not) found
// there, and the hit and miss counts of the operation cache.
func (c cacheStat) String() string {
	res := fmt.Sprintf("Unique Access:  %d\n", c.uniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", c.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", c.uniqueMiss)
	res += fmt.Sprintf("Operator Hits:  %d\n", c.opHit)
	res += fmt.Sprintf("Operator Miss:  %d", c.opMiss)
	return res
}
