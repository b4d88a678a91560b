// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

// huddsize is the number of bytes needed to encode a (level, low, high)
// triple, adapted from the uintSize trick of the math/bits package.
const huddsize = (2*(32<<(^uint(0)>>32&1)) + 32) / 8 // 12 (32 bits) or 20 (64 bits)

// _MINFREENODES is the minimal number of nodes (%) that has to be left after a
// garbage collect unless a resize should be done.
const _MINFREENODES int = 20

// _MAXVAR is the maximal number of variables in a manager. We use only the
// first 21 bits of an int32 for encoding variables; one of the remaining bits
// is used for marking nodes during traversals.
const _MAXVAR int32 = 0x1FFFFF

// _CONSTLEVEL is the position reported for terminal nodes. Constants always
// sort after every variable of the current order.
const _CONSTLEVEL int32 = _MAXVAR

// _MAXREFCOUNT is the maximal value of the reference counter (refcou), also
// used to pin nodes (such as constants and variables) in the node table.
const _MAXREFCOUNT int32 = 0x3FF

// _DEFAULTMAXNODEINC is the default value for the maximal increase in the
// number of nodes during a resize; approx. one million nodes.
const _DEFAULTMAXNODEINC int = 1 << 20

// Markers stored in the low field of a node slot.
const (
	_FREEMARK  int = -1 // slot is unused, high chains the freelist
	_CONSTMARK int = -2 // slot holds a terminal, value carries the constant
)

// The four distinguished constants are pinned in the first slots of every
// node table, in this order.
const (
	slotZero   int = iota // the terminal 0
	slotOne               // the terminal 1
	slotPosInf            // the +inf sentinel
	slotNegInf            // the -inf sentinel
)
