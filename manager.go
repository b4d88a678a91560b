// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
)

// Manager owns one node table, one operation cache and one variable order. It
// is the context threaded through every operation of the package; there is no
// ambient global state. A manager must only be driven from one goroutine at a
// time.
type Manager struct {
	id        uuid.UUID              // used to tell managers apart in logs
	varnum    int32                  // number of declared variables
	varset    [][2]int               // pinned diagrams for each variable, positive and negative form
	var2level []int32                // current position of each variable
	level2var []int32                // inverse of var2level
	nodes     []ddnode               // node table; the four distinguished constants sit in slots 0-3
	unique    map[[huddsize]byte]int // unicity table for internal nodes
	consts    map[float64]int        // unicity table for terminals, keyed by value
	hbuff     [huddsize]byte         // scratch buffer for unique keys

	freenum       int // number of free slots
	freepos       int // first free slot, 0 when exhausted
	produced      int // total number of nodes ever produced
	refstack      []int
	nodefinalizer interface{}

	maxnodesize     int
	maxnodeincrease int
	minfreenodes    int

	applycache cache // operation cache, shared by binary and unary applies
	cacheStat
	gcstat

	background int  // distinguished terminal for default-valued operators
	zero       Node // pinned handles for the four distinguished constants
	one        Node
	posinf     Node
	neginf     Node

	rebuilt        bool // set when the table was rebuilt during the current call
	rebuildAfter   int  // when positive, force a rebuild after that many allocations
	deadline       time.Time
	timeoutHandler func(*Manager, interface{})
	tohArg         interface{}
	lasterr        error

	log *slog.Logger
}

// New returns a manager for diagrams over varnum Boolean variables. The
// initial variable order is the identity. Options can change the initial and
// maximal node table size, the cache geometry, and attach a logger or a
// metrics registry; see the documentation of Nodesize, Cachesize and friends.
func New(varnum int, options ...Option) (*Manager, error) {
	if (varnum < 1) || (int32(varnum) > _MAXVAR) {
		return nil, fmt.Errorf("bad number of variables (%d)", varnum)
	}
	c := makeconfigs(varnum)
	for _, opt := range options {
		opt(c)
	}
	nodesize := c.nodesize
	if nodesize < 2*varnum+6 {
		nodesize = 2*varnum + 6
	}
	m := &Manager{
		id:              uuid.New(),
		varnum:          int32(varnum),
		nodes:           make([]ddnode, nodesize),
		unique:          make(map[[huddsize]byte]int, nodesize),
		consts:          make(map[float64]int, 16),
		maxnodesize:     c.maxnodesize,
		maxnodeincrease: c.maxnodeincrease,
		minfreenodes:    c.minfreenodes,
		log:             c.logger,
	}
	if m.log == nil {
		m.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m.log = m.log.With(slog.String("manager", m.id.String()))
	for k := range m.nodes {
		m.nodes[k] = ddnode{low: _FREEMARK, high: k + 1}
	}
	m.nodes[nodesize-1].high = 0
	// The four distinguished constants take slots 0 to 3 and are pinned for
	// the whole life of the manager. The background defaults to the zero
	// terminal.
	for i, v := range []float64{0, 1, math.Inf(1), math.Inf(-1)} {
		m.nodes[i] = ddnode{level: _CONSTLEVEL, low: _CONSTMARK, high: _CONSTMARK, value: v, refcou: _MAXREFCOUNT}
		m.consts[v] = i
	}
	m.zero, m.one, m.posinf, m.neginf = inode(slotZero), inode(slotOne), inode(slotPosInf), inode(slotNegInf)
	m.background = 0
	m.freepos = 4
	m.freenum = nodesize - 4
	m.produced = 4
	m.refstack = make([]int, 0, 2*varnum+4)
	m.initref()
	m.nodefinalizer = func(n *int) {
		m.nodes[*n].refcou--
	}
	m.var2level = make([]int32, varnum)
	m.level2var = make([]int32, varnum)
	m.varset = make([][2]int, varnum)
	for k := int32(0); k < m.varnum; k++ {
		m.var2level[k] = k
		m.level2var[k] = k
		v0, err := m.makenode(k, slotZero, slotOne)
		if err != nil {
			return nil, m.seterror("cannot allocate variable %d: %w", k, err)
		}
		m.pushref(v0)
		v1, err := m.makenode(k, slotOne, slotZero)
		if err != nil {
			return nil, m.seterror("cannot allocate variable %d: %w", k, err)
		}
		m.popref(1)
		m.varset[k] = [2]int{v0, v1}
		m.nodes[v0].refcou = _MAXREFCOUNT
		m.nodes[v1].refcou = _MAXREFCOUNT
	}
	m.cacheinit(c.cachesize, c.cacheratio)
	if c.registerer != nil {
		if err := c.registerer.Register(newCollector(m)); err != nil {
			return nil, fmt.Errorf("registering telemetry: %w", err)
		}
	}
	m.log.Debug("manager created",
		slog.Int("varnum", varnum),
		slog.Int("nodesize", nodesize))
	return m, nil
}

// Close tears the manager down. Every Node obtained from it becomes invalid
// and any further operation fails with ErrClosed.
func (m *Manager) Close() {
	m.nodes = nil
	m.unique = nil
	m.consts = nil
	m.applycache.table = nil
	m.lasterr = ErrClosed
	m.log.Debug("manager closed")
}

// checkptr checks that a node is a valid reference into the node table.
func (m *Manager) checkptr(n Node) error {
	if m.nodes == nil {
		return ErrClosed
	}
	if n == nil {
		return fmt.Errorf("nil node")
	}
	if (*n < 0) || (*n >= len(m.nodes)) {
		return fmt.Errorf("node %d outside of the table", *n)
	}
	if m.nodes[*n].low == _FREEMARK {
		return fmt.Errorf("node %d is unused", *n)
	}
	return nil
}

// ************************************************************

// Zero returns the terminal holding the arithmetic constant 0.
func (m *Manager) Zero() Node { return m.zero }

// One returns the terminal holding the arithmetic constant 1.
func (m *Manager) One() Node { return m.one }

// PlusInfinity returns the terminal holding the +inf sentinel.
func (m *Manager) PlusInfinity() Node { return m.posinf }

// MinusInfinity returns the terminal holding the -inf sentinel.
func (m *Manager) MinusInfinity() Node { return m.neginf }

// Constant returns the unique terminal holding value v, creating it if
// needed. Two calls with equal values always return the same node.
func (m *Manager) Constant(v float64) (Node, error) {
	if m.nodes == nil {
		return nil, ErrClosed
	}
	var res int
	var err error
	for {
		res, err = m.uniqueConst(v)
		if errors.Is(err, errRebuild) {
			// the table was reclaimed or resized to make room; there is
			// nothing in flight to protect, so simply try again
			continue
		}
		break
	}
	if err != nil {
		return nil, m.seterror("cannot create constant %g: %w", v, err)
	}
	return m.retnode(res), nil
}

// Background returns the distinguished background terminal used by
// default-valued operators such as OPagreement.
func (m *Manager) Background() Node {
	return m.retnode(m.background)
}

// SetBackground changes the background terminal. The node must be a terminal
// of this manager.
func (m *Manager) SetBackground(n Node) error {
	if err := m.checkptr(n); err != nil {
		return m.seterror("wrong node in call to SetBackground: %w", err)
	}
	if !m.isconstant(*n) {
		return m.seterror("background node %d is not a terminal", *n)
	}
	if m.nodes[*n].refcou < _MAXREFCOUNT {
		m.nodes[*n].refcou++
	}
	if old := m.background; m.nodes[old].refcou < _MAXREFCOUNT {
		m.nodes[old].refcou--
	}
	m.background = *n
	return nil
}

// Ithvar returns the diagram for the i'th variable: one when the variable is
// 1 and zero otherwise. The requested variable must be in [0..Varnum).
func (m *Manager) Ithvar(i int) (Node, error) {
	if (i < 0) || (int32(i) >= m.varnum) {
		return nil, m.seterror("unknown variable (%d) in call to Ithvar", i)
	}
	// variables are pinned and need no reference count
	return inode(m.varset[i][0]), nil
}

// NIthvar returns the diagram valued one when the i'th variable is 0 and zero
// otherwise. See Ithvar for further info.
func (m *Manager) NIthvar(i int) (Node, error) {
	if (i < 0) || (int32(i) >= m.varnum) {
		return nil, m.seterror("unknown variable (%d) in call to NIthvar", i)
	}
	return inode(m.varset[i][1]), nil
}

// Varnum returns the number of defined variables.
func (m *Manager) Varnum() int {
	return int(m.varnum)
}

// Label returns the variable (index) tested by node n. It is an error to ask
// for the label of a terminal.
func (m *Manager) Label(n Node) (int, error) {
	if err := m.checkptr(n); err != nil {
		return -1, m.seterror("illegal access in call to Label: %w", err)
	}
	if m.isconstant(*n) {
		return -1, m.seterror("node %d is a terminal in call to Label", *n)
	}
	return int(m.nodes[*n].level), nil
}

// IsConstant reports whether n is a terminal node.
func (m *Manager) IsConstant(n Node) bool {
	if m.checkptr(n) != nil {
		return false
	}
	return m.isconstant(*n)
}

// Value returns the constant held by a terminal node.
func (m *Manager) Value(n Node) (float64, error) {
	if err := m.checkptr(n); err != nil {
		return 0, m.seterror("illegal access in call to Value: %w", err)
	}
	if !m.isconstant(*n) {
		return 0, m.seterror("node %d is not a terminal in call to Value", *n)
	}
	return m.nodes[*n].value, nil
}

// Low returns the else branch of node n, taken when the tested variable is 0.
func (m *Manager) Low(n Node) (Node, error) {
	if err := m.checkptr(n); err != nil {
		return nil, m.seterror("illegal access in call to Low: %w", err)
	}
	if m.isconstant(*n) {
		return nil, m.seterror("node %d is a terminal in call to Low", *n)
	}
	return m.retnode(m.nodes[*n].low), nil
}

// High returns the then branch of node n, taken when the tested variable is 1.
func (m *Manager) High(n Node) (Node, error) {
	if err := m.checkptr(n); err != nil {
		return nil, m.seterror("illegal access in call to High: %w", err)
	}
	if m.isconstant(*n) {
		return nil, m.seterror("node %d is a terminal in call to High", *n)
	}
	return m.retnode(m.nodes[*n].high), nil
}

// Equal tests whether two handles denote the same node.
func (m *Manager) Equal(f, g Node) bool {
	if f == g {
		return true
	}
	if f == nil || g == nil {
		return false
	}
	return *f == *g
}

// Eval returns the value of the function denoted by n under the given
// assignment, where assignment[i] gives the value (0 or 1) of variable i.
func (m *Manager) Eval(n Node, assignment []int) (float64, error) {
	if err := m.checkptr(n); err != nil {
		return 0, m.seterror("wrong node in call to Eval: %w", err)
	}
	if len(assignment) < int(m.varnum) {
		return 0, m.seterror("assignment of length %d, want %d", len(assignment), m.varnum)
	}
	i := *n
	for !m.isconstant(i) {
		if assignment[m.nodes[i].level] != 0 {
			i = m.nodes[i].high
		} else {
			i = m.nodes[i].low
		}
	}
	return m.nodes[i].value, nil
}
