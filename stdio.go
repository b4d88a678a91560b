// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// Stats returns information about the manager: number of variables, table
// occupancy, memory footprint of the node table, and cache performance.
func (m *Manager) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", m.varnum)
	res += fmt.Sprintf("Allocated:  %d  (%s)\n", len(m.nodes),
		humanize.IBytes(uint64(len(m.nodes))*uint64(unsafe.Sizeof(ddnode{}))))
	res += fmt.Sprintf("Produced:   %d\n", m.produced)
	res += fmt.Sprintf("Terminals:  %d\n", len(m.consts))
	r := (float64(m.freenum) / float64(len(m.nodes))) * 100
	res += fmt.Sprintf("Free:       %d  (%.3g %%)\n", m.freenum, r)
	res += fmt.Sprintf("Used:       %d  (%.3g %%)\n", len(m.nodes)-m.freenum, (100.0 - r))
	res += fmt.Sprintf("# of GC:    %d\n", len(m.history))
	res += fmt.Sprintf("Rebuilds:   %d\n", m.rebuilds)
	res += fmt.Sprintf("Ext. refs:  %d\n", m.setfinalizers)
	res += m.cacheStat.String()
	return res
}

// PrintStats outputs a textual representation of the manager statistics on the
// standard output.
func (m *Manager) PrintStats() {
	fmt.Println("==============")
	fmt.Println(m.Stats())
	fmt.Println("==============")
}

// ************************************************************

// Print returns a one-line description of node n. Terminals print as their
// value; internal nodes print as a ternary expression over the tested
// variable.
func (m *Manager) Print(n Node) string {
	if n == nil || *n < 0 {
		return "Error"
	}
	if m.lasterr != nil {
		return fmt.Sprintf("node %d: error %s", *n, m.lasterr)
	}
	if *n >= len(m.nodes) {
		return fmt.Sprintf("Error (%d not a valid index)", *n)
	}
	if m.nodes[*n].low == _FREEMARK {
		return fmt.Sprintf("Error (node %d[%d] undefined)", *n, m.nodes[*n].level)
	}
	if m.isconstant(*n) {
		return fmt.Sprintf("%g", m.nodes[*n].value)
	}
	return fmt.Sprintf("(%d[%d] ? %d : %d)", *n, m.nodes[*n].level, m.nodes[*n].high, m.nodes[*n].low)
}

// PrintTable writes the nodes reachable from n on the standard output, one
// node per line.
func (m *Manager) PrintTable(n Node) {
	m.print(os.Stdout, n)
}

// PrintAll writes the totality of the node table on the standard output.
func (m *Manager) PrintAll() {
	m.printAll(os.Stdout)
}

func (m *Manager) print(w io.Writer, n Node) error {
	if err := m.checkptr(n); err != nil {
		fmt.Fprintf(w, "ERROR: %s\n", err)
		return err
	}
	if m.isconstant(*n) {
		fmt.Fprintf(w, "%g\n", m.nodes[*n].value)
		return nil
	}
	cnodes := m.markcount(*n)
	nodes := make([]int, 0, cnodes)
	for i := 0; i < len(m.nodes); i++ {
		if m.ismarked(i) {
			m.unmarknode(i)
			nodes = append(nodes, i)
		}
	}
	fmt.Fprintf(w, "node: %d\n", *n)
	m.printString(w, nodes)
	return nil
}

func (m *Manager) printAll(w io.Writer) error {
	nodes := []int{}
	for i := 0; i < len(m.nodes); i++ {
		if m.nodes[i].low != _FREEMARK {
			nodes = append(nodes, i)
		}
	}
	m.printString(w, nodes)
	return nil
}

func (m *Manager) printString(w io.Writer, nodes []int) {
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	sort.Ints(nodes)
	for _, n := range nodes {
		if m.isconstant(n) {
			fmt.Fprintf(tw, "%d\t[const\t] = \t%g\n", n, m.nodes[n].value)
			continue
		}
		fmt.Fprintf(tw, "%d\t[%d\t] ? \t%d\t : %d\n", n, m.nodes[n].level, m.nodes[n].high, m.nodes[n].low)
	}
	tw.Flush()
}

// ************************************************************

// Dot writes a graph-like description of the diagrams rooted at the given
// nodes using the GraphViz DOT format. Terminals are drawn as boxes holding
// their value; dotted arcs lead to the else branch and filled arcs to the then
// branch.
func (m *Manager) Dot(w io.Writer, roots ...Node) error {
	for _, n := range roots {
		if err := m.checkptr(n); err != nil {
			return m.seterror("wrong node in call to Dot: %w", err)
		}
	}
	nodes := []int{}
	for _, n := range roots {
		m.markcount(*n)
	}
	for i := 0; i < len(m.nodes); i++ {
		if m.ismarked(i) {
			m.unmarknode(i)
			nodes = append(nodes, i)
		}
	}
	m.printDot(bufio.NewWriter(w), nodes)
	return nil
}

// FDot writes the output of Dot to the named file, or to the standard output
// when filename is "-".
func (m *Manager) FDot(filename string, roots ...Node) error {
	var out *os.File
	var err error
	if filename == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(filename)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	return m.Dot(out, roots...)
}

func (m *Manager) printDot(w *bufio.Writer, nodes []int) {
	sort.Ints(nodes)
	fmt.Fprintln(w, "digraph G {")
	for _, v := range nodes {
		if m.isconstant(v) {
			fmt.Fprintf(w, "%d [shape=box, label=\"%g\", style=filled, height=0.3, width=0.3];\n", v, m.nodes[v].value)
			continue
		}
		fmt.Fprintf(w, "%d %s\n", v, dotlabel(v, m.nodes[v].level))
		fmt.Fprintf(w, "%d -> %d [style=dotted];\n", v, m.nodes[v].low)
		fmt.Fprintf(w, "%d -> %d [style=filled];\n", v, m.nodes[v].high)
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}

func dotlabel(a int, b int32) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">x%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, b, a)
}

// ************************************************************

// NodeCount returns the number of distinct nodes in the diagram rooted at n,
// terminals included.
func (m *Manager) NodeCount(n Node) int {
	if m.checkptr(n) != nil {
		return 0
	}
	count := m.markcount(*n)
	m.unmarkall()
	return count
}

// Allnodes applies function f over every active node of the table, in no
// particular order. Terminals report the constant level marker and negative
// branches; use IsConstant to tell them apart. The iteration stops on the
// first error.
func (m *Manager) Allnodes(f func(id int, level int32, low, high int) error) error {
	if m.nodes == nil {
		return ErrClosed
	}
	for k, v := range m.nodes {
		if v.low == _FREEMARK {
			continue
		}
		if err := f(k, v.level, v.low, v.high); err != nil {
			return err
		}
	}
	return nil
}
