// Copyright (c) 2026 Victor Alcazar
//
// MIT License

/*
Package cudd implements Algebraic Decision Diagrams (ADD), a data structure
used to efficiently represent functions from Boolean vectors to real values,
such as weighted transition relations, cost functions or pseudo-Boolean
constraints.

# Basics

Each Manager owns a fixed number of variables, Varnum, declared when it is
initialized (using the function New) and each variable is represented by an
(integer) index in the interval [0..Varnum). The library supports the creation
of multiple managers with possibly different numbers of variables.

Most operations return a Node; that is a pointer to a "vertex" in the diagram
that includes a variable index and the address of the low and high branch for
this node. Leaves carry a float64 value and are hash-consed like internal
nodes, so two terminals holding the same value are the same node and diagrams
can be compared for equality in constant time with Equal.

Functions are combined pointwise with Apply, which takes one of the Operator
constants (OPplus, OPtimes, OPmin, ...), and transformed with MonadicApply for
the unary operators. Both maintain canonicity: the result of an operation is
always the unique reduced diagram of the combined function.

# Automatic memory management

The library is written in pure Go, without the need for CGo. We take care of
table resizing and reclamation of dead nodes directly in the library, but
"external" references to nodes made by user code are automatically managed by
the Go runtime through finalizers. Long-lived roots can also be protected
explicitly with AddRef and DelRef.

Operations never fail halfway: when the node table fills up during an Apply,
the manager reclaims or grows the table and restarts the computation
transparently. A hard limit can be set with the Maxnodesize option, in which
case operations fail with ErrMemory once it is reached, and a wall-clock
budget can be set with SetDeadline, in which case they fail with ErrTimeout.
*/
package cudd
