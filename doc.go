// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package zudd defines a concrete type for Zero-suppressed Binary Decision
Diagrams (ZDD), a data structure used to efficiently represent families of
sets over a fixed, ordered universe of variables.

Basics

An engine is created with New and starts with no variables; variables are
registered one by one with CreateVar and are ordered by creation. Every node
of every diagram lives in one shared table and is identified by a
non-negative integer, with the convention that 0 (Empty, the empty family)
and 1 (Base, the family holding only the empty combination) are the two
terminal nodes. Diagrams are canonical: two families are equal exactly when
their node identifiers are equal.

Families are built from cubes (Cube, Universe) and combined with the
set-family algebra: Union, Intersect, Difference, the product Multiply,
Minato's weak division Divide and its remainder Modulo, plus the
single-variable operations Subset0, Subset1 and Change. Combinations are
enumerated with VisitCubes or rendered with String.

Reference counting and garbage collection

Node allocation goes through a hash-consing table; when the table runs out
of free slots the engine garbage collects unreferenced nodes and, when that
is not enough, grows the table following its capacity advisor. A node
returned by an operation is fresh: it survives only until the next
allocation unless it is protected with IncRef. The typical usage pattern is

	r := b.IncRef(b.Union(p, q))
	...
	b.DecRef(r)

where p and q were themselves protected. Operations protect their own
arguments and intermediate results internally, so single calls are always
safe; only values held across calls need the IncRef/DecRef discipline.

Concurrency

An engine is strictly single-threaded. The Concurrent wrapper serializes
every call under one mutex and provides RunAtomic for composite operations.
*/
package zudd
