// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

// Operation identifies a recursive operation in the operation cache. The
// unary operations take a single node; the binary ones take a node and
// either a variable or a second node.
type Operation int32

const (
	OpCount Operation = iota + 1
	OpAtomize
	OpRemoveBase
	OpSubset0
	OpSubset1
	OpChange
	OpUnion
	OpIntersect
	OpDifference
	OpMultiply
	OpDivide
	OpModulo
)

var opnames = [13]string{
	OpCount:      "count",
	OpAtomize:    "atomize",
	OpRemoveBase: "removebase",
	OpSubset0:    "subset0",
	OpSubset1:    "subset1",
	OpChange:     "change",
	OpUnion:      "union",
	OpIntersect:  "intersect",
	OpDifference: "difference",
	OpMultiply:   "multiply",
	OpDivide:     "divide",
	OpModulo:     "modulo",
}

func (op Operation) String() string {
	return opnames[op]
}

// OperationCache memoizes results of the recursive operations. A cache is a
// hint: entries may be dropped at any time, and the engine clears the cache
// on every garbage collection and on Clear. Argument normalization for
// commutative operations is done by the engine before the lookup.
//
// Implementations may be bounded and approximate; see FastCache.
type OperationCache interface {
	// Lookup1 returns the cached result for a unary operation, if any.
	Lookup1(op Operation, p int) (int, bool)

	// Store1 records the result of a unary operation.
	Store1(op Operation, p, result int)

	// Lookup2 returns the cached result for a binary operation, if any.
	Lookup2(op Operation, p, q int) (int, bool)

	// Store2 records the result of a binary operation.
	Store2(op Operation, p, q, result int)

	// Clear evicts all entries.
	Clear()
}

// nocache is the default cache: every lookup misses, every store is
// dropped. Threading it through the operations lets the plain and the
// cached engine share one implementation.
type nocache struct{}

func (nocache) Lookup1(op Operation, p int) (int, bool)    { return 0, false }
func (nocache) Store1(op Operation, p, result int)         {}
func (nocache) Lookup2(op Operation, p, q int) (int, bool) { return 0, false }
func (nocache) Store2(op Operation, p, q, result int)      {}
func (nocache) Clear()                                     {}

// ************************************************************

// cache1Data and cache2Data are the units of information stored in the two
// direct-mapped tables of a FastCache. A slot with op == 0 is empty.
type cache1Data struct {
	op  Operation
	p   int
	res int
}

type cache2Data struct {
	op  Operation
	p   int
	q   int
	res int
}

// FastCache is a bounded, direct-mapped operation cache: each entry hashes
// to a single slot, and storing simply overwrites whatever the slot held.
// Lookups are approximate by design; a colliding entry evicts the previous
// one, which only costs a recomputation.
type FastCache struct {
	table1 []cache1Data
	table2 []cache2Data
	hits   int64
	misses int64
}

// _MINCACHESIZE is the smallest number of entries in each table of a
// FastCache.
const _MINCACHESIZE = 1024

// NewFastCache returns a cache with size entries in each of its two tables.
func NewFastCache(size int) *FastCache {
	if size < _MINCACHESIZE {
		size = _MINCACHESIZE
	}
	return &FastCache{
		table1: make([]cache1Data, size),
		table2: make([]cache2Data, size),
	}
}

func (c *FastCache) hash1(op Operation, p int) int {
	h := (int32(op)*4256249 + int32(p)*741457) & 0x7fffffff
	return int(h) % len(c.table1)
}

func (c *FastCache) hash2(op Operation, p, q int) int {
	h := (int32(op)*12582917 + int32(p)*4256249 + int32(q)*741457) & 0x7fffffff
	return int(h) % len(c.table2)
}

func (c *FastCache) Lookup1(op Operation, p int) (int, bool) {
	entry := c.table1[c.hash1(op, p)]
	if entry.op == op && entry.p == p {
		c.hits++
		return entry.res, true
	}
	c.misses++
	return 0, false
}

func (c *FastCache) Store1(op Operation, p, result int) {
	c.table1[c.hash1(op, p)] = cache1Data{op: op, p: p, res: result}
}

func (c *FastCache) Lookup2(op Operation, p, q int) (int, bool) {
	entry := c.table2[c.hash2(op, p, q)]
	if entry.op == op && entry.p == p && entry.q == q {
		c.hits++
		return entry.res, true
	}
	c.misses++
	return 0, false
}

func (c *FastCache) Store2(op Operation, p, q, result int) {
	c.table2[c.hash2(op, p, q)] = cache2Data{op: op, p: p, q: q, res: result}
}

func (c *FastCache) Clear() {
	for k := range c.table1 {
		c.table1[k].op = 0
	}
	for k := range c.table2 {
		c.table2[k].op = 0
	}
}

// Hits returns the number of lookups answered from the cache since
// creation. Misses counts the rest. Both survive Clear, so that hit ratios
// can be observed across garbage collections.
func (c *FastCache) Hits() int64 { return c.hits }

// Misses returns the number of lookups that were not in the cache.
func (c *FastCache) Misses() int64 { return c.misses }
