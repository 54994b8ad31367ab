// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"sort"
)

// The public operations validate their arguments and delegate to recursive
// workers that assume pre-validated inputs. Workers interleave reference
// count bookkeeping with the recursion: any intermediate result that must
// survive a further allocating call is protected with incref first, and
// released once it is safely embedded in a node returned by getnode (getnode
// itself protects its two branch arguments across a possible garbage
// collection). A worker returns -1 only when the node table is exhausted;
// the -1 is propagated unchanged to the caller.

// Cube returns the family containing exactly one combination, the set of
// the given variables. An empty argument list yields Base. Variables are
// sorted before construction and duplicates are collapsed.
func (b *ZDD) Cube(vars ...int) int {
	if len(vars) == 0 {
		return Base
	}
	if len(vars) >= 2 {
		vars = append([]int{}, vars...)
		sort.Ints(vars)
	}
	res := Base
	for _, v := range vars {
		if b.checkvar(v) != nil {
			return -1
		}
		if v != b.getvar(res) {
			res = b.getnode(v, Empty, res)
		}
	}
	return res
}

// Universe returns the family of all subsets of the variables created so
// far. With n variables the result counts 2^n combinations.
func (b *ZDD) Universe() int {
	res := Base
	for v := 1; v <= b.lastvar; v++ {
		res = b.getnode(v, res, res)
		if res < 0 {
			return -1
		}
	}
	return res
}

// Subset0 returns the combinations of zbdd that do not contain v.
func (b *ZDD) Subset0(zbdd, v int) int {
	if b.checkzbdd(zbdd, "zbdd") != nil || b.checkvar(v) != nil {
		return -1
	}
	return b.subset0(zbdd, v)
}

func (b *ZDD) subset0(zbdd, v int) int {
	if zbdd < 0 {
		return -1
	}
	top := b.getvar(zbdd)
	if top < v {
		return zbdd
	}
	if top == v {
		return b.nodes[zbdd].p0
	}
	if res, ok := b.cache.Lookup2(OpSubset0, zbdd, v); ok {
		return res
	}

	b.incref(zbdd)
	p0 := b.incref(b.subset0(b.nodes[zbdd].p0, v))
	p1 := b.subset0(b.nodes[zbdd].p1, v)
	res := b.getnode(top, b.decref(p0), p1)
	b.decref(zbdd)

	if res >= 0 {
		b.cache.Store2(OpSubset0, zbdd, v, res)
	}
	return res
}

// Subset1 returns the combinations of zbdd containing v, with v removed
// from each of them.
func (b *ZDD) Subset1(zbdd, v int) int {
	if b.checkzbdd(zbdd, "zbdd") != nil || b.checkvar(v) != nil {
		return -1
	}
	return b.subset1(zbdd, v)
}

func (b *ZDD) subset1(zbdd, v int) int {
	if zbdd < 0 {
		return -1
	}
	top := b.getvar(zbdd)
	if top < v {
		return Empty
	}
	if top == v {
		return b.nodes[zbdd].p1
	}
	if res, ok := b.cache.Lookup2(OpSubset1, zbdd, v); ok {
		return res
	}

	b.incref(zbdd)
	p0 := b.incref(b.subset1(b.nodes[zbdd].p0, v))
	p1 := b.subset1(b.nodes[zbdd].p1, v)
	res := b.getnode(top, b.decref(p0), p1)
	b.decref(zbdd)

	if res >= 0 {
		b.cache.Store2(OpSubset1, zbdd, v, res)
	}
	return res
}

// Change toggles the presence of v in every combination of zbdd.
func (b *ZDD) Change(zbdd, v int) int {
	if b.checkzbdd(zbdd, "zbdd") != nil || b.checkvar(v) != nil {
		return -1
	}
	return b.change(zbdd, v)
}

func (b *ZDD) change(zbdd, v int) int {
	if zbdd < 0 {
		return -1
	}
	top := b.getvar(zbdd)
	if top < v {
		return b.getnode(v, Empty, zbdd)
	}
	if top == v {
		return b.getnode(v, b.nodes[zbdd].p1, b.nodes[zbdd].p0)
	}
	if res, ok := b.cache.Lookup2(OpChange, zbdd, v); ok {
		return res
	}

	b.incref(zbdd)
	p0 := b.incref(b.change(b.nodes[zbdd].p0, v))
	p1 := b.change(b.nodes[zbdd].p1, v)
	res := b.getnode(top, b.decref(p0), p1)
	b.decref(zbdd)

	if res >= 0 {
		b.cache.Store2(OpChange, zbdd, v, res)
	}
	return res
}

// Count returns the number of combinations in the family zbdd.
func (b *ZDD) Count(zbdd int) int {
	if b.checkzbdd(zbdd, "zbdd") != nil {
		return -1
	}
	return b.count(zbdd)
}

func (b *ZDD) count(zbdd int) int {
	if zbdd < 2 {
		return zbdd
	}
	if res, ok := b.cache.Lookup1(OpCount, zbdd); ok {
		return res
	}
	res := b.count(b.nodes[zbdd].p0) + b.count(b.nodes[zbdd].p1)
	b.cache.Store1(OpCount, zbdd, res)
	return res
}

// Union returns the union of a sequence of families. With a single argument
// it returns it unchanged; with none it returns Empty.
func (b *ZDD) Union(p ...int) int {
	if len(p) == 0 {
		return Empty
	}
	for _, pn := range p {
		if b.checkzbdd(pn, "p") != nil {
			return -1
		}
		b.incref(pn)
	}
	res := p[0]
	for _, pn := range p[1:] {
		res = b.union(res, pn)
	}
	for _, pn := range p {
		b.decref(pn)
	}
	return res
}

func (b *ZDD) union(p, q int) int {
	if p < 0 || q < 0 {
		return -1
	}
	if q == Empty || p == q {
		return p
	}
	if p == Empty {
		return q
	}

	pvar := b.getvar(p)
	qvar := b.getvar(q)
	if pvar > qvar {
		// the operand with the lower top variable goes left
		p, q = q, p
		pvar, qvar = qvar, pvar
	}
	if res, ok := b.cache.Lookup2(OpUnion, p, q); ok {
		return res
	}

	b.incref(p)
	b.incref(q)

	var res int
	if pvar < qvar {
		p0 := b.union(p, b.nodes[q].p0)
		res = b.getnode(qvar, p0, b.nodes[q].p1)
	} else {
		p0 := b.incref(b.union(b.nodes[p].p0, b.nodes[q].p0))
		p1 := b.union(b.nodes[p].p1, b.nodes[q].p1)
		res = b.getnode(pvar, b.decref(p0), p1)
	}

	b.decref(q)
	b.decref(p)

	if res >= 0 {
		b.cache.Store2(OpUnion, p, q, res)
	}
	return res
}

// Intersect returns the combinations present in both p and q.
func (b *ZDD) Intersect(p, q int) int {
	if b.checkzbdd(p, "p") != nil || b.checkzbdd(q, "q") != nil {
		return -1
	}
	return b.intersect(p, q)
}

func (b *ZDD) intersect(p, q int) int {
	if p < 0 || q < 0 {
		return -1
	}
	if p == Empty || q == Empty {
		return Empty
	}
	if p == q {
		return p
	}
	if res, ok := b.cache.Lookup2(OpIntersect, p, q); ok {
		return res
	}

	b.incref(p)
	b.incref(q)

	pvar := b.getvar(p)
	qvar := b.getvar(q)
	var res int
	switch {
	case pvar > qvar:
		res = b.intersect(b.nodes[p].p0, q)
	case pvar < qvar:
		res = b.intersect(p, b.nodes[q].p0)
	default:
		p0 := b.incref(b.intersect(b.nodes[p].p0, b.nodes[q].p0))
		p1 := b.intersect(b.nodes[p].p1, b.nodes[q].p1)
		res = b.getnode(pvar, b.decref(p0), p1)
	}

	b.decref(q)
	b.decref(p)

	if res >= 0 {
		b.cache.Store2(OpIntersect, p, q, res)
	}
	return res
}

// Difference returns the combinations of p that are not in q.
func (b *ZDD) Difference(p, q int) int {
	if b.checkzbdd(p, "p") != nil || b.checkzbdd(q, "q") != nil {
		return -1
	}
	return b.difference(p, q)
}

func (b *ZDD) difference(p, q int) int {
	if p < 0 || q < 0 {
		return -1
	}
	if p == Empty || p == q {
		return Empty
	}
	if q == Empty {
		return p
	}
	if res, ok := b.cache.Lookup2(OpDifference, p, q); ok {
		return res
	}

	b.incref(p)
	b.incref(q)

	pvar := b.getvar(p)
	qvar := b.getvar(q)
	var res int
	switch {
	case pvar < qvar:
		res = b.difference(p, b.nodes[q].p0)
	case pvar > qvar:
		p0 := b.difference(b.nodes[p].p0, q)
		res = b.getnode(pvar, p0, b.nodes[p].p1)
	default:
		p0 := b.incref(b.difference(b.nodes[p].p0, b.nodes[q].p0))
		p1 := b.difference(b.nodes[p].p1, b.nodes[q].p1)
		res = b.getnode(pvar, b.decref(p0), p1)
	}

	b.decref(q)
	b.decref(p)

	if res >= 0 {
		b.cache.Store2(OpDifference, p, q, res)
	}
	return res
}

// Multiply returns the set-family product of p and q: the unions a ∪ b for
// every a in p and b in q. Pairs that share variables are kept, so that
// {a} times {a} is {a}.
func (b *ZDD) Multiply(p, q int) int {
	if b.checkzbdd(p, "p") != nil || b.checkzbdd(q, "q") != nil {
		return -1
	}
	return b.multiply(p, q)
}

func (b *ZDD) multiply(p, q int) int {
	if p < 0 || q < 0 {
		return -1
	}
	if p == Empty || q == Empty {
		return Empty
	}
	if p == Base {
		return q
	}
	if q == Base {
		return p
	}

	pvar := b.getvar(p)
	qvar := b.getvar(q)
	if pvar > qvar {
		p, q = q, p
		pvar = qvar
	}
	if res, ok := b.cache.Lookup2(OpMultiply, p, q); ok {
		return res
	}

	b.incref(p)
	b.incref(q)

	// factor P = p0 + v*p1 and Q = q0 + v*q1 on v, the lowest top variable
	p0 := b.incref(b.subset0(p, pvar))
	p1 := b.incref(b.subset1(p, pvar))
	q0 := b.incref(b.subset0(q, pvar))
	q1 := b.incref(b.subset1(q, pvar))

	// r = (p0 + v*p1)(q0 + v*q1) = p0q0 + v*(p0q1 + p1q0 + p1q1)
	p0q0 := b.incref(b.multiply(p0, q0))
	p0q1 := b.incref(b.multiply(p0, q1))
	p1q0 := b.incref(b.multiply(p1, q0))
	p1q1 := b.incref(b.multiply(p1, q1))
	res := b.union(p0q0, b.change(b.union(b.union(p0q1, p1q0), p1q1), pvar))

	b.decref(p1q1)
	b.decref(p1q0)
	b.decref(p0q1)
	b.decref(p0q0)
	b.decref(q1)
	b.decref(q0)
	b.decref(p1)
	b.decref(p0)
	b.decref(q)
	b.decref(p)

	if res >= 0 {
		b.cache.Store2(OpMultiply, p, q, res)
	}
	return res
}

// Divide returns the quotient of the set-family division of p by q
// (Minato's weak division).
func (b *ZDD) Divide(p, q int) int {
	if b.checkzbdd(p, "p") != nil || b.checkzbdd(q, "q") != nil {
		return -1
	}
	return b.divide(p, q)
}

func (b *ZDD) divide(p, q int) int {
	if p < 0 || q < 0 {
		return -1
	}
	if p < 2 || q == Empty {
		return Empty
	}
	if p == q {
		return Base
	}
	if q == Base {
		return p
	}
	if res, ok := b.cache.Lookup2(OpDivide, p, q); ok {
		return res
	}

	b.incref(p)
	b.incref(q)

	v := b.getvar(q)

	p0 := b.incref(b.subset0(p, v))
	p1 := b.incref(b.subset1(p, v))
	q0 := b.incref(b.subset0(q, v))
	q1 := b.subset1(q, v)

	res := b.divide(b.decref(p1), q1)
	if res != Empty && q0 != Empty && res >= 0 {
		r1 := b.incref(res)
		r0 := b.divide(p0, q0)
		res = b.intersect(b.decref(r1), r0)
	}

	b.decref(q0)
	b.decref(p0)
	b.decref(q)
	b.decref(p)

	if res >= 0 {
		b.cache.Store2(OpDivide, p, q, res)
	}
	return res
}

// Modulo returns the remainder of the set-family division of p by q, that
// is difference(p, multiply(q, divide(p, q))). The quotient is computed
// once.
func (b *ZDD) Modulo(p, q int) int {
	if b.checkzbdd(p, "p") != nil || b.checkzbdd(q, "q") != nil {
		return -1
	}
	return b.modulo(p, q)
}

func (b *ZDD) modulo(p, q int) int {
	if p < 0 || q < 0 {
		return -1
	}
	if res, ok := b.cache.Lookup2(OpModulo, p, q); ok {
		return res
	}

	b.incref(p)
	b.incref(q)

	quot := b.incref(b.divide(p, q))
	prod := b.incref(b.multiply(q, quot))
	res := b.difference(p, prod)

	b.decref(prod)
	b.decref(quot)
	b.decref(q)
	b.decref(p)

	if res >= 0 {
		b.cache.Store2(OpModulo, p, q, res)
	}
	return res
}

// Atomize returns the family of single-variable combinations, one for each
// variable appearing somewhere in zbdd. Terminals atomize to Empty.
func (b *ZDD) Atomize(zbdd int) int {
	if b.checkzbdd(zbdd, "zbdd") != nil {
		return -1
	}
	return b.atomize(zbdd)
}

func (b *ZDD) atomize(zbdd int) int {
	if zbdd < 0 {
		return -1
	}
	if zbdd < 2 {
		return Empty
	}
	if res, ok := b.cache.Lookup1(OpAtomize, zbdd); ok {
		return res
	}

	p0a := b.incref(b.atomize(b.nodes[b.incref(zbdd)].p0))
	p1a := b.atomize(b.nodes[zbdd].p1)

	p0 := b.atomizeunion(b.decref(p0a), p1a)
	res := b.getnode(b.getvar(zbdd), p0, Base)

	b.decref(zbdd)

	if res >= 0 {
		b.cache.Store1(OpAtomize, zbdd, res)
	}
	return res
}

// atomizeunion is a union specialized for atomization: both operands have
// every 1-branch pointing to Base, and Base leaves are suppressed from the
// result so that the caller can re-anchor the whole family on its own node.
func (b *ZDD) atomizeunion(p, q int) int {
	if p < 0 || q < 0 {
		return -1
	}
	if p < 2 {
		if q < 2 {
			return Empty
		}
		return q
	}
	if q < 2 || p == q {
		return p
	}

	pvar := b.getvar(p)
	qvar := b.getvar(q)
	if pvar > qvar {
		p, q = q, p
		pvar, qvar = qvar, pvar
	}

	b.incref(p)
	b.incref(q)

	var p0 int
	if pvar < qvar {
		p0 = b.atomizeunion(p, b.nodes[q].p0)
	} else {
		p0 = b.atomizeunion(b.nodes[p].p0, b.nodes[q].p0)
	}
	res := b.getnode(qvar, p0, Base)

	b.decref(q)
	b.decref(p)

	return res
}

// RemoveBase returns zbdd without the empty combination.
func (b *ZDD) RemoveBase(zbdd int) int {
	if b.checkzbdd(zbdd, "zbdd") != nil {
		return -1
	}
	return b.removebase(zbdd)
}

func (b *ZDD) removebase(zbdd int) int {
	if zbdd < 0 {
		return -1
	}
	if zbdd < 2 {
		return Empty
	}
	if res, ok := b.cache.Lookup1(OpRemoveBase, zbdd); ok {
		return res
	}

	b.incref(zbdd)
	p0 := b.removebase(b.nodes[zbdd].p0)
	res := b.getnode(b.getvar(zbdd), p0, b.nodes[zbdd].p1)
	b.decref(zbdd)

	if res >= 0 {
		b.cache.Store1(OpRemoveBase, zbdd, res)
	}
	return res
}

// Contains reports whether the family q is part of the family p. Both
// operands must be non-empty.
func (b *ZDD) Contains(p, q int) bool {
	if b.checkzbdd(p, "p") != nil || b.checkzbdd(q, "q") != nil {
		return false
	}
	return p != Empty && q != Empty && (p == q || b.intersect(p, q) == q)
}

// HasCubeWithVar reports whether some combination of zbdd contains v.
func (b *ZDD) HasCubeWithVar(zbdd, v int) bool {
	if b.checkzbdd(zbdd, "zbdd") != nil || b.checkvar(v) != nil {
		return false
	}
	return b.hascubewithvar(zbdd, v)
}

func (b *ZDD) hascubewithvar(zbdd, v int) bool {
	top := b.getvar(zbdd)
	if v > top {
		return false
	}
	return top == v ||
		b.hascubewithvar(b.nodes[zbdd].p0, v) ||
		b.hascubewithvar(b.nodes[zbdd].p1, v)
}
