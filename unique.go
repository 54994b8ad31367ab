// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"log"
)

// The hash of a triplet is computed modulo the capacity of the node table,
// so any capacity change invalidates every chain and forces a rehash. We
// compute in int32 so that overflow wraps the same way on every
// architecture.
func (b *ZDD) hash(varnum, p0, p1 int) int {
	h := (int32(varnum)*12582917 + int32(p0)*4256249 + int32(p1)*741457) & 0x7fffffff
	return int(h) % len(b.nodes)
}

func (b *ZDD) prependchain(zbdd, hash int) {
	b.nodes[zbdd].next = b.nodes[hash].chain
	b.nodes[hash].chain = zbdd
}

// GetNode returns the canonical node for the triplet (var, p0, p1), reusing
// an existing node when one exists and materializing a fresh one otherwise.
// Following the zero-suppression rule, a triplet whose 1-branch is Empty is
// never materialized: p0 is returned verbatim.
func (b *ZDD) GetNode(varnum, p0, p1 int) int {
	if b.checkvar(varnum) != nil || b.checkzbdd(p0, "p0") != nil || b.checkzbdd(p1, "p1") != nil {
		return -1
	}
	return b.getnode(varnum, p0, p1)
}

// getnode is the hash-cons lookup shared by every operation. A miss
// allocates from the free list, which can trigger a garbage collection
// and/or a growth of the node table; the p0 and p1 arguments are protected
// by a temporary reference across that window so that fresh intermediates
// are not reclaimed.
func (b *ZDD) getnode(varnum, p0, p1 int) int {
	b.lookups++

	// suppress 0's
	if p1 == Empty {
		b.lookupHits++
		return p0
	}
	if p0 < 0 || p1 < 0 {
		return -1
	}

	hash := b.hash(varnum, p0, p1)
	for r := b.nodes[hash].chain; r != 0; r = b.nodes[r].next {
		if nd := &b.nodes[r]; nd.varnum == int32(varnum) && nd.p0 == p0 && nd.p1 == p1 {
			b.lookupHits++
			return r
		}
	}

	if b.freenum < 2 {
		b.incref(p0)
		b.incref(p1)
		b.ensurecapacity()
		b.decref(p1)
		b.decref(p0)
		if b.freenum == 0 {
			b.seterror("%w: table already holds %d nodes", ErrCapacity, len(b.nodes))
			return -1
		}
		// may have changed with the capacity
		hash = b.hash(varnum, p0, p1)
	}

	res := b.freepos
	b.freepos = b.nodes[res].next
	b.freenum--

	nd := &b.nodes[res]
	nd.varnum = int32(varnum)
	nd.p0 = p0
	nd.p1 = p1
	nd.refcou = -1
	b.prependchain(res, hash)
	return res
}

// ensurecapacity tries a garbage collection first when there are dead nodes
// and the advisor finds it worthwhile, and grows the node table otherwise. Growing preserves node
// indices but changes every hash, so all surviving nodes are rechained.
func (b *ZDD) ensurecapacity() {
	if b.deadnum > 0 && b.advisor.GCRequired(b.Stats()) {
		// growth is skipped when gc reclaimed enough; getnode always needs
		// two free slots, whatever the advisor says
		if freed := b.gc(); freed >= b.advisor.MinimumFreeNodes(b.Stats()) && b.freenum >= 2 {
			return
		}
	}

	oldsize := len(b.nodes)
	newsize := oldsize + b.advisor.GrowthIncrement(b.Stats())
	if newsize > _MAXNODES {
		newsize = _MAXNODES
	}
	if newsize <= oldsize {
		return
	}
	if _LOGLEVEL > 0 {
		log.Printf("start resize: %d\n", oldsize)
	}

	tmp := b.nodes
	b.nodes = make([]node, newsize)
	copy(b.nodes, tmp)
	b.growths++

	b.freepos = 0
	b.freenum = 0

	// new slots join the free list lowest-first
	for n := newsize - 1; n >= oldsize; n-- {
		b.nodes[n].varnum = -1
		b.nodes[n].next = b.freepos
		b.freepos = n
	}
	b.freenum = newsize - oldsize

	// every hash changed with the capacity: unchain all old slots, then
	// rechain the occupied ones and thread the free ones back in
	for n := 0; n < oldsize; n++ {
		b.nodes[n].chain = 0
	}
	for n := oldsize - 1; n >= 2; n-- {
		if nd := &b.nodes[n]; nd.varnum != -1 {
			b.prependchain(n, b.hash(int(nd.varnum), nd.p0, nd.p1))
		} else {
			nd.next = b.freepos
			b.freepos = n
			b.freenum++
		}
	}

	if _LOGLEVEL > 0 {
		log.Printf("end resize: %d\n", newsize)
	}
}
