// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"log"
)

// IncRef increases the reference count on node zbdd and returns zbdd so that
// calls can be easily chained together. A fresh node becomes live with one
// holder; a dead node is revived. Terminals are not reference counted.
//
// Every node that must survive an allocating call has to be protected this
// way: a fresh, unreferenced node is reclaimed by the next garbage
// collection.
func (b *ZDD) IncRef(zbdd int) int {
	if b.checkzbdd(zbdd, "zbdd") != nil {
		return -1
	}
	return b.incref(zbdd)
}

// DecRef decreases the reference count on node zbdd and returns zbdd so that
// calls can be easily chained together. A live node with a single holder
// becomes dead; it stays canonical, and can be revived by IncRef, until the
// next garbage collection. Calling DecRef on a fresh or dead node is a
// no-op.
func (b *ZDD) DecRef(zbdd int) int {
	if b.checkzbdd(zbdd, "zbdd") != nil {
		return -1
	}
	return b.decref(zbdd)
}

func (b *ZDD) incref(zbdd int) int {
	if zbdd >= 2 && b.nodes[zbdd].varnum != -1 {
		switch ref := b.nodes[zbdd].refcou; {
		case ref == -1: // fresh node
			b.nodes[zbdd].refcou = 1
		case ref == 0:
			b.deadnum--
			b.nodes[zbdd].refcou = 1
		default:
			b.nodes[zbdd].refcou = ref + 1
		}
	}
	return zbdd
}

func (b *ZDD) decref(zbdd int) int {
	if zbdd >= 2 && b.nodes[zbdd].varnum != -1 {
		if ref := b.nodes[zbdd].refcou; ref > 0 {
			if ref == 1 {
				b.deadnum++
			}
			b.nodes[zbdd].refcou = ref - 1
		}
	}
	return zbdd
}

// GC garbage collects every node that is not transitively referenced by a
// live root and returns the number of slots reclaimed. Surviving nodes keep
// their index and regain their place in the hash chains. The operation cache
// is invalidated, since it may hold results about reclaimed nodes.
func (b *ZDD) GC() int {
	return b.gc()
}

func (b *ZDD) gc() int {
	if _LOGLEVEL > 0 {
		log.Println("starting GC")
		if _LOGLEVEL > 2 {
			b.logtable()
		}
	}

	b.fire(func(c Callback) { c.BeforeGC() })

	oldfree := b.freenum

	// mark every node reachable from a live root; clear all hash chains on
	// the way, they are rebuilt during the sweep
	for k := range b.nodes {
		if b.nodes[k].varnum != -1 && b.nodes[k].refcou > 0 {
			b.markrec(k)
		}
		b.nodes[k].chain = 0
	}

	b.freepos = 0
	b.freenum = 0
	b.deadnum = 0

	// sweep from high to low so that the free list ends up ordered
	// lowest-first; marked nodes are rechained, the rest is released. Dead
	// nodes reachable from a live root survive and are counted again.
	for n := len(b.nodes) - 1; n >= 2; n-- {
		if nd := &b.nodes[n]; nd.varnum != -1 && b.ismarked(n) {
			b.unmarknode(n)
			b.prependchain(n, b.hash(int(nd.varnum), nd.p0, nd.p1))
			if nd.refcou == 0 {
				b.deadnum++
			}
		} else {
			nd.varnum = -1
			nd.next = b.freepos
			b.freepos = n
			b.freenum++
		}
	}

	freed := b.freenum - oldfree
	b.gcFreed += int64(freed)
	b.gcCount++
	b.cache.Clear()

	b.fire(func(c Callback) { c.AfterGC() })

	if _LOGLEVEL > 0 {
		log.Printf("end GC; freenum: %d\n", b.freenum)
	}
	return freed
}

func (b *ZDD) markrec(n int) {
	if n < 2 || b.ismarked(n) {
		return
	}
	b.marknode(n)
	b.markrec(b.nodes[n].p0)
	b.markrec(b.nodes[n].p1)
}
