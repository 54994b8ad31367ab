// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"fmt"
	"unsafe"
)

// Statistics is a snapshot of the state of an engine. It is the value
// handed to the capacity advisor and the one exposed by the prometheus
// collector.
type Statistics struct {
	Capacity   int   // number of slots in the node table
	Free       int   // number of free slots
	Dead       int   // number of occupied slots with a zero reference count
	Lookups    int64 // accesses to the unique node table
	LookupHits int64 // entries actually found in the unique node table
	GCCount    int   // number of garbage collections
	GCFreed    int64 // total number of slots reclaimed by gc
	Growths    int   // number of capacity increases
	Vars       int   // number of registered variables
}

// Stats returns a snapshot of the engine statistics.
func (b *ZDD) Stats() Statistics {
	return Statistics{
		Capacity:   len(b.nodes),
		Free:       b.freenum,
		Dead:       b.deadnum,
		Lookups:    b.lookups,
		LookupHits: b.lookupHits,
		GCCount:    b.gcCount,
		GCFreed:    b.gcFreed,
		Growths:    b.growths,
		Vars:       b.lastvar,
	}
}

// Available returns the number of slots that an allocation could use
// without growing the table: the free ones plus the dead ones.
func (s Statistics) Available() int {
	return s.Free + s.Dead
}

// Occupied returns the number of slots holding a node that is neither free
// nor dead.
func (s Statistics) Occupied() int {
	return s.Capacity - s.Available()
}

// HitRatio returns the fraction of unique table accesses answered by an
// existing node.
func (s Statistics) HitRatio() float64 {
	if s.Lookups == 0 {
		return 0
	}
	return float64(s.LookupHits) / float64(s.Lookups)
}

// Memory returns the size of the node table in bytes.
func (s Statistics) Memory() int64 {
	return int64(s.Capacity) * int64(unsafe.Sizeof(node{}))
}

func (s Statistics) String() string {
	r := (float64(s.Free) / float64(s.Capacity)) * 100
	res := fmt.Sprintf("Vars:       %d\n", s.Vars)
	res += fmt.Sprintf("Allocated:  %d\n", s.Capacity)
	res += fmt.Sprintf("Free:       %d  (%.3g %%)\n", s.Free, r)
	res += fmt.Sprintf("Dead:       %d\n", s.Dead)
	res += fmt.Sprintf("Hit ratio:  %.3g %%\n", s.HitRatio()*100)
	res += fmt.Sprintf("# of GC:    %d  (freed %d)\n", s.GCCount, s.GCFreed)
	res += fmt.Sprintf("# of grow:  %d\n", s.Growths)
	res += fmt.Sprintf("Size:       %dKB", s.Memory()/1024)
	return res
}
