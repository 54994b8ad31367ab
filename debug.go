// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"log"
)

// logtable dumps the node table; only used at high log levels.
func (b *ZDD) logtable() {
	if b.err != nil {
		log.Printf("ERROR: %s\n", b.err)
	}
	for k, n := range b.nodes {
		switch {
		case k < 2:
			log.Printf("%-3d ( -   ,  -   ,  -   )  |chain:  %-3d  |next:  %-3d | terminal\n", k, n.chain, n.next)
		case n.varnum == -1:
			log.Printf("%-3d ( free             )  |chain:  %-3d  |next:  %-3d |\n", k, n.chain, n.next)
		case n.refcou == -1:
			log.Printf("%-3d ( %-3d ,  %-3d ,  %-3d)  |chain:  %-3d  |next:  %-3d | fresh\n", k, n.varnum, n.p0, n.p1, n.chain, n.next)
		case n.refcou == 0:
			log.Printf("%-3d ( %-3d ,  %-3d ,  %-3d)  |chain:  %-3d  |next:  %-3d | dead\n", k, n.varnum, n.p0, n.p1, n.chain, n.next)
		default:
			log.Printf("%-3d ( %-3d ,  %-3d ,  %-3d)  |chain:  %-3d  |next:  %-3d | %d\n", k, n.varnum, n.p0, n.p1, n.chain, n.next, n.refcou)
		}
	}
}
