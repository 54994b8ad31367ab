// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"fmt"
)

// NodeInfo is a snapshot of a single node of the table, mostly useful for
// debugging and display.
type NodeInfo struct {
	Zbdd     int
	Var      int
	P0       int
	P1       int
	RefCount int32 // -1 fresh, 0 dead, k>0 live
	Literal  string
}

// NodeInfo returns a snapshot of node zbdd.
func (b *ZDD) NodeInfo(zbdd int) NodeInfo {
	if b.checkzbdd(zbdd, "zbdd") != nil {
		return NodeInfo{Zbdd: -1}
	}
	info := NodeInfo{
		Zbdd: zbdd,
		Var:  b.getvar(zbdd),
		P0:   b.nodes[zbdd].p0,
		P1:   b.nodes[zbdd].p1,
	}
	if zbdd >= 2 {
		info.RefCount = b.nodes[zbdd].refcou
		info.Literal = b.resolver.LiteralName(info.Var)
	}
	return info
}

func (i NodeInfo) String() string {
	switch i.Zbdd {
	case Empty:
		return "Empty"
	case Base:
		return "Base"
	}
	ref := "dead"
	switch {
	case i.RefCount == -1:
		ref = "fresh"
	case i.RefCount > 0:
		ref = fmt.Sprintf("%d", i.RefCount)
	}
	return fmt.Sprintf("Node(zbdd=%d, var=%d:%s, P0=%d, P1=%d, refcount=%s)",
		i.Zbdd, i.Var, i.Literal, i.P0, i.P1, ref)
}
