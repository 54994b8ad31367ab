// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
)

// PrintDot writes a graph-like description of the family rooted at zbdd
// using the DOT format. Dotted arcs are 0-branches, filled arcs are
// 1-branches; arcs into Empty are not drawn.
func (b *ZDD) PrintDot(w io.Writer, zbdd int) error {
	if err := b.checkzbdd(zbdd, "zbdd"); err != nil {
		return err
	}
	nodes := map[int]bool{}
	b.collect(nodes, zbdd)
	ids := make([]int, 0, len(nodes))
	for k := range nodes {
		ids = append(ids, k)
	}
	sort.Ints(ids)

	buf := bufio.NewWriter(w)
	fmt.Fprintln(buf, "digraph G {")
	fmt.Fprintln(buf, "1 [shape=box, label=\"{}\", style=filled, height=0.3, width=0.3];")
	for _, v := range ids {
		if v > 1 {
			fmt.Fprintf(buf, "%d %s\n", v, dotlabel(v, b.resolver.LiteralName(b.getvar(v))))
			if p0 := b.nodes[v].p0; p0 != Empty {
				fmt.Fprintf(buf, "%d -> %d [style=dotted];\n", v, p0)
			}
			if p1 := b.nodes[v].p1; p1 != Empty {
				fmt.Fprintf(buf, "%d -> %d [style=filled];\n", v, p1)
			}
		}
	}
	fmt.Fprintln(buf, "}")
	return buf.Flush()
}

// FPrintDot is like PrintDot with the output written to the named file, or
// to the standard output when filename is "-".
func (b *ZDD) FPrintDot(filename string, zbdd int) error {
	if filename == "-" {
		return b.PrintDot(os.Stdout, zbdd)
	}
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()
	return b.PrintDot(out, zbdd)
}

func (b *ZDD) collect(nodes map[int]bool, zbdd int) {
	if nodes[zbdd] {
		return
	}
	nodes[zbdd] = true
	if zbdd >= 2 {
		b.collect(nodes, b.nodes[zbdd].p0)
		b.collect(nodes, b.nodes[zbdd].p1)
	}
}

func dotlabel(id int, literal string) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%s</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, literal, id)
}
