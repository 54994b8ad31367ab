// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd_test

import (
	"fmt"

	"github.com/dalzilio/zudd"
)

// This example shows the basic usage of the package: create an engine,
// combine a few families of sets and output the result.
func Example_basic() {
	b := zudd.New()
	// three variables; order follows creation
	tomato := b.CreateVar()
	basil := b.CreateVar()
	mozza := b.CreateVar()
	// two recipes, then all the ways to extend them with mozzarella
	recipes := b.IncRef(b.Union(b.Cube(tomato, basil), b.Cube(basil)))
	extended := b.IncRef(b.Multiply(recipes, b.Union(b.Cube(mozza), zudd.Base)))
	fmt.Printf("%d recipes: %s\n", b.Count(extended), b.String(extended))
	// Output:
	// 4 recipes: { v1.v2, v1.v2.v3, v2, v2.v3 }
}

// Families are canonical: two equal families always share one node.
func Example_canonicity() {
	b := zudd.New()
	x := b.CreateVar()
	y := b.CreateVar()
	left := b.IncRef(b.Union(b.Cube(x), b.Cube(y)))
	right := b.IncRef(b.Union(b.Cube(y), b.Cube(x)))
	fmt.Println(left == right)
	// Output:
	// true
}
