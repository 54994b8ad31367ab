// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"sort"
	"strings"
)

// CubeVisitor is called once per combination during VisitCubes, with the
// variables of the combination in descending order. The snapshot belongs to
// the visitor. Returning false stops the enumeration.
type CubeVisitor func(cube []int) bool

// VisitCubes enumerates the combinations of zbdd in a depth-first walk,
// 1-branches first. The node is protected for the duration of the walk, so
// the visitor may allocate new nodes through the engine.
func (b *ZDD) VisitCubes(zbdd int, visitor CubeVisitor) {
	if b.checkzbdd(zbdd, "zbdd") != nil {
		return
	}
	b.incref(zbdd)
	top := b.getvar(zbdd)
	if top < 0 {
		top = 0
	}
	b.visitcubes(visitor, newintstack(top), zbdd)
	b.decref(zbdd)
}

func (b *ZDD) visitcubes(visitor CubeVisitor, vars *intstack, zbdd int) bool {
	if zbdd == Base {
		return visitor(vars.snapshot())
	}
	if zbdd == Empty {
		return true
	}

	// walk the 1-branch with the variable in the cube, then the 0-branch
	vars.push(b.getvar(zbdd))
	if !b.visitcubes(visitor, vars, b.nodes[zbdd].p1) {
		return false
	}
	vars.pop()
	return b.visitcubes(visitor, vars, b.nodes[zbdd].p0)
}

// Cubes returns all the combinations of zbdd, each as a slice of variables
// in descending order.
func (b *ZDD) Cubes(zbdd int) [][]int {
	cubes := [][]int{}
	b.VisitCubes(zbdd, func(cube []int) bool {
		cubes = append(cubes, cube)
		return true
	})
	return cubes
}

// String renders the family zbdd with the literal resolver of the engine,
// one cube per combination, e.g. "{ v1.v3, v2, {} }".
func (b *ZDD) String(zbdd int) string {
	cubes := []string{}
	b.VisitCubes(zbdd, func(cube []int) bool {
		cubes = append(cubes, CubeName(b.resolver, cube))
		return true
	})
	if len(cubes) == 0 {
		return "{ }"
	}
	sort.Strings(cubes)
	return "{ " + strings.Join(cubes, ", ") + " }"
}

// ************************************************************

// intstack is the growable stack of variables used by the cube walk.
type intstack struct {
	stack []int
}

func newintstack(size int) *intstack {
	if size < 8 {
		size = 8
	}
	return &intstack{stack: make([]int, 0, size)}
}

func (s *intstack) push(v int) {
	s.stack = append(s.stack, v)
}

func (s *intstack) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *intstack) snapshot() []int {
	return append([]int{}, s.stack...)
}
