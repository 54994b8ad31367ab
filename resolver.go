// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"fmt"
	"sort"
	"strings"
)

// LiteralResolver maps a variable to a display name. It is pure: a resolver
// never mutates the engine.
type LiteralResolver interface {
	LiteralName(v int) string
}

type defaultResolver struct{}

func (defaultResolver) LiteralName(v int) string {
	return fmt.Sprintf("v%d", v)
}

// CubeName renders a single combination with the given resolver: variables
// sorted in ascending order, joined with dots. The empty combination is
// rendered as {}.
func CubeName(r LiteralResolver, cube []int) string {
	if len(cube) == 0 {
		return "{}"
	}
	sorted := append([]int{}, cube...)
	sort.Ints(sorted)
	names := make([]string, len(sorted))
	for k, v := range sorted {
		names[k] = r.LiteralName(v)
	}
	return strings.Join(names, ".")
}
