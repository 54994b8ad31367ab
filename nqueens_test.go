// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nqueens computes the family of solutions of the N-queens problem, with
// one variable per square of the board, and returns the number of
// solutions. Rows are filled one at a time: a queen may go on a square only
// when no queen of an earlier row attacks it.
func nqueens(b *ZDD, n int) int {
	vars := make([][]int, n)
	for r := range vars {
		vars[r] = make([]int, n)
		for c := range vars[r] {
			vars[r][c] = b.CreateVar()
		}
	}

	solution := Base
	for s := 0; s < n; s++ {
		tmp := Empty
		b.IncRef(solution)
		for c := 0; c < n; c++ {
			sc := solution
			tmp0 := b.IncRef(tmp)
			for r := 0; r < s; r++ {
				sc = b.Subset0(sc, vars[r][c])
				if ct := c - (s - r); ct >= 0 {
					sc = b.Subset0(sc, vars[r][ct])
				}
				if ct := c + (s - r); ct < n {
					sc = b.Subset0(sc, vars[r][ct])
				}
			}
			tmp = b.Union(tmp0, b.Change(sc, vars[s][c]))
			b.DecRef(tmp0)
		}
		b.DecRef(solution)
		solution = tmp
	}
	return b.Count(b.IncRef(solution))
}

func TestNQueens(t *testing.T) {
	var nqueensTests = []struct {
		n         int
		expected  int
		tablesize int
	}{
		{1, 1, 16},
		{2, 0, 16},
		{3, 0, 16},
		{4, 2, 32},
		{5, 10, 128},
		{6, 4, 256},
		{7, 40, 550},
		{8, 92, 1700},
	}
	for _, tt := range nqueensTests {
		b := New(Capacity(tt.tablesize), Cache(NewFastCache(1<<16)))
		actual := nqueens(b, tt.n)
		require.NoError(t, b.Err(), "NQueens(%d)", tt.n)
		if actual != tt.expected {
			t.Errorf("Error in NQueens(%d), expected %d, actual %d", tt.n, tt.expected, actual)
		}
	}
}

// the small table sizes above force a large number of gc and capacity
// changes; check that they actually happened for the bigger boards
func TestNQueensStress(t *testing.T) {
	b := New(Capacity(256), Cache(NewFastCache(1<<16)))
	actual := nqueens(b, 7)
	require.NoError(t, b.Err())
	assert.Equal(t, 40, actual)
	s := b.Stats()
	assert.Positive(t, s.GCCount+s.Growths)
}

func TestNQueensPlainEqualsCached(t *testing.T) {
	plain := New(Capacity(256))
	cached := New(Capacity(256), Cache(NewFastCache(1<<14)))
	assert.Equal(t, nqueens(plain, 5), nqueens(cached, 5))
	require.NoError(t, plain.Err())
	require.NoError(t, cached.Err())
}

func BenchmarkNQueens(b *testing.B) {
	for n := 0; n < b.N; n++ {
		z := New(Capacity(1<<15), Cache(NewFastCache(1<<17)))
		nqueens(z, 8)
	}
}
