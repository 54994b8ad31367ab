// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastCacheBasics(t *testing.T) {
	c := NewFastCache(0) // clamped to the minimum size

	_, ok := c.Lookup2(OpUnion, 3, 4)
	assert.False(t, ok)

	c.Store2(OpUnion, 3, 4, 17)
	res, ok := c.Lookup2(OpUnion, 3, 4)
	require.True(t, ok)
	assert.Equal(t, 17, res)

	// same arguments, different operation
	_, ok = c.Lookup2(OpIntersect, 3, 4)
	assert.False(t, ok)

	c.Store1(OpCount, 9, 5)
	res, ok = c.Lookup1(OpCount, 9)
	require.True(t, ok)
	assert.Equal(t, 5, res)

	c.Clear()
	_, ok = c.Lookup2(OpUnion, 3, 4)
	assert.False(t, ok)
	_, ok = c.Lookup1(OpCount, 9)
	assert.False(t, ok)

	assert.Positive(t, c.Misses())
	assert.Positive(t, c.Hits())
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "union", OpUnion.String())
	assert.Equal(t, "removebase", OpRemoveBase.String())
}

// TestCachedEqualsPlain replays the same random workload on a plain engine
// and on a cached one and compares the results semantically. Nothing may
// depend on the hit pattern of the cache, which is approximate by design.
func TestCachedEqualsPlain(t *testing.T) {
	plain := New(Capacity(1 << 12))
	cached := New(Capacity(1<<12), Cache(NewFastCache(1<<12)))

	run := func(b *ZDD) []string {
		rng := rand.New(rand.NewSource(0xcafe))
		vars := make([]int, 5)
		for k := range vars {
			vars[k] = b.CreateVar()
		}
		out := []string{}
		for i := 0; i < 40; i++ {
			p := randfamily(b, rng, vars, 5)
			q := randfamily(b, rng, vars, 5)
			out = append(out,
				b.String(b.IncRef(b.Union(p, q))),
				b.String(b.IncRef(b.Intersect(p, q))),
				b.String(b.IncRef(b.Difference(p, q))),
				b.String(b.IncRef(b.Multiply(p, q))),
				b.String(b.IncRef(b.Divide(p, q))),
				b.String(b.IncRef(b.Modulo(p, q))),
				b.String(b.IncRef(b.Atomize(p))),
				b.String(b.IncRef(b.RemoveBase(p))))
		}
		require.NoError(t, b.Err())
		return out
	}

	assert.Equal(t, run(plain), run(cached))
}

// the cache must be cleared by gc, otherwise it could resurrect reclaimed
// node ids
func TestCacheClearedOnGC(t *testing.T) {
	fc := NewFastCache(1 << 10)
	b := New(Capacity(256), Cache(fc))
	a := b.CreateVar()
	c := b.CreateVar()

	p := b.IncRef(b.Cube(a))
	q := b.IncRef(b.Cube(c))
	b.IncRef(b.Union(p, q))

	res, ok := fc.Lookup2(OpUnion, p, q)
	require.True(t, ok)
	require.GreaterOrEqual(t, res, 2)

	b.GC()
	_, ok = fc.Lookup2(OpUnion, p, q)
	assert.False(t, ok)
}

func TestSetCache(t *testing.T) {
	b := New()
	a := b.CreateVar()
	c := b.CreateVar()
	p := b.IncRef(b.Union(b.Cube(a), b.Cube(c)))

	fc := NewFastCache(1 << 10)
	fc.Store2(OpUnion, 1234, 5678, 9) // stale entry, must be dropped
	b.SetCache(fc)
	_, ok := fc.Lookup2(OpUnion, 1234, 5678)
	assert.False(t, ok)

	assert.Equal(t, 2, b.Count(p))
	b.SetCache(nil) // back to the no-op cache
	assert.Equal(t, 2, b.Count(p))
}
