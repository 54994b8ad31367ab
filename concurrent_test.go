// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentDelegation(t *testing.T) {
	c := NewConcurrent(New())

	a := c.CreateVar()
	d := c.CreateVar()
	require.Equal(t, 2, c.Varnum())

	p := c.IncRef(c.Cube(a, d))
	assert.Equal(t, 1, c.Count(p))
	assert.Equal(t, d, c.GetVar(p))
	assert.True(t, c.Contains(c.IncRef(c.Union(p, Base)), p))
	assert.NoError(t, c.Err())

	c.Clear()
	assert.Equal(t, 0, c.Varnum())
}

func TestConcurrentClone(t *testing.T) {
	c := NewConcurrent(New())
	_, err := c.Clone()
	assert.True(t, errors.Is(err, ErrUnsupported))
}

// TestConcurrentWorkers shares one engine between goroutines. Every
// composite operation runs under RunAtomic, so that a gc triggered by one
// worker cannot reap the unprotected intermediates of another.
func TestConcurrentWorkers(t *testing.T) {
	c := NewConcurrent(New(Capacity(128)))

	const nworkers = 8
	vars := make([]int, nworkers)
	for k := range vars {
		vars[k] = c.CreateVar()
	}

	roots := make([]int, nworkers)
	var wg sync.WaitGroup
	for w := 0; w < nworkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			c.RunAtomic(func(b *ZDD) {
				// one union of singletons per worker, kept alive
				res := Empty
				for _, v := range vars[:w+1] {
					res = b.Union(res, b.Cube(v))
				}
				roots[w] = b.IncRef(res)
			})
		}(w)
	}
	wg.Wait()

	require.NoError(t, c.Err())
	for w := 0; w < nworkers; w++ {
		assert.Equal(t, w+1, c.Count(roots[w]))
	}

	// interleaved gcs must not invalidate the protected roots
	var wg2 sync.WaitGroup
	for w := 0; w < nworkers; w++ {
		wg2.Add(1)
		go func(w int) {
			defer wg2.Done()
			if w%2 == 0 {
				c.GC()
			} else {
				c.RunAtomic(func(b *ZDD) {
					b.IncRef(b.Intersect(roots[w], roots[0]))
				})
			}
		}(w)
	}
	wg2.Wait()

	require.NoError(t, c.Err())
	for w := 0; w < nworkers; w++ {
		assert.Equal(t, w+1, c.Count(roots[w]))
	}
}
