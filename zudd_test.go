// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVar(t *testing.T) {
	b := New()

	v := b.CreateVar()
	require.Greater(t, v, 0)

	n1 := b.Cube(v)
	n2 := b.Cube(v)
	require.GreaterOrEqual(t, n1, 2)
	assert.Equal(t, n1, n2, "hash-consing must return the same node twice")
	assert.Equal(t, v, b.GetVar(n1))
	assert.Equal(t, Empty, b.GetP0(n1))
	assert.Equal(t, Base, b.GetP1(n1))

	assert.Equal(t, -1, b.Cube(v+1))
	assert.True(t, errors.Is(b.Err(), ErrInvalidVar))
	b.Clear()
	assert.Equal(t, -1, b.Cube(0))
	assert.True(t, errors.Is(b.Err(), ErrInvalidVar))
}

func TestCreateVarWith(t *testing.T) {
	b := New()

	type city struct{ name string }
	v1 := b.CreateVarWith(&city{"Rome"})
	v2 := b.CreateVar()

	require.Equal(t, 1, v1)
	require.Equal(t, 2, v2)
	assert.Equal(t, "Rome", b.VarObject(v1).(*city).name)
	assert.Nil(t, b.VarObject(v2))
}

func TestGetNode(t *testing.T) {
	b := New()
	v1 := b.CreateVar()
	v2 := b.CreateVar()

	// zero-suppression: a 1-branch to Empty is never materialized
	assert.Equal(t, Base, b.GetNode(v1, Base, Empty))
	n := b.Cube(v1)
	assert.Equal(t, n, b.GetNode(v2, n, Empty))

	// canonicity
	r1 := b.GetNode(v2, Empty, n)
	r2 := b.GetNode(v2, Empty, n)
	assert.Equal(t, r1, r2)

	// order invariant on everything reachable
	for _, z := range []int{n, r1} {
		assert.Greater(t, b.GetVar(z), b.GetVar(b.GetP0(z)))
		assert.Greater(t, b.GetVar(z), b.GetVar(b.GetP1(z)))
	}
}

func TestInvalidZbdd(t *testing.T) {
	b := New()
	b.CreateVar()

	assert.Equal(t, -1, b.GetVar(-3))
	assert.True(t, errors.Is(b.Err(), ErrInvalidZbdd))
	b.Clear()
	require.NoError(t, b.Err())

	assert.Equal(t, -1, b.GetVar(len(b.nodes)))
	assert.True(t, errors.Is(b.Err(), ErrInvalidZbdd))
	b.Clear()

	// index of a slot that was never allocated
	assert.Equal(t, -1, b.GetP0(5))
	assert.True(t, errors.Is(b.Err(), ErrInvalidZbdd))
}

func TestIsValid(t *testing.T) {
	b := New()
	v := b.CreateVar()
	n := b.Cube(v)

	assert.True(t, b.IsValidZbdd(Empty))
	assert.True(t, b.IsValidZbdd(Base))
	assert.True(t, b.IsValidZbdd(n))
	assert.False(t, b.IsValidZbdd(-1))
	assert.False(t, b.IsValidZbdd(n+1))

	assert.True(t, b.IsValidVar(v))
	assert.False(t, b.IsValidVar(0))
	assert.False(t, b.IsValidVar(v+1))
}

func TestRefcountAccounting(t *testing.T) {
	b := New()
	v := b.CreateVar()
	n := b.Cube(v)

	// fresh node: not yet acknowledged, not dead
	require.Equal(t, int32(-1), b.NodeInfo(n).RefCount)
	assert.Equal(t, 0, b.Stats().Dead)

	// DecRef on a fresh node is a no-op
	b.DecRef(n)
	assert.Equal(t, int32(-1), b.NodeInfo(n).RefCount)
	assert.Equal(t, 0, b.Stats().Dead)

	b.IncRef(n)
	assert.Equal(t, int32(1), b.NodeInfo(n).RefCount)
	b.IncRef(n)
	assert.Equal(t, int32(2), b.NodeInfo(n).RefCount)

	b.DecRef(n)
	assert.Equal(t, int32(1), b.NodeInfo(n).RefCount)
	assert.Equal(t, 0, b.Stats().Dead)

	// last holder gone: the node is dead and counted as such
	b.DecRef(n)
	assert.Equal(t, int32(0), b.NodeInfo(n).RefCount)
	assert.Equal(t, 1, b.Stats().Dead)

	// DecRef on a dead node is a no-op
	b.DecRef(n)
	assert.Equal(t, 1, b.Stats().Dead)

	// a dead node can be revived
	b.IncRef(n)
	assert.Equal(t, int32(1), b.NodeInfo(n).RefCount)
	assert.Equal(t, 0, b.Stats().Dead)

	// terminals are not reference counted
	assert.Equal(t, Empty, b.IncRef(Empty))
	assert.Equal(t, Base, b.DecRef(Base))
}

func TestClear(t *testing.T) {
	b := New()
	a := b.CreateVar()
	c := b.CreateVar()
	n := b.IncRef(b.Cube(a, c))
	require.Equal(t, 2, b.Varnum())
	require.True(t, b.IsValidZbdd(n))

	b.Clear()

	assert.Equal(t, 0, b.Varnum())
	assert.False(t, b.IsValidZbdd(n))
	assert.Equal(t, 0, b.Stats().Dead)
	assert.Equal(t, b.Stats().Capacity-2, b.Stats().Free)

	// the engine is usable again and ids are recycled from scratch
	a = b.CreateVar()
	assert.Equal(t, 1, a)
	assert.True(t, b.IsValidZbdd(b.Cube(a)))
}

func TestCallbacks(t *testing.T) {
	b := New(Capacity(64))
	events := []string{}
	b.RegisterCallback(CallbackFuncs{
		OnBeforeClear: func() { events = append(events, "before clear") },
		OnAfterClear:  func() { events = append(events, "after clear") },
		OnBeforeGC:    func() { events = append(events, "before gc") },
		OnAfterGC:     func() { events = append(events, "after gc") },
	})
	// a panicking callback must not disturb the engine
	b.RegisterCallback(CallbackFuncs{
		OnBeforeGC: func() { panic("must be swallowed") },
	})

	b.GC()
	b.Clear()

	assert.Equal(t, []string{"before gc", "after gc", "before clear", "after clear"}, events)
	assert.NoError(t, b.Err())
}

func TestNodeInfo(t *testing.T) {
	b := New()
	v := b.CreateVar()
	n := b.Cube(v)

	info := b.NodeInfo(n)
	assert.Equal(t, v, info.Var)
	assert.Equal(t, Empty, info.P0)
	assert.Equal(t, Base, info.P1)
	assert.Equal(t, "v1", info.Literal)
	assert.Contains(t, info.String(), "fresh")

	assert.Equal(t, "Empty", b.NodeInfo(Empty).String())
	assert.Equal(t, "Base", b.NodeInfo(Base).String())
}

func TestStatsString(t *testing.T) {
	b := New()
	v := b.CreateVar()
	b.Cube(v)

	s := b.Stats()
	assert.Equal(t, 128, s.Capacity)
	assert.Equal(t, 1, s.Vars)
	assert.Equal(t, s.Capacity-s.Free-s.Dead, s.Occupied())
	assert.Contains(t, s.String(), "Allocated:  128")
}
