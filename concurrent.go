// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"sync"
)

// Concurrent wraps an engine so that every public call runs under one
// mutex. Sequences of calls are still not atomic with respect to each
// other: a garbage collection triggered from another goroutine can reclaim
// a fresh node between two calls. Composite operations must therefore be
// run with RunAtomic, which holds the mutex for the duration of the
// closure.
type Concurrent struct {
	mu sync.Mutex
	b  *ZDD
}

// NewConcurrent returns a thread-safe wrapper around b. The wrapped engine
// must not be used directly anymore.
func NewConcurrent(b *ZDD) *Concurrent {
	return &Concurrent{b: b}
}

// RunAtomic runs f with the engine lock held. This is the only safe way to
// compose several operations when other goroutines share the engine, since
// it keeps interleaved garbage collections from reaping unprotected
// intermediate results built across calls.
func (c *Concurrent) RunAtomic(f func(b *ZDD)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f(c.b)
}

// Clone is not supported on the concurrent wrapper.
func (c *Concurrent) Clone() (*Concurrent, error) {
	return nil, ErrUnsupported
}

func (c *Concurrent) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.b.Clear()
}

func (c *Concurrent) CreateVar() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.CreateVar()
}

func (c *Concurrent) CreateVarWith(obj interface{}) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.CreateVarWith(obj)
}

func (c *Concurrent) VarObject(v int) interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.VarObject(v)
}

func (c *Concurrent) Varnum() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Varnum()
}

func (c *Concurrent) Cube(vars ...int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Cube(vars...)
}

func (c *Concurrent) Universe() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Universe()
}

func (c *Concurrent) GetNode(varnum, p0, p1 int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.GetNode(varnum, p0, p1)
}

func (c *Concurrent) GetVar(zbdd int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.GetVar(zbdd)
}

func (c *Concurrent) GetP0(zbdd int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.GetP0(zbdd)
}

func (c *Concurrent) GetP1(zbdd int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.GetP1(zbdd)
}

func (c *Concurrent) Subset0(zbdd, v int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Subset0(zbdd, v)
}

func (c *Concurrent) Subset1(zbdd, v int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Subset1(zbdd, v)
}

func (c *Concurrent) Change(zbdd, v int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Change(zbdd, v)
}

func (c *Concurrent) Count(zbdd int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Count(zbdd)
}

func (c *Concurrent) Union(p ...int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Union(p...)
}

func (c *Concurrent) Intersect(p, q int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Intersect(p, q)
}

func (c *Concurrent) Difference(p, q int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Difference(p, q)
}

func (c *Concurrent) Multiply(p, q int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Multiply(p, q)
}

func (c *Concurrent) Divide(p, q int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Divide(p, q)
}

func (c *Concurrent) Modulo(p, q int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Modulo(p, q)
}

func (c *Concurrent) Atomize(zbdd int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Atomize(zbdd)
}

func (c *Concurrent) RemoveBase(zbdd int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.RemoveBase(zbdd)
}

func (c *Concurrent) Contains(p, q int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Contains(p, q)
}

func (c *Concurrent) HasCubeWithVar(zbdd, v int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.HasCubeWithVar(zbdd, v)
}

func (c *Concurrent) IncRef(zbdd int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.IncRef(zbdd)
}

func (c *Concurrent) DecRef(zbdd int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.DecRef(zbdd)
}

func (c *Concurrent) GC() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.GC()
}

func (c *Concurrent) Stats() Statistics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Stats()
}

func (c *Concurrent) String(zbdd int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.String(zbdd)
}

func (c *Concurrent) VisitCubes(zbdd int, visitor CubeVisitor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.b.VisitCubes(zbdd, visitor)
}

func (c *Concurrent) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Err()
}
