// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"fmt"
	"log"
)

// ZDD is a store of zero-suppressed binary decision diagrams sharing one node
// table. Nodes are identified by non-negative integers, with the two
// terminals at indices 0 (Empty) and 1 (Base). The zero value is not usable;
// engines must be created with New.
//
// A ZDD is not safe for concurrent use; see Concurrent for a wrapper that
// serializes access.
type ZDD struct {
	nodes   []node // node table; terminals are always kept at index 0 and 1
	freepos int    // first free slot, 0 when the free list is empty
	freenum int    // number of free slots
	deadnum int    // number of occupied slots with a zero reference count
	lastvar int    // last variable returned by CreateVar

	advisor   CapacityAdvisor
	cache     OperationCache
	resolver  LiteralResolver
	callbacks []Callback
	varobj    map[int]interface{}

	lookups    int64 // accesses to the unique node table
	lookupHits int64 // entries actually found in the unique node table
	gcCount    int   // number of garbage collections
	gcFreed    int64 // total number of slots reclaimed by gc
	growths    int   // number of capacity increases

	err error // sticky error status to help chain operations
}

// New initializes an engine holding only the two terminal nodes. The initial
// capacity of the node table is taken from the capacity advisor; options can
// replace the advisor, plug an operation cache, or change the literal
// resolver.
func New(options ...Option) *ZDD {
	config := &configs{
		advisor:  defaultAdvisor{},
		cache:    nocache{},
		resolver: defaultResolver{},
	}
	for _, opt := range options {
		opt(config)
	}
	b := &ZDD{
		advisor:  config.advisor,
		cache:    config.cache,
		resolver: config.resolver,
		varobj:   make(map[int]interface{}),
	}
	capacity := config.advisor.InitialCapacity()
	if capacity < _MINCAPACITY {
		capacity = _MINCAPACITY
	}
	if capacity > _MAXNODES {
		capacity = _MAXNODES
	}
	b.nodes = make([]node, capacity)
	b.initterminal(Empty)
	b.initterminal(Base)
	b.Clear()
	return b
}

func (b *ZDD) initterminal(zbdd int) {
	b.nodes[zbdd] = node{varnum: -1, p0: zbdd, p1: zbdd}
}

// Clear removes all variables and nodes from the engine, keeping only the
// two terminals. The node table keeps its current capacity; no memory is
// released. The operation cache, the statistics and the sticky error status
// are reset as well.
func (b *ZDD) Clear() {
	b.fire(func(c Callback) { c.BeforeClear() })

	b.lastvar = 0
	b.deadnum = 0
	b.freepos = 2
	b.freenum = len(b.nodes) - 2

	for k := 2; k < len(b.nodes); k++ {
		b.nodes[k] = node{varnum: -1, next: (k + 1) % len(b.nodes)}
	}
	b.nodes[Empty].chain = 0
	b.nodes[Base].chain = 0

	b.varobj = make(map[int]interface{})
	b.lookups = 0
	b.lookupHits = 0
	b.gcCount = 0
	b.gcFreed = 0
	b.growths = 0
	b.err = nil
	b.cache.Clear()

	b.fire(func(c Callback) { c.AfterClear() })
}

// CreateVar registers a new variable and returns its number (always >= 1).
// Variables are ordered by creation: a variable created later sits higher in
// every diagram.
func (b *ZDD) CreateVar() int {
	if int32(b.lastvar) == _MAXVAR {
		b.seterror("%w: variable counter exhausted", ErrInvalidVar)
		return -1
	}
	b.lastvar++
	return b.lastvar
}

// CreateVarWith registers a new variable and attaches an arbitrary payload
// to it, typically the domain object the variable stands for. The payload
// can be retrieved with VarObject.
func (b *ZDD) CreateVarWith(obj interface{}) int {
	v := b.CreateVar()
	if v > 0 {
		b.varobj[v] = obj
	}
	return v
}

// VarObject returns the payload attached to var with CreateVarWith, or nil.
func (b *ZDD) VarObject(v int) interface{} {
	if b.checkvar(v) != nil {
		return nil
	}
	return b.varobj[v]
}

// Varnum returns the number of variables created so far.
func (b *ZDD) Varnum() int {
	return b.lastvar
}

// GetVar returns the variable of node zbdd, or -1 for the two terminals.
func (b *ZDD) GetVar(zbdd int) int {
	if b.checkzbdd(zbdd, "zbdd") != nil {
		return -1
	}
	return b.getvar(zbdd)
}

// GetP0 returns the 0-branch of node zbdd; terminals point to themselves.
func (b *ZDD) GetP0(zbdd int) int {
	if b.checkzbdd(zbdd, "zbdd") != nil {
		return -1
	}
	return b.nodes[zbdd].p0
}

// GetP1 returns the 1-branch of node zbdd; terminals point to themselves.
func (b *ZDD) GetP1(zbdd int) int {
	if b.checkzbdd(zbdd, "zbdd") != nil {
		return -1
	}
	return b.nodes[zbdd].p1
}

func (b *ZDD) getvar(zbdd int) int {
	if zbdd < 2 {
		return -1
	}
	return int(b.nodes[zbdd].varnum)
}

// IsValidZbdd reports whether zbdd is a terminal or an occupied slot of the
// node table.
func (b *ZDD) IsValidZbdd(zbdd int) bool {
	return zbdd >= 0 && zbdd < len(b.nodes) && (zbdd < 2 || b.nodes[zbdd].varnum != -1)
}

// IsValidVar reports whether v was returned by a previous call to CreateVar.
func (b *ZDD) IsValidVar(v int) bool {
	return v > 0 && v <= b.lastvar
}

// SetResolver changes the literal resolver used when formatting cubes.
func (b *ZDD) SetResolver(r LiteralResolver) {
	if r != nil {
		b.resolver = r
	}
}

// Resolver returns the literal resolver associated with this engine.
func (b *ZDD) Resolver() LiteralResolver {
	return b.resolver
}

// SetCache replaces the operation cache. The new cache is cleared before it
// is used, so that it cannot hold entries from another engine.
func (b *ZDD) SetCache(c OperationCache) {
	if c == nil {
		c = nocache{}
	}
	c.Clear()
	b.cache = c
}

// RegisterCallback adds an observer notified before and after every clear
// and garbage collection. Callbacks must not mutate the engine; a panic in a
// callback is swallowed by the bus.
func (b *ZDD) RegisterCallback(c Callback) {
	if c != nil {
		b.callbacks = append(b.callbacks, c)
	}
}

// Error returns the error status of the engine. We return an empty string if
// there are no errors.
func (b *ZDD) Error() string {
	if b.err == nil {
		return ""
	}
	return b.err.Error()
}

// Err returns the error status of the engine, or nil. The result wraps one
// of ErrInvalidVar, ErrInvalidZbdd, ErrCapacity or ErrUnsupported.
func (b *ZDD) Err() error {
	return b.err
}

func (b *ZDD) seterror(format string, a ...interface{}) error {
	err := fmt.Errorf(format, a...)
	if b.err == nil {
		b.err = err
		if _LOGLEVEL > 0 {
			log.Println(b.err)
		}
	}
	return err
}

func (b *ZDD) checkzbdd(zbdd int, param string) error {
	if zbdd < 0 || zbdd >= len(b.nodes) {
		return b.seterror("%w: %s must be in range 0..%d, got %d", ErrInvalidZbdd, param, len(b.nodes)-1, zbdd)
	}
	if zbdd >= 2 && b.nodes[zbdd].varnum == -1 {
		return b.seterror("%w: %s refers to freed node %d", ErrInvalidZbdd, param, zbdd)
	}
	return nil
}

func (b *ZDD) checkvar(v int) error {
	if v <= 0 || v > b.lastvar {
		return b.seterror("%w: var must be in range 1..%d, got %d", ErrInvalidVar, b.lastvar, v)
	}
	return nil
}
