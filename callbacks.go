// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

// Callback observes the two events that invalidate outside knowledge about
// the node table: Clear and garbage collection. Callbacks must not mutate
// the engine; a panic raised by a callback is swallowed by the bus so that
// it cannot corrupt the engine state mid-operation.
type Callback interface {
	BeforeClear()
	AfterClear()
	BeforeGC()
	AfterGC()
}

func (b *ZDD) fire(f func(Callback)) {
	for _, c := range b.callbacks {
		func() {
			defer func() { _ = recover() }()
			f(c)
		}()
	}
}

// CallbackFuncs adapts plain functions to the Callback interface; nil
// fields are skipped.
type CallbackFuncs struct {
	OnBeforeClear func()
	OnAfterClear  func()
	OnBeforeGC    func()
	OnAfterGC     func()
}

func (c CallbackFuncs) BeforeClear() {
	if c.OnBeforeClear != nil {
		c.OnBeforeClear()
	}
}

func (c CallbackFuncs) AfterClear() {
	if c.OnAfterClear != nil {
		c.OnAfterClear()
	}
}

func (c CallbackFuncs) BeforeGC() {
	if c.OnBeforeGC != nil {
		c.OnBeforeGC()
	}
}

func (c CallbackFuncs) AfterGC() {
	if c.OnAfterGC != nil {
		c.OnAfterGC()
	}
}
