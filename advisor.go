// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

// CapacityAdvisor is the policy object consulted when the node table runs
// out of free slots. It decides the initial capacity, whether a garbage
// collection is worth running before growing, how many slots a garbage
// collection must reclaim for the growth to be skipped, and by how many
// slots the table grows.
type CapacityAdvisor interface {
	// InitialCapacity returns the size of the node table at creation. The
	// engine never uses less than 8 slots.
	InitialCapacity() int

	// MinimumFreeNodes returns the number of slots a garbage collection
	// must reclaim; when gc reclaims at least this many, growth is
	// skipped.
	MinimumFreeNodes(s Statistics) int

	// GrowthIncrement returns the number of slots appended to the table
	// when it grows.
	GrowthIncrement(s Statistics) int

	// GCRequired reports whether a garbage collection is worth running
	// before growing the table.
	GCRequired(s Statistics) bool
}

// defaultAdvisor grows aggressively while the table is small and switches to
// a moderate growth rate above half a million nodes. It asks for a garbage
// collection before growing once the table holds more than 250000 nodes, or
// when more than a tenth of the slots are dead.
type defaultAdvisor struct{}

func (defaultAdvisor) InitialCapacity() int {
	return 128
}

func (defaultAdvisor) MinimumFreeNodes(s Statistics) int {
	return s.Capacity / 20 // 5%
}

func (defaultAdvisor) GrowthIncrement(s Statistics) int {
	if s.Capacity < 500000 {
		return (s.Capacity / 2) * 3 // +150%
	}
	return (s.Capacity / 10) * 3 // +30%
}

func (defaultAdvisor) GCRequired(s Statistics) bool {
	return s.Capacity > 250000 || s.Dead > s.Capacity/10
}

// sizedAdvisor overrides the initial capacity of another advisor; used by
// the Capacity option.
type sizedAdvisor struct {
	CapacityAdvisor
	initial int
}

func (a sizedAdvisor) InitialCapacity() int {
	return a.initial
}
