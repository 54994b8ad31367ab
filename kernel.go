// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"errors"
)

// Empty and Base are the two terminal nodes of every ZDD. Empty denotes the
// empty family (no combinations) while Base denotes the unit family that
// contains only the empty combination. Both are valid in every engine and are
// never garbage collected.
const (
	Empty int = 0
	Base  int = 1
)

// _MAXVAR is the maximal number of variables. We use only the first 21 bits
// of the var field for encoding variables and reserve one bit for markings
// during garbage collection. Hence we make sure to always use int32 to avoid
// problem when we change architecture.
const _MAXVAR int32 = 0x1FFFFF

// _MARKMASK is the bit used to mark nodes reached during the mark phase of a
// garbage collection. It is stored in the var field of the node, above the
// bits used for the variable itself.
const _MARKMASK int32 = 0x200000

// _MAXNODES is the maximal capacity of the node table.
const _MAXNODES int = (1<<31 - 1) / 6

// _MINCAPACITY is the smallest initial capacity we accept from a capacity
// advisor; the two terminal nodes plus a handful of free slots.
const _MINCAPACITY int = 8

// _LOGLEVEL controls the verbosity of gc and resize traces. A value of 0
// disables logging; 3 and above also dumps the node table.
const _LOGLEVEL int = 0

// Error kinds reported by the engine. Errors returned by Err are wrapped
// around one of these values, so that callers can discriminate with
// errors.Is.
var (
	// ErrInvalidVar reports a variable outside the range 1..lastvar, or an
	// exhausted variable counter.
	ErrInvalidVar = errors.New("invalid variable")

	// ErrInvalidZbdd reports a node index outside the node table, or one
	// that refers to a freed slot.
	ErrInvalidZbdd = errors.New("invalid zbdd node")

	// ErrCapacity reports that garbage collection and table growth both
	// failed to provide a free slot.
	ErrCapacity = errors.New("nodes capacity exhausted")

	// ErrUnsupported is reserved for wrapper types that expose a narrower
	// contract than the engine itself.
	ErrUnsupported = errors.New("unsupported operation")
)
