/*
Package array provides FixedArray and DynamicArray.

Both containers address their slots by index. A slot holds either a
live element or a tombstone. A FixedArray never holds tombstones; a
DynamicArray produces them when elements are deleted, and never shifts
the remaining elements to close the gap.

The range algorithms of the sibling packages operate on Interface,
which exposes slots rather than elements, so that they can skip or
relocate tombstones.
*/
package array

import (
	"fmt"
	"strings"
)

// A Slot is either a live element or a tombstone.
type Slot[T any] struct {
	Value T
	Live  bool
}

// Live returns a slot holding v.
func Live[T any](v T) Slot[T] {
	return Slot[T]{Value: v, Live: true}
}

// Tombstone returns an absent slot.
func Tombstone[T any]() Slot[T] {
	return Slot[T]{}
}

func (s Slot[T]) String() string {
	if !s.Live {
		return "<nil>"
	}
	return fmt.Sprint(s.Value)
}

/*
Interface is the view of a container that the range algorithms work
on.

Slot and SetSlot do not check their index beyond what Go's bounds
checks do, and SetSlot does not maintain any bookkeeping of the
container. This allows concurrent workers to call SetSlot on disjoint
indices. Algorithms that permute slots call Reindex afterwards.
*/
type Interface[T any] interface {
	// Len is the number of addressable slots.
	Len() int

	// Extent is the default exclusive end of a range over the
	// container. All slots at or after Extent are tombstones.
	Extent() int

	// Slot returns the slot with index i.
	Slot(i int) Slot[T]

	// SetSlot overwrites the slot with index i.
	SetSlot(i int, s Slot[T])
}

// A Reindexer is a container with bookkeeping derived from its slot
// layout.
type Reindexer interface {
	// Reindex recomputes the bookkeeping from the slot layout.
	Reindex()
}

// Reindex calls a.Reindex if a is a Reindexer.
func Reindex[T any](a Interface[T]) {
	if r, ok := a.(Reindexer); ok {
		r.Reindex()
	}
}

func format[T any](a Interface[T]) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Slot(i).String())
	}
	b.WriteByte(']')
	return b.String()
}
