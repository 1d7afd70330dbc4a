package array

import "fmt"

/*
A DynamicArray is a growable array with O(1) deletion.

Appending places an element right after the last filled slot, and
grows the backing FixedArray to 2*size+1 slots when no free slot is
left. Deleting replaces an element with a tombstone without moving
any other element. The capacity only shrinks through Compact.

A DynamicArray keeps the invariant num <= lastPosFilled+1 <= size, and
all slots after lastPosFilled are tombstones.

The zero DynamicArray is not valid; use NewDynamic.
*/
type DynamicArray[T any] struct {
	data          *FixedArray[Slot[T]]
	num           int
	lastPosFilled int
}

// NewDynamic returns a DynamicArray holding values, with exactly
// len(values) slots.
func NewDynamic[T any](values ...T) *DynamicArray[T] {
	slots := make([]Slot[T], len(values))
	for i, v := range values {
		slots[i] = Live(v)
	}
	return &DynamicArray[T]{
		data:          &FixedArray[Slot[T]]{data: slots},
		num:           len(values),
		lastPosFilled: len(values) - 1,
	}
}

// Len returns the number of slots, live or not.
func (a *DynamicArray[T]) Len() int {
	return a.data.Len()
}

// Extent returns LastPosFilled()+1.
func (a *DynamicArray[T]) Extent() int {
	return a.lastPosFilled + 1
}

// Num returns the number of live elements.
func (a *DynamicArray[T]) Num() int {
	return a.num
}

// LastPosFilled returns the index of the last live element, or -1.
func (a *DynamicArray[T]) LastPosFilled() int {
	return a.lastPosFilled
}

// Append adds v after the last live element.
func (a *DynamicArray[T]) Append(v T) {
	next := a.lastPosFilled + 1
	if next == a.data.Len() {
		grown := make([]Slot[T], 2*a.data.Len()+1)
		copy(grown, a.data.data[:next])
		a.data = &FixedArray[Slot[T]]{data: grown}
	}
	a.data.data[next] = Live(v)
	a.lastPosFilled = next
	a.num++
}

/*
Delete replaces the element with index i by a tombstone.

Delete returns a *BoundsError if i is outside [0, LastPosFilled()],
and an *AlreadyAbsentError if the slot already holds a tombstone.
*/
func (a *DynamicArray[T]) Delete(i int) error {
	if err := checkIndex(i, 0, a.lastPosFilled+1); err != nil {
		return err
	}
	if !a.data.data[i].Live {
		return &AlreadyAbsentError{Index: i}
	}
	a.data.data[i] = Tombstone[T]()
	a.num--
	if i == a.lastPosFilled {
		a.lastPosFilled = a.lastLive(i)
	}
	return nil
}

// Get returns the element with index i. If the slot holds a
// tombstone, the returned error wraps ErrAbsent.
func (a *DynamicArray[T]) Get(i int) (v T, err error) {
	if err = checkIndex(i, 0, a.data.Len()); err != nil {
		return
	}
	s := a.data.data[i]
	if !s.Live {
		return v, fmt.Errorf("%w: index %d", ErrAbsent, i)
	}
	return s.Value, nil
}

// Set stores v at index i, reviving the slot if it held a tombstone.
func (a *DynamicArray[T]) Set(i int, v T) error {
	if err := checkIndex(i, 0, a.data.Len()); err != nil {
		return err
	}
	if !a.data.data[i].Live {
		a.num++
	}
	a.data.data[i] = Live(v)
	if i > a.lastPosFilled {
		a.lastPosFilled = i
	}
	return nil
}

// Slot implements the method of the Interface interface.
func (a *DynamicArray[T]) Slot(i int) Slot[T] {
	return a.data.data[i]
}

// SetSlot implements the method of the Interface interface.
func (a *DynamicArray[T]) SetSlot(i int, s Slot[T]) {
	a.data.data[i] = s
}

// Reindex implements the method of the Reindexer interface.
func (a *DynamicArray[T]) Reindex() {
	a.num = 0
	for _, s := range a.data.data {
		if s.Live {
			a.num++
		}
	}
	a.lastPosFilled = a.lastLive(a.data.Len())
}

// lastLive returns the largest index below i that holds a live
// element, or -1.
func (a *DynamicArray[T]) lastLive(i int) int {
	for i--; i >= 0 && !a.data.data[i].Live; i-- {
	}
	return i
}

// Compact moves all live elements to the front, keeping their order,
// and shrinks the capacity to 2*Num()+1.
func (a *DynamicArray[T]) Compact() {
	compacted := make([]Slot[T], 2*a.num+1)
	j := 0
	for _, s := range a.data.data[:a.lastPosFilled+1] {
		if s.Live {
			compacted[j] = s
			j++
		}
	}
	a.data = &FixedArray[Slot[T]]{data: compacted}
	a.lastPosFilled = j - 1
}

// Values returns the live elements in index order.
func (a *DynamicArray[T]) Values() []T {
	result := make([]T, 0, a.num)
	for _, s := range a.data.data {
		if s.Live {
			result = append(result, s.Value)
		}
	}
	return result
}

// Slots returns a copy of all slots.
func (a *DynamicArray[T]) Slots() []Slot[T] {
	return a.data.Values()
}

func (a *DynamicArray[T]) String() string {
	return format[T](a)
}
