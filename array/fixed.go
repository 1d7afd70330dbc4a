package array

import (
	"fmt"
	"math"
)

/*
A FixedArray is a sequence of a fixed number of elements. Every slot
always holds a live element.

The zero FixedArray is valid and empty.
*/
type FixedArray[T any] struct {
	data []T
}

// NewFixed returns a FixedArray of size zero-valued elements.
func NewFixed[T any](size int) (*FixedArray[T], error) {
	if size < 0 {
		return nil, &BoundsError{Index: size, Low: 0, High: math.MaxInt}
	}
	return &FixedArray[T]{data: make([]T, size)}, nil
}

// FixedOf returns a FixedArray holding a copy of values.
func FixedOf[T any](values ...T) *FixedArray[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &FixedArray[T]{data: data}
}

// Len returns the number of elements.
func (a *FixedArray[T]) Len() int {
	return len(a.data)
}

// Extent returns Len.
func (a *FixedArray[T]) Extent() int {
	return len(a.data)
}

// Get returns the element with index i.
func (a *FixedArray[T]) Get(i int) (v T, err error) {
	if err = checkIndex(i, 0, len(a.data)); err != nil {
		return
	}
	return a.data[i], nil
}

// Set overwrites the element with index i.
func (a *FixedArray[T]) Set(i int, v T) error {
	if err := checkIndex(i, 0, len(a.data)); err != nil {
		return err
	}
	a.data[i] = v
	return nil
}

// Slot implements the method of the Interface interface.
func (a *FixedArray[T]) Slot(i int) Slot[T] {
	return Live(a.data[i])
}

// SetSlot implements the method of the Interface interface.
//
// SetSlot panics if s is a tombstone.
func (a *FixedArray[T]) SetSlot(i int, s Slot[T]) {
	if !s.Live {
		panic(fmt.Sprintf("array: tombstone stored at index %v of a FixedArray", i))
	}
	a.data[i] = s.Value
}

// Values returns a copy of the elements.
func (a *FixedArray[T]) Values() []T {
	result := make([]T, len(a.data))
	copy(result, a.data)
	return result
}

func (a *FixedArray[T]) String() string {
	return format[T](a)
}
