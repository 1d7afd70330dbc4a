/*
Package sort provides sequential and parallel sorting algorithms for
the containers of package array.

All algorithms sort a half-open range [low, high) of slots, selected
with array.Within, array.From, and array.Until, and defaulting to the
live extent of the container. Slots outside the range are never
touched.

A tombstone is ordered after every live element, whatever the
ordering predicate. After sorting, the range therefore holds its live
elements in order, followed by all of its tombstones, and both the
multiset of live elements and the number of tombstones in the range
are preserved. CountingSort is the exception: it returns a new
compacted array and leaves its input alone.

Functions without the Func suffix sort cmp.Ordered elements in
increasing order. Functions with the Func suffix take a predicate that
reports whether its first argument strictly precedes its second
argument.
*/
package sort

import (
	"github.com/exascience/parray/array"
)

// view attaches Less and Swap to a container, in the manner of
// sort.Interface.
type view[T any] struct {
	a    array.Interface[T]
	less func(x, y T) bool
}

func lessSlot[T any](less func(x, y T) bool, x, y array.Slot[T]) bool {
	switch {
	case !x.Live:
		return false
	case !y.Live:
		return true
	}
	return less(x.Value, y.Value)
}

func (v view[T]) Less(i, j int) bool {
	return lessSlot(v.less, v.a.Slot(i), v.a.Slot(j))
}

func (v view[T]) Swap(i, j int) {
	si, sj := v.a.Slot(i), v.a.Slot(j)
	v.a.SetSlot(i, sj)
	v.a.SetSlot(j, si)
}

// sortRange resolves the range selected by opts and runs kernel on it
// if it holds at least two slots. The container is reindexed
// afterwards, even if kernel fails.
func sortRange[T any](
	a array.Interface[T],
	less func(x, y T) bool,
	opts []array.Option,
	kernel func(v view[T], low, high int) error,
) (err error) {
	low, high, err := array.Bounds(a, opts...)
	if err != nil {
		return err
	}
	if high-low < 2 {
		return nil
	}
	defer array.Reindex(a)
	return kernel(view[T]{a, less}, low, high)
}

func serial[T any](kernel func(v view[T], low, high int)) func(view[T], int, int) error {
	return func(v view[T], low, high int) error {
		kernel(v, low, high)
		return nil
	}
}
