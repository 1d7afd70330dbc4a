/*
Package order provides ordering checks and binary searches over ranges
of the containers of package array.

Functions without the Func suffix use the natural increasing order of
cmp.Ordered elements. Functions with the Func suffix take a predicate
that reports whether its first argument strictly precedes its second
argument; any strict weak ordering works, including decreasing ones.

Ranges are selected with array.Within, array.From, and array.Until,
and default to the live extent of the container.
*/
package order

import (
	"cmp"

	"github.com/exascience/parray/array"
)

// IsOrdered reports whether every pair of adjacent live elements of a
// range of a is in increasing order.
func IsOrdered[T cmp.Ordered](a array.Interface[T], opts ...array.Option) (bool, error) {
	return IsOrderedFunc(a, cmp.Less[T], opts...)
}

/*
IsOrderedFunc reports whether less(a[i+1], a[i]) is false for every
pair of adjacent slots i, i+1 of a range of a that both hold live
elements.

Pairs that involve a tombstone are not compared, so a tombstone never
breaks ordering by itself, and the elements on either side of it are
not compared with each other.
*/
func IsOrderedFunc[T any](a array.Interface[T], less func(x, y T) bool, opts ...array.Option) (bool, error) {
	low, high, err := array.Bounds(a, opts...)
	if err != nil {
		return false, err
	}
	for i := low + 1; i < high; i++ {
		prev, s := a.Slot(i-1), a.Slot(i)
		if prev.Live && s.Live && less(s.Value, prev.Value) {
			return false, nil
		}
	}
	return true, nil
}

// LowerBound returns the first index of a range of a whose element is
// not less than value, or the end of the range.
func LowerBound[T cmp.Ordered](a array.Interface[T], value T, opts ...array.Option) (int, error) {
	return LowerBoundFunc(a, value, cmp.Less[T], opts...)
}

/*
LowerBoundFunc returns the first index i of a range of a such that
less(a[i], value) is false, or the end of the range if there is none.

The range must be partitioned with respect to less(a[i], value), as
it is after sorting with less. Tombstones count as elements that
follow every live element.
*/
func LowerBoundFunc[T any](a array.Interface[T], value T, less func(x, y T) bool, opts ...array.Option) (int, error) {
	return search(a, opts, func(s array.Slot[T]) bool {
		return !s.Live || !less(s.Value, value)
	})
}

// UpperBound returns the first index of a range of a whose element is
// greater than value, or the end of the range.
func UpperBound[T cmp.Ordered](a array.Interface[T], value T, opts ...array.Option) (int, error) {
	return UpperBoundFunc(a, value, cmp.Less[T], opts...)
}

/*
UpperBoundFunc returns the first index i of a range of a such that
less(value, a[i]) is true, or the end of the range if there is none.

The range must be partitioned with respect to less(value, a[i]), as
it is after sorting with less. Tombstones count as elements that
follow every live element.
*/
func UpperBoundFunc[T any](a array.Interface[T], value T, less func(x, y T) bool, opts ...array.Option) (int, error) {
	return search(a, opts, func(s array.Slot[T]) bool {
		return !s.Live || less(value, s.Value)
	})
}

// search returns the first index of the range for which pred holds,
// assuming pred is false up to some index and true from there on.
func search[T any](a array.Interface[T], opts []array.Option, pred func(array.Slot[T]) bool) (int, error) {
	low, high, err := array.Bounds(a, opts...)
	if err != nil {
		return 0, err
	}
	for low < high {
		mid := int(uint(low+high) >> 1)
		if pred(a.Slot(mid)) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return high, nil
}
