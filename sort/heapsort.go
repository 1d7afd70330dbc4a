package sort

import (
	"cmp"

	"github.com/exascience/parray/array"
)

// HeapSort sorts a range of a in increasing order with heap sort.
func HeapSort[T cmp.Ordered](a array.Interface[T], opts ...array.Option) error {
	return HeapSortFunc(a, cmp.Less[T], opts...)
}

// HeapSortFunc sorts a range of a as determined by less with heap sort.
func HeapSortFunc[T any](a array.Interface[T], less func(x, y T) bool, opts ...array.Option) error {
	return sortRange(a, less, opts, serial(heapSort[T]))
}

func heapSort[T any](v view[T], low, high int) {
	n := high - low
	for root := n/2 - 1; root >= 0; root-- {
		siftDown(v, low, root, n)
	}
	for end := n - 1; end > 0; end-- {
		v.Swap(low, low+end)
		siftDown(v, low, 0, end)
	}
}

// siftDown restores the max-heap property of the heap of n slots that
// starts at low, below root.
func siftDown[T any](v view[T], low, root, n int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && v.Less(low+child, low+child+1) {
			child++
		}
		if !v.Less(low+root, low+child) {
			return
		}
		v.Swap(low+root, low+child)
		root = child
	}
}
