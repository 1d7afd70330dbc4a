package sort

import (
	"cmp"

	"github.com/exascience/parray/array"
)

// Ranges of at least ninetherGrainSize slots pick their pivot with a
// pseudo median of nine instead of a median of three.
const ninetherGrainSize = 40

// QuickSort sorts a range of a in increasing order with quick sort.
func QuickSort[T cmp.Ordered](a array.Interface[T], opts ...array.Option) error {
	return QuickSortFunc(a, cmp.Less[T], opts...)
}

/*
QuickSortFunc sorts a range of a as determined by less with quick
sort.

The pivot is the median of the first, middle, and last slot, or a
pseudo median of nine for larger ranges, so the result only depends on
the input and less.
*/
func QuickSortFunc[T any](a array.Interface[T], less func(x, y T) bool, opts ...array.Option) error {
	return sortRange(a, less, opts, serial(quickSort[T]))
}

func medianOfThree[T any](data view[T], l, m, r int) int {
	if data.Less(l, m) {
		if data.Less(m, r) {
			return m
		} else if data.Less(l, r) {
			return r
		}
	} else if data.Less(r, m) {
		return m
	} else if data.Less(r, l) {
		return r
	}
	return l
}

func pseudoMedianOfNine[T any](data view[T], index, size int) int {
	offset := size / 8
	return medianOfThree(data,
		medianOfThree(data, index, index+offset, index+offset*2),
		medianOfThree(data, index+offset*3, index+offset*4, index+offset*5),
		medianOfThree(data, index+offset*6, index+offset*7, index+size-1),
	)
}

// partition moves the pivot to index and splits the range around it.
// It returns the final position of the pivot.
func partition[T any](data view[T], index, size int) int {
	var m int
	if size < ninetherGrainSize {
		m = medianOfThree(data, index, index+size/2, index+size-1)
	} else {
		m = pseudoMedianOfNine(data, index, size)
	}
	if m > index {
		data.Swap(index, m)
	}
	i, j := index, index+size
outer:
	for {
		for {
			j--
			if !data.Less(index, j) {
				break
			}
		}
		for {
			if i == j {
				break outer
			}
			i++
			if !data.Less(i, index) {
				break
			}
		}
		if i == j {
			break outer
		}
		data.Swap(i, j)
	}
	data.Swap(j, index)
	return j
}

// quickSort recurses into the smaller side and loops on the larger
// one, which bounds the recursion depth by log(high-low).
func quickSort[T any](data view[T], low, high int) {
	for high-low > 1 {
		j := partition(data, low, high-low)
		if j-low < high-j-1 {
			quickSort(data, low, j)
			low = j + 1
		} else {
			quickSort(data, j+1, high)
			high = j
		}
	}
}
