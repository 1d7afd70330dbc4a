package sort

import (
	"cmp"

	"github.com/exascience/parray/array"
	"github.com/exascience/parray/parallel"
)

// MergeSort sorts a range of a in increasing order. It is the
// sequential counterpart of MergeSortParallel.
func MergeSort[T cmp.Ordered](a array.Interface[T], opts ...array.Option) error {
	return MergeSortFunc(a, cmp.Less[T], opts...)
}

/*
MergeSortFunc sorts a range of a as determined by less. It is the
sequential counterpart of MergeSortParallelFunc.

Every slot of the range starts out as a sorted run of length one, and
runs are merged pairwise with the same merge loop that
MergeSortParallelFunc uses for its partitions. The sort is stable.
*/
func MergeSortFunc[T any](a array.Interface[T], less func(x, y T) bool, opts ...array.Option) error {
	return sortRange(a, less, opts, func(v view[T], low, high int) error {
		bounds := make([]int, high-low+1)
		for i := range bounds {
			bounds[i] = i
		}
		mergeRuns(v, low, high, bounds)
		return nil
	})
}

// MergeSortParallel sorts a range of a in increasing order with
// parallel merge sort, using numThreads workers.
func MergeSortParallel[T cmp.Ordered](a array.Interface[T], numThreads int, opts ...array.Option) error {
	return MergeSortParallelFunc(a, numThreads, cmp.Less[T], opts...)
}

/*
MergeSortParallelFunc sorts a range of a as determined by less with
parallel merge sort, using numThreads workers. If numThreads is 0,
runtime.GOMAXPROCS(0) workers are used.

The range is divided into numThreads partitions that are sorted
concurrently with quick sort. The sorted partitions are then merged
pairwise, in partition order, through a scratch buffer the size of the
range, and the result is written back.

If a worker fails, MergeSortParallelFunc returns a
*parallel.WorkerFailure without merging. Partitions that were sorted
before the failure stay sorted.
*/
func MergeSortParallelFunc[T any](a array.Interface[T], numThreads int, less func(x, y T) bool, opts ...array.Option) error {
	if numThreads < 0 {
		return parallel.ErrInvalidThreads
	}
	return sortRange(a, less, opts, func(v view[T], low, high int) error {
		return mergeSort(v, low, high, numThreads)
	})
}

func mergeSort[T any](v view[T], low, high, n int) error {
	parts, err := parallel.Partitions(low, high, n)
	if err != nil {
		return err
	}
	if err = parallel.Range(low, high, n, func(low, high int) error {
		quickSort(v, low, high)
		return nil
	}); err != nil {
		return err
	}
	if len(parts) == 1 {
		return nil
	}

	bounds := []int{0}
	for _, p := range parts {
		if p.Len() > 0 {
			bounds = append(bounds, p.High-low)
		}
	}
	mergeRuns(v, low, high, bounds)
	return nil
}

// mergeRuns merges the sorted runs of [low, high) delimited by bounds,
// which are offsets from low starting at 0 and ending at high-low.
// Adjacent runs are merged pairwise through a scratch buffer until one
// run is left, which is written back.
func mergeRuns[T any](v view[T], low, high int, bounds []int) {
	buf := make([]array.Slot[T], high-low)
	tmp := make([]array.Slot[T], high-low)
	for i := range buf {
		buf[i] = v.a.Slot(low + i)
	}
	less := func(x, y array.Slot[T]) bool {
		return lessSlot(v.less, x, y)
	}
	for len(bounds) > 2 {
		next := []int{0}
		r := 0
		for ; r+2 < len(bounds); r += 2 {
			sMerge(less, buf, bounds[r], bounds[r+1], bounds[r+1], bounds[r+2], tmp, bounds[r])
			next = append(next, bounds[r+2])
		}
		if r+1 < len(bounds) {
			copy(tmp[bounds[r]:bounds[r+1]], buf[bounds[r]:bounds[r+1]])
			next = append(next, bounds[r+1])
		}
		buf, tmp, bounds = tmp, buf, next
	}
	for i, s := range buf {
		v.a.SetSlot(low+i, s)
	}
}

// sMerge merges the sorted runs src[p1:r1] and src[p2:r2] into dst,
// starting at p3. Elements of the first run go first among equals.
func sMerge[T any](less func(x, y T) bool, src []T, p1, r1, p2, r2 int, dst []T, p3 int) {
	for {
		if p2 == r2 {
			copy(dst[p3:], src[p1:r1])
			return
		}

		q1 := p1
		for (p1 < r1) && !less(src[p2], src[p1]) {
			p1++
		}
		p3 += copy(dst[p3:], src[q1:p1])

		if p1 == r1 {
			copy(dst[p3:], src[p2:r2])
			return
		}

		q2 := p2
		for (p2 < r2) && less(src[p2], src[p1]) {
			p2++
		}
		p3 += copy(dst[p3:], src[q2:p2])
	}
}
