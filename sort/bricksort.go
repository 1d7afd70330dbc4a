package sort

import (
	"cmp"

	"github.com/exascience/parray/array"
	"github.com/exascience/parray/parallel"
	"github.com/exascience/parray/sequential"
)

// BrickSort sorts a range of a in increasing order with brick sort,
// also known as odd-even transposition sort.
func BrickSort[T cmp.Ordered](a array.Interface[T], opts ...array.Option) error {
	return BrickSortFunc(a, cmp.Less[T], opts...)
}

// BrickSortFunc sorts a range of a as determined by less with brick
// sort. Rounds of an odd and an even phase repeat until a round makes
// no swap.
func BrickSortFunc[T any](a array.Interface[T], less func(x, y T) bool, opts ...array.Option) error {
	return sortRange(a, less, opts, func(v view[T], low, high int) error {
		return brickRounds(v, low, high, 1, sequential.RangeOr)
	})
}

// BrickSortParallel sorts a range of a in increasing order with
// parallel brick sort, using numThreads workers.
func BrickSortParallel[T cmp.Ordered](a array.Interface[T], numThreads int, opts ...array.Option) error {
	return BrickSortParallelFunc(a, numThreads, cmp.Less[T], opts...)
}

/*
BrickSortParallelFunc sorts a range of a as determined by less with
parallel brick sort, using numThreads workers. If numThreads is 0,
runtime.GOMAXPROCS(0) workers are used.

The range is first divided into numThreads partitions that are brick
sorted concurrently. Then whole-range rounds of an odd and an even
phase follow until a round makes no swap. The pairs of one phase are
disjoint, and are divided among the workers. Each phase ends with a
join barrier.

If a worker fails, BrickSortParallelFunc returns a
*parallel.WorkerFailure and the range is left partially sorted.
*/
func BrickSortParallelFunc[T any](a array.Interface[T], numThreads int, less func(x, y T) bool, opts ...array.Option) error {
	if numThreads < 0 {
		return parallel.ErrInvalidThreads
	}
	return sortRange(a, less, opts, func(v view[T], low, high int) error {
		if err := parallel.Range(low, high, numThreads, func(low, high int) error {
			return brickRounds(v, low, high, 1, sequential.RangeOr)
		}); err != nil {
			return err
		}
		return brickRounds(v, low, high, numThreads, parallel.RangeOr)
	})
}

type orRanger func(low, high, n int, f func(low, high int) (bool, error)) (bool, error)

// brickRounds runs odd-even rounds over [low, high) until a round makes
// no swap. The pairs of each phase are dispatched through rangeOr.
func brickRounds[T any](v view[T], low, high, n int, rangeOr orRanger) error {
	for {
		var swapped bool
		for _, first := range [2]int{low + 1, low} {
			pairs := (high - first) / 2
			if pairs <= 0 {
				continue
			}
			s, err := rangeOr(0, pairs, n, func(k, l int) (bool, error) {
				return transpose(v, first, k, l), nil
			})
			if err != nil {
				return err
			}
			swapped = swapped || s
		}
		if !swapped {
			return nil
		}
	}
}

// transpose compare-swaps the pairs (i, i+1) for i = first+2*k with
// low <= k < high, and reports whether it swapped any of them.
func transpose[T any](v view[T], first, low, high int) (swapped bool) {
	for k := low; k < high; k++ {
		i := first + 2*k
		if v.Less(i+1, i) {
			v.Swap(i, i+1)
			swapped = true
		}
	}
	return
}
