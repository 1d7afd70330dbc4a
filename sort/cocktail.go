package sort

import (
	"cmp"

	"github.com/exascience/parray/array"
)

// CocktailShakerSort sorts a range of a in increasing order with
// cocktail shaker sort.
func CocktailShakerSort[T cmp.Ordered](a array.Interface[T], opts ...array.Option) error {
	return CocktailShakerSortFunc(a, cmp.Less[T], opts...)
}

// CocktailShakerSortFunc sorts a range of a as determined by less with
// cocktail shaker sort.
func CocktailShakerSortFunc[T any](a array.Interface[T], less func(x, y T) bool, opts ...array.Option) error {
	return sortRange(a, less, opts, serial(cocktailShakerSort[T]))
}

// cocktailShakerSort alternates forward and backward bubble passes.
// Each pass shrinks the unsorted window to the position of its last
// swap.
func cocktailShakerSort[T any](v view[T], low, high int) {
	lo, hi := low, high-1
	for lo < hi {
		swapped, last := false, lo
		for i := lo; i < hi; i++ {
			if v.Less(i+1, i) {
				v.Swap(i, i+1)
				swapped, last = true, i
			}
		}
		if !swapped {
			return
		}
		hi = last
		swapped, last = false, hi
		for i := hi; i > lo; i-- {
			if v.Less(i, i-1) {
				v.Swap(i-1, i)
				swapped, last = true, i
			}
		}
		if !swapped {
			return
		}
		lo = last
	}
}
