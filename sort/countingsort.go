package sort

import (
	"errors"
	"fmt"

	"github.com/exascience/parray"
	"github.com/exascience/parray/array"
)

// MaxCountingSpan bounds the difference between the largest and the
// smallest element accepted by CountingSort.
const MaxCountingSpan = 1 << 26

// ErrSpanTooLarge is returned by CountingSort when the live elements
// span more than MaxCountingSpan values.
var ErrSpanTooLarge = errors.New("sort: value span too large for counting sort")

/*
CountingSort returns a new FixedArray holding the live elements of a
range of a in increasing order. The input is not modified.

Tombstones cannot be represented in the count space, so the result is
always compacted.
*/
func CountingSort[T parray.Integer](a array.Interface[T], opts ...array.Option) (*array.FixedArray[T], error) {
	low, high, err := array.Bounds(a, opts...)
	if err != nil {
		return nil, err
	}
	var least, most T
	n := 0
	for i := low; i < high; i++ {
		s := a.Slot(i)
		if !s.Live {
			continue
		}
		if n == 0 || s.Value < least {
			least = s.Value
		}
		if n == 0 || s.Value > most {
			most = s.Value
		}
		n++
	}
	if n == 0 {
		return array.FixedOf[T](), nil
	}

	span := offset(most, least)
	if span > MaxCountingSpan {
		return nil, fmt.Errorf("%w: %v", ErrSpanTooLarge, span)
	}
	counts := make([]int, span+1)
	for i := low; i < high; i++ {
		if s := a.Slot(i); s.Live {
			counts[offset(s.Value, least)]++
		}
	}
	result := make([]T, 0, n)
	for k, c := range counts {
		for ; c > 0; c-- {
			result = append(result, least+T(k))
		}
	}
	return array.FixedOf(result...), nil
}

// offset returns x-least for x >= least without overflowing T.
func offset[T parray.Integer](x, least T) uint64 {
	var zero T
	if signed := zero-1 < zero; signed {
		return uint64(int64(x) - int64(least))
	}
	return uint64(x) - uint64(least)
}
