package sort

import (
	"errors"
	"math"

	"github.com/exascience/parray"
	"github.com/exascience/parray/array"
)

// ErrNaN is returned by BucketSort for a range that holds a NaN.
var ErrNaN = errors.New("sort: NaN has no place in an ordering")

/*
BucketSort sorts a range of a in increasing order with bucket sort.

The live elements of the range are distributed over as many buckets
as there are live elements, by linear interpolation between their
minimum and maximum. Each bucket is kept sorted by insertion, and the
buckets are written back in order, followed by the tombstones of the
range. Infinities go to the first or last bucket.

BucketSort returns ErrNaN, leaving a untouched, if the range holds a
NaN.
*/
func BucketSort[T parray.Number](a array.Interface[T], opts ...array.Option) error {
	low, high, err := array.Bounds(a, opts...)
	if err != nil {
		return err
	}
	if high-low < 2 {
		return nil
	}
	defer array.Reindex(a)

	var values []T
	for i := low; i < high; i++ {
		if s := a.Slot(i); s.Live {
			values = append(values, s.Value)
		}
	}
	if len(values) > 1 {
		least, most := math.Inf(1), math.Inf(-1)
		for _, x := range values {
			switch f := float64(x); {
			case math.IsNaN(f):
				return ErrNaN
			case !math.IsInf(f, 0):
				least, most = min(least, f), max(most, f)
			}
		}
		buckets := make([][]T, len(values))
		for _, x := range values {
			k := bucketIndex(float64(x), least, most, len(buckets)-1)
			buckets[k] = insert(buckets[k], x)
		}
		values = values[:0]
		for _, b := range buckets {
			values = append(values, b...)
		}
	}

	i := low
	for _, x := range values {
		a.SetSlot(i, array.Live(x))
		i++
	}
	for ; i < high; i++ {
		a.SetSlot(i, array.Tombstone[T]())
	}
	return nil
}

// bucketIndex maps x into [0, last] by linear interpolation between
// the least and greatest finite values. The mapping is monotone in x.
func bucketIndex(x, least, most float64, last int) int {
	switch {
	case math.IsInf(x, -1):
		return 0
	case math.IsInf(x, 1):
		return last
	}
	// Halving keeps the span finite for values near ±MaxFloat64.
	span := most/2 - least/2
	if !(span > 0) {
		return 0
	}
	k := int((x/2 - least/2) / span * float64(last))
	return min(max(k, 0), last)
}

// insert appends x to the sorted bucket b and moves it into place.
func insert[T parray.Number](b []T, x T) []T {
	b = append(b, x)
	for j := len(b) - 1; j > 0 && b[j] < b[j-1]; j-- {
		b[j], b[j-1] = b[j-1], b[j]
	}
	return b
}
