// Package sequential provides sequential implementations of the
// functions provided by the parallel package.
//
// The partitions are the same as those of the parallel package, and
// they are processed one after the other in ascending order on the
// calling goroutine. Failures are reported as *parallel.WorkerFailure
// values, so that callers can switch between both packages without
// changing their error handling.
package sequential

import (
	"github.com/exascience/parray/internal"
	"github.com/exascience/parray/parallel"
)

func call(p parallel.Partition, f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &parallel.WorkerFailure{Partition: p, Panic: internal.WrapPanic(r)}
		}
	}()
	if err = f(); err != nil {
		err = &parallel.WorkerFailure{Partition: p, Err: err}
	}
	return
}

// Range receives a range, a partition count n, and a range function f,
// divides the range into n partitions as described for
// parallel.Partitions, and invokes f for each non-empty partition
// sequentially, covering the half-open interval from low to high,
// including low but excluding high.
//
// All partitions are processed even if an earlier one fails. Range
// returns a *parallel.WorkerFailure for the left-most failure.
func Range(
	low, high, n int,
	f func(low, high int) error,
) (err error) {
	parts, err := parallel.Partitions(low, high, n)
	if err != nil {
		return err
	}
	for _, p := range parts {
		if p.Len() == 0 {
			continue
		}
		nerr := call(p, func() error { return f(p.Low, p.High) })
		if err == nil {
			err = nerr
		}
	}
	return
}

// RangeOr receives a range, a partition count n, and a range predicate
// function f, divides the range into n partitions as described for
// parallel.Partitions, and invokes f for each non-empty partition
// sequentially, combining all return values with the || operator, with
// false as the default return value.
//
// RangeOr returns false and a *parallel.WorkerFailure for the left-most
// failure, if any.
func RangeOr(
	low, high, n int,
	f func(low, high int) (bool, error),
) (result bool, err error) {
	parts, err := parallel.Partitions(low, high, n)
	if err != nil {
		return false, err
	}
	for _, p := range parts {
		if p.Len() == 0 {
			continue
		}
		nerr := call(p, func() (err error) {
			var b bool
			b, err = f(p.Low, p.High)
			result = result || b
			return
		})
		if err == nil {
			err = nerr
		}
	}
	if err != nil {
		result = false
	}
	return
}

// Do receives zero or more thunks and executes them sequentially,
// returning a *parallel.WorkerFailure for the left-most thunk that
// returned an error or panicked.
func Do(thunks ...func() error) (err error) {
	for i, thunk := range thunks {
		nerr := call(parallel.Partition{Low: i, High: i + 1}, thunk)
		if err == nil {
			err = nerr
		}
	}
	return
}
