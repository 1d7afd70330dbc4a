// Package parallel provides functions for expressing parallel
// algorithms over index ranges.
//
// A range is divided into an explicit list of contiguous partitions
// before any work starts, so that the assignment of indices to workers
// is reproducible. Each non-empty partition runs in its own goroutine,
// and every function returns only after all of them have terminated.
package parallel

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/exascience/parray"
	"github.com/exascience/parray/internal"
)

var (
	// ErrInvalidThreads is returned for a negative worker count.
	ErrInvalidThreads = errors.New("parallel: number of threads must be >= 1, or 0 for the default")

	// ErrInvalidRange is returned for a range with high < low or low < 0.
	ErrInvalidRange = errors.New("parallel: invalid range")
)

// A Partition is the half-open index range [Low, High) assigned to one
// worker.
type Partition struct {
	Low, High int
}

// Len returns the number of indices in p.
func (p Partition) Len() int {
	return p.High - p.Low
}

/*
WorkerFailure reports a partition whose task returned an error or
panicked.

If the task panicked, Panic holds the recovered value with stack trace
information added, and Err is nil.
*/
type WorkerFailure struct {
	Partition Partition
	Err       error
	Panic     interface{}
}

func (e *WorkerFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parallel: partition [%d, %d) failed: %v", e.Partition.Low, e.Partition.High, e.Err)
	}
	return fmt.Sprintf("parallel: partition [%d, %d) panicked: %v", e.Partition.Low, e.Partition.High, e.Panic)
}

func (e *WorkerFailure) Unwrap() error {
	return e.Err
}

var logger = slog.New(slog.DiscardHandler)

// SetLogger sets the logger that receives debug records about
// partition dispatch and worker failures. A nil logger discards them.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

/*
Partitions divides the range from low to high into n contiguous,
non-overlapping partitions that cover the range exactly once, in
ascending order. Partition sizes differ by at most one. If n exceeds
the size of the range, the surplus partitions are empty.

If n is 0, runtime.GOMAXPROCS(0) is used instead.

Partitions returns ErrInvalidThreads if n < 0, and ErrInvalidRange if
low < 0 or high < low.
*/
func Partitions(low, high, n int) ([]Partition, error) {
	if n < 0 {
		return nil, ErrInvalidThreads
	}
	if low < 0 || high < low {
		return nil, fmt.Errorf("%w: %v:%v", ErrInvalidRange, low, high)
	}
	bounds := internal.ComputeBoundaries(low, high, parray.NumThreads(n))
	parts := make([]Partition, len(bounds)-1)
	for k := range parts {
		parts[k] = Partition{bounds[k], bounds[k+1]}
	}
	return parts, nil
}

// run invokes f for each non-empty partition in its own goroutine and
// waits for all of them. Failures are stored per partition index.
func run(parts []Partition, f func(k int, p Partition) error) []error {
	errs := make([]error, len(parts))
	call := func(k int, p Partition) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &WorkerFailure{Partition: p, Panic: internal.WrapPanic(r)}
			}
		}()
		if err = f(k, p); err != nil {
			err = &WorkerFailure{Partition: p, Err: err}
		}
		return
	}
	var live []int
	for k, p := range parts {
		if p.Len() > 0 {
			live = append(live, k)
		}
	}
	if len(live) == 1 {
		k := live[0]
		errs[k] = call(k, parts[k])
		return errs
	}
	logger.Debug("dispatching partitions", "partitions", len(parts), "workers", len(live))
	var g errgroup.Group
	g.SetLimit(len(parts))
	for _, k := range live {
		g.Go(func() error {
			errs[k] = call(k, parts[k])
			return errs[k]
		})
	}
	_ = g.Wait()
	return errs
}

// leftmost returns the first non-nil error in partition order.
func leftmost(errs []error) error {
	for _, err := range errs {
		if err != nil {
			var wf *WorkerFailure
			if errors.As(err, &wf) {
				logger.Debug("worker failed", "low", wf.Partition.Low, "high", wf.Partition.High, "error", err)
			}
			return err
		}
	}
	return nil
}

// Range receives a range, a worker count n, and a range function f,
// divides the range into n partitions as described for Partitions,
// and invokes f for each non-empty partition in its own goroutine,
// covering the half-open interval from low to high, including low but
// excluding high.
//
// Range returns only when all range functions have terminated. If one
// or more invocations return an error or panic, Range returns a
// *WorkerFailure for the left-most of them.
func Range(
	low, high, n int,
	f func(low, high int) error,
) error {
	parts, err := Partitions(low, high, n)
	if err != nil {
		return err
	}
	return leftmost(run(parts, func(_ int, p Partition) error {
		return f(p.Low, p.High)
	}))
}

// RangeOr receives a range, a worker count n, and a range predicate
// function f, divides the range into n partitions as described for
// Partitions, and invokes f for each non-empty partition in its own
// goroutine.
//
// RangeOr returns only when all range predicates have terminated,
// combining all return values with the || operator, with false as the
// default return value. If one or more invocations return an error or
// panic, RangeOr returns false and a *WorkerFailure for the left-most
// of them.
func RangeOr(
	low, high, n int,
	f func(low, high int) (bool, error),
) (bool, error) {
	parts, err := Partitions(low, high, n)
	if err != nil {
		return false, err
	}
	results := make([]bool, len(parts))
	if err = leftmost(run(parts, func(k int, p Partition) (err error) {
		results[k], err = f(p.Low, p.High)
		return
	})); err != nil {
		return false, err
	}
	for _, b := range results {
		if b {
			return true, nil
		}
	}
	return false, nil
}

// Do receives zero or more thunks and executes them in parallel.
//
// Each thunk is invoked in its own goroutine, and Do returns only
// when all thunks have terminated, returning a *WorkerFailure for the
// left-most thunk that returned an error or panicked. The partition
// of such a failure is [i, i+1) for the thunk with index i.
func Do(thunks ...func() error) error {
	parts := make([]Partition, len(thunks))
	for i := range parts {
		parts[i] = Partition{i, i + 1}
	}
	return leftmost(run(parts, func(k int, _ Partition) error {
		return thunks[k]()
	}))
}
