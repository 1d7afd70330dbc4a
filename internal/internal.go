package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// ComputeBoundaries divides the range from low to high into n
// contiguous batches whose sizes differ by at most one. It returns the
// n+1 batch boundaries; batch k covers [bounds[k], bounds[k+1]).
// Batches beyond the size of the range are empty.
func ComputeBoundaries(low, high, n int) (bounds []int) {
	if (low < 0) || (high < low) {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	if n < 1 {
		panic(fmt.Sprintf("invalid number of batches: %v", n))
	}
	size := high - low
	bounds = make([]int, n+1)
	for k := 0; k <= n; k++ {
		bounds[k] = low + k*size/n
	}
	return
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
