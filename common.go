package parray

import (
	"fmt"
	"runtime"
)

type (
	// Integer is satisfied by all integer kinds.
	Integer interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
			~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
	}

	// Float is satisfied by all floating-point kinds.
	Float interface {
		~float32 | ~float64
	}

	// Number is satisfied by all integer and floating-point kinds.
	Number interface {
		Integer | Float
	}
)

/*
NumThreads determines the number of workers for the parallel
algorithms of this module.

If n is > 0, the return value is n.

If n is == 0, the return value is runtime.GOMAXPROCS(0).

NumThreads panics if n < 0. Functions that accept a worker count from
user programs validate it before calling NumThreads.
*/
func NumThreads(n int) int {
	switch {
	case n > 0:
		return n
	case n == 0:
		return runtime.GOMAXPROCS(0)
	default:
		panic(fmt.Sprintf("invalid number of threads: %v", n))
	}
}
