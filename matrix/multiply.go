package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/exascience/parray"
	"github.com/exascience/parray/array"
	"github.com/exascience/parray/parallel"
)

/*
MultiplyParallel returns the product of a and b as a new matrix,
computed by numThreads workers. If numThreads is 0,
runtime.GOMAXPROCS(0) workers are used.

The rows of the result are divided into numThreads contiguous blocks,
and each worker computes its block with the standard inner-product
kernel. The inputs are only read, and each result row is written by
exactly one worker. The result does not depend on numThreads.

MultiplyParallel returns a *DimensionMismatchError if the number of
columns of a differs from the number of rows of b.
*/
func MultiplyParallel[T parray.Number](a, b *Matrix[T], numThreads int) (*Matrix[T], error) {
	if numThreads < 0 {
		return nil, parallel.ErrInvalidThreads
	}
	rows, inner := a.Dims()
	bRows, cols := b.Dims()
	if inner != bRows {
		return nil, &DimensionMismatchError{Op: "multiply", Expected: inner, Actual: bRows}
	}
	c, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	err = parallel.Range(0, rows, numThreads, func(low, high int) error {
		for i := low; i < high; i++ {
			multiplyRow(a.row(i), b, c.row(i), inner, cols)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func multiplyRow[T parray.Number](aRow *array.FixedArray[T], b *Matrix[T], cRow *array.FixedArray[T], inner, cols int) {
	for j := 0; j < cols; j++ {
		var sum T
		for k := 0; k < inner; k++ {
			sum += aRow.Slot(k).Value * b.row(k).Slot(j).Value
		}
		cRow.SetSlot(j, array.Live(sum))
	}
}

/*
MultiplyDense returns the product of two gonum dense matrices as a new
dense matrix, computed by numThreads workers in row blocks like
MultiplyParallel.

The accumulation order of every element is fixed, so the result is
bit-identical for every numThreads.
*/
func MultiplyDense(a, b *mat.Dense, numThreads int) (*mat.Dense, error) {
	if numThreads < 0 {
		return nil, parallel.ErrInvalidThreads
	}
	rows, inner := a.Dims()
	bRows, cols := b.Dims()
	if inner != bRows {
		return nil, &DimensionMismatchError{Op: "multiply", Expected: inner, Actual: bRows}
	}
	if rows == 0 || cols == 0 {
		return &mat.Dense{}, nil
	}
	c := mat.NewDense(rows, cols, nil)
	err := parallel.Range(0, rows, numThreads, func(low, high int) error {
		for i := low; i < high; i++ {
			aRow := a.RawRowView(i)
			cRow := c.RawRowView(i)
			for k, x := range aRow {
				bRow := b.RawRowView(k)
				for j := range cRow {
					cRow[j] += x * bRow[j]
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
