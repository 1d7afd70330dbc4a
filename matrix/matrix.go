/*
Package matrix provides rectangular matrices built from arrays, and a
parallel matrix multiplication that computes disjoint row blocks of
the product concurrently.
*/
package matrix

import (
	"errors"
	"fmt"
	"math"

	"github.com/exascience/parray"
	"github.com/exascience/parray/array"
)

// DimensionMismatchError reports matrices whose shapes do not fit the
// requested operation.
type DimensionMismatchError struct {
	Op       string
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("matrix: %s: dimension mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
}

// ErrNilRow is returned by FromArrays for a missing row array.
var ErrNilRow = errors.New("matrix: nil row")

/*
A Matrix is a FixedArray of rows, each of which is a FixedArray of the
same length. The shape is fixed at construction.
*/
type Matrix[T parray.Number] struct {
	rows *array.FixedArray[*array.FixedArray[T]]
	cols int
}

// New returns a zero rows × cols matrix. A negative dimension is
// reported as an *array.BoundsError.
func New[T parray.Number](rows, cols int) (*Matrix[T], error) {
	for _, d := range [...]int{rows, cols} {
		if d < 0 {
			return nil, &array.BoundsError{Index: d, Low: 0, High: math.MaxInt}
		}
	}
	data := make([]*array.FixedArray[T], rows)
	for i := range data {
		data[i], _ = array.NewFixed[T](cols)
	}
	return &Matrix[T]{rows: array.FixedOf(data...), cols: cols}, nil
}

// FromRows returns a matrix holding a copy of rows. All rows must have
// the same length.
func FromRows[T parray.Number](rows [][]T) (*Matrix[T], error) {
	data := make([]*array.FixedArray[T], len(rows))
	for i, row := range rows {
		data[i] = array.FixedOf(row...)
	}
	return FromArrays(array.FixedOf(data...))
}

// FromArrays returns a matrix that uses rows as its storage. All rows
// must be non-nil and have the same length.
func FromArrays[T parray.Number](rows *array.FixedArray[*array.FixedArray[T]]) (*Matrix[T], error) {
	if rows == nil {
		return nil, ErrNilRow
	}
	cols := 0
	for i := 0; i < rows.Len(); i++ {
		row := rows.Slot(i).Value
		if row == nil {
			return nil, fmt.Errorf("%w: row %d", ErrNilRow, i)
		}
		if i == 0 {
			cols = row.Len()
		} else if row.Len() != cols {
			return nil, &DimensionMismatchError{Op: fmt.Sprintf("row %d", i), Expected: cols, Actual: row.Len()}
		}
	}
	return &Matrix[T]{rows: rows, cols: cols}, nil
}

// Dims returns the number of rows and columns of m.
func (m *Matrix[T]) Dims() (rows, cols int) {
	return m.rows.Len(), m.cols
}

func (m *Matrix[T]) row(i int) *array.FixedArray[T] {
	return m.rows.Slot(i).Value
}

// At returns the element in row i and column j.
func (m *Matrix[T]) At(i, j int) (v T, err error) {
	row, err := m.rows.Get(i)
	if err != nil {
		return
	}
	return row.Get(j)
}

// Set overwrites the element in row i and column j.
func (m *Matrix[T]) Set(i, j int, v T) error {
	row, err := m.rows.Get(i)
	if err != nil {
		return err
	}
	return row.Set(j, v)
}

// Rows returns a copy of the elements of m as a slice of rows.
func (m *Matrix[T]) Rows() [][]T {
	result := make([][]T, m.rows.Len())
	for i := range result {
		result[i] = m.row(i).Values()
	}
	return result
}

func (m *Matrix[T]) String() string {
	return fmt.Sprint(m.Rows())
}
