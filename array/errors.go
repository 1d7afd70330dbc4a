package array

import (
	"errors"
	"fmt"
)

// ErrAbsent is returned when reading a slot that holds a tombstone.
var ErrAbsent = errors.New("array: slot is absent")

// BoundsError reports an index or range outside the half-open interval
// [Low, High).
type BoundsError struct {
	Index int
	Low   int
	High  int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("array: index %d out of bounds [%d, %d)", e.Index, e.Low, e.High)
}

// AlreadyAbsentError reports the deletion of a slot that already holds
// a tombstone.
type AlreadyAbsentError struct {
	Index int
}

func (e *AlreadyAbsentError) Error() string {
	return fmt.Sprintf("array: slot %d is already absent", e.Index)
}

// Is reports whether target is ErrAbsent.
func (e *AlreadyAbsentError) Is(target error) bool {
	return target == ErrAbsent
}

func checkIndex(i, low, high int) error {
	if i < low || i >= high {
		return &BoundsError{Index: i, Low: low, High: high}
	}
	return nil
}
