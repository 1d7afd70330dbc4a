package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBoundaries(t *testing.T) {
	assert.Equal(t, []int{2, 5, 8, 11}, ComputeBoundaries(2, 11, 3))
	assert.Equal(t, []int{0, 2, 4, 7, 9, 12}, ComputeBoundaries(0, 12, 5))
	assert.Equal(t, []int{0, 0, 0, 1, 1, 2}, ComputeBoundaries(0, 2, 5))
	assert.Equal(t, []int{4, 4}, ComputeBoundaries(4, 4, 1))
	assert.Panics(t, func() { ComputeBoundaries(3, 2, 1) })
	assert.Panics(t, func() { ComputeBoundaries(0, 2, 0) })
}

func TestWrapPanic(t *testing.T) {
	assert.Nil(t, WrapPanic(nil))
	assert.Contains(t, WrapPanic("boom"), "boom")
	_, isError := WrapPanic(errors.New("boom")).(error)
	assert.True(t, isError)
}
