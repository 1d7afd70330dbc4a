package order_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/parray/array"
	"github.com/exascience/parray/order"
)

func greater(x, y int) bool { return x > y }

func TestIsOrdered(t *testing.T) {
	tests := []struct {
		name     string
		a        array.Interface[int]
		less     func(x, y int) bool
		opts     []array.Option
		expected bool
	}{
		{"increasing", array.FixedOf(1, 2, 5, 6), nil, nil, true},
		{"decreasing", array.FixedOf(4, 3, 2, 1), nil, nil, false},
		{"sub-range", array.FixedOf(6, 1, 2, 3, 4, 5), nil, []array.Option{array.Within(1, 6)}, true},
		{"custom order", array.FixedOf(0, -1, -2, -3, -4, 4), greater, []array.Option{array.Within(1, 5)}, true},
		{"custom order violated", array.FixedOf(0, -1, -2, -3, -4, 4), greater, nil, false},
		{"empty", array.FixedOf[int](), nil, nil, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var (
				ordered bool
				err     error
			)
			if test.less == nil {
				ordered, err = order.IsOrdered(test.a, test.opts...)
			} else {
				ordered, err = order.IsOrderedFunc(test.a, test.less, test.opts...)
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, ordered)
		})
	}
}

func TestIsOrderedSkipsTombstones(t *testing.T) {
	a := array.NewDynamic(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	require.NoError(t, a.Delete(0))
	ordered, err := order.IsOrdered[int](a)
	require.NoError(t, err)
	assert.True(t, ordered)

	b := array.NewDynamic(1, 9, 5, 7)
	require.NoError(t, b.Delete(1))
	ordered, err = order.IsOrdered[int](b)
	require.NoError(t, err)
	assert.True(t, ordered)

	c := array.NewDynamic(5, 9, 1, 7)
	require.NoError(t, c.Delete(1))
	ordered, err = order.IsOrdered[int](c)
	require.NoError(t, err)
	assert.True(t, ordered, "elements separated by a tombstone are not compared")

	d := array.NewDynamic(5, 9, 1, 7, 3)
	require.NoError(t, d.Delete(1))
	ordered, err = order.IsOrdered[int](d)
	require.NoError(t, err)
	assert.False(t, ordered)

	ordered, err = order.IsOrderedFunc[int](c, greater, array.Within(2, 4))
	require.NoError(t, err)
	assert.False(t, ordered)
}

func TestUpperBound(t *testing.T) {
	descending := []int{7, 6, 6, 6, 6, 5, 4, 3}
	tests := []struct {
		values   []int
		value    int
		less     func(x, y int) bool
		opts     []array.Option
		expected int
	}{
		{[]int{3, 3, 3}, 3, nil, nil, 3},
		{[]int{4, 4, 5, 6}, 4, nil, []array.Option{array.Until(3)}, 2},
		{[]int{6, 6, 7, 8, 9}, 5, nil, []array.Option{array.Within(2, 4)}, 2},
		{[]int{3, 4, 4, 6}, 5, nil, []array.Option{array.Within(1, 3)}, 3},
		{descending, 6, greater, nil, 5},
		{descending, 2, greater, []array.Option{array.From(2)}, 8},
		{descending, 9, greater, []array.Option{array.Within(3, 7)}, 3},
		{descending, 6, greater, []array.Option{array.Until(3)}, 3},
	}
	for i, test := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			a := array.FixedOf(test.values...)
			var (
				index int
				err   error
			)
			if test.less == nil {
				index, err = order.UpperBound[int](a, test.value, test.opts...)
			} else {
				index, err = order.UpperBoundFunc[int](a, test.value, test.less, test.opts...)
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, index)
		})
	}
}

func TestLowerBound(t *testing.T) {
	descending := []int{7, 6, 6, 6, 6, 5, 4, 3}
	tests := []struct {
		values   []int
		value    int
		less     func(x, y int) bool
		opts     []array.Option
		expected int
	}{
		{[]int{3, 3, 3}, 3, nil, []array.Option{array.From(1)}, 1},
		{[]int{4, 4, 4, 4, 5, 6}, 5, nil, []array.Option{array.Until(3)}, 3},
		{[]int{6, 6, 7, 8, 9}, 5, nil, []array.Option{array.Until(3)}, 0},
		{[]int{3, 4, 4, 4}, 5, nil, nil, 4},
		{descending, 5, greater, nil, 5},
		{descending, 2, greater, []array.Option{array.From(4)}, 8},
		{descending, 9, greater, []array.Option{array.Until(5)}, 0},
		{descending, 6, greater, []array.Option{array.Until(3)}, 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			a := array.FixedOf(test.values...)
			var (
				index int
				err   error
			)
			if test.less == nil {
				index, err = order.LowerBound[int](a, test.value, test.opts...)
			} else {
				index, err = order.LowerBoundFunc[int](a, test.value, test.less, test.opts...)
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, index)
		})
	}
}

func TestBoundsBracketEqualElements(t *testing.T) {
	a := array.FixedOf(1, 2, 2, 2, 3, 5, 5, 8)
	for v := 0; v <= 9; v++ {
		lower, err := order.LowerBound[int](a, v)
		require.NoError(t, err)
		upper, err := order.UpperBound[int](a, v)
		require.NoError(t, err)
		assert.LessOrEqual(t, lower, upper)
		for i := lower; i < upper; i++ {
			x, err := a.Get(i)
			require.NoError(t, err)
			assert.Equal(t, v, x)
		}
	}
}

func TestBoundsOverTrailingTombstones(t *testing.T) {
	a := array.NewDynamic(1, 3, 3, 7, 9)
	require.NoError(t, a.Delete(4))
	require.NoError(t, a.Delete(3))

	index, err := order.LowerBound[int](a, 3, array.Until(a.Len()))
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	index, err = order.UpperBound[int](a, 3, array.Until(a.Len()))
	require.NoError(t, err)
	assert.Equal(t, 3, index)

	index, err = order.LowerBound[int](a, 8, array.Until(a.Len()))
	require.NoError(t, err)
	assert.Equal(t, 3, index)
}

func TestRangeErrors(t *testing.T) {
	a := array.FixedOf(1, 2, 3)
	var be *array.BoundsError
	_, err := order.IsOrdered[int](a, array.Within(2, 1))
	assert.ErrorAs(t, err, &be)
	_, err = order.LowerBound[int](a, 1, array.Until(5))
	assert.ErrorAs(t, err, &be)
	_, err = order.UpperBound[int](a, 1, array.From(-1))
	assert.ErrorAs(t, err, &be)
}

func ExampleLowerBound() {
	a := array.FixedOf(10, 20, 20, 30)
	lower, _ := order.LowerBound[int](a, 20)
	upper, _ := order.UpperBound[int](a, 20)
	fmt.Println(lower, upper)

	// Output:
	// 1 3
}
