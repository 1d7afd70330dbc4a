// Package sequence provides algorithms over whole sequences of live
// elements.
package sequence

import "github.com/exascience/parray/array"

// LongestCommonSubsequence returns a longest common subsequence of the
// live elements of a and b.
func LongestCommonSubsequence[T comparable](a, b array.Interface[T]) *array.FixedArray[T] {
	return LongestCommonSubsequenceFunc(a, b, func(x, y T) bool { return x == y })
}

/*
LongestCommonSubsequenceFunc returns a longest common subsequence of
the live elements of a and b, comparing elements with equal.

It fills the classical dynamic-programming table of common prefix
lengths in O(n·m) time and space. When several subsequences are
longest, the one found by backtracking through the table, skipping an
element of a whenever that keeps the length, is returned.
*/
func LongestCommonSubsequenceFunc[T any](a, b array.Interface[T], equal func(x, y T) bool) *array.FixedArray[T] {
	x, y := live(a), live(b)
	n, m := len(x), len(y)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			switch {
			case equal(x[i-1], y[j-1]):
				table[i][j] = table[i-1][j-1] + 1
			case table[i-1][j] >= table[i][j-1]:
				table[i][j] = table[i-1][j]
			default:
				table[i][j] = table[i][j-1]
			}
		}
	}

	result := make([]T, table[n][m])
	k := len(result)
	for i, j := n, m; k > 0; {
		switch {
		case equal(x[i-1], y[j-1]):
			k--
			result[k] = x[i-1]
			i--
			j--
		case table[i-1][j] >= table[i][j-1]:
			i--
		default:
			j--
		}
	}
	return array.FixedOf(result...)
}

func live[T any](a array.Interface[T]) []T {
	result := make([]T, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		if s := a.Slot(i); s.Live {
			result = append(result, s.Value)
		}
	}
	return result
}
