// Package parray provides array containers with tombstone-based deletion,
// together with sequential and parallel algorithms that operate on them.
//
// The containers keep every slot addressable by index. Deleting from a
// DynamicArray leaves a tombstone behind instead of shifting the remaining
// elements, and all range algorithms in this module skip or relocate
// tombstones without breaking index arithmetic.
//
// Parray provides the following subpackages:
//
// parray/array provides FixedArray and DynamicArray, the Interface shared by
// both, and the range options accepted by every range algorithm.
//
// parray/order provides ordering checks and lower/upper bound searches.
//
// parray/sort provides sequential sorting algorithms (heap, bucket,
// counting, cocktail shaker, quick, brick, merge) as well as parallel merge
// sort and parallel brick sort.
//
// parray/parallel partitions index ranges into contiguous chunks and runs a
// task per chunk in its own goroutine, joining all of them before it
// returns.
//
// parray/sequential provides the same functions as parray/parallel, executed
// sequentially, for the serial counterparts of the parallel algorithms and
// for testing.
//
// parray/matrix provides a parallel row-blocked matrix multiplication.
//
// parray/sequence provides the longest common subsequence of two arrays.
package parray
