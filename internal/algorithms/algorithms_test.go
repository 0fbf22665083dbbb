package algorithms

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearSearch(t *testing.T) {
	data := []int{5, 3, 8, 1, 9}

	assert.Equal(t, 2, LinearSearch(data, 8))
	assert.Equal(t, 0, LinearSearch(data, 5))
	assert.Equal(t, -1, LinearSearch(data, 42))
	assert.Equal(t, -1, LinearSearch(nil, 1))
}

func TestBinarySearch(t *testing.T) {
	data := []int{1, 3, 5, 8, 9, 12}

	for i, v := range data {
		assert.Equal(t, i, BinarySearch(data, v))
	}
	assert.Equal(t, -1, BinarySearch(data, 7))
	assert.Equal(t, -1, BinarySearch(nil, 7))
}

func TestSortsAgreeAndLeaveInputAlone(t *testing.T) {
	gen := NewGenerator(1)
	data := gen.RandomList(200, 1, 100)
	original := make([]int, len(data))
	copy(original, data)

	want := make([]int, len(data))
	copy(want, data)
	sort.Ints(want)

	assert.Equal(t, want, BubbleSort(data))
	assert.Equal(t, want, MergeSort(data))
	assert.Equal(t, original, data, "inputs must not be mutated")

	assert.Empty(t, BubbleSort(nil))
	assert.Empty(t, MergeSort(nil))
}

func TestFibonacciImplementationsAgree(t *testing.T) {
	want := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, v := range want {
		assert.Equal(t, v, FibIterative(n))
		assert.Equal(t, v, FibRecursive(n))
	}
}

func TestMatrixMultiply(t *testing.T) {
	a := [][]int{{1, 2}, {3, 4}}
	b := [][]int{{5, 6}, {7, 8}}

	got, err := MatrixMultiply(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{19, 22}, {43, 50}}, got)

	_, err = MatrixMultiply(a, [][]int{{1, 2}})
	assert.Error(t, err)

	_, err = MatrixMultiply(nil, b)
	assert.Error(t, err)
}

func TestGenerators(t *testing.T) {
	gen := NewGenerator(42)

	random := gen.RandomList(100, 10, 20)
	require.Len(t, random, 100)
	for _, v := range random {
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 20)
	}

	assert.True(t, sort.IntsAreSorted(gen.SortedList(100, 1, 1000)))

	reversed := gen.ReverseSortedList(100, 1, 1000)
	assert.True(t, sort.SliceIsSorted(reversed, func(i, j int) bool {
		return reversed[i] > reversed[j]
	}))

	nearly := gen.NearlySortedList(100, 0)
	sortedCopy := make([]int, len(nearly))
	copy(sortedCopy, nearly)
	sort.Ints(sortedCopy)
	misplaced := 0
	for i := range nearly {
		if nearly[i] != sortedCopy[i] {
			misplaced++
		}
	}
	assert.LessOrEqual(t, misplaced, 20, "only a few elements may move")

	matrix := gen.SquareMatrix(5, 1, 10)
	require.Len(t, matrix, 5)
	for _, row := range matrix {
		assert.Len(t, row, 5)
	}

	// Same seed, same output.
	assert.Equal(t, NewGenerator(7).RandomList(10, 1, 100), NewGenerator(7).RandomList(10, 1, 100))
}
