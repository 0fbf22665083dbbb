// Package algorithms collects the week-1 reference algorithms with known
// time complexities, used by the bench command to demonstrate growth rates.
package algorithms

import "fmt"

// LinearSearch scans data for target. O(n).
// Returns the index of target or -1 if not found.
func LinearSearch(data []int, target int) int {
	for i, value := range data {
		if value == target {
			return i
		}
	}
	return -1
}

// BinarySearch searches sorted data for target. O(log n).
// Returns the index of target or -1 if not found.
func BinarySearch(data []int, target int) int {
	left, right := 0, len(data)-1
	for left <= right {
		mid := (left + right) / 2
		switch {
		case data[mid] == target:
			return mid
		case data[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return -1
}

// BubbleSort returns a sorted copy of data. O(n²).
func BubbleSort(data []int) []int {
	result := make([]int, len(data))
	copy(result, data)
	n := len(result)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if result[j] > result[j+1] {
				result[j], result[j+1] = result[j+1], result[j]
			}
		}
	}
	return result
}

// MergeSort returns a sorted copy of data. O(n log n).
func MergeSort(data []int) []int {
	if len(data) <= 1 {
		result := make([]int, len(data))
		copy(result, data)
		return result
	}
	mid := len(data) / 2
	return merge(MergeSort(data[:mid]), MergeSort(data[mid:]))
}

func merge(left, right []int) []int {
	result := make([]int, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	result = append(result, left[i:]...)
	result = append(result, right[j:]...)
	return result
}

// FibRecursive computes the nth Fibonacci number naively. O(2ⁿ).
func FibRecursive(n int) int {
	if n <= 1 {
		return n
	}
	return FibRecursive(n-1) + FibRecursive(n-2)
}

// FibIterative computes the nth Fibonacci number iteratively. O(n).
func FibIterative(n int) int {
	if n <= 1 {
		return n
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// MatrixMultiply multiplies two matrices naively. O(n³).
func MatrixMultiply(a, b [][]int) ([][]int, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("empty matrix")
	}
	rowsA, colsA := len(a), len(a[0])
	rowsB, colsB := len(b), len(b[0])
	if colsA != rowsB {
		return nil, fmt.Errorf("matrix dimensions don't match for multiplication: %dx%d * %dx%d",
			rowsA, colsA, rowsB, colsB)
	}

	result := make([][]int, rowsA)
	for i := range result {
		result[i] = make([]int, colsB)
		for j := 0; j < colsB; j++ {
			for k := 0; k < colsA; k++ {
				result[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return result, nil
}
