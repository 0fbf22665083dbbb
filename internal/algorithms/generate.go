package algorithms

import (
	"math/rand"
	"sort"
)

// Generator produces test inputs for algorithm analysis. A fixed seed gives
// reproducible inputs across runs.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator creates a generator seeded with seed
func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// RandomList generates size random integers in [minVal, maxVal]
func (g *Generator) RandomList(size, minVal, maxVal int) []int {
	data := make([]int, size)
	for i := range data {
		data[i] = minVal + g.rnd.Intn(maxVal-minVal+1)
	}
	return data
}

// SortedList generates a sorted list of random integers
func (g *Generator) SortedList(size, minVal, maxVal int) []int {
	data := g.RandomList(size, minVal, maxVal)
	sort.Ints(data)
	return data
}

// ReverseSortedList generates a reverse-sorted list of random integers
func (g *Generator) ReverseSortedList(size, minVal, maxVal int) []int {
	data := g.SortedList(size, minVal, maxVal)
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
	return data
}

// NearlySortedList generates 1..size with a few random swaps. A swaps value
// of 0 defaults to 5% of the size (at least one swap).
func (g *Generator) NearlySortedList(size, swaps int) []int {
	if swaps <= 0 {
		swaps = size / 20
		if swaps < 1 {
			swaps = 1
		}
	}
	data := make([]int, size)
	for i := range data {
		data[i] = i + 1
	}
	for s := 0; s < swaps; s++ {
		i, j := g.rnd.Intn(size), g.rnd.Intn(size)
		data[i], data[j] = data[j], data[i]
	}
	return data
}

// SquareMatrix generates a size x size matrix of random integers
func (g *Generator) SquareMatrix(size, minVal, maxVal int) [][]int {
	matrix := make([][]int, size)
	for i := range matrix {
		matrix[i] = make([]int, size)
		for j := range matrix[i] {
			matrix[i][j] = minVal + g.rnd.Intn(maxVal-minVal+1)
		}
	}
	return matrix
}
