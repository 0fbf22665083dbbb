package bench

import "math"

// GrowthFunc pairs a complexity class with its defining function, for
// side-by-side growth comparisons.
type GrowthFunc struct {
	Name Complexity
	Eval func(n float64) float64
}

// GrowthFamily returns the canonical complexity functions. Exponential and
// factorial arguments are capped to keep the values finite.
func GrowthFamily() []GrowthFunc {
	return []GrowthFunc{
		{Constant, func(n float64) float64 { return 1 }},
		{Logarithmic, func(n float64) float64 {
			if n <= 0 {
				return 0
			}
			return math.Log2(n)
		}},
		{Linear, func(n float64) float64 { return n }},
		{Linearithmic, func(n float64) float64 {
			if n <= 0 {
				return 0
			}
			return n * math.Log2(n)
		}},
		{Quadratic, func(n float64) float64 { return n * n }},
		{Cubic, func(n float64) float64 { return n * n * n }},
		{Exponential, func(n float64) float64 { return math.Pow(2, math.Min(n, 50)) }},
		{"O(n!)", func(n float64) float64 { return factorial(math.Min(n, 20)) }},
	}
}

func factorial(n float64) float64 {
	result := 1.0
	for i := 2.0; i <= math.Floor(n); i++ {
		result *= i
	}
	return result
}

// Table holds growth function values evaluated over a shared range of n
type Table struct {
	N      []int
	Values map[Complexity][]float64
}

// GrowthTable evaluates every function over n = 1..maxN with the given step
func GrowthTable(funcs []GrowthFunc, maxN, step int) *Table {
	if step < 1 {
		step = 1
	}
	table := &Table{Values: make(map[Complexity][]float64, len(funcs))}
	for n := 1; n <= maxN; n += step {
		table.N = append(table.N, n)
	}
	for _, f := range funcs {
		values := make([]float64, len(table.N))
		for i, n := range table.N {
			values[i] = f.Eval(float64(n))
		}
		table.Values[f.Name] = values
	}
	return table
}

// Crossover finds the smallest n in [1, maxN] from which slow stays at or
// above fast. Returns false when slow never overtakes fast in the range.
func Crossover(fast, slow GrowthFunc, maxN int) (int, bool) {
	for n := 1; n <= maxN; n++ {
		if slow.Eval(float64(n)) >= fast.Eval(float64(n)) {
			return n, true
		}
	}
	return 0, false
}
