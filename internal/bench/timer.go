// Package bench provides the week-1 analysis tools: high-precision timing of
// algorithm runs, empirical complexity estimation, and growth-rate tables.
package bench

import (
	"math"
	"time"
)

// Timer measures algorithm running times and keeps all measurements for
// later inspection.
type Timer struct {
	measurements []time.Duration
}

// NewTimer creates a new timer instance
func NewTimer() *Timer {
	return &Timer{}
}

// TimeFunc times a single execution of fn
func (t *Timer) TimeFunc(fn func()) time.Duration {
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	t.measurements = append(t.measurements, elapsed)
	return elapsed
}

// AverageTime runs fn several times and returns the mean and standard
// deviation of the execution times
func (t *Timer) AverageTime(fn func(), runs int) (time.Duration, time.Duration) {
	if runs < 1 {
		runs = 1
	}
	times := make([]float64, runs)
	for i := 0; i < runs; i++ {
		times[i] = float64(t.TimeFunc(fn))
	}

	mean := 0.0
	for _, v := range times {
		mean += v
	}
	mean /= float64(runs)

	stddev := 0.0
	if runs > 1 {
		for _, v := range times {
			stddev += (v - mean) * (v - mean)
		}
		stddev = math.Sqrt(stddev / float64(runs-1))
	}
	return time.Duration(mean), time.Duration(stddev)
}

// SizeResult is one row of a benchmark across input sizes
type SizeResult struct {
	Size    int
	Average time.Duration
	StdDev  time.Duration
}

// BenchmarkSizes benchmarks fn across different input sizes, generating an
// input per size with gen and averaging over runs executions
func (t *Timer) BenchmarkSizes(fn func(data []int), gen func(size int) []int, sizes []int, runs int) []SizeResult {
	results := make([]SizeResult, 0, len(sizes))
	for _, size := range sizes {
		data := gen(size)
		avg, stddev := t.AverageTime(func() { fn(data) }, runs)
		results = append(results, SizeResult{Size: size, Average: avg, StdDev: stddev})
	}
	return results
}

// Measurements returns all recorded execution times
func (t *Timer) Measurements() []time.Duration {
	return t.measurements
}

// Clear drops all stored measurements
func (t *Timer) Clear() {
	t.measurements = t.measurements[:0]
}
