package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateComplexity(t *testing.T) {
	sizes := []int{100, 200, 400, 800, 1600}

	linear := make([]float64, len(sizes))
	quadratic := make([]float64, len(sizes))
	constant := make([]float64, len(sizes))
	for i, n := range sizes {
		linear[i] = float64(n) * 3.5
		quadratic[i] = float64(n) * float64(n) * 0.01
		constant[i] = 42
	}

	got, err := EstimateComplexity(sizes, linear)
	require.NoError(t, err)
	assert.Equal(t, Linear, got)

	got, err = EstimateComplexity(sizes, quadratic)
	require.NoError(t, err)
	assert.Equal(t, Quadratic, got)

	got, err = EstimateComplexity(sizes, constant)
	require.NoError(t, err)
	assert.Equal(t, Constant, got)
}

func TestEstimateComplexityInsufficientData(t *testing.T) {
	_, err := EstimateComplexity([]int{100}, []float64{1})
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = EstimateComplexity([]int{100, 200}, []float64{1})
	assert.ErrorIs(t, err, ErrInsufficientData)

	// All-zero timings carry no signal.
	_, err = EstimateComplexity([]int{100, 200}, []float64{0, 0})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestTimerRecordsMeasurements(t *testing.T) {
	timer := NewTimer()

	elapsed := timer.TimeFunc(func() { time.Sleep(time.Millisecond) })
	assert.GreaterOrEqual(t, elapsed, time.Millisecond)

	avg, _ := timer.AverageTime(func() {}, 5)
	assert.GreaterOrEqual(t, avg, time.Duration(0))
	assert.Len(t, timer.Measurements(), 6)

	timer.Clear()
	assert.Empty(t, timer.Measurements())
}

func TestBenchmarkSizes(t *testing.T) {
	timer := NewTimer()
	var seen []int
	results := timer.BenchmarkSizes(
		func(data []int) {},
		func(size int) []int {
			seen = append(seen, size)
			return make([]int, size)
		},
		[]int{10, 20, 30}, 3,
	)

	require.Len(t, results, 3)
	assert.Equal(t, []int{10, 20, 30}, seen, "one input per size")
	for i, r := range results {
		assert.Equal(t, seen[i], r.Size)
	}
	assert.Len(t, timer.Measurements(), 9)
}

func TestGrowthTable(t *testing.T) {
	family := GrowthFamily()
	table := GrowthTable(family, 16, 1)

	require.Len(t, table.N, 16)
	require.Contains(t, table.Values, Linear)
	require.Contains(t, table.Values, Quadratic)

	assert.Equal(t, 16.0, table.Values[Linear][15])
	assert.Equal(t, 256.0, table.Values[Quadratic][15])
	assert.Equal(t, 4.0, table.Values[Logarithmic][15])
	assert.Equal(t, 1.0, table.Values[Constant][0])
}

func TestGrowthFamilyStaysFinite(t *testing.T) {
	for _, f := range GrowthFamily() {
		v := f.Eval(1000)
		assert.False(t, v != v, "%s produced NaN", f.Name)
		assert.Less(t, v, 1e300, "%s overflowed", f.Name)
	}
}

func TestCrossover(t *testing.T) {
	family := GrowthFamily()
	var linear, quadratic GrowthFunc
	for _, f := range family {
		switch f.Name {
		case Linear:
			linear = f
		case Quadratic:
			quadratic = f
		}
	}

	// n² >= n from n=1 on.
	n, ok := Crossover(linear, quadratic, 100)
	require.True(t, ok)
	assert.Equal(t, 1, n)

	// n never overtakes n² (for n >= 2); scaled linear overtakes later.
	scaled := GrowthFunc{Name: "100n", Eval: func(n float64) float64 { return 100 * n }}
	n, ok = Crossover(scaled, quadratic, 1000)
	require.True(t, ok)
	assert.Equal(t, 100, n)

	_, ok = Crossover(quadratic, linear, 50)
	assert.True(t, ok, "they are equal at n=1")
}
