package bench

import (
	"fmt"
	"math"
)

// Complexity is an estimated asymptotic class
type Complexity string

const (
	Constant     Complexity = "O(1)"
	Logarithmic  Complexity = "O(log n)"
	Linear       Complexity = "O(n)"
	Linearithmic Complexity = "O(n log n)"
	Quadratic    Complexity = "O(n²)"
	Cubic        Complexity = "O(n³)"
	Exponential  Complexity = "O(2ⁿ)"
)

// ErrInsufficientData is returned when the series is too short to classify
var ErrInsufficientData = fmt.Errorf("insufficient data to estimate complexity")

// EstimateComplexity classifies the empirical growth of an algorithm from
// measured (size, time) pairs by comparing consecutive time ratios against
// the ratios the common complexity classes would produce.
func EstimateComplexity(sizes []int, times []float64) (Complexity, error) {
	if len(sizes) != len(times) || len(sizes) < 2 {
		return "", ErrInsufficientData
	}

	var ratioSum, sizeRatioSum float64
	count := 0
	for i := 1; i < len(sizes); i++ {
		if times[i-1] <= 0 {
			continue
		}
		ratioSum += times[i] / times[i-1]
		sizeRatioSum += float64(sizes[i]) / float64(sizes[i-1])
		count++
	}
	if count == 0 {
		return "", ErrInsufficientData
	}

	avgRatio := ratioSum / float64(count)
	avgSizeRatio := sizeRatioSum / float64(count)

	switch {
	case math.Abs(avgRatio-1) < 0.1:
		return Constant, nil
	case math.Abs(avgRatio-avgSizeRatio) < 0.2:
		return Linear, nil
	case math.Abs(avgRatio-avgSizeRatio*avgSizeRatio) < 0.3*avgSizeRatio:
		return Quadratic, nil
	case math.Abs(avgRatio-avgSizeRatio*math.Log2(avgSizeRatio+1)) < 0.3:
		return Linearithmic, nil
	default:
		return Complexity(fmt.Sprintf("unrecognized growth (time ratio %.2f per %.2fx size)", avgRatio, avgSizeRatio)), nil
	}
}
