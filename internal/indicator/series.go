// Package indicator implements technical-analysis calculations over
// caller-supplied price series. Every function is pure: inputs are never
// mutated and nothing is cached between calls, so independent calls are
// safe to run in parallel.
package indicator

import (
	"math"

	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// EMA computes the exponential moving average of prices with smoothing
// factor k = 2/(period+1). The first output element is seeded with the
// first price, so the output has the same length as the input.
func EMA(prices []float64, period int) ([]float64, error) {
	if len(prices) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "cannot compute EMA of an empty series")
	}

	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "EMA period must be a positive integer, got %d", period)
	}

	k := 2.0 / float64(period+1)
	ema := make([]float64, len(prices))
	ema[0] = prices[0]

	for i := 1; i < len(prices); i++ {
		ema[i] = prices[i]*k + ema[i-1]*(1-k)
	}

	return ema, nil
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// PopulationStdDev returns the population standard deviation of values
// (dividing by N, not N-1), or 0 for an empty slice.
func PopulationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	mean := Mean(values)

	squaredDiffSum := 0.0
	for _, v := range values {
		diff := v - mean
		squaredDiffSum += diff * diff
	}

	return math.Sqrt(squaredDiffSum / float64(len(values)))
}
