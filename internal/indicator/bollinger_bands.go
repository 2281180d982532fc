package indicator

import (
	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// Default Bollinger Bands parameters.
const (
	DefaultBollingerPeriod     = 20
	DefaultBollingerMultiplier = 2.0
)

// BollingerBandsResult holds the three aligned band series. Index i of
// each series corresponds to the window ending at input index period-1+i.
type BollingerBandsResult struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// BollingerBands computes volatility bands over prices. For every window
// of `period` consecutive prices the middle band is the window mean and
// the upper/lower bands sit multiplier population standard deviations
// above and below it.
func BollingerBands(prices []float64, period int, multiplier float64) (BollingerBandsResult, error) {
	if period <= 0 {
		return BollingerBandsResult{}, errors.Newf(errors.ErrCodeInvalidPeriod,
			"Bollinger Bands period must be a positive integer, got %d", period)
	}

	if multiplier <= 0 {
		return BollingerBandsResult{}, errors.Newf(errors.ErrCodeInvalidMultiplier,
			"Bollinger Bands multiplier must be positive, got %f", multiplier)
	}

	if len(prices) < period {
		return BollingerBandsResult{}, errors.NewInsufficientDataErrorf(period, len(prices), "",
			"insufficient data points for Bollinger Bands: required %d, got %d", period, len(prices))
	}

	count := len(prices) - period + 1
	bands := BollingerBandsResult{
		Upper:  make([]float64, 0, count),
		Middle: make([]float64, 0, count),
		Lower:  make([]float64, 0, count),
	}

	for i := period - 1; i < len(prices); i++ {
		window := prices[i-period+1 : i+1]
		middle := Mean(window)
		stdDev := PopulationStdDev(window)

		bands.Middle = append(bands.Middle, middle)
		bands.Upper = append(bands.Upper, middle+multiplier*stdDev)
		bands.Lower = append(bands.Lower, middle-multiplier*stdDev)
	}

	return bands, nil
}

// Latest returns the most recent upper, middle, and lower band values.
func (r BollingerBandsResult) Latest() (upper, middle, lower float64) {
	if len(r.Middle) == 0 {
		return 0, 0, 0
	}

	last := len(r.Middle) - 1

	return r.Upper[last], r.Middle[last], r.Lower[last]
}
