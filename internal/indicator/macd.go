package indicator

import (
	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// Default MACD periods.
const (
	DefaultMACDFastPeriod   = 12
	DefaultMACDSlowPeriod   = 26
	DefaultMACDSignalPeriod = 9
)

// MACDResult holds the three MACD output series. MACDLine and Histogram
// pair elementwise; SignalLine keeps the full pre-trim length, so its
// latest element pairs with the latest MACDLine element.
type MACDResult struct {
	MACDLine   []float64
	SignalLine []float64
	Histogram  []float64
}

// MACD computes the Moving Average Convergence Divergence of prices.
// Both EMAs are seeded series of the full input length, so the raw macd
// line is the elementwise difference fastEMA - slowEMA. The signal line is
// the EMA of the raw macd line over signalPeriod. The returned macd line
// drops its first signalPeriod-1 elements so that it pairs with the tail
// of the signal line; the histogram is that pairwise difference.
func MACD(prices []float64, fastPeriod, slowPeriod, signalPeriod int) (MACDResult, error) {
	if fastPeriod <= 0 || slowPeriod <= 0 || signalPeriod <= 0 {
		return MACDResult{}, errors.Newf(errors.ErrCodeInvalidPeriod,
			"MACD periods must be positive integers, got fast=%d slow=%d signal=%d", fastPeriod, slowPeriod, signalPeriod)
	}

	if fastPeriod >= slowPeriod {
		return MACDResult{}, errors.Newf(errors.ErrCodeInvalidPeriod,
			"MACD fast period %d must be less than slow period %d", fastPeriod, slowPeriod)
	}

	if len(prices) < slowPeriod {
		return MACDResult{}, errors.NewInsufficientDataErrorf(slowPeriod, len(prices), "",
			"insufficient data for MACD calculation: need at least %d prices, got %d", slowPeriod, len(prices))
	}

	fastEMA, err := EMA(prices, fastPeriod)
	if err != nil {
		return MACDResult{}, err
	}

	slowEMA, err := EMA(prices, slowPeriod)
	if err != nil {
		return MACDResult{}, err
	}

	macdLine := make([]float64, len(prices))
	for i := range prices {
		macdLine[i] = fastEMA[i] - slowEMA[i]
	}

	signalLine, err := EMA(macdLine, signalPeriod)
	if err != nil {
		return MACDResult{}, err
	}

	trimmed := macdLine[signalPeriod-1:]

	histogram := make([]float64, len(trimmed))
	for i := range trimmed {
		histogram[i] = trimmed[i] - signalLine[i]
	}

	return MACDResult{
		MACDLine:   trimmed,
		SignalLine: signalLine,
		Histogram:  histogram,
	}, nil
}

// Latest returns the most recent macd line and signal line values.
func (r MACDResult) Latest() (macd, signal float64) {
	if len(r.MACDLine) == 0 || len(r.SignalLine) == 0 {
		return 0, 0
	}

	return r.MACDLine[len(r.MACDLine)-1], r.SignalLine[len(r.SignalLine)-1]
}
