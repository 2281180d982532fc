package indicator

import (
	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// DefaultRSIPeriod is the conventional RSI lookback.
const DefaultRSIPeriod = 14

// RSI computes the Relative Strength Index over prices using Wilder's
// smoothing. The first `period` deltas seed the initial average gain and
// loss with a simple average; every later delta updates them as
// avg = (avg*(period-1) + current) / period. An RSI value is emitted per
// smoothed delta, so the output length is len(prices) - period - 1.
// Values are bounded to [0, 100]; a series with no losses reads 100.
func RSI(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "RSI period must be a positive integer, got %d", period)
	}

	required := period + 1
	if len(prices) < required {
		return nil, errors.NewInsufficientDataErrorf(required, len(prices), "",
			"insufficient data for RSI calculation: need at least %d prices, got %d", required, len(prices))
	}

	// Seed averages with a simple average of the first `period` deltas.
	gains := 0.0
	losses := 0.0

	for i := 1; i <= period; i++ {
		difference := prices[i] - prices[i-1]
		if difference >= 0 {
			gains += difference
		} else {
			losses -= difference
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	values := make([]float64, 0, len(prices)-period-1)

	for i := period + 1; i < len(prices); i++ {
		difference := prices[i] - prices[i-1]

		currentGain := 0.0
		currentLoss := 0.0

		if difference >= 0 {
			currentGain = difference
		} else {
			currentLoss = -difference
		}

		avgGain = (avgGain*float64(period-1) + currentGain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + currentLoss) / float64(period)

		if avgLoss == 0 {
			values = append(values, 100)
			continue
		}

		rs := avgGain / avgLoss
		values = append(values, 100-(100/(1+rs)))
	}

	return values, nil
}
