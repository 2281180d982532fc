package types

import (
	"time"

	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// Candle represents a single OHLCV bar.
type Candle struct {
	// Timestamp is the open time of the bar.
	Timestamp time.Time `yaml:"timestamp" json:"timestamp" csv:"timestamp"`
	Open      float64   `yaml:"open" json:"open" csv:"open"`
	High      float64   `yaml:"high" json:"high" csv:"high"`
	Low       float64   `yaml:"low" json:"low" csv:"low"`
	Close     float64   `yaml:"close" json:"close" csv:"close"`
	Volume    float64   `yaml:"volume" json:"volume" csv:"volume"`
}

// PriceSeries is a chronological sequence of candles, oldest first.
type PriceSeries struct {
	// Symbol is the trading pair the series belongs to.
	Symbol string `yaml:"symbol" json:"symbol"`
	// Interval is the bar interval (e.g. "1h").
	Interval string `yaml:"interval" json:"interval"`
	// Candles holds the bars in chronological order.
	Candles []Candle `yaml:"candles" json:"candles"`
}

// Closes returns the closing prices of the series in order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Candles))
	for i, candle := range s.Candles {
		closes[i] = candle.Close
	}

	return closes
}

// LastClose returns the most recent closing price.
// Returns an error if the series is empty.
func (s *PriceSeries) LastClose() (float64, error) {
	if len(s.Candles) == 0 {
		return 0, errors.Newf(errors.ErrCodeDataNotFound, "price series for %s is empty", s.Symbol)
	}

	return s.Candles[len(s.Candles)-1].Close, nil
}

// Validate checks the series invariant: timestamps strictly increasing.
func (s *PriceSeries) Validate() error {
	for i := 1; i < len(s.Candles); i++ {
		if !s.Candles[i].Timestamp.After(s.Candles[i-1].Timestamp) {
			return errors.Newf(errors.ErrCodeInvalidParameter,
				"price series for %s is not strictly chronological at index %d", s.Symbol, i)
		}
	}

	return nil
}
