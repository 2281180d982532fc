// Package marketdata provides candle series sources for evaluation.
package marketdata

import (
	"os"

	"github.com/gocarina/gocsv"

	"github.com/quantkit-lab/quantkit/internal/types"
	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// Source provides a price series for evaluation. Implementations load
// from local files or fetch from an exchange.
type Source interface {
	Load() (types.PriceSeries, error)
}

// CSVSource loads candles from a CSV file with a header row of
// timestamp,open,high,low,close,volume. Timestamps are RFC 3339.
type CSVSource struct {
	filePath string
	symbol   string
	interval string
}

// NewCSVSource creates a CSVSource for the given file. Symbol and
// interval label the resulting series; the file itself carries neither.
func NewCSVSource(filePath, symbol, interval string) *CSVSource {
	return &CSVSource{
		filePath: filePath,
		symbol:   symbol,
		interval: interval,
	}
}

// Load reads the whole file into a validated price series.
func (s *CSVSource) Load() (types.PriceSeries, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		return types.PriceSeries{}, errors.Wrapf(errors.ErrCodeDataNotFound, err, "failed to open candle file %s", s.filePath)
	}
	defer file.Close()

	var candles []types.Candle
	if err := gocsv.UnmarshalFile(file, &candles); err != nil {
		return types.PriceSeries{}, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "failed to parse candle file %s", s.filePath)
	}

	series := types.PriceSeries{
		Symbol:   s.symbol,
		Interval: s.interval,
		Candles:  candles,
	}

	if err := series.Validate(); err != nil {
		return types.PriceSeries{}, err
	}

	return series, nil
}
