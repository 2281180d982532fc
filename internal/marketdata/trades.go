package marketdata

import (
	"os"

	"github.com/gocarina/gocsv"

	"github.com/quantkit-lab/quantkit/internal/types"
	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// LoadClosedTrades reads a ledger CSV with a header row of
// symbol,quantity,price,profit_loss,closed_at into closed trades.
func LoadClosedTrades(filePath string) ([]types.ClosedTrade, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataNotFound, err, "failed to open trade ledger %s", filePath)
	}
	defer file.Close()

	var trades []types.ClosedTrade
	if err := gocsv.UnmarshalFile(file, &trades); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "failed to parse trade ledger %s", filePath)
	}

	return trades, nil
}

// WriteCandlesCSV writes candles to a CSV file with a header row, in the
// same format CSVSource reads.
func WriteCandlesCSV(filePath string, candles []types.Candle) error {
	file, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidParameter, err, "failed to create candle file %s", filePath)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&candles, file); err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidParameter, err, "failed to write candle file %s", filePath)
	}

	return nil
}
