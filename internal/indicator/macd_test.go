package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/quantkit-lab/quantkit/pkg/errors"
)

type MACDTestSuite struct {
	suite.Suite
}

func TestMACDSuite(t *testing.T) {
	suite.Run(t, new(MACDTestSuite))
}

func (suite *MACDTestSuite) makePrices(n int) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = 100 + float64(i%11) - float64(i%5)
	}

	return prices
}

func (suite *MACDTestSuite) TestSeriesAlignment() {
	n := 60
	prices := suite.makePrices(n)

	result, err := MACD(prices, DefaultMACDFastPeriod, DefaultMACDSlowPeriod, DefaultMACDSignalPeriod)
	suite.NoError(err)

	// The macd line drops its first signal-1 elements; the signal line
	// keeps the full length; the histogram pairs with the macd line.
	suite.Len(result.MACDLine, n-DefaultMACDSignalPeriod+1)
	suite.Len(result.SignalLine, n)
	suite.Len(result.Histogram, len(result.MACDLine))
}

func (suite *MACDTestSuite) TestHistogramIsPairwiseDifference() {
	prices := suite.makePrices(80)

	result, err := MACD(prices, DefaultMACDFastPeriod, DefaultMACDSlowPeriod, DefaultMACDSignalPeriod)
	suite.NoError(err)

	for i := range result.MACDLine {
		suite.InDelta(result.MACDLine[i]-result.SignalLine[i], result.Histogram[i], 1e-12)
	}
}

func (suite *MACDTestSuite) TestMACDLineMatchesEMADifference() {
	prices := suite.makePrices(50)

	fastEMA, err := EMA(prices, DefaultMACDFastPeriod)
	suite.NoError(err)
	slowEMA, err := EMA(prices, DefaultMACDSlowPeriod)
	suite.NoError(err)

	result, err := MACD(prices, DefaultMACDFastPeriod, DefaultMACDSlowPeriod, DefaultMACDSignalPeriod)
	suite.NoError(err)

	// The latest macd line element is the latest fast/slow EMA difference.
	last := len(prices) - 1
	suite.InDelta(fastEMA[last]-slowEMA[last], result.MACDLine[len(result.MACDLine)-1], 1e-12)
}

func (suite *MACDTestSuite) TestConstantSeriesIsFlat() {
	prices := make([]float64, 40)
	for i := range prices {
		prices[i] = 250
	}

	result, err := MACD(prices, DefaultMACDFastPeriod, DefaultMACDSlowPeriod, DefaultMACDSignalPeriod)
	suite.NoError(err)

	for i := range result.MACDLine {
		suite.InDelta(0, result.MACDLine[i], 1e-12)
		suite.InDelta(0, result.Histogram[i], 1e-12)
	}
}

func (suite *MACDTestSuite) TestLatest() {
	prices := suite.makePrices(60)

	result, err := MACD(prices, DefaultMACDFastPeriod, DefaultMACDSlowPeriod, DefaultMACDSignalPeriod)
	suite.NoError(err)

	macd, signal := result.Latest()
	suite.Equal(result.MACDLine[len(result.MACDLine)-1], macd)
	suite.Equal(result.SignalLine[len(result.SignalLine)-1], signal)
}

func (suite *MACDTestSuite) TestLatestEmptyResult() {
	macd, signal := MACDResult{}.Latest()
	suite.Equal(0.0, macd)
	suite.Equal(0.0, signal)
}

func (suite *MACDTestSuite) TestInsufficientData() {
	prices := suite.makePrices(DefaultMACDSlowPeriod - 1)

	_, err := MACD(prices, DefaultMACDFastPeriod, DefaultMACDSlowPeriod, DefaultMACDSignalPeriod)
	suite.Error(err)
	suite.True(errors.IsInsufficientDataError(err))

	var insufficientErr *errors.InsufficientDataError
	suite.True(errors.As(err, &insufficientErr))
	suite.Equal(DefaultMACDSlowPeriod, insufficientErr.Required)
}

func (suite *MACDTestSuite) TestInvalidPeriods() {
	prices := suite.makePrices(60)

	_, err := MACD(prices, 0, 26, 9)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))

	// Fast must be strictly below slow.
	_, err = MACD(prices, 26, 26, 9)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}
