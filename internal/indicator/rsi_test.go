package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/quantkit-lab/quantkit/pkg/errors"
)

type RSITestSuite struct {
	suite.Suite
}

func TestRSISuite(t *testing.T) {
	suite.Run(t, new(RSITestSuite))
}

func (suite *RSITestSuite) TestOutputLength() {
	for _, n := range []int{16, 20, 50, 100} {
		prices := make([]float64, n)
		for i := range prices {
			prices[i] = 100 + float64(i%7) - float64(i%3)
		}

		values, err := RSI(prices, DefaultRSIPeriod)
		suite.NoError(err)
		suite.Len(values, n-DefaultRSIPeriod-1)
	}
}

func (suite *RSITestSuite) TestValuesBounded() {
	prices := []float64{
		44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42,
		45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28, 46.00,
		46.03, 46.41, 46.22, 45.64, 46.21, 46.25, 45.71, 46.45,
		45.78, 45.35, 44.03, 44.18, 44.22, 44.57,
	}

	values, err := RSI(prices, DefaultRSIPeriod)
	suite.NoError(err)
	suite.NotEmpty(values)

	for _, v := range values {
		suite.GreaterOrEqual(v, 0.0)
		suite.LessOrEqual(v, 100.0)
	}
}

func (suite *RSITestSuite) TestMonotonicUptrendReadsHundred() {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}

	values, err := RSI(prices, DefaultRSIPeriod)
	suite.NoError(err)
	suite.NotEmpty(values)

	// With no losses the average loss stays exactly zero.
	for _, v := range values {
		suite.Equal(100.0, v)
	}
}

func (suite *RSITestSuite) TestMonotonicDowntrendStaysLow() {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 100 - float64(i)
	}

	values, err := RSI(prices, DefaultRSIPeriod)
	suite.NoError(err)

	for _, v := range values {
		suite.Less(v, 1.0)
	}
}

func (suite *RSITestSuite) TestInsufficientData() {
	prices := make([]float64, DefaultRSIPeriod) // one short of period+1

	_, err := RSI(prices, DefaultRSIPeriod)
	suite.Error(err)
	suite.True(errors.IsInsufficientDataError(err))

	var insufficientErr *errors.InsufficientDataError
	suite.True(errors.As(err, &insufficientErr))
	suite.Equal(DefaultRSIPeriod+1, insufficientErr.Required)
	suite.Equal(DefaultRSIPeriod, insufficientErr.Actual)
}

func (suite *RSITestSuite) TestInvalidPeriod() {
	_, err := RSI([]float64{1, 2, 3}, 0)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}

func (suite *RSITestSuite) TestInputNotMutated() {
	prices := []float64{10, 12, 11, 13, 12, 14, 13, 15, 14, 16, 15, 17, 16, 18, 17, 19, 18, 20}
	original := make([]float64, len(prices))
	copy(original, prices)

	_, err := RSI(prices, DefaultRSIPeriod)
	suite.NoError(err)
	suite.Equal(original, prices)
}
