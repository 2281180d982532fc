package types

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"

	"github.com/quantkit-lab/quantkit/pkg/errors"
)

type RiskTestSuite struct {
	suite.Suite
}

func TestRiskSuite(t *testing.T) {
	suite.Run(t, new(RiskTestSuite))
}

func (suite *RiskTestSuite) TestValidateValid() {
	params := RiskParameters{
		AccountBalance: 10000,
		RiskPercent:    2,
		EntryPrice:     100,
		StopLossPrice:  95,
	}
	suite.NoError(params.Validate())
}

func (suite *RiskTestSuite) TestValidateWithTakeProfit() {
	params := RiskParameters{
		AccountBalance:  10000,
		RiskPercent:     2,
		EntryPrice:      100,
		StopLossPrice:   95,
		TakeProfitPrice: optional.Some(110.0),
	}
	suite.NoError(params.Validate())
}

func (suite *RiskTestSuite) TestValidateZeroBalance() {
	params := RiskParameters{
		AccountBalance: 0,
		RiskPercent:    2,
		EntryPrice:     100,
		StopLossPrice:  95,
	}

	err := params.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidRiskParams))
}

func (suite *RiskTestSuite) TestValidateRiskPercentBounds() {
	params := RiskParameters{
		AccountBalance: 10000,
		RiskPercent:    100,
		EntryPrice:     100,
		StopLossPrice:  95,
	}
	suite.NoError(params.Validate())

	params.RiskPercent = 100.5
	suite.Error(params.Validate())

	params.RiskPercent = -1
	suite.Error(params.Validate())
}

func (suite *RiskTestSuite) TestValidateNegativePrices() {
	params := RiskParameters{
		AccountBalance: 10000,
		RiskPercent:    2,
		EntryPrice:     -100,
		StopLossPrice:  95,
	}
	suite.Error(params.Validate())
}
