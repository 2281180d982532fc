package trading

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/quantkit-lab/quantkit/internal/engine"
	"github.com/quantkit-lab/quantkit/internal/logger"
	"github.com/quantkit-lab/quantkit/internal/types"
	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// fakeProvider records placed orders and returns a canned confirmation.
type fakeProvider struct {
	placed       []types.ExecuteOrder
	confirmation types.OrderConfirmation
	err          error
}

func (f *fakeProvider) PlaceOrder(_ context.Context, order types.ExecuteOrder) (types.OrderConfirmation, error) {
	f.placed = append(f.placed, order)

	return f.confirmation, f.err
}

func (f *fakeProvider) CancelOrder(_ context.Context, _ string, _ int64) error {
	return nil
}

func (f *fakeProvider) OpenOrders(_ context.Context, _ string) ([]types.OrderConfirmation, error) {
	return nil, nil
}

func (f *fakeProvider) AccountBalance(_ context.Context, _ string) (float64, error) {
	return 0, nil
}

type TradingSystemTestSuite struct {
	suite.Suite
	provider *fakeProvider
	system   *TradingSystem
}

func TestTradingSystemSuite(t *testing.T) {
	suite.Run(t, new(TradingSystemTestSuite))
}

func (suite *TradingSystemTestSuite) SetupTest() {
	evaluator, err := engine.NewEvaluator(engine.DefaultConfig(), logger.NewNopLogger())
	suite.Require().NoError(err)

	suite.provider = &fakeProvider{
		confirmation: types.OrderConfirmation{
			OrderID: 99,
			Symbol:  "BTCUSDT",
			Status:  "FILLED",
		},
	}
	suite.system = NewTradingSystem(evaluator, suite.provider, nil)
}

// buySeries is flat at 100 with a sharp final drop, which reliably
// produces a BUY decision under default indicator parameters.
func buySeries() types.PriceSeries {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]types.Candle, 40)

	for i := range candles {
		price := 100.0
		if i == len(candles)-1 {
			price = 50
		}

		candles[i] = types.Candle{
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			Open:      price,
			High:      price,
			Low:       price,
			Close:     price,
			Volume:    1,
		}
	}

	return types.PriceSeries{Symbol: "BTCUSDT", Interval: "1h", Candles: candles}
}

func (suite *TradingSystemTestSuite) TestEvaluateAndExecutePlacesMarketOrder() {
	riskParams := types.RiskParameters{
		AccountBalance: 10000,
		RiskPercent:    2,
		EntryPrice:     100,
		StopLossPrice:  95,
	}

	evaluation, confirmation, err := suite.system.EvaluateAndExecute(context.Background(), buySeries(), riskParams)

	suite.Require().NoError(err)
	suite.Equal(types.OverallSignalBuy, evaluation.Decision.Overall)
	suite.Require().True(confirmation.IsSome())
	suite.Equal(int64(99), confirmation.Unwrap().OrderID)

	suite.Require().Len(suite.provider.placed, 1)
	order := suite.provider.placed[0]
	suite.Equal("BTCUSDT", order.Symbol)
	suite.Equal(types.OrderSideBuy, order.Side)
	suite.Equal(types.OrderTypeMarket, order.Type)
	suite.InDelta(40, order.Quantity, 1e-9)
}

func (suite *TradingSystemTestSuite) TestEvaluateAndExecuteProviderError() {
	suite.provider.err = errors.New(errors.ErrCodeOrderFailed, "rejected")

	riskParams := types.RiskParameters{
		AccountBalance: 10000,
		RiskPercent:    2,
		EntryPrice:     100,
		StopLossPrice:  95,
	}

	_, _, err := suite.system.EvaluateAndExecute(context.Background(), buySeries(), riskParams)

	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeOrderFailed))
}

func (suite *TradingSystemTestSuite) TestEvaluateAndExecuteInvalidRiskParams() {
	_, _, err := suite.system.EvaluateAndExecute(context.Background(), buySeries(), types.RiskParameters{})

	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidRiskParams))
	suite.Empty(suite.provider.placed)
}
