// Package trading composes the evaluator with a trading provider so a
// decision can be turned into a live order in one step.
package trading

import (
	"context"

	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/quantkit-lab/quantkit/internal/engine"
	"github.com/quantkit-lab/quantkit/internal/logger"
	tradingprovider "github.com/quantkit-lab/quantkit/internal/trading/provider"
	"github.com/quantkit-lab/quantkit/internal/types"
)

// TradingSystem evaluates price series and executes the resulting
// decisions through a trading provider.
type TradingSystem struct {
	evaluator *engine.Evaluator
	provider  tradingprovider.Provider
	logger    *logger.Logger
}

// NewTradingSystem creates a TradingSystem with the given evaluator and
// trading provider.
func NewTradingSystem(evaluator *engine.Evaluator, provider tradingprovider.Provider, log *logger.Logger) *TradingSystem {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &TradingSystem{
		evaluator: evaluator,
		provider:  provider,
		logger:    log,
	}
}

// EvaluateAndExecute evaluates the series and, when the decision is
// actionable, places a market order sized from the risk parameters. A
// HOLD decision returns without touching the provider.
func (s *TradingSystem) EvaluateAndExecute(ctx context.Context, series types.PriceSeries, riskParams types.RiskParameters) (engine.Evaluation, optional.Option[types.OrderConfirmation], error) {
	evaluation, err := s.evaluator.Evaluate(series, optional.Some(riskParams))
	if err != nil {
		return engine.Evaluation{}, optional.None[types.OrderConfirmation](), err
	}

	if evaluation.Decision.Overall == types.OverallSignalHold || evaluation.Sizing.IsNone() {
		s.logger.Info("no actionable decision, skipping execution",
			zap.String("id", evaluation.Decision.ID),
			zap.String("symbol", series.Symbol),
			zap.String("overall", string(evaluation.Decision.Overall)),
		)

		return evaluation, optional.None[types.OrderConfirmation](), nil
	}

	side := types.OrderSideBuy
	if evaluation.Decision.Overall == types.OverallSignalSell {
		side = types.OrderSideSell
	}

	sizing := evaluation.Sizing.Unwrap()

	confirmation, err := s.provider.PlaceOrder(ctx, types.ExecuteOrder{
		Symbol:   series.Symbol,
		Side:     side,
		Type:     types.OrderTypeMarket,
		Quantity: sizing.PositionSize,
	})
	if err != nil {
		return engine.Evaluation{}, optional.None[types.OrderConfirmation](), err
	}

	s.logger.Info("order executed",
		zap.String("id", evaluation.Decision.ID),
		zap.String("symbol", series.Symbol),
		zap.String("side", string(side)),
		zap.Float64("quantity", sizing.PositionSize),
		zap.Int64("order_id", confirmation.OrderID),
		zap.String("status", confirmation.Status),
	)

	return evaluation, optional.Some(confirmation), nil
}
