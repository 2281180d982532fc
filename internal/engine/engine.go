// Package engine orchestrates a full evaluation pass: indicators over a
// price series, signal aggregation, and position sizing for actionable
// decisions.
package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/quantkit-lab/quantkit/internal/indicator"
	"github.com/quantkit-lab/quantkit/internal/logger"
	"github.com/quantkit-lab/quantkit/internal/risk"
	"github.com/quantkit-lab/quantkit/internal/strategy"
	"github.com/quantkit-lab/quantkit/internal/types"
	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// Evaluation is the outcome of one evaluator pass. Sizing is only present
// when the decision is actionable (BUY or SELL) and risk parameters were
// supplied.
type Evaluation struct {
	// Decision is the aggregated trading decision, stamped with a unique
	// ID and the evaluation time.
	Decision types.TradeDecision
	// Snapshot is the set of indicator readings the decision was based on.
	Snapshot strategy.IndicatorSnapshot
	// Sizing is the computed position size for actionable decisions.
	Sizing optional.Option[types.PositionSizing]
}

// Evaluator computes indicators and trading decisions over price series.
// It holds configuration only; evaluations are stateless and independent.
type Evaluator struct {
	config Config
	logger *logger.Logger
}

// NewEvaluator creates an Evaluator with the given config.
func NewEvaluator(config Config, log *logger.Logger) (*Evaluator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Evaluator{
		config: config,
		logger: log,
	}, nil
}

// Evaluate runs all indicators over the series, aggregates their votes
// into a decision, and sizes the position when the decision is actionable.
// The riskParams account balance and entry/stop prices drive the sizing;
// pass None to skip sizing entirely.
func (e *Evaluator) Evaluate(series types.PriceSeries, riskParams optional.Option[types.RiskParameters]) (Evaluation, error) {
	if err := series.Validate(); err != nil {
		return Evaluation{}, err
	}

	snapshot, err := e.snapshot(series)
	if err != nil {
		return Evaluation{}, err
	}

	decision := strategy.GenerateTradingSignal(snapshot)
	decision.ID = uuid.NewString()
	decision.Time = time.Now().UTC()

	evaluation := Evaluation{
		Decision: decision,
		Snapshot: snapshot,
	}

	if decision.Overall != types.OverallSignalHold && riskParams.IsSome() {
		params := riskParams.Unwrap()
		sizing, err := risk.CalculatePositionSize(params)
		if err != nil {
			return Evaluation{}, err
		}
		evaluation.Sizing = optional.Some(sizing)
	}

	e.logger.Info("evaluation complete",
		zap.String("id", decision.ID),
		zap.String("symbol", series.Symbol),
		zap.String("overall", string(decision.Overall)),
		zap.Float64("confidence", decision.Confidence),
		zap.Int("signals", len(decision.Signals)),
		zap.Float64("rsi", snapshot.RSI),
		zap.Float64("macd", snapshot.MACDLine),
		zap.Float64("price", snapshot.Price),
	)

	return evaluation, nil
}

// snapshot computes the latest reading of every indicator over the series.
func (e *Evaluator) snapshot(series types.PriceSeries) (strategy.IndicatorSnapshot, error) {
	closes := series.Closes()

	price, err := series.LastClose()
	if err != nil {
		return strategy.IndicatorSnapshot{}, err
	}

	rsiValues, err := indicator.RSI(closes, e.config.RSIPeriod)
	if err != nil {
		return strategy.IndicatorSnapshot{}, err
	}
	if len(rsiValues) == 0 {
		return strategy.IndicatorSnapshot{}, errors.NewInsufficientDataErrorf(e.config.RSIPeriod+2, len(closes), series.Symbol,
			"insufficient data for an RSI reading on %s: need at least %d prices, got %d", series.Symbol, e.config.RSIPeriod+2, len(closes))
	}

	macdResult, err := indicator.MACD(closes, e.config.MACDFastPeriod, e.config.MACDSlowPeriod, e.config.MACDSignalPeriod)
	if err != nil {
		return strategy.IndicatorSnapshot{}, err
	}

	bands, err := indicator.BollingerBands(closes, e.config.BollingerPeriod, e.config.BollingerMultiplier)
	if err != nil {
		return strategy.IndicatorSnapshot{}, err
	}

	macdLine, macdSignal := macdResult.Latest()
	upper, _, lower := bands.Latest()

	return strategy.IndicatorSnapshot{
		RSI:            rsiValues[len(rsiValues)-1],
		MACDLine:       macdLine,
		MACDSignal:     macdSignal,
		BollingerUpper: upper,
		BollingerLower: lower,
		Price:          price,
	}, nil
}
