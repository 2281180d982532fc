// Package strategy converts indicator readings into directional trade
// signals with fixed per-indicator confidence weights.
package strategy

import (
	"github.com/quantkit-lab/quantkit/internal/types"
)

// Signal thresholds and weights. RSI carries the most weight, Bollinger
// deviation the least.
const (
	RSIOversold   = 30.0
	RSIOverbought = 70.0

	rsiStrength       = 0.8
	macdStrength      = 0.7
	bollingerStrength = 0.6
)

// IndicatorSnapshot carries the latest indicator readings for one
// evaluation alongside the current price.
type IndicatorSnapshot struct {
	// RSI is the latest RSI value.
	RSI float64
	// MACDLine and MACDSignal are the latest macd/signal line pair.
	MACDLine   float64
	MACDSignal float64
	// BollingerUpper and BollingerLower are the latest band values.
	BollingerUpper float64
	BollingerLower float64
	// Price is the current price compared against the bands.
	Price float64
}

// GenerateTradingSignal evaluates the snapshot against fixed thresholds
// and aggregates the individual votes into one decision. Each indicator
// contributes at most one signal:
//
//   - RSI below 30 votes BUY, above 70 votes SELL (strength 0.8)
//   - macd line above signal line and positive votes BUY; below and
//     negative votes SELL (strength 0.7)
//   - price below the lower band votes BUY, above the upper band votes
//     SELL (strength 0.6)
//
// The overall signal follows the strictly larger summed strength, or HOLD
// on a tie. Confidence is the mean strength of the produced votes, 0 when
// no indicator votes.
func GenerateTradingSignal(snapshot IndicatorSnapshot) types.TradeDecision {
	signals := make([]types.Signal, 0, 3)

	if snapshot.RSI < RSIOversold {
		signals = append(signals, types.Signal{
			Indicator: types.IndicatorTypeRSI,
			Direction: types.SignalDirectionBuy,
			Strength:  rsiStrength,
		})
	} else if snapshot.RSI > RSIOverbought {
		signals = append(signals, types.Signal{
			Indicator: types.IndicatorTypeRSI,
			Direction: types.SignalDirectionSell,
			Strength:  rsiStrength,
		})
	}

	if snapshot.MACDLine > snapshot.MACDSignal && snapshot.MACDLine > 0 {
		signals = append(signals, types.Signal{
			Indicator: types.IndicatorTypeMACD,
			Direction: types.SignalDirectionBuy,
			Strength:  macdStrength,
		})
	} else if snapshot.MACDLine < snapshot.MACDSignal && snapshot.MACDLine < 0 {
		signals = append(signals, types.Signal{
			Indicator: types.IndicatorTypeMACD,
			Direction: types.SignalDirectionSell,
			Strength:  macdStrength,
		})
	}

	if snapshot.Price < snapshot.BollingerLower {
		signals = append(signals, types.Signal{
			Indicator: types.IndicatorTypeBollingerBands,
			Direction: types.SignalDirectionBuy,
			Strength:  bollingerStrength,
		})
	} else if snapshot.Price > snapshot.BollingerUpper {
		signals = append(signals, types.Signal{
			Indicator: types.IndicatorTypeBollingerBands,
			Direction: types.SignalDirectionSell,
			Strength:  bollingerStrength,
		})
	}

	return types.TradeDecision{
		Overall:    overallSignal(signals),
		Confidence: confidence(signals),
		Signals:    signals,
	}
}

func overallSignal(signals []types.Signal) types.OverallSignal {
	buyScore := 0.0
	sellScore := 0.0

	for _, signal := range signals {
		switch signal.Direction {
		case types.SignalDirectionBuy:
			buyScore += signal.Strength
		case types.SignalDirectionSell:
			sellScore += signal.Strength
		}
	}

	switch {
	case buyScore > sellScore:
		return types.OverallSignalBuy
	case sellScore > buyScore:
		return types.OverallSignalSell
	default:
		return types.OverallSignalHold
	}
}

func confidence(signals []types.Signal) float64 {
	if len(signals) == 0 {
		return 0
	}

	total := 0.0
	for _, signal := range signals {
		total += signal.Strength
	}

	return total / float64(len(signals))
}
