// Package analytics aggregates batches of closed trades into performance
// statistics for reporting. Computation is pure; the caller owns the trade
// batch and nothing is retained between calls.
package analytics

import (
	"math"

	"github.com/quantkit-lab/quantkit/internal/indicator"
	"github.com/quantkit-lab/quantkit/internal/types"
)

// DefaultRiskFreeRate is the per-trade risk-free rate used by the Sharpe
// ratio when the caller does not supply one.
const DefaultRiskFreeRate = 0.02

// CalculatePerformanceMetrics summarizes a batch of closed trades using
// the default risk-free rate. An empty batch yields zero-valued metrics.
func CalculatePerformanceMetrics(trades []types.ClosedTrade) types.PerformanceMetrics {
	return CalculatePerformanceMetricsWithRate(trades, DefaultRiskFreeRate)
}

// CalculatePerformanceMetricsWithRate summarizes a batch of closed trades.
// Trades with positive profit/loss count as wins, negative as losses;
// break-even trades count toward the total only.
func CalculatePerformanceMetricsWithRate(trades []types.ClosedTrade, riskFreeRate float64) types.PerformanceMetrics {
	if len(trades) == 0 {
		return types.PerformanceMetrics{}
	}

	var (
		totalProfit float64
		totalWins   float64
		totalLosses float64
		winCount    int
		lossCount   int
	)

	for _, trade := range trades {
		totalProfit += trade.ProfitLoss

		switch {
		case trade.ProfitLoss > 0:
			totalWins += trade.ProfitLoss
			winCount++
		case trade.ProfitLoss < 0:
			totalLosses += -trade.ProfitLoss
			lossCount++
		}
	}

	winRate := float64(winCount) / float64(len(trades)) * 100

	profitFactor := 0.0
	if totalLosses > 0 {
		profitFactor = totalWins / totalLosses
	} else if totalWins > 0 {
		profitFactor = math.Inf(1)
	}

	averageWin := 0.0
	if winCount > 0 {
		averageWin = totalWins / float64(winCount)
	}

	averageLoss := 0.0
	if lossCount > 0 {
		averageLoss = totalLosses / float64(lossCount)
	}

	expectancy := winRate/100*averageWin - (1-winRate/100)*averageLoss

	return types.PerformanceMetrics{
		TotalTrades:      len(trades),
		ProfitableTrades: winCount,
		LosingTrades:     lossCount,
		WinRate:          winRate,
		TotalProfit:      totalProfit,
		ProfitFactor:     profitFactor,
		AverageWin:       averageWin,
		AverageLoss:      averageLoss,
		Expectancy:       expectancy,
		SharpeRatio:      sharpeRatio(trades, riskFreeRate),
		MaxDrawdown:      maxDrawdown(trades),
	}
}

// sharpeRatio computes the risk-adjusted return over per-trade returns,
// where a trade's return is its profit/loss relative to its notional
// value. Fewer than two trades, or zero return volatility, reads 0.
func sharpeRatio(trades []types.ClosedTrade, riskFreeRate float64) float64 {
	if len(trades) < 2 {
		return 0
	}

	returns := make([]float64, len(trades))
	for i, trade := range trades {
		returns[i] = trade.ProfitLoss / (trade.Quantity * trade.Price)
	}

	stdDev := indicator.PopulationStdDev(returns)
	if stdDev == 0 {
		return 0
	}

	return (indicator.Mean(returns) - riskFreeRate) / stdDev
}

// maxDrawdown walks the cumulative profit curve in input order and reports
// the largest observed decline from a running peak. Never negative.
func maxDrawdown(trades []types.ClosedTrade) float64 {
	peak := math.Inf(-1)
	runningTotal := 0.0
	drawdown := 0.0

	for _, trade := range trades {
		runningTotal += trade.ProfitLoss
		if runningTotal > peak {
			peak = runningTotal
		}

		if current := peak - runningTotal; current > drawdown {
			drawdown = current
		}
	}

	return drawdown
}
