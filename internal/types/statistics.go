package types

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PerformanceMetrics aggregates a batch of closed trades into reporting
// statistics. All values are derived; the struct is never mutated after
// computation.
type PerformanceMetrics struct {
	// Count of all trades.
	TotalTrades int `yaml:"total_trades"`
	// Count of trades with positive profit/loss.
	ProfitableTrades int `yaml:"profitable_trades"`
	// Count of trades with negative profit/loss.
	LosingTrades int `yaml:"losing_trades"`
	// Win rate as a percentage in [0, 100].
	WinRate float64 `yaml:"win_rate"`
	// Sum of profit/loss across all trades.
	TotalProfit float64 `yaml:"total_profit"`
	// Gross wins divided by gross losses. +Inf when there are wins but no
	// losses, 0 when there are neither.
	ProfitFactor float64 `yaml:"profit_factor"`
	// Mean profit of the winning trades, 0 when there are none.
	AverageWin float64 `yaml:"average_win"`
	// Mean loss of the losing trades (positive number), 0 when there are none.
	AverageLoss float64 `yaml:"average_loss"`
	// Expected value per trade given the observed win rate.
	Expectancy float64 `yaml:"expectancy"`
	// Risk-adjusted return over per-trade returns.
	SharpeRatio float64 `yaml:"sharpe_ratio"`
	// Largest peak-to-trough decline of the cumulative profit curve.
	MaxDrawdown float64 `yaml:"max_drawdown"`
}

// PerformanceReport wraps metrics with run metadata for file output.
type PerformanceReport struct {
	// ID is the unique identifier for this report.
	ID string `yaml:"id" json:"id"`
	// Timestamp is when the report was generated.
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	// Symbol of the trading pair, when the batch belongs to one.
	Symbol string `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	// Metrics are the computed performance statistics.
	Metrics PerformanceMetrics `yaml:"metrics" json:"metrics"`
}

// WritePerformanceReport writes a performance report to the given path as YAML.
func WritePerformanceReport(path string, report PerformanceReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal performance report to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write performance report to file: %w", err)
	}

	return nil
}
