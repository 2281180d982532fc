package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/quantkit-lab/quantkit/internal/analytics"
	"github.com/quantkit-lab/quantkit/internal/engine"
	"github.com/quantkit-lab/quantkit/internal/exchange"
	"github.com/quantkit-lab/quantkit/internal/logger"
	"github.com/quantkit-lab/quantkit/internal/marketdata"
	"github.com/quantkit-lab/quantkit/internal/types"
)

// analyzeAction loads candles from a CSV file, runs a full evaluation,
// and prints the decision (and position sizing, when risk flags are set)
// as YAML.
func analyzeAction(ctx context.Context, cmd *cli.Command) error {
	config := engine.DefaultConfig()

	if configPath := cmd.String("config"); configPath != "" {
		loaded, err := engine.LoadConfig(configPath)
		if err != nil {
			return err
		}

		config = loaded
	}

	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync() //nolint:errcheck

	evaluator, err := engine.NewEvaluator(config, appLogger)
	if err != nil {
		return err
	}

	source := marketdata.NewCSVSource(cmd.String("candles"), cmd.String("symbol"), cmd.String("interval"))

	series, err := source.Load()
	if err != nil {
		return err
	}

	riskParams := optional.None[types.RiskParameters]()

	if balance := cmd.Float("balance"); balance > 0 {
		entry := cmd.Float("entry")
		if entry == 0 {
			entry, err = series.LastClose()
			if err != nil {
				return err
			}
		}

		takeProfit := optional.None[float64]()
		if tp := cmd.Float("take-profit"); tp > 0 {
			takeProfit = optional.Some(tp)
		}

		riskParams = optional.Some(types.RiskParameters{
			AccountBalance:  balance,
			RiskPercent:     cmd.Float("risk-percent"),
			EntryPrice:      entry,
			StopLossPrice:   cmd.Float("stop-loss"),
			TakeProfitPrice: takeProfit,
		})
	}

	evaluation, err := evaluator.Evaluate(series, riskParams)
	if err != nil {
		return err
	}

	output := struct {
		Decision types.TradeDecision   `yaml:"decision"`
		Sizing   *types.PositionSizing `yaml:"sizing,omitempty"`
	}{
		Decision: evaluation.Decision,
	}

	if evaluation.Sizing.IsSome() {
		sizing := evaluation.Sizing.Unwrap()
		output.Sizing = &sizing
	}

	encoded, err := yaml.Marshal(output)
	if err != nil {
		return fmt.Errorf("failed to encode evaluation: %w", err)
	}

	fmt.Print(string(encoded))

	return nil
}

// reportAction computes performance metrics from a closed-trade ledger
// CSV and writes a YAML report.
func reportAction(ctx context.Context, cmd *cli.Command) error {
	trades, err := marketdata.LoadClosedTrades(cmd.String("trades"))
	if err != nil {
		return err
	}

	metrics := analytics.CalculatePerformanceMetricsWithRate(trades, cmd.Float("risk-free"))

	report := types.PerformanceReport{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Symbol:    cmd.String("symbol"),
		Metrics:   metrics,
	}

	if outputPath := cmd.String("output"); outputPath != "" {
		if err := types.WritePerformanceReport(outputPath, report); err != nil {
			return err
		}

		fmt.Printf("Report written to %s\n", outputPath)

		return nil
	}

	encoded, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	fmt.Print(string(encoded))

	return nil
}

// fetchAction downloads recent klines from an exchange and writes them
// as a candle CSV usable by the analyze command. API credentials come
// from QUANTKIT_API_KEY and QUANTKIT_API_SECRET; kline endpoints are
// public, so empty credentials are fine.
func fetchAction(ctx context.Context, cmd *cli.Command) error {
	client, err := exchange.NewClient(
		exchange.Exchange(cmd.String("exchange")),
		os.Getenv("QUANTKIT_API_KEY"),
		os.Getenv("QUANTKIT_API_SECRET"),
	)
	if err != nil {
		return err
	}

	series, err := client.GetKlines(ctx, cmd.String("symbol"), cmd.String("interval"), int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	outputPath := cmd.String("output")
	if err := marketdata.WriteCandlesCSV(outputPath, series.Candles); err != nil {
		return err
	}

	fmt.Printf("Wrote %d candles to %s\n", len(series.Candles), outputPath)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "quantkit",
		Usage: "Indicator-driven trading signal analysis",
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "Evaluate indicators over a candle CSV and print the trading decision",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "candles",
						Aliases:  []string{"c"},
						Usage:    "Path to the candle CSV file",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "symbol",
						Aliases: []string{"s"},
						Usage:   "Trading pair symbol",
						Value:   "BTCUSDT",
					},
					&cli.StringFlag{
						Name:    "interval",
						Aliases: []string{"i"},
						Usage:   "Candle interval",
						Value:   "1h",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to an indicator config YAML file",
					},
					&cli.FloatFlag{
						Name:  "balance",
						Usage: "Account balance; enables position sizing when set",
					},
					&cli.FloatFlag{
						Name:  "risk-percent",
						Usage: "Percent of balance to risk per trade",
						Value: 2,
					},
					&cli.FloatFlag{
						Name:  "entry",
						Usage: "Entry price; defaults to the last close",
					},
					&cli.FloatFlag{
						Name:  "stop-loss",
						Usage: "Stop loss price; required for position sizing",
					},
					&cli.FloatFlag{
						Name:  "take-profit",
						Usage: "Take profit price",
					},
				},
				Action: analyzeAction,
			},
			{
				Name:  "report",
				Usage: "Compute performance metrics from a closed-trade ledger CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "trades",
						Aliases:  []string{"t"},
						Usage:    "Path to the closed-trade ledger CSV",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the YAML report to this path instead of stdout",
					},
					&cli.StringFlag{
						Name:    "symbol",
						Aliases: []string{"s"},
						Usage:   "Trading pair the ledger belongs to",
					},
					&cli.FloatFlag{
						Name:  "risk-free",
						Usage: "Annual risk-free rate used for the Sharpe ratio",
						Value: analytics.DefaultRiskFreeRate,
					},
				},
				Action: reportAction,
			},
			{
				Name:  "fetch",
				Usage: "Download recent klines from an exchange into a candle CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "exchange",
						Aliases: []string{"e"},
						Usage:   "Exchange to fetch from (binance, coinbase, bybit)",
						Value:   string(exchange.ExchangeBinance),
					},
					&cli.StringFlag{
						Name:     "symbol",
						Aliases:  []string{"s"},
						Usage:    "Trading pair symbol",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "interval",
						Aliases: []string{"i"},
						Usage:   "Candle interval",
						Value:   "1h",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Usage:   "Number of candles to fetch",
						Value:   100,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "Path to the candle CSV to write",
						Required: true,
					},
				},
				Action: fetchAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
