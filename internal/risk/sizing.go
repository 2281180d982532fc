// Package risk derives order sizes and risk/reward ratios from an account
// risk budget. All functions are pure and validate their inputs before
// computing anything.
package risk

import (
	"math"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"github.com/quantkit-lab/quantkit/internal/types"
	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// DefaultRewardMultiple is the assumed reward multiple when no take-profit
// target is supplied (a 1:2 risk/reward ratio).
const DefaultRewardMultiple = 2.0

// CalculatePositionSize converts an account risk budget into an order
// size. The risk amount is balance * riskPercent/100 and the position size
// is that amount divided by the entry/stop distance. The monetary
// multiplication runs through decimals so the risk amount does not pick up
// float error before the division.
func CalculatePositionSize(params types.RiskParameters) (types.PositionSizing, error) {
	if err := params.Validate(); err != nil {
		return types.PositionSizing{}, err
	}

	priceDelta := math.Abs(params.EntryPrice - params.StopLossPrice)
	if priceDelta == 0 {
		return types.PositionSizing{}, errors.New(errors.ErrCodeInvalidParameter,
			"entry price and stop loss price must differ")
	}

	riskAmountDec := decimal.NewFromFloat(params.AccountBalance).
		Mul(decimal.NewFromFloat(params.RiskPercent)).
		Div(decimal.NewFromInt(100))
	riskAmount, _ := riskAmountDec.Float64()

	ratio, err := RiskRewardRatio(params.EntryPrice, params.StopLossPrice, params.TakeProfitPrice)
	if err != nil {
		return types.PositionSizing{}, err
	}

	return types.PositionSizing{
		PositionSize:    riskAmount / priceDelta,
		RiskAmount:      riskAmount,
		RiskRewardRatio: ratio,
	}, nil
}

// RiskRewardRatio returns reward divided by risk for the given levels.
// When no take-profit target is supplied the reward defaults to
// DefaultRewardMultiple times the risk.
func RiskRewardRatio(entryPrice, stopLossPrice float64, takeProfitPrice optional.Option[float64]) (float64, error) {
	riskDistance := math.Abs(entryPrice - stopLossPrice)
	if riskDistance == 0 {
		return 0, errors.New(errors.ErrCodeInvalidParameter,
			"entry price and stop loss price must differ")
	}

	rewardDistance := riskDistance * DefaultRewardMultiple
	if takeProfitPrice.IsSome() {
		target, err := takeProfitPrice.Take()
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidParameter, "failed to read take profit price", err)
		}

		rewardDistance = math.Abs(target - entryPrice)
	}

	return rewardDistance / riskDistance, nil
}
