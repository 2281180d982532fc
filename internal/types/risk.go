package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"

	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// RiskParameters describes the caller's account risk budget for one trade.
type RiskParameters struct {
	// AccountBalance is the total account balance in quote currency.
	AccountBalance float64 `yaml:"account_balance" json:"account_balance" validate:"required,gt=0"`
	// RiskPercent is the percentage of the balance risked on this trade, in (0, 100].
	RiskPercent float64 `yaml:"risk_percent" json:"risk_percent" validate:"required,gt=0,lte=100"`
	// EntryPrice is the intended entry price.
	EntryPrice float64 `yaml:"entry_price" json:"entry_price" validate:"required,gt=0"`
	// StopLossPrice is the price at which the trade is abandoned.
	StopLossPrice float64 `yaml:"stop_loss_price" json:"stop_loss_price" validate:"required,gt=0"`
	// TakeProfitPrice is the optional target price. When absent, a 1:2
	// risk/reward ratio is assumed.
	TakeProfitPrice optional.Option[float64] `yaml:"take_profit_price,omitempty" json:"take_profit_price,omitempty"`
}

// Validate validates the RiskParameters struct.
func (p *RiskParameters) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRiskParams, "invalid risk parameters", err)
	}

	return nil
}

// PositionSizing is the derived order size for a validated RiskParameters.
type PositionSizing struct {
	// PositionSize is the order size in base currency units.
	PositionSize float64 `yaml:"position_size" json:"position_size"`
	// RiskAmount is the amount of quote currency at risk.
	RiskAmount float64 `yaml:"risk_amount" json:"risk_amount"`
	// RiskRewardRatio is reward divided by risk.
	RiskRewardRatio float64 `yaml:"risk_reward_ratio" json:"risk_reward_ratio"`
}
