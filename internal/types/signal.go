package types

import "time"

// SignalDirection is the direction a single indicator votes for.
type SignalDirection string

const (
	// SignalDirectionBuy votes for entering or adding to a long position.
	SignalDirectionBuy SignalDirection = "BUY"
	// SignalDirectionSell votes for exiting or shorting.
	SignalDirectionSell SignalDirection = "SELL"
)

// OverallSignal is the aggregated decision across all indicator votes.
type OverallSignal string

const (
	OverallSignalBuy  OverallSignal = "BUY"
	OverallSignalSell OverallSignal = "SELL"
	OverallSignalHold OverallSignal = "HOLD"
)

// Signal is a single indicator's directional vote.
type Signal struct {
	// Indicator is the indicator that produced the vote.
	Indicator IndicatorType `yaml:"indicator" json:"indicator"`
	// Direction is the voted direction.
	Direction SignalDirection `yaml:"direction" json:"direction"`
	// Strength is the vote weight in [0, 1].
	Strength float64 `yaml:"strength" json:"strength"`
}

// TradeDecision is the outcome of one evaluation. It is ephemeral: callers
// own it and nothing is retained between evaluations.
type TradeDecision struct {
	// ID uniquely identifies the evaluation that produced this decision.
	ID string `yaml:"id" json:"id"`
	// Time is when the decision was produced.
	Time time.Time `yaml:"time" json:"time"`
	// Overall is the aggregated signal.
	Overall OverallSignal `yaml:"overall" json:"overall"`
	// Confidence is the average strength of the contributing signals, in [0, 1].
	Confidence float64 `yaml:"confidence" json:"confidence"`
	// Signals are the individual indicator votes behind the decision.
	Signals []Signal `yaml:"signals" json:"signals"`
}
