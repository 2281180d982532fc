package types

import "time"

// ClosedTrade is a settled trade, the unit of input for performance analytics.
type ClosedTrade struct {
	// Symbol of the trading pair.
	Symbol string `yaml:"symbol" json:"symbol" csv:"symbol"`
	// Quantity is the executed size in base currency units.
	Quantity float64 `yaml:"quantity" json:"quantity" csv:"quantity"`
	// Price is the executed price.
	Price float64 `yaml:"price" json:"price" csv:"price"`
	// ProfitLoss is the realized profit (positive) or loss (negative).
	ProfitLoss float64 `yaml:"profit_loss" json:"profit_loss" csv:"profit_loss"`
	// ClosedAt is when the trade settled.
	ClosedAt time.Time `yaml:"closed_at" json:"closed_at" csv:"closed_at"`
}
