package types

import "time"

// OrderSide is the direction of an order.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// OrderType is the execution style of an order.
type OrderType string

const (
	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"
)

// ExecuteOrder describes one order to submit to a trading provider.
type ExecuteOrder struct {
	// Symbol is the trading pair, e.g. BTCUSDT.
	Symbol string `yaml:"symbol" json:"symbol" validate:"required"`
	// Side is the order direction.
	Side OrderSide `yaml:"side" json:"side" validate:"required,oneof=BUY SELL"`
	// Type is the execution style.
	Type OrderType `yaml:"type" json:"type" validate:"required,oneof=MARKET LIMIT"`
	// Quantity is the base-asset amount.
	Quantity float64 `yaml:"quantity" json:"quantity" validate:"gt=0"`
	// Price is the limit price; ignored for market orders.
	Price float64 `yaml:"price,omitempty" json:"price,omitempty"`
}

// OrderConfirmation is a provider's acknowledgement of a submitted order.
type OrderConfirmation struct {
	// OrderID is the provider-assigned order identifier.
	OrderID int64 `yaml:"order_id" json:"order_id"`
	// Symbol is the trading pair the order was placed on.
	Symbol string `yaml:"symbol" json:"symbol"`
	// Status is the provider-reported order status, e.g. FILLED.
	Status string `yaml:"status" json:"status"`
	// ExecutedQuantity is the filled base-asset amount.
	ExecutedQuantity float64 `yaml:"executed_quantity" json:"executed_quantity"`
	// TransactTime is when the provider accepted the order.
	TransactTime time.Time `yaml:"transact_time" json:"transact_time"`
}
