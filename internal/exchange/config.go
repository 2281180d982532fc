// Package exchange builds and executes authenticated exchange API
// requests. Request signing is pure; only the client's network call
// blocks, and it honors the caller's context.
package exchange

import (
	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// Exchange identifies a supported exchange. The set is closed: every
// exchange resolves to an immutable Config via exhaustive matching, never
// through runtime registration.
type Exchange string

const (
	ExchangeBinance  Exchange = "binance"
	ExchangeCoinbase Exchange = "coinbase"
	ExchangeBybit    Exchange = "bybit"
)

// Endpoints holds the API paths of one exchange. Paths an exchange does
// not expose are empty.
type Endpoints struct {
	Account  string
	Order    string
	Ticker   string
	Klines   string
	Position string
}

// Config is the immutable connection configuration of one exchange.
type Config struct {
	BaseURL   string
	Endpoints Endpoints
}

// Config resolves the exchange to its configuration. Unknown exchanges
// fail with ErrCodeUnsupportedExchange.
func (e Exchange) Config() (Config, error) {
	switch e {
	case ExchangeBinance:
		return Config{
			BaseURL: "https://api.binance.com",
			Endpoints: Endpoints{
				Account: "/api/v3/account",
				Order:   "/api/v3/order",
				Ticker:  "/api/v3/ticker/price",
				Klines:  "/api/v3/klines",
			},
		}, nil
	case ExchangeCoinbase:
		return Config{
			BaseURL: "https://api.coinbase.com",
			Endpoints: Endpoints{
				Account: "/v2/accounts",
				Order:   "/v2/orders",
			},
		}, nil
	case ExchangeBybit:
		return Config{
			BaseURL: "https://api.bybit.com",
			Endpoints: Endpoints{
				Order:    "/v2/private/order/create",
				Position: "/v2/private/position/list",
			},
		}, nil
	default:
		return Config{}, errors.Newf(errors.ErrCodeUnsupportedExchange, "unsupported exchange: %s", e)
	}
}
