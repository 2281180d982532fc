// Package tradingprovider abstracts order execution behind a narrow
// interface so the trading system can run against Binance or a fake.
package tradingprovider

import (
	"context"

	"github.com/quantkit-lab/quantkit/internal/types"
	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// Provider submits orders and reads account state on an exchange.
type Provider interface {
	// PlaceOrder submits a single order and returns the exchange's
	// acknowledgement.
	PlaceOrder(ctx context.Context, order types.ExecuteOrder) (types.OrderConfirmation, error)
	// CancelOrder cancels an open order by its exchange-assigned ID.
	CancelOrder(ctx context.Context, symbol string, orderID int64) error
	// OpenOrders returns acknowledgements for all open orders on a symbol.
	OpenOrders(ctx context.Context, symbol string) ([]types.OrderConfirmation, error)
	// AccountBalance returns the free balance of an asset, e.g. USDT.
	AccountBalance(ctx context.Context, asset string) (float64, error)
}

// ProviderType identifies a supported trading provider.
type ProviderType string

const (
	ProviderBinancePaper ProviderType = "binance-paper"
	ProviderBinanceLive  ProviderType = "binance-live"
)

// NewProvider creates a trading provider of the given type.
func NewProvider(providerType ProviderType, config BinanceProviderConfig) (Provider, error) {
	switch providerType {
	case ProviderBinancePaper:
		return NewBinanceProvider(config, true)
	case ProviderBinanceLive:
		return NewBinanceProvider(config, false)
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedExchange, "unsupported trading provider: %s", providerType)
	}
}
