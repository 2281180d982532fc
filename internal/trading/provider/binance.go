package tradingprovider

import (
	"context"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/shopspring/decimal"

	"github.com/quantkit-lab/quantkit/internal/types"
	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// BinanceDecimalPrecision is the quantity precision used for submitted
// orders. 8 decimals is satoshi-level precision; production systems
// should use symbol-specific precision from Binance exchange info.
const BinanceDecimalPrecision = 8

// Service interfaces for mocking the Binance API

// CreateOrderService interface for creating orders.
type CreateOrderService interface {
	Symbol(symbol string) CreateOrderService
	Side(side binance.SideType) CreateOrderService
	Type(orderType binance.OrderType) CreateOrderService
	Quantity(quantity string) CreateOrderService
	Price(price string) CreateOrderService
	TimeInForce(tif binance.TimeInForceType) CreateOrderService
	Do(ctx context.Context) (*binance.CreateOrderResponse, error)
}

// GetAccountService interface for getting account info.
type GetAccountService interface {
	Do(ctx context.Context) (*binance.Account, error)
}

// CancelOrderService interface for canceling orders.
type CancelOrderService interface {
	Symbol(symbol string) CancelOrderService
	OrderID(orderID int64) CancelOrderService
	Do(ctx context.Context) (*binance.CancelOrderResponse, error)
}

// ListOpenOrdersService interface for listing open orders.
type ListOpenOrdersService interface {
	Symbol(symbol string) ListOpenOrdersService
	Do(ctx context.Context) ([]*binance.Order, error)
}

// BinanceClient interface abstracts the Binance client for testing.
type BinanceClient interface {
	NewCreateOrderService() CreateOrderService
	NewGetAccountService() GetAccountService
	NewCancelOrderService() CancelOrderService
	NewListOpenOrdersService() ListOpenOrdersService
}

// realBinanceClient wraps the actual binance.Client.
type realBinanceClient struct {
	client *binance.Client
}

func (r *realBinanceClient) NewCreateOrderService() CreateOrderService {
	return &realCreateOrderService{service: r.client.NewCreateOrderService()}
}

func (r *realBinanceClient) NewGetAccountService() GetAccountService {
	return &realGetAccountService{service: r.client.NewGetAccountService()}
}

func (r *realBinanceClient) NewCancelOrderService() CancelOrderService {
	return &realCancelOrderService{service: r.client.NewCancelOrderService()}
}

func (r *realBinanceClient) NewListOpenOrdersService() ListOpenOrdersService {
	return &realListOpenOrdersService{service: r.client.NewListOpenOrdersService()}
}

// Real service wrappers

type realCreateOrderService struct {
	service *binance.CreateOrderService
}

func (s *realCreateOrderService) Symbol(symbol string) CreateOrderService {
	s.service = s.service.Symbol(symbol)

	return s
}

func (s *realCreateOrderService) Side(side binance.SideType) CreateOrderService {
	s.service = s.service.Side(side)

	return s
}

func (s *realCreateOrderService) Type(orderType binance.OrderType) CreateOrderService {
	s.service = s.service.Type(orderType)

	return s
}

func (s *realCreateOrderService) Quantity(quantity string) CreateOrderService {
	s.service = s.service.Quantity(quantity)

	return s
}

func (s *realCreateOrderService) Price(price string) CreateOrderService {
	s.service = s.service.Price(price)

	return s
}

func (s *realCreateOrderService) TimeInForce(tif binance.TimeInForceType) CreateOrderService {
	s.service = s.service.TimeInForce(tif)

	return s
}

func (s *realCreateOrderService) Do(ctx context.Context) (*binance.CreateOrderResponse, error) {
	return s.service.Do(ctx)
}

type realGetAccountService struct {
	service *binance.GetAccountService
}

func (s *realGetAccountService) Do(ctx context.Context) (*binance.Account, error) {
	return s.service.Do(ctx)
}

type realCancelOrderService struct {
	service *binance.CancelOrderService
}

func (s *realCancelOrderService) Symbol(symbol string) CancelOrderService {
	s.service = s.service.Symbol(symbol)

	return s
}

func (s *realCancelOrderService) OrderID(orderID int64) CancelOrderService {
	s.service = s.service.OrderID(orderID)

	return s
}

func (s *realCancelOrderService) Do(ctx context.Context) (*binance.CancelOrderResponse, error) {
	return s.service.Do(ctx)
}

type realListOpenOrdersService struct {
	service *binance.ListOpenOrdersService
}

func (s *realListOpenOrdersService) Symbol(symbol string) ListOpenOrdersService {
	s.service = s.service.Symbol(symbol)

	return s
}

func (s *realListOpenOrdersService) Do(ctx context.Context) ([]*binance.Order, error) {
	return s.service.Do(ctx)
}

// BinanceProvider implements Provider using the Binance API. It is
// stateless; all data is fetched directly from the exchange.
type BinanceProvider struct {
	client           BinanceClient
	decimalPrecision int
}

// NewBinanceProvider creates a Binance-backed trading provider. With
// useTestnet it connects to Binance Testnet; a configured BaseURL takes
// precedence either way.
func NewBinanceProvider(config BinanceProviderConfig, useTestnet bool) (*BinanceProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if useTestnet {
		binance.UseTestnet = true
	}

	client := binance.NewClient(config.ApiKey, config.SecretKey)

	if config.BaseURL != "" {
		client.BaseURL = config.BaseURL
	}

	return &BinanceProvider{
		client:           &realBinanceClient{client: client},
		decimalPrecision: BinanceDecimalPrecision,
	}, nil
}

// newBinanceProviderWithClient creates a provider with a custom client.
// This is used for testing with mock clients.
func newBinanceProviderWithClient(client BinanceClient) *BinanceProvider {
	return &BinanceProvider{
		client:           client,
		decimalPrecision: BinanceDecimalPrecision,
	}
}

// PlaceOrder submits a single order on Binance.
func (b *BinanceProvider) PlaceOrder(ctx context.Context, order types.ExecuteOrder) (types.OrderConfirmation, error) {
	var side binance.SideType

	switch order.Side {
	case types.OrderSideBuy:
		side = binance.SideTypeBuy
	case types.OrderSideSell:
		side = binance.SideTypeSell
	default:
		return types.OrderConfirmation{}, errors.Newf(errors.ErrCodeInvalidParameter, "unsupported order side: %s", order.Side)
	}

	var orderType binance.OrderType

	switch order.Type {
	case types.OrderTypeMarket:
		orderType = binance.OrderTypeMarket
	case types.OrderTypeLimit:
		orderType = binance.OrderTypeLimit
	default:
		return types.OrderConfirmation{}, errors.Newf(errors.ErrCodeInvalidParameter, "unsupported order type: %s", order.Type)
	}

	if order.Quantity <= 0 {
		return types.OrderConfirmation{}, errors.New(errors.ErrCodeInvalidParameter, "order quantity must be greater than zero")
	}

	quantity := decimal.NewFromFloat(order.Quantity).Round(int32(b.decimalPrecision))
	if quantity.IsZero() {
		return types.OrderConfirmation{}, errors.Newf(errors.ErrCodeInvalidParameter,
			"order quantity %.8f is too small after rounding to %d decimal places",
			order.Quantity, b.decimalPrecision)
	}

	orderService := b.client.NewCreateOrderService().
		Symbol(order.Symbol).
		Side(side).
		Type(orderType).
		Quantity(quantity.String())

	if order.Type == types.OrderTypeLimit {
		if order.Price <= 0 {
			return types.OrderConfirmation{}, errors.New(errors.ErrCodeInvalidParameter, "limit orders require a positive price")
		}

		orderService = orderService.
			Price(decimal.NewFromFloat(order.Price).String()).
			TimeInForce(binance.TimeInForceTypeGTC)
	}

	response, err := orderService.Do(ctx)
	if err != nil {
		return types.OrderConfirmation{}, errors.Wrap(errors.ErrCodeOrderFailed, "failed to place order on Binance", err)
	}

	executedQty, err := strconv.ParseFloat(response.ExecutedQuantity, 64)
	if err != nil {
		return types.OrderConfirmation{}, errors.Wrap(errors.ErrCodeOrderFailed, "invalid executed quantity in order response", err)
	}

	return types.OrderConfirmation{
		OrderID:          response.OrderID,
		Symbol:           response.Symbol,
		Status:           string(response.Status),
		ExecutedQuantity: executedQty,
		TransactTime:     time.UnixMilli(response.TransactTime),
	}, nil
}

// CancelOrder cancels an open order by its Binance order ID.
func (b *BinanceProvider) CancelOrder(ctx context.Context, symbol string, orderID int64) error {
	_, err := b.client.NewCancelOrderService().
		Symbol(symbol).
		OrderID(orderID).
		Do(ctx)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeOrderFailed, err, "failed to cancel order %d on Binance", orderID)
	}

	return nil
}

// OpenOrders returns acknowledgements for all open orders on a symbol.
func (b *BinanceProvider) OpenOrders(ctx context.Context, symbol string) ([]types.OrderConfirmation, error) {
	orders, err := b.client.NewListOpenOrdersService().
		Symbol(symbol).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeOrderFailed, "failed to list open orders on Binance", err)
	}

	confirmations := make([]types.OrderConfirmation, 0, len(orders))

	for _, order := range orders {
		executedQty, _ := strconv.ParseFloat(order.ExecutedQuantity, 64)

		confirmations = append(confirmations, types.OrderConfirmation{
			OrderID:          order.OrderID,
			Symbol:           order.Symbol,
			Status:           string(order.Status),
			ExecutedQuantity: executedQty,
			TransactTime:     time.UnixMilli(order.Time),
		})
	}

	return confirmations, nil
}

// AccountBalance returns the free balance of an asset.
func (b *BinanceProvider) AccountBalance(ctx context.Context, asset string) (float64, error) {
	account, err := b.client.NewGetAccountService().Do(ctx)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeExchangeRequestFailed, "failed to get account info from Binance", err)
	}

	for _, balance := range account.Balances {
		if balance.Asset != asset {
			continue
		}

		free, err := strconv.ParseFloat(balance.Free, 64)
		if err != nil {
			return 0, errors.Wrapf(errors.ErrCodeExchangeRequestFailed, err, "invalid balance for asset %s", asset)
		}

		return free, nil
	}

	return 0, errors.Newf(errors.ErrCodeDataNotFound, "no balance found for asset %s", asset)
}
