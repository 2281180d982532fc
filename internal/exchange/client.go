package exchange

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"github.com/quantkit-lab/quantkit/internal/types"
	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// DefaultTimeout bounds a single exchange request when the caller's
// context carries no deadline of its own.
const DefaultTimeout = 10 * time.Second

// apiKeyHeader carries the API key on every request.
const apiKeyHeader = "X-MBX-APIKEY"

// Client executes signed requests against one exchange. The only blocking
// operation is the network call; the client keeps no request state, so one
// Client is safe for concurrent use.
type Client struct {
	config     Config
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the exchange's base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.config.BaseURL = baseURL
	}
}

// NewClient creates a client for the given exchange. The secret is held
// only for signing and is never logged or echoed into request structures.
func NewClient(exchange Exchange, apiKey, apiSecret string, opts ...Option) (*Client, error) {
	config, err := exchange.Config()
	if err != nil {
		return nil, err
	}

	client := &Client{
		config:     config,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// do signs and executes one request, returning the raw response body.
func (c *Client) do(ctx context.Context, method, endpoint string, params map[string]string) ([]byte, error) {
	signed := SignRequest(method, endpoint, params, c.apiSecret)

	values := url.Values{}
	for key, value := range signed.Params {
		values.Set(key, value)
	}

	var (
		req *http.Request
		err error
	)

	if method == http.MethodGet {
		target := c.config.BaseURL + endpoint
		if encoded := values.Encode(); encoded != "" {
			target += "?" + encoded
		}

		req, err = http.NewRequestWithContext(ctx, method, target, nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.config.BaseURL+endpoint, strings.NewReader(values.Encode()))
		if req != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}

	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameter, "failed to build exchange request", err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, upstreamError(resp.StatusCode, body)
	}

	return body, nil
}

// transportError maps network-level failures onto stable error codes so
// callers can distinguish timeouts and cancellation from upstream errors.
func transportError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeNetworkTimeout, "exchange request timed out", err)
	case errors.Is(err, context.Canceled):
		return errors.Wrap(errors.ErrCodeRequestCancelled, "exchange request cancelled", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.Wrap(errors.ErrCodeNetworkTimeout, "exchange request timed out", err)
	}

	return errors.Wrap(errors.ErrCodeExchangeRequestFailed, "exchange request failed", err)
}

// upstreamError surfaces the exchange's own error message when the
// response carries one.
func upstreamError(statusCode int, body []byte) error {
	var payload struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Msg != "" {
		return errors.Newf(errors.ErrCodeExchangeRequestFailed, "exchange error: %s", payload.Msg)
	}

	return errors.Newf(errors.ErrCodeExchangeRequestFailed, "exchange returned status %d", statusCode)
}

// GetKlines fetches historical candles from the exchange's public klines
// endpoint and returns them as a chronological price series.
func (c *Client) GetKlines(ctx context.Context, symbol, interval string, limit int) (types.PriceSeries, error) {
	if c.config.Endpoints.Klines == "" {
		return types.PriceSeries{}, errors.Newf(errors.ErrCodeUnsupportedExchange,
			"exchange does not expose a klines endpoint")
	}

	params := map[string]string{
		"symbol":   strings.ToUpper(symbol),
		"interval": interval,
		"limit":    strconv.Itoa(limit),
	}

	body, err := c.do(ctx, http.MethodGet, c.config.Endpoints.Klines, params)
	if err != nil {
		return types.PriceSeries{}, err
	}

	var rows [][]any
	if err := json.Unmarshal(body, &rows); err != nil {
		return types.PriceSeries{}, errors.Wrap(errors.ErrCodeMarketDataParseFailed,
			"failed to decode klines response", err)
	}

	candles := make([]types.Candle, 0, len(rows))

	for i, row := range rows {
		candle, err := parseKlineRow(row)
		if err != nil {
			return types.PriceSeries{}, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err,
				"failed to parse kline row %d", i)
		}

		candles = append(candles, candle)
	}

	return types.PriceSeries{
		Symbol:   strings.ToUpper(symbol),
		Interval: interval,
		Candles:  candles,
	}, nil
}

// parseKlineRow decodes one Binance-style kline array row:
// [openTime, open, high, low, close, volume, ...].
func parseKlineRow(row []any) (types.Candle, error) {
	if len(row) < 6 {
		return types.Candle{}, errors.Newf(errors.ErrCodeMarketDataParseFailed,
			"kline row has %d fields, need at least 6", len(row))
	}

	openTime, ok := row[0].(float64)
	if !ok {
		return types.Candle{}, errors.New(errors.ErrCodeMarketDataParseFailed, "kline open time is not numeric")
	}

	fields := make([]float64, 5)

	for i := 0; i < 5; i++ {
		value, err := parseNumeric(row[i+1])
		if err != nil {
			return types.Candle{}, err
		}

		fields[i] = value
	}

	return types.Candle{
		Timestamp: time.UnixMilli(int64(openTime)).UTC(),
		Open:      fields[0],
		High:      fields[1],
		Low:       fields[2],
		Close:     fields[3],
		Volume:    fields[4],
	}, nil
}

// parseNumeric accepts the string-encoded decimals Binance uses as well as
// plain JSON numbers.
func parseNumeric(value any) (float64, error) {
	switch v := value.(type) {
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "invalid numeric field %q", v)
		}

		return parsed, nil
	case float64:
		return v, nil
	default:
		return 0, errors.Newf(errors.ErrCodeMarketDataParseFailed, "unexpected field type %T", value)
	}
}

// OrderRequest describes one order to place.
type OrderRequest struct {
	Symbol   string
	Side     string
	Type     string
	Quantity float64
	// Price is required for limit orders and omitted for market orders.
	Price optional.Option[float64]
	// StopPrice is set for stop orders only.
	StopPrice optional.Option[float64]
}

// OrderResult is the exchange's acknowledgement of a placed order.
type OrderResult struct {
	OrderID     int64
	Status      string
	ExecutedQty float64
}

// CreateOrder places an order through the exchange's private order
// endpoint. The request is signed; the exchange's error message, when
// present, is surfaced verbatim.
func (c *Client) CreateOrder(ctx context.Context, order OrderRequest) (OrderResult, error) {
	if c.config.Endpoints.Order == "" {
		return OrderResult{}, errors.Newf(errors.ErrCodeUnsupportedExchange,
			"exchange does not expose an order endpoint")
	}

	params := map[string]string{
		"symbol":   strings.ToUpper(order.Symbol),
		"side":     strings.ToUpper(order.Side),
		"type":     strings.ToUpper(order.Type),
		"quantity": decimal.NewFromFloat(order.Quantity).String(),
	}

	if order.Price.IsSome() {
		price, err := order.Price.Take()
		if err != nil {
			return OrderResult{}, errors.Wrap(errors.ErrCodeInvalidParameter, "failed to read order price", err)
		}

		params["price"] = decimal.NewFromFloat(price).String()
	}

	if order.StopPrice.IsSome() {
		stopPrice, err := order.StopPrice.Take()
		if err != nil {
			return OrderResult{}, errors.Wrap(errors.ErrCodeInvalidParameter, "failed to read order stop price", err)
		}

		params["stopPrice"] = decimal.NewFromFloat(stopPrice).String()
	}

	body, err := c.do(ctx, http.MethodPost, c.config.Endpoints.Order, params)
	if err != nil {
		return OrderResult{}, err
	}

	var payload struct {
		OrderID     int64  `json:"orderId"`
		Status      string `json:"status"`
		ExecutedQty string `json:"executedQty"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return OrderResult{}, errors.Wrap(errors.ErrCodeOrderFailed, "failed to decode order response", err)
	}

	executedQty := 0.0
	if payload.ExecutedQty != "" {
		executedQty, err = strconv.ParseFloat(payload.ExecutedQty, 64)
		if err != nil {
			return OrderResult{}, errors.Wrap(errors.ErrCodeOrderFailed, "invalid executed quantity in order response", err)
		}
	}

	return OrderResult{
		OrderID:     payload.OrderID,
		Status:      payload.Status,
		ExecutedQty: executedQty,
	}, nil
}

// TestConnection verifies the credentials by fetching the private account
// endpoint.
func (c *Client) TestConnection(ctx context.Context) error {
	if c.config.Endpoints.Account == "" {
		return errors.Newf(errors.ErrCodeUnsupportedExchange,
			"exchange does not expose an account endpoint")
	}

	_, err := c.do(ctx, http.MethodGet, c.config.Endpoints.Account, map[string]string{})

	return err
}
