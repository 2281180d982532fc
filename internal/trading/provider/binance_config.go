package tradingprovider

import (
	"github.com/go-playground/validator/v10"

	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// BinanceProviderConfig contains the Binance API credentials. The secret
// key is held in memory only; it is never logged or written anywhere.
type BinanceProviderConfig struct {
	ApiKey    string `json:"apiKey" yaml:"api_key" validate:"required"`
	SecretKey string `json:"secretKey" yaml:"secret_key" validate:"required"`
	// BaseURL overrides the default endpoint when set. It takes
	// precedence over the testnet flag.
	BaseURL string `json:"baseUrl,omitempty" yaml:"base_url,omitempty"`
}

// Validate validates the BinanceProviderConfig struct.
func (c *BinanceProviderConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid binance provider config", err)
	}

	return nil
}
