package tradingprovider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinanceProviderConfigValidate(t *testing.T) {
	config := BinanceProviderConfig{ApiKey: "key", SecretKey: "secret"}
	assert.NoError(t, config.Validate())

	missingSecret := BinanceProviderConfig{ApiKey: "key"}
	assert.Error(t, missingSecret.Validate())

	empty := BinanceProviderConfig{}
	assert.Error(t, empty.Validate())
}

func TestNewProviderUnsupportedType(t *testing.T) {
	_, err := NewProvider("kraken-live", BinanceProviderConfig{ApiKey: "key", SecretKey: "secret"})
	assert.Error(t, err)
}
