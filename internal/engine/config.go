package engine

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/quantkit-lab/quantkit/internal/analytics"
	"github.com/quantkit-lab/quantkit/internal/indicator"
	"github.com/quantkit-lab/quantkit/pkg/errors"
)

// Config holds the evaluator's indicator parameters. Values are fixed for
// the lifetime of an Evaluator; evaluations never mutate it.
type Config struct {
	RSIPeriod           int     `yaml:"rsi_period" json:"rsi_period" validate:"required,gt=0"`
	MACDFastPeriod      int     `yaml:"macd_fast_period" json:"macd_fast_period" validate:"required,gt=0"`
	MACDSlowPeriod      int     `yaml:"macd_slow_period" json:"macd_slow_period" validate:"required,gt=0,gtfield=MACDFastPeriod"`
	MACDSignalPeriod    int     `yaml:"macd_signal_period" json:"macd_signal_period" validate:"required,gt=0"`
	BollingerPeriod     int     `yaml:"bollinger_period" json:"bollinger_period" validate:"required,gt=0"`
	BollingerMultiplier float64 `yaml:"bollinger_multiplier" json:"bollinger_multiplier" validate:"required,gt=0"`
	// RiskFreeRate feeds the Sharpe ratio when reporting performance.
	RiskFreeRate float64 `yaml:"risk_free_rate" json:"risk_free_rate" validate:"gte=0"`
}

// DefaultConfig returns the conventional indicator parameters.
func DefaultConfig() Config {
	return Config{
		RSIPeriod:           indicator.DefaultRSIPeriod,
		MACDFastPeriod:      indicator.DefaultMACDFastPeriod,
		MACDSlowPeriod:      indicator.DefaultMACDSlowPeriod,
		MACDSignalPeriod:    indicator.DefaultMACDSignalPeriod,
		BollingerPeriod:     indicator.DefaultBollingerPeriod,
		BollingerMultiplier: indicator.DefaultBollingerMultiplier,
		RiskFreeRate:        analytics.DefaultRiskFreeRate,
	}
}

// Validate validates the Config struct.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid evaluator config", err)
	}

	return nil
}

// LoadConfig reads a YAML config file over the defaults, so a partial file
// only overrides the parameters it names.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to parse config file %s", path)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}
