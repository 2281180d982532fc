package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/quantkit-lab/quantkit/pkg/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(suite.T().TempDir(), "config.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0644))

	return path
}

func (suite *ConfigTestSuite) TestDefaultConfigIsValid() {
	config := DefaultConfig()

	suite.NoError(config.Validate())
	suite.Equal(14, config.RSIPeriod)
	suite.Equal(12, config.MACDFastPeriod)
	suite.Equal(26, config.MACDSlowPeriod)
	suite.Equal(9, config.MACDSignalPeriod)
	suite.Equal(20, config.BollingerPeriod)
	suite.InDelta(2.0, config.BollingerMultiplier, 1e-9)
	suite.InDelta(0.02, config.RiskFreeRate, 1e-9)
}

func (suite *ConfigTestSuite) TestLoadConfigPartialOverride() {
	path := suite.writeConfig("rsi_period: 21\nbollinger_multiplier: 2.5\n")

	config, err := LoadConfig(path)

	suite.Require().NoError(err)
	suite.Equal(21, config.RSIPeriod)
	suite.InDelta(2.5, config.BollingerMultiplier, 1e-9)
	// Untouched fields keep their defaults.
	suite.Equal(26, config.MACDSlowPeriod)
}

func (suite *ConfigTestSuite) TestLoadConfigMissingFile() {
	_, err := LoadConfig(filepath.Join(suite.T().TempDir(), "missing.yaml"))

	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidPeriods() {
	path := suite.writeConfig("macd_fast_period: 30\n")

	_, err := LoadConfig(path)

	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ConfigTestSuite) TestLoadConfigMalformedYAML() {
	path := suite.writeConfig("rsi_period: [not a number\n")

	_, err := LoadConfig(path)

	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}
