package exchange

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type SignerTestSuite struct {
	suite.Suite
}

func TestSignerSuite(t *testing.T) {
	suite.Run(t, new(SignerTestSuite))
}

func (suite *SignerTestSuite) TestSignKnownVector() {
	// HMAC-SHA256 of "a=1&b=2" under "secret".
	signature := Sign(map[string]string{"a": "1", "b": "2"}, "secret")
	suite.Equal("604fe97c66c6393ff22e3cae366eee1131e351ebc736bf12f5d62e1755b7a233", signature)
}

func (suite *SignerTestSuite) TestSignCanonicalizesKeyOrder() {
	// Keys sort lexicographically regardless of how the map was built.
	signature := Sign(map[string]string{
		"symbol":   "BTCUSDT",
		"limit":    "100",
		"interval": "1h",
	}, "topsecret")
	suite.Equal("20fda856f23c239aaef87d538a24a7fa76aeeff65d251c699bc97de610d55942", signature)
}

func (suite *SignerTestSuite) TestSignDeterministic() {
	params := map[string]string{"symbol": "ETHUSDT", "side": "BUY", "quantity": "0.5"}

	first := Sign(params, "secret")
	second := Sign(params, "secret")
	suite.Equal(first, second)
}

func (suite *SignerTestSuite) TestSignSensitiveToParamChange() {
	params := map[string]string{"symbol": "ETHUSDT", "quantity": "0.5"}
	original := Sign(params, "secret")

	params["quantity"] = "0.6"
	suite.NotEqual(original, Sign(params, "secret"))
}

func (suite *SignerTestSuite) TestSignSensitiveToSecret() {
	params := map[string]string{"symbol": "ETHUSDT"}
	suite.NotEqual(Sign(params, "secret-a"), Sign(params, "secret-b"))
}

func (suite *SignerTestSuite) TestIsPrivateEndpoint() {
	private := []string{
		"/api/v3/account",
		"/api/v3/order",
		"/sapi/v1/capital/withdraw/apply",
		"/v2/accounts",
		"/v2/private/order/create",
	}
	for _, endpoint := range private {
		suite.True(IsPrivateEndpoint(endpoint), endpoint)
	}

	public := []string{
		"/api/v3/klines",
		"/api/v3/ticker/price",
		"/api/v3/depth",
		"",
	}
	for _, endpoint := range public {
		suite.False(IsPrivateEndpoint(endpoint), endpoint)
	}
}

func (suite *SignerTestSuite) TestSignRequestPrivate() {
	params := map[string]string{"symbol": "BTCUSDT", "side": "BUY"}

	request := SignRequest("POST", "/api/v3/order", params, "secret")
	suite.Equal("POST", request.Method)
	suite.Equal("/api/v3/order", request.Endpoint)
	suite.NotEmpty(request.Signature)
	suite.Equal(request.Signature, request.Params["signature"])
	suite.Equal(Sign(params, "secret"), request.Signature)
}

func (suite *SignerTestSuite) TestSignRequestPublic() {
	request := SignRequest("GET", "/api/v3/klines", map[string]string{"symbol": "BTCUSDT"}, "secret")
	suite.Empty(request.Signature)
	suite.NotContains(request.Params, "signature")
}

func (suite *SignerTestSuite) TestSignRequestDoesNotMutateInput() {
	params := map[string]string{"symbol": "BTCUSDT"}

	SignRequest("POST", "/api/v3/order", params, "secret")
	suite.NotContains(params, "signature")
	suite.Len(params, 1)
}
