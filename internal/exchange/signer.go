package exchange

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// signatureParam is the parameter name the signature is attached under.
const signatureParam = "signature"

// privatePathFragments mark an endpoint as requiring a signature.
var privatePathFragments = []string{"account", "order", "withdraw"}

// SignedRequest is a fully prepared exchange request. The signing secret
// is used only while building it and is never stored here.
type SignedRequest struct {
	Method   string
	Endpoint string
	// Params holds the request parameters, including the signature for
	// private endpoints. Insertion order is irrelevant: signing always
	// canonicalizes by sorted key.
	Params map[string]string
	// Signature is the hex HMAC-SHA256 over the canonical query string,
	// empty for public endpoints.
	Signature string
}

// IsPrivateEndpoint reports whether the endpoint needs a signature. Any
// path containing "account", "order", or "withdraw" is private.
func IsPrivateEndpoint(endpoint string) bool {
	for _, fragment := range privatePathFragments {
		if strings.Contains(endpoint, fragment) {
			return true
		}
	}

	return false
}

// Sign computes the hex HMAC-SHA256 signature of params under secret. The
// canonical form joins key=value pairs with "&" in lexicographic key
// order, so the map's insertion order never affects the signature.
func Sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strings.Join(pairs, "&")))

	return hex.EncodeToString(mac.Sum(nil))
}

// SignRequest prepares a request for the given endpoint. Private endpoints
// get the signature attached as an extra parameter; public endpoints pass
// through unsigned. The input params map is not modified.
func SignRequest(method, endpoint string, params map[string]string, secret string) SignedRequest {
	request := SignedRequest{
		Method:   method,
		Endpoint: endpoint,
		Params:   make(map[string]string, len(params)+1),
	}

	for key, value := range params {
		request.Params[key] = value
	}

	if IsPrivateEndpoint(endpoint) {
		request.Signature = Sign(params, secret)
		request.Params[signatureParam] = request.Signature
	}

	return request
}
