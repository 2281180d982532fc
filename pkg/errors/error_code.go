package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInsufficientData     ErrorCode = 102
	ErrCodeInvalidPeriod        ErrorCode = 103
	ErrCodeInvalidMultiplier    ErrorCode = 104
	ErrCodeMissingParameter     ErrorCode = 105
	ErrCodeInvalidRiskParams    ErrorCode = 106

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound ErrorCode = 200

	// Exchange errors (300-399)
	ErrCodeExchangeRequestFailed ErrorCode = 300
	ErrCodeNetworkTimeout        ErrorCode = 301
	ErrCodeRequestCancelled      ErrorCode = 302
	ErrCodeUnsupportedExchange   ErrorCode = 303

	// Trading errors (400-499)
	ErrCodeOrderFailed      ErrorCode = 400
	ErrCodePositionNotFound ErrorCode = 401

	// Market data errors (500-599)
	ErrCodeMarketDataFetchFailed ErrorCode = 500
	ErrCodeMarketDataParseFailed ErrorCode = 501
)
