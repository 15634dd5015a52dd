package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidSlot           = "Slot must be a non-negative integer"
	ErrMsgUnknownCurrency       = "Unknown currency"
	ErrMsgUnknownWalletAction   = "Unknown wallet action"
	ErrMsgSaveFailed            = "Failed to save game"
	ErrMsgResetFailed           = "Failed to reset game"
	ErrMsgNotReady              = "game not loaded"
	ErrMsgStoreUnavailable      = "store unavailable"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgOperationRejected = "Operation declined"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Wallet path values
const (
	WalletActionAdd   = "add"
	WalletActionSpend = "spend"
)
