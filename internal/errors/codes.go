package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Wallet/request error codes (WALLET_*)
const (
	WalletMissing        ErrorCode = "WALLET_001"
	WalletInvalidAddress ErrorCode = "WALLET_002"
)

// Burn error codes (BURN_*)
const (
	BurnMissingFields    ErrorCode = "BURN_001"
	BurnInvalidAmount    ErrorCode = "BURN_002"
	BurnInvalidAssetType ErrorCode = "BURN_003"
)

// Upstream provider error codes (PROVIDER_*)
const (
	ProviderUnavailable     ErrorCode = "PROVIDER_001"
	ProviderInvalidResponse ErrorCode = "PROVIDER_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Wallet errors
	WalletMissing:        "Wallet address is required",
	WalletInvalidAddress: "Wallet address is not a valid Solana address",

	// Burn errors
	BurnMissingFields:    "Asset type and ID are required",
	BurnInvalidAmount:    "Amount must be greater than 0",
	BurnInvalidAssetType: "Invalid asset type",

	// Provider errors
	ProviderUnavailable:     "Ledger data provider is unavailable",
	ProviderInvalidResponse: "Ledger data provider returned an invalid response",

	// System errors
	SystemInternalError:      "An unexpected error occurred",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
