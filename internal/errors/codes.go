package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount   ErrorCode = "VALIDATION_005"
	ValidationApplicationRef  ErrorCode = "VALIDATION_006"
	ValidationInvalidPaginate ErrorCode = "VALIDATION_007"
)

// Statement error codes (STATEMENT_*)
const (
	StatementEmpty            ErrorCode = "STATEMENT_001"
	StatementTooLarge         ErrorCode = "STATEMENT_002"
	StatementUnreadableUpload ErrorCode = "STATEMENT_003"
	StatementUnknownLayout    ErrorCode = "STATEMENT_004"
)

// Income verification error codes (VERIFICATION_*)
const (
	VerificationNotFound  ErrorCode = "VERIFICATION_001"
	VerificationInvalidID ErrorCode = "VERIFICATION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
	SystemMethodNotAllowed   ErrorCode = "SYSTEM_008"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationOutOfRange:      "Field value is out of allowed range",
	ValidationInvalidAmount:   "Amount must be a positive decimal with at most two fraction digits",
	ValidationApplicationRef:  "Invalid credit application reference",
	ValidationInvalidPaginate: "Invalid pagination parameters",

	StatementEmpty:            "Statement text is empty",
	StatementTooLarge:         "Statement exceeds the maximum allowed size",
	StatementUnreadableUpload: "Uploaded statement could not be read",
	StatementUnknownLayout:    "Unknown statement layout",

	VerificationNotFound:  "Income verification not found",
	VerificationInvalidID: "Invalid income verification ID format",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
	SystemMethodNotAllowed:   "Method not allowed",
}

// GetErrorMessage returns the default message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
