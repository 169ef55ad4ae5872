package handlers

import (
	"log/slog"
	"net/http"

	"credit-backoffice/internal/errors"
	"credit-backoffice/internal/validation"

	"github.com/labstack/echo/v4"
)

// All handlers answer failures through SendError (4xx and business errors)
// or SendSystemError (anything that must not leak internals). Do not return
// echo.NewHTTPError or write error JSON directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"

	UserIDContextKey    = "user_id"
	UserEmailContextKey = "user_email"
	UserRoleContextKey  = "user_role"
	TokenJTIContextKey  = "token_jti"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// PageMeta describes one page of a paginated listing
type PageMeta struct {
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "Internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", internal,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError reports every failed field of a request body at once
func SendValidationError(c echo.Context, err error) error {
	errorResponse := errors.NewValidationError(validation.FieldErrors(err), getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
