package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"credit-backoffice/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var panicsRecoveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_panics_recovered_total",
		Help: "Handler panics turned into SYSTEM_001 responses, by route",
	},
	[]string{"route"},
)

// PanicRecovery turns a panicking handler into a SYSTEM_001 response. The
// statement text is never logged; only the panic value and stack are.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				panicsRecoveredTotal.WithLabelValues(routeLabel(c)).Inc()
				slog.ErrorContext(c.Request().Context(), "Panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprint(r),
					"stack_trace", string(debug.Stack()),
					"route", routeLabel(c),
					"method", c.Request().Method,
				)

				if c.Response().Committed {
					return
				}
				err = c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
			}()

			return next(c)
		}
	}
}

// routeLabel is the matched route pattern, never the raw path
func routeLabel(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}
	return "unmatched"
}
