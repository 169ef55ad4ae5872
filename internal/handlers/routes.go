package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the HTTP handlers exposed by the server
type Handlers struct {
	Health        *HealthCheckHandler
	Statements    *StatementHandler
	Verifications *IncomeVerificationHandler
	// Dev is nil outside development
	Dev *DevHandler
}

// RouteMiddleware carries the access guards built by the middleware package
type RouteMiddleware struct {
	RequireAuth    echo.MiddlewareFunc
	RequireOfficer echo.MiddlewareFunc
	RequireAdmin   echo.MiddlewareFunc
}

// RegisterRoutes mounts every endpoint on e
func RegisterRoutes(e *echo.Echo, h Handlers, mw RouteMiddleware) {
	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	if h.Dev != nil {
		api.POST("/dev/token", h.Dev.IssueToken)
		api.POST("/dev/sample-statement", h.Dev.GenerateSampleStatement)
	}

	// per-route guards keep unknown /api/v1 paths answering 404
	officer := []echo.MiddlewareFunc{mw.RequireAuth, mw.RequireOfficer}
	admin := []echo.MiddlewareFunc{mw.RequireAuth, mw.RequireAdmin}

	api.POST("/statements/parse", h.Statements.ParseStatement, officer...)
	api.POST("/applications/:applicationRef/income-verifications", h.Verifications.VerifyIncome, officer...)
	api.GET("/applications/:applicationRef/income-verifications", h.Verifications.ListVerifications, officer...)
	api.GET("/income-verifications/:id", h.Verifications.GetVerification, officer...)
	api.GET("/applications/:applicationRef/activity", h.Verifications.ListActivity, admin...)
	api.GET("/officers/:userId/activity", h.Verifications.ListOfficerActivity, admin...)
}
