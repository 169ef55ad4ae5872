package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"credit-backoffice/internal/config"
	"credit-backoffice/internal/database"
	"credit-backoffice/internal/handlers"
	"credit-backoffice/internal/middleware"
	"credit-backoffice/internal/repositories"
	"credit-backoffice/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	parser, err := services.NewStatementParser(cfg.Statement, logger)
	if err != nil {
		return err
	}

	verificationRepo := repositories.NewIncomeVerificationRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)

	auditService := services.NewAuditService(auditRepo, services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()))
	tokenService := services.NewTokenService(&cfg.JWT)
	verificationService := services.NewIncomeVerificationService(
		verificationRepo,
		auditService,
		parser,
		cfg,
		services.NewPrometheusMetrics(),
		services.NewVerificationLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rateLimiter := middleware.NewRateLimiter(cfg.Security)
	go rateLimiter.Run(ctx)
	go services.RunAuditRetention(ctx, auditService, cfg.Audit, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(strconv.FormatInt(bodyLimitBytes(cfg), 10) + "B"))
	e.Use(rateLimiter.Middleware())

	h := handlers.Handlers{
		Health:        handlers.NewHealthCheckHandler(db),
		Statements:    handlers.NewStatementHandler(verificationService, auditService, cfg.Statement.MaxBytes),
		Verifications: handlers.NewIncomeVerificationHandler(verificationService, auditService),
	}
	if cfg.IsDevelopment() {
		h.Dev = handlers.NewDevHandler(tokenService, services.NewSampleStatementGenerator())
		logger.Warn("Development endpoints enabled", "paths", []string{"/api/v1/dev/token", "/api/v1/dev/sample-statement"})
	}

	handlers.RegisterRoutes(e, h, handlers.RouteMiddleware{
		RequireAuth:    middleware.RequireAuth(tokenService),
		RequireOfficer: middleware.RequireOfficer(),
		RequireAdmin:   middleware.RequireAdmin(),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting credit-backoffice server",
			"addr", srv.Addr,
			"environment", cfg.Server.Environment,
			"statement_layout", cfg.Statement.Layout,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// bodyLimitBytes leaves room for the JSON envelope around the statement text
func bodyLimitBytes(cfg *config.Config) int64 {
	return cfg.Statement.MaxBytes*2 + 64<<10
}
