package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"credit-backoffice/internal/dto"
	"credit-backoffice/internal/errors"
	"credit-backoffice/internal/models"
	"credit-backoffice/internal/services"
	"credit-backoffice/internal/statement"
	"credit-backoffice/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints.
// Routes are registered only when APP_ENV=development.
type DevHandler struct {
	tokenService services.TokenServiceInterface
	generator    services.SampleStatementGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(tokenService services.TokenServiceInterface, generator services.SampleStatementGeneratorInterface) *DevHandler {
	return &DevHandler{
		tokenService: tokenService,
		generator:    generator,
	}
}

// IssueToken signs a back-office token for local testing
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
//
// Success Response: 200 OK with dto.TokenResponse
//
// Error Responses:
//   - 400: Invalid email or role
//   - 500: Signing failed
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req dto.DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(models.Principal{
		UserID: uuid.New(),
		Email:  req.Email,
		Role:   req.Role,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}

// GenerateSampleStatement renders a synthetic statement and the income a
// correct parse of it must report
//
// Method: POST /api/v1/dev/sample-statement
// Authentication: None
// Environment: Development only
//
// Success Response: 200 OK with dto.SampleStatementResponse
//
// Error Responses:
//   - 400: Unknown layout, invalid period or salary
//   - 500: Generation failed
func (h *DevHandler) GenerateSampleStatement(c echo.Context) error {
	var req dto.SampleStatementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	sampleReq := models.SampleStatementRequest{
		Layout: req.Layout,
		Seed:   req.Seed,
	}
	// dates and salary already passed validation
	if req.PeriodStart != "" {
		sampleReq.PeriodStart, _ = time.Parse(time.DateOnly, req.PeriodStart)
	}
	if req.PeriodEnd != "" {
		sampleReq.PeriodEnd, _ = time.Parse(time.DateOnly, req.PeriodEnd)
	}
	if req.MonthlySalary != "" {
		sampleReq.MonthlySalary, _ = validation.ParseAmount(req.MonthlySalary)
	}

	sample, err := h.generator.Generate(sampleReq)
	if err != nil {
		if stderrors.Is(err, statement.ErrUnknownLayout) {
			return SendError(c, errors.StatementUnknownLayout, errors.WithDetails(err.Error()))
		}
		if stderrors.Is(err, services.ErrInvalidSampleRequest) {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSampleStatementResponse(sample))
}
