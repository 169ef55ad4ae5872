package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"credit-backoffice/internal/dto"
	"credit-backoffice/internal/errors"
	"credit-backoffice/internal/models"
	"credit-backoffice/internal/services"
	"credit-backoffice/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// IncomeVerificationHandler handles income checks attached to credit applications
type IncomeVerificationHandler struct {
	verificationService services.IncomeVerificationServiceInterface
	auditService        services.AuditServiceInterface
}

// NewIncomeVerificationHandler creates a new income verification handler
func NewIncomeVerificationHandler(
	verificationService services.IncomeVerificationServiceInterface,
	auditService services.AuditServiceInterface,
) *IncomeVerificationHandler {
	return &IncomeVerificationHandler{
		verificationService: verificationService,
		auditService:        auditService,
	}
}

// VerifyIncome checks a statement against the income declared on an application
// @Summary Verify declared income
// @Description Parse the applicant's statement and decide whether it supports the declared monthly income. Submitting the same statement again returns the stored decision.
// @Tags Income Verifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param applicationRef path string true "Credit application reference"
// @Param request body dto.VerifyIncomeRequest true "Declared income and statement"
// @Success 200 {object} dto.IncomeVerificationResponse "Stored decision reused"
// @Success 201 {object} dto.IncomeVerificationResponse "New decision"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or VALIDATION_006 - Invalid application reference"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Insufficient permissions"
// @Failure 413 {object} errors.ErrorResponse "STATEMENT_002 - Statement too large"
// @Failure 422 {object} errors.ErrorResponse "STATEMENT_001 - Statement is empty"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /applications/{applicationRef}/income-verifications [post]
func (h *IncomeVerificationHandler) VerifyIncome(c echo.Context) error {
	applicationRef := c.Param("applicationRef")
	if !validation.IsValidApplicationRef(applicationRef) {
		return SendError(c, errors.ValidationApplicationRef)
	}

	var req dto.VerifyIncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	declared, ok := validation.ParseAmount(req.DeclaredMonthlyIncome)
	if !ok {
		return SendError(c, errors.ValidationInvalidAmount)
	}

	verification, reused, err := h.verificationService.VerifyIncome(c.Request().Context(), models.VerifyIncomeInput{
		ApplicationRef:        applicationRef,
		ApplicantID:           req.ApplicantID,
		DeclaredMonthlyIncome: declared,
		StatementText:         req.StatementText,
		Actor:                 actorFromContext(c),
	})
	if err != nil {
		return sendStatementError(c, err)
	}

	status := http.StatusCreated
	if reused {
		status = http.StatusOK
	}

	return c.JSON(status, dto.NewIncomeVerificationResponse(verification, reused))
}

// ListVerifications returns the verifications of one application, newest first
// @Summary List income verifications
// @Description List the income verifications stored for a credit application
// @Tags Income Verifications
// @Security BearerAuth
// @Produce json
// @Param applicationRef path string true "Credit application reference"
// @Param offset query int false "Number of results to skip" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Success 200 {object} dto.IncomeVerificationListResponse "Verifications"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid application reference"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /applications/{applicationRef}/income-verifications [get]
func (h *IncomeVerificationHandler) ListVerifications(c echo.Context) error {
	applicationRef := c.Param("applicationRef")
	if !validation.IsValidApplicationRef(applicationRef) {
		return SendError(c, errors.ValidationApplicationRef)
	}

	offset, limit := getPagination(c)
	ctx := c.Request().Context()

	verifications, total, err := h.verificationService.ListApplicationVerifications(ctx, applicationRef, offset, limit)
	if err != nil {
		return sendStatementError(c, err)
	}

	response := dto.IncomeVerificationListResponse{
		Verifications: make([]dto.IncomeVerificationResponse, 0, len(verifications)),
		Total:         total,
		Offset:        offset,
		Limit:         limit,
	}
	for i := range verifications {
		response.Verifications = append(response.Verifications, dto.NewIncomeVerificationResponse(&verifications[i], false))
	}

	h.audit(c, h.auditService.LogVerificationsListed(ctx, actorFromContext(c), applicationRef, len(verifications)))

	return c.JSON(http.StatusOK, response)
}

// GetVerification returns one stored verification
// @Summary Get income verification
// @Description Retrieve a stored income verification by ID
// @Tags Income Verifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Verification ID (UUID)"
// @Success 200 {object} dto.IncomeVerificationResponse "Verification"
// @Failure 400 {object} errors.ErrorResponse "VERIFICATION_002 - Invalid verification ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "VERIFICATION_001 - Verification not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /income-verifications/{id} [get]
func (h *IncomeVerificationHandler) GetVerification(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.VerificationInvalidID)
	}

	ctx := c.Request().Context()

	verification, err := h.verificationService.GetVerification(ctx, id)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidVerificationID):
			return SendError(c, errors.VerificationInvalidID)
		case stderrors.Is(err, services.ErrVerificationNotFound):
			return SendError(c, errors.VerificationNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	h.audit(c, h.auditService.LogVerificationViewed(ctx, actorFromContext(c), verification))

	return c.JSON(http.StatusOK, dto.NewIncomeVerificationResponse(verification, false))
}

// ListActivity returns the audit trail of one application
// @Summary Application activity
// @Description Audit trail of income verification activity for a credit application
// @Tags Income Verifications
// @Security BearerAuth
// @Produce json
// @Param applicationRef path string true "Credit application reference"
// @Param offset query int false "Number of results to skip" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Success 200 {object} SuccessResponse{data=[]models.AuditLog,meta=PageMeta} "Audit entries, newest first"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid application reference"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Admin role required"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /applications/{applicationRef}/activity [get]
func (h *IncomeVerificationHandler) ListActivity(c echo.Context) error {
	applicationRef := c.Param("applicationRef")
	if !validation.IsValidApplicationRef(applicationRef) {
		return SendError(c, errors.ValidationApplicationRef)
	}

	offset, limit := getPagination(c)

	logs, total, err := h.auditService.GetResourceActivity(c.Request().Context(),
		models.AuditResourceIncomeVerification, applicationRef, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	if logs == nil {
		logs = []*models.AuditLog{}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: logs,
		Meta: PageMeta{Total: total, Offset: offset, Limit: limit},
	})
}

// ListOfficerActivity returns what one back-office user did
// @Summary Officer activity
// @Description Audit trail of one back-office user across all applications
// @Tags Income Verifications
// @Security BearerAuth
// @Produce json
// @Param userId path string true "Back-office user ID (UUID)"
// @Param offset query int false "Number of results to skip" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Success 200 {object} SuccessResponse{data=[]models.AuditLog,meta=PageMeta} "Audit entries, newest first"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Admin role required"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /officers/{userId}/activity [get]
func (h *IncomeVerificationHandler) ListOfficerActivity(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil || userID == uuid.Nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("userId must be a UUID"))
	}

	offset, limit := getPagination(c)

	logs, total, err := h.auditService.GetUserActivity(c.Request().Context(), userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	if logs == nil {
		logs = []*models.AuditLog{}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: logs,
		Meta: PageMeta{Total: total, Offset: offset, Limit: limit},
	})
}

// audit never fails a read; a lost entry is only logged
func (h *IncomeVerificationHandler) audit(c echo.Context, err error) {
	if err == nil {
		return
	}

	slog.WarnContext(c.Request().Context(), "Failed to record audit entry",
		"trace_id", getTraceID(c),
		"path", c.Path(),
		"error", err.Error(),
	)
}
