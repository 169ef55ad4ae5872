package handlers

import (
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"credit-backoffice/internal/dto"
	"credit-backoffice/internal/errors"
	"credit-backoffice/internal/services"

	"github.com/labstack/echo/v4"
)

// StatementFormField is the multipart field carrying an extracted statement
const StatementFormField = "statement"

// StatementHandler parses statements without storing anything
type StatementHandler struct {
	verificationService services.IncomeVerificationServiceInterface
	auditService        services.AuditServiceInterface
	maxBytes            int64
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(
	verificationService services.IncomeVerificationServiceInterface,
	auditService services.AuditServiceInterface,
	maxBytes int64,
) *StatementHandler {
	return &StatementHandler{
		verificationService: verificationService,
		auditService:        auditService,
		maxBytes:            maxBytes,
	}
}

// ParseStatement extracts the income report from one statement
// @Summary Parse a statement
// @Description Parse already extracted statement text and report the income it contains
// @Tags Statements
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param request body dto.ParseStatementRequest false "Statement text"
// @Param statement formData file false "Statement text file"
// @Success 200 {object} dto.IncomeReportResponse "Income report"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or STATEMENT_003 - Unreadable upload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 413 {object} errors.ErrorResponse "STATEMENT_002 - Statement too large"
// @Failure 422 {object} errors.ErrorResponse "STATEMENT_001 - Statement is empty"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /statements/parse [post]
func (h *StatementHandler) ParseStatement(c echo.Context) error {
	text, err := h.readStatement(c)
	if err != nil {
		return sendRequestError(c, err)
	}

	ctx := c.Request().Context()

	report, err := h.verificationService.ParseStatement(ctx, text)
	if err != nil {
		return sendStatementError(c, err)
	}

	if err := h.auditService.LogStatementParsed(ctx, actorFromContext(c), report); err != nil {
		slog.WarnContext(ctx, "Failed to record statement audit entry",
			"trace_id", getTraceID(c),
			"error", err.Error(),
		)
	}

	return c.JSON(http.StatusOK, dto.NewIncomeReportResponse(report))
}

// requestError is a client mistake found while reading the request
type requestError struct {
	code    errors.ErrorCode
	details []string
}

func (e *requestError) Error() string {
	return string(e.code) + ": " + strings.Join(e.details, "; ")
}

func newRequestError(code errors.ErrorCode, details ...string) error {
	return &requestError{code: code, details: details}
}

func sendRequestError(c echo.Context, err error) error {
	var reqErr *requestError
	if stderrors.As(err, &reqErr) {
		return SendError(c, reqErr.code, errors.WithDetails(reqErr.details...))
	}
	return SendSystemError(c, err)
}

// readStatement takes the statement from a multipart upload or a JSON body
func (h *StatementHandler) readStatement(c echo.Context) (string, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return h.readUpload(c)
	}

	var req dto.ParseStatementRequest
	if err := c.Bind(&req); err != nil {
		return "", newRequestError(errors.ValidationGeneral, "Invalid request body")
	}

	return req.StatementText, nil
}

func (h *StatementHandler) readUpload(c echo.Context) (string, error) {
	fileHeader, err := c.FormFile(StatementFormField)
	if err != nil {
		return "", newRequestError(errors.StatementUnreadableUpload,
			"multipart field '"+StatementFormField+"' is required")
	}

	if h.maxBytes > 0 && fileHeader.Size > h.maxBytes {
		return "", newRequestError(errors.StatementTooLarge)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", newRequestError(errors.StatementUnreadableUpload, err.Error())
	}
	defer file.Close()

	var reader io.Reader = file
	if h.maxBytes > 0 {
		reader = io.LimitReader(file, h.maxBytes+1)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", newRequestError(errors.StatementUnreadableUpload, err.Error())
	}

	return string(content), nil
}

// sendStatementError maps service failures shared by every statement endpoint
func sendStatementError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrEmptyStatement):
		return SendError(c, errors.StatementEmpty)
	case stderrors.Is(err, services.ErrStatementTooLarge):
		return SendError(c, errors.StatementTooLarge)
	case stderrors.Is(err, services.ErrInvalidVerificationInput):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
