package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"bankist/internal/dto"
	"bankist/internal/errors"
	"bankist/internal/models"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles requests acting on the logged-in account
type AccountHandler struct {
	sessions services.SessionServiceInterface
	now      func() time.Time
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(sessions services.SessionServiceInterface) *AccountHandler {
	return &AccountHandler{sessions: sessions, now: time.Now}
}

// GetOverview returns balance, summary and movements of the logged-in account
// @Summary Account overview
// @Tags Account
// @Produce json
// @Param sort query string false "Movement order by amount" Enums(asc, desc)
// @Success 200 {object} dto.OverviewResponse "Account overview"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid sort"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - No active session"
// @Router /api/v1/account [get]
func (h *AccountHandler) GetOverview(c echo.Context) error {
	sort := c.QueryParam("sort")
	if !models.IsValidSortOrder(sort) {
		return SendError(c, errors.ValidationInvalidSort)
	}

	overview, err := h.sessions.Overview(models.SortOrder(sort))
	if err != nil {
		if stderrors.Is(err, services.ErrNoSession) {
			return SendError(c, errors.AuthNoActiveSession)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewOverviewResponse(overview, h.now()))
}

// Transfer moves money to another account
// @Summary Transfer money
// @Description Rejected transfers return 200 with status "rejected" and leave every account unchanged.
// @Tags Account
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Recipient and amount"
// @Success 200 {object} dto.OperationResponse "Operation outcome"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - No active session"
// @Router /api/v1/transfers [post]
func (h *AccountHandler) Transfer(c echo.Context) error {
	var req dto.TransferRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result := h.sessions.Transfer(c.Request().Context(), req.To, req.Amount)
	if code, ok := errors.ForRejection(result); ok {
		return SendError(c, code)
	}
	return c.JSON(http.StatusOK, h.operationResponse(result))
}

// RequestLoan asks for a loan. Approved loans are credited after a delay.
// @Summary Request a loan
// @Tags Account
// @Accept json
// @Produce json
// @Param request body dto.LoanRequest true "Loan amount"
// @Success 200 {object} dto.OperationResponse "Scheduled or rejected"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - No active session"
// @Router /api/v1/loans [post]
func (h *AccountHandler) RequestLoan(c echo.Context) error {
	var req dto.LoanRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result := h.sessions.RequestLoan(c.Request().Context(), req.Amount)
	return sendOperation(c, result, dto.NewOperationResponse(result))
}

// CloseAccount deletes the logged-in account after its credentials are repeated
// @Summary Close account
// @Tags Account
// @Accept json
// @Produce json
// @Param request body dto.CloseAccountRequest true "Confirmation credentials"
// @Success 200 {object} dto.OperationResponse "Applied or rejected"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - No active session"
// @Router /api/v1/account/close [post]
func (h *AccountHandler) CloseAccount(c echo.Context) error {
	var req dto.CloseAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result := h.sessions.CloseAccount(c.Request().Context(), req.ShortID, req.PIN)
	return sendOperation(c, result, dto.NewOperationResponse(result))
}

// operationResponse attaches the refreshed overview while a session is active
func (h *AccountHandler) operationResponse(result models.OperationResult) *dto.OperationResponse {
	resp := dto.NewOperationResponse(result)
	if overview, err := h.sessions.Overview(models.SortNone); err == nil {
		resp.Overview = dto.NewOverviewResponse(overview, h.now())
	}
	return resp
}
