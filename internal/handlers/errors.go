package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/banking_portal/internal/apperrors"
	"github.com/SscSPs/banking_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps service errors to HTTP status codes. Order matters:
// ErrPinAlreadyExists is also an ErrUnauthorized.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrPinAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrInsufficientBalance),
		errors.Is(err, apperrors.ErrInvalidPin),
		errors.Is(err, apperrors.ErrFundTransfer),
		errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrIllegalLoanState),
		errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes the error response for err. Internal failures are
// logged and reported with a generic message so no infrastructure detail leaks.
func respondWithError(c *gin.Context, err error, internalMsg string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: internalMsg})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// respondBindError reports a request that could not be bound or validated.
func respondBindError(c *gin.Context, err error, operation string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request for "+operation, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// requireAccountNumber returns the authenticated account number, or writes 401.
func requireAccountNumber(c *gin.Context) (string, bool) {
	accountNumber, ok := middleware.GetAccountNumberFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Account number not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return accountNumber, true
}
