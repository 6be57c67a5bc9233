package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/jewellery_billing_app/internal/apperrors"
	"github.com/SscSPs/jewellery_billing_app/internal/core/pricing"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// Machine readable codes for pricing failures.
const (
	codeRateMissing    = "RATE_MISSING"
	codeDivisionByZero = "DIVISION_BY_ZERO"
	codeInvalidInput   = "INVALID_INPUT"
)

// toErrorResponse maps a service error to its HTTP status and body.
// failMsg is the body used for unexpected errors so internals are not leaked.
func toErrorResponse(err error, failMsg string) (int, dto.ErrorResponse) {
	if fe, ok := pricing.AsFieldError(err); ok {
		body := dto.ErrorResponse{Error: fe.Error(), Field: fe.Field}
		switch {
		case errors.Is(fe, apperrors.ErrMissingRate):
			body.Code = codeRateMissing
			return http.StatusUnprocessableEntity, body
		case errors.Is(fe, apperrors.ErrDivisionByZero):
			body.Code = codeDivisionByZero
			return http.StatusUnprocessableEntity, body
		default:
			body.Code = codeInvalidInput
			return http.StatusBadRequest, body
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, dto.ErrorResponse{Error: err.Error()}
	}
	return http.StatusInternalServerError, dto.ErrorResponse{Error: failMsg}
}

// respondError logs err at a level matching its status and writes the mapped response.
func respondError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	status, body := toErrorResponse(err, failMsg)
	if status >= http.StatusInternalServerError {
		logger.Error(failMsg, slog.String("error", err.Error()))
	} else {
		logger.Warn(failMsg, slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, body)
}

func badRequest(c *gin.Context, logger *slog.Logger, action string, err error) {
	logger.Warn("Failed to bind request for "+action, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}
