package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-goblet/internal/api/shared/errors"
	"github.com/feral-file/ff-goblet/internal/domain"
	"github.com/feral-file/ff-goblet/internal/logger"
)

// domainStatuses maps ledger rule violations to HTTP statuses, first match wins
var domainStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrNotAuthorized, http.StatusForbidden},
	{domain.ErrInvalidAddress, http.StatusBadRequest},
	{domain.ErrUnknownGemType, http.StatusBadRequest},
	{domain.ErrInvalidAmount, http.StatusBadRequest},
	{domain.ErrInvalidCID, http.StatusBadRequest},
	{domain.ErrUnknownToken, http.StatusNotFound},
	{domain.ErrAlreadyAdmitted, http.StatusConflict},
	{domain.ErrAlreadyMinted, http.StatusConflict},
	{domain.ErrAlreadyMintedThisYear, http.StatusConflict},
	{domain.ErrNotAdmitted, http.StatusUnprocessableEntity},
	{domain.ErrInsufficientBalance, http.StatusUnprocessableEntity},
	{domain.ErrNotEligibleToMintGoblet, http.StatusUnprocessableEntity},
	{domain.ErrNotEligible, http.StatusUnprocessableEntity},
	{domain.ErrMintingNotStarted, http.StatusUnprocessableEntity},
	{domain.ErrSlotsExhausted, http.StatusGone},
	{domain.ErrOutOfMintingWindow, http.StatusGone},
	{domain.ErrSupplyExhausted, http.StatusGone},
	{domain.ErrNotDeployed, http.StatusServiceUnavailable},
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondUnauthorized responds with an unauthorized error
func respondUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError(message))
}

// respondInternalError responds with an internal server error
func respondInternalError(c *gin.Context, err error, message string, details ...string) {
	logger.ErrorCtx(c.Request.Context(), err,
		zap.String("message", message),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message, details...))
}

// respondError maps a ledger error to its status and code, falling back to an internal error
func respondError(c *gin.Context, err error, message string) {
	for _, d := range domainStatuses {
		if errors.Is(err, d.err) {
			code := apierrors.ErrorCode(domain.ErrorCode(err))
			c.JSON(d.status, apierrors.NewError(code, message, err.Error()))
			return
		}
	}
	respondInternalError(c, err, message)
}
