package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"localbuzz-feed-service/internal/custom_errors"
)

// respondError translates service sentinels into HTTP statuses. Anything
// unrecognized is a 500 with a generic body so internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrInvalidFeedTab),
		errors.Is(err, custom_errors.ErrInvalidCursor),
		errors.Is(err, custom_errors.ErrValidationFailed),
		errors.Is(err, custom_errors.ErrPostValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, custom_errors.ErrPostNotFound),
		errors.Is(err, custom_errors.ErrCommentNotFound),
		errors.Is(err, custom_errors.ErrUserNotFound),
		errors.Is(err, custom_errors.ErrVoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, custom_errors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, custom_errors.ErrAlreadyReported):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, custom_errors.ErrExternalServiceError):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
