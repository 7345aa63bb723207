package handlers

import (
	"errors"
	"net/http"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP error taxonomy. The body
// carries a stable machine-readable type next to the human message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"type": "VALIDATION", "error": err.Error()})
	case errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"type": "REFRESH_TOKEN_EXPIRED", "error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"type": "UNAUTHORIZED", "error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"type": "FORBIDDEN", "error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"type": "NOT_FOUND", "error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"type": "CONFLICT", "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"type": "INTERNAL", "error": "internal server error"})
	}
}

// respondBindError reports a request body that failed binding or validation.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"type": "VALIDATION", "error": "Invalid request format: " + err.Error()})
}

// actorID extracts the authenticated user ID or aborts with 401.
func actorID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"type": "UNAUTHORIZED", "error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
