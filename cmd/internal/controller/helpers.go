package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"intervia-backend/internal/apperror"
)

// currentUserID pulls the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	uid, ok := userIDVal.(string)
	if !ok || uid == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID"})
		return "", false
	}
	return uid, true
}

// respondError maps the error taxonomy to HTTP statuses.
func respondError(c *gin.Context, err error) {
	var validationErr *apperror.ValidationError
	var schemaErr *apperror.SchemaValidationError
	var persistErr *apperror.PersistenceError

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperror.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &schemaErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generated content failed validation", "detail": schemaErr.Error()})
	case errors.As(err, &persistErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save results", "detail": persistErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
