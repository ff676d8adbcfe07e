package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/userauth-server/internal/model"
)

// handleError maps model error kinds to HTTP statuses: validation failures
// are unprocessable input, a duplicate email is a conflict, credential
// failures are unauthorized, everything else is internal.
func handleError(c *gin.Context, err error) {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error()})
		return
	}

	switch {
	case errors.Is(err, model.ErrDuplicateEmail):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "email value is already taken"})
	case errors.Is(err, model.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
	case errors.Is(err, model.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, model.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
