package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/model"
)

// UserService defines read operations on user records.
type UserService interface {
	Get(ctx context.Context, id string) (model.User, error)
}

// User handles authenticated HTTP endpoints for user records.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Me returns the authenticated caller's user record.
func (h *User) Me(c *gin.Context) {
	profile, ok := h.contextManager.GetProfileFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	user, err := h.userService.Get(c.Request.Context(), profile.UserID)
	if err != nil {
		h.logger.Error("User handler: failed to get current user",
			"user_id", profile.UserID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// GetByID returns a user by id. Restricted to administrators.
func (h *User) GetByID(c *gin.Context) {
	profile, ok := h.contextManager.GetProfileFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	if profile.Role != model.RoleAdmin {
		handleError(c, model.ErrForbidden)
		return
	}

	userID := c.Param("userId")

	user, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		h.logger.Info("User handler: failed to get user",
			"user_id", userID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
