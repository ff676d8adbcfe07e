package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/model"
)

// RegistrationService defines user sign-up operations.
type RegistrationService interface {
	Register(ctx context.Context, credentials model.Credentials, role string) (model.User, error)
}

// AuthService defines login operations.
type AuthService interface {
	Login(ctx context.Context, credentials model.Credentials, requiredRole string) (string, error)
}

// Auth handles HTTP endpoints for registration and login.
type Auth struct {
	registrationService RegistrationService
	authService         AuthService
	logger              *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(registrationService RegistrationService, authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		registrationService: registrationService,
		authService:         authService,
		logger:              logger,
	}
}

type credentialsRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r credentialsRequest) toModel() model.Credentials {
	return model.Credentials{
		Email:     r.Email,
		Password:  r.Password,
		Role:      r.Role,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// SignUp registers a new ordinary user. Whatever role the request carries
// is overridden with the user role.
func (h *Auth) SignUp(c *gin.Context) {
	h.register(c, model.RoleUser)
}

// SignUpAdmin registers a new administrator.
func (h *Auth) SignUpAdmin(c *gin.Context) {
	h.register(c, model.RoleAdmin)
}

func (h *Auth) register(c *gin.Context, role string) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.logger.Debug("Auth handler: processing sign-up request",
		"email", req.Email,
		"role", role)

	user, err := h.registrationService.Register(c.Request.Context(), req.toModel(), role)
	if err != nil {
		h.logger.Info("Auth handler: sign-up failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: sign-up completed",
		"user_id", user.ID,
		"email", user.Email)

	c.JSON(http.StatusOK, newUserResponse(user))
}

// Login authenticates a user and returns a session token.
func (h *Auth) Login(c *gin.Context) {
	h.login(c, "")
}

// LoginAdmin authenticates an administrator and returns a session token.
// Accounts without the admin role are rejected.
func (h *Auth) LoginAdmin(c *gin.Context) {
	h.login(c, model.RoleAdmin)
}

func (h *Auth) login(c *gin.Context, requiredRole string) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	sessionToken, err := h.authService.Login(c.Request.Context(), req.toModel(), requiredRole)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: login completed",
		"email", req.Email)

	c.JSON(http.StatusOK, tokenResponse{Token: sessionToken})
}
