package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/model"
)

// TokenParser resolves a profile from bearer tokens.
type TokenParser interface {
	ParseToken(token string) (model.Profile, error)
}

// Authenticate validates bearer tokens and injects the profile into the
// request context.
type Authenticate struct {
	tokenParser    TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenParser TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenParser: tokenParser, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and attaches
// the profile to the request context. Requests without a valid token are
// rejected with 401.
func (m *Authenticate) Handle(c *gin.Context) {
	var tokenString string
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	profile, err := m.tokenParser.ParseToken(tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: token rejected",
			"error", err.Error())
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization token"})
		return
	}

	ctx := m.contextManager.SetProfileToContext(c.Request.Context(), profile)
	c.Request = c.Request.WithContext(ctx)

	c.Next()
}
