package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dtroode/userauth-server/internal/api/http/handler"
	"github.com/dtroode/userauth-server/internal/api/http/middleware"
	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/model"
	"github.com/dtroode/userauth-server/internal/service"
)

// Router wires HTTP routes, handlers and middleware.
type Router struct {
	registrationService *service.Registration
	authService         *service.Auth
	userService         *service.User
	tokenManager        model.TokenManager
	contextManager      model.ContextManager
	logger              *logger.Logger
}

// New creates a new Router instance.
func New(
	registrationService *service.Registration,
	authService *service.Auth,
	userService *service.User,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		registrationService: registrationService,
		authService:         authService,
		userService:         userService,
		tokenManager:        tokenManager,
		contextManager:      contextManager,
		logger:              logger,
	}
}

// Register builds the gin engine with all routes and middleware. Sign-up
// and login are public; user reads require a bearer token.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle)

	authHandler := handler.NewAuth(r.registrationService, r.authService, r.logger)
	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)

	users := engine.Group("/users")
	{
		users.POST("/sign-up", authHandler.SignUp)
		users.POST("/sign-up/admin", authHandler.SignUpAdmin)
		users.POST("/login", authHandler.Login)
		users.POST("/login/admin", authHandler.LoginAdmin)

		authenticated := users.Group("", authenticate.Handle)
		authenticated.GET("/me", userHandler.Me)
		authenticated.GET("/:userId", userHandler.GetByID)
	}

	return engine
}
