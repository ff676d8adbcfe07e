package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/dtroode/userauth-server/internal/api/http/context"
	"github.com/dtroode/userauth-server/internal/api/http/router"
	"github.com/dtroode/userauth-server/internal/config"
	"github.com/dtroode/userauth-server/internal/hash"
	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/model"
	"github.com/dtroode/userauth-server/internal/repository/mongo"
	"github.com/dtroode/userauth-server/internal/server"
	"github.com/dtroode/userauth-server/internal/service"
	"github.com/dtroode/userauth-server/internal/token"
	"github.com/dtroode/userauth-server/internal/validation"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := mongo.NewConnection(ctx, cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.Error("failed to close storage connection", "error", err)
		}
	}()

	userRepo := mongo.NewUserRepository(db)
	credentialsRepo := mongo.NewCredentialsRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to ensure user indexes", "error", err)
	}
	if err := credentialsRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to ensure credentials indexes", "error", err)
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	hasher := hash.NewBcrypt(cfg.Password.HashCost)
	validator := validation.NewCredentials()
	ctxMgr := httpctx.NewManager()

	registrationService := service.NewRegistration(userRepo, credentialsRepo, validator, hasher, logger)
	authService := service.NewAuth(userRepo, credentialsRepo, hasher, tokenManager, logger)
	userService := service.NewUser(userRepo, logger)

	r := router.New(registrationService, authService, userService, tokenManager, ctxMgr, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
