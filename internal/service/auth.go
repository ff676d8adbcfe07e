package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/model"
)

// dummyHash is a well-formed bcrypt hash compared against when the user or
// its credentials record is missing, so those paths cost the same as a
// wrong password and login failures stay indistinguishable by timing.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Auth orchestrates login: credential verification against the stored hash
// and session token issuance.
type Auth struct {
	userStore        model.UserStore
	credentialsStore model.CredentialsStore
	hasher           model.PasswordHasher
	tokenManager     model.TokenManager
	logger           *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	userStore model.UserStore,
	credentialsStore model.CredentialsStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:        userStore,
		credentialsStore: credentialsStore,
		hasher:           hasher,
		tokenManager:     tokenManager,
		logger:           logger,
	}
}

// Login verifies the submitted credentials and returns a session token.
// Unknown email, missing credentials record and wrong password all fail
// with the same ErrInvalidCredentials. When requiredRole is non-empty the
// authenticated user must hold that role; a mismatch fails with the same
// error so the endpoint does not reveal which accounts exist or what role
// they hold.
func (a *Auth) Login(ctx context.Context, credentials model.Credentials, requiredRole string) (string, error) {
	a.logger.Debug("Auth service: login attempt",
		"email", credentials.Email)

	user, err := a.userStore.GetByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.hasher.Check(credentials.Password, dummyHash)
			a.logger.Info("Auth service: login for unknown email",
				"email", credentials.Email)
			return "", model.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	userCredentials, err := a.credentialsStore.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// A user without a credentials record is a registration
			// orphan; it must not be logged-in capable.
			a.hasher.Check(credentials.Password, dummyHash)
			a.logger.Error("Auth service: user has no credentials record",
				"user_id", user.ID,
				"email", credentials.Email)
			return "", model.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get credentials by user id: %w", err)
	}

	if !a.hasher.Check(credentials.Password, userCredentials.PasswordHash) {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID,
			"email", credentials.Email)
		return "", model.ErrInvalidCredentials
	}

	if requiredRole != "" && user.Role != requiredRole {
		a.logger.Info("Auth service: role requirement not met",
			"user_id", user.ID,
			"required_role", requiredRole)
		return "", model.ErrInvalidCredentials
	}

	sessionToken, err := a.tokenManager.GenerateToken(user.ToProfile())
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login successful",
		"user_id", user.ID,
		"email", credentials.Email)

	return sessionToken, nil
}
