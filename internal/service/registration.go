package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/model"
)

// Registration orchestrates user sign-up: validation, hashing and the
// two-step persistence of the user and its credentials record.
type Registration struct {
	userStore        model.UserStore
	credentialsStore model.CredentialsStore
	validator        model.CredentialValidator
	hasher           model.PasswordHasher
	logger           *logger.Logger
}

// NewRegistration creates a new Registration service.
func NewRegistration(
	userStore model.UserStore,
	credentialsStore model.CredentialsStore,
	validator model.CredentialValidator,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *Registration {
	return &Registration{
		userStore:        userStore,
		credentialsStore: credentialsStore,
		validator:        validator,
		hasher:           hasher,
		logger:           logger,
	}
}

// Register validates the credentials, hashes the password and persists the
// user and its credentials record. The role argument is forced by the entry
// point; whatever role the caller submitted is ignored. Each step is a
// precondition for the next: no hashing on invalid input, no persistence on
// a hashing failure, no credentials record for a user that was not created.
func (r *Registration) Register(ctx context.Context, credentials model.Credentials, role string) (model.User, error) {
	r.logger.Debug("Registration service: registering user",
		"email", credentials.Email,
		"role", role)

	if err := r.validator.Validate(credentials.Email, credentials.Password); err != nil {
		r.logger.Info("Registration service: credentials rejected",
			"email", credentials.Email,
			"error", err.Error())
		return model.User{}, err
	}

	passwordHash, err := r.hasher.Hash(credentials.Password)
	if err != nil {
		r.logger.Error("Registration service: failed to hash password",
			"email", credentials.Email,
			"error", err.Error())
		return model.User{}, err
	}

	user := model.User{
		Email:     credentials.Email,
		Role:      role,
		FirstName: credentials.FirstName,
		LastName:  credentials.LastName,
	}

	savedUser, err := r.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			r.logger.Info("Registration service: email already taken",
				"email", credentials.Email)
			return model.User{}, model.ErrDuplicateEmail
		}
		r.logger.Error("Registration service: failed to create user",
			"email", credentials.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	userCredentials := model.UserCredentials{
		UserID:       savedUser.ID,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	if err := r.credentialsStore.Create(ctx, userCredentials); err != nil {
		// The user exists without credentials at this point. Roll it
		// back so the orphan never becomes visible; a user with no
		// credentials record cannot log in either way.
		if delErr := r.userStore.Delete(ctx, savedUser.ID); delErr != nil {
			r.logger.Error("Registration service: failed to roll back user after credentials failure",
				"user_id", savedUser.ID,
				"email", credentials.Email,
				"error", delErr.Error())
		}
		r.logger.Error("Registration service: failed to create credentials",
			"user_id", savedUser.ID,
			"email", credentials.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user credentials: %w", err)
	}

	r.logger.Info("Registration service: user registered",
		"user_id", savedUser.ID,
		"email", savedUser.Email,
		"role", savedUser.Role)

	return savedUser, nil
}
