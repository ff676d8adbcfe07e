package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/model"
)

// User exposes read access to user records for authenticated endpoints.
type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

// NewUser creates a new User service.
func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{userStore: userStore, logger: logger}
}

// Get returns the user with the given id.
func (u *User) Get(ctx context.Context, id string) (model.User, error) {
	user, err := u.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
