package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/userauth-server/internal/mocks"
	"github.com/dtroode/userauth-server/internal/model"
	"github.com/dtroode/userauth-server/internal/testutil"
)

func TestUser_Get_Success(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewUserStore(t)
	userStore.On("GetByID", mock.Anything, "user-1").Return(model.User{ID: "user-1", Email: "alice@example.com"}, nil)

	s := NewUser(userStore, testutil.MakeNoopLogger())

	user, err := s.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUser_Get_NotFound(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewUserStore(t)
	userStore.On("GetByID", mock.Anything, "missing").Return(model.User{}, model.ErrNotFound)

	s := NewUser(userStore, testutil.MakeNoopLogger())

	_, err := s.Get(context.Background(), "missing")
	require.ErrorIs(t, err, model.ErrNotFound)
}
