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

func TestRegistration_Register_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	userStore := mocks.NewUserStore(t)
	credentialsStore := mocks.NewCredentialsStore(t)
	validator := mocks.NewCredentialValidator(t)
	hasher := mocks.NewPasswordHasher(t)

	validator.On("Validate", "alice@example.com", "Str0ngPass!").Return(nil)
	hasher.On("Hash", "Str0ngPass!").Return("hashed", nil)
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "alice@example.com" && u.Role == model.RoleUser
	})).Return(model.User{ID: "user-1", Email: "alice@example.com", Role: model.RoleUser}, nil)
	credentialsStore.On("Create", mock.Anything, mock.MatchedBy(func(c model.UserCredentials) bool {
		return c.UserID == "user-1" && c.PasswordHash == "hashed"
	})).Return(nil)

	r := NewRegistration(userStore, credentialsStore, validator, hasher, testutil.MakeNoopLogger())

	user, err := r.Register(ctx, model.Credentials{Email: "alice@example.com", Password: "Str0ngPass!"}, model.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestRegistration_Register_ForcedRoleOverridesSubmitted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	userStore := mocks.NewUserStore(t)
	credentialsStore := mocks.NewCredentialsStore(t)
	validator := mocks.NewCredentialValidator(t)
	hasher := mocks.NewPasswordHasher(t)

	validator.On("Validate", "bob@example.com", "Str0ngPass!").Return(nil)
	hasher.On("Hash", "Str0ngPass!").Return("hashed", nil)
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Role == model.RoleAdmin
	})).Return(model.User{ID: "user-2", Email: "bob@example.com", Role: model.RoleAdmin}, nil)
	credentialsStore.On("Create", mock.Anything, mock.Anything).Return(nil)

	r := NewRegistration(userStore, credentialsStore, validator, hasher, testutil.MakeNoopLogger())

	// Caller claims to be an ordinary user; the admin entry point wins.
	credentials := model.Credentials{Email: "bob@example.com", Password: "Str0ngPass!", Role: model.RoleUser}

	user, err := r.Register(ctx, credentials, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestRegistration_Register_ValidationFailure_NoSideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	userStore := mocks.NewUserStore(t)
	credentialsStore := mocks.NewCredentialsStore(t)
	validator := mocks.NewCredentialValidator(t)
	hasher := mocks.NewPasswordHasher(t)

	vErr := &model.ValidationError{WeakPassword: true}
	validator.On("Validate", "alice@example.com", "short").Return(vErr)

	r := NewRegistration(userStore, credentialsStore, validator, hasher, testutil.MakeNoopLogger())

	_, err := r.Register(ctx, model.Credentials{Email: "alice@example.com", Password: "short"}, model.RoleUser)
	require.Error(t, err)

	var got *model.ValidationError
	require.ErrorAs(t, err, &got)
	assert.True(t, got.WeakPassword)

	hasher.AssertNotCalled(t, "Hash", mock.Anything)
	userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	credentialsStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegistration_Register_HashingFailure_NoPersistence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	userStore := mocks.NewUserStore(t)
	credentialsStore := mocks.NewCredentialsStore(t)
	validator := mocks.NewCredentialValidator(t)
	hasher := mocks.NewPasswordHasher(t)

	validator.On("Validate", "alice@example.com", "Str0ngPass!").Return(nil)
	hasher.On("Hash", "Str0ngPass!").Return("", model.ErrHashingUnavailable)

	r := NewRegistration(userStore, credentialsStore, validator, hasher, testutil.MakeNoopLogger())

	_, err := r.Register(ctx, model.Credentials{Email: "alice@example.com", Password: "Str0ngPass!"}, model.RoleUser)
	require.ErrorIs(t, err, model.ErrHashingUnavailable)

	userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	credentialsStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegistration_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	userStore := mocks.NewUserStore(t)
	credentialsStore := mocks.NewCredentialsStore(t)
	validator := mocks.NewCredentialValidator(t)
	hasher := mocks.NewPasswordHasher(t)

	validator.On("Validate", "alice@example.com", "Other1234!").Return(nil)
	hasher.On("Hash", "Other1234!").Return("hashed", nil)
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrDuplicateEmail)

	r := NewRegistration(userStore, credentialsStore, validator, hasher, testutil.MakeNoopLogger())

	_, err := r.Register(ctx, model.Credentials{Email: "alice@example.com", Password: "Other1234!"}, model.RoleUser)
	require.ErrorIs(t, err, model.ErrDuplicateEmail)

	credentialsStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegistration_Register_CredentialsFailure_RollsBackUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	userStore := mocks.NewUserStore(t)
	credentialsStore := mocks.NewCredentialsStore(t)
	validator := mocks.NewCredentialValidator(t)
	hasher := mocks.NewPasswordHasher(t)

	validator.On("Validate", "alice@example.com", "Str0ngPass!").Return(nil)
	hasher.On("Hash", "Str0ngPass!").Return("hashed", nil)
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{ID: "user-1", Email: "alice@example.com", Role: model.RoleUser}, nil)
	credentialsStore.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)
	userStore.On("Delete", mock.Anything, "user-1").Return(nil)

	r := NewRegistration(userStore, credentialsStore, validator, hasher, testutil.MakeNoopLogger())

	_, err := r.Register(ctx, model.Credentials{Email: "alice@example.com", Password: "Str0ngPass!"}, model.RoleUser)
	require.Error(t, err)

	userStore.AssertCalled(t, "Delete", mock.Anything, "user-1")
}

func TestRegistration_Register_PlaintextNeverStored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	userStore := mocks.NewUserStore(t)
	credentialsStore := mocks.NewCredentialsStore(t)
	validator := mocks.NewCredentialValidator(t)
	hasher := mocks.NewPasswordHasher(t)

	validator.On("Validate", "alice@example.com", "Str0ngPass!").Return(nil)
	hasher.On("Hash", "Str0ngPass!").Return("hashed", nil)
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{ID: "user-1"}, nil)
	credentialsStore.On("Create", mock.Anything, mock.MatchedBy(func(c model.UserCredentials) bool {
		return c.PasswordHash != "Str0ngPass!"
	})).Return(nil)

	r := NewRegistration(userStore, credentialsStore, validator, hasher, testutil.MakeNoopLogger())

	_, err := r.Register(ctx, model.Credentials{Email: "alice@example.com", Password: "Str0ngPass!"}, model.RoleUser)
	require.NoError(t, err)
}
