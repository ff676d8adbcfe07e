package model

import (
	"context"
	"time"
)

// CredentialsStore defines persistence operations for user credential
// records.
type CredentialsStore interface {
	Create(ctx context.Context, credentials UserCredentials) error
	GetByUserID(ctx context.Context, userID string) (UserCredentials, error)
}

// UserCredentials holds the password hash for one user, keyed by the owning
// user's ID. Exactly one record exists per registered user.
type UserCredentials struct {
	UserID       string
	PasswordHash string
	CreatedAt    time.Time
}

// Credentials is the transient sign-up/login input. Role is what the caller
// submitted; registration entry points override it and it must never be
// persisted as-is.
type Credentials struct {
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
}

// CredentialValidator checks an email/password pair before any hashing or
// persistence happens.
type CredentialValidator interface {
	Validate(email, password string) error
}

// PasswordHasher transforms plaintext passwords into storable hashes and
// verifies candidates against them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
