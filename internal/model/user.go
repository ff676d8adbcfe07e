package model

import (
	"context"
	"time"
)

// User roles. Entry points force one of these; a role submitted by the
// caller is never trusted.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id string) error
}

// User represents a stored user account. The ID is assigned by the store on
// creation. The password hash lives in a separate UserCredentials record and
// is never part of this record.
type User struct {
	ID        string
	Email     string
	Role      string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile is the reduced, token-safe view of a user used to mint and verify
// session tokens.
type Profile struct {
	UserID string
	Role   string
}

// ToProfile reduces the user to the claims carried by a session token.
func (u User) ToProfile() Profile {
	return Profile{UserID: u.ID, Role: u.Role}
}
