package model

import "errors"

var (
	// ErrNotFound is returned by stores when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a user create hits the unique
	// email index. Stores translate their engine's duplicate-key error
	// into this value so services never inspect driver errors.
	ErrDuplicateEmail = errors.New("email is already taken")

	// ErrInvalidCredentials covers unknown email, wrong password and a
	// missing credentials record alike. The shape is deliberately
	// identical so callers cannot tell which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrHashingUnavailable means a password could not be hashed and
	// therefore cannot be stored safely.
	ErrHashingUnavailable = errors.New("password hashing unavailable")

	// ErrTokenIssuance means a session token could not be signed.
	ErrTokenIssuance = errors.New("token issuance failed")

	// ErrForbidden means the authenticated user lacks the required role.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports which parts of a credentials pair failed
// structural validation.
type ValidationError struct {
	InvalidEmail bool
	WeakPassword bool
}

func (e *ValidationError) Error() string {
	switch {
	case e.InvalidEmail && e.WeakPassword:
		return "invalid email and password does not meet the policy"
	case e.InvalidEmail:
		return "invalid email"
	case e.WeakPassword:
		return "password does not meet the policy"
	default:
		return "invalid credentials input"
	}
}
