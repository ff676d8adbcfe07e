// Package validation checks sign-up and login input before any hashing or
// persistence happens.
package validation

import (
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/dtroode/userauth-server/internal/model"
)

// MinPasswordLength is the policy minimum. A password must additionally
// contain at least one letter and one digit.
const MinPasswordLength = 8

var _ model.CredentialValidator = (*Credentials)(nil)

// Credentials validates email/password pairs. It is pure: no side effects,
// same result for the same input.
type Credentials struct {
	validate *validator.Validate
}

// NewCredentials creates a credentials validator.
func NewCredentials() *Credentials {
	return &Credentials{validate: validator.New()}
}

// Validate checks the email shape and the password policy. It reports both
// failures at once so callers can surface them together.
func (c *Credentials) Validate(email, password string) error {
	vErr := &model.ValidationError{}

	if err := c.validate.Var(email, "required,email"); err != nil {
		vErr.InvalidEmail = true
	}

	if !passwordMeetsPolicy(password) {
		vErr.WeakPassword = true
	}

	if vErr.InvalidEmail || vErr.WeakPassword {
		return vErr
	}

	return nil
}

func passwordMeetsPolicy(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsControl(r):
			return false
		}
	}

	return hasLetter && hasDigit
}
