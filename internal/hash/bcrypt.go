// Package hash provides the password hashing used for stored credentials.
package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/userauth-server/internal/model"
)

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt hashes passwords with a configurable work factor. The produced
// hash embeds its salt and cost, so hashes stored under an older cost keep
// verifying after the cost is raised.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a bcrypt hasher with the given cost. Costs outside the
// supported range fall back to the bcrypt default.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash produces a salted one-way hash of the password. Failure means the
// password cannot be stored safely and registration must stop.
func (b *Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrHashingUnavailable, err)
	}

	return string(hashed), nil
}

// Check reports whether the password matches the stored hash. A malformed
// hash is a mismatch, never an error.
func (b *Bcrypt) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
