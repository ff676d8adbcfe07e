package context

import (
	"context"

	"github.com/dtroode/userauth-server/internal/model"
)

type profileKey struct{}

// Manager stores and retrieves the authenticated profile in request
// contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

var _ model.ContextManager = (*Manager)(nil)

// SetProfileToContext returns a context carrying the authenticated profile.
func (m *Manager) SetProfileToContext(ctx context.Context, profile model.Profile) context.Context {
	return context.WithValue(ctx, profileKey{}, profile)
}

// GetProfileFromContext retrieves the authenticated profile from the
// context. The boolean reports whether a profile was present.
func (m *Manager) GetProfileFromContext(ctx context.Context) (model.Profile, bool) {
	profile, ok := ctx.Value(profileKey{}).(model.Profile)
	return profile, ok
}
