package model

import "context"

// ContextManager carries the authenticated profile through request contexts.
type ContextManager interface {
	SetProfileToContext(ctx context.Context, profile Profile) context.Context
	GetProfileFromContext(ctx context.Context) (Profile, bool)
}
