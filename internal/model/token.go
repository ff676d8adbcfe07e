package model

// TokenManager issues and validates session tokens.
type TokenManager interface {
	GenerateToken(profile Profile) (string, error)
	ParseToken(token string) (Profile, error)
}
