package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/userauth-server/internal/model"
)

// Claims represents JWT claims carrying the user profile.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWT creates a new JWT token manager with the provided secret key and
// token lifetime.
func NewJWT(secretKey string, tokenTTL time.Duration) *JWT {
	return &JWT{secretKey: secretKey, tokenTTL: tokenTTL}
}

var _ model.TokenManager = (*JWT)(nil)

// GenerateToken creates a signed, time-bounded session token binding the
// profile's claims.
func (j *JWT) GenerateToken(profile model.Profile) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
		UserID: profile.UserID,
		Role:   profile.Role,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrTokenIssuance, err)
	}

	return tokenString, nil
}

// ParseToken validates a session token and extracts the profile claims.
func (j *JWT) ParseToken(tokenString string) (model.Profile, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return model.Profile{}, fmt.Errorf("token is invalid")
	}
	if claims.UserID == "" {
		return model.Profile{}, fmt.Errorf("token has no subject")
	}

	return model.Profile{UserID: claims.UserID, Role: claims.Role}, nil
}
