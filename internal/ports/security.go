package ports

import (
	"context"
	"time"
)

// TokenClaims is the decoded content of a bearer token
type TokenClaims struct {
	ID        string
	UserID    uint
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed bearer tokens
type TokenService interface {
	Issue(ctx context.Context, userID uint, email string) (string, *TokenClaims, error)
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
