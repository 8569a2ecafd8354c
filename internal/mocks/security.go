package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"terraweave.app/internal/ports"
)

// TokenService is a testify mock of ports.TokenService
type TokenService struct {
	mock.Mock
}

func NewTokenService(t testingT) *TokenService {
	m := &TokenService{}
	register(t, &m.Mock)
	return m
}

func (m *TokenService) Issue(ctx context.Context, userID uint, email string) (string, *ports.TokenClaims, error) {
	args := m.Called(ctx, userID, email)
	claims, _ := args.Get(1).(*ports.TokenClaims)
	return args.String(0), claims, args.Error(2)
}

func (m *TokenService) Verify(ctx context.Context, token string) (*ports.TokenClaims, error) {
	args := m.Called(ctx, token)
	claims, _ := args.Get(0).(*ports.TokenClaims)
	return claims, args.Error(1)
}

// PasswordHasher is a testify mock of ports.PasswordHasher
type PasswordHasher struct {
	mock.Mock
}

func NewPasswordHasher(t testingT) *PasswordHasher {
	m := &PasswordHasher{}
	register(t, &m.Mock)
	return m
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}
