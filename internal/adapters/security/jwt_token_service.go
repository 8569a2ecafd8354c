package security

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

const minSecretBytes = 16

type tokenClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTTokenService implements the TokenService port with HS256 signed JWTs
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

// JWTTokenServiceConfig holds the configuration for creating a token service
type JWTTokenServiceConfig struct {
	Secret string
	TTL    time.Duration
	Clock  clockwork.Clock
}

// NewJWTTokenService creates a new token service
func NewJWTTokenService(config JWTTokenServiceConfig) (*JWTTokenService, error) {
	if len(config.Secret) < minSecretBytes {
		return nil, errors.NewConfigurationError("token secret is too short", nil)
	}
	if config.TTL <= 0 {
		return nil, errors.NewConfigurationError("token TTL must be positive", nil)
	}
	if config.Clock == nil {
		config.Clock = clockwork.NewRealClock()
	}

	return &JWTTokenService{
		secret: []byte(config.Secret),
		ttl:    config.TTL,
		clock:  config.Clock,
	}, nil
}

// Issue signs a token for the user valid for the configured TTL
func (s *JWTTokenService) Issue(ctx context.Context, userID uint, email string) (string, *ports.TokenClaims, error) {
	if userID == 0 {
		return "", nil, errors.NewValidationError("user ID cannot be zero")
	}

	now := s.clock.Now().UTC().Truncate(time.Second)
	claims := tokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, errors.NewTokenError("failed to sign token", err)
	}

	return signed, toPortClaims(&claims), nil
}

// Verify checks the signature and expiry of a token and returns its claims
func (s *JWTTokenService) Verify(ctx context.Context, token string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewTokenError("token expired", err)
		}
		return nil, errors.NewTokenError("invalid token", err)
	}
	if !parsed.Valid || claims.UserID == 0 {
		return nil, errors.NewTokenError("invalid token", nil)
	}

	return toPortClaims(claims), nil
}

func toPortClaims(c *tokenClaims) *ports.TokenClaims {
	out := &ports.TokenClaims{
		ID:     c.ID,
		UserID: c.UserID,
		Email:  c.Email,
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time.UTC()
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time.UTC()
	}
	return out
}
