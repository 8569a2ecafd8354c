package auth

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

const invalidCredentials = "Invalid credentials"

type UseCase struct {
	userRepo ports.UserRepository
	tokens   ports.TokenService
	hasher   ports.PasswordHasher
	config   ports.ConfigProvider
	metrics  ports.MetricsCollector
	clock    clockwork.Clock
	logger   ports.Logger
}

type UseCaseDependencies struct {
	UserRepo ports.UserRepository
	Tokens   ports.TokenService
	Hasher   ports.PasswordHasher
	Config   ports.ConfigProvider
	Metrics  ports.MetricsCollector
	Clock    clockwork.Clock
	Logger   ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.UserRepo == nil {
		return nil, errors.NewValidationError("user repository is required")
	}
	if deps.Tokens == nil {
		return nil, errors.NewValidationError("token service is required")
	}
	if deps.Hasher == nil {
		return nil, errors.NewValidationError("password hasher is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config provider is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	return &UseCase{
		userRepo: deps.UserRepo,
		tokens:   deps.Tokens,
		hasher:   deps.Hasher,
		config:   deps.Config,
		metrics:  deps.Metrics,
		clock:    deps.Clock,
		logger:   deps.Logger,
	}, nil
}

// Authenticate checks credentials and issues a bearer token.
// Missing fields are rejected before the store is touched.
func (uc *UseCase) Authenticate(ctx context.Context, creds Credentials) (*Result, error) {
	if err := creds.IsValid(); err != nil {
		uc.recordLogin(OutcomeBadRequest)
		return nil, errors.NewValidationError(err.Error())
	}
	creds.Normalize()

	user, err := uc.userRepo.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Info("Login rejected: unknown email", ports.F("email", creds.Email))
			uc.recordLogin(OutcomeInvalid)
			return nil, errors.NewAuthError(invalidCredentials)
		}
		uc.logger.Error("Failed to look up user", ports.F("email", creds.Email), ports.F("error", err))
		uc.recordLogin(OutcomeInternalFailed)
		return nil, fmt.Errorf("authenticate %s: %w", creds.Email, err)
	}

	if !uc.config.GetAuthConfig().DemoMode {
		if err := uc.hasher.Compare(user.PasswordHash, creds.Password); err != nil {
			uc.logger.Info("Login rejected: password mismatch", ports.F("user_id", user.ID))
			uc.recordLogin(OutcomeInvalid)
			return nil, errors.NewAuthError(invalidCredentials)
		}
	}

	token, claims, err := uc.tokens.Issue(ctx, user.ID, user.Email)
	if err != nil {
		uc.logger.Error("Failed to issue token", ports.F("user_id", user.ID), ports.F("error", err))
		uc.recordLogin(OutcomeInternalFailed)
		return nil, fmt.Errorf("issue token for user %d: %w", user.ID, err)
	}

	now := uc.clock.Now().UTC()
	if err := uc.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		uc.logger.Warn("Failed to record last login", ports.F("user_id", user.ID), ports.F("error", err))
	} else {
		user.LastLogin = &now
	}

	uc.logger.Info("User authenticated", ports.F("user_id", user.ID))
	uc.recordLogin(OutcomeSuccess)

	return &Result{
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
		User:      toUser(user),
	}, nil
}

// VerifyToken decodes a bearer token issued by Authenticate
func (uc *UseCase) VerifyToken(ctx context.Context, token string) (*ports.TokenClaims, error) {
	if token == "" {
		return nil, errors.NewTokenError("missing bearer token", nil)
	}

	claims, err := uc.tokens.Verify(ctx, token)
	if err != nil {
		if errors.IsTokenError(err) {
			return nil, err
		}
		return nil, errors.NewTokenError("invalid token", err)
	}
	return claims, nil
}

// Profile returns the user a verified token belongs to
func (uc *UseCase) Profile(ctx context.Context, userID uint) (*User, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewTokenError("token subject no longer exists", err)
		}
		return nil, fmt.Errorf("load profile of user %d: %w", userID, err)
	}

	profile := toUser(user)
	return &profile, nil
}

func (uc *UseCase) recordLogin(outcome string) {
	if uc.metrics != nil {
		uc.metrics.RecordLogin(outcome)
	}
}

func toUser(data *ports.UserData) User {
	return User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Organization: data.Organization,
		CreatedAt:    data.CreatedAt,
		LastLogin:    data.LastLogin,
	}
}
