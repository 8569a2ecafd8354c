package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

// UserRepositoryAdapter implements the UserRepository port using GORM
type UserRepositoryAdapter struct {
	db *gorm.DB
}

// NewUserRepositoryAdapter creates a new user repository adapter
func NewUserRepositoryAdapter(db *gorm.DB) ports.UserRepository {
	return &UserRepositoryAdapter{db: db}
}

// FindByEmail retrieves a user by email
func (r *UserRepositoryAdapter) FindByEmail(ctx context.Context, email string) (*ports.UserData, error) {
	if email == "" {
		return nil, errors.NewValidationError("email cannot be empty")
	}

	var model UserModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.NewDatabaseError("failed to find user by email", result.Error)
	}

	return r.modelToData(&model), nil
}

// FindByID retrieves a user by its ID
func (r *UserRepositoryAdapter) FindByID(ctx context.Context, id uint) (*ports.UserData, error) {
	if id == 0 {
		return nil, errors.NewValidationError("user ID cannot be zero")
	}

	var model UserModel
	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.NewDatabaseError("failed to find user by ID", result.Error)
	}

	return r.modelToData(&model), nil
}

// TouchLastLogin stores the time of the latest successful login
func (r *UserRepositoryAdapter) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	if id == 0 {
		return errors.NewValidationError("user ID cannot be zero")
	}

	result := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Update("last_login", at)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to update last login", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}

	return nil
}

// modelToData converts database model to port data
func (r *UserRepositoryAdapter) modelToData(model *UserModel) *ports.UserData {
	return &ports.UserData{
		ID:           model.ID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Name:         model.Name,
		Organization: model.Organization,
		CreatedAt:    model.CreatedAt,
		LastLogin:    model.LastLogin,
	}
}
