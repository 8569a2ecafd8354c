package database

import (
	"context"

	"gorm.io/gorm"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

// UserActionRepositoryAdapter implements the UserActionRepository port using GORM
type UserActionRepositoryAdapter struct {
	db *gorm.DB
}

// NewUserActionRepositoryAdapter creates a new user action repository adapter
func NewUserActionRepositoryAdapter(db *gorm.DB) ports.UserActionRepository {
	return &UserActionRepositoryAdapter{db: db}
}

// ListCompletedByUser retrieves the actions a user has taken, with the recommendation text
func (r *UserActionRepositoryAdapter) ListCompletedByUser(ctx context.Context, userID uint) ([]*ports.UserActionData, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user ID cannot be zero")
	}

	var models []UserActionModel
	result := r.db.WithContext(ctx).
		Joins("Recommendation").
		Where("user_actions.user_id = ? AND user_actions.action_taken = ?", userID, true).
		Order("user_actions.date_completed ASC").
		Order("user_actions.id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list user actions", result.Error)
	}

	actions := make([]*ports.UserActionData, len(models))
	for i := range models {
		m := &models[i]
		actions[i] = &ports.UserActionData{
			ID:               m.ID,
			UserID:           m.UserID,
			RecommendationID: m.RecommendationID,
			ActionTaken:      m.ActionTaken,
			DateCompleted:    m.DateCompleted,
			ImpactCO2:        m.ImpactCO2,
			Notes:            m.Notes,
		}
		if m.Recommendation != nil {
			actions[i].RecommendationText = m.Recommendation.RecommendationText
		}
	}

	return actions, nil
}
