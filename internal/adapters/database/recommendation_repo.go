package database

import (
	"context"

	"gorm.io/gorm"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

// RecommendationRepositoryAdapter implements the RecommendationRepository port using GORM
type RecommendationRepositoryAdapter struct {
	db *gorm.DB
}

// NewRecommendationRepositoryAdapter creates a new recommendation repository adapter
func NewRecommendationRepositoryAdapter(db *gorm.DB) ports.RecommendationRepository {
	return &RecommendationRepositoryAdapter{db: db}
}

// ListByLocationType retrieves recommendations for a location type, highest impact first
func (r *RecommendationRepositoryAdapter) ListByLocationType(ctx context.Context, locationType string) ([]*ports.RecommendationData, error) {
	if locationType == "" {
		return nil, errors.NewValidationError("location type cannot be empty")
	}

	var models []RecommendationModel
	result := r.db.WithContext(ctx).
		Where("location_type = ?", locationType).
		Order("impact_co2 DESC").
		Order("id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list recommendations", result.Error)
	}

	recommendations := make([]*ports.RecommendationData, len(models))
	for i := range models {
		recommendations[i] = recommendationToData(&models[i])
	}

	return recommendations, nil
}

func recommendationToData(m *RecommendationModel) *ports.RecommendationData {
	return &ports.RecommendationData{
		ID:                 m.ID,
		LocationType:       m.LocationType,
		ClimateIssue:       m.ClimateIssue,
		RecommendationText: m.RecommendationText,
		ImpactCO2:          m.ImpactCO2,
		DifficultyLevel:    m.DifficultyLevel,
		EstimatedCost:      m.EstimatedCost,
	}
}
