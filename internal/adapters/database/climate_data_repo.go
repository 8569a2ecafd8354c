package database

import (
	"context"

	"gorm.io/gorm"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

// ClimateDataRepositoryAdapter implements the ClimateDataRepository port using GORM
type ClimateDataRepositoryAdapter struct {
	db *gorm.DB
}

// NewClimateDataRepositoryAdapter creates a new climate data repository adapter
func NewClimateDataRepositoryAdapter(db *gorm.DB) ports.ClimateDataRepository {
	return &ClimateDataRepositoryAdapter{db: db}
}

// FindRecentByLocation retrieves up to limit points for a location, newest year first
func (r *ClimateDataRepositoryAdapter) FindRecentByLocation(ctx context.Context, location string, limit int) ([]*ports.ClimateDataPointData, error) {
	if location == "" {
		return nil, errors.NewValidationError("location cannot be empty")
	}
	if limit <= 0 {
		return nil, errors.NewValidationError("limit must be positive")
	}

	var models []ClimateDataModel
	result := r.db.WithContext(ctx).
		Where("location_name = ?", location).
		Order("year DESC").
		Order("id ASC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to read climate data", result.Error)
	}

	points := make([]*ports.ClimateDataPointData, len(models))
	for i := range models {
		m := &models[i]
		points[i] = &ports.ClimateDataPointData{
			ID:           m.ID,
			LocationName: m.LocationName,
			DataType:     m.DataType,
			Year:         m.Year,
			Value:        m.Value,
			Unit:         m.Unit,
			Source:       m.Source,
			CreatedAt:    m.CreatedAt,
		}
	}

	return points, nil
}
