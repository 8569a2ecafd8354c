package database

import (
	"context"

	"gorm.io/gorm"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

// CityRepositoryAdapter implements the CityRepository port using GORM
type CityRepositoryAdapter struct {
	db *gorm.DB
}

// NewCityRepositoryAdapter creates a new city repository adapter
func NewCityRepositoryAdapter(db *gorm.DB) ports.CityRepository {
	return &CityRepositoryAdapter{db: db}
}

// ListCities retrieves every city ordered by name
func (r *CityRepositoryAdapter) ListCities(ctx context.Context) ([]*ports.CityClimateData, error) {
	var models []CityClimateModel
	result := r.db.WithContext(ctx).Order("city_name ASC").Order("id ASC").Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list cities", result.Error)
	}

	cities := make([]*ports.CityClimateData, len(models))
	for i := range models {
		m := &models[i]
		cities[i] = &ports.CityClimateData{
			ID:                     m.ID,
			CityName:               m.CityName,
			Country:                m.Country,
			CurrentTemp:            m.CurrentTemp,
			HistoricalAvgTemp:      m.HistoricalAvgTemp,
			AQI:                    m.AQI,
			VegetationChangePct:    m.VegetationChangePct,
			PrecipitationChangePct: m.PrecipitationChangePct,
			LastUpdated:            m.LastUpdated,
		}
	}

	return cities, nil
}
