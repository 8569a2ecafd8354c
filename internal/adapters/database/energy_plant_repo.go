package database

import (
	"context"

	"gorm.io/gorm"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

// EnergyPlantRepositoryAdapter implements the EnergyPlantRepository port using GORM
type EnergyPlantRepositoryAdapter struct {
	db *gorm.DB
}

// NewEnergyPlantRepositoryAdapter creates a new energy plant repository adapter
func NewEnergyPlantRepositoryAdapter(db *gorm.DB) ports.EnergyPlantRepository {
	return &EnergyPlantRepositoryAdapter{db: db}
}

// ListByEmissions retrieves all plants, highest emissions first
func (r *EnergyPlantRepositoryAdapter) ListByEmissions(ctx context.Context) ([]*ports.EnergyPlantData, error) {
	var models []EnergyPlantModel
	result := r.db.WithContext(ctx).
		Order("co2_emissions_tons_per_year DESC").
		Order("id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list energy plants", result.Error)
	}

	plants := make([]*ports.EnergyPlantData, len(models))
	for i := range models {
		m := &models[i]
		plants[i] = &ports.EnergyPlantData{
			ID:                      m.ID,
			PlantName:               m.PlantName,
			PlantType:               m.PlantType,
			CapacityMW:              m.CapacityMW,
			CO2EmissionsTonsPerYear: m.CO2EmissionsTonsPerYear,
			PopulationImpact:        m.PopulationImpact,
			Location:                m.Location,
			Lat:                     m.Lat,
			Lng:                     m.Lng,
		}
	}

	return plants, nil
}
