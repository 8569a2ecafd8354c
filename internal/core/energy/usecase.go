package energy

import (
	"context"
	"fmt"

	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

type UseCase struct {
	plantRepo ports.EnergyPlantRepository
	logger    ports.Logger
}

type UseCaseDependencies struct {
	PlantRepo ports.EnergyPlantRepository
	Logger    ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.PlantRepo == nil {
		return nil, errors.NewValidationError("energy plant repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		plantRepo: deps.PlantRepo,
		logger:    deps.Logger,
	}, nil
}

// ListPlants returns all plants, highest yearly CO2 emissions first
func (uc *UseCase) ListPlants(ctx context.Context) ([]Plant, error) {
	rows, err := uc.plantRepo.ListByEmissions(ctx)
	if err != nil {
		uc.logger.Error("Failed to list energy plants", ports.F("error", err))
		return nil, fmt.Errorf("list energy plants: %w", err)
	}

	plants := make([]Plant, 0, len(rows))
	for _, row := range rows {
		plants = append(plants, Plant{
			ID:                      row.ID,
			Name:                    row.PlantName,
			Type:                    row.PlantType,
			CapacityMW:              row.CapacityMW,
			CO2EmissionsTonsPerYear: row.CO2EmissionsTonsPerYear,
			PopulationImpact:        row.PopulationImpact,
			Location:                row.Location,
			Lat:                     row.Lat,
			Lng:                     row.Lng,
		})
	}
	return plants, nil
}
