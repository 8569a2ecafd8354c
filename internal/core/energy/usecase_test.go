package energy

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"terraweave.app/internal/mocks"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

func TestNewUseCase_RequiresRepository(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{Logger: mocks.NewLogger(t)})
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_ListPlants(t *testing.T) {
	repo := mocks.NewEnergyPlantRepository(t)
	uc, err := NewUseCase(UseCaseDependencies{PlantRepo: repo, Logger: mocks.NewLogger(t).AllowAll()})
	require.NoError(t, err)

	repo.On("ListByEmissions", mock.Anything).Return([]*ports.EnergyPlantData{
		{ID: 2, PlantName: "Medupi Power Station", PlantType: PlantTypeCoal, CO2EmissionsTonsPerYear: decimal.NewFromInt(21500000)},
		{ID: 1, PlantName: "Kendal Power Station", PlantType: PlantTypeCoal, CO2EmissionsTonsPerYear: decimal.NewFromInt(18200000)},
		{ID: 3, PlantName: "Koeberg Nuclear", PlantType: PlantTypeNuclear, CO2EmissionsTonsPerYear: decimal.Zero},
	}, nil)

	plants, err := uc.ListPlants(context.Background())

	require.NoError(t, err)
	require.Len(t, plants, 3)
	assert.Equal(t, "Medupi Power Station", plants[0].Name)
	assert.True(t, plants[0].IsFossil())
	assert.False(t, plants[2].IsFossil())
}

func TestUseCase_ListPlants_StoreError(t *testing.T) {
	repo := mocks.NewEnergyPlantRepository(t)
	uc, err := NewUseCase(UseCaseDependencies{PlantRepo: repo, Logger: mocks.NewLogger(t).AllowAll()})
	require.NoError(t, err)

	repo.On("ListByEmissions", mock.Anything).Return(nil, errors.NewDatabaseError("failed", fmt.Errorf("closed")))

	plants, err := uc.ListPlants(context.Background())

	assert.Nil(t, plants)
	assert.True(t, errors.IsDatabaseError(err))
}
