package climate

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

func newTestUseCase(t *testing.T) (*UseCase, *mocks.CityRepository, *mocks.ClimateDataRepository) {
	cityRepo := mocks.NewCityRepository(t)
	seriesRepo := mocks.NewClimateDataRepository(t)
	logger := mocks.NewLogger(t).AllowAll()

	uc, err := NewUseCase(UseCaseDependencies{
		CityRepo:   cityRepo,
		SeriesRepo: seriesRepo,
		Logger:     logger,
	})
	require.NoError(t, err)
	return uc, cityRepo, seriesRepo
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	logger := mocks.NewLogger(t)

	_, err := NewUseCase(UseCaseDependencies{Logger: logger})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewUseCase(UseCaseDependencies{CityRepo: mocks.NewCityRepository(t), Logger: logger})
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_ListCities(t *testing.T) {
	uc, cityRepo, _ := newTestUseCase(t)

	cityRepo.On("ListCities", mock.Anything).Return([]*ports.CityClimateData{
		{ID: 2, CityName: "Moscow", Country: "Russia", CurrentTemp: decimal.NewFromInt(18), HistoricalAvgTemp: decimal.NewFromInt(16), AQI: 45},
		{ID: 1, CityName: "Pretoria", Country: "South Africa", CurrentTemp: decimal.NewFromInt(32), HistoricalAvgTemp: decimal.NewFromInt(28), AQI: 85},
	}, nil)

	cities, err := uc.ListCities(context.Background())

	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Moscow", cities[0].Name)
	assert.Equal(t, "Pretoria", cities[1].Name)
	assert.Equal(t, "4.0", cities[1].Anomaly().StringFixed(1))
}

func TestUseCase_ListCities_StoreError(t *testing.T) {
	uc, cityRepo, _ := newTestUseCase(t)

	cityRepo.On("ListCities", mock.Anything).
		Return(nil, errors.NewDatabaseError("failed to list cities", fmt.Errorf("database is locked")))

	cities, err := uc.ListCities(context.Background())

	assert.Nil(t, cities)
	assert.True(t, errors.IsDatabaseError(err))
}

func TestUseCase_GetTimeSeries(t *testing.T) {
	t.Run("StoredPoints", func(t *testing.T) {
		uc, _, seriesRepo := newTestUseCase(t)

		seriesRepo.On("FindRecentByLocation", mock.Anything, "Pretoria", MaxSeriesPoints).
			Return([]*ports.ClimateDataPointData{
				{ID: 7, LocationName: "Pretoria", DataType: "temperature", Year: 2024, Value: decimal.RequireFromString("2.1"), Unit: "°C", Source: "NASA GISS"},
				{ID: 6, LocationName: "Pretoria", DataType: "temperature", Year: 2020, Value: decimal.RequireFromString("2.0"), Unit: "°C", Source: "NASA GISS"},
			}, nil)

		points, err := uc.GetTimeSeries(context.Background(), SeriesRequest{Location: "  Pretoria "})

		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, 2024, points[0].Year)
		assert.Equal(t, "NASA GISS", points[0].Source)
	})

	t.Run("FallbackWhenEmpty", func(t *testing.T) {
		uc, _, seriesRepo := newTestUseCase(t)

		seriesRepo.On("FindRecentByLocation", mock.Anything, "Atlantis", MaxSeriesPoints).
			Return([]*ports.ClimateDataPointData{}, nil)

		points, err := uc.GetTimeSeries(context.Background(), SeriesRequest{Location: "Atlantis"})

		require.NoError(t, err)
		require.Len(t, points, 3)
		assert.Equal(t, []int{2024, 2020, 2014}, []int{points[0].Year, points[1].Year, points[2].Year})
		assert.True(t, points[0].Value.Equal(decimal.RequireFromString("2.1")))
	})

	t.Run("BlankLocationGetsFallback", func(t *testing.T) {
		uc, _, seriesRepo := newTestUseCase(t)

		points, err := uc.GetTimeSeries(context.Background(), SeriesRequest{Location: " "})

		require.NoError(t, err)
		require.Len(t, points, 3)
		assert.Equal(t, 2024, points[0].Year)
		assert.Equal(t, FallbackSource, points[0].Source)
		seriesRepo.AssertNotCalled(t, "FindRecentByLocation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("StoreError", func(t *testing.T) {
		uc, _, seriesRepo := newTestUseCase(t)

		seriesRepo.On("FindRecentByLocation", mock.Anything, "Tokyo", MaxSeriesPoints).
			Return(nil, errors.NewDatabaseError("query failed", fmt.Errorf("no such table")))

		_, err := uc.GetTimeSeries(context.Background(), SeriesRequest{Location: "Tokyo"})

		assert.True(t, errors.IsDatabaseError(err))
	})
}
