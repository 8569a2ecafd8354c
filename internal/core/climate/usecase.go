package climate

import (
	"context"
	"fmt"

	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

type UseCase struct {
	cityRepo   ports.CityRepository
	seriesRepo ports.ClimateDataRepository
	logger     ports.Logger
}

type UseCaseDependencies struct {
	CityRepo   ports.CityRepository
	SeriesRepo ports.ClimateDataRepository
	Logger     ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.CityRepo == nil {
		return nil, errors.NewValidationError("city repository is required")
	}
	if deps.SeriesRepo == nil {
		return nil, errors.NewValidationError("climate data repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		cityRepo:   deps.CityRepo,
		seriesRepo: deps.SeriesRepo,
		logger:     deps.Logger,
	}, nil
}

// ListCities returns every monitored city ordered by name
func (uc *UseCase) ListCities(ctx context.Context) ([]City, error) {
	rows, err := uc.cityRepo.ListCities(ctx)
	if err != nil {
		uc.logger.Error("Failed to list cities", ports.F("error", err))
		return nil, fmt.Errorf("list cities: %w", err)
	}

	cities := make([]City, 0, len(rows))
	for _, row := range rows {
		cities = append(cities, City{
			ID:                     row.ID,
			Name:                   row.CityName,
			Country:                row.Country,
			CurrentTemp:            row.CurrentTemp,
			HistoricalAvgTemp:      row.HistoricalAvgTemp,
			AQI:                    row.AQI,
			VegetationChangePct:    row.VegetationChangePct,
			PrecipitationChangePct: row.PrecipitationChangePct,
			LastUpdated:            row.LastUpdated,
		})
	}

	uc.logger.Debug("Cities listed", ports.F("count", len(cities)))
	return cities, nil
}

// GetTimeSeries returns the most recent points for a location, newest year first.
// Locations without stored points, blank ones included, get the fallback series.
func (uc *UseCase) GetTimeSeries(ctx context.Context, request SeriesRequest) ([]DataPoint, error) {
	request.NormalizeLocation()
	if !request.HasLocation() {
		return FallbackSeries(request.Location), nil
	}

	rows, err := uc.seriesRepo.FindRecentByLocation(ctx, request.Location, MaxSeriesPoints)
	if err != nil {
		uc.logger.Error("Failed to read climate series",
			ports.F("location", request.Location),
			ports.F("error", err))
		return nil, fmt.Errorf("get time series for %s: %w", request.Location, err)
	}

	if len(rows) == 0 {
		uc.logger.Debug("No stored series, using fallback", ports.F("location", request.Location))
		return FallbackSeries(request.Location), nil
	}

	points := make([]DataPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, DataPoint{
			ID:           row.ID,
			LocationName: row.LocationName,
			DataType:     row.DataType,
			Year:         row.Year,
			Value:        row.Value,
			Unit:         row.Unit,
			Source:       row.Source,
			CreatedAt:    row.CreatedAt,
		})
	}
	return points, nil
}
