package nasa

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jonboulle/clockwork"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

type UseCase struct {
	table          LookupTable
	imageryBaseURL string
	clock          clockwork.Clock
	logger         ports.Logger
}

type UseCaseDependencies struct {
	Config ports.ConfigProvider
	Clock  clockwork.Clock
	Logger ports.Logger
	// Table overrides the built-in city temperatures when set
	Table LookupTable
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Config == nil {
		return nil, errors.NewValidationError("config provider is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	table := deps.Table
	if table == nil {
		table = DefaultLookupTable()
	}

	return &UseCase{
		table:          table,
		imageryBaseURL: strings.TrimRight(deps.Config.GetNASAConfig().ImageryBaseURL, "/"),
		clock:          deps.Clock,
		logger:         deps.Logger,
	}, nil
}

// GetSatelliteAnalysis builds the synthetic Landsat comparison for a location
func (uc *UseCase) GetSatelliteAnalysis(ctx context.Context, location string) *SatelliteAnalysis {
	location = strings.TrimSpace(location)
	escaped := url.PathEscape(location)

	return &SatelliteAnalysis{
		Location: location,
		Imagery: Imagery{
			BeforeURL:  fmt.Sprintf("%s/%s/%d.jpg", uc.imageryBaseURL, escaped, baselineYear),
			AfterURL:   fmt.Sprintf("%s/%s/%d.jpg", uc.imageryBaseURL, escaped, latestYear),
			BeforeYear: baselineYear,
			AfterYear:  latestYear,
		},
		Analysis:   fixedAnalysis,
		DataSource: DataSource,
		Timestamp:  uc.clock.Now().UTC(),
	}
}

// GetCityAnomaly reports the synthetic temperature anomaly of a city
func (uc *UseCase) GetCityAnomaly(ctx context.Context, city string) *CityAnomaly {
	city = strings.TrimSpace(city)

	temps, known := uc.table.Lookup(city)
	if !known {
		uc.logger.Debug("City not in lookup table, using defaults", ports.F("city", city))
	}

	anomaly := temps.Anomaly()
	return &CityAnomaly{
		City:          city,
		CurrentTemp:   temps.Current,
		HistoricalAvg: temps.Historical,
		Anomaly:       anomaly.StringFixed(1),
		Trend:         TrendOf(anomaly),
		DataSource:    DataSource,
		Timestamp:     uc.clock.Now().UTC(),
	}
}
