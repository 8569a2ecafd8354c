package climate

import (
	"time"

	"github.com/shopspring/decimal"
	"terraweave.app/pkg/validation"
)

// MaxSeriesPoints caps the number of points returned for a location
const MaxSeriesPoints = 10

// City is a monitored city's climate snapshot
type City struct {
	ID                     uint
	Name                   string
	Country                string
	CurrentTemp            decimal.Decimal
	HistoricalAvgTemp      decimal.Decimal
	AQI                    int
	VegetationChangePct    decimal.Decimal
	PrecipitationChangePct decimal.Decimal
	LastUpdated            time.Time
}

// Anomaly is current temperature minus the historical average
func (c *City) Anomaly() decimal.Decimal {
	return c.CurrentTemp.Sub(c.HistoricalAvgTemp)
}

// DataPoint is one value of a location's time series
type DataPoint struct {
	ID           uint
	LocationName string
	DataType     string
	Year         int
	Value        decimal.Decimal
	Unit         string
	Source       string
	CreatedAt    time.Time
}

// SeriesRequest asks for the recent time series of a location
type SeriesRequest struct {
	Location string
}

// HasLocation reports whether the request names a location after trimming
func (r *SeriesRequest) HasLocation() bool {
	_, ok := validation.TrimAndValidate(r.Location)
	return ok
}

// NormalizeLocation trims the requested location name
func (r *SeriesRequest) NormalizeLocation() {
	r.Location, _ = validation.TrimAndValidate(r.Location)
}

// FallbackSource marks points that were synthesized instead of read from the store
const FallbackSource = "synthetic"

// FallbackSeries is returned for locations without stored points
func FallbackSeries(location string) []DataPoint {
	values := []struct {
		year  int
		value string
	}{
		{2024, "2.1"},
		{2020, "2.0"},
		{2014, "1.8"},
	}

	series := make([]DataPoint, 0, len(values))
	for _, v := range values {
		series = append(series, DataPoint{
			LocationName: location,
			DataType:     "temperature",
			Year:         v.year,
			Value:        decimal.RequireFromString(v.value),
			Unit:         "°C",
			Source:       FallbackSource,
		})
	}
	return series
}
