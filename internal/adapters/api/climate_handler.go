package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"terraweave.app/internal/core/climate"
)

// CityResponse represents a city climate record with its computed anomaly
type CityResponse struct {
	ID                     uint      `json:"id"`
	CityName               string    `json:"city_name"`
	Country                string    `json:"country"`
	CurrentTemp            float64   `json:"current_temp"`
	HistoricalAvgTemp      float64   `json:"historical_avg_temp"`
	Anomaly                float64   `json:"anomaly"`
	AQI                    int       `json:"aqi"`
	VegetationChangePct    float64   `json:"vegetation_change_pct"`
	PrecipitationChangePct float64   `json:"precipitation_change_pct"`
	LastUpdated            time.Time `json:"last_updated"`
}

// DataPointResponse represents one point of a climate time series
type DataPointResponse struct {
	ID           uint       `json:"id,omitempty"`
	LocationName string     `json:"location_name"`
	DataType     string     `json:"data_type"`
	Year         int        `json:"year"`
	Value        float64    `json:"value"`
	Unit         string     `json:"unit"`
	Source       string     `json:"source"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

type locationURI struct {
	Location string `uri:"location" binding:"required"`
}

// listCities handles GET /api/cities requests
func (s *HTTPServerAdapter) listCities(c *gin.Context) {
	cities, err := s.climateUseCase.ListCities(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := make([]CityResponse, 0, len(cities))
	for i := range cities {
		city := &cities[i]
		response = append(response, CityResponse{
			ID:                     city.ID,
			CityName:               city.Name,
			Country:                city.Country,
			CurrentTemp:            city.CurrentTemp.InexactFloat64(),
			HistoricalAvgTemp:      city.HistoricalAvgTemp.InexactFloat64(),
			Anomaly:                city.Anomaly().Round(1).InexactFloat64(),
			AQI:                    city.AQI,
			VegetationChangePct:    city.VegetationChangePct.InexactFloat64(),
			PrecipitationChangePct: city.PrecipitationChangePct.InexactFloat64(),
			LastUpdated:            city.LastUpdated,
		})
	}

	c.JSON(http.StatusOK, response)
}

// getClimateData handles GET /api/climate-data/:location requests
func (s *HTTPServerAdapter) getClimateData(c *gin.Context) {
	var uri locationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		s.handleBindingError(c, err)
		return
	}

	points, err := s.climateUseCase.GetTimeSeries(c.Request.Context(), climate.SeriesRequest{Location: uri.Location})
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := make([]DataPointResponse, 0, len(points))
	for i := range points {
		p := &points[i]
		item := DataPointResponse{
			ID:           p.ID,
			LocationName: p.LocationName,
			DataType:     p.DataType,
			Year:         p.Year,
			Value:        p.Value.InexactFloat64(),
			Unit:         p.Unit,
			Source:       p.Source,
		}
		if !p.CreatedAt.IsZero() {
			created := p.CreatedAt
			item.CreatedAt = &created
		}
		response = append(response, item)
	}

	c.JSON(http.StatusOK, response)
}
