package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ImageryResponse holds the before/after scene URLs
type ImageryResponse struct {
	BeforeURL  string `json:"before_url"`
	AfterURL   string `json:"after_url"`
	BeforeYear int    `json:"before_year"`
	AfterYear  int    `json:"after_year"`
}

// AnalysisResponse holds the change figures of a scene pair
type AnalysisResponse struct {
	UrbanGrowth       string `json:"urban_growth"`
	TemperatureChange string `json:"temperature_change"`
	VegetationChange  string `json:"vegetation_change"`
}

// LandsatResponse represents the synthetic satellite comparison
type LandsatResponse struct {
	Location   string           `json:"location"`
	Imagery    ImageryResponse  `json:"imagery"`
	Analysis   AnalysisResponse `json:"analysis"`
	DataSource string           `json:"data_source"`
	Timestamp  time.Time        `json:"timestamp"`
}

// CityAnomalyResponse represents the synthetic city temperature anomaly
type CityAnomalyResponse struct {
	City          string    `json:"city"`
	CurrentTemp   float64   `json:"current_temp"`
	HistoricalAvg float64   `json:"historical_avg"`
	Anomaly       string    `json:"anomaly"`
	Trend         string    `json:"trend"`
	DataSource    string    `json:"data_source"`
	Timestamp     time.Time `json:"timestamp"`
}

// getLandsat handles GET /api/nasa/landsat/:location requests
func (s *HTTPServerAdapter) getLandsat(c *gin.Context) {
	result := s.nasaUseCase.GetSatelliteAnalysis(c.Request.Context(), c.Param("location"))

	c.JSON(http.StatusOK, LandsatResponse{
		Location: result.Location,
		Imagery: ImageryResponse{
			BeforeURL:  result.Imagery.BeforeURL,
			AfterURL:   result.Imagery.AfterURL,
			BeforeYear: result.Imagery.BeforeYear,
			AfterYear:  result.Imagery.AfterYear,
		},
		Analysis: AnalysisResponse{
			UrbanGrowth:       result.Analysis.UrbanGrowth,
			TemperatureChange: result.Analysis.TemperatureChange,
			VegetationChange:  result.Analysis.VegetationChange,
		},
		DataSource: result.DataSource,
		Timestamp:  result.Timestamp,
	})
}

// getCityAnomaly handles GET /api/nasa/climate/:city requests
func (s *HTTPServerAdapter) getCityAnomaly(c *gin.Context) {
	result := s.nasaUseCase.GetCityAnomaly(c.Request.Context(), c.Param("city"))

	c.JSON(http.StatusOK, CityAnomalyResponse{
		City:          result.City,
		CurrentTemp:   result.CurrentTemp.InexactFloat64(),
		HistoricalAvg: result.HistoricalAvg.InexactFloat64(),
		Anomaly:       result.Anomaly,
		Trend:         result.Trend,
		DataSource:    result.DataSource,
		Timestamp:     result.Timestamp,
	})
}
