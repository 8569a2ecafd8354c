package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EnergyPlantResponse represents a power plant
type EnergyPlantResponse struct {
	ID                      uint    `json:"id"`
	PlantName               string  `json:"plant_name"`
	PlantType               string  `json:"plant_type"`
	CapacityMW              float64 `json:"capacity_mw"`
	CO2EmissionsTonsPerYear float64 `json:"co2_emissions_tons_per_year"`
	PopulationImpact        int64   `json:"population_impact"`
	Location                string  `json:"location"`
	Lat                     float64 `json:"lat"`
	Lng                     float64 `json:"lng"`
}

// listEnergyPlants handles GET /api/energy-plants requests
func (s *HTTPServerAdapter) listEnergyPlants(c *gin.Context) {
	plants, err := s.energyUseCase.ListPlants(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := make([]EnergyPlantResponse, 0, len(plants))
	for i := range plants {
		p := &plants[i]
		response = append(response, EnergyPlantResponse{
			ID:                      p.ID,
			PlantName:               p.Name,
			PlantType:               p.Type,
			CapacityMW:              p.CapacityMW.InexactFloat64(),
			CO2EmissionsTonsPerYear: p.CO2EmissionsTonsPerYear.InexactFloat64(),
			PopulationImpact:        p.PopulationImpact,
			Location:                p.Location,
			Lat:                     p.Lat.InexactFloat64(),
			Lng:                     p.Lng.InexactFloat64(),
		})
	}

	c.JSON(http.StatusOK, response)
}
