package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"terraweave.app/internal/core/action"
)

// RecommendationResponse represents an action recommendation
type RecommendationResponse struct {
	ID                 uint    `json:"id"`
	LocationType       string  `json:"location_type"`
	ClimateIssue       string  `json:"climate_issue"`
	RecommendationText string  `json:"recommendation_text"`
	ImpactCO2          float64 `json:"impact_co2"`
	DifficultyLevel    string  `json:"difficulty_level"`
	EstimatedCost      string  `json:"estimated_cost"`
}

type locationTypeURI struct {
	LocationType string `uri:"locationType" binding:"required"`
}

// listRecommendations handles GET /api/recommendations/:locationType requests
func (s *HTTPServerAdapter) listRecommendations(c *gin.Context) {
	var uri locationTypeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		s.handleBindingError(c, err)
		return
	}

	recs, err := s.actionUseCase.ListRecommendations(c.Request.Context(), action.RecommendationRequest{
		LocationType: uri.LocationType,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := make([]RecommendationResponse, 0, len(recs))
	for i := range recs {
		r := &recs[i]
		response = append(response, RecommendationResponse{
			ID:                 r.ID,
			LocationType:       r.LocationType,
			ClimateIssue:       r.ClimateIssue,
			RecommendationText: r.Text,
			ImpactCO2:          r.ImpactCO2.InexactFloat64(),
			DifficultyLevel:    r.DifficultyLevel,
			EstimatedCost:      r.EstimatedCost,
		})
	}

	c.JSON(http.StatusOK, response)
}
