package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"terraweave.app/internal/ports"
)

const healthMessage = "TerraWeave+ NASA App Running"

// HealthResponse represents the liveness response
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// HealthDetailsResponse represents per-component health
type HealthDetailsResponse struct {
	Status     string                        `json:"status"`
	Timestamp  string                        `json:"timestamp"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// health handles GET /api/health requests
func (s *HTTPServerAdapter) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   healthMessage,
		Timestamp: s.clock.Now().UTC().Format(time.RFC3339),
	})
}

// healthDetails handles GET /api/health/details requests
func (s *HTTPServerAdapter) healthDetails(c *gin.Context) {
	response := HealthDetailsResponse{
		Status:     "OK",
		Timestamp:  s.clock.Now().UTC().Format(time.RFC3339),
		Components: map[string]ports.HealthStatus{},
	}

	if s.systemHealthChecker != nil {
		response.Components = s.systemHealthChecker.CheckAll(c.Request.Context())
	}

	statusCode := http.StatusOK
	for _, component := range response.Components {
		if component.Status != "healthy" {
			response.Status = "DEGRADED"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(statusCode, response)
}
