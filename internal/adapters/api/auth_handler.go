package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"terraweave.app/internal/core/auth"
	"terraweave.app/pkg/errors"
)

// LoginRequest represents the login request body; missing fields are reported by the auth use case
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents the public user profile
type UserResponse struct {
	ID           uint       `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Organization string     `json:"organization"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Success   bool         `json:"success"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// CompletedActionResponse represents one action the user has completed
type CompletedActionResponse struct {
	ID               uint       `json:"id"`
	RecommendationID uint       `json:"recommendation_id"`
	Recommendation   string     `json:"recommendation"`
	DateCompleted    *time.Time `json:"date_completed,omitempty"`
	ImpactCO2        float64    `json:"impact_co2"`
	Notes            string     `json:"notes,omitempty"`
}

// ProfileResponse represents the caller's profile and completed actions
type ProfileResponse struct {
	User           UserResponse              `json:"user"`
	Actions        []CompletedActionResponse `json:"actions"`
	TotalImpactCO2 float64                   `json:"total_impact_co2"`
}

// login handles POST /api/auth/login requests
func (s *HTTPServerAdapter) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Invalid login request", "error", err)
		if s.metricsCollector != nil {
			s.metricsCollector.RecordLogin(auth.OutcomeBadRequest)
		}
		s.handleBindingError(c, err)
		return
	}

	result, err := s.authUseCase.Authenticate(c.Request.Context(), auth.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success:   true,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      toUserResponse(&result.User),
	})
}

// me handles GET /api/auth/me requests
func (s *HTTPServerAdapter) me(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		s.handleError(c, errors.NewTokenError("missing token claims", nil))
		return
	}

	user, err := s.authUseCase.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		s.handleError(c, err)
		return
	}

	summary, err := s.actionUseCase.Summarize(c.Request.Context(), user.ID)
	if err != nil {
		s.handleError(c, err)
		return
	}

	actions := make([]CompletedActionResponse, 0, len(summary.Actions))
	for _, a := range summary.Actions {
		actions = append(actions, CompletedActionResponse{
			ID:               a.ID,
			RecommendationID: a.RecommendationID,
			Recommendation:   a.Recommendation,
			DateCompleted:    a.DateCompleted,
			ImpactCO2:        a.ImpactCO2.InexactFloat64(),
			Notes:            a.Notes,
		})
	}

	c.JSON(http.StatusOK, ProfileResponse{
		User:           toUserResponse(user),
		Actions:        actions,
		TotalImpactCO2: summary.TotalImpactCO2.InexactFloat64(),
	})
}

func toUserResponse(u *auth.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Organization: u.Organization,
		LastLogin:    u.LastLogin,
	}
}
