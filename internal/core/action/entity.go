package action

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"terraweave.app/pkg/validation"
)

// Location types recommendations are grouped by
const (
	LocationTypeUrban       = "urban"
	LocationTypeResidential = "residential"
	LocationTypeCorporate   = "corporate"
)

// Recommendation is a climate action ranked by its CO2 impact
type Recommendation struct {
	ID              uint
	LocationType    string
	ClimateIssue    string
	Text            string
	ImpactCO2       decimal.Decimal
	DifficultyLevel string
	EstimatedCost   string
}

// RecommendationRequest selects recommendations for one location type
type RecommendationRequest struct {
	LocationType string
}

// HasLocationType reports whether the request names a location type after trimming
func (r *RecommendationRequest) HasLocationType() bool {
	return validation.IsNotEmpty(r.LocationType)
}

// Normalize lowercases the location type
func (r *RecommendationRequest) Normalize() {
	r.LocationType = strings.ToLower(strings.TrimSpace(r.LocationType))
}

// IsKnownLocationType reports whether t is one of the seeded location types
func IsKnownLocationType(t string) bool {
	return validation.IsOneOf(t, LocationTypeUrban, LocationTypeResidential, LocationTypeCorporate)
}

// CompletedAction is a recommendation a user has acted on
type CompletedAction struct {
	ID               uint
	RecommendationID uint
	Recommendation   string
	DateCompleted    *time.Time
	ImpactCO2        decimal.Decimal
	Notes            string
}

// Summary groups a user's completed actions with their combined impact
type Summary struct {
	UserID         uint
	Actions        []CompletedAction
	TotalImpactCO2 decimal.Decimal
}
