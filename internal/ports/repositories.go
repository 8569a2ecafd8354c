package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// UserData represents a login record
type UserData struct {
	ID           uint
	Email        string
	PasswordHash string
	Name         string
	Organization string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// CityClimateData represents one monitored city snapshot
type CityClimateData struct {
	ID                     uint
	CityName               string
	Country                string
	CurrentTemp            decimal.Decimal
	HistoricalAvgTemp      decimal.Decimal
	AQI                    int
	VegetationChangePct    decimal.Decimal
	PrecipitationChangePct decimal.Decimal
	LastUpdated            time.Time
}

// ClimateDataPointData represents one time series value
type ClimateDataPointData struct {
	ID           uint
	LocationName string
	DataType     string
	Year         int
	Value        decimal.Decimal
	Unit         string
	Source       string
	CreatedAt    time.Time
}

// EnergyPlantData represents a power plant reference row
type EnergyPlantData struct {
	ID                      uint
	PlantName               string
	PlantType               string
	CapacityMW              decimal.Decimal
	CO2EmissionsTonsPerYear decimal.Decimal
	PopulationImpact        int64
	Location                string
	Lat                     decimal.Decimal
	Lng                     decimal.Decimal
}

// RecommendationData represents an action recommendation row
type RecommendationData struct {
	ID                 uint
	LocationType       string
	ClimateIssue       string
	RecommendationText string
	ImpactCO2          decimal.Decimal
	DifficultyLevel    string
	EstimatedCost      string
}

// UserActionData represents a user's progress on a recommendation
type UserActionData struct {
	ID                 uint
	UserID             uint
	RecommendationID   uint
	ActionTaken        bool
	DateCompleted      *time.Time
	ImpactCO2          decimal.Decimal
	Notes              string
	RecommendationText string
}

// UserRepository defines the contract for user persistence
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*UserData, error)
	FindByID(ctx context.Context, id uint) (*UserData, error)
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
}

// CityRepository lists city climate snapshots ordered by city name
type CityRepository interface {
	ListCities(ctx context.Context) ([]*CityClimateData, error)
}

// ClimateDataRepository reads time series points
type ClimateDataRepository interface {
	FindRecentByLocation(ctx context.Context, location string, limit int) ([]*ClimateDataPointData, error)
}

// EnergyPlantRepository lists plants ordered by emissions, highest first
type EnergyPlantRepository interface {
	ListByEmissions(ctx context.Context) ([]*EnergyPlantData, error)
}

// RecommendationRepository lists recommendations ordered by impact, highest first
type RecommendationRepository interface {
	ListByLocationType(ctx context.Context, locationType string) ([]*RecommendationData, error)
}

// UserActionRepository reads completed user actions
type UserActionRepository interface {
	ListCompletedByUser(ctx context.Context, userID uint) ([]*UserActionData, error)
}
