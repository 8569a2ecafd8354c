package database

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserModel represents the database model for login records
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Name         string `gorm:"size:255"`
	Organization string `gorm:"size:255"`
	CreatedAt    time.Time
	LastLogin    *time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// CityClimateModel represents the database model for city climate snapshots
type CityClimateModel struct {
	ID                     uint            `gorm:"primaryKey"`
	CityName               string          `gorm:"size:100;uniqueIndex;not null"`
	Country                string          `gorm:"size:100"`
	CurrentTemp            decimal.Decimal `gorm:"type:decimal(5,2)"`
	HistoricalAvgTemp      decimal.Decimal `gorm:"type:decimal(5,2)"`
	AQI                    int             `gorm:"column:aqi"`
	VegetationChangePct    decimal.Decimal `gorm:"type:decimal(5,2)"`
	PrecipitationChangePct decimal.Decimal `gorm:"type:decimal(5,2)"`
	LastUpdated            time.Time
}

func (CityClimateModel) TableName() string {
	return "city_climate_data"
}

// ClimateDataModel represents the database model for time series points
type ClimateDataModel struct {
	ID           uint            `gorm:"primaryKey"`
	LocationName string          `gorm:"size:100;not null;index;uniqueIndex:idx_climate_point"`
	DataType     string          `gorm:"size:50;not null;uniqueIndex:idx_climate_point"`
	Year         int             `gorm:"not null;uniqueIndex:idx_climate_point"`
	Value        decimal.Decimal `gorm:"type:decimal(10,2)"`
	Unit         string          `gorm:"size:20"`
	Source       string          `gorm:"size:100"`
	CreatedAt    time.Time
}

func (ClimateDataModel) TableName() string {
	return "climate_data"
}

// EnergyPlantModel represents the database model for power plants
type EnergyPlantModel struct {
	ID                      uint            `gorm:"primaryKey"`
	PlantName               string          `gorm:"size:255;uniqueIndex;not null"`
	PlantType               string          `gorm:"size:50"`
	CapacityMW              decimal.Decimal `gorm:"column:capacity_mw;type:decimal(10,2)"`
	CO2EmissionsTonsPerYear decimal.Decimal `gorm:"column:co2_emissions_tons_per_year;type:decimal(15,2)"`
	PopulationImpact        int64
	Location                string          `gorm:"size:255"`
	Lat                     decimal.Decimal `gorm:"type:decimal(10,8)"`
	Lng                     decimal.Decimal `gorm:"type:decimal(11,8)"`
}

func (EnergyPlantModel) TableName() string {
	return "energy_plants"
}

// RecommendationModel represents the database model for action recommendations
type RecommendationModel struct {
	ID                 uint            `gorm:"primaryKey"`
	LocationType       string          `gorm:"size:50;not null;index;uniqueIndex:idx_recommendation"`
	ClimateIssue       string          `gorm:"size:100;not null;uniqueIndex:idx_recommendation"`
	RecommendationText string          `gorm:"type:text"`
	ImpactCO2          decimal.Decimal `gorm:"column:impact_co2;type:decimal(10,2)"`
	DifficultyLevel    string          `gorm:"size:20"`
	EstimatedCost      string          `gorm:"size:20"`
}

func (RecommendationModel) TableName() string {
	return "action_recommendations"
}

// UserActionModel represents the database model linking users to recommendations
type UserActionModel struct {
	ID               uint                 `gorm:"primaryKey"`
	UserID           uint                 `gorm:"not null;uniqueIndex:idx_user_recommendation"`
	User             *UserModel           `gorm:"foreignKey:UserID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	RecommendationID uint                 `gorm:"not null;uniqueIndex:idx_user_recommendation"`
	Recommendation   *RecommendationModel `gorm:"foreignKey:RecommendationID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	ActionTaken      bool                 `gorm:"default:false"`
	DateCompleted    *time.Time
	ImpactCO2        decimal.Decimal `gorm:"column:impact_co2;type:decimal(10,2)"`
	Notes            string          `gorm:"type:text"`
}

func (UserActionModel) TableName() string {
	return "user_actions"
}

// Models lists every table in creation order
func Models() []interface{} {
	return []interface{}{
		&UserModel{},
		&CityClimateModel{},
		&ClimateDataModel{},
		&EnergyPlantModel{},
		&RecommendationModel{},
		&UserActionModel{},
	}
}
