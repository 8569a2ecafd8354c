package database

import (
	"time"

	"github.com/shopspring/decimal"
)

type seedUser struct {
	email        string
	password     string
	name         string
	organization string
}

type seedAction struct {
	email         string
	locationType  string
	climateIssue  string
	dateCompleted time.Time
	notes         string
}

// AdminEmail is the seeded administrator login
const AdminEmail = "admin@terraweave.com"

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedUsers(adminPassword string) []seedUser {
	return []seedUser{
		{AdminEmail, adminPassword, "Admin User", "NASA"},
		{"nasa@example.com", "nasa2024", "NASA Analyst", "NASA"},
		{"user@example.com", "user123", "Demo User", "TerraWeave"},
	}
}

func seedCities() []CityClimateModel {
	return []CityClimateModel{
		{CityName: "Pretoria", Country: "South Africa", CurrentTemp: d("32.0"), HistoricalAvgTemp: d("28.0"), AQI: 85, VegetationChangePct: d("-12.0"), PrecipitationChangePct: d("-50.0")},
		{CityName: "Moscow", Country: "Russia", CurrentTemp: d("18.0"), HistoricalAvgTemp: d("16.0"), AQI: 45, VegetationChangePct: d("5.0"), PrecipitationChangePct: d("20.0")},
		{CityName: "Tokyo", Country: "Japan", CurrentTemp: d("25.0"), HistoricalAvgTemp: d("24.0"), AQI: 65, VegetationChangePct: d("-3.0"), PrecipitationChangePct: d("-10.0")},
		{CityName: "Lagos", Country: "Nigeria", CurrentTemp: d("35.0"), HistoricalAvgTemp: d("32.0"), AQI: 95, VegetationChangePct: d("-8.0"), PrecipitationChangePct: d("-30.0")},
		{CityName: "London", Country: "United Kingdom", CurrentTemp: d("15.0"), HistoricalAvgTemp: d("14.0"), AQI: 55, VegetationChangePct: d("2.0"), PrecipitationChangePct: d("15.0")},
	}
}

func seedClimateData() []ClimateDataModel {
	point := func(location, dataType string, year int, value, unit, source string) ClimateDataModel {
		return ClimateDataModel{
			LocationName: location,
			DataType:     dataType,
			Year:         year,
			Value:        d(value),
			Unit:         unit,
			Source:       source,
		}
	}

	return []ClimateDataModel{
		point("Pretoria", "temperature", 1984, "0.9", "°C", "NASA GISS"),
		point("Pretoria", "temperature", 1994, "1.2", "°C", "NASA GISS"),
		point("Pretoria", "temperature", 2004, "1.5", "°C", "NASA GISS"),
		point("Pretoria", "temperature", 2014, "1.8", "°C", "NASA GISS"),
		point("Pretoria", "temperature", 2020, "2.0", "°C", "NASA GISS"),
		point("Pretoria", "temperature", 2024, "2.1", "°C", "NASA GISS"),
		point("Pretoria", "vegetation", 1984, "0.0", "%", "Landsat"),
		point("Pretoria", "vegetation", 2024, "-12.0", "%", "Landsat"),
		point("Pretoria", "precipitation", 1984, "0.0", "%", "NASA GPM"),
		point("Pretoria", "precipitation", 2024, "-50.0", "%", "NASA GPM"),
		point("Moscow", "temperature", 2014, "1.1", "°C", "NASA GISS"),
		point("Moscow", "temperature", 2020, "1.6", "°C", "NASA GISS"),
		point("Moscow", "temperature", 2024, "2.0", "°C", "NASA GISS"),
		point("Tokyo", "temperature", 2014, "0.6", "°C", "NASA GISS"),
		point("Tokyo", "temperature", 2020, "0.9", "°C", "NASA GISS"),
		point("Tokyo", "temperature", 2024, "1.0", "°C", "NASA GISS"),
	}
}

func seedEnergyPlants() []EnergyPlantModel {
	return []EnergyPlantModel{
		{PlantName: "Kendal Power Station", PlantType: "Coal", CapacityMW: d("4116"), CO2EmissionsTonsPerYear: d("18200000"), PopulationImpact: 2100000, Location: "Mpumalanga, South Africa", Lat: d("-26.0900"), Lng: d("28.9700")},
		{PlantName: "Medupi Power Station", PlantType: "Coal", CapacityMW: d("4764"), CO2EmissionsTonsPerYear: d("21500000"), PopulationImpact: 2800000, Location: "Limpopo, South Africa", Lat: d("-23.7000"), Lng: d("27.5600")},
		{PlantName: "Koeberg Nuclear", PlantType: "Nuclear", CapacityMW: d("1860"), CO2EmissionsTonsPerYear: d("0"), PopulationImpact: 450000, Location: "Western Cape, South Africa", Lat: d("-33.6800"), Lng: d("18.4300")},
	}
}

func seedRecommendations() []RecommendationModel {
	return []RecommendationModel{
		{LocationType: "residential", ClimateIssue: "lighting", RecommendationText: "Replace incandescent bulbs with LED lighting", ImpactCO2: d("1.2"), DifficultyLevel: "easy", EstimatedCost: "low"},
		{LocationType: "residential", ClimateIssue: "energy_supply", RecommendationText: "Switch to a renewable electricity tariff", ImpactCO2: d("3.0"), DifficultyLevel: "easy", EstimatedCost: "medium"},
		{LocationType: "urban", ClimateIssue: "heat_island", RecommendationText: "Plant native trees to cool streets and absorb CO2", ImpactCO2: d("0.05"), DifficultyLevel: "easy", EstimatedCost: "low"},
		{LocationType: "urban", ClimateIssue: "transport", RecommendationText: "Commute by public transport instead of driving", ImpactCO2: d("0.8"), DifficultyLevel: "medium", EstimatedCost: "low"},
		{LocationType: "corporate", ClimateIssue: "energy_efficiency", RecommendationText: "Commission a building energy audit", ImpactCO2: d("25"), DifficultyLevel: "medium", EstimatedCost: "medium"},
		{LocationType: "corporate", ClimateIssue: "renewable_energy", RecommendationText: "Install rooftop solar panels", ImpactCO2: d("120"), DifficultyLevel: "hard", EstimatedCost: "high"},
	}
}

func seedUserActions() []seedAction {
	return []seedAction{
		{AdminEmail, "residential", "lighting", time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC), "Replaced all bulbs at home"},
		{AdminEmail, "urban", "transport", time.Date(2024, 9, 28, 0, 0, 0, 0, time.UTC), "Taking the train three days a week"},
	}
}
