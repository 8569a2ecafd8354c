package nasa

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Trend directions derived from an anomaly
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

const (
	// DataSource labels every synthetic response
	DataSource = "NASA GISS (simulated)"

	baselineYear = 1984
	latestYear   = 2024
)

// TemperaturePair is a current reading with its historical average
type TemperaturePair struct {
	Current    decimal.Decimal
	Historical decimal.Decimal
}

// LookupTable maps a lowercase city name to its temperatures
type LookupTable map[string]TemperaturePair

var defaultPair = TemperaturePair{
	Current:    decimal.RequireFromString("22.0"),
	Historical: decimal.RequireFromString("20.0"),
}

// DefaultLookupTable returns the temperatures of the monitored cities
func DefaultLookupTable() LookupTable {
	return LookupTable{
		"pretoria": pair("32.0", "28.0"),
		"moscow":   pair("18.0", "16.0"),
		"tokyo":    pair("25.0", "24.0"),
		"lagos":    pair("35.0", "32.0"),
		"london":   pair("15.0", "14.0"),
	}
}

func pair(current, historical string) TemperaturePair {
	return TemperaturePair{
		Current:    decimal.RequireFromString(current),
		Historical: decimal.RequireFromString(historical),
	}
}

// Lookup finds a city ignoring case; unknown cities get the default pair
func (t LookupTable) Lookup(city string) (TemperaturePair, bool) {
	p, ok := t[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return defaultPair, false
	}
	return p, true
}

// Anomaly is current minus historical
func (p TemperaturePair) Anomaly() decimal.Decimal {
	return p.Current.Sub(p.Historical)
}

// TrendOf classifies an anomaly
func TrendOf(anomaly decimal.Decimal) string {
	switch anomaly.Sign() {
	case 1:
		return TrendIncreasing
	case -1:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// CityAnomaly is the synthetic temperature anomaly of a city
type CityAnomaly struct {
	City          string
	CurrentTemp   decimal.Decimal
	HistoricalAvg decimal.Decimal
	Anomaly       string
	Trend         string
	DataSource    string
	Timestamp     time.Time
}

// Imagery holds the before/after scene URLs of a location
type Imagery struct {
	BeforeURL  string
	AfterURL   string
	BeforeYear int
	AfterYear  int
}

// Analysis holds the fixed change figures reported for every scene pair
type Analysis struct {
	UrbanGrowth       string
	TemperatureChange string
	VegetationChange  string
}

// SatelliteAnalysis is the synthetic Landsat comparison of a location
type SatelliteAnalysis struct {
	Location   string
	Imagery    Imagery
	Analysis   Analysis
	DataSource string
	Timestamp  time.Time
}

var fixedAnalysis = Analysis{
	UrbanGrowth:       "+45%",
	TemperatureChange: "+2.1°C",
	VegetationChange:  "-18%",
}
