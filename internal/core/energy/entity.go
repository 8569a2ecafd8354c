package energy

import "github.com/shopspring/decimal"

// Plant types known to the reference dataset
const (
	PlantTypeCoal    = "Coal"
	PlantTypeNuclear = "Nuclear"
	PlantTypeSolar   = "Solar"
	PlantTypeWind    = "Wind"
	PlantTypeHydro   = "Hydro"
	PlantTypeGas     = "Gas"
)

// Plant is a power plant with its yearly emissions footprint
type Plant struct {
	ID                      uint
	Name                    string
	Type                    string
	CapacityMW              decimal.Decimal
	CO2EmissionsTonsPerYear decimal.Decimal
	PopulationImpact        int64
	Location                string
	Lat                     decimal.Decimal
	Lng                     decimal.Decimal
}

// IsFossil reports whether the plant burns fossil fuel
func (p *Plant) IsFossil() bool {
	return p.Type == PlantTypeCoal || p.Type == PlantTypeGas
}
