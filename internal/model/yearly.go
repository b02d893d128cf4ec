package model

// YearlyRecord is one row of the degradation table. Energies are kWh.
// DegradationFactor, CyclesPerYear and DiscountFactor are the intermediate
// values the row was derived from.
type YearlyRecord struct {
	Year                    int
	CapacityKWh             float64
	UsableEnergyKWh         float64
	AnnualThroughputKWh     float64
	CumulativeThroughputKWh float64
	DiscountedEnergyKWh     float64

	DegradationFactor float64
	CyclesPerYear     float64
	DiscountFactor    float64
}
