package model

// SummaryResult holds the scalar outputs of one evaluation, unrounded.
type SummaryResult struct {
	TargetIRR                float64
	LCOS                     float64 // currency/kWh
	TotalCapex               float64
	TotalDiscountedEnergyKWh float64
	BaselineGridCost         float64
	CustomerBaaSCost         float64
	NetSavings               float64
}
