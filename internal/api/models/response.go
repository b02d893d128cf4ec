package models

import (
	"baas-lcos/internal/analysis"
	"baas-lcos/internal/report"
)

// EvaluateResponse represents the response from an evaluation
type EvaluateResponse struct {
	ID          string                `json:"id"`
	Status      string                `json:"status"`
	Summary     Summary               `json:"summary"`
	Display     report.DisplaySummary `json:"display"`
	Profile     analysis.LoadProfile  `json:"profile"`
	Degradation []YearlyRow           `json:"degradation,omitempty"`
}

// Summary carries the unrounded scalar results.
type Summary struct {
	TargetIRR                float64 `json:"target_irr"`
	LCOS                     float64 `json:"lcos"`
	TotalCapex               float64 `json:"total_capex"`
	TotalDiscountedEnergyKWh float64 `json:"total_discounted_energy_kwh"`
	BaselineGridCost         float64 `json:"baseline_grid_cost"`
	CustomerBaaSCost         float64 `json:"customer_baas_cost"`
	NetSavings               float64 `json:"net_savings"`
	EnergyBilledKWh          float64 `json:"energy_billed_kwh"`
}

// YearlyRow represents one year of the degradation table
type YearlyRow struct {
	Year                    int     `json:"year"`
	DegradationFactor       float64 `json:"degradation_factor"`
	CapacityKWh             float64 `json:"capacity_kwh"`
	UsableEnergyKWh         float64 `json:"usable_energy_kwh"`
	AnnualThroughputKWh     float64 `json:"annual_throughput_kwh"`
	CumulativeThroughputKWh float64 `json:"cumulative_throughput_kwh"`
	DiscountFactor          float64 `json:"discount_factor"`
	DiscountedEnergyKWh     float64 `json:"discounted_energy_kwh"`
}

// DegradationResponse is returned by GET /api/v1/evaluations/:id/degradation
type DegradationResponse struct {
	ID          string      `json:"id"`
	Degradation []YearlyRow `json:"degradation"`
}

// ParameterInfo describes one required assumption
type ParameterInfo struct {
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
