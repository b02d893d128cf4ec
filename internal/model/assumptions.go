package model

import (
	"fmt"
	"math"
)

// Parameter names as they appear in the "Parameter" column of the inputs table.
const (
	ParamCapacityKWh    = "Battery Capacity (kWh)"
	ParamPowerKW        = "Power (kW)"
	ParamCapexPerKWh    = "CAPEX (€/kWh)"
	ParamLifetimeYears  = "Project Lifetime (years)"
	ParamTargetIRR      = "Target IRR"
	ParamDoDPercent     = "DoD (%)"
	ParamCycles         = "Cycles"
	ParamEOLCapacityPct = "EOL Capacity (%)"
)

// ParameterInfo describes one required assumption.
type ParameterInfo struct {
	Name        string
	Unit        string
	Description string
}

// RequiredParameters lists every key ResolveAssumptions reads, in table order.
var RequiredParameters = []ParameterInfo{
	{ParamCapacityKWh, "kWh", "Nameplate battery capacity (> 0)"},
	{ParamPowerKW, "kW", "Power rating (> 0); not used by the financial model"},
	{ParamCapexPerKWh, "€/kWh", "Capital cost per kWh of capacity (>= 0)"},
	{ParamLifetimeYears, "years", "Project lifetime; truncated to whole years (>= 2)"},
	{ParamTargetIRR, "fraction", "Target internal rate of return used for discounting (> -1)"},
	{ParamDoDPercent, "%", "Depth of discharge, 0..100"},
	{ParamCycles, "cycles", "Total cycle count over the lifetime (>= 0)"},
	{ParamEOLCapacityPct, "%", "Remaining capacity at end of life, 0..100"},
}

// AssumptionSet is the raw parameter table keyed by parameter name.
type AssumptionSet map[string]float64

// MaxLifetimeYears caps the degradation table length.
const MaxLifetimeYears = 100

// Assumptions is the validated, typed form of an AssumptionSet.
// Units:
// - CapacityKWh: kWh
// - PowerKW: kW
// - CapexPerKWh, CapexTotal: currency/kWh, currency
// - TargetIRR, DoD, EOLCapacity: fractions
type Assumptions struct {
	CapacityKWh   float64
	PowerKW       float64
	CapexPerKWh   float64
	CapexTotal    float64
	LifetimeYears int
	TargetIRR     float64
	DoD           float64
	TotalCycles   float64
	EOLCapacity   float64
}

// ResolveAssumptions extracts and converts every required parameter.
// Percent inputs are divided by 100 and the lifetime is truncated to whole years.
func ResolveAssumptions(set AssumptionSet) (Assumptions, error) {
	raw := make(map[string]float64, len(RequiredParameters))
	for _, p := range RequiredParameters {
		v, ok := set[p.Name]
		if !ok {
			return Assumptions{}, &MissingParameterError{Key: p.Name}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Assumptions{}, &MalformedInputError{Field: p.Name, Reason: "value is not finite"}
		}
		raw[p.Name] = v
	}

	years := raw[ParamLifetimeYears]
	if years > MaxLifetimeYears {
		return Assumptions{}, &MalformedInputError{Field: ParamLifetimeYears, Reason: fmt.Sprintf("must be <= %d", MaxLifetimeYears)}
	}
	// int conversion of floats below MinInt32 is not portable
	years = math.Max(years, math.MinInt32)

	a := Assumptions{
		CapacityKWh:   raw[ParamCapacityKWh],
		PowerKW:       raw[ParamPowerKW],
		CapexPerKWh:   raw[ParamCapexPerKWh],
		LifetimeYears: int(years),
		TargetIRR:     raw[ParamTargetIRR],
		DoD:           raw[ParamDoDPercent] / 100,
		TotalCycles:   raw[ParamCycles],
		EOLCapacity:   raw[ParamEOLCapacityPct] / 100,
	}
	a.CapexTotal = a.CapacityKWh * a.CapexPerKWh

	if err := a.Validate(); err != nil {
		return Assumptions{}, err
	}
	return a, nil
}

// Validate checks the ranges the degradation and LCOS math depend on.
func (a Assumptions) Validate() error {
	if a.CapacityKWh <= 0 {
		return &MalformedInputError{Field: ParamCapacityKWh, Reason: "must be > 0"}
	}
	if a.PowerKW <= 0 {
		return &MalformedInputError{Field: ParamPowerKW, Reason: "must be > 0"}
	}
	if a.CapexPerKWh < 0 {
		return &MalformedInputError{Field: ParamCapexPerKWh, Reason: "must be >= 0"}
	}
	if a.TargetIRR <= -1 {
		return &MalformedInputError{Field: ParamTargetIRR, Reason: "must be > -1"}
	}
	if a.DoD < 0 || a.DoD > 1 {
		return &MalformedInputError{Field: ParamDoDPercent, Reason: "must be within 0..100"}
	}
	if a.EOLCapacity < 0 || a.EOLCapacity > 1 {
		return &MalformedInputError{Field: ParamEOLCapacityPct, Reason: "must be within 0..100"}
	}
	if a.TotalCycles < 0 {
		return &MalformedInputError{Field: ParamCycles, Reason: "must be >= 0"}
	}
	if a.LifetimeYears > MaxLifetimeYears {
		return &MalformedInputError{Field: ParamLifetimeYears, Reason: fmt.Sprintf("must be <= %d", MaxLifetimeYears)}
	}
	if a.LifetimeYears < 2 {
		return &InvalidModelError{Reason: fmt.Sprintf("project lifetime must be at least 2 years, got %d", a.LifetimeYears)}
	}
	return nil
}
