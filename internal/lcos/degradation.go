package lcos

import (
	"fmt"
	"math"

	"baas-lcos/internal/model"
)

// ProjectDegradation builds the degradation table for years 1..LifetimeYears.
//
// Capacity fades linearly from 100% in year 1 to EOLCapacity in the final
// year. The cycling rate is constant: TotalCycles spread evenly across the
// lifetime. Each year's throughput is discounted at TargetIRR.
func ProjectDegradation(a model.Assumptions) ([]model.YearlyRecord, error) {
	n := a.LifetimeYears
	if n < 2 {
		return nil, &model.InvalidModelError{Reason: fmt.Sprintf("project lifetime must be at least 2 years, got %d", n)}
	}
	if n > model.MaxLifetimeYears {
		return nil, &model.MalformedInputError{Field: model.ParamLifetimeYears, Reason: fmt.Sprintf("must be <= %d", model.MaxLifetimeYears)}
	}
	if a.TargetIRR <= -1 {
		return nil, &model.InvalidModelError{Reason: "target IRR must be > -1"}
	}

	fadePerYear := (1 - a.EOLCapacity) / float64(n-1)
	cyclesPerYear := a.TotalCycles / float64(n)

	records := make([]model.YearlyRecord, 0, n)
	cumulative := 0.0
	for year := 1; year <= n; year++ {
		degradation := 1 - fadePerYear*float64(year-1)
		capacity := a.CapacityKWh * degradation
		usable := capacity * a.DoD
		throughput := usable * cyclesPerYear
		cumulative += throughput
		discount := 1 / math.Pow(1+a.TargetIRR, float64(year))

		records = append(records, model.YearlyRecord{
			Year:                    year,
			CapacityKWh:             capacity,
			UsableEnergyKWh:         usable,
			AnnualThroughputKWh:     throughput,
			CumulativeThroughputKWh: cumulative,
			DiscountedEnergyKWh:     throughput * discount,
			DegradationFactor:       degradation,
			CyclesPerYear:           cyclesPerYear,
			DiscountFactor:          discount,
		})
	}
	return records, nil
}
