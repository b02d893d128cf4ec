package lcos

import (
	"math"

	"baas-lcos/internal/model"
)

// LCOSResult is the levelized cost of storage and the totals it was derived from.
type LCOSResult struct {
	CapexTotal               float64
	TotalDiscountedEnergyKWh float64
	LCOS                     float64 // currency/kWh
}

// ComputeLCOS divides total CAPEX by the lifetime discounted energy.
// Discounted energy is summed in year order.
func ComputeLCOS(a model.Assumptions, records []model.YearlyRecord) (LCOSResult, error) {
	total := 0.0
	for _, r := range records {
		total += r.DiscountedEnergyKWh
	}
	if total == 0 || !finite(total) {
		return LCOSResult{}, &model.InvalidModelError{Reason: "total discounted energy is zero or not finite; LCOS is undefined"}
	}

	lcos := a.CapexTotal / total
	if !finite(lcos) {
		return LCOSResult{}, &model.InvalidModelError{Reason: "LCOS is not finite"}
	}
	return LCOSResult{
		CapexTotal:               a.CapexTotal,
		TotalDiscountedEnergyKWh: total,
		LCOS:                     lcos,
	}, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
