package lcos

import "baas-lcos/internal/model"

// Result is everything one evaluation produces.
// Degradation is the primary artifact for "how the asset performs over its life".
type Result struct {
	Assumptions model.Assumptions
	Degradation []model.YearlyRecord
	LCOS        LCOSResult
	Baseline    Baseline
	Savings     Savings
	Summary     model.SummaryResult
}
