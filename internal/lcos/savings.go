package lcos

import "baas-lcos/internal/model"

// Baseline is what the customer would pay buying all load from the grid.
type Baseline struct {
	Hours   int
	LoadKWh float64
	Cost    float64
}

// Savings compares the grid baseline with BaaS billing.
type Savings struct {
	EnergyBilledKWh  float64
	CustomerBaaSCost float64
	NetSavings       float64
}

// ComputeBaseline sums hourly grid cost in series order. An empty series costs nothing.
func ComputeBaseline(loads []model.LoadRecord) Baseline {
	b := Baseline{Hours: len(loads)}
	for _, r := range loads {
		b.LoadKWh += r.LoadKWh
		b.Cost += r.GridCost()
	}
	return b
}

// CompareSavings bills the undiscounted lifetime throughput at the LCOS rate.
// The LCOS itself is computed from discounted energy; the two totals differ on purpose.
func CompareSavings(baseline Baseline, records []model.YearlyRecord, l LCOSResult) Savings {
	billed := 0.0
	for _, r := range records {
		billed += r.AnnualThroughputKWh
	}
	cost := billed * l.LCOS
	return Savings{
		EnergyBilledKWh:  billed,
		CustomerBaaSCost: cost,
		NetSavings:       baseline.Cost - cost,
	}
}
