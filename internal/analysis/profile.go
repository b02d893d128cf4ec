package analysis

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"baas-lcos/internal/model"
)

// LoadProfile summarizes an hourly load series. It is informational only and
// does not feed the savings comparison.
type LoadProfile struct {
	Hours int `json:"hours"`

	TotalLoadKWh float64 `json:"total_load_kwh"`
	PeakLoadKWh  float64 `json:"peak_load_kwh"`
	MeanLoadKWh  float64 `json:"mean_load_kwh"`

	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
	MeanPrice float64 `json:"mean_price"`
	P05Price  float64 `json:"p05_price"`
	P95Price  float64 `json:"p95_price"`

	// LoadWeightedPrice is the average price actually paid per kWh of load.
	LoadWeightedPrice float64 `json:"load_weighted_price"`
}

// ProfileLoad computes summary statistics. An empty series yields a zero profile.
func ProfileLoad(loads []model.LoadRecord) LoadProfile {
	p := LoadProfile{Hours: len(loads)}
	if len(loads) == 0 {
		return p
	}

	load := make([]float64, len(loads))
	price := make([]float64, len(loads))
	for i, r := range loads {
		load[i] = r.LoadKWh
		price[i] = r.GridPrice
	}

	p.TotalLoadKWh = floats.Sum(load)
	p.PeakLoadKWh = floats.Max(load)
	p.MeanLoadKWh = stat.Mean(load, nil)

	p.MeanPrice = stat.Mean(price, nil)
	if p.TotalLoadKWh != 0 {
		p.LoadWeightedPrice = stat.Mean(price, load)
	}

	sorted := append([]float64(nil), price...)
	sort.Float64s(sorted)
	p.MinPrice = sorted[0]
	p.MaxPrice = sorted[len(sorted)-1]
	p.P05Price = stat.Quantile(0.05, stat.Empirical, sorted, nil)
	p.P95Price = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	return p
}

// PriceSpread is the P95-P05 price range, a rough measure of how much a
// time-shifting battery could earn on this tariff.
func (p LoadProfile) PriceSpread() float64 {
	return p.P95Price - p.P05Price
}
