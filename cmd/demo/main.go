package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"baas-lcos/internal/analysis"
	"baas-lcos/internal/lcos"
	"baas-lcos/internal/model"
	"baas-lcos/internal/report"
)

// Demo:
// - Build the reference 1 MWh / 500 kW assumption set
// - Synthesize a year of hourly load with a day/night tariff
// - Run the model and print the summary and degradation table
func main() {
	load := flag.Float64("load", 120, "Mean hourly load (kWh)")
	peakPrice := flag.Float64("peak-price", 0.32, "Grid price 07:00-22:00 (€/kWh)")
	offPeakPrice := flag.Float64("offpeak-price", 0.18, "Grid price otherwise (€/kWh)")
	years := flag.Float64("years", 10, "Project lifetime (years)")
	outCSV := flag.String("out", "", "Optional path to write the degradation table CSV")
	flag.Parse()

	set := model.AssumptionSet{
		model.ParamCapacityKWh:    1000,
		model.ParamPowerKW:        500,
		model.ParamCapexPerKWh:    300,
		model.ParamLifetimeYears:  *years,
		model.ParamTargetIRR:      0.08,
		model.ParamDoDPercent:     90,
		model.ParamCycles:         5000,
		model.ParamEOLCapacityPct: 80,
	}
	loads := syntheticYear(*load, *peakPrice, *offPeakPrice)

	res, err := lcos.New().Evaluate(set, loads)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := analysis.ProfileLoad(loads)
	fmt.Printf("Load: %d hours, %.0f kWh, load-weighted price %.4f €/kWh\n\n", p.Hours, p.TotalLoadKWh, p.LoadWeightedPrice)

	for _, r := range report.Display(res.Summary).Rows() {
		fmt.Printf("%-26s %s\n", r.Label, r.Value)
	}
	fmt.Println()
	if err := report.WriteDegradationCSV(os.Stdout, res.Degradation); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *outCSV != "" {
		if err := report.WriteDegradationCSVFile(*outCSV, res.Degradation); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %s\n", *outCSV)
	}
}

// syntheticYear builds 8760 hours with a sinusoidal daily load shape around mean.
func syntheticYear(mean, peak, offPeak float64) []model.LoadRecord {
	out := make([]model.LoadRecord, 8760)
	for h := range out {
		hourOfDay := h % 24
		shape := 1 + 0.4*math.Sin(2*math.Pi*float64(hourOfDay-6)/24)
		price := offPeak
		if hourOfDay >= 7 && hourOfDay < 22 {
			price = peak
		}
		out[h] = model.LoadRecord{LoadKWh: mean * shape, GridPrice: price}
	}
	return out
}
