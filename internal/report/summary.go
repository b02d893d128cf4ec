package report

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"baas-lcos/internal/model"
)

// DisplaySummary is a SummaryResult rounded for presentation:
// LCOS to 4 decimals, currency to 2, energy to whole kWh.
// Rounding is half-to-even.
type DisplaySummary struct {
	TargetIRR           string          `json:"target_irr"`
	LCOS                decimal.Decimal `json:"lcos"`
	TotalCapex          decimal.Decimal `json:"total_capex"`
	DiscountedEnergyKWh decimal.Decimal `json:"discounted_energy_kwh"`
	CustomerGridCost    decimal.Decimal `json:"customer_grid_cost"`
	CustomerBaaSCost    decimal.Decimal `json:"customer_baas_cost"`
	CustomerNetSavings  decimal.Decimal `json:"customer_net_savings"`
}

// Row is one labelled line of the printed summary.
type Row struct {
	Label string
	Value string
}

func Display(s model.SummaryResult) DisplaySummary {
	return DisplaySummary{
		TargetIRR:           decimal.NewFromFloat(s.TargetIRR).Mul(decimal.NewFromInt(100)).StringFixedBank(1) + "%",
		LCOS:                decimal.NewFromFloat(s.LCOS).RoundBank(4),
		TotalCapex:          decimal.NewFromFloat(s.TotalCapex).RoundBank(2),
		DiscountedEnergyKWh: decimal.NewFromFloat(s.TotalDiscountedEnergyKWh).RoundBank(0),
		CustomerGridCost:    decimal.NewFromFloat(s.BaselineGridCost).RoundBank(2),
		CustomerBaaSCost:    decimal.NewFromFloat(s.CustomerBaaSCost).RoundBank(2),
		CustomerNetSavings:  decimal.NewFromFloat(s.NetSavings).RoundBank(2),
	}
}

// Rows returns the summary in display order with the customary labels.
func (d DisplaySummary) Rows() []Row {
	return []Row{
		{"Target IRR", d.TargetIRR},
		{"LCOS (€/kWh)", d.LCOS.StringFixed(4)},
		{"Total CAPEX (€)", d.TotalCapex.StringFixed(2)},
		{"Discounted Energy (kWh)", d.DiscountedEnergyKWh.StringFixed(0)},
		{"Customer Grid Cost (€)", d.CustomerGridCost.StringFixed(2)},
		{"Customer BaaS Cost (€)", d.CustomerBaaSCost.StringFixed(2)},
		{"Customer Net Savings (€)", d.CustomerNetSavings.StringFixed(2)},
	}
}

// WriteSummaryJSON writes the display summary as indented JSON.
func WriteSummaryJSON(w io.Writer, d DisplaySummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// WriteSummaryJSONFile writes the summary to path, creating parent directories.
func WriteSummaryJSONFile(path string, d DisplaySummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSummaryJSON(f, d)
}
