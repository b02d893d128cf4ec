package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"baas-lcos/internal/analysis"
)

func newProfileCmd() *cobra.Command {
	var loadPath string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print statistics for an hourly load series",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(cmd.OutOrStdout(), loadPath)
		},
	}
	cmd.Flags().StringVarP(&loadPath, "load", "l", "", "Hourly load series (.csv or .json)")
	return cmd
}

func runProfile(w io.Writer, path string) error {
	loads, err := loadSeries(path)
	if err != nil {
		return err
	}
	p := analysis.ProfileLoad(loads)
	if p.Hours != 8760 {
		fmt.Fprintf(w, "note: %d hours (a full year is 8760)\n", p.Hours)
	}
	fmt.Fprintf(w, "%-22s %d\n", "hours", p.Hours)
	fmt.Fprintf(w, "%-22s %.2f\n", "total load (kWh)", p.TotalLoadKWh)
	fmt.Fprintf(w, "%-22s %.2f\n", "peak load (kWh)", p.PeakLoadKWh)
	fmt.Fprintf(w, "%-22s %.2f\n", "mean load (kWh)", p.MeanLoadKWh)
	fmt.Fprintf(w, "%-22s %.4f / %.4f\n", "min/max price", p.MinPrice, p.MaxPrice)
	fmt.Fprintf(w, "%-22s %.4f\n", "mean price", p.MeanPrice)
	fmt.Fprintf(w, "%-22s %.4f\n", "load-weighted price", p.LoadWeightedPrice)
	fmt.Fprintf(w, "%-22s %.4f\n", "p95-p05 spread", p.PriceSpread())
	return nil
}
