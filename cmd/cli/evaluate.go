package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"baas-lcos/internal/config"
	"baas-lcos/internal/data"
	"baas-lcos/internal/lcos"
	"baas-lcos/internal/logger"
	"baas-lcos/internal/model"
	"baas-lcos/internal/report"
)

type evaluateFlags struct {
	configPath      string
	assumptionsPath string
	loadPath        string
	outPath         string
	summaryPath     string
	quiet           bool
}

func newEvaluateCmd() *cobra.Command {
	var f evaluateFlags
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compute LCOS, grid baseline and net savings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to YAML run config")
	cmd.Flags().StringVarP(&f.assumptionsPath, "assumptions", "a", "", "Assumptions table (.csv Parameter,Value or .yaml)")
	cmd.Flags().StringVarP(&f.loadPath, "load", "l", "", "Hourly load series (.csv or .json)")
	cmd.Flags().StringVarP(&f.outPath, "out", "o", "", "Write the degradation table CSV here")
	cmd.Flags().StringVar(&f.summaryPath, "summary", "", "Write the rounded summary JSON here")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Do not print the degradation table")
	return cmd
}

func runEvaluate(w io.Writer, f evaluateFlags) error {
	cfg, err := buildConfig(f)
	if err != nil {
		return err
	}
	set, err := cfg.AssumptionSet()
	if err != nil {
		return err
	}
	loads, err := cfg.LoadSeries()
	if err != nil {
		return err
	}

	engine := lcos.New(lcos.WithLogger(logger.New("lcos")))
	res, err := engine.Evaluate(set, loads)
	if err != nil {
		return err
	}

	if cfg.Output.DegradationCSV != "" {
		if err := report.WriteDegradationCSVFile(cfg.Output.DegradationCSV, res.Degradation); err != nil {
			return fmt.Errorf("write degradation table: %w", err)
		}
		fmt.Fprintf(w, "Wrote %d rows to %s\n", len(res.Degradation), cfg.Output.DegradationCSV)
	}
	display := report.Display(res.Summary)
	if cfg.Output.SummaryJSON != "" {
		if err := report.WriteSummaryJSONFile(cfg.Output.SummaryJSON, display); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	fmt.Fprintln(w, "Results Summary")
	for _, r := range display.Rows() {
		fmt.Fprintf(w, "  %-26s %s\n", r.Label, r.Value)
	}
	if !f.quiet {
		fmt.Fprintln(w, "")
		printDegradation(w, res.Degradation)
	}
	return nil
}

// buildConfig merges --config with explicit path flags; flags win.
func buildConfig(f evaluateFlags) (*config.Config, error) {
	cfg := &config.Config{}
	if f.configPath != "" {
		loaded, err := config.LoadUnchecked(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if f.assumptionsPath != "" {
		cfg.AssumptionsFile = f.assumptionsPath
	}
	if f.loadPath != "" {
		cfg.LoadFile = f.loadPath
	}
	if f.outPath != "" {
		cfg.Output.DegradationCSV = f.outPath
	}
	if f.summaryPath != "" {
		cfg.Output.SummaryJSON = f.summaryPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w (use --assumptions or --config)", err)
	}
	return cfg, nil
}

func printDegradation(w io.Writer, records []model.YearlyRecord) {
	fmt.Fprintf(w, "%-5s %-14s %-14s %-16s %-16s %-16s\n", "year", "capacity", "usable", "throughput", "cumulative", "discounted")
	for _, r := range records {
		fmt.Fprintf(w, "%-5d %-14.2f %-14.2f %-16.2f %-16.2f %-16.2f\n",
			r.Year,
			r.CapacityKWh,
			r.UsableEnergyKWh,
			r.AnnualThroughputKWh,
			r.CumulativeThroughputKWh,
			r.DiscountedEnergyKWh,
		)
	}
}

// loadSeries is shared with the profile command.
func loadSeries(path string) ([]model.LoadRecord, error) {
	if path == "" {
		return nil, fmt.Errorf("--load is required")
	}
	return data.LoadLoadFile(path)
}
