package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "baas",
		Short: "Battery-as-a-Service LCOS and customer savings calculator",
		Long: `baas computes the levelized cost of storage (LCOS) for a battery and
compares BaaS billing with the customer's grid baseline.

examples:
  baas evaluate --assumptions inputs.csv --load load_8760.csv --out results/degradation.csv
  baas evaluate --config run.yaml
  baas profile --load load_8760.csv`,
		SilenceUsage: true,
	}
	root.AddCommand(newEvaluateCmd(), newProfileCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
