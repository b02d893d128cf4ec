package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"baas-lcos/internal/model"
)

// DegradationHeader is the column order of the degradation table.
var DegradationHeader = []string{
	"Year",
	"Capacity (kWh)",
	"Usable Energy (kWh)",
	"Annual Throughput (kWh)",
	"Cumulative Throughput (kWh)",
	"Discounted Energy (kWh)",
}

// WriteDegradationCSV writes one row per year with 2-decimal formatting.
func WriteDegradationCSV(w io.Writer, records []model.YearlyRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(DegradationHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.CapacityKWh),
			fmtFloat(r.UsableEnergyKWh),
			fmtFloat(r.AnnualThroughputKWh),
			fmtFloat(r.CumulativeThroughputKWh),
			fmtFloat(r.DiscountedEnergyKWh),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDegradationCSVFile writes the table to path, creating parent directories.
func WriteDegradationCSVFile(path string, records []model.YearlyRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteDegradationCSV(f, records)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
