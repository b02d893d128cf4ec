package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"baas-lcos/internal/model"
)

// Column headers of the original input workbook, exported as CSV.
const (
	ColumnParameter = "Parameter"
	ColumnValue     = "Value"
	ColumnLoad      = "Load (kWh)"
	ColumnGridPrice = "Grid Price (€/kWh)"
)

var (
	loadAliases  = []string{"load (kwh)", "load_kwh", "load"}
	priceAliases = []string{"grid price (€/kwh)", "grid_price", "price"}
)

// ReadAssumptionsCSV parses a two-column Parameter,Value table.
// A parameter listed twice keeps its last value.
func ReadAssumptionsCSV(r io.Reader) (model.AssumptionSet, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &model.MalformedInputError{Field: ColumnParameter, Reason: "empty assumptions table"}
	}
	if err != nil {
		return nil, fmt.Errorf("read assumptions header: %w", err)
	}
	paramIdx := indexOf(header, []string{strings.ToLower(ColumnParameter)})
	if paramIdx < 0 {
		return nil, &model.MalformedInputError{Field: ColumnParameter, Reason: "column not found"}
	}
	valueIdx := indexOf(header, []string{strings.ToLower(ColumnValue)})
	if valueIdx < 0 {
		return nil, &model.MalformedInputError{Field: ColumnValue, Reason: "column not found"}
	}

	set := model.AssumptionSet{}
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read assumptions row %d: %w", row, err)
		}
		name := cell(rec, paramIdx)
		if name == "" {
			continue
		}
		v, err := parseNumber(cell(rec, valueIdx))
		if err != nil {
			return nil, &model.MalformedInputError{Field: name, Row: row, Reason: err.Error()}
		}
		set[name] = v
	}
	return set, nil
}

// ReadLoadCSV parses an hourly load table. Column names match case-insensitively;
// "load_kwh"/"grid_price" and any "Grid Price (<currency>/kWh)" header are accepted.
func ReadLoadCSV(r io.Reader) ([]model.LoadRecord, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &model.MalformedInputError{Field: ColumnLoad, Reason: "empty load table"}
	}
	if err != nil {
		return nil, fmt.Errorf("read load header: %w", err)
	}
	loadIdx := indexOf(header, loadAliases)
	if loadIdx < 0 {
		return nil, &model.MalformedInputError{Field: ColumnLoad, Reason: "column not found"}
	}
	priceIdx := indexOf(header, priceAliases)
	if priceIdx < 0 {
		priceIdx = indexWithPrefix(header, "grid price")
	}
	if priceIdx < 0 {
		return nil, &model.MalformedInputError{Field: ColumnGridPrice, Reason: "column not found"}
	}

	out := make([]model.LoadRecord, 0, 8760)
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read load row %d: %w", row, err)
		}
		load, err := parseNumber(cell(rec, loadIdx))
		if err != nil {
			return nil, &model.MalformedInputError{Field: ColumnLoad, Row: row, Reason: err.Error()}
		}
		price, err := parseNumber(cell(rec, priceIdx))
		if err != nil {
			return nil, &model.MalformedInputError{Field: ColumnGridPrice, Row: row, Reason: err.Error()}
		}
		out = append(out, model.LoadRecord{LoadKWh: load, GridPrice: price})
	}
	return out, nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

func indexOf(header []string, names []string) int {
	for i, h := range header {
		h = normalize(h)
		for _, n := range names {
			if h == n {
				return i
			}
		}
	}
	return -1
}

func indexWithPrefix(header []string, prefix string) int {
	for i, h := range header {
		if strings.HasPrefix(normalize(h), prefix) {
			return i
		}
	}
	return -1
}

// normalize lowercases and strips a UTF-8 BOM left by spreadsheet exports.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "\ufeff")))
}

func cell(rec []string, idx int) string {
	if idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("value is empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	return v, nil
}
