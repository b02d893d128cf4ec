package data

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"baas-lcos/internal/model"
)

// LoadAssumptionsFile reads an assumptions table from .csv, .yaml or .yml.
func LoadAssumptionsFile(path string) (model.AssumptionSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadAssumptionsCSV(f)
	case ".yaml", ".yml":
		return ReadAssumptionsYAML(f)
	default:
		return nil, fmt.Errorf("unsupported assumptions format: %s", filepath.Ext(path))
	}
}

// LoadLoadFile reads an hourly load series from .csv or .json.
func LoadLoadFile(path string) ([]model.LoadRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadLoadCSV(f)
	case ".json":
		return ReadLoadJSON(f)
	default:
		return nil, fmt.Errorf("unsupported load format: %s", filepath.Ext(path))
	}
}
