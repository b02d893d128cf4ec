package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"baas-lcos/internal/data"
	"baas-lcos/internal/model"
)

// Config is the on-disk run configuration (YAML).
type Config struct {
	// Optional: load assumptions from a separate CSV/YAML table.
	// Entries in Assumptions override the file.
	AssumptionsFile string             `yaml:"assumptions_file"`
	Assumptions     map[string]float64 `yaml:"assumptions"`
	LoadFile        string             `yaml:"load_file"`
	Output          OutputConfig       `yaml:"output"`
}

type OutputConfig struct {
	DegradationCSV string `yaml:"degradation_csv"`
	SummaryJSON    string `yaml:"summary_json"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked reads the config and resolves relative file paths, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	c.AssumptionsFile = resolvePath(dir, c.AssumptionsFile)
	c.LoadFile = resolvePath(dir, c.LoadFile)
	return &c, nil
}

// resolvePath prefers interpreting relative paths as relative to the config file
// directory, but falls back to the provided path (relative to cwd) if that doesn't exist.
func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	cand := filepath.Join(dir, p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.AssumptionsFile == "" && len(c.Assumptions) == 0 {
		return errors.New("assumptions_file or assumptions is required")
	}
	return nil
}

// AssumptionSet loads AssumptionsFile (if set) and overlays the inline assumptions.
func (c *Config) AssumptionSet() (model.AssumptionSet, error) {
	base := model.AssumptionSet{}
	if c.AssumptionsFile != "" {
		loaded, err := data.LoadAssumptionsFile(c.AssumptionsFile)
		if err != nil {
			return nil, fmt.Errorf("assumptions file %s: %w", c.AssumptionsFile, err)
		}
		base = loaded
	}
	return MergeAssumptions(base, c.Assumptions), nil
}

// LoadSeries reads LoadFile. No load file means an empty series.
func (c *Config) LoadSeries() ([]model.LoadRecord, error) {
	if c.LoadFile == "" {
		return nil, nil
	}
	loads, err := data.LoadLoadFile(c.LoadFile)
	if err != nil {
		return nil, fmt.Errorf("load file %s: %w", c.LoadFile, err)
	}
	return loads, nil
}

// MergeAssumptions overlays every key in override onto base. Unlike zero-value
// struct merges, an explicit 0 in override wins.
func MergeAssumptions(base model.AssumptionSet, override map[string]float64) model.AssumptionSet {
	out := make(model.AssumptionSet, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
