package data

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"baas-lcos/internal/model"
)

// ReadAssumptionsYAML parses a flat mapping of parameter name to number.
func ReadAssumptionsYAML(r io.Reader) (model.AssumptionSet, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return model.AssumptionSet{}, nil
		}
		return nil, fmt.Errorf("decode assumptions yaml: %w", err)
	}
	return ToAssumptionSet(raw)
}

// ToAssumptionSet converts loosely typed values (YAML/JSON decoding output) to numbers.
func ToAssumptionSet(raw map[string]any) (model.AssumptionSet, error) {
	set := make(model.AssumptionSet, len(raw))
	for k, v := range raw {
		switch x := v.(type) {
		case float64:
			set[k] = x
		case int:
			set[k] = float64(x)
		case int64:
			set[k] = float64(x)
		default:
			return nil, &model.MalformedInputError{Field: k, Reason: fmt.Sprintf("expected a number, got %v", v)}
		}
	}
	return set, nil
}
