package models

// EvaluateRequest is the body of POST /api/v1/evaluate.
type EvaluateRequest struct {
	// Assumptions is keyed by parameter name, e.g. "Battery Capacity (kWh)".
	Assumptions map[string]any  `json:"assumptions" binding:"required"`
	Load        []LoadRow       `json:"load,omitempty"`
	Options     EvaluateOptions `json:"options,omitempty"`
}

// LoadRow is one hour of the load profile. Pointers distinguish a missing field from zero.
type LoadRow struct {
	LoadKWh   *float64 `json:"load_kwh"`
	GridPrice *float64 `json:"grid_price"`
}

// EvaluateOptions contains optional evaluation parameters
type EvaluateOptions struct {
	IncludeDegradation bool `json:"include_degradation,omitempty"` // default: false
}
