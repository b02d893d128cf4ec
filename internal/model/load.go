package model

import "math"

// LoadRecord is one hour of the customer's load profile.
// Prices are in currency/kWh.
type LoadRecord struct {
	LoadKWh   float64 `json:"load_kwh" yaml:"load_kwh"`
	GridPrice float64 `json:"grid_price" yaml:"grid_price"`
}

// GridCost is what the customer pays the grid for this hour.
func (r LoadRecord) GridCost() float64 {
	return r.LoadKWh * r.GridPrice
}

// Validate rejects non-finite load or price values. row is 1-based.
func (r LoadRecord) Validate(row int) error {
	if math.IsNaN(r.LoadKWh) || math.IsInf(r.LoadKWh, 0) {
		return &MalformedInputError{Field: "load_kwh", Row: row, Reason: "value is not finite"}
	}
	if math.IsNaN(r.GridPrice) || math.IsInf(r.GridPrice, 0) {
		return &MalformedInputError{Field: "grid_price", Row: row, Reason: "value is not finite"}
	}
	return nil
}
