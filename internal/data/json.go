package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"baas-lcos/internal/model"
)

type loadRow struct {
	LoadKWh   *float64 `json:"load_kwh"`
	GridPrice *float64 `json:"grid_price"`
}

// ReadLoadJSON parses an array of {"load_kwh": .., "grid_price": ..} objects.
// Rows are decoded one at a time so errors carry the 1-based row number.
func ReadLoadJSON(r io.Reader) ([]model.LoadRecord, error) {
	var rows []json.RawMessage
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &model.MalformedInputError{Field: "load", Reason: "expected an array of objects, got " + typeErr.Value}
		}
		return nil, fmt.Errorf("decode load json: %w", err)
	}

	out := make([]model.LoadRecord, 0, len(rows))
	for i, raw := range rows {
		row := i + 1
		var lr loadRow
		if err := json.Unmarshal(raw, &lr); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field != "" {
				return nil, &model.MalformedInputError{Field: typeErr.Field, Row: row, Reason: "expected a number, got " + typeErr.Value}
			}
			return nil, &model.MalformedInputError{Field: "load", Row: row, Reason: err.Error()}
		}
		if lr.LoadKWh == nil {
			return nil, &model.MalformedInputError{Field: "load_kwh", Row: row, Reason: "missing"}
		}
		if lr.GridPrice == nil {
			return nil, &model.MalformedInputError{Field: "grid_price", Row: row, Reason: "missing"}
		}
		rec := model.LoadRecord{LoadKWh: *lr.LoadKWh, GridPrice: *lr.GridPrice}
		if err := rec.Validate(row); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
