package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `missing required parameter "Cycles"`, (&MissingParameterError{Key: ParamCycles}).Error())
	assert.Equal(t, "invalid model: zero energy", (&InvalidModelError{Reason: "zero energy"}).Error())
	assert.Equal(t, `malformed input: field "Load (kWh)" (row 3): not a number`,
		(&MalformedInputError{Field: "Load (kWh)", Row: 3, Reason: "not a number"}).Error())
	assert.Equal(t, `malformed input: field "Cycles": must be >= 0`,
		(&MalformedInputError{Field: ParamCycles, Reason: "must be >= 0"}).Error())
}

func TestErrorsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("resolve: %w", &MissingParameterError{Key: ParamTargetIRR})
	var missing *MissingParameterError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, ParamTargetIRR, missing.Key)
}

func TestLoadRecordGridCost(t *testing.T) {
	assert.InDelta(t, 2.5, LoadRecord{LoadKWh: 10, GridPrice: 0.25}.GridCost(), 1e-12)
}
