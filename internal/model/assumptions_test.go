package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceSet() AssumptionSet {
	return AssumptionSet{
		ParamCapacityKWh:    1000,
		ParamPowerKW:        500,
		ParamCapexPerKWh:    300,
		ParamLifetimeYears:  10,
		ParamTargetIRR:      0.08,
		ParamDoDPercent:     90,
		ParamCycles:         5000,
		ParamEOLCapacityPct: 80,
	}
}

func TestResolveAssumptions(t *testing.T) {
	a, err := ResolveAssumptions(referenceSet())
	require.NoError(t, err)

	assert.Equal(t, 1000.0, a.CapacityKWh)
	assert.Equal(t, 500.0, a.PowerKW)
	assert.Equal(t, 300.0, a.CapexPerKWh)
	assert.Equal(t, 300000.0, a.CapexTotal)
	assert.Equal(t, 10, a.LifetimeYears)
	assert.Equal(t, 0.08, a.TargetIRR)
	assert.InDelta(t, 0.9, a.DoD, 1e-12)
	assert.Equal(t, 5000.0, a.TotalCycles)
	assert.InDelta(t, 0.8, a.EOLCapacity, 1e-12)
}

func TestResolveAssumptionsTruncatesLifetime(t *testing.T) {
	set := referenceSet()
	set[ParamLifetimeYears] = 10.9
	a, err := ResolveAssumptions(set)
	require.NoError(t, err)
	assert.Equal(t, 10, a.LifetimeYears)
}

func TestResolveAssumptionsMissingKey(t *testing.T) {
	for _, p := range RequiredParameters {
		t.Run(p.Name, func(t *testing.T) {
			set := referenceSet()
			delete(set, p.Name)

			_, err := ResolveAssumptions(set)
			var missing *MissingParameterError
			require.True(t, errors.As(err, &missing), "got %v", err)
			assert.Equal(t, p.Name, missing.Key)
			assert.Contains(t, err.Error(), p.Name)
		})
	}
}

func TestResolveAssumptionsRejectsBadRanges(t *testing.T) {
	cases := []struct {
		key   string
		value float64
	}{
		{ParamCapacityKWh, 0},
		{ParamPowerKW, -1},
		{ParamCapexPerKWh, -0.01},
		{ParamTargetIRR, -1},
		{ParamDoDPercent, 120},
		{ParamEOLCapacityPct, -5},
		{ParamCycles, -1},
		{ParamCycles, math.NaN()},
		{ParamCapexPerKWh, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			set := referenceSet()
			set[tc.key] = tc.value

			_, err := ResolveAssumptions(set)
			var malformed *MalformedInputError
			require.True(t, errors.As(err, &malformed), "got %v", err)
			assert.Equal(t, tc.key, malformed.Field)
		})
	}
}

func TestResolveAssumptionsShortLifetime(t *testing.T) {
	for _, years := range []float64{1, 1.5, 0} {
		set := referenceSet()
		set[ParamLifetimeYears] = years

		_, err := ResolveAssumptions(set)
		var invalid *InvalidModelError
		assert.True(t, errors.As(err, &invalid), "lifetime %v: got %v", years, err)
	}
}

func TestResolveAssumptionsLifetimeUpperBound(t *testing.T) {
	for _, years := range []float64{101, 3e9, 1e13, math.MaxFloat64} {
		set := referenceSet()
		set[ParamLifetimeYears] = years

		_, err := ResolveAssumptions(set)
		var malformed *MalformedInputError
		require.True(t, errors.As(err, &malformed), "lifetime %v: got %v", years, err)
		assert.Equal(t, ParamLifetimeYears, malformed.Field)
	}

	set := referenceSet()
	set[ParamLifetimeYears] = MaxLifetimeYears
	a, err := ResolveAssumptions(set)
	require.NoError(t, err)
	assert.Equal(t, MaxLifetimeYears, a.LifetimeYears)

	set[ParamLifetimeYears] = -math.MaxFloat64
	_, err = ResolveAssumptions(set)
	var invalid *InvalidModelError
	assert.True(t, errors.As(err, &invalid), "got %v", err)
}

func TestValidateLifetimeUpperBound(t *testing.T) {
	set := referenceSet()
	a, err := ResolveAssumptions(set)
	require.NoError(t, err)
	a.LifetimeYears = 3_000_000_000

	var malformed *MalformedInputError
	require.True(t, errors.As(a.Validate(), &malformed))
	assert.Equal(t, ParamLifetimeYears, malformed.Field)
}

func TestResolveAssumptionsIgnoresExtraKeys(t *testing.T) {
	set := referenceSet()
	set["Notes"] = 42
	_, err := ResolveAssumptions(set)
	assert.NoError(t, err)
}
