package lcos

import (
	"fmt"

	"baas-lcos/internal/logger"
	"baas-lcos/internal/model"
)

type Engine struct {
	log logger.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-run debug output.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{log: logger.NopLogger{}}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Evaluate resolves a raw assumption table and runs the model.
func (e *Engine) Evaluate(set model.AssumptionSet, loads []model.LoadRecord) (*Result, error) {
	a, err := model.ResolveAssumptions(set)
	if err != nil {
		return nil, fmt.Errorf("resolve assumptions: %w", err)
	}
	return e.Run(a, loads)
}

// Run projects degradation, derives LCOS and compares it with the grid baseline.
// Either every stage succeeds or no result is returned.
func (e *Engine) Run(a model.Assumptions, loads []model.LoadRecord) (*Result, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("assumptions: %w", err)
	}

	for i, r := range loads {
		if err := r.Validate(i + 1); err != nil {
			return nil, fmt.Errorf("load series: %w", err)
		}
	}

	records, err := ProjectDegradation(a)
	if err != nil {
		return nil, fmt.Errorf("project degradation: %w", err)
	}
	l, err := ComputeLCOS(a, records)
	if err != nil {
		return nil, fmt.Errorf("compute lcos: %w", err)
	}
	baseline := ComputeBaseline(loads)
	savings := CompareSavings(baseline, records, l)
	if err := checkFinite(baseline, savings); err != nil {
		return nil, fmt.Errorf("compare savings: %w", err)
	}

	e.log.Debugw("evaluation complete", map[string]any{
		"years":         len(records),
		"hours":         baseline.Hours,
		"lcos":          l.LCOS,
		"net_savings":   savings.NetSavings,
		"energy_billed": savings.EnergyBilledKWh,
	})

	return &Result{
		Assumptions: a,
		Degradation: records,
		LCOS:        l,
		Baseline:    baseline,
		Savings:     savings,
		Summary: model.SummaryResult{
			TargetIRR:                a.TargetIRR,
			LCOS:                     l.LCOS,
			TotalCapex:               l.CapexTotal,
			TotalDiscountedEnergyKWh: l.TotalDiscountedEnergyKWh,
			BaselineGridCost:         baseline.Cost,
			CustomerBaaSCost:         savings.CustomerBaaSCost,
			NetSavings:               savings.NetSavings,
		},
	}, nil
}

func checkFinite(b Baseline, s Savings) error {
	switch {
	case !finite(b.Cost):
		return &model.InvalidModelError{Reason: "baseline grid cost is not finite"}
	case !finite(s.CustomerBaaSCost):
		return &model.InvalidModelError{Reason: "customer BaaS cost is not finite"}
	case !finite(s.NetSavings):
		return &model.InvalidModelError{Reason: "net savings are not finite"}
	}
	return nil
}
