package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"baas-lcos/internal/model"
)

// Outcome labels for baas_evaluations_total.
const (
	OutcomeOK               = "ok"
	OutcomeMissingParameter = "missing_parameter"
	OutcomeMalformedInput   = "malformed_input"
	OutcomeInvalidModel     = "invalid_model"
	OutcomeError            = "error"
)

// Recorder tracks evaluation counts, latency and the most recent LCOS.
type Recorder struct {
	evaluations *prometheus.CounterVec
	duration    prometheus.Histogram
	lastLCOS    prometheus.Gauge
}

// NewRecorder registers metrics on reg. A nil registerer defaults to the
// global Prometheus registerer.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "baas_evaluations_total",
		Help: "Total number of LCOS evaluations by outcome",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "baas_evaluation_duration_seconds",
		Help:    "Time spent computing one evaluation",
		Buckets: prometheus.DefBuckets,
	})
	lastLCOS := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "baas_last_lcos",
		Help: "LCOS of the most recent successful evaluation (currency/kWh)",
	})

	if err := reg.Register(evaluations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			evaluations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(lastLCOS); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			lastLCOS = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	return &Recorder{evaluations: evaluations, duration: duration, lastLCOS: lastLCOS}, nil
}

// Observe records one evaluation. lcos is ignored when err is non-nil.
func (r *Recorder) Observe(elapsed time.Duration, lcos float64, err error) {
	if r == nil {
		return
	}
	r.duration.Observe(elapsed.Seconds())
	r.evaluations.WithLabelValues(Outcome(err)).Inc()
	if err == nil {
		r.lastLCOS.Set(lcos)
	}
}

// Outcome classifies an evaluation error.
func Outcome(err error) string {
	var (
		missing   *model.MissingParameterError
		malformed *model.MalformedInputError
		invalid   *model.InvalidModelError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &missing):
		return OutcomeMissingParameter
	case errors.As(err, &malformed):
		return OutcomeMalformedInput
	case errors.As(err, &invalid):
		return OutcomeInvalidModel
	default:
		return OutcomeError
	}
}
