package rewrite

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "zxrewrite"
	metricsSubsystem = "rewriter"
)

// Outcome label values of applyTotal.
const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

type metrics struct {
	patterns   prometheus.Gauge
	matches    prometheus.Counter
	candidates prometheus.Counter
	noFlow     prometheus.Counter
	applyTotal *prometheus.CounterVec
	costDelta  prometheus.Histogram
}

// newMetrics builds the collectors and registers them on reg; a nil reg
// leaves them unregistered. Collectors already registered on reg by an
// earlier Compile are reused, so rewriters sharing a registry share counts.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		patterns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "patterns",
			Help:      "Number of compiled patterns",
		}),
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "matches_total",
			Help:      "Total pattern matches found in target diagrams",
		}),
		candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "candidates_total",
			Help:      "Total candidate rewrites produced",
		}),
		noFlow: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "no_flow_total",
			Help:      "Target diagrams rejected for lacking a causal flow",
		}),
		applyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "apply_total",
			Help:      "Rewrite applications by outcome",
		}, []string{"outcome"}),
		costDelta: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "cost_delta",
			Help:      "Cost delta of applied rewrites",
			Buckets:   []float64{-4, -3, -2, -1, 0, 1, 2, 3, 4},
		}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.patterns, err = register(reg, m.patterns); err != nil {
		return nil, err
	}
	if m.matches, err = register(reg, m.matches); err != nil {
		return nil, err
	}
	if m.candidates, err = register(reg, m.candidates); err != nil {
		return nil, err
	}
	if m.noFlow, err = register(reg, m.noFlow); err != nil {
		return nil, err
	}
	if m.applyTotal, err = register(reg, m.applyTotal); err != nil {
		return nil, err
	}
	if m.costDelta, err = register(reg, m.costDelta); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, or returns the equivalent collector reg already holds.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(T); ok {
			return existing, nil
		}
	}

	return c, fmt.Errorf("%w: %w", ErrMetricsRegistration, err)
}
