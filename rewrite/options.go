// File: options.go
// Role: Functional options for Compile.
// Determinism:
//   - Options apply in order; later ones override earlier ones.

package rewrite

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/zxrewrite/cost"
)

// Option customises a CompiledRewriter.
type Option func(*config)

type config struct {
	metric    cost.Metric
	logger    *slog.Logger
	registry  prometheus.Registerer
	flowCheck bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		metric: cost.TwoQubitGateCount{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMetric sets the metric behind Result.CostDelta. Panics on nil.
func WithMetric(m cost.Metric) Option {
	if m == nil {
		panic("rewrite: WithMetric(nil)")
	}
	return func(c *config) { c.metric = m }
}

// WithLogger sets the logger; the rewriter logs at Debug only. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("rewrite: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMetrics registers the rewriter's collectors on reg. Without it the
// collectors still count but are not exported.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *config) { c.registry = reg }
}

// WithFlowCheck makes Apply recompute the causal flow of every result and
// fail with ErrFlowLost when there is none.
func WithFlowCheck() Option {
	return func(c *config) { c.flowCheck = true }
}
