package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/zxrewrite/cost"
	"github.com/katalvlaran/zxrewrite/rewrite"
	"github.com/katalvlaran/zxrewrite/rules"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	cfg        Config
	logger     *slog.Logger
	registry   *prometheus.Registry

	// flag values, applied over cfg when set
	rules       string
	metric      string
	workers     int
	flowCheck   bool
	logLevel    string
	metricsFile string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "zxrewrite",
		Short:         "Causal-flow preserving rewriting of ZX diagrams",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.dumpMetrics()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.rules, "rules", "", "rule library (JSON)")
	pf.StringVar(&a.metric, "metric", "", fmt.Sprintf("cost metric %v", cost.Names()))
	pf.IntVar(&a.workers, "workers", 0, "parallel candidate evaluations")
	pf.BoolVar(&a.flowCheck, "flow-check", false, "reject rewrites that lose the causal flow")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(
		newCheckCmd(a),
		newCandidatesCmd(a),
		newApplyCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("rules") {
		cfg.Rules = a.rules
	}
	if flags.Changed("metric") {
		cfg.Metric = a.metric
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("flow-check") {
		cfg.FlowCheck = a.flowCheck
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.metricsFile
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cfg.Log, cmd.ErrOrStderr())
	a.registry = prometheus.NewRegistry()
	a.logger.Debug("configuration loaded",
		slog.String("config", a.configPath),
		slog.String("rules", cfg.Rules),
		slog.String("metric", cfg.Metric),
		slog.Int("workers", cfg.Workers))

	return nil
}

func newLogger(lc LogConfig, w io.Writer) *slog.Logger {
	lvl, _ := lc.level()
	opts := &slog.HandlerOptions{Level: lvl}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// compile loads the configured rule library.
func (a *app) compile() (*rewrite.CompiledRewriter, error) {
	if a.cfg.Rules == "" {
		return nil, fmt.Errorf("no rule library: set --rules or rules in the config: %w", ErrBadConfig)
	}
	sets, err := rules.LoadFile(a.cfg.Rules)
	if err != nil {
		return nil, err
	}
	m, err := cost.ByName(a.cfg.Metric)
	if err != nil {
		return nil, err
	}
	opts := []rewrite.Option{
		rewrite.WithMetric(m),
		rewrite.WithLogger(a.logger),
		rewrite.WithMetrics(a.registry),
	}
	if a.cfg.FlowCheck {
		opts = append(opts, rewrite.WithFlowCheck())
	}

	return rewrite.Compile(sets, opts...)
}

func (a *app) dumpMetrics() error {
	if a.cfg.MetricsFile == "" || a.registry == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, a.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.logger.Debug("metrics written", slog.String("path", a.cfg.MetricsFile))

	return nil
}

// readDiagram decodes a graph document from path.
func readDiagram(path string) (*rules.DecodedDiagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dd, err := rules.DecodeDiagram(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return dd, nil
}

// writeOutput writes data to path, or to w when path is "" or "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprintln(w, string(data))
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}
