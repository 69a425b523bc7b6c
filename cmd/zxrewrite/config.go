package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/zxrewrite/cost"
)

// ErrBadConfig marks a configuration value that cannot be used.
var ErrBadConfig = errors.New("zxrewrite: bad config")

// Config is the YAML configuration of the command.
type Config struct {
	// Rules is the path of the rule library.
	Rules string `yaml:"rules"`
	// Metric names the cost metric behind cost deltas (see cost.Names).
	Metric string `yaml:"metric"`
	// Workers bounds parallel candidate evaluation.
	Workers int `yaml:"workers"`
	// FlowCheck rejects rewrites whose result has no causal flow.
	FlowCheck bool `yaml:"flow_check"`
	// MetricsFile receives a Prometheus text dump after each command.
	MetricsFile string    `yaml:"metrics_file"`
	Log         LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Metric:  cost.TwoQubitGateCount{}.Name(),
		Workers: runtime.NumCPU(),
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers = %d: %w", c.Workers, ErrBadConfig)
	}
	if _, err := cost.ByName(c.Metric); err != nil {
		return fmt.Errorf("metric: %w: %w", ErrBadConfig, err)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log format %q: %w", c.Log.Format, ErrBadConfig)
	}

	return nil
}

func (l LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return lvl, fmt.Errorf("log level %q: %w", l.Level, ErrBadConfig)
	}

	return lvl, nil
}
