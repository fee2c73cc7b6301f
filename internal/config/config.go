// Package config loads agrokit CLI settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agrodata/agrokit/algorithms"
	"github.com/agrodata/agrokit/bst"
	"github.com/agrodata/agrokit/numeric"
	"github.com/agrodata/agrokit/pqueue"
)

// EnvLogLevel overrides Logging.Level when set.
const EnvLogLevel = "AGROKIT_LOG_LEVEL"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all agrokit configuration.
type Config struct {
	Search     SearchConfig     `yaml:"search"`
	Projection ProjectionConfig `yaml:"projection"`
	BreakEven  BreakEvenConfig  `yaml:"break_even"`
	Alerts     AlertsConfig     `yaml:"alerts"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SearchConfig configures ranking and the crop-yield tree lookup.
type SearchConfig struct {
	YieldTolerance float64 `yaml:"yield_tolerance"` // kg/ha
	TopK           int     `yaml:"top_k"`
}

// ProjectionConfig lists the days since sowing to project production at.
type ProjectionConfig struct {
	Horizons []float64 `yaml:"horizons"`
}

// BreakEvenConfig configures the bisection solver.
type BreakEvenConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	BracketLo     float64 `yaml:"bracket_lo"`
	BracketHi     float64 `yaml:"bracket_hi"`
}

// AlertsConfig configures the harvest-alert windows (days left).
type AlertsConfig struct {
	UrgentWithin int `yaml:"urgent_within"`
	NoticeWithin int `yaml:"notice_within"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the library defaults.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			YieldTolerance: bst.DefaultYieldTolerance,
			TopK:           algorithms.DefaultTopK,
		},
		Projection: ProjectionConfig{
			Horizons: []float64{30, 60, 90, 120},
		},
		BreakEven: BreakEvenConfig{
			Tolerance:     numeric.DefaultTolerance,
			MaxIterations: numeric.DefaultMaxIterations,
			BracketLo:     numeric.DefaultBracketLo,
			BracketHi:     numeric.DefaultBracketHi,
		},
		Alerts: AlertsConfig{
			UrgentWithin: pqueue.DefaultUrgentWithin,
			NoticeWithin: pqueue.DefaultNoticeWithin,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file over the defaults.
// An empty path or a missing file yields the defaults. Environment
// overrides apply in every case.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		c.Logging.Level = strings.ToLower(lvl)
	}
}

// Validate checks the values the library options would reject anyway, so
// that a bad file fails at startup rather than on first use.
func (c *Config) Validate() error {
	switch {
	case c.Search.YieldTolerance < 0:
		return fmt.Errorf("%w: search.yield_tolerance=%v", ErrInvalid, c.Search.YieldTolerance)
	case c.BreakEven.Tolerance <= 0:
		return fmt.Errorf("%w: break_even.tolerance=%v", ErrInvalid, c.BreakEven.Tolerance)
	case c.BreakEven.MaxIterations <= 0:
		return fmt.Errorf("%w: break_even.max_iterations=%d", ErrInvalid, c.BreakEven.MaxIterations)
	case c.BreakEven.BracketLo >= c.BreakEven.BracketHi:
		return fmt.Errorf("%w: break_even bracket [%v, %v]", ErrInvalid, c.BreakEven.BracketLo, c.BreakEven.BracketHi)
	case c.Alerts.UrgentWithin < 0 || c.Alerts.NoticeWithin < c.Alerts.UrgentWithin:
		return fmt.Errorf("%w: alerts windows %d/%d", ErrInvalid, c.Alerts.UrgentWithin, c.Alerts.NoticeWithin)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level=%q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// BisectionOptions converts BreakEven settings to numeric options.
func (c *Config) BisectionOptions() []numeric.Option {
	return []numeric.Option{
		numeric.WithTolerance(c.BreakEven.Tolerance),
		numeric.WithMaxIterations(c.BreakEven.MaxIterations),
		numeric.WithBracket(c.BreakEven.BracketLo, c.BreakEven.BracketHi),
	}
}

// HarvestOptions converts Alerts settings to pqueue options.
func (c *Config) HarvestOptions() []pqueue.HarvestOption {
	return []pqueue.HarvestOption{
		pqueue.WithUrgentWithin(c.Alerts.UrgentWithin),
		pqueue.WithNoticeWithin(c.Alerts.NoticeWithin),
	}
}
