// Package config loads run configuration for the exploration CLI from a
// YAML file, applying defaults for anything left unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Data locates the input price series.
type Data struct {
	Path        string `yaml:"path"`
	DateColumn  string `yaml:"date_column"`
	ValueColumn string `yaml:"value_column"`
	SkipRows    int    `yaml:"skip_rows"`
}

// Search bounds the stationarity and hyperparameter searches. Order bounds
// are exclusive: max_p 5 scans p in 0..4.
type Search struct {
	MaxLag  int `yaml:"max_lag"`
	ACFLags int `yaml:"acf_lags"`
	MaxP    int `yaml:"max_p"`
	MaxQ    int `yaml:"max_q"`
	MaxSP   int `yaml:"max_sp"`
	MaxSQ   int `yaml:"max_sq"`
}

// Forecast controls the dynamic forecast and its evaluation.
type Forecast struct {
	NPredict   int     `yaml:"n_predict"`
	Confidence float64 `yaml:"confidence"`
	WarmupSkip int     `yaml:"warmup_skip"`
}

// Logging configures the structured logger.
type Logging struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// Config is the full run configuration.
type Config struct {
	Data     Data     `yaml:"data"`
	Search   Search   `yaml:"search"`
	Forecast Forecast `yaml:"forecast"`
	Logging  Logging  `yaml:"logging"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Data: Data{
			DateColumn:  "Date",
			ValueColumn: "Adj Close",
		},
		Search: Search{
			MaxLag:  100,
			ACFLags: 40,
			MaxP:    5,
			MaxQ:    5,
			MaxSP:   3,
			MaxSQ:   3,
		},
		Forecast: Forecast{
			NPredict:   2,
			Confidence: 0.95,
			WarmupSkip: 10,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML configuration file over the defaults and validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Search.MaxP < 1 || c.Search.MaxQ < 1 || c.Search.MaxSP < 1 || c.Search.MaxSQ < 1 {
		return fmt.Errorf("search bounds must be at least 1: max_p=%d max_q=%d max_sp=%d max_sq=%d",
			c.Search.MaxP, c.Search.MaxQ, c.Search.MaxSP, c.Search.MaxSQ)
	}
	if c.Search.MaxLag < 1 {
		return fmt.Errorf("search.max_lag must be positive, got %d", c.Search.MaxLag)
	}
	if c.Forecast.NPredict < 1 {
		return fmt.Errorf("forecast.n_predict must be positive, got %d", c.Forecast.NPredict)
	}
	if c.Forecast.Confidence <= 0 || c.Forecast.Confidence >= 1 {
		return fmt.Errorf("forecast.confidence must be in (0, 1), got %g", c.Forecast.Confidence)
	}
	if c.Forecast.WarmupSkip < 0 {
		return fmt.Errorf("forecast.warmup_skip must be non-negative, got %d", c.Forecast.WarmupSkip)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format)
	}
	return nil
}
