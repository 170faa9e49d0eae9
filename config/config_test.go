package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	content := `data:
  path: prices.csv
  value_column: Close
search:
  max_p: 3
forecast:
  n_predict: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Data.Path != "prices.csv" {
		t.Errorf("Expected data.path prices.csv, got %q", cfg.Data.Path)
	}
	if cfg.Data.ValueColumn != "Close" {
		t.Errorf("Expected value_column Close, got %q", cfg.Data.ValueColumn)
	}
	if cfg.Search.MaxP != 3 {
		t.Errorf("Expected max_p 3, got %d", cfg.Search.MaxP)
	}
	if cfg.Forecast.NPredict != 5 {
		t.Errorf("Expected n_predict 5, got %d", cfg.Forecast.NPredict)
	}

	// Untouched fields keep their defaults.
	if cfg.Search.MaxQ != 5 {
		t.Errorf("Expected default max_q 5, got %d", cfg.Search.MaxQ)
	}
	if cfg.Data.DateColumn != "Date" {
		t.Errorf("Expected default date_column Date, got %q", cfg.Data.DateColumn)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default logging.format text, got %q", cfg.Logging.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("search: [not, a, map"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max_p", func(c *Config) { c.Search.MaxP = 0 }},
		{"zero max_lag", func(c *Config) { c.Search.MaxLag = 0 }},
		{"zero n_predict", func(c *Config) { c.Forecast.NPredict = 0 }},
		{"confidence at 1", func(c *Config) { c.Forecast.Confidence = 1 }},
		{"negative warmup", func(c *Config) { c.Forecast.WarmupSkip = -1 }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Expected validation failure for %s", tc.name)
			}
		})
	}
}
