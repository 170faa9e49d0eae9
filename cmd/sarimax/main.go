// Command sarimax runs the full SARIMA exploration pipeline on a price
// series loaded from CSV: stationarity search, AIC grid search, dynamic
// forecast, and error evaluation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pricelab/sarimax/autosarima"
	"github.com/pricelab/sarimax/config"
	"github.com/pricelab/sarimax/timeseries"
)

func main() {
	configPath := flag.String("config", "", "path to YAML run configuration")
	csvPath := flag.String("csv", "", "path to the input CSV (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *csvPath != "" {
		cfg.Data.Path = *csvPath
	}
	if cfg.Data.Path == "" {
		fmt.Fprintln(os.Stderr, "no input: set -csv or data.path in the config file")
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)

	series, err := loadSeries(cfg.Data)
	if err != nil {
		logger.Error("failed to load series", "error", err)
		os.Exit(1)
	}
	logger.Info("loaded series",
		"path", cfg.Data.Path,
		"observations", series.Len(),
		"min", series.Min(),
		"max", series.Max())

	runCfg := &autosarima.Config{
		MaxLag:     cfg.Search.MaxLag,
		ACFLags:    cfg.Search.ACFLags,
		MaxP:       cfg.Search.MaxP,
		MaxQ:       cfg.Search.MaxQ,
		MaxSP:      cfg.Search.MaxSP,
		MaxSQ:      cfg.Search.MaxSQ,
		NPredict:   cfg.Forecast.NPredict,
		Confidence: cfg.Forecast.Confidence,
		WarmupSkip: cfg.Forecast.WarmupSkip,
		Progress: func(e autosarima.ProgressEvent) {
			logger.Info("new incumbent",
				"p", e.Params.P, "q", e.Params.Q, "P", e.Params.SP, "Q", e.Params.SQ,
				"aic", e.AIC,
				"progress", fmt.Sprintf("%d/%d", e.Done, e.Total))
		},
	}

	result, err := autosarima.Explore(series, runCfg)
	if err != nil {
		logger.Error("exploration failed", "error", err)
		os.Exit(1)
	}

	logger.Info("stationarity parameters",
		"d", result.Stationarity.D,
		"ds", result.Stationarity.DS,
		"s", result.Stationarity.S)
	logger.Info("optimized model",
		"order", result.Order.String(),
		"aic", result.Model.AIC,
		"candidates", len(result.Candidates))

	if summary := result.Model.Summary(); summary != nil && summary.LjungBox != nil {
		logger.Info("residual diagnostics",
			"ljung_box_stat", summary.LjungBox.Statistic,
			"ljung_box_pvalue", summary.LjungBox.PValue)
	}

	mean, lower, upper := result.Prediction.OutOfSample()
	for i := range mean {
		attrs := []any{
			"step", i + 1,
			"mean", mean[i],
			"lower", lower[i],
			"upper", upper[i],
		}
		if idx := result.Prediction.Start + i; idx < len(result.Prediction.Timestamps) {
			attrs = append(attrs, "date", result.Prediction.Timestamps[idx].Format("2006-01-02"))
		}
		logger.Info("forecast", attrs...)
	}

	logger.Info("evaluation", "mape_percent", result.MAPE)
}

func newLogger(cfg config.Logging) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func loadSeries(data config.Data) (*timeseries.Series, error) {
	opts := timeseries.DefaultCSVOptions()
	if data.DateColumn != "" {
		opts.DateColumn = data.DateColumn
	}
	if data.ValueColumn != "" {
		opts.ValueColumn = data.ValueColumn
	}
	opts.SkipRows = data.SkipRows
	return timeseries.LoadCSV(data.Path, opts)
}
