// Package timeseries provides the time series data structure and utilities
// used across the SARIMA pipeline.
//
// # Series
//
// A Series pairs chronologically sorted timestamps with float64 values:
//
//	series := timeseries.New(values)
//	series, err := timeseries.NewWithTimestamps(timestamps, values)
//
// # Differencing
//
// Lag differencing truncates the series and aligns it to trailing timestamps:
//
//	diff := series.Diff()          // y_t - y_{t-1}
//	lag := series.DiffN(5)         // y_t - y_{t-5}
//	seasonal := series.SeasonalDiff(12)
//
// # CSV Loading
//
// Load a price column from a daily OHLC export:
//
//	opts := timeseries.DefaultCSVOptions() // Date / Adj Close
//	opts.SkipRows = 2000
//	series, err := timeseries.LoadCSV("GSPC.csv", opts)
package timeseries
