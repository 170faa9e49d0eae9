// Package sarimax provides exploratory SARIMA modeling of a single
// financial price series: stationarity-driven selection of differencing
// and seasonal parameters, an AIC grid search over the remaining
// hyperparameters, a dynamic forecast at the selected optimum, and mean
// absolute percentage error over the aligned window.
//
// # Pipeline
//
// Control flows strictly forward, with no shared mutable state:
//
//	series, _ := timeseries.LoadCSV("prices.csv", nil)
//	result, err := autosarima.Explore(series, autosarima.DefaultConfig())
//	if err != nil { ... }
//	fmt.Println(result.Order, result.Model.AIC, result.MAPE)
//
// # Packages
//
//   - timeseries: series data structure, differencing, CSV loading
//   - stats: ADF test, ACF/PACF, Ljung-Box diagnostics
//   - sarima: SARIMA estimation and dynamic prediction
//   - autosarima: stationarity search, grid search, pipeline orchestration
//   - evaluate: forecast error metrics
//   - config: YAML run configuration for the CLI
//
// # References
//
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
//   - MacKinnon, J. G. (1994). Approximate asymptotic distribution functions for unit-root tests
package sarimax
