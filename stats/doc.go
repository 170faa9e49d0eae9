// Package stats provides the statistical tests and functions behind the
// SARIMA pipeline: stationarity testing, autocorrelation analysis, and
// residual diagnostics.
//
// # Stationarity
//
// The Augmented Dickey-Fuller test checks for a unit root:
//
//	result, err := stats.ADF(series, 0)
//	if err != nil { ... } // typed: ErrInsufficientData, ErrConstantSeries
//	fmt.Printf("stat=%.4f p=%.4f stationary=%v\n",
//	    result.Statistic, result.PValue, result.IsStationary)
//
// # Autocorrelation
//
//	acf, err := stats.ACF(series, 40)
//	mean, err := stats.MeanACF(series, stats.DefaultACFLags)
//	pacf, err := stats.PACF(series, 40)
//
// # Residual diagnostics
//
// The Ljung-Box test reported with a fitted model summary:
//
//	lb := stats.LjungBox(residuals, 10, p+q+P+Q)
package stats
