// Package autosarima selects SARIMA hyperparameters for a price series.
//
// The pipeline runs strictly forward:
//
//  1. Stationarity determines (d, ds, s) from an ADF differencing scan and
//     a mean-ACF seasonal scan.
//  2. Optimize grid-searches (p, q, P, Q), scoring successful fits by AIC
//     and skipping candidates that fail to fit.
//  3. The winner is refit and forecast dynamically over the trailing
//     horizon, and MAPE is reported over the aligned window.
//
// Explore composes all of it:
//
//	result, err := autosarima.Explore(series, autosarima.DefaultConfig())
//	fmt.Println(result.Order, result.MAPE)
//
// The search is deterministic: repeated runs on identical input select the
// identical tuple, with AIC ties resolved by enumeration order.
package autosarima
