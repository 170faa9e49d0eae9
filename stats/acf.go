// Package stats provides statistical tests and functions for time series analysis.
package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/pricelab/sarimax/timeseries"
)

// DefaultACFLags is the number of lags included when a caller does not
// specify one, matching the conventional correlogram length.
const DefaultACFLags = 40

// ACF computes the autocorrelation function for lags 0 through maxLag.
func ACF(series *timeseries.Series, maxLag int) ([]float64, error) {
	n := series.Len()
	if n < 2 {
		return nil, fmt.Errorf("acf: %w: %d observations", ErrInsufficientData, n)
	}
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		maxLag = 0
	}

	mean := stat.Mean(series.Values, nil)
	denom := 0.0
	for _, v := range series.Values {
		d := v - mean
		denom += d * d
	}
	if denom == 0 {
		return nil, fmt.Errorf("acf: %w", ErrConstantSeries)
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (series.Values[i] - mean) * (series.Values[i-k] - mean)
		}
		acf[k] = sum / denom
	}

	return acf, nil
}

// MeanACF returns the mean of the autocorrelation function over lags
// 0 through maxLag. The seasonal-period scan uses it as its score.
func MeanACF(series *timeseries.Series, maxLag int) (float64, error) {
	acf, err := ACF(series, maxLag)
	if err != nil {
		return 0, err
	}
	return stat.Mean(acf, nil), nil
}

// PACF computes the partial autocorrelation function for lags 0 through
// maxLag using the Durbin-Levinson recursion.
func PACF(series *timeseries.Series, maxLag int) ([]float64, error) {
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 1 {
		return nil, fmt.Errorf("pacf: %w: need at least one lag", ErrInsufficientData)
	}

	acf, err := ACF(series, maxLag)
	if err != nil {
		return nil, err
	}

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1.0

	phi := make([][]float64, maxLag+1)
	for i := range phi {
		phi[i] = make([]float64, maxLag+1)
	}

	phi[1][1] = acf[1]
	pacf[1] = acf[1]

	for k := 2; k <= maxLag; k++ {
		num := acf[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= phi[k-1][j] * acf[k-j]
			den -= phi[k-1][j] * acf[j]
		}

		if den == 0 {
			pacf[k] = 0
			continue
		}

		phi[k][k] = num / den
		pacf[k] = phi[k][k]

		for j := 1; j < k; j++ {
			phi[k][j] = phi[k-1][j] - phi[k][k]*phi[k-1][k-j]
		}
	}

	return pacf, nil
}
