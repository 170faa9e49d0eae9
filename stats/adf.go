package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/pricelab/sarimax/timeseries"
)

// ADFResult represents the result of an Augmented Dickey-Fuller test.
type ADFResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	NObs         int
	CriticalVals map[string]float64
	IsStationary bool
}

// ADF performs the Augmented Dickey-Fuller unit-root test with a constant
// and no trend. The null hypothesis is that the series has a unit root;
// p-value < 0.05 rejects the null in favor of stationarity.
//
// maxLag <= 0 selects floor((n-1)^(1/3)) lagged difference terms.
func ADF(series *timeseries.Series, maxLag int) (*ADFResult, error) {
	n := series.Len()
	if n < 10 {
		return nil, fmt.Errorf("adf: %w: %d observations", ErrInsufficientData, n)
	}
	if series.Variance() == 0 {
		return nil, fmt.Errorf("adf: %w", ErrConstantSeries)
	}

	if maxLag <= 0 {
		maxLag = int(math.Floor(math.Pow(float64(n-1), 1.0/3.0)))
	}
	if maxLag >= n-1 {
		maxLag = n - 2
	}

	diff := series.Diff()

	// Regression: delta_y_t = alpha + beta*y_{t-1} + sum(gamma_i * delta_y_{t-i}) + e_t.
	// The test statistic is the t-ratio of beta.
	nObs := n - maxLag - 1
	k := 2 + maxLag
	if nObs <= k {
		return nil, fmt.Errorf("adf: %w: %d usable observations for %d regressors", ErrInsufficientData, nObs, k)
	}

	x := mat.NewDense(nObs, k, nil)
	y := mat.NewVecDense(nObs, nil)

	for i := 0; i < nObs; i++ {
		t := i + maxLag
		y.SetVec(i, diff.Values[t])

		x.Set(i, 0, 1)
		x.Set(i, 1, series.Values[t])
		for j := 1; j <= maxLag; j++ {
			x.Set(i, 1+j, diff.Values[t-j])
		}
	}

	beta, se, err := ols(x, y)
	if err != nil {
		return nil, fmt.Errorf("adf: %w", err)
	}

	tStat := beta[1] / se[1]
	pValue := mackinnonPValue(tStat)

	return &ADFResult{
		Statistic: tStat,
		PValue:    pValue,
		Lags:      maxLag,
		NObs:      nObs,
		CriticalVals: map[string]float64{
			"1%":  -3.43,
			"5%":  -2.86,
			"10%": -2.57,
		},
		IsStationary: pValue < 0.05,
	}, nil
}

// ols solves y = X*beta by least squares and returns the coefficients with
// their standard errors.
func ols(x *mat.Dense, y *mat.VecDense) (beta, se []float64, err error) {
	n, k := x.Dims()

	var qr mat.QR
	qr.Factorize(x)

	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, y); err != nil {
		return nil, nil, fmt.Errorf("singular regression matrix: %w", err)
	}

	beta = make([]float64, k)
	for i := range beta {
		beta[i] = sol.At(i, 0)
	}

	// Residual variance.
	sse := 0.0
	for i := 0; i < n; i++ {
		pred := 0.0
		for j := 0; j < k; j++ {
			pred += beta[j] * x.At(i, j)
		}
		r := y.AtVec(i) - pred
		sse += r * r
	}
	s2 := sse / float64(n-k)

	// Var(beta) = s2 * (X'X)^-1.
	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, nil, fmt.Errorf("singular regression matrix: %w", err)
	}

	se = make([]float64, k)
	for i := range se {
		se[i] = math.Sqrt(s2 * xtxInv.At(i, i))
	}

	return beta, se, nil
}

// mackinnonPValue approximates the ADF p-value for the constant-only
// regression by interpolating MacKinnon (1994) critical values.
func mackinnonPValue(stat float64) float64 {
	switch {
	case stat < -3.96:
		return 0.001
	case stat < -3.43:
		return 0.01
	case stat < -2.86:
		return 0.05
	case stat < -2.57:
		return 0.10
	case stat < -1.94:
		return 0.25
	case stat < -1.62:
		return 0.50
	default:
		return math.Min(0.5+(stat+1.62)*0.25, 0.99)
	}
}
