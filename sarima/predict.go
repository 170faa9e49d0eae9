package sarima

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Prediction holds predicted means with two-sided confidence bounds,
// aligned index-for-index with the series the model was fit on. Points
// before Start are one-step-ahead in-sample predictions; points from Start
// onward are dynamic, feeding on prior predictions instead of observations.
type Prediction struct {
	Start      int
	Timestamps []time.Time
	Mean       []float64
	Lower      []float64
	Upper      []float64
}

// OutOfSample returns the dynamic portion of the prediction.
func (p *Prediction) OutOfSample() (mean, lower, upper []float64) {
	return p.Mean[p.Start:], p.Lower[p.Start:], p.Upper[p.Start:]
}

// PredictDynamic produces predictions over the full fitted index with the
// dynamic boundary at start: before it, one-step-ahead predictions use
// observed values; from it onward, predictions recursively feed on
// themselves. confidence outside (0,1) defaults to 0.95.
func (m *Model) PredictDynamic(start int, confidence float64) (*Prediction, error) {
	if !m.fitted {
		return nil, errors.New("model must be fitted before prediction")
	}
	n := m.data.Len()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("dynamic start %d out of range [0, %d)", start, n)
	}
	if confidence <= 0 || confidence >= 1 {
		confidence = 0.95
	}

	offset := m.Order.D + m.Order.SD*m.Order.M
	nd := m.diffData.Len()

	// Predictions on the differenced scale.
	predZ := make([]float64, nd)
	extZ := make([]float64, nd)
	copy(extZ, m.diffData.Values)
	extRes := make([]float64, nd)
	copy(extRes, m.residuals)

	diffStart := start - offset
	if diffStart < 0 {
		diffStart = 0
	}

	for t := 0; t < nd; t++ {
		if t < diffStart {
			predZ[t] = m.fittedVals[t]
			continue
		}
		pred := m.conditionalMean(extZ, extRes, t)
		predZ[t] = pred
		extZ[t] = pred
		extRes[t] = 0
	}

	// Undo differencing point by point. The composed operator
	// (1-B)^d (1-B^m)^D is linear with coefficients c; solving for y_t
	// gives y_t = z_t - sum_{j>=1} c_j y_{t-j}, with predicted values
	// substituted for observations past the dynamic boundary.
	c := diffPolynomial(m.Order.D, m.Order.SD, m.Order.M)

	extY := make([]float64, n)
	copy(extY, m.data.Values)
	mean := make([]float64, n)

	for t := 0; t < n; t++ {
		if t < offset {
			// No differenced counterpart exists before the offset.
			mean[t] = m.data.Values[t]
		} else {
			v := predZ[t-offset]
			for j := 1; j < len(c); j++ {
				v -= c[j] * extY[t-j]
			}
			mean[t] = v
		}
		if t >= start {
			extY[t] = mean[t]
		}
	}

	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile((1 + confidence) / 2)

	lower := make([]float64, n)
	upper := make([]float64, n)
	for t := 0; t < n; t++ {
		se := math.Sqrt(m.Variance)
		if t >= start {
			// Interval widens over the dynamic horizon for integrated series.
			h := t - start
			if m.Order.D > 0 {
				se *= math.Sqrt(float64(h + 1))
			}
			if m.Order.SD > 0 && m.Order.M > 0 {
				se *= math.Sqrt(float64(h/m.Order.M + 1))
			}
		}
		lower[t] = mean[t] - z*se
		upper[t] = mean[t] + z*se
	}

	timestamps := make([]time.Time, 0, n)
	if len(m.data.Timestamps) == n {
		timestamps = append(timestamps, m.data.Timestamps...)
	}

	return &Prediction{
		Start:      start,
		Timestamps: timestamps,
		Mean:       mean,
		Lower:      lower,
		Upper:      upper,
	}, nil
}

// diffPolynomial expands (1-B)^d (1-B^m)^sd into lag coefficients.
func diffPolynomial(d, sd, m int) []float64 {
	c := []float64{1}
	for i := 0; i < d; i++ {
		c = convolve(c, []float64{1, -1})
	}
	if sd > 0 && m > 0 {
		seasonal := make([]float64, m+1)
		seasonal[0] = 1
		seasonal[m] = -1
		for i := 0; i < sd; i++ {
			c = convolve(c, seasonal)
		}
	}
	return c
}

func convolve(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}
