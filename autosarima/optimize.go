package autosarima

import (
	"errors"
	"sort"

	"github.com/pricelab/sarimax/sarima"
	"github.com/pricelab/sarimax/timeseries"
)

// ErrNoViableModel indicates every candidate in the search space failed to
// fit, leaving nothing to select from.
var ErrNoViableModel = errors.New("no viable model: every candidate failed to fit")

// Params is a candidate hyperparameter tuple. Combined with the fixed
// (d, ds, s) it forms a full SARIMA order specification.
type Params struct {
	P, Q, SP, SQ int
}

// Ranges bounds the grid search. Each field is an exclusive upper bound:
// P=5 enumerates p in 0..4. A bound of 1 pins the component to 0.
type Ranges struct {
	P, Q, SP, SQ int
}

// FitResult associates a candidate with its AIC score. The fitted model
// itself is not retained; the winner is refit afterwards.
type FitResult struct {
	Params Params
	AIC    float64
}

// ProgressEvent reports an incumbent-best improvement during the search.
type ProgressEvent struct {
	Params Params
	AIC    float64
	Done   int // candidates attempted so far, including failures
	Total  int
}

// Progress receives incumbent-best improvements. It is cosmetic: the
// selection depends only on the recorded results.
type Progress func(ProgressEvent)

// Optimize enumerates the Cartesian product of the ranges in fixed order
// (p, then q, then P, then Q), fits SARIMA(p,d,q)x(P,ds,Q,s) per tuple, and
// returns the minimum-AIC tuple among successful fits together with all
// recorded (params, AIC) pairs sorted ascending by AIC. Fit failures are
// skipped; ties keep enumeration order. If no candidate fits, the error is
// ErrNoViableModel.
func Optimize(series *timeseries.Series, st StationarityParams, ranges Ranges, progress Progress) (Params, []FitResult, error) {
	total := ranges.P * ranges.Q * ranges.SP * ranges.SQ

	var results []FitResult
	bestSoFar := 0.0
	haveBest := false
	done := 0

	for p := 0; p < ranges.P; p++ {
		for q := 0; q < ranges.Q; q++ {
			for sp := 0; sp < ranges.SP; sp++ {
				for sq := 0; sq < ranges.SQ; sq++ {
					done++

					model := sarima.New(p, st.D, q, sp, st.DS, sq, st.S)
					if err := model.Fit(series); err != nil {
						// Non-convergence, singular or invalid
						// parameterization: the candidate contributes
						// nothing and is excluded, not penalized.
						continue
					}

					params := Params{P: p, Q: q, SP: sp, SQ: sq}
					results = append(results, FitResult{Params: params, AIC: model.AIC})

					if progress != nil && (!haveBest || model.AIC < bestSoFar) {
						bestSoFar = model.AIC
						haveBest = true
						progress(ProgressEvent{Params: params, AIC: model.AIC, Done: done, Total: total})
					}
				}
			}
		}
	}

	if len(results) == 0 {
		return Params{}, nil, ErrNoViableModel
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AIC < results[j].AIC
	})

	return results[0].Params, results, nil
}
