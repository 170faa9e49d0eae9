// Package evaluate computes forecast accuracy metrics.
package evaluate

import (
	"fmt"
	"math"
)

// DefaultWarmup is the number of leading points excluded from scoring.
// Early in-sample predictions condition on very little history, so the
// first points of the aligned window are skipped by convention.
const DefaultWarmup = 10

// DegenerateError reports a zero predicted value inside the scored window,
// which would otherwise drive the percentage error to infinity.
type DegenerateError struct {
	Index int
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("degenerate error metric: predicted value at index %d is zero", e.Index)
}

// MAPE returns the mean absolute percentage error between aligned actual
// and predicted sequences: mean(|actual/predicted - 1|) * 100. The first
// skip points are excluded; skip < 0 falls back to DefaultWarmup.
func MAPE(actual, predicted []float64, skip int) (float64, error) {
	if len(actual) != len(predicted) {
		return 0, fmt.Errorf("actual and predicted lengths differ: %d vs %d", len(actual), len(predicted))
	}
	if skip < 0 {
		skip = DefaultWarmup
	}
	if skip >= len(actual) {
		return 0, fmt.Errorf("warm-up skip %d leaves no points to score in %d", skip, len(actual))
	}

	sum := 0.0
	for i := skip; i < len(actual); i++ {
		if predicted[i] == 0 {
			return 0, &DegenerateError{Index: i}
		}
		sum += math.Abs(actual[i]/predicted[i] - 1)
	}

	return sum / float64(len(actual)-skip) * 100, nil
}
