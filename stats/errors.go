package stats

import "errors"

// ErrInsufficientData indicates a test was invoked on a sample too short to
// estimate its regression or autocorrelations.
var ErrInsufficientData = errors.New("insufficient data")

// ErrConstantSeries indicates a sample with zero variance, on which
// autocorrelations and unit-root statistics are undefined.
var ErrConstantSeries = errors.New("constant series")
