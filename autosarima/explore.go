package autosarima

import (
	"fmt"

	"github.com/pricelab/sarimax/evaluate"
	"github.com/pricelab/sarimax/sarima"
	"github.com/pricelab/sarimax/stats"
	"github.com/pricelab/sarimax/timeseries"
)

// Config holds the knobs for a full exploration run.
type Config struct {
	MaxLag     int     // Lag bound for the stationarity scans (default 100)
	ACFLags    int     // Lags in the mean-ACF seasonal score (default 40)
	MaxP       int     // Exclusive bound for p (default 5)
	MaxQ       int     // Exclusive bound for q (default 5)
	MaxSP      int     // Exclusive bound for P when seasonal (default 3)
	MaxSQ      int     // Exclusive bound for Q when seasonal (default 3)
	NPredict   int     // Trailing points forecast dynamically (default 2)
	Confidence float64 // Confidence level for intervals (default 0.95)
	WarmupSkip int     // Leading points excluded from MAPE (default 10)
	Progress   Progress
}

// DefaultConfig mirrors the conventional exploration run: p,q scan 0..4;
// seasonal orders scan 0..2 when a seasonal difference is taken and stay 0
// otherwise; two trailing points are forecast dynamically.
func DefaultConfig() *Config {
	return &Config{
		MaxLag:     100,
		ACFLags:    stats.DefaultACFLags,
		MaxP:       5,
		MaxQ:       5,
		MaxSP:      3,
		MaxSQ:      3,
		NPredict:   2,
		Confidence: 0.95,
		WarmupSkip: evaluate.DefaultWarmup,
	}
}

// Result is the outcome of a full exploration run.
type Result struct {
	Stationarity StationarityParams
	Best         Params
	Order        sarima.Order
	Candidates   []FitResult // sorted ascending by AIC
	Model        *sarima.Model
	Prediction   *sarima.Prediction
	MAPE         float64
}

// Explore runs the whole pipeline: stationarity search, AIC grid search,
// refit at the optimum, dynamic forecast over the trailing NPredict points,
// and MAPE over the aligned window.
func Explore(series *timeseries.Series, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	st, err := Stationarity(series, cfg.MaxLag, cfg.ACFLags)
	if err != nil {
		return nil, fmt.Errorf("stationarity search: %w", err)
	}

	ranges := Ranges{P: cfg.MaxP, Q: cfg.MaxQ, SP: cfg.MaxSP, SQ: cfg.MaxSQ}
	if st.DS == 0 {
		// Without a seasonal difference the seasonal orders stay 0.
		ranges.SP, ranges.SQ = 1, 1
	}

	best, candidates, err := Optimize(series, st, ranges, cfg.Progress)
	if err != nil {
		return nil, fmt.Errorf("grid search: %w", err)
	}

	// Refit at the optimum; models fit during the search are not reused.
	model := sarima.New(best.P, st.D, best.Q, best.SP, st.DS, best.SQ, st.S)
	if err := model.Fit(series); err != nil {
		return nil, fmt.Errorf("refit at optimum: %w", err)
	}

	nPredict := cfg.NPredict
	if nPredict <= 0 {
		nPredict = 2
	}
	confidence := cfg.Confidence
	if confidence <= 0 || confidence >= 1 {
		confidence = 0.95
	}

	prediction, err := model.PredictDynamic(series.Len()-nPredict, confidence)
	if err != nil {
		return nil, fmt.Errorf("dynamic forecast: %w", err)
	}

	mape, err := evaluate.MAPE(series.Values, prediction.Mean, cfg.WarmupSkip)
	if err != nil {
		return nil, fmt.Errorf("error evaluation: %w", err)
	}

	return &Result{
		Stationarity: st,
		Best:         best,
		Order:        model.Order,
		Candidates:   candidates,
		Model:        model,
		Prediction:   prediction,
		MAPE:         mape,
	}, nil
}
