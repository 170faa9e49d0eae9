// Package sarima implements Seasonal ARIMA models with conditional
// sum of squares estimation.
//
// # Fitting
//
//	model := sarima.New(1, 1, 1, 1, 1, 1, 12) // SARIMA(1,1,1)(1,1,1)[12]
//	if err := model.Fit(series); err != nil {
//	    var fe *sarima.FitError
//	    if errors.As(err, &fe) { ... } // candidate skipped, not fatal
//	}
//	fmt.Println(model.AIC)
//
// A non-seasonal model uses a zero seasonal order and period:
//
//	model := sarima.New(2, 1, 1, 0, 0, 0, 0)
//
// # Prediction
//
// PredictDynamic returns predictions aligned with the fitted series. Points
// before the start index are one-step-ahead predictions conditioned on
// observed values; points from the start index onward feed recursively on
// prior predictions, which is what an out-of-sample forecast would look like:
//
//	pred, err := model.PredictDynamic(series.Len()-2, 0.95)
//	mean, lower, upper := pred.OutOfSample()
package sarima
