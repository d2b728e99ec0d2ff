// Package metrics provides accuracy measures for comparing predictions with
// observed values.
//
// # Measures
//
//	mape, err := metrics.MAPE(actual, predicted) // percent
//	mae, err := metrics.MAE(actual, predicted)
//	rmse, err := metrics.RMSE(actual, predicted)
//
// All three accept any integer or float slice type and return
// ErrLengthMismatch when the slices differ in length. Empty input yields NaN.
//
// # Zero Observations
//
// MAPE divides by the observed value. Any zero observation makes the result
// +Inf; no smoothing or skipping is applied:
//
//	mape, _ := metrics.MAPE([]int{1, 3, 0, 2}, []int{0, 2, 1, 4})
//	math.IsInf(mape, 1) // true
//
// # Table Data
//
// Labels held in a table.Series are converted explicitly before scoring:
//
//	actual, err := y.Floats() // table.ErrNotNumeric on missing or text cells
package metrics
