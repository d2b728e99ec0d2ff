// Package tabkit provides small, stateless helpers for tabular machine-learning
// pipelines.
//
// Each helper takes in-memory data and returns new data; inputs are never
// modified and nothing is shared between calls.
//
// # Features
//
//   - Tagged table cells with an explicit missing marker
//   - Fixed-value imputation of missing cells in selected columns
//   - Train/test/validation splitting by inclusive date ranges
//   - Accuracy metrics: MAPE, MAE, RMSE
//
// # Quick Start
//
// Fill gaps, split by date and score predictions:
//
//	filled, _ := table.ImputeZero(X, []string{"promo", "price"})
//	res, _ := split.Split(filled, y, split.DefaultConfig())
//	actual, _ := res.Test.Y.Floats()
//	mape, _ := metrics.MAPE(actual, predicted)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - table: Table, Series and Value types, imputation
//   - split: date-range splitting and its configuration
//   - metrics: accuracy measures
//   - logger: logging facade used by split
package tabkit
