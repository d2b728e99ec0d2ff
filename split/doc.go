// Package split partitions a feature table and its labels into train, test
// and validation sets using inclusive date ranges on a date column.
//
// # Splitting
//
//	cfg := split.DefaultConfig()
//	cfg.Train = split.Period{Start: "2019-10-01", End: "2019-12-31"}
//	res, err := split.Split(X, y, cfg)
//	xTrain, yTrain, xTest, yTest, xVal, yVal := res.Unpack()
//
// Each period is applied independently. Overlapping periods place a row in
// several partitions; a period that matches no row gives an empty partition.
// The date column is dropped from the returned feature tables.
//
// # Dates
//
// Period bounds and text date cells accept RFC 3339 and the common layouts
// 2006-01-02, 2006/01/02, 01/02/2006, 02-Jan-2006, 2006-01 and 2006.
// Bounds without a zone are UTC. Use PeriodOf to build a period from
// time.Time values.
//
// # Configuration Files
//
// Split windows can be kept in YAML or JSON:
//
//	date_column: DATE_ID
//	train:
//	  start: "2019-10-01"
//	  end: "2019-12-31"
//
// LoadConfig reads such a file on top of DefaultConfig and applies
// environment overrides such as TABKIT_VAL__END=2020-10-31.
package split
