// Package table provides the in-memory tabular data model and value imputation.
//
// A Table is an ordered set of named, row-aligned columns plus a row index of
// integer labels. Cells are Values: tagged scalars whose Missing kind marks
// "no value recorded" explicitly instead of through a NaN sentinel.
//
// # Building a Table
//
//	t, err := table.New(
//	    table.Column{Name: "store", Values: []table.Value{table.String("a"), table.String("b")}},
//	    table.Column{Name: "sales", Values: []table.Value{table.Float(12.5), table.Missing()}},
//	)
//
// Tables are never modified after construction. Take, Drop, Copy and Impute
// all return new tables.
//
// # Imputation
//
// Replace missing cells in selected columns with a fixed value:
//
//	filled, err := table.Impute(t, []string{"sales"}, table.Float(0))
//
//	// Same as above, fill value defaults to zero
//	filled, err = table.ImputeZero(t, []string{"sales"})
//
// # Labels
//
// A Series holds the label column that travels with a feature table:
//
//	y := table.NewFloatSeries("target", []float64{3, 4})
//	values, err := y.Floats() // fails with ErrNotNumeric on missing or text cells
package table
