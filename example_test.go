package tabkit_test

import (
	"fmt"
	"math"
	"time"

	"github.com/sartorproj/tabkit/metrics"
	"github.com/sartorproj/tabkit/split"
	"github.com/sartorproj/tabkit/table"
)

// Example walks through a daily sales dataset: fill missing promotions,
// split by date, then score a naive forecast on the test window.
func Example() {
	start := time.Date(2019, 12, 29, 0, 0, 0, 0, time.UTC)
	dates := make([]table.Value, 6)
	for i := range dates {
		dates[i] = table.Time(start.AddDate(0, 0, i))
	}
	X, err := table.New(
		table.Column{Name: "DATE_ID", Values: dates},
		table.Column{Name: "promo", Values: []table.Value{
			table.Int(1), table.Missing(), table.Int(0), table.Missing(), table.Int(1), table.Int(0),
		}},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	y := table.NewFloatSeries("sales", []float64{120, 80, 100, 110, 90, 100})

	filled, err := table.ImputeZero(X, []string{"promo"})
	if err != nil {
		fmt.Println(err)
		return
	}
	missing, _ := filled.MissingCount("promo")
	fmt.Println("missing promo after imputation:", missing)

	res, err := split.Split(filled, y, split.DefaultConfig())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("train rows:", res.Train.Len(), "test rows:", res.Test.Len(), "val rows:", res.Val.Len())
	fmt.Println("test columns:", res.Test.X.Names())

	actual, err := res.Test.Y.Floats()
	if err != nil {
		fmt.Println(err)
		return
	}
	naive := make([]float64, len(actual))
	for i := range naive {
		naive[i] = 100
	}
	mape, _ := metrics.MAPE(actual, naive)
	fmt.Printf("test MAPE: %.2f%%\n", mape)

	// Output:
	// missing promo after imputation: 0
	// train rows: 3 test rows: 3 val rows: 0
	// test columns: [promo]
	// test MAPE: 6.73%
}

func Example_zeroTruth() {
	mape, err := metrics.MAPE([]int{1, 3, 0, 2}, []int{0, 2, 1, 4})
	fmt.Println(math.IsInf(mape, 1), err)

	// Output:
	// true <nil>
}
