// Package metrics provides forecast accuracy measures.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch is returned when true and predicted values differ in length.
var ErrLengthMismatch = errors.New("true and predicted values must have the same length")

// Number is any Go integer or float type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ToFloat64s converts numbers to float64.
func ToFloat64s[T Number](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

// MAPE calculates the mean absolute percentage error, in percent.
//
// A zero true value contributes +Inf, so the result is +Inf whenever any
// true value is zero. Empty input returns NaN.
func MAPE[T Number](yTrue, yPred []T) (float64, error) {
	actual, predicted, err := prepare(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	if len(actual) == 0 {
		return math.NaN(), nil
	}

	ratios := residuals(actual, predicted)
	floats.Div(ratios, actual)
	for i, a := range actual {
		if a == 0 {
			ratios[i] = math.Inf(1)
			continue
		}
		ratios[i] = math.Abs(ratios[i])
	}
	return stat.Mean(ratios, nil) * 100, nil
}

// MAE calculates the mean absolute error. Empty input returns NaN.
func MAE[T Number](yTrue, yPred []T) (float64, error) {
	actual, predicted, err := prepare(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	if len(actual) == 0 {
		return math.NaN(), nil
	}

	d := residuals(actual, predicted)
	return floats.Norm(d, 1) / float64(len(d)), nil
}

// RMSE calculates the root mean squared error. Empty input returns NaN.
func RMSE[T Number](yTrue, yPred []T) (float64, error) {
	actual, predicted, err := prepare(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	if len(actual) == 0 {
		return math.NaN(), nil
	}

	d := residuals(actual, predicted)
	return math.Sqrt(floats.Dot(d, d) / float64(len(d))), nil
}

func prepare[T Number](yTrue, yPred []T) ([]float64, []float64, error) {
	if len(yTrue) != len(yPred) {
		return nil, nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(yTrue), len(yPred))
	}
	return ToFloat64s(yTrue), ToFloat64s(yPred), nil
}

// residuals returns actual - predicted.
func residuals(actual, predicted []float64) []float64 {
	d := make([]float64, len(actual))
	floats.SubTo(d, actual, predicted)
	return d
}
