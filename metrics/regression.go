// Package metrics provides evaluation metrics for smoothed curves.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/go-smooth/smooth/pkg/errors"
)

// MSE computes the mean squared error between observed and fitted values.
func MSE(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewInvalidInputError("MSE", "empty input", n)
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("MSE", n, len(yPred))
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error.
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error.
func MAE(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewInvalidInputError("MAE", "empty input", n)
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("MAE", n, len(yPred))
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue[i] - yPred[i])
	}
	return sum / float64(n), nil
}

// R2Score computes the coefficient of determination. It fails when the
// observed values have zero variance, since R² is undefined there.
func R2Score(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewInvalidInputError("R2Score", "empty input", n)
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("R2Score", n, len(yPred))
	}

	yMean := stat.Mean(yTrue, nil)

	var tss, rss float64
	for i := 0; i < n; i++ {
		tss += (yTrue[i] - yMean) * (yTrue[i] - yMean)
		rss += (yTrue[i] - yPred[i]) * (yTrue[i] - yPred[i])
	}
	if tss == 0 {
		return 0, errors.NewInvalidInputError("R2Score", "zero variance in observed values", tss)
	}
	return 1 - rss/tss, nil
}
