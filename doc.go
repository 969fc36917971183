// Package smooth provides local weighted polynomial smoothing (loess-style
// trend estimation) for Go, built on gonum.
//
// Given a sequence of (x, y) observations, a window policy, a kernel weight
// function and a local polynomial degree, the estimator produces a fitted
// trend value at any query point by solving a weighted least-squares
// regression restricted to a neighborhood of that point.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/go-smooth/smooth/loess"
//	)
//
//	func main() {
//	    x := []float64{0, 1, 2, 3, 4, 5, 6, 7}
//	    y := []float64{0.1, 1.2, 1.9, 3.2, 3.8, 5.1, 6.2, 6.9}
//
//	    lp := loess.New(loess.WithDegree(1), loess.WithSpan(0.75))
//	    if err := lp.Fit(x, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    curve, err := lp.Predict(x)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Smoothed:", curve)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - loess: the local polynomial smoother (kernels, windows, weighted fits)
//   - metrics: evaluation metrics for smoothed curves (MSE, RMSE, MAE, R²)
//   - core/model: estimator interfaces and base types
//   - core/parallel: parallel processing utilities
//   - pkg/errors: structured error types and warnings
//   - pkg/log: structured logging helpers
//
// # Concurrency
//
// A fitted estimator is read-only; Predict over many query points dispatches
// the independent per-point fits across CPU cores automatically once the
// query count exceeds a configurable threshold.
package smooth
