// Package descent implements linear regression by batch gradient descent,
// with a closed-form least squares baseline for validation.
//
// The library fits the two-parameter line y = alpha + beta*x to a dataset of
// (x, y) pairs by iterative, derivative-based updates, and exposes both the
// raw optimization loop and a scikit-learn style estimator on top of it.
//
// # Quick Start
//
// Fitting a line with the estimator API:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/descent/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
//	    y := mat.NewDense(4, 1, []float64{1, 3, 5, 7})
//
//	    r := linear.NewGDRegressor(
//	        linear.WithLearningRate(0.1),
//	        linear.WithMaxIter(5000),
//	    )
//	    if err := r.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Printf("y = %.2f + %.2fx\n", r.Intercept(), r.Slope())
//	}
//
// The lower-level optimize package gives direct access to the cost function,
// the gradient step and the loop's stopping behavior.
//
// # Packages
//
//   - optimize: cost function, gradient step, optimization loop
//   - linear: GDRegressor estimator and the least squares baseline
//   - metrics: evaluation metrics (MSE, RMSE, MAE, R²)
//   - preprocessing: predictor standardization
//   - core/model: estimator base types and interfaces
//   - core/parallel: parallel summation utilities
//   - pkg/errors: structured errors and the warning system
//   - pkg/log: structured logging setup and attribute keys
package descent
