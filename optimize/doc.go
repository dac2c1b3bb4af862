// Package optimize implements batch gradient descent for fitting a
// two-parameter line (intercept and slope) to a dataset of (x, y) pairs.
//
// The package exposes three layers:
//
//   - MSE: the cost function (mean squared error) of a candidate line.
//   - Step: one gradient descent update, computing both partial derivatives
//     at the current parameters before applying either update.
//   - GradientDescent: the driving loop with a dual stopping rule. It halts
//     when successive cost values improve by less than a threshold
//     (converged) or when the iteration cap is reached.
//
// All computations are deterministic for identical inputs. A learning rate
// that is too large for the data's scale makes the parameters diverge; the
// loop does not trap this, but Result.Diverged reports it after the fact.
//
// Example:
//
//	d, err := optimize.NewDataset([]float64{0, 1, 2, 3}, []float64{0, 2, 4, 6})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gd := optimize.NewGradientDescent(
//	    optimize.WithLearningRate(0.1),
//	    optimize.WithMaxIter(500),
//	)
//	result, err := gd.Run(d)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("y = %.2f + %.2fx (%s)\n", result.Alpha, result.Beta, result.Reason)
package optimize
