package linear

import (
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/descent/pkg/errors"
)

// LeastSquares computes the closed-form ordinary least squares fit
// y = alpha + beta*x. It serves as the ground-truth baseline the iterative
// GDRegressor is validated against.
func LeastSquares(x, y []float64) (alpha, beta float64, err error) {
	if len(x) == 0 {
		return 0, 0, errors.NewModelError("LeastSquares", "empty data", errors.ErrEmptyData)
	}
	if len(x) != len(y) {
		return 0, 0, errors.NewDimensionError("LeastSquares", len(x), len(y), 0)
	}

	alpha, beta = stat.LinearRegression(x, y, nil, false)
	return alpha, beta, nil
}
