package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/core/model"
	"github.com/YuminosukeSato/descent/metrics"
	"github.com/YuminosukeSato/descent/optimize"
	"github.com/YuminosukeSato/descent/preprocessing"
	"github.com/YuminosukeSato/descent/pkg/errors"
)

// GDRegressor fits a single-predictor line y = intercept + slope*x by batch
// gradient descent. It exposes the scikit-learn style estimator surface on
// top of the optimize package.
type GDRegressor struct {
	model.BaseEstimator

	// Hyperparameters
	learningRate float64
	maxIter      int
	tol          float64
	startAlpha   float64
	startBeta    float64
	normalize    bool

	// Fitted parameters, on the original (unscaled) data scale.
	intercept float64
	slope     float64

	// Last optimization result. The loss curve is reported on the scale the
	// optimizer actually descended (standardized when normalize is set).
	result *optimize.Result
}

var _ model.Regressor = (*GDRegressor)(nil)

// NewGDRegressor creates a GDRegressor with the given options.
// Defaults match optimize.NewGradientDescent: learning rate 0.01, iteration
// cap 1000, convergence threshold 0.001, starting point (0, 0).
func NewGDRegressor(options ...Option) *GDRegressor {
	r := &GDRegressor{
		learningRate: optimize.DefaultLearningRate,
		maxIter:      optimize.DefaultMaxIter,
		tol:          optimize.DefaultTol,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Fit trains the model on X (n×1) and y (n×1).
func (r *GDRegressor) Fit(X, y mat.Matrix) error {
	xs, err := singleColumn("GDRegressor.Fit", X)
	if err != nil {
		return err
	}
	ys, err := singleColumn("GDRegressor.Fit", y)
	if err != nil {
		return err
	}
	if len(ys) != len(xs) {
		return errors.NewDimensionError("GDRegressor.Fit", len(xs), len(ys), 0)
	}

	var scaler *preprocessing.StandardScaler
	if r.normalize {
		scaler = preprocessing.NewStandardScaler()
		xs, err = scaler.FitTransformSlice(xs)
		if err != nil {
			return err
		}
	}

	d, err := optimize.NewDataset(xs, ys)
	if err != nil {
		return err
	}

	gd := optimize.NewGradientDescent(
		optimize.WithLearningRate(r.learningRate),
		optimize.WithMaxIter(r.maxIter),
		optimize.WithTol(r.tol),
		optimize.WithStartPoint(r.startAlpha, r.startBeta),
	)
	result, err := gd.Run(d)
	if err != nil {
		return err
	}
	r.result = result

	if r.normalize {
		// The optimizer fitted y = a + b*(x-mean)/scale; map back to the
		// original x scale.
		r.slope = result.Beta / scaler.Scale
		r.intercept = result.Alpha - result.Beta*scaler.Mean/scaler.Scale
	} else {
		r.intercept = result.Alpha
		r.slope = result.Beta
	}

	r.SetFitted()
	return nil
}

// Predict returns predictions for X (n×1) as an n×1 matrix.
func (r *GDRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("GDRegressor", "Predict")
	}

	xs, err := singleColumn("GDRegressor.Predict", X)
	if err != nil {
		return nil, err
	}

	predictions := mat.NewDense(len(xs), 1, nil)
	for i, x := range xs {
		predictions.Set(i, 0, r.intercept+r.slope*x)
	}
	return predictions, nil
}

// Score computes the coefficient of determination R² on the given data.
func (r *GDRegressor) Score(X, y mat.Matrix) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError("GDRegressor", "Score")
	}

	yPred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}
	ys, err := singleColumn("GDRegressor.Score", y)
	if err != nil {
		return 0, err
	}

	yTrueVec := mat.NewVecDense(len(ys), ys)
	yPredVec := mat.NewVecDense(len(ys), nil)
	for i := range ys {
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	return metrics.R2Score(yTrueVec, yPredVec)
}

// Intercept returns the fitted intercept.
func (r *GDRegressor) Intercept() float64 {
	return r.intercept
}

// Slope returns the fitted slope.
func (r *GDRegressor) Slope() float64 {
	return r.slope
}

// LossCurve returns a copy of the cost history recorded during Fit.
func (r *GDRegressor) LossCurve() []float64 {
	if r.result == nil {
		return nil
	}
	curve := make([]float64, len(r.result.History))
	copy(curve, r.result.History)
	return curve
}

// NIter returns the number of iterations the last Fit performed.
func (r *GDRegressor) NIter() int {
	if r.result == nil {
		return 0
	}
	return r.result.Iterations
}

// TerminationReason reports which stopping rule ended the last Fit.
func (r *GDRegressor) TerminationReason() optimize.TerminationReason {
	if r.result == nil {
		return optimize.MaxIterReached
	}
	return r.result.Reason
}

// singleColumn extracts the single column of an n×1 matrix.
func singleColumn(op string, m mat.Matrix) ([]float64, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if cols != 1 {
		return nil, errors.NewDimensionError(op, 1, cols, 1)
	}

	values := make([]float64, rows)
	for i := 0; i < rows; i++ {
		values[i] = m.At(i, 0)
	}
	return values, nil
}
