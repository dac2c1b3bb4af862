// Package preprocessing provides data transformations applied before
// optimization. Standardizing the predictor keeps the cost surface
// well-conditioned so gradient descent tolerates larger learning rates.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/core/model"
	"github.com/YuminosukeSato/descent/pkg/errors"
)

// StandardScaler standardizes a single feature to zero mean and unit
// standard deviation.
type StandardScaler struct {
	model.BaseEstimator

	// Mean is the fitted mean of the feature.
	Mean float64

	// Scale is the fitted standard deviation of the feature.
	Scale float64
}

// NewStandardScaler creates a new StandardScaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// FitSlice computes the mean and standard deviation of the values.
func (s *StandardScaler) FitSlice(values []float64) error {
	if len(values) == 0 {
		return errors.NewModelError("StandardScaler.FitSlice", "empty data", errors.ErrEmptyData)
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	s.Mean = sum / float64(len(values))

	var sumSquares float64
	for _, v := range values {
		diff := v - s.Mean
		sumSquares += diff * diff
	}
	s.Scale = math.Sqrt(sumSquares / float64(len(values)))

	// Guard against division by zero for constant features.
	if math.Abs(s.Scale) < 1e-8 {
		s.Scale = 1.0
	}

	s.SetFitted()
	return nil
}

// TransformSlice standardizes the values using the fitted statistics.
func (s *StandardScaler) TransformSlice(values []float64) ([]float64, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "TransformSlice")
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - s.Mean) / s.Scale
	}
	return out, nil
}

// FitTransformSlice fits the scaler and standardizes the values in one call.
func (s *StandardScaler) FitTransformSlice(values []float64) ([]float64, error) {
	if err := s.FitSlice(values); err != nil {
		return nil, err
	}
	return s.TransformSlice(values)
}

// InverseTransformSlice maps standardized values back to the original scale.
func (s *StandardScaler) InverseTransformSlice(values []float64) ([]float64, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "InverseTransformSlice")
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v*s.Scale + s.Mean
	}
	return out, nil
}

// Fit computes the statistics from an n×1 matrix.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	values, err := columnValues("StandardScaler.Fit", X)
	if err != nil {
		return err
	}
	return s.FitSlice(values)
}

// Transform standardizes an n×1 matrix using the fitted statistics.
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	values, err := columnValues("StandardScaler.Transform", X)
	if err != nil {
		return nil, err
	}
	scaled, err := s.TransformSlice(values)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(len(scaled), 1, scaled), nil
}

// InverseTransform maps a standardized n×1 matrix back to the original scale.
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	values, err := columnValues("StandardScaler.InverseTransform", X)
	if err != nil {
		return nil, err
	}
	restored, err := s.InverseTransformSlice(values)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(len(restored), 1, restored), nil
}

func columnValues(op string, X mat.Matrix) ([]float64, error) {
	r, c := X.Dims()
	if r == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if c != 1 {
		return nil, errors.NewDimensionError(op, 1, c, 1)
	}

	values := make([]float64, r)
	for i := 0; i < r; i++ {
		values[i] = X.At(i, 0)
	}
	return values, nil
}
