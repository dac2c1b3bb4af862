package model

import "gonum.org/v1/gonum/mat"

// Estimator is the minimal contract shared by all trainable models.
type Estimator interface {
	// Fit trains the model on X (n_samples × n_features) and y (n_samples × 1).
	Fit(X, y mat.Matrix) error
	// IsFitted reports whether Fit has completed successfully.
	IsFitted() bool
}

// Regressor is an estimator that predicts continuous targets.
type Regressor interface {
	Estimator
	// Predict returns predictions for X as an n_samples × 1 matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
	// Score returns the coefficient of determination R² on the given data.
	Score(X, y mat.Matrix) (float64, error)
}
