package linear

// Option is a function that configures GDRegressor.
type Option func(*GDRegressor)

// WithLearningRate sets the step-size multiplier for gradient updates.
func WithLearningRate(lr float64) Option {
	return func(r *GDRegressor) {
		r.learningRate = lr
	}
}

// WithMaxIter sets the iteration cap.
func WithMaxIter(maxIter int) Option {
	return func(r *GDRegressor) {
		r.maxIter = maxIter
	}
}

// WithTol sets the convergence threshold on the improvement between
// successive cost values.
func WithTol(tol float64) Option {
	return func(r *GDRegressor) {
		r.tol = tol
	}
}

// WithStartPoint sets the initial intercept and slope.
func WithStartPoint(alpha, beta float64) Option {
	return func(r *GDRegressor) {
		r.startAlpha = alpha
		r.startBeta = beta
	}
}

// WithNormalize standardizes the predictor before descending and maps the
// fitted parameters back to the original scale afterwards.
func WithNormalize(normalize bool) Option {
	return func(r *GDRegressor) {
		r.normalize = normalize
	}
}
