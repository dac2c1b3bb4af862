package optimize

// Option is a function that configures GradientDescent.
type Option func(*GradientDescent)

// WithLearningRate sets the step-size multiplier for gradient updates.
func WithLearningRate(lr float64) Option {
	return func(gd *GradientDescent) {
		gd.learningRate = lr
	}
}

// WithMaxIter sets the iteration cap.
func WithMaxIter(maxIter int) Option {
	return func(gd *GradientDescent) {
		gd.maxIter = maxIter
	}
}

// WithTol sets the convergence threshold on the improvement between
// successive cost values. A threshold of zero disables convergence, so the
// loop always runs to the iteration cap.
func WithTol(tol float64) Option {
	return func(gd *GradientDescent) {
		gd.tol = tol
	}
}

// WithStartPoint sets the initial intercept and slope. The default is (0, 0).
func WithStartPoint(alpha, beta float64) Option {
	return func(gd *GradientDescent) {
		gd.startAlpha = alpha
		gd.startBeta = beta
	}
}
