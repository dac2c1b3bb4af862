package optimize

import (
	"github.com/YuminosukeSato/descent/core/parallel"
)

// Step performs one batch gradient descent update of the line parameters.
// Both partial derivatives of the mean squared error are evaluated at the
// current (alpha, beta) before either parameter moves, i.e. the update is
// simultaneous:
//
//	dAlpha = (-2/n) * Σ (y_i - (alpha + beta*x_i))
//	dBeta  = (-2/n) * Σ x_i * (y_i - (alpha + beta*x_i))
//
// The returned pair is (alpha - learningRate*dAlpha, beta - learningRate*dBeta).
// Step is pure and safe to call repeatedly, feeding each result into the
// next call. A learning rate that is too large for the data's scale makes
// the returned magnitudes grow without bound; that is a property of the
// algorithm, not a signaled failure.
func Step(alpha, beta, learningRate float64, d *Dataset) (float64, float64) {
	n := float64(d.Len())

	sumRes, sumXRes := parallel.Sum2WithThreshold(d.Len(), parallelThreshold, func(start, end int) (float64, float64) {
		var sr, sxr float64
		for i := start; i < end; i++ {
			r := d.y[i] - (alpha + beta*d.x[i])
			sr += r
			sxr += d.x[i] * r
		}
		return sr, sxr
	})

	dAlpha := (-2 / n) * sumRes
	dBeta := (-2 / n) * sumXRes

	return alpha - learningRate*dAlpha, beta - learningRate*dBeta
}
