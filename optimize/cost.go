package optimize

import (
	"github.com/YuminosukeSato/descent/core/parallel"
)

// parallelThreshold is the dataset size below which summations run
// sequentially. Spawning workers for small datasets costs more than the
// summation itself.
const parallelThreshold = 1000

// MSE computes the mean squared error of the line y = alpha + beta*x
// against the dataset:
//
//	(1/n) * Σ (y_i - (alpha + beta*x_i))²
//
// The result is non-negative for finite inputs. Non-finite parameters or
// data propagate into the result rather than being trapped. The summation
// over data points may run in parallel; chunk boundaries are deterministic,
// so identical inputs produce identical results.
func MSE(alpha, beta float64, d *Dataset) float64 {
	n := d.Len()
	sum := parallel.SumWithThreshold(n, parallelThreshold, func(start, end int) float64 {
		var s float64
		for i := start; i < end; i++ {
			r := d.y[i] - (alpha + beta*d.x[i])
			s += r * r
		}
		return s
	})
	return sum / float64(n)
}
