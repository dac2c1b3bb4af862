package optimize

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/descent/pkg/errors"
)

// SyntheticLine generates n observations from the line y = alpha + beta*x
// with Gaussian noise of the given standard deviation added to each target.
// The predictor values are evenly spaced on [0, 1). Generation is
// deterministic for a fixed seed.
func SyntheticLine(n int, alpha, beta, noise float64, seed uint64) (*Dataset, error) {
	if n <= 0 {
		return nil, errors.NewValueError("SyntheticLine", "n must be positive")
	}
	if noise < 0 {
		return nil, errors.NewValueError("SyntheticLine", "noise must be non-negative")
	}

	dist := distuv.Normal{
		Mu:    0,
		Sigma: noise,
		Src:   rand.NewPCG(seed, seed),
	}

	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i) / float64(n)
		y[i] = alpha + beta*x[i]
		if noise > 0 {
			y[i] += dist.Rand()
		}
	}

	return NewDataset(x, y)
}
