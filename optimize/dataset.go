package optimize

import (
	"github.com/YuminosukeSato/descent/pkg/errors"
)

// Dataset is an immutable, ordered sequence of paired observations (x, y).
// It is constructed once and shared by reference across cost and gradient
// evaluations; the size is fixed for the duration of an optimization run.
type Dataset struct {
	x []float64
	y []float64
}

// NewDataset creates a Dataset from parallel x and y slices. The slices are
// copied, so the caller may reuse them afterwards.
func NewDataset(x, y []float64) (*Dataset, error) {
	if len(x) == 0 {
		return nil, errors.NewModelError("NewDataset", "empty data", errors.ErrEmptyData)
	}
	if len(x) != len(y) {
		return nil, errors.NewDimensionError("NewDataset", len(x), len(y), 0)
	}

	d := &Dataset{
		x: make([]float64, len(x)),
		y: make([]float64, len(y)),
	}
	copy(d.x, x)
	copy(d.y, y)
	return d, nil
}

// Len returns the number of observations.
func (d *Dataset) Len() int {
	return len(d.x)
}

// X returns the i-th predictor value.
func (d *Dataset) X(i int) float64 {
	return d.x[i]
}

// Y returns the i-th target value.
func (d *Dataset) Y(i int) float64 {
	return d.y[i]
}

// Xs returns a copy of the predictor values.
func (d *Dataset) Xs() []float64 {
	out := make([]float64, len(d.x))
	copy(out, d.x)
	return out
}

// Ys returns a copy of the target values.
func (d *Dataset) Ys() []float64 {
	out := make([]float64, len(d.y))
	copy(out, d.y)
	return out
}
