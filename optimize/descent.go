package optimize

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/YuminosukeSato/descent/pkg/errors"
	"github.com/YuminosukeSato/descent/pkg/log"
)

// TerminationReason reports why an optimization run stopped.
type TerminationReason int

const (
	// Converged means successive cost values improved by less than the
	// configured threshold.
	Converged TerminationReason = iota
	// MaxIterReached means the iteration cap was hit before convergence.
	MaxIterReached
)

// String returns a human-readable name for the reason.
func (r TerminationReason) String() string {
	switch r {
	case Converged:
		return "converged"
	case MaxIterReached:
		return "max_iter_reached"
	default:
		return fmt.Sprintf("TerminationReason(%d)", int(r))
	}
}

// Result holds the output of one optimization run.
type Result struct {
	// Alpha is the final intercept.
	Alpha float64
	// Beta is the final slope.
	Beta float64
	// History records the cost after each iteration, in order.
	History []float64
	// Iterations is the number of completed iterations (== len(History)).
	Iterations int
	// Reason reports which stopping rule ended the run.
	Reason TerminationReason
}

// FinalCost returns the cost after the last iteration.
func (r *Result) FinalCost() float64 {
	if len(r.History) == 0 {
		return math.NaN()
	}
	return r.History[len(r.History)-1]
}

// Diverged reports whether the run moved away from the minimum instead of
// towards it: the history contains non-finite values, or the final cost
// exceeds the first. Divergence is never signaled as an error by Run; it is
// the caller's decision point for lowering the learning rate.
func (r *Result) Diverged() bool {
	if err := errors.CheckNumericalStability("cost_history", r.History, r.Iterations); err != nil {
		return true
	}
	if len(r.History) >= 2 && r.History[len(r.History)-1] > r.History[0] {
		return true
	}
	return false
}

// Default configuration values.
const (
	DefaultLearningRate = 0.01
	DefaultMaxIter      = 1000
	DefaultTol          = 0.001
)

// logEvery is the iteration interval for debug-level progress records.
const logEvery = 100

// GradientDescent drives batch gradient descent over a Dataset. The zero
// value is not usable; construct it with NewGradientDescent. Configuration
// is fixed for the duration of a run, and a single instance may be reused
// across runs.
type GradientDescent struct {
	learningRate float64
	maxIter      int
	tol          float64
	startAlpha   float64
	startBeta    float64
}

// NewGradientDescent creates a GradientDescent with the given options.
// Defaults: learning rate 0.01, iteration cap 1000, convergence threshold
// 0.001, starting point (0, 0).
func NewGradientDescent(opts ...Option) *GradientDescent {
	gd := &GradientDescent{
		learningRate: DefaultLearningRate,
		maxIter:      DefaultMaxIter,
		tol:          DefaultTol,
	}
	for _, opt := range opts {
		opt(gd)
	}
	return gd
}

// validate fails fast on caller contract violations before any iteration runs.
func (gd *GradientDescent) validate(d *Dataset) error {
	if d == nil || d.Len() == 0 {
		return errors.NewModelError("GradientDescent.Run", "empty dataset", errors.ErrEmptyData)
	}
	if gd.learningRate <= 0 {
		return errors.NewValidationError("learning_rate", "must be positive", gd.learningRate)
	}
	if gd.maxIter <= 0 {
		return errors.NewValidationError("max_iter", "must be positive", gd.maxIter)
	}
	if gd.tol < 0 {
		return errors.NewValidationError("tol", "must be non-negative", gd.tol)
	}
	return nil
}

// Run executes the optimization loop on the dataset and returns the final
// parameters, the full cost history and the termination reason.
//
// Each iteration performs one simultaneous gradient update followed by a
// cost evaluation which is appended to the history. The run stops as
// converged once the absolute difference between the last two cost values
// drops below the threshold, which requires at least two completed
// iterations. Otherwise it stops at the iteration cap and emits a
// ConvergenceWarning through the pkg/errors warning handler.
//
// A zero threshold makes convergence unreachable, so the run always uses
// the full iteration budget.
func (gd *GradientDescent) Run(d *Dataset) (*Result, error) {
	if err := gd.validate(d); err != nil {
		return nil, err
	}

	logger := slog.Default().With(
		log.ModelNameKey, "GradientDescent",
		log.OperationKey, "run",
	)
	logger.Info("optimization started",
		log.SamplesKey, d.Len(),
		log.LearningRateKey, gd.learningRate,
		log.MaxIterKey, gd.maxIter,
		log.TolKey, gd.tol,
	)
	started := time.Now()

	alpha, beta := gd.startAlpha, gd.startBeta
	history := make([]float64, 0, gd.maxIter)
	reason := MaxIterReached

	for iter := 0; iter < gd.maxIter; iter++ {
		alpha, beta = Step(alpha, beta, gd.learningRate, d)
		cost := MSE(alpha, beta, d)
		history = append(history, cost)

		if iter%logEvery == 0 {
			logger.Debug("iteration completed",
				log.IterationKey, iter,
				log.LossKey, cost,
			)
		}

		if len(history) >= 2 && math.Abs(history[len(history)-1]-history[len(history)-2]) < gd.tol {
			reason = Converged
			break
		}
	}

	if reason == MaxIterReached {
		errors.Warn(errors.NewConvergenceWarning("GradientDescent", gd.maxIter, ""))
	}

	result := &Result{
		Alpha:      alpha,
		Beta:       beta,
		History:    history,
		Iterations: len(history),
		Reason:     reason,
	}

	logger.Info("optimization finished",
		log.IterationKey, result.Iterations,
		log.LossKey, result.FinalCost(),
		log.ReasonKey, reason.String(),
		log.DurationMsKey, time.Since(started).Milliseconds(),
	)

	return result, nil
}
