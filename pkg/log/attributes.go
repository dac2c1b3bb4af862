// Package log defines standard attribute keys for optimization runs.
//
// Using these keys keeps log output consistent across packages so runs can
// be filtered and compared. Keys follow a hierarchical naming convention
// (e.g. "model.name", "train.loss").
package log

// Model and operation context.
const (
	// ModelNameKey identifies the model or algorithm emitting the log.
	// Examples: "GradientDescent", "GDRegressor"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "run"
	OperationKey = "ml.operation"
)

// Data shape.
const (
	// SamplesKey indicates the number of samples in the dataset.
	SamplesKey = "data.samples"
)

// Training progress.
const (
	// IterationKey is the current iteration of an optimization loop.
	IterationKey = "train.iteration"

	// LossKey is the cost value at the current iteration.
	LossKey = "train.loss"

	// LearningRateKey is the configured step-size multiplier.
	LearningRateKey = "train.learning_rate"

	// MaxIterKey is the configured iteration cap.
	MaxIterKey = "train.max_iter"

	// TolKey is the configured convergence threshold.
	TolKey = "train.tol"

	// ReasonKey records why an optimization run terminated.
	ReasonKey = "train.termination_reason"
)

// Performance.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
