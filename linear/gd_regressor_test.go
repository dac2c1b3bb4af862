package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/optimize"
	"github.com/YuminosukeSato/descent/pkg/errors"
)

func TestGDRegressor_Basic(t *testing.T) {
	// y = 1 + 2x exactly.
	X := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	y := mat.NewDense(4, 1, []float64{1, 3, 5, 7})

	r := NewGDRegressor(
		WithLearningRate(0.1),
		WithMaxIter(5000),
		WithTol(1e-12),
	)
	if err := r.Fit(X, y); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	if math.Abs(r.Intercept()-1) > 0.01 {
		t.Errorf("Expected intercept ~1.0, got %f", r.Intercept())
	}
	if math.Abs(r.Slope()-2) > 0.01 {
		t.Errorf("Expected slope ~2.0, got %f", r.Slope())
	}
	if r.TerminationReason() != optimize.Converged {
		t.Errorf("Expected convergence, got %v", r.TerminationReason())
	}

	XTest := mat.NewDense(2, 1, []float64{5, 6})
	pred, err := r.Predict(XTest)
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}

	expected := []float64{11, 13}
	for i := 0; i < 2; i++ {
		if math.Abs(pred.At(i, 0)-expected[i]) > 0.05 {
			t.Errorf("Expected prediction %f, got %f", expected[i], pred.At(i, 0))
		}
	}
}

func TestGDRegressor_MatchesLeastSquares(t *testing.T) {
	// Noisy data from a known line: the iterative fit must land within a
	// small tolerance of the closed-form least squares solution.
	d, err := optimize.SyntheticLine(200, 1.0, 2.0, 0.05, 42)
	if err != nil {
		t.Fatalf("failed to generate data: %v", err)
	}
	xs, ys := d.Xs(), d.Ys()

	olsAlpha, olsBeta, err := LeastSquares(xs, ys)
	if err != nil {
		t.Fatalf("LeastSquares failed: %v", err)
	}

	X := mat.NewDense(len(xs), 1, xs)
	y := mat.NewDense(len(ys), 1, ys)

	r := NewGDRegressor(
		WithLearningRate(0.5),
		WithMaxIter(20000),
		WithTol(1e-12),
	)
	if err := r.Fit(X, y); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	if math.Abs(r.Intercept()-olsAlpha) > 0.05 {
		t.Errorf("intercept %f differs from closed-form %f", r.Intercept(), olsAlpha)
	}
	if math.Abs(r.Slope()-olsBeta) > 0.05 {
		t.Errorf("slope %f differs from closed-form %f", r.Slope(), olsBeta)
	}
}

func TestGDRegressor_NormalizeHandlesLargeScale(t *testing.T) {
	// Without standardization a predictor on this scale needs a tiny
	// learning rate; with normalize the same configuration converges and
	// the parameters map back to the original scale.
	n := 100
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = float64(i) * 10
		ys[i] = 3 + 0.25*xs[i]
	}

	olsAlpha, olsBeta, err := LeastSquares(xs, ys)
	if err != nil {
		t.Fatalf("LeastSquares failed: %v", err)
	}

	X := mat.NewDense(n, 1, xs)
	y := mat.NewDense(n, 1, ys)

	r := NewGDRegressor(
		WithLearningRate(0.1),
		WithMaxIter(10000),
		WithTol(1e-12),
		WithNormalize(true),
	)
	if err := r.Fit(X, y); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	if r.TerminationReason() != optimize.Converged {
		t.Errorf("Expected convergence, got %v", r.TerminationReason())
	}
	if math.Abs(r.Intercept()-olsAlpha) > 0.05 {
		t.Errorf("intercept %f differs from closed-form %f", r.Intercept(), olsAlpha)
	}
	if math.Abs(r.Slope()-olsBeta) > 0.05 {
		t.Errorf("slope %f differs from closed-form %f", r.Slope(), olsBeta)
	}
}

func TestGDRegressor_Score(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	y := mat.NewDense(4, 1, []float64{1, 3, 5, 7})

	r := NewGDRegressor(WithLearningRate(0.1), WithMaxIter(5000), WithTol(1e-12))
	if err := r.Fit(X, y); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	score, err := r.Score(X, y)
	if err != nil {
		t.Fatalf("Failed to score: %v", err)
	}
	if score < 0.999 {
		t.Errorf("Expected R² ~1 on an exact line, got %f", score)
	}
}

func TestGDRegressor_LossCurve(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	y := mat.NewDense(4, 1, []float64{0, 2, 4, 6})

	r := NewGDRegressor(WithLearningRate(0.1), WithMaxIter(500), WithTol(1e-9))
	if err := r.Fit(X, y); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	curve := r.LossCurve()
	if len(curve) != r.NIter() {
		t.Fatalf("len(LossCurve) = %d, want NIter = %d", len(curve), r.NIter())
	}
	if len(curve) < 2 {
		t.Fatal("expected at least two recorded iterations")
	}
	if curve[len(curve)-1] > curve[0] {
		t.Errorf("loss increased over the run: %v -> %v", curve[0], curve[len(curve)-1])
	}

	// The returned curve is a copy.
	curve[0] = -1
	if r.LossCurve()[0] == -1 {
		t.Error("LossCurve exposes internal storage")
	}
}

func TestGDRegressor_NotFitted(t *testing.T) {
	r := NewGDRegressor()
	X := mat.NewDense(2, 1, []float64{1, 2})

	if _, err := r.Predict(X); err == nil {
		t.Error("expected NotFittedError from Predict")
	}
	if _, err := r.Score(X, X); err == nil {
		t.Error("expected NotFittedError from Score")
	}
}

func TestGDRegressor_DimensionErrors(t *testing.T) {
	r := NewGDRegressor()

	// Two features are not supported by a single-predictor model.
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	y := mat.NewDense(2, 1, []float64{1, 2})
	if err := r.Fit(X, y); err == nil {
		t.Error("expected DimensionError for two-column X")
	}

	// Row count mismatch between X and y.
	X = mat.NewDense(3, 1, []float64{1, 2, 3})
	err := r.Fit(X, y)
	if err == nil {
		t.Fatal("expected DimensionError for row mismatch")
	}
	var de *errors.DimensionError
	if !errors.As(err, &de) {
		t.Errorf("expected DimensionError, got %v", err)
	}
}

func TestGDRegressor_InvalidConfigurationFailsFast(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{1, 2})
	y := mat.NewDense(2, 1, []float64{1, 2})

	r := NewGDRegressor(WithLearningRate(-1))
	err := r.Fit(X, y)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if r.IsFitted() {
		t.Error("model must not be marked fitted after a failed Fit")
	}
}

func TestLeastSquares_ExactLine(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 7}

	alpha, beta, err := LeastSquares(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(alpha-1) > 1e-10 || math.Abs(beta-2) > 1e-10 {
		t.Errorf("LeastSquares = (%v, %v), want (1, 2)", alpha, beta)
	}
}

func TestLeastSquares_InvalidInput(t *testing.T) {
	if _, _, err := LeastSquares(nil, nil); err == nil {
		t.Error("expected error for empty input")
	}
	if _, _, err := LeastSquares([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}
