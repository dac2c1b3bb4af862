package optimize

import (
	"math"
	"testing"
)

func TestStep_HandComputed(t *testing.T) {
	// x = [0, 1], y = [0, 2], starting at (0, 0):
	//   residuals = (0, 2)
	//   dAlpha = (-2/2) * 2     = -2
	//   dBeta  = (-2/2) * (1*2) = -2
	// With learning rate 0.1 the update is (0.2, 0.2).
	d := mustDataset(t, []float64{0, 1}, []float64{0, 2})

	alpha, beta := Step(0, 0, 0.1, d)
	if math.Abs(alpha-0.2) > 1e-12 || math.Abs(beta-0.2) > 1e-12 {
		t.Errorf("Step = (%v, %v), want (0.2, 0.2)", alpha, beta)
	}
}

func TestStep_SimultaneousUpdate(t *testing.T) {
	// Both derivatives must be evaluated at the pre-update parameters.
	// A sequential (coordinate descent) variant would compute dBeta at the
	// already-updated alpha and land on a different point.
	d := mustDataset(t, []float64{1, 2, 3}, []float64{2, 3, 5})
	alpha0, beta0 := 0.5, 0.5
	lr := 0.05
	n := float64(d.Len())

	var sumRes, sumXRes float64
	for i := 0; i < d.Len(); i++ {
		r := d.Y(i) - (alpha0 + beta0*d.X(i))
		sumRes += r
		sumXRes += d.X(i) * r
	}
	wantAlpha := alpha0 - lr*(-2/n)*sumRes
	wantBeta := beta0 - lr*(-2/n)*sumXRes

	alpha, beta := Step(alpha0, beta0, lr, d)
	if math.Abs(alpha-wantAlpha) > 1e-12 || math.Abs(beta-wantBeta) > 1e-12 {
		t.Errorf("Step = (%v, %v), want (%v, %v)", alpha, beta, wantAlpha, wantBeta)
	}
}

func TestStep_FixedPointOnExactFit(t *testing.T) {
	// At the minimum both derivatives vanish, so the parameters stay put.
	d := mustDataset(t, []float64{0, 1, 2, 3}, []float64{1, 3, 5, 7})

	alpha, beta := Step(1, 2, 0.1, d)
	if alpha != 1 || beta != 2 {
		t.Errorf("Step at minimum = (%v, %v), want (1, 2)", alpha, beta)
	}
}

func TestStep_Deterministic(t *testing.T) {
	d := mustDataset(t, []float64{0, 1, 2, 3}, []float64{0.3, 2.1, 3.9, 6.2})

	a1, b1 := Step(0.1, 0.2, 0.05, d)
	a2, b2 := Step(0.1, 0.2, 0.05, d)
	if a1 != a2 || b1 != b2 {
		t.Errorf("identical inputs produced different outputs: (%v, %v) vs (%v, %v)", a1, b1, a2, b2)
	}
}

func TestStep_OversizedLearningRateDiverges(t *testing.T) {
	// An excessive learning rate overshoots the minimum and the parameter
	// magnitudes grow without bound. No error is signaled.
	d := mustDataset(t, []float64{0, 1, 2, 3}, []float64{0, 2, 4, 6})

	alpha, beta := 0.0, 0.0
	prev := math.Abs(beta - 2)
	grew := 0
	for i := 0; i < 20; i++ {
		alpha, beta = Step(alpha, beta, 10, d)
		dist := math.Abs(beta - 2)
		if dist > prev {
			grew++
		}
		prev = dist
	}

	if grew < 15 {
		t.Errorf("expected sustained magnitude growth, grew in only %d/20 steps", grew)
	}
}
