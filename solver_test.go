package vectorize

import (
	"math"
	"sort"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func checkRootSet(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d roots %v, want %d roots %v", len(got), got, len(want), want)
	}
	sortedGot := append([]float64(nil), got...)
	sort.Float64s(sortedGot)
	sortedWant := append([]float64(nil), want...)
	sort.Float64s(sortedWant)
	for i := range sortedGot {
		if !almostEqual(sortedGot[i], sortedWant[i], 1e-9) {
			t.Errorf("root %d: got %v, want %v", i, sortedGot[i], sortedWant[i])
		}
	}
}

func TestSolveQuadraticTwoDistinctRoots(t *testing.T) {
	// x^2 - 5x + 6 = 0 -> roots 2, 3
	checkRootSet(t, SolveQuadratic(1, -5, 6), []float64{2, 3})
}

func TestSolveQuadraticDoubleRoot(t *testing.T) {
	// x^2 - 4x + 4 = 0 -> double root 2
	checkRootSet(t, SolveQuadratic(1, -4, 4), []float64{2})
}

func TestSolveQuadraticNoRealRoots(t *testing.T) {
	if roots := SolveQuadratic(1, 0, 1); roots != nil {
		t.Errorf("got %v, want nil for x^2+1=0", roots)
	}
}

func TestSolveQuadraticDegeneratesToLinear(t *testing.T) {
	// a=0: 2x - 4 = 0 -> x = 2
	checkRootSet(t, SolveQuadratic(0, 2, -4), []float64{2})
}

func TestSolveQuadraticAllZeroCoefficients(t *testing.T) {
	checkRootSet(t, SolveQuadratic(0, 0, 0), []float64{0})
}

func TestSolveCubicThreeRealRoots(t *testing.T) {
	// (x-1)(x-2)(x-3) = x^3 - 6x^2 + 11x - 6
	checkRootSet(t, SolveCubic(1, -6, 11, -6), []float64{1, 2, 3})
}

func TestSolveCubicOneRealRoot(t *testing.T) {
	// x^3 - 1 = 0 has exactly one real root: x = 1
	checkRootSet(t, SolveCubic(1, 0, 0, -1), []float64{1})
}

func TestSolveCubicDoubleRoot(t *testing.T) {
	// (x-1)^2(x-(-2)) = x^3 - 3x + 2: a double root at 1 and a simple
	// root at -2. The discriminant-zero branch reports one value per
	// distinct root, not one per multiplicity.
	roots := SolveCubic(1, 0, -3, 2)
	checkRootSet(t, roots, []float64{1, -2})
}

func TestSolveCubicDegeneratesToQuadratic(t *testing.T) {
	// a=0: quadratic x^2 - 3x + 2 -> roots 1, 2
	checkRootSet(t, SolveCubic(0, 1, -3, 2), []float64{1, 2})
}

func TestSolveQuadraticInUnitIntervalFiltersOutOfRange(t *testing.T) {
	// Roots at -1 and 0.5; only 0.5 should survive.
	roots := SolveQuadraticInUnitInterval(1, 0.5, -0.5)
	checkRootSet(t, roots, []float64{0.5})
}

func TestSolveCubicInUnitIntervalClampsNearBoundary(t *testing.T) {
	// A root essentially at t=1 (triple root of (x-1)^3) should clamp
	// into range rather than be dropped for tiny floating point overshoot.
	roots := SolveCubicInUnitInterval(1, -3, 3, -1)
	if len(roots) == 0 {
		t.Fatal("got 0 roots, want at least 1")
	}
	for _, r := range roots {
		if r < 0 || r > 1 {
			t.Errorf("root %v outside [0,1]", r)
		}
		if !almostEqual(r, 1.0, 1e-6) {
			t.Errorf("root %v, want near 1.0", r)
		}
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{1.0, true},
		{0.0, true},
		{-1.0, true},
		{math.Inf(1), false},
		{math.Inf(-1), false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		if got := isFinite(tt.x); got != tt.want {
			t.Errorf("isFinite(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

// TestCubicExtremaUsesQuadraticSolver exercises SolveQuadraticInUnitInterval
// through its real caller: CubicBez.Extrema, which solves the derivative's
// zero-crossings to find the curve's tight bounding box.
func TestCubicExtremaUsesQuadraticSolver(t *testing.T) {
	// A curve that bulges past both endpoints in Y, so it must have at
	// least one interior extremum.
	c := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	extrema := c.Extrema()
	if len(extrema) == 0 {
		t.Fatal("expected at least one extremum for a curve bulging past its endpoints")
	}
	for _, tVal := range extrema {
		if tVal < 0 || tVal > 1 {
			t.Errorf("extremum t=%v outside [0,1]", tVal)
		}
	}
}
