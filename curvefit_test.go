package vectorize

import (
	"math"
	"testing"
)

func TestFitCurveRoundTrip(t *testing.T) {
	src := NewCubicBez(Pt(0, 0), Pt(30, 80), Pt(70, -20), Pt(100, 50))

	const n = 100
	samples := make([]Point, n)
	for i := 0; i < n; i++ {
		samples[i] = src.Eval(float64(i) / float64(n-1))
	}

	curves, ok := FitCurve(samples, 1e-6)
	if !ok {
		t.Fatal("FitCurve reported not ok")
	}
	if len(curves) == 0 {
		t.Fatal("FitCurve returned no segments")
	}

	// Build a lookup path by re-sampling the fitted segments and
	// checking every original sample is close to some point on the fit.
	fitted := make([]Point, 0, n*4)
	for _, c := range curves {
		for i := 0; i <= 20; i++ {
			fitted = append(fitted, c.Eval(float64(i)/20))
		}
	}

	for _, s := range samples {
		best := math.MaxFloat64
		for _, f := range fitted {
			if d := s.Distance(f); d < best {
				best = d
			}
		}
		if best > 1e-3 {
			t.Errorf("sample %v is %v away from the fitted path, want <= 1e-3", s, best)
		}
	}
}

func TestFitCurveCollinearPoints(t *testing.T) {
	points := []Point{
		Pt(0, 0),
		Pt(1, 1),
		Pt(2, 2),
		Pt(3, 3),
		Pt(4, 4),
	}

	curves, ok := FitCurve(points, 1e-9)
	if !ok {
		t.Fatal("FitCurve reported not ok")
	}
	if len(curves) != 1 {
		t.Fatalf("got %d segments, want 1 for collinear points", len(curves))
	}

	c := curves[0]
	if !pointsEqual(c.P0, Pt(0, 0), epsilon) || !pointsEqual(c.P3, Pt(4, 4), epsilon) {
		t.Errorf("endpoints = %v, %v, want (0,0),(4,4)", c.P0, c.P3)
	}

	// Control points must be collinear with the endpoints: cross product
	// of (P1-P0) and (P3-P0) is ~0, likewise for P2.
	dir := c.P3.Sub(c.P0)
	if cross := c.P1.Sub(c.P0).Cross(dir); cross > 1e-6 || cross < -1e-6 {
		t.Errorf("P1 not collinear: cross = %v", cross)
	}
	if cross := c.P2.Sub(c.P0).Cross(dir); cross > 1e-6 || cross < -1e-6 {
		t.Errorf("P2 not collinear: cross = %v", cross)
	}

	for _, p := range points {
		if d := pointToLineDistance(p, c.P0, c.P3); d > 1e-9 {
			t.Errorf("point %v deviates from fit by %v, want <= 1e-9", p, d)
		}
	}
}

func pointToLineDistance(p, a, b Point) float64 {
	dir := b.Sub(a)
	dirLen := dir.Length()
	if dirLen == 0 {
		return p.Distance(a)
	}
	cross := p.Sub(a).Cross(dir)
	if cross < 0 {
		cross = -cross
	}
	return cross / dirLen
}

func TestFitCurveTooFewPoints(t *testing.T) {
	if _, ok := FitCurve([]Point{Pt(0, 0)}, 0.1); ok {
		t.Error("FitCurve with a single point should report not ok")
	}
	if _, ok := FitCurve(nil, 0.1); ok {
		t.Error("FitCurve with no points should report not ok")
	}
}

func TestFitCurveTwoPoints(t *testing.T) {
	curves, ok := FitCurve([]Point{Pt(0, 0), Pt(10, 0)}, 0.1)
	if !ok {
		t.Fatal("FitCurve reported not ok")
	}
	if len(curves) != 1 {
		t.Fatalf("got %d segments, want 1", len(curves))
	}
	if !pointsEqual(curves[0].P0, Pt(0, 0), epsilon) || !pointsEqual(curves[0].P3, Pt(10, 0), epsilon) {
		t.Errorf("endpoints = %v, %v", curves[0].P0, curves[0].P3)
	}
}
