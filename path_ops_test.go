package vectorize

import (
	"math"
	"testing"
)

func squarePath(x, y, side float64) *Path {
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+side, y)
	p.LineTo(x+side, y+side)
	p.LineTo(x, y+side)
	p.Close()
	return p
}

func TestPathAreaUnitSquare(t *testing.T) {
	p := squarePath(0, 0, 1)
	if got, want := math.Abs(p.Area()), 1.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Area() = %v, want %v", got, want)
	}
}

func TestPathAreaScalesWithSideSquared(t *testing.T) {
	small := math.Abs(squarePath(0, 0, 2).Area())
	large := math.Abs(squarePath(0, 0, 4).Area())
	if math.Abs(large-4*small) > 1e-9 {
		t.Errorf("doubling side length should quadruple area: got %v and %v", small, large)
	}
}

func TestPathAreaCircleApproachesAnalyticValue(t *testing.T) {
	p := NewPath()
	p.Circle(0, 0, 10)
	got := math.Abs(p.Area())
	want := math.Pi * 10 * 10
	if math.Abs(got-want) > 0.01*want {
		t.Errorf("Area() = %v, want within 1%% of %v", got, want)
	}
}

func TestPathAreaWindingFlipsSign(t *testing.T) {
	cw := NewPath()
	cw.MoveTo(0, 0)
	cw.LineTo(1, 0)
	cw.LineTo(1, 1)
	cw.LineTo(0, 1)
	cw.Close()

	ccw := NewPath()
	ccw.MoveTo(0, 0)
	ccw.LineTo(0, 1)
	ccw.LineTo(1, 1)
	ccw.LineTo(1, 0)
	ccw.Close()

	a, b := cw.Area(), ccw.Area()
	if (a > 0) == (b > 0) {
		t.Errorf("reversing winding direction should flip the area's sign: got %v and %v", a, b)
	}
}

func TestPathWindingInsideVersusOutside(t *testing.T) {
	p := squarePath(0, 0, 10)

	if w := p.Winding(Pt(5, 5)); w == 0 {
		t.Error("center of square should have nonzero winding")
	}
	if w := p.Winding(Pt(50, 50)); w != 0 {
		t.Errorf("point far outside square: winding = %v, want 0", w)
	}
}

func TestPathWindingOnCurvedBoundary(t *testing.T) {
	p := NewPath()
	p.Circle(0, 0, 10)

	if w := p.Winding(Pt(0, 0)); w == 0 {
		t.Error("circle center should have nonzero winding")
	}
	if w := p.Winding(Pt(100, 100)); w != 0 {
		t.Errorf("far outside point: winding = %v, want 0", w)
	}
}

func TestPathBoundingBoxStraightEdges(t *testing.T) {
	p := squarePath(2, 3, 5)
	got := p.BoundingBox()
	want := NewRect(Pt(2, 3), Pt(7, 8))
	if !pointsEqual(got.Min, want.Min, epsilon) || !pointsEqual(got.Max, want.Max, epsilon) {
		t.Errorf("BoundingBox() = %v, want %v", got, want)
	}
}

func TestPathBoundingBoxIncludesCurveExtrema(t *testing.T) {
	p := NewPath()
	p.Circle(0, 0, 10)
	got := p.BoundingBox()

	// A circle's cubic approximation bulges very slightly past the
	// exact radius, so allow a small margin while still requiring the
	// box to capture essentially the full extent.
	if got.Min.X > -9.9 || got.Max.X < 9.9 || got.Min.Y > -9.9 || got.Max.Y < 9.9 {
		t.Errorf("BoundingBox() = %v, want to extend close to +/-10 on both axes", got)
	}
}

func TestPathBoundingBoxEmptyPath(t *testing.T) {
	p := NewPath()
	if got := p.BoundingBox(); got != (Rect{}) {
		t.Errorf("BoundingBox() of empty path = %v, want zero Rect", got)
	}
}
