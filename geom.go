package vectorize

import "math"

// crossParallelEpsilon is the tolerance on the cross product of two line
// direction vectors below which the lines are treated as parallel.
const crossParallelEpsilon = 1e-12

// PositionOnLine projects pt onto the infinite line through l and returns
// the parameter t such that l.Eval(t) is the closest point on the line to
// pt. t=0 is l.P0, t=1 is l.P1; values outside [0,1] mean pt projects
// beyond the segment's endpoints.
func PositionOnLine(l Line, pt Point) float64 {
	dir := l.P1.Sub(l.P0)
	lenSq := dir.LengthSquared()
	if lenSq == 0 {
		return 0
	}
	return pt.Sub(l.P0).Dot(dir) / lenSq
}

// IntersectLines finds the intersection of two finite line segments.
// It returns the intersection point and true only when both segments'
// parametric positions lie in [0, 1]. Parallel segments (direction cross
// product within crossParallelEpsilon) never intersect.
func IntersectLines(a, b Line) (Point, bool) {
	d1 := a.P1.Sub(a.P0)
	d2 := b.P1.Sub(b.P0)

	denom := d1.Cross(d2)
	if math.Abs(denom) < crossParallelEpsilon {
		return Point{}, false
	}

	diff := b.P0.Sub(a.P0)
	t := diff.Cross(d2) / denom
	u := diff.Cross(d1) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	return a.P0.Lerp(a.P1, t), true
}

// IntersectLineRay finds where the infinite line through rayFrom, rayTo
// crosses the finite segment seg. The ray parameter (along rayFrom->rayTo)
// must be >= 0; the segment parameter must lie in [0, 1].
func IntersectLineRay(seg Line, rayFrom, rayTo Point) (Point, bool) {
	d1 := seg.P1.Sub(seg.P0)
	d2 := rayTo.Sub(rayFrom)

	denom := d1.Cross(d2)
	if math.Abs(denom) < crossParallelEpsilon {
		return Point{}, false
	}

	diff := rayFrom.Sub(seg.P0)
	t := diff.Cross(d2) / denom
	u := diff.Cross(d1) / denom

	if t < 0 || t > 1 || u < 0 {
		return Point{}, false
	}

	return seg.P0.Lerp(seg.P1, t), true
}
