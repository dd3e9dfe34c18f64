package vectorize

import "math"

// FindRoots finds the t-values in [0, 1] where the cubic's y coordinate
// crosses zero. To find where a curve crosses an arbitrary horizontal or
// vertical line, translate the curve's control points first.
//
// The algorithm is Schneider's control-polygon subdivision method ("A
// Bezier Curve-Based Root-Finder", Graphics Gems, 1990): the convex hull
// of the control polygon bounds the curve, so the number of times the
// polygon crosses the x axis (closing the polygon with a chord from the
// last point back to the first) bounds the number of roots. A section
// with zero crossings has no root. A section with exactly one crossing
// that is flat enough is treated as a line and solved directly. Anything
// else is subdivided at its midpoint and both halves are queued, last
// pushed first served, so the curve is walked in parameter order.
func FindRoots(c CubicBez) []float64 {
	type section struct {
		curve CubicBez
		t0    float64
		span  float64
		depth int
	}

	stack := []section{{curve: c, t0: 0, span: 1, depth: 0}}
	var roots []float64

	const maxDepth = 64

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pts := [4]Point{s.curve.P0, s.curve.P1, s.curve.P2, s.curve.P3}
		crossings := countXAxisCrossings(pts)
		if crossings == 0 {
			continue
		}

		if (crossings == 1 && flatEnough(pts)) || s.depth >= maxDepth {
			localT := findXIntercept(pts)
			roots = append(roots, s.t0+localT*s.span)
			continue
		}

		left, right := s.curve.Subdivide()
		halfSpan := s.span * 0.5
		mid := s.t0 + halfSpan

		stack = append(stack, section{curve: right, t0: mid, span: halfSpan, depth: s.depth + 1})
		stack = append(stack, section{curve: left, t0: s.t0, span: halfSpan, depth: s.depth + 1})
	}

	return coalesceRoots(roots)
}

// countXAxisCrossings counts the sign changes in y across the control
// polygon's edges, including the closing chord from the last point back
// to the first. This bounds the number of times the curve itself crosses
// the x axis within the section.
func countXAxisCrossings(pts [4]Point) int {
	crossings := 0
	for i := 0; i < len(pts)-1; i++ {
		if signChange(pts[i].Y, pts[i+1].Y) {
			crossings++
		}
	}
	if signChange(pts[0].Y, pts[len(pts)-1].Y) {
		crossings++
	}
	return crossings
}

func signChange(a, b float64) bool {
	return (a < 0 && b > 0) || (a > 0 && b < 0)
}

// flatFlatnessEpsilon is the maximum perpendicular distance (relative to
// the chord length) a control point may have from the line through the
// curve's endpoints before the section is no longer considered flat.
const flatFlatnessEpsilon = 1e-6

// flatEnough reports whether the control polygon is close enough to a
// straight line that its single x-axis crossing can be approximated by
// the crossing of the chord from pts[0] to pts[N-1]. It measures the
// perpendicular distance of every interior control point from that chord,
// normalized by the chord's length so the test is scale-independent.
func flatEnough(pts [4]Point) bool {
	chord := pts[len(pts)-1].Sub(pts[0])
	chordLen := chord.Length()
	if chordLen == 0 {
		// Degenerate chord (both endpoints coincide): fall back to the
		// distance from the first point, unnormalized.
		for i := 1; i < len(pts)-1; i++ {
			if pts[i].Sub(pts[0]).Length() > flatFlatnessEpsilon {
				return false
			}
		}
		return true
	}

	for i := 1; i < len(pts)-1; i++ {
		d := perpendicularDistance(pts[i], pts[0], chord, chordLen)
		if d > flatFlatnessEpsilon*chordLen {
			return false
		}
	}
	return true
}

// perpendicularDistance returns the distance from pt to the infinite line
// through origin with direction dir (|dir| == dirLen), measured via the
// magnitude of the 2D cross product.
func perpendicularDistance(pt, origin, dir Point, dirLen float64) float64 {
	rel := pt.Sub(origin)
	return math.Abs(rel.Cross(dir)) / dirLen
}

// findXIntercept finds the x-axis intercept of the chord connecting the
// section's endpoints, expressed as the section's own local t in [0, 1].
// This is only meaningful once flatEnough has confirmed the control
// polygon closely tracks that chord, so the chord's zero crossing stands
// in for the curve's actual root.
func findXIntercept(pts [4]Point) float64 {
	p0, p1 := pts[0], pts[len(pts)-1]
	dy := p1.Y - p0.Y
	if dy == 0 {
		return 0
	}
	return -p0.Y / dy
}

// coalesceRootsEpsilon is the t-distance below which two roots found from
// adjacent or overlapping subdivided sections are treated as the same
// root rather than two distinct ones.
const coalesceRootsEpsilon = 1e-9

// coalesceRoots sorts the raw root list and merges values that are within
// coalesceRootsEpsilon of each other, which happens when a root falls
// exactly on (or very near) a subdivision boundary and gets reported by
// both halves.
func coalesceRoots(roots []float64) []float64 {
	if len(roots) == 0 {
		return nil
	}

	sorted := make([]float64, len(roots))
	copy(sorted, roots)
	insertionSortFloats(sorted)

	out := sorted[:1]
	for _, r := range sorted[1:] {
		if r-out[len(out)-1] > coalesceRootsEpsilon {
			out = append(out, r)
		}
	}
	return out
}

func insertionSortFloats(vals []float64) {
	for i := 1; i < len(vals); i++ {
		v := vals[i]
		j := i - 1
		for j >= 0 && vals[j] > v {
			vals[j+1] = vals[j]
			j--
		}
		vals[j+1] = v
	}
}
