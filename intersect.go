package vectorize

const (
	// intersectMaxDepth bounds the bounding-box subdivision search before
	// falling back to the chord-frame root solve at whatever precision
	// has been reached.
	intersectMaxDepth = 24

	// intersectFlatnessEpsilon is the perpendicular-distance-to-chord
	// threshold (matching rootfind.go's flatness test) below which a
	// cubic section is treated as flat enough to resolve by projecting
	// onto the other curve's chord and root-finding there.
	intersectFlatnessEpsilon = 1e-6
)

// CubicIntersection is one point where two cubic Bézier curves cross,
// together with the parameter on each curve where it occurs.
type CubicIntersection struct {
	TA, TB   float64
	Position Point
}

// IntersectCubics finds every point where a and b cross. It recursively
// culls by bounding-box overlap (the usual Bézier clipping approach),
// and resolves each surviving candidate pair by transforming the first
// curve into the coordinate frame of the second curve's chord — its
// "difference" from that chord is then a cubic in one variable, whose
// roots (via FindRoots) are exactly the points where it touches the
// chord. Each root is accepted only if it also falls within the second
// curve's own parameter span.
func IntersectCubics(a, b CubicBez) []CubicIntersection {
	var out []CubicIntersection
	intersectCubicSections(a, 0, 1, b, 0, 1, 0, &out)
	return out
}

func intersectCubicSections(a CubicBez, aT0, aSpan float64, b CubicBez, bT0, bSpan float64, depth int, out *[]CubicIntersection) {
	boxA := a.BoundingBox()
	boxB := b.BoundingBox()
	if !boxA.Overlaps(boxB) {
		return
	}

	if depth >= intersectMaxDepth || (cubicIsFlat(a) && cubicIsFlat(b)) {
		resolveFlatPair(a, aT0, aSpan, b, bT0, bSpan, out)
		return
	}

	a1, a2 := a.Subdivide()
	b1, b2 := b.Subdivide()
	halfA := aSpan * 0.5
	halfB := bSpan * 0.5

	intersectCubicSections(a1, aT0, halfA, b1, bT0, halfB, depth+1, out)
	intersectCubicSections(a1, aT0, halfA, b2, bT0+halfB, halfB, depth+1, out)
	intersectCubicSections(a2, aT0+halfA, halfA, b1, bT0, halfB, depth+1, out)
	intersectCubicSections(a2, aT0+halfA, halfA, b2, bT0+halfB, halfB, depth+1, out)
}

func cubicIsFlat(c CubicBez) bool {
	chord := c.P3.Sub(c.P0)
	chordLen := chord.Length()
	if chordLen == 0 {
		return c.P1.Sub(c.P0).Length() < intersectFlatnessEpsilon && c.P2.Sub(c.P0).Length() < intersectFlatnessEpsilon
	}
	d1 := perpendicularDistance(c.P1, c.P0, chord, chordLen)
	d2 := perpendicularDistance(c.P2, c.P0, chord, chordLen)
	return d1 <= intersectFlatnessEpsilon*chordLen && d2 <= intersectFlatnessEpsilon*chordLen
}

// resolveFlatPair projects a into the frame where b's chord lies on the
// x-axis, so a's transformed y-coordinate is its "difference" from that
// chord; FindRoots on that transformed cubic gives the parameters where
// a crosses b's chord line.
func resolveFlatPair(a CubicBez, aT0, aSpan float64, b CubicBez, bT0, bSpan float64, out *[]CubicIntersection) {
	bChord := b.P3.Sub(b.P0)
	chordLen := bChord.Length()
	if chordLen == 0 {
		return
	}
	ex := bChord.Div(chordLen)
	ey := Point{X: -ex.Y, Y: ex.X}

	toFrame := func(p Point) Point {
		d := p.Sub(b.P0)
		return Point{X: d.Dot(ex), Y: d.Dot(ey)}
	}

	transformed := CubicBez{
		P0: toFrame(a.P0),
		P1: toFrame(a.P1),
		P2: toFrame(a.P2),
		P3: toFrame(a.P3),
	}

	for _, localTA := range FindRoots(transformed) {
		pos := toFrame(a.Eval(localTA))
		localTB := pos.X / chordLen
		if localTB < -1e-9 || localTB > 1+1e-9 {
			continue
		}
		point := a.Eval(localTA)
		*out = append(*out, CubicIntersection{
			TA:       aT0 + localTA*aSpan,
			TB:       bT0 + clamp01(localTB)*bSpan,
			Position: point,
		})
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SelfIntersections finds every crossing between non-adjacent segments
// of a closed cubic path, skipping each segment's immediate neighbors
// (which always share an endpoint, not a genuine crossing).
func SelfIntersections(curves []CubicBez) map[int][]CubicIntersection {
	n := len(curves)
	result := make(map[int][]CubicIntersection)
	if n < 3 {
		return result
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adjacentSegments(i, j, n) {
				continue
			}
			hits := IntersectCubics(curves[i], curves[j])
			for _, h := range hits {
				result[i] = append(result[i], CubicIntersection{TA: h.TA, TB: h.TB, Position: h.Position})
				result[j] = append(result[j], CubicIntersection{TA: h.TB, TB: h.TA, Position: h.Position})
			}
		}
	}
	return result
}

func adjacentSegments(i, j, n int) bool {
	if j == i+1 {
		return true
	}
	if i == 0 && j == n-1 {
		return true
	}
	return false
}
