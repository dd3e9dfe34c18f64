package vectorize

import "math"

// FitCurve fits an ordered sequence of sample points with one or more
// cubic Bézier segments whose concatenation passes through points[0] and
// points[len-1] and whose maximum deviation from any interior sample is
// at most maxError. It reports ok=false when fewer than two points are
// supplied.
//
// Algorithm (Schneider, "An Algorithm for Automatically Fitting Digitized
// Curves", Graphics Gems): estimate end tangents from the first and last
// chords, chord-length parameterize the samples, solve the normal
// equations for the two control-point tangent magnitudes, measure the
// squared deviation at each sample, and on failure either reparameterize
// (Newton-Raphson) and retry once, or split at the worst-fit sample and
// recurse on each half with a shared center tangent.
func FitCurve(points []Point, maxError float64) ([]CubicBez, bool) {
	if len(points) < 2 {
		return nil, false
	}

	tHat1 := computeLeftTangent(points)
	tHat2 := computeRightTangent(points)

	errSq := maxError * maxError
	return fitCubic(points, tHat1, tHat2, errSq), true
}

func computeLeftTangent(points []Point) Point {
	return points[1].Sub(points[0]).Normalize()
}

func computeRightTangent(points []Point) Point {
	n := len(points)
	return points[n-2].Sub(points[n-1]).Normalize()
}

func computeCenterTangent(points []Point, center int) Point {
	v1 := points[center-1].Sub(points[center])
	v2 := points[center].Sub(points[center+1])
	sum := v1.Add(v2).Mul(0.5)
	return sum.Normalize()
}

func fitCubic(points []Point, tHat1, tHat2 Point, errSq float64) []CubicBez {
	if len(points) == 2 {
		dist := points[0].Distance(points[1]) / 3.0
		bez := CubicBez{
			P0: points[0],
			P1: points[0].Add(tHat1.Mul(dist)),
			P2: points[1].Add(tHat2.Mul(dist)),
			P3: points[1],
		}
		return []CubicBez{bez}
	}

	u := chordLengthParameterize(points)
	bez := generateBezier(points, u, tHat1, tHat2)

	maxErr, splitPoint := computeMaxError(points, u, bez)
	if maxErr < errSq {
		return []CubicBez{bez}
	}

	if maxErr < errSq*4 {
		for range 4 {
			uPrime := reparameterize(points, u, bez)
			candidate := generateBezier(points, uPrime, tHat1, tHat2)
			candidateErr, candidateSplit := computeMaxError(points, uPrime, candidate)
			if candidateErr < errSq {
				return []CubicBez{candidate}
			}
			u, bez, maxErr, splitPoint = uPrime, candidate, candidateErr, candidateSplit
		}
	}

	if splitPoint <= 0 {
		splitPoint = 1
	}
	if splitPoint >= len(points)-1 {
		splitPoint = len(points) - 2
	}

	tHatCenter := computeCenterTangent(points, splitPoint)

	left := fitCubic(points[:splitPoint+1], tHat1, tHatCenter.Mul(-1), errSq)
	right := fitCubic(points[splitPoint:], tHatCenter, tHat2, errSq)

	return append(left, right...)
}

// chordLengthParameterize assigns each point a parameter in [0, 1]
// proportional to its cumulative chord distance from the first point.
func chordLengthParameterize(points []Point) []float64 {
	u := make([]float64, len(points))
	u[0] = 0
	for i := 1; i < len(points); i++ {
		u[i] = u[i-1] + points[i].Distance(points[i-1])
	}

	total := u[len(u)-1]
	if total == 0 {
		return u
	}
	for i := range u {
		u[i] /= total
	}
	return u
}

// generateBezier solves the normal equations for the tangent-line
// distances alpha_l, alpha_r that place P1 and P2 along tHat1/tHat2 from
// the endpoints, minimizing the least-squares error against points at
// their assigned parameters u.
func generateBezier(points []Point, u []float64, tHat1, tHat2 Point) CubicBez {
	p0 := points[0]
	p3 := points[len(points)-1]

	var c [2][2]float64
	var x [2]float64

	for i, ui := range u {
		b0, b1, b2, b3 := bernstein(ui)

		a0 := tHat1.Mul(b1)
		a1 := tHat2.Mul(b2)

		v1 := p0.Mul(b0 + b1)
		v2 := p3.Mul(b2 + b3)
		tmp := points[i].Sub(v1.Add(v2))

		c[0][0] += a0.Dot(a0)
		c[0][1] += a0.Dot(a1)
		c[1][0] = c[0][1]
		c[1][1] += a1.Dot(a1)

		x[0] += a0.Dot(tmp)
		x[1] += a1.Dot(tmp)
	}

	detC0C1 := c[0][0]*c[1][1] - c[1][0]*c[0][1]
	detC0X := c[0][0]*x[1] - c[1][0]*x[0]
	detXC1 := x[0]*c[1][1] - x[1]*c[0][1]

	var alphaL, alphaR float64
	if detC0C1 != 0 {
		alphaL = detXC1 / detC0C1
		alphaR = detC0X / detC0C1
	}

	segLength := p0.Distance(p3)
	eps := 1.0e-6 * segLength

	if segLength == 0 || alphaL < eps || alphaR < eps {
		dist := segLength / 3.0
		return CubicBez{
			P0: p0,
			P1: p0.Add(tHat1.Mul(dist)),
			P2: p3.Add(tHat2.Mul(dist)),
			P3: p3,
		}
	}

	return CubicBez{
		P0: p0,
		P1: p0.Add(tHat1.Mul(alphaL)),
		P2: p3.Add(tHat2.Mul(alphaR)),
		P3: p3,
	}
}

func bernstein(t float64) (b0, b1, b2, b3 float64) {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	b0 = mt2 * mt
	b1 = 3 * mt2 * t
	b2 = 3 * mt * t2
	b3 = t2 * t
	return
}

// computeMaxError returns the largest squared distance between any
// sample point and the fitted curve at its assigned parameter, along
// with the index of that worst sample.
func computeMaxError(points []Point, u []float64, bez CubicBez) (float64, int) {
	maxErr := 0.0
	splitPoint := len(points) / 2

	for i, ui := range u {
		p := bez.Eval(ui)
		distSq := p.Sub(points[i]).LengthSquared()
		if distSq > maxErr {
			maxErr = distSq
			splitPoint = i
		}
	}

	return maxErr, splitPoint
}

// reparameterize improves each parameter estimate with one step of
// Newton-Raphson on the distance-squared function between the curve and
// its assigned sample.
func reparameterize(points []Point, u []float64, bez CubicBez) []float64 {
	out := make([]float64, len(u))
	for i := range u {
		out[i] = newtonRaphsonRootFind(bez, points[i], u[i])
	}
	return out
}

func newtonRaphsonRootFind(bez CubicBez, point Point, u float64) float64 {
	q := bez.Eval(u)
	q1 := bez.Deriv().Eval(u)
	q2 := bez.Deriv().Deriv().Eval(u)

	diff := q.Sub(point)
	numerator := diff.Dot(q1)
	denominator := q1.LengthSquared() + diff.Dot(q2)

	if denominator == 0 {
		return u
	}

	newU := u - numerator/denominator
	if newU < 0 {
		newU = 0
	}
	if newU > 1 {
		newU = 1
	}
	if math.IsNaN(newU) {
		return u
	}
	return newU
}
