package vectorize

import "math"

// RayCollision is produced by a ray-cast function and consumed by the
// region tracers. Item is opaque to the tracer and propagated unchanged
// to the output.
type RayCollision[Item any] struct {
	Position Point
	What     Item
}

// RayCastFunc casts a ray from "from" toward "to" and returns every
// collision found along it, in no particular order — the tracer selects
// the nearest one to "from" itself.
type RayCastFunc[Item any] func(from, to Point) []RayCollision[Item]

const (
	// initialRadiusFactor sets the starting radius estimate (step*64)
	// used to seed the adaptive angular step before any collision has
	// been observed.
	initialRadiusFactor = 64.0

	// farBoundFactor scales Step into a cast distance guaranteed to
	// reach past any real geometry a caller is likely to probe.
	farBoundFactor = 1.0e6

	minStepScale = 1.0 / 64.0
	maxStepScale = 64.0
)

// TraceConvex sweeps a full circle of rays from center and keeps, for
// each angle, the nearest collision reported by castRay. The angular
// step is adaptive: it starts at step/R with R = step*64, and rescales
// based on the realized distance between successive collisions (halved
// when closer than step, doubled when farther than 4*step), so finely
// detailed regions get finer sampling without paying that cost
// everywhere.
//
// The result is the ordered sequence of collisions forming the closed
// polygon visible from center. Fewer than 2 collisions means the region
// could not be traced; callers should treat that as empty output, not a
// hard error.
func TraceConvex[Item any](center Point, settings FillSettings, castRay RayCastFunc[Item]) []RayCollision[Item] {
	return traceConvexPartial(center, settings, 0, 2*math.Pi, castRay)
}

// traceConvexPartial is TraceConvex restricted to rays in [thetaStart,
// thetaEnd]. The concave tracer uses this to sweep a 180-degree
// half-plane from a candidate edge midpoint.
func traceConvexPartial[Item any](center Point, settings FillSettings, thetaStart, thetaEnd float64, castRay RayCastFunc[Item]) []RayCollision[Item] {
	step := settings.Step
	r := step * initialRadiusFactor
	farBound := step*farBoundFactor + r

	stepScale := 1.0
	theta := thetaStart

	var collisions []RayCollision[Item]
	var prev *Point

	const maxIterations = 1_000_000
	for i := 0; theta <= thetaEnd && i < maxIterations; i++ {
		inc := (step / r) * stepScale
		if inc <= 0 || math.IsNaN(inc) {
			inc = step
		}

		dir := Point{X: math.Cos(theta), Y: math.Sin(theta)}
		to := center.Add(dir.Mul(farBound))

		hits := castRay(center, to)
		if nearest, ok := nearestCollision(center, hits); ok {
			if prev != nil {
				d := nearest.Position.Distance(*prev)
				switch {
				case d < step:
					stepScale = math.Max(stepScale*0.5, minStepScale)
				case d > 4*step:
					stepScale = math.Min(stepScale*2, maxStepScale)
				}
				r = center.Distance(nearest.Position)
				if r <= 0 {
					r = step * initialRadiusFactor
				}
			}

			collisions = append(collisions, nearest)
			pos := nearest.Position
			prev = &pos
		}

		theta += inc
	}

	return collisions
}

// TraceConvexPath runs TraceConvex, closes the resulting polygon, fits
// cubic Béziers to it with settings.FitError, and assembles the result
// into a Path via the BezierPathFactory (NewPathFromSegments). ok is
// false when fewer than 2 collisions were found or the curve fit
// failed, matching TraceConvex's own failure semantics.
func TraceConvexPath[Item any](center Point, settings FillSettings, castRay RayCastFunc[Item]) (*Path, bool) {
	collisions := TraceConvex(center, settings, castRay)
	if len(collisions) < 2 {
		return nil, false
	}

	loop := closedLoop(collisions)
	curves, ok := FitCurve(loop, settings.FitError)
	if !ok || len(curves) == 0 {
		return nil, false
	}

	return NewPathFromSegments(curves[0].P0, curves), true
}

// closedLoop returns the positions of a collision sequence with the
// first position repeated at the end, so curve fitting sees a closed
// polygon rather than an open polyline.
func closedLoop[Item any](collisions []RayCollision[Item]) []Point {
	points := make([]Point, len(collisions)+1)
	for i, c := range collisions {
		points[i] = c.Position
	}
	points[len(collisions)] = collisions[0].Position
	return points
}

// nearestCollision returns the collision in hits closest to from, by
// Euclidean distance. Ray-cast functions are not required to return
// collisions in any particular order; the tracer always picks the
// nearest, per the package's documented failure semantics for
// non-monotonic ray-cast results.
func nearestCollision[Item any](from Point, hits []RayCollision[Item]) (RayCollision[Item], bool) {
	if len(hits) == 0 {
		var zero RayCollision[Item]
		return zero, false
	}

	best := hits[0]
	bestDist := from.Distance(best.Position)
	for _, h := range hits[1:] {
		if d := from.Distance(h.Position); d < bestDist {
			best = h
			bestDist = d
		}
	}
	return best, true
}
