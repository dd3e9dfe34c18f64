// Package vectorize turns implicit and sampled 2D region descriptions into
// cubic Bezier outlines.
//
// # Overview
//
// Three algorithms sit at the center of the package:
//
//   - Convex and concave outline tracing from a ray-cast function (TraceConvex,
//     TraceConcave, the region tracer family).
//   - Marching-squares edge extraction from a sampled or distance-field
//     contour (SampledContour, DistanceField, TracePathsFromSamples).
//   - Cubic root finding by de Casteljau subdivision (FindRoots), the
//     primitive the curve-curve intersection and interior-point removal
//     passes are built on.
//
// All three share a Bezier kernel (CubicBez, QuadBez, de Casteljau
// evaluation, subdivision, and least-mean-squares curve fitting via FitCurve).
//
// # Quick Start
//
//	contour := vectorize.NewCircularDistanceField(30, vectorize.Point{})
//	paths, err := vectorize.TracePathsFromDistanceField(contour, 0.1)
//
//	settings := vectorize.NewFillSettings(vectorize.WithStep(1.0))
//	path, err := vectorize.TraceConvex(center, settings, castRay)
//
// # Architecture
//
//   - Geometry primitives: Point, Line, Rect (geom.go, point.go, vec.go, curve.go)
//   - Bezier kernel: CubicBez/QuadBez evaluation, subdivision, FitCurve (curve.go, curvefit.go)
//   - Root finder: FindRoots (rootfind.go), polynomial extrema solver (solver.go)
//   - Contour sampling: SampledContour, DistanceField, marching squares (contour.go, marching.go, tracepaths.go)
//   - Region tracers: TraceConvex, TraceConcave, RemoveInteriorPoints (tracer.go, concave.go, interior.go)
//
// # Out of scope
//
// This package does not rasterize pixels, accelerate on a GPU, or implement
// path boolean algebra (union/intersect) or arc primitives; it only produces
// the cubic Bezier outlines those layers consume.
package vectorize
