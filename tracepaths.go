package vectorize

// TracePathsFromSamples walks every closed loop produced by the
// marching-squares edge traversal of contour, resamples each at
// roughly unit arc spacing, fits cubic Bézier segments to the result
// via FitCurve with the given tolerance, and assembles each fitted loop
// into a Path via the BezierPathFactory (NewPathFromSegments). Loops
// whose fit fails are dropped; if every loop fails to fit, ok is false.
func TracePathsFromSamples(contour SampledContour, fitError float64) ([]*Path, bool) {
	return tracePaths(contour, nil, fitError)
}

// TracePathsFromDistanceField is identical to TracePathsFromSamples but
// uses the field's distance values for sub-cell crossing interpolation,
// giving noticeably tighter accuracy than sample-only tracing.
func TracePathsFromDistanceField(field DistanceField, fitError float64) ([]*Path, bool) {
	return tracePaths(field, field, fitError)
}

func tracePaths(contour SampledContour, field DistanceField, fitError float64) ([]*Path, bool) {
	loops := traceLoops(contour, field)
	if len(loops) == 0 {
		return nil, true
	}

	var paths []*Path
	anyFit := false

	for _, loop := range loops {
		resampled := resampleAtArcSpacing(loop, 1.0)
		if len(resampled) < 2 {
			continue
		}

		curves, ok := FitCurve(resampled, fitError)
		if !ok || len(curves) == 0 {
			continue
		}

		anyFit = true
		paths = append(paths, NewPathFromSegments(curves[0].P0, curves))
	}

	if !anyFit {
		return nil, false
	}
	return paths, true
}

// resampleAtArcSpacing walks a closed polyline loop and returns points at
// approximately `spacing` arc-length intervals, always including the
// loop's first point.
func resampleAtArcSpacing(loop []Point, spacing float64) []Point {
	if len(loop) < 2 || spacing <= 0 {
		return loop
	}

	out := []Point{loop[0]}
	acc := 0.0
	target := spacing

	for i := 1; i < len(loop); i++ {
		a := loop[i-1]
		b := loop[i]
		segLen := a.Distance(b)
		if segLen == 0 {
			continue
		}

		for acc+segLen >= target {
			t := (target - acc) / segLen
			out = append(out, a.Lerp(b, t))
			target += spacing
		}
		acc += segLen
	}

	last := loop[len(loop)-1]
	if out[len(out)-1].Distance(last) > 1e-9 {
		out = append(out, last)
	}

	return out
}
