package vectorize

import "sort"

// linkEndpointEpsilon is the distance within which two sub-arc
// endpoints are considered the same vertex when reassembling loops.
const linkEndpointEpsilon = 1e-6

// RemoveInteriorPoints takes a closed cubic path that may overlap
// itself (as TraceConcave's output does once fitted to curves, via the
// 0.5-unit self-intersection displacement it introduces) and returns
// the simple, non-overlapping loops it actually bounds.
//
// Every pairwise crossing between non-adjacent segments is located
// (SelfIntersections, built on IntersectCubics), each segment is split
// at the crossings that fall on it, and any resulting sub-arc whose
// midpoint lies strictly inside the winding of all the other sub-arcs
// is discarded — it is part of an interior fold, not the outer
// boundary. What survives is relinked into closed loops by matching
// endpoints.
func RemoveInteriorPoints(curves []CubicBez, tolerance float64) [][]CubicBez {
	if len(curves) == 0 {
		return nil
	}

	hitsBySegment := SelfIntersections(curves)
	if len(hitsBySegment) == 0 {
		return [][]CubicBez{curves}
	}

	arcs := splitAtIntersections(curves, hitsBySegment)
	if len(arcs) == 0 {
		return nil
	}

	kept := make([]CubicBez, 0, len(arcs))
	for i, arc := range arcs {
		others := make([]CubicBez, 0, len(arcs)-1)
		for j, a := range arcs {
			if j != i {
				others = append(others, a)
			}
		}
		mid := arc.Eval(0.5)
		if windingFromArcs(others, mid) == 0 {
			kept = append(kept, arc)
		}
	}

	return linkArcsIntoLoops(kept, tolerance)
}

// splitAtIntersections breaks every segment at the parameters where it
// was found to cross some other (non-adjacent) segment.
func splitAtIntersections(curves []CubicBez, hitsBySegment map[int][]CubicIntersection) []CubicBez {
	var out []CubicBez
	for i, c := range curves {
		hits := hitsBySegment[i]
		if len(hits) == 0 {
			out = append(out, c)
			continue
		}

		ts := make([]float64, 0, len(hits))
		for _, h := range hits {
			t := clamp01(h.TA)
			if t > 1e-9 && t < 1-1e-9 {
				ts = append(ts, t)
			}
		}
		sort.Float64s(ts)
		ts = dedupeSortedFloats(ts, 1e-9)

		if len(ts) == 0 {
			out = append(out, c)
			continue
		}

		prev := 0.0
		for _, t := range ts {
			out = append(out, c.Subsegment(prev, t))
			prev = t
		}
		out = append(out, c.Subsegment(prev, 1))
	}
	return out
}

func dedupeSortedFloats(ts []float64, eps float64) []float64 {
	if len(ts) == 0 {
		return ts
	}
	out := ts[:1]
	for _, t := range ts[1:] {
		if t-out[len(out)-1] > eps {
			out = append(out, t)
		}
	}
	return out
}

// windingFromArcs sums each arc's crossing contribution independently,
// using the path's existing nonzero-rule winding machinery, and treats
// the result as the even-odd inside test for interior-point removal.
func windingFromArcs(arcs []CubicBez, pt Point) int {
	p := NewPath()
	for _, a := range arcs {
		p.MoveTo(a.P0.X, a.P0.Y)
		p.CubicTo(a.P1.X, a.P1.Y, a.P2.X, a.P2.Y, a.P3.X, a.P3.Y)
	}
	return p.Winding(pt)
}

// linkArcsIntoLoops relinks a bag of cubic sub-arcs into closed loops
// by matching each arc's end point to the next arc's start point within
// tolerance, consuming each arc exactly once.
func linkArcsIntoLoops(arcs []CubicBez, tolerance float64) [][]CubicBez {
	if tolerance <= 0 {
		tolerance = linkEndpointEpsilon
	}

	used := make([]bool, len(arcs))
	var loops [][]CubicBez

	for start := range arcs {
		if used[start] {
			continue
		}
		used[start] = true
		loop := []CubicBez{arcs[start]}
		current := arcs[start].P3

		for {
			next := -1
			for i, a := range arcs {
				if used[i] {
					continue
				}
				if a.P0.Distance(current) <= tolerance {
					next = i
					break
				}
			}
			if next < 0 {
				break
			}
			used[next] = true
			loop = append(loop, arcs[next])
			current = arcs[next].P3
		}

		if len(loop) >= 1 {
			loops = append(loops, loop)
		}
	}

	return loops
}
