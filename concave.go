package vectorize

import "math"

const (
	// concaveEdgeMinLenFactor sets how long a polygon edge from the
	// initial convex trace must be (relative to Step) before it is
	// treated as a possible occluded gap worth probing further.
	concaveEdgeMinLenFactor = 4.0

	// selfIntersectionDistance is how far a detected self-intersection
	// is nudged along the casting ray's own direction, so the traced
	// outline closes with the overlap strictly inside the boundary
	// (and therefore removable by RemoveInteriorPoints).
	selfIntersectionDistance = 0.5

	// concaveMaxIterationsFactor bounds the long-edge processing queue
	// relative to the initial edge count, guarding against runaway
	// recursive probing on pathological inputs.
	concaveMaxIterationsFactor = 100
)

// concaveLongEdge is a polygon edge from the working outline that is
// long enough to warrant casting extra rays from its midpoint, looking
// for occluded detail the initial convex trace could not see.
type concaveLongEdge struct {
	start, end               Point
	edgeIndexStart, edgeIndexEnd int
	rayCollided              bool
}

// concaveItem distinguishes a real collision reported by the caller's
// ray-cast function from a synthetic collision the concave tracer
// generates where a probe ray crosses a sibling long edge.
type concaveItem[Item any] struct {
	isSelfIntersection bool
	edgeIndex          int
	item               Item
}

// findLongEdges treats positions as a closed polygon (wrapping the last
// point back to the first) and returns every edge whose squared length
// is at least minLenSq.
func findLongEdges(positions []Point, minLenSq float64) []concaveLongEdge {
	n := len(positions)
	if n == 0 {
		return nil
	}

	var out []concaveLongEdge
	for i := 0; i < n; i++ {
		last := i - 1
		if i == 0 {
			last = n - 1
		}
		offset := positions[last].Sub(positions[i])
		if offset.LengthSquared() >= minLenSq {
			out = append(out, concaveLongEdge{
				start:          positions[last],
				end:            positions[i],
				edgeIndexStart: last,
				edgeIndexEnd:   i,
			})
		}
	}
	return out
}

func positionsOf[T any](items []RayCollision[T]) []Point {
	out := make([]Point, len(items))
	for i, v := range items {
		out[i] = v.Position
	}
	return out
}

func spliceInsert[T any](s []T, at int, items []T) []T {
	out := make([]T, 0, len(s)+len(items))
	out = append(out, s[:at]...)
	out = append(out, items...)
	out = append(out, s[at:]...)
	return out
}

// TraceConcave traces a region's outline the same way TraceConvex does,
// then recursively probes every edge long enough to plausibly be hiding
// occluded detail (edges at least 4*Step long): it casts a 180-degree
// fan of rays from each such edge's midpoint, outward along the edge's
// own perpendicular (computed via the atan2(Δx, Δy) axis swap rather
// than the usual atan2(Δy, Δx), which is what orients the fan away from
// the shape rather than across it).
//
// Probe rays are also tested against every other pending long edge; a
// hit there is recorded as a self-intersection, nudged
// selfIntersectionDistance along the probing ray's own direction so the
// eventual fitted outline overlaps itself on the inside rather than
// leaving a seam, and the hit sibling edge is marked so it isn't probed
// a second time. New segments found by a probe (excluding its first and
// last points, which duplicate the parent edge's own endpoints) are
// spliced into the outline in place of the parent edge.
//
// The returned outline's synthetic self-intersection collisions have a
// nil What; real collisions carry a pointer to the original Item.
// Resolve the overlap they introduce with RemoveInteriorPoints after
// fitting cubic segments to the result.
func TraceConcave[Item any](center Point, settings FillSettings, castRay RayCastFunc[Item]) []RayCollision[*Item] {
	initial := TraceConvex(center, settings, castRay)
	if len(initial) < 2 {
		return nil
	}

	edges := make([]RayCollision[*Item], len(initial))
	for i, e := range initial {
		item := e.What
		edges[i] = RayCollision[*Item]{Position: e.Position, What: &item}
	}

	edgeMinLen := settings.Step * concaveEdgeMinLenFactor
	minLenSq := edgeMinLen * edgeMinLen

	longEdges := findLongEdges(positionsOf(edges), minLenSq)
	iterCap := len(edges) * concaveMaxIterationsFactor

	for idx := 0; idx < len(longEdges) && idx < iterCap; idx++ {
		edge := longEdges[idx]
		if edge.rayCollided {
			continue
		}

		centerPoint := edge.start.Add(edge.end).Mul(0.5)
		offset := edge.start.Sub(edge.end)
		lineAngle := math.Atan2(offset.X, offset.Y)

		castRayToEdges := func(from, to Point) []RayCollision[concaveItem[Item]] {
			base := castRay(from, to)
			out := make([]RayCollision[concaveItem[Item]], 0, len(base))
			for _, b := range base {
				out = append(out, RayCollision[concaveItem[Item]]{
					Position: b.Position,
					What:     concaveItem[Item]{item: b.What},
				})
			}

			length := to.Distance(from)
			if length == 0 {
				return out
			}
			direction := to.Sub(from).Div(length)

			for ei, other := range longEdges {
				if ei == idx {
					continue
				}
				edgeLine := NewLine(other.start, other.end)
				ip, ok := IntersectLineRay(edgeLine, from, to)
				if !ok {
					continue
				}
				ip = ip.Add(direction.Mul(selfIntersectionDistance))
				if pos := PositionOnLine(edgeLine, ip); pos >= 0 && pos <= 1 {
					out = append(out, RayCollision[concaveItem[Item]]{
						Position: ip,
						What:     concaveItem[Item]{isSelfIntersection: true, edgeIndex: ei},
					})
				}
			}
			return out
		}

		newEdges := traceConvexPartial(centerPoint, settings, lineAngle, lineAngle+math.Pi, castRayToEdges)
		if len(newEdges) <= 2 {
			continue
		}

		for _, ne := range newEdges {
			if ne.What.isSelfIntersection {
				longEdges[ne.What.edgeIndex].rayCollided = true
			}
		}

		middle := newEdges[1 : len(newEdges)-1]

		middlePositions := make([]Point, len(middle))
		for i, m := range middle {
			middlePositions[i] = m.Position
		}
		newLongEdges := findLongEdges(middlePositions, minLenSq)

		filtered := newLongEdges[:0]
		for _, nl := range newLongEdges {
			if nl.edgeIndexEnd != 0 {
				filtered = append(filtered, nl)
			}
		}
		newLongEdges = filtered

		insert := make([]RayCollision[*Item], len(middle))
		for i, m := range middle {
			var itemPtr *Item
			if !m.What.isSelfIntersection {
				v := m.What.item
				itemPtr = &v
			}
			insert[i] = RayCollision[*Item]{Position: m.Position, What: itemPtr}
		}

		insertAt := edge.edgeIndexEnd
		edges = spliceInsert(edges, insertAt, insert)
		numNew := len(middle)

		for u := idx; u < len(longEdges); u++ {
			if longEdges[u].edgeIndexStart >= insertAt {
				longEdges[u].edgeIndexStart += numNew
			}
			if longEdges[u].edgeIndexEnd >= insertAt {
				longEdges[u].edgeIndexEnd += numNew
			}
		}
		for i := range newLongEdges {
			newLongEdges[i].edgeIndexStart += insertAt
			newLongEdges[i].edgeIndexEnd += insertAt
		}

		longEdges = spliceInsert(longEdges, idx+1, newLongEdges)
	}

	return edges
}

// concaveInteriorTolerance is the winding-test tolerance passed to
// RemoveInteriorPoints when assembling TraceConcavePaths output: small
// relative to a unit step, since the self-intersection splicing in
// TraceConcave already places synthetic vertices at exact segment
// crossings.
const concaveInteriorTolerance = 0.01

// TraceConcavePaths runs TraceConcave, closes the resulting outline,
// fits cubic Béziers to it, and removes the interior sub-arcs that the
// concave tracer's self-intersection splicing introduced (one crossing
// per hole recovered, per findLongEdges), leaving one or more simple
// closed loops. Each surviving loop is assembled into its own Path via
// the BezierPathFactory (NewPathFromSegments). ok is false when the
// initial trace or the curve fit failed.
func TraceConcavePaths[Item any](center Point, settings FillSettings, castRay RayCastFunc[Item]) ([]*Path, bool) {
	collisions := TraceConcave(center, settings, castRay)
	if len(collisions) < 2 {
		return nil, false
	}

	loop := closedLoop(collisions)
	curves, ok := FitCurve(loop, settings.FitError)
	if !ok || len(curves) == 0 {
		return nil, false
	}

	loops := RemoveInteriorPoints(curves, concaveInteriorTolerance)
	if len(loops) == 0 {
		return nil, false
	}

	paths := make([]*Path, len(loops))
	for i, l := range loops {
		paths[i] = NewPathFromSegments(l[0].P0, l)
	}
	return paths, true
}
