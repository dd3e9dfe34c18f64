package vectorize

import "math"

// linkEpsilon is the distance, in contour grid units, within which two
// segment endpoints are considered the same point when linking marching
// squares edge segments into loops.
const linkEpsilon = 1e-6

// pointInside reports whether the integer grid corner (x, y) lies inside
// the contour, derived from its horizontal intercept ranges. Points
// outside the declared contour size are always outside.
func pointInside(c SampledContour, x, y int) bool {
	size := c.ContourSize()
	if x < 0 || x >= size.Width || y < 0 || y >= size.Height {
		return false
	}
	fx := float64(x)
	for _, r := range c.InterceptsOnLine(float64(y)) {
		if fx >= r.Start && fx < r.End {
			return true
		}
	}
	return false
}

// cellCorners reports the four corner inside-flags of cell (x, y): the
// cell spans grid corners (x,y)-(x+1,y)-(x+1,y+1)-(x,y+1).
func cellCorners(c SampledContour, x, y int) (tl, tr, bl, br bool) {
	tl = pointInside(c, x, y)
	tr = pointInside(c, x+1, y)
	bl = pointInside(c, x, y+1)
	br = pointInside(c, x+1, y+1)
	return
}

func cellCaseIndex(tl, tr, bl, br bool) int {
	idx := 0
	if tl {
		idx |= 8
	}
	if tr {
		idx |= 4
	}
	if br {
		idx |= 2
	}
	if bl {
		idx |= 1
	}
	return idx
}

// edgeDirectionsForCase returns the grid-edge directions involved in the
// given marching-squares case, independent of how they pair into
// segments. Saddle cases (5, 10) involve all four.
func edgeDirectionsForCase(idx int) []Direction {
	switch idx {
	case 0, 15:
		return nil
	case 1, 14:
		return []Direction{DirDown, DirLeft}
	case 2, 13:
		return []Direction{DirRight, DirDown}
	case 3, 12:
		return []Direction{DirRight, DirLeft}
	case 4, 11:
		return []Direction{DirUp, DirRight}
	case 6, 9:
		return []Direction{DirUp, DirDown}
	case 8, 7:
		return []Direction{DirLeft, DirUp}
	case 5, 10:
		return []Direction{DirUp, DirRight, DirDown, DirLeft}
	default:
		return nil
	}
}

// EdgeCellIterator returns, in a stable top-to-bottom left-to-right scan
// order, every (cell, direction) crossing the marching-squares
// classification produces for contour. It carries only topology (which
// cell edges a boundary crosses), not sub-pixel position: this is the
// quantity that must agree bit-for-bit between any SampledContour
// implementation and the BoolSampledContour built from the same
// inside/outside classification.
func EdgeCellIterator(c SampledContour) []EdgeCell {
	size := c.ContourSize()
	var out []EdgeCell

	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			tl, tr, bl, br := cellCorners(c, x, y)
			idx := cellCaseIndex(tl, tr, bl, br)
			for _, dir := range edgeDirectionsForCase(idx) {
				out = append(out, EdgeCell{Pos: ContourPosition{X: x, Y: y}, Direction: dir})
			}
		}
	}
	return out
}

// segment is one directed sub-cell boundary crossing, from one cell-edge
// midpoint/intercept to another, produced while walking a single cell.
type segment struct {
	from, to Point
}

// traceLoops runs the full marching-squares edge walk with sub-cell
// interpolation and links the resulting segments into closed loops. When
// field is non-nil its distance values are used for saddle disambiguation
// and for interpolating vertical (and, where no sharper source is
// available, horizontal) crossings; without it, saddle cells are
// disambiguated by sampling the half-row intercepts at the cell center
// and vertical crossings default to the cell's vertical midpoint.
func traceLoops(c SampledContour, field DistanceField) [][]Point {
	size := c.ContourSize()
	var segments []segment

	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			tl, tr, bl, br := cellCorners(c, x, y)
			idx := cellCaseIndex(tl, tr, bl, br)
			if idx == 0 || idx == 15 {
				continue
			}

			edgePoint := func(dir Direction) Point {
				return cellEdgeCrossing(c, field, x, y, dir)
			}

			pairs := caseSegments(idx, x, y, c, field)
			for _, p := range pairs {
				segments = append(segments, segment{from: edgePoint(p[0]), to: edgePoint(p[1])})
			}
		}
	}

	return linkSegments(segments)
}

// caseSegments returns the directed direction-pairs for the cell's case,
// resolving the saddle ambiguity (cases 5 and 10) by sampling the cell
// center: via the distance field when present, otherwise via the
// contour's intercepts at the half-integer row y+0.5.
func caseSegments(idx, x, y int, c SampledContour, field DistanceField) [][2]Direction {
	switch idx {
	case 0, 15:
		return nil
	case 1:
		return [][2]Direction{{DirDown, DirLeft}}
	case 14:
		return [][2]Direction{{DirLeft, DirDown}}
	case 2:
		return [][2]Direction{{DirRight, DirDown}}
	case 13:
		return [][2]Direction{{DirDown, DirRight}}
	case 3:
		return [][2]Direction{{DirRight, DirLeft}}
	case 12:
		return [][2]Direction{{DirLeft, DirRight}}
	case 4:
		return [][2]Direction{{DirUp, DirRight}}
	case 11:
		return [][2]Direction{{DirRight, DirUp}}
	case 6:
		return [][2]Direction{{DirUp, DirDown}}
	case 9:
		return [][2]Direction{{DirDown, DirUp}}
	case 8:
		return [][2]Direction{{DirLeft, DirUp}}
	case 7:
		return [][2]Direction{{DirUp, DirLeft}}
	case 5:
		if centerInside(c, field, x, y) {
			return [][2]Direction{{DirUp, DirRight}, {DirDown, DirLeft}}
		}
		return [][2]Direction{{DirUp, DirLeft}, {DirDown, DirRight}}
	case 10:
		if centerInside(c, field, x, y) {
			return [][2]Direction{{DirRight, DirUp}, {DirLeft, DirDown}}
		}
		return [][2]Direction{{DirLeft, DirUp}, {DirRight, DirDown}}
	default:
		return nil
	}
}

func centerInside(c SampledContour, field DistanceField, x, y int) bool {
	cx := float64(x) + 0.5
	cy := float64(y) + 0.5
	if field != nil {
		// Bilinear blend of the four corner distances is a reasonable
		// stand-in for a direct field sample at the half-integer cell
		// center, since DistanceField only exposes integer positions.
		d := (field.DistanceAtPoint(ContourPosition{X: x, Y: y}) +
			field.DistanceAtPoint(ContourPosition{X: x + 1, Y: y}) +
			field.DistanceAtPoint(ContourPosition{X: x, Y: y + 1}) +
			field.DistanceAtPoint(ContourPosition{X: x + 1, Y: y + 1})) / 4
		return d < 0
	}
	for _, r := range c.InterceptsOnLine(cy) {
		if cx >= r.Start && cx < r.End {
			return true
		}
	}
	return false
}

// cellEdgeCrossing computes the sub-cell position of the boundary
// crossing on the given edge of cell (x, y).
func cellEdgeCrossing(c SampledContour, field DistanceField, x, y int, dir Direction) Point {
	switch dir {
	case DirUp: // top edge, row y, between corners x and x+1
		return Point{X: horizontalCrossing(c, field, x, y), Y: float64(y)}
	case DirDown: // bottom edge, row y+1
		return Point{X: horizontalCrossing(c, field, x, y+1), Y: float64(y + 1)}
	case DirLeft: // left edge, column x, between rows y and y+1
		return Point{X: float64(x), Y: verticalCrossing(field, x, y)}
	case DirRight: // right edge, column x+1
		return Point{X: float64(x + 1), Y: verticalCrossing(field, x+1, y)}
	}
	return Point{}
}

// horizontalCrossing finds where row's inside/outside state changes
// between grid columns x and x+1: from the field's corner distances when
// available (more precise), otherwise from the contour's own intercept
// range boundary that falls inside (x, x+1).
func horizontalCrossing(c SampledContour, field DistanceField, x, row int) float64 {
	if field != nil {
		d0 := field.DistanceAtPoint(ContourPosition{X: x, Y: row})
		d1 := field.DistanceAtPoint(ContourPosition{X: x + 1, Y: row})
		if t, ok := interpolateZero(d0, d1); ok {
			return float64(x) + t
		}
	}

	lo, hi := float64(x), float64(x+1)
	for _, r := range c.InterceptsOnLine(float64(row)) {
		if r.Start > lo && r.Start < hi {
			return r.Start
		}
		if r.End > lo && r.End < hi {
			return r.End
		}
	}
	return (lo + hi) / 2
}

// verticalCrossing finds where column x's inside/outside state changes
// between grid rows y and y+1, via the distance field's corner values
// when available, otherwise the cell's vertical midpoint (a SampledContour
// alone carries no sub-row information).
func verticalCrossing(field DistanceField, x, y int) float64 {
	if field != nil {
		d0 := field.DistanceAtPoint(ContourPosition{X: x, Y: y})
		d1 := field.DistanceAtPoint(ContourPosition{X: x, Y: y + 1})
		if t, ok := interpolateZero(d0, d1); ok {
			return float64(y) + t
		}
	}
	return float64(y) + 0.5
}

// interpolateZero finds t in [0,1] such that lerp(d0, d1, t) == 0.
func interpolateZero(d0, d1 float64) (float64, bool) {
	if d0 == d1 {
		return 0, false
	}
	t := d0 / (d0 - d1)
	if t < 0 || t > 1 || math.IsNaN(t) {
		return 0, false
	}
	return t, true
}

// linkSegments joins directed segments into closed loops by matching
// each segment's end point to the next segment's start point within
// linkEpsilon, then normalizes every loop to counter-clockwise order
// (outside on the left) via its signed area.
func linkSegments(segments []segment) [][]Point {
	used := make([]bool, len(segments))
	var loops [][]Point

	for i := range segments {
		if used[i] {
			continue
		}
		used[i] = true

		loop := []Point{segments[i].from, segments[i].to}
		current := segments[i].to

		for {
			advanced := false
			for j := range segments {
				if used[j] {
					continue
				}
				if current.Distance(segments[j].from) <= linkEpsilon {
					loop = append(loop, segments[j].to)
					current = segments[j].to
					used[j] = true
					advanced = true
					break
				}
			}
			if !advanced {
				break
			}
			if current.Distance(loop[0]) <= linkEpsilon {
				break
			}
		}

		if polygonSignedArea(loop) < 0 {
			reversePoints(loop)
		}
		loops = append(loops, loop)
	}

	return loops
}

func polygonSignedArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return area / 2
}

func reversePoints(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
