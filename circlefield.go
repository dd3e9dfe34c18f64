package vectorize

import "math"

// CircularDistanceField is a DistanceField describing a filled circle. It
// exists primarily as test fixture infrastructure: it gives the contour
// sampling and tracing pipeline a region whose true boundary is known
// exactly, so traced output can be checked against the ideal circle.
//
// The grid is sized to tightly bound the circle plus a one-pixel margin,
// with the center placed at the grid's midpoint (offset, if any, shifts
// the true center away from that midpoint without changing the grid
// size contract below).
type CircularDistanceField struct {
	radius        float64
	offsetX       float64
	offsetY       float64
	size          ContourSize
	centerX       float64
	centerY       float64
}

// NewCircularDistanceField creates a distance field for a filled circle
// of the given radius, centered in a grid sized to contain it with a
// small margin.
func NewCircularDistanceField(radius float64) CircularDistanceField {
	return newCircularDistanceField(radius, 0, 0)
}

// WithCenterOffset returns a copy of the field whose true center is
// shifted by (dx, dy) from the grid midpoint. A non-zero offset can push
// the circle across an additional pixel boundary, which is why the grid
// may grow by one column/row relative to the unshifted field.
func (c CircularDistanceField) WithCenterOffset(dx, dy float64) CircularDistanceField {
	return newCircularDistanceField(c.radius, dx, dy)
}

func newCircularDistanceField(radius, dx, dy float64) CircularDistanceField {
	r := math.Ceil(radius)
	base := 2*int(r) + 3

	width, height := base, base
	if dx != 0 {
		width++
	}
	if dy != 0 {
		height++
	}

	center := float64(base-1) / 2.0

	return CircularDistanceField{
		radius:  radius,
		offsetX: dx,
		offsetY: dy,
		size:    ContourSize{Width: width, Height: height},
		centerX: center + dx,
		centerY: center + dy,
	}
}

// ContourSize returns the field's grid dimensions.
func (c CircularDistanceField) ContourSize() ContourSize {
	return c.size
}

// DistanceAtPoint returns the signed distance from the pixel center at
// pos to the circle boundary: negative inside, positive outside.
func (c CircularDistanceField) DistanceAtPoint(pos ContourPosition) float64 {
	dx := float64(pos.X) - c.centerX
	dy := float64(pos.Y) - c.centerY
	return math.Sqrt(dx*dx+dy*dy) - c.radius
}

// InterceptsOnLine returns the inside x range(s) of row y: for a filled
// circle this is a single contiguous interval (or none, for rows outside
// the circle's vertical extent).
func (c CircularDistanceField) InterceptsOnLine(y float64) []InterceptRange {
	dy := y - c.centerY
	rSq := c.radius*c.radius - dy*dy
	if rSq < 0 {
		return nil
	}
	half := math.Sqrt(rSq)
	start := c.centerX - half
	end := c.centerX + half
	if start >= end {
		return nil
	}
	return []InterceptRange{{Start: start, End: end}}
}
