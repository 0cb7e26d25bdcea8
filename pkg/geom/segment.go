package geom

import "math"

// Segment is the directed finite line between two points of the same flavor
// and dimension. A segment may be degenerate (First == Second).
type Segment struct {
	First  Point
	Second Point
}

// NewSegment returns the segment from first to second.
func NewSegment(first, second Point) Segment {
	return Segment{First: first, Second: second}
}

// Length returns the distance between the segment's endpoints under the
// flavor's distance strategy.
func (s Segment) Length() float64 {
	return Distance(s.First, s.Second)
}

// ClosestPointTo returns the point on the closed segment nearest to p under
// a linear chord metric. The projection parameter t = (AP·AB)/(AB·AB) is
// clamped to [0, 1]; a degenerate segment yields First.
//
// Geographic coordinates are projected with the same planar arithmetic,
// which is a short-segment approximation rather than a true geodesic
// projection.
func (s Segment) ClosestPointTo(p Point) Point {
	a, b := s.First, s.Second
	dim := a.Dim()

	var apab, abab float64
	for i := 0; i < dim; i++ {
		ab := b.Coord(i) - a.Coord(i)
		ap := p.Coord(i) - a.Coord(i)
		apab += ap * ab
		abab += ab * ab
	}

	t := apab / abab
	if math.IsNaN(t) {
		// Zero-length segment: collapse to the start vertex.
		t = 0
	}
	t = math.Max(0, math.Min(1, t))

	closest := a
	for i := 0; i < dim; i++ {
		closest.coords[i] = a.coords[i] + t*(b.coords[i]-a.coords[i])
	}
	return closest
}

// DistanceTo returns the distance from p to the nearest point on the
// segment, measured with the flavor's distance strategy.
func (s Segment) DistanceTo(p Point) float64 {
	return Distance(p, s.ClosestPointTo(p))
}

// ClosestPoint returns the point on the closed segment nearest to p.
// See Segment.ClosestPointTo.
func ClosestPoint(p Point, s Segment) Point {
	return s.ClosestPointTo(p)
}

var _ PointDistancer = Segment{}
