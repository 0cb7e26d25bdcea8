package geom

// ProjectionMode selects how Project reports the along-line distance.
type ProjectionMode int

const (
	// Simple measures the along-line distance from the start of the
	// matched segment only.
	Simple ProjectionMode = iota

	// Accumulate measures the along-line distance from the start of the
	// polyline, summing the lengths of all segments before the match.
	Accumulate
)

// DefaultSearchRadius is the initial half-edge of the pruning search box
// used by Project, in meters for geographic polylines and native units
// otherwise. It is an empirical tunable; callers needing a different value
// can use a Projector.
const DefaultSearchRadius = 2000.0

// Polyline is an ordered sequence of vertices of the same flavor and
// dimension. Vertex order defines the path direction. A polyline may be
// empty, a single point, or two or more vertices.
type Polyline []Point

// Length returns the sum of the polyline's segment lengths under the
// flavor's distance strategy.
func (l Polyline) Length() float64 {
	var total float64
	for i := 0; i+1 < len(l); i++ {
		total += Distance(l[i], l[i+1])
	}
	return total
}

// DistanceTo returns the perpendicular distance from p to the polyline, or
// -1 for an empty polyline.
func (l Polyline) DistanceTo(p Point) float64 {
	perpendicular, _ := l.Project(p, Simple)
	return perpendicular
}

// Project finds the polyline segment nearest to p and returns the
// perpendicular distance to it together with the along-line distance to
// p's projection, using the default tunables. See Projector.Project.
func (l Polyline) Project(p Point, mode ProjectionMode) (float64, float64) {
	return Projector{}.Project(p, l, mode)
}

var _ PointDistancer = Polyline{}

// Projector carries the tunables of the polyline projection scan. The zero
// value uses DefaultSearchRadius and GeographicDegreesPerMeter.
type Projector struct {
	// SearchRadius is the initial half-edge of the pruning search box.
	SearchRadius float64

	// DegreesPerMeter scales meter-valued edge lengths to degrees for
	// geographic points.
	DegreesPerMeter float64
}

// Project finds the segment of line nearest to p and returns the exact
// perpendicular distance to it and the along-line distance from the match
// reference to p's closest point on that segment (the reference being the
// polyline start in Accumulate mode, the segment start in Simple mode).
//
// Edge cases: an empty polyline yields the sentinel (-1, 0); a single
// vertex yields (Distance(p, vertex), 0).
//
// The scan keeps a shrinking search radius: segments that miss the current
// search box are rejected without an exact distance computation, and a
// segment only becomes the new best when twice its exact distance beats the
// radius. The pruning can skip the true nearest segment when it lies
// outside every tested box, trading exactness for speed on long polylines.
func (pr Projector) Project(p Point, line Polyline, mode ProjectionMode) (float64, float64) {
	radius := pr.SearchRadius
	if radius <= 0 {
		radius = DefaultSearchRadius
	}
	scale := pr.DegreesPerMeter
	if scale <= 0 {
		scale = GeographicDegreesPerMeter
	}

	if len(line) == 0 {
		return -1, 0
	}
	if len(line) < 2 {
		return Distance(p, line[0]), 0
	}

	best := 0
	for i := 0; i+1 < len(line); i++ {
		seg := Segment{First: line[i], Second: line[i+1]}
		if !searchBox(p, radius, scale).IntersectsSegment(seg) {
			continue
		}
		// Later segments must strictly beat the doubled distance, so
		// ties resolve to the first segment found.
		if d := seg.DistanceTo(p) * 2; d < radius {
			radius = d
			best = i
		}
	}

	var along float64
	if mode == Accumulate {
		for i := 0; i < best; i++ {
			along += Distance(line[i], line[i+1])
		}
	}

	seg := Segment{First: line[best], Second: line[best+1]}
	along += Distance(seg.First, seg.ClosestPointTo(p))

	return seg.DistanceTo(p), along
}
