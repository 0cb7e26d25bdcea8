package geom

import "math"

// GeographicDegreesPerMeter is the empirical factor used to approximate a
// meter-valued edge length in degrees when building search boxes around
// geographic points. It is a coarse linear approximation valid only for
// small regions away from the poles and the antimeridian.
const GeographicDegreesPerMeter = 1.0 / 200000

// Box is an axis-aligned box (2D) or cube (3D) spanned by a minimum and a
// maximum corner of the same flavor and dimension.
type Box struct {
	Min Point
	Max Point
}

// SearchBox returns the axis-aligned box spanning center ± halfEdge in each
// dimension. For geographic centers halfEdge is interpreted in meters and
// scaled by GeographicDegreesPerMeter before the corners are built.
func SearchBox(center Point, halfEdge float64) Box {
	return searchBox(center, halfEdge, GeographicDegreesPerMeter)
}

func searchBox(center Point, halfEdge, degreesPerMeter float64) Box {
	if center.Flavor() == Geographic {
		halfEdge *= degreesPerMeter
	}
	min, max := center, center
	for i := 0; i < center.dim; i++ {
		min.coords[i] -= halfEdge
		max.coords[i] += halfEdge
	}
	return Box{Min: min, Max: max}
}

// ContainsPoint reports whether p lies inside the box or on its boundary.
func (b Box) ContainsPoint(p Point) bool {
	for i := 0; i < b.Min.dim; i++ {
		if p.coords[i] < b.Min.coords[i] || p.coords[i] > b.Max.coords[i] {
			return false
		}
	}
	return true
}

// IntersectsSegment reports whether s touches or crosses the box. The test
// clips the segment's parametric range against each axis slab, so segments
// with both endpoints outside the box are still detected when they pass
// through it.
func (b Box) IntersectsSegment(s Segment) bool {
	if b.ContainsPoint(s.First) || b.ContainsPoint(s.Second) {
		return true
	}

	tMin, tMax := 0.0, 1.0
	for i := 0; i < b.Min.dim; i++ {
		start := s.First.coords[i]
		delta := s.Second.coords[i] - start
		if delta == 0 {
			if start < b.Min.coords[i] || start > b.Max.coords[i] {
				return false
			}
			continue
		}
		t0 := (b.Min.coords[i] - start) / delta
		t1 := (b.Max.coords[i] - start) / delta
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// DistanceTo returns the distance from p to the nearest point of the box
// under the flavor's distance strategy, or 0 when p is inside.
func (b Box) DistanceTo(p Point) float64 {
	nearest := p
	for i := 0; i < b.Min.dim; i++ {
		nearest.coords[i] = math.Max(b.Min.coords[i], math.Min(b.Max.coords[i], p.coords[i]))
	}
	return Distance(p, nearest)
}

var _ PointDistancer = Box{}
