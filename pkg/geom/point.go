// Package geom provides simple geometric primitives and the distance and
// projection calculations needed for map-matching style nearest-point
// queries, such as snapping a GPS fix to a route.
//
// All types are plain values and all operations are pure functions of their
// inputs, so values may be shared freely across goroutines. Operands of any
// pairwise operation must share the same flavor and dimension; combining
// mismatched points is a contract violation and is not checked at runtime.
package geom

import (
	"github.com/pkg/errors"
)

// Flavor identifies the coordinate system a point belongs to. It selects
// the distance strategy and the text formatting precision at runtime.
type Flavor int

const (
	// Planar points are Cartesian coordinates in arbitrary linear units.
	Planar Flavor = iota

	// Geographic points are WGS-84 longitude/latitude in degrees, with an
	// optional third component treated as a planar elevation.
	Geographic
)

// String returns the flavor name.
func (f Flavor) String() string {
	switch f {
	case Planar:
		return "planar"
	case Geographic:
		return "geographic"
	default:
		return "unknown"
	}
}

// ErrInvalidDimension is returned when constructing a point with a
// coordinate count other than 2 or 3.
var ErrInvalidDimension = errors.New("geom: point dimension must be 2 or 3")

// Point is an immutable 2D or 3D coordinate tuple with a coordinate-system
// flavor. A point has no identity beyond its coordinates; the zero Point is
// not valid, use one of the constructors.
//
// Geographic points order their coordinates (longitude, latitude) in
// degrees, following the axis order used by GeoJSON and WKT.
type Point struct {
	coords [3]float64
	dim    int
	flavor Flavor
}

// NewPoint returns a point of the given flavor from 2 or 3 coordinates.
// Any other coordinate count yields ErrInvalidDimension.
func NewPoint(flavor Flavor, coords ...float64) (Point, error) {
	if len(coords) != 2 && len(coords) != 3 {
		return Point{}, errors.Wrapf(ErrInvalidDimension, "got %d coordinates", len(coords))
	}
	p := Point{dim: len(coords), flavor: flavor}
	copy(p.coords[:], coords)
	return p, nil
}

// NewPlanar returns a 2D planar point.
func NewPlanar(x, y float64) Point {
	return Point{coords: [3]float64{x, y}, dim: 2, flavor: Planar}
}

// NewPlanar3 returns a 3D planar point.
func NewPlanar3(x, y, z float64) Point {
	return Point{coords: [3]float64{x, y, z}, dim: 3, flavor: Planar}
}

// NewGeographic returns a 2D geographic point from longitude and latitude
// in degrees.
func NewGeographic(lon, lat float64) Point {
	return Point{coords: [3]float64{lon, lat}, dim: 2, flavor: Geographic}
}

// NewGeographic3 returns a 3D geographic point. The elevation component is
// carried through planar arithmetic but does not participate in geodesic
// distances.
func NewGeographic3(lon, lat, elevation float64) Point {
	return Point{coords: [3]float64{lon, lat, elevation}, dim: 3, flavor: Geographic}
}

// Flavor returns the point's coordinate-system flavor.
func (p Point) Flavor() Flavor { return p.flavor }

// Dim returns the number of coordinates, 2 or 3.
func (p Point) Dim() int { return p.dim }

// Coord returns the i-th coordinate. Indexes at or beyond Dim return 0.
func (p Point) Coord(i int) float64 {
	if i < 0 || i >= p.dim {
		return 0
	}
	return p.coords[i]
}

// X returns the first coordinate (longitude for geographic points).
func (p Point) X() float64 { return p.coords[0] }

// Y returns the second coordinate (latitude for geographic points).
func (p Point) Y() float64 { return p.coords[1] }

// Z returns the third coordinate, or 0 for 2D points.
func (p Point) Z() float64 { return p.coords[2] }
