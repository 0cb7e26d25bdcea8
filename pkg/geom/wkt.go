package geom

import "strconv"

// WKTMarshaler is implemented by geometries that can render themselves as
// Well-Known Text.
type WKTMarshaler interface {
	MarshalWKT() string
}

// wktPrecision returns the fixed-point precision used for a flavor's
// coordinates: 7 decimals for geographic points, 2 for everything else.
func wktPrecision(f Flavor) int {
	if f == Geographic {
		return 7
	}
	return 2
}

func appendWKTPoint(dst []byte, p Point, precision int) []byte {
	for i := 0; i < p.dim; i++ {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = strconv.AppendFloat(dst, p.coords[i], 'f', precision, 64)
	}
	return dst
}

func appendWKTPoints(dst []byte, points []Point, precision int) []byte {
	for i, p := range points {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendWKTPoint(dst, p, precision)
	}
	return dst
}

// MarshalWKT formats the point as WKT, e.g. "POINT(2.00 2.00)" for a planar
// point and "POINT(2.0000000 2.0000000)" for a geographic one.
func (p Point) MarshalWKT() string {
	dst := append([]byte("POINT("), appendWKTPoint(nil, p, wktPrecision(p.flavor))...)
	return string(append(dst, ')'))
}

// MarshalWKT formats the segment as a two-point LINESTRING. WKT has no
// segment type of its own.
func (s Segment) MarshalWKT() string {
	dst := appendWKTPoints([]byte("LINESTRING("), []Point{s.First, s.Second}, wktPrecision(s.First.flavor))
	return string(append(dst, ')'))
}

// MarshalWKT formats the polyline as a LINESTRING. An empty polyline
// renders as "LINESTRING()".
func (l Polyline) MarshalWKT() string {
	var precision int
	if len(l) > 0 {
		precision = wktPrecision(l[0].flavor)
	}
	dst := appendWKTPoints([]byte("LINESTRING("), l, precision)
	return string(append(dst, ')'))
}

// MarshalWKT formats the box as a closed POLYGON ring over the horizontal
// corner coordinates, starting and ending at the minimum corner.
func (b Box) MarshalWKT() string {
	precision := wktPrecision(b.Min.flavor)
	minX, minY := b.Min.X(), b.Min.Y()
	maxX, maxY := b.Max.X(), b.Max.Y()
	ring := []Point{
		{coords: [3]float64{minX, minY}, dim: 2, flavor: b.Min.flavor},
		{coords: [3]float64{minX, maxY}, dim: 2, flavor: b.Min.flavor},
		{coords: [3]float64{maxX, maxY}, dim: 2, flavor: b.Min.flavor},
		{coords: [3]float64{maxX, minY}, dim: 2, flavor: b.Min.flavor},
		{coords: [3]float64{minX, minY}, dim: 2, flavor: b.Min.flavor},
	}
	dst := appendWKTPoints([]byte("POLYGON(("), ring, precision)
	return string(append(dst, ')', ')'))
}

var (
	_ WKTMarshaler = Point{}
	_ WKTMarshaler = Segment{}
	_ WKTMarshaler = Polyline{}
	_ WKTMarshaler = Box{}
)
