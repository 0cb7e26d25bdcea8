// Package geomjson converts between geom values and paulmach/orb
// geometries, giving 2D shapes a GeoJSON interchange path.
//
// orb geometries are two-dimensional and carry no coordinate-system flavor,
// so conversions to orb reject 3D inputs and conversions from orb require
// the caller to state the flavor.
package geomjson

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"github.com/NERVsystems/simplegeom/pkg/geom"
)

// ErrNotTwoDimensional is returned when converting a 3D geometry to an orb
// representation.
var ErrNotTwoDimensional = errors.New("geomjson: only 2D geometries have an orb representation")

// ToOrbPoint converts a 2D point to an orb.Point.
func ToOrbPoint(p geom.Point) (orb.Point, error) {
	if p.Dim() != 2 {
		return orb.Point{}, errors.Wrapf(ErrNotTwoDimensional, "point has %d dimensions", p.Dim())
	}
	return orb.Point{p.X(), p.Y()}, nil
}

// FromOrbPoint converts an orb.Point to a point of the given flavor.
func FromOrbPoint(p orb.Point, flavor geom.Flavor) geom.Point {
	if flavor == geom.Geographic {
		return geom.NewGeographic(p[0], p[1])
	}
	return geom.NewPlanar(p[0], p[1])
}

// ToOrbLineString converts a 2D polyline to an orb.LineString.
func ToOrbLineString(l geom.Polyline) (orb.LineString, error) {
	ls := make(orb.LineString, 0, len(l))
	for i, p := range l {
		op, err := ToOrbPoint(p)
		if err != nil {
			return nil, errors.Wrapf(err, "vertex %d", i)
		}
		ls = append(ls, op)
	}
	return ls, nil
}

// FromOrbLineString converts an orb.LineString to a polyline of the given
// flavor.
func FromOrbLineString(ls orb.LineString, flavor geom.Flavor) geom.Polyline {
	line := make(geom.Polyline, 0, len(ls))
	for _, p := range ls {
		line = append(line, FromOrbPoint(p, flavor))
	}
	return line
}

// ToOrbBound converts a 2D box to an orb.Bound.
func ToOrbBound(b geom.Box) (orb.Bound, error) {
	min, err := ToOrbPoint(b.Min)
	if err != nil {
		return orb.Bound{}, errors.Wrap(err, "min corner")
	}
	max, err := ToOrbPoint(b.Max)
	if err != nil {
		return orb.Bound{}, errors.Wrap(err, "max corner")
	}
	return orb.Bound{Min: min, Max: max}, nil
}

// FromOrbBound converts an orb.Bound to a box of the given flavor.
func FromOrbBound(b orb.Bound, flavor geom.Flavor) geom.Box {
	return geom.Box{
		Min: FromOrbPoint(b.Min, flavor),
		Max: FromOrbPoint(b.Max, flavor),
	}
}

// DecodePoint parses a GeoJSON Point geometry into a point of the given
// flavor.
func DecodePoint(data []byte, flavor geom.Flavor) (geom.Point, error) {
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "could not parse GeoJSON geometry")
	}
	p, ok := g.Geometry().(orb.Point)
	if !ok {
		return geom.Point{}, errors.Errorf("geomjson: expected a Point geometry, got %s", g.Type)
	}
	return FromOrbPoint(p, flavor), nil
}

// DecodePolyline parses a GeoJSON LineString geometry into a polyline of
// the given flavor.
func DecodePolyline(data []byte, flavor geom.Flavor) (geom.Polyline, error) {
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse GeoJSON geometry")
	}
	ls, ok := g.Geometry().(orb.LineString)
	if !ok {
		return nil, errors.Errorf("geomjson: expected a LineString geometry, got %s", g.Type)
	}
	return FromOrbLineString(ls, flavor), nil
}
