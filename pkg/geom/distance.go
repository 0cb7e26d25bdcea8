package geom

import "math"

// DistanceStrategy computes the distance between two points that share a
// flavor and dimension. Strategies are stateless and safe for concurrent
// use.
type DistanceStrategy interface {
	Distance(a, b Point) float64
}

// PointDistancer is implemented by geometries that can report the distance
// from themselves to a point of matching flavor and dimension.
type PointDistancer interface {
	DistanceTo(p Point) float64
}

// PlanarDistance is the Euclidean norm of the coordinate difference over
// all shared dimensions.
type PlanarDistance struct{}

// Distance implements DistanceStrategy.
func (PlanarDistance) Distance(a, b Point) float64 {
	var sum float64
	for i := 0; i < a.Dim(); i++ {
		d := a.Coord(i) - b.Coord(i)
		sum += d * d
	}
	return math.Sqrt(sum)
}

// GeodesicDistance computes the ellipsoidal distance between two geographic
// points on WGS-84 using Vincenty's inverse algorithm, in meters.
//
// Only the horizontal components participate: a 3D geographic point's
// elevation is ignored, so the result for 3D inputs equals the result for
// their 2D projections. This mirrors the reference behavior and is a known
// simplification.
type GeodesicDistance struct{}

// Distance implements DistanceStrategy.
func (GeodesicDistance) Distance(a, b Point) float64 {
	return vincentyInverse(a.Y(), a.X(), b.Y(), b.X())
}

// StrategyFor returns the distance strategy matching a flavor: Vincenty
// geodesic for Geographic, Euclidean for everything else.
func StrategyFor(f Flavor) DistanceStrategy {
	if f == Geographic {
		return GeodesicDistance{}
	}
	return PlanarDistance{}
}

// Distance returns the distance between two points of the same flavor and
// dimension, in meters for geographic points and native units otherwise.
func Distance(a, b Point) float64 {
	return StrategyFor(a.Flavor()).Distance(a, b)
}
