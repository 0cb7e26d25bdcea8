package geom

import "math"

// WGS-84 ellipsoid parameters.
const (
	wgs84MajorAxis  = 6378137.0
	wgs84Flattening = 1 / 298.257223563
	wgs84MinorAxis  = wgs84MajorAxis * (1 - wgs84Flattening)
)

const (
	toRadians = math.Pi / 180

	// Convergence threshold and iteration cap for the inverse problem.
	// Nearly antipodal points may not converge; the estimate after the
	// final iteration is returned in that case.
	vincentyTolerance     = 1e-12
	vincentyMaxIterations = 200
)

// vincentyInverse solves the geodesic inverse problem on the WGS-84
// ellipsoid, returning the distance in meters between two
// latitude/longitude pairs given in degrees.
func vincentyInverse(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	// Reduced latitudes and longitude difference on the auxiliary sphere.
	u1 := math.Atan((1 - wgs84Flattening) * math.Tan(lat1*toRadians))
	u2 := math.Atan((1 - wgs84Flattening) * math.Tan(lat2*toRadians))
	l := (lon2 - lon1) * toRadians

	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	var (
		lambda               = l
		sinSigma, cosSigma   float64
		sigma                float64
		cosSqAlpha, cos2Sigm float64
	)
	for i := 0; i < vincentyMaxIterations; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)
		dx := cosU2 * sinLambda
		dy := cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma = math.Sqrt(dx*dx + dy*dy)
		if sinSigma == 0 {
			// Coincident points.
			return 0
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha == 0 {
			// Both points on the equator.
			cos2Sigm = 0
		} else {
			cos2Sigm = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		c := wgs84Flattening / 16 * cosSqAlpha * (4 + wgs84Flattening*(4-3*cosSqAlpha))
		prev := lambda
		lambda = l + (1-c)*wgs84Flattening*sinAlpha*
			(sigma+c*sinSigma*(cos2Sigm+c*cosSigma*(-1+2*cos2Sigm*cos2Sigm)))
		if math.Abs(lambda-prev) < vincentyTolerance {
			break
		}
	}

	uSq := cosSqAlpha * (wgs84MajorAxis*wgs84MajorAxis - wgs84MinorAxis*wgs84MinorAxis) /
		(wgs84MinorAxis * wgs84MinorAxis)
	a := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	b := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := b * sinSigma * (cos2Sigm + b/4*
		(cosSigma*(-1+2*cos2Sigm*cos2Sigm)-
			b/6*cos2Sigm*(-3+4*sinSigma*sinSigma)*(-3+4*cos2Sigm*cos2Sigm)))

	return wgs84MinorAxis * a * (sigma - deltaSigma)
}
