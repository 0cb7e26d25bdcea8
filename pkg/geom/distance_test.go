package geom

import (
	"math"
	"testing"
)

// almostEqual reports whether two values agree within an absolute tolerance.
func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// haversine is the great-circle reference used to sanity-check the
// ellipsoidal distances; geodesic and great-circle lengths never differ by
// more than roughly 0.56%.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000.0
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return earthRadius * 2 * math.Asin(math.Sqrt(a))
}

func TestPlanarDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected float64
	}{
		{
			name:     "same point",
			a:        NewPlanar(3, 4),
			b:        NewPlanar(3, 4),
			expected: 0,
		},
		{
			name:     "2D diagonal",
			a:        NewPlanar(0.5, 0.5),
			b:        NewPlanar(2, 2),
			expected: 2.1213203436,
		},
		{
			name:     "3-4-5 triangle",
			a:        NewPlanar(0, 0),
			b:        NewPlanar(3, 4),
			expected: 5,
		},
		{
			name:     "3D",
			a:        NewPlanar3(1, 2, 3),
			b:        NewPlanar3(1, 2, 7),
			expected: 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.a, tc.b)
			if !almostEqual(got, tc.expected, 1e-9) {
				t.Errorf("Distance = %v, want %v", got, tc.expected)
			}
			if back := Distance(tc.b, tc.a); back != got {
				t.Errorf("distance not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestGeodesicDistance(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Point
		expected  float64
		tolerance float64 // meters
	}{
		{
			name:      "same point",
			a:         NewGeographic(-122.4194, 37.7749),
			b:         NewGeographic(-122.4194, 37.7749),
			expected:  0,
			tolerance: 1e-9,
		},
		{
			// Vincenty's original test line, Flinders Peak to Buninyong.
			name:      "Flinders Peak to Buninyong",
			a:         NewGeographic(144.424867889, -37.951033417),
			b:         NewGeographic(143.926495528, -37.652821139),
			expected:  54972.271,
			tolerance: 0.01,
		},
		{
			name:      "one degree along the equator",
			a:         NewGeographic(0, 0),
			b:         NewGeographic(1, 0),
			expected:  111319.491,
			tolerance: 0.01,
		},
		{
			name:      "one degree along the prime meridian",
			a:         NewGeographic(0, 0),
			b:         NewGeographic(0, 1),
			expected:  110574.39,
			tolerance: 0.5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.a, tc.b)
			if !almostEqual(got, tc.expected, tc.tolerance) {
				t.Errorf("Distance = %v, want %v ± %v", got, tc.expected, tc.tolerance)
			}
			if back := Distance(tc.b, tc.a); !almostEqual(back, got, 1e-6) {
				t.Errorf("distance not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestGeodesicAgainstGreatCircle(t *testing.T) {
	// The ellipsoidal distance must stay within the known worst-case
	// deviation from the spherical great-circle distance.
	pairs := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"SF to Oakland", 37.7749, -122.4194, 37.8044, -122.2712},
		{"SF to NYC", 37.7749, -122.4194, 40.7128, -74.0060},
		{"Berlin to Munich", 52.5200, 13.4050, 48.1351, 11.5820},
		{"Sydney to Perth", -33.8688, 151.2093, -31.9523, 115.8613},
	}

	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			geodesic := Distance(NewGeographic(tc.lon1, tc.lat1), NewGeographic(tc.lon2, tc.lat2))
			circle := haversine(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			if rel := math.Abs(geodesic-circle) / circle; rel > 0.006 {
				t.Errorf("geodesic %v deviates %.4f%% from great-circle %v", geodesic, rel*100, circle)
			}
		})
	}
}

func TestGeodesicIgnoresElevation(t *testing.T) {
	flat := Distance(NewGeographic(13.405, 52.52), NewGeographic(11.582, 48.1351))
	raised := Distance(NewGeographic3(13.405, 52.52, 1200), NewGeographic3(11.582, 48.1351, -50))
	if flat != raised {
		t.Errorf("3D geographic distance = %v, want horizontal-only %v", raised, flat)
	}
}

func TestStrategyFor(t *testing.T) {
	if _, ok := StrategyFor(Planar).(PlanarDistance); !ok {
		t.Errorf("StrategyFor(Planar) = %T, want PlanarDistance", StrategyFor(Planar))
	}
	if _, ok := StrategyFor(Geographic).(GeodesicDistance); !ok {
		t.Errorf("StrategyFor(Geographic) = %T, want GeodesicDistance", StrategyFor(Geographic))
	}

	// Forcing the planar strategy onto geographic points yields the chord
	// length in degrees.
	chord := PlanarDistance{}.Distance(NewGeographic(0, 0), NewGeographic(3, 4))
	if !almostEqual(chord, 5, 1e-9) {
		t.Errorf("forced planar distance = %v, want 5", chord)
	}
}

func BenchmarkGeodesicDistance(b *testing.B) {
	p1 := NewGeographic(-122.4194, 37.7749)
	p2 := NewGeographic(-74.0060, 40.7128)
	for i := 0; i < b.N; i++ {
		Distance(p1, p2)
	}
}

func BenchmarkPlanarDistance(b *testing.B) {
	p1 := NewPlanar3(0.5, 0.5, 0.5)
	p2 := NewPlanar3(2, 2, 2)
	for i := 0; i < b.N; i++ {
		Distance(p1, p2)
	}
}
