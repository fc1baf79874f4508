// Package geo implements great-circle proximity on a spherical Earth.
package geo

import (
	"math"

	"zembil/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	// EarthRadiusKm is the mean Earth radius used for all distances.
	EarthRadiusKm = 6371.0

	// boundPadMeters absorbs coordinate rounding at the edge of a prefilter box.
	boundPadMeters = 50.0
)

type proximityCalculator struct{}

// NewProximityCalculator returns the law-of-cosines proximity calculator.
func NewProximityCalculator() service.ProximityCalculator {
	return &proximityCalculator{}
}

func (c *proximityCalculator) DistanceKm(from, to orb.Point) float64 {
	return DistanceKm(from, to)
}

// BoundAround returns a latitude/longitude box around center.
func (c *proximityCalculator) BoundAround(center orb.Point, radiusKm float64) (orb.Bound, bool) {
	return BoundAround(center, radiusKm)
}

// DistanceKm returns the great-circle distance between two points in kilometres using
// the spherical law of cosines. The cosine is clamped to [-1, 1] so antipodal points never
// yield NaN. Identical points return exactly 0: acos near 1 turns the cosine's rounding
// error into about 10 cm, which would drop a shop at the query point from a 0 km radius.
func DistanceKm(from, to orb.Point) float64 {
	if from.Equal(to) {
		return 0
	}

	phi1 := deg2rad(from.Lat())
	phi2 := deg2rad(to.Lat())
	deltaLambda := deg2rad(to.Lon() - from.Lon())

	cosine := math.Sin(phi1)*math.Sin(phi2) + math.Cos(phi1)*math.Cos(phi2)*math.Cos(deltaLambda)
	cosine = math.Max(-1, math.Min(1, cosine))

	return EarthRadiusKm * math.Acos(cosine)
}

// BoundAround returns a box containing every point within radiusKm of center.
// ok is false when the box wraps the antimeridian, covers a pole or cannot be computed.
func BoundAround(center orb.Point, radiusKm float64) (orb.Bound, bool) {
	if radiusKm < 0 || math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) {
		return orb.Bound{}, false
	}

	// orb works in meters on its own radius; scale so the angular distance matches EarthRadiusKm.
	meters := radiusKm * 1000 * orb.EarthRadius / (EarthRadiusKm * 1000)
	bound := geo.BoundPad(geo.NewBoundAroundPoint(center, meters), boundPadMeters)

	for _, v := range []float64{bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat()} {
		if math.IsNaN(v) {
			return orb.Bound{}, false
		}
	}

	if bound.Min.Lon() > bound.Max.Lon() {
		return orb.Bound{}, false
	}

	if bound.Min.Lon() <= -180 && bound.Max.Lon() >= 180 {
		return orb.Bound{}, false
	}

	return bound, true
}

// Within reports whether point lies within radiusKm of center, boundary included.
func Within(center, point orb.Point, radiusKm float64) bool {
	return DistanceKm(center, point) <= radiusKm
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180.0
}
