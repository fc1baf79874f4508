package service

import "github.com/paulmach/orb"

// ProximityCalculator computes great-circle distances on the Earth sphere.
type ProximityCalculator interface {
	// DistanceKm returns the distance between two points in kilometres.
	DistanceKm(from, to orb.Point) float64

	// BoundAround returns a box containing every point within radiusKm of center.
	// ok is false when the box would cross the antimeridian or a pole.
	BoundAround(center orb.Point, radiusKm float64) (bound orb.Bound, ok bool)
}
