package entity

import "github.com/paulmach/orb"

// Location is a point on the map that hosts at most one shop.
type Location struct {
	ID          uint    `json:"id"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	Description string  `json:"locationName"`
}

// Point returns the location as an orb point (longitude first).
func (l *Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}
