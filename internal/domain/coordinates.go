package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Rect is a geographic rectangle given by its north-east and south-west corners.
type Rect struct {
	High Coordinates
	Low  Coordinates
}

// SearchRect returns the rectangle used to restrict candidate searches
// around an anchor: corners sit at the given distance along bearings 45
// (north-east) and 225 (south-west) degrees.
func SearchRect(anchor Coordinates, distanceMeters float64) Rect {
	p := orb.Point{anchor.Lon, anchor.Lat}
	ne := geo.PointAtBearingAndDistance(p, 45, distanceMeters)
	sw := geo.PointAtBearingAndDistance(p, 225, distanceMeters)

	return Rect{
		High: Coordinates{Lon: ne.Lon(), Lat: ne.Lat()},
		Low:  Coordinates{Lon: sw.Lon(), Lat: sw.Lat()},
	}
}
