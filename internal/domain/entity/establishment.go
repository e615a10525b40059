// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/paulmach/orb"
)

// Rating bounds. Zero doubles as the unrated sentinel.
const (
	MinRating = 0
	MaxRating = 5
)

// Establishment is one food-hygiene inspection record after normalisation.
// Values are never mutated once built; filtered views hold copies.
type Establishment struct {
	ID             string       // FHRSID, or "pos-<position>" when the source omits it.
	Name           string       // Display name.
	BusinessType   string       // Category label matched exactly by the type filter.
	Rating         int          // 0..5, 0 when unrated or unparseable.
	RawRating      string       // Source rating text, e.g. "5" or "AwaitingInspection".
	Address        string       // Non-empty address lines and postcode joined by ", ".
	Coordinates    *Coordinates // Nil when the source has no usable position.
	InspectionDate string       // Raw rating date as found in the source, may be empty.
	Scores         *Scores      // Nil when the source carries no breakdown.
	SearchBlob     string       // Lowercase "name type rawRating".
}

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Point returns the position in orb's lng/lat order.
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Scores is the inspection breakdown, each part 0..5 as published.
type Scores struct {
	Hygiene              int
	Structural           int
	ManagementConfidence int
}

// HasCoordinates reports whether the establishment can be placed on the map.
func (e *Establishment) HasCoordinates() bool {
	return e.Coordinates != nil
}
