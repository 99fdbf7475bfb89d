package models

import "fmt"

// Location represents a geographic location with latitude and longitude
type Location struct {
	Lat float64 `json:"lat" yaml:"lat" mapstructure:"lat"`
	Lon float64 `json:"lon" yaml:"lon" mapstructure:"lon"`
}

func (l Location) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", l.Lat, l.Lon)
}

// Incident is a robbery location with an optional street label
type Incident struct {
	Location Location `json:"location"`
	Label    string   `json:"label,omitempty"`
}

// Home is a home location evaluated against a danger zone
type Home struct {
	Location Location `json:"location"`
}

// Safety is the classification of a home relative to a danger zone
type Safety int

const (
	Safe Safety = iota
	Dangerous
)

func (s Safety) String() string {
	if s == Dangerous {
		return "dangerous"
	}
	return "safe"
}

// DangerZone is the incident centroid plus a radius in meters
type DangerZone struct {
	Center       Location `json:"center"`
	RadiusMeters float64  `json:"radius_meters"`
}

// Pair is an ordered pair of locations joined by a line segment
type Pair struct {
	From Location
	To   Location
}
