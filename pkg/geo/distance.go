package geo

import (
	"strings"

	"github.com/kass/go-danger-map/pkg/models"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/rotisserie/eris"
	"github.com/tidwall/geodesic"
)

// DistanceFunc returns the distance between two locations in meters
type DistanceFunc func(a, b models.Location) float64

// Distance model names accepted by ParseDistanceModel
const (
	ModelEllipsoidal = "ellipsoidal"
	ModelSpherical   = "spherical"
)

// Distance returns the geodesic distance in meters on the WGS84 ellipsoid
func Distance(a, b models.Location) float64 {
	var s12 float64
	geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &s12, nil, nil)
	return s12
}

// SphericalDistance returns the great-circle distance in meters on a sphere
func SphericalDistance(a, b models.Location) float64 {
	return orbgeo.Distance(ToPoint(a), ToPoint(b))
}

// Destination returns the location reached by travelling meters along
// the given bearing (degrees clockwise from north) on the WGS84 ellipsoid.
func Destination(from models.Location, bearing, meters float64) models.Location {
	var lat, lon float64
	geodesic.WGS84.Direct(from.Lat, from.Lon, bearing, meters, &lat, &lon, nil)
	return models.Location{Lat: lat, Lon: lon}
}

// ParseDistanceModel resolves a model name to its distance function.
// An empty name selects the ellipsoidal model.
func ParseDistanceModel(name string) (DistanceFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ModelEllipsoidal:
		return Distance, nil
	case ModelSpherical:
		return SphericalDistance, nil
	default:
		return nil, eris.Errorf("geo: unknown distance model %q", name)
	}
}

// ToPoint converts a location to an orb point (lon, lat order)
func ToPoint(l models.Location) orb.Point {
	return orb.Point{l.Lon, l.Lat}
}
