// Package geo provides the geometry behind a danger map: incident
// centroids, pairwise segments between incidents and distance-based
// classification of homes against a danger zone.
package geo

import (
	"github.com/kass/go-danger-map/pkg/models"
	"github.com/rotisserie/eris"
)

// ErrNoPoints is returned when a centroid is requested for no points
var ErrNoPoints = eris.New("geo: no points")

// Centroid returns the arithmetic mean of latitudes and longitudes.
// This is a flat average, only meaningful for small local clusters
// away from the poles and the antimeridian.
func Centroid(points []models.Location) (models.Location, error) {
	if len(points) == 0 {
		return models.Location{}, ErrNoPoints
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}

	n := float64(len(points))
	return models.Location{Lat: sumLat / n, Lon: sumLon / n}, nil
}

// Pairs returns every ordered pair (i, j) with i != j in row-major order.
// Both directions are present, n*(n-1) pairs in total.
func Pairs(points []models.Location) []models.Pair {
	n := len(points)
	if n < 2 {
		return nil
	}

	pairs := make([]models.Pair, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				pairs = append(pairs, models.Pair{From: points[i], To: points[j]})
			}
		}
	}
	return pairs
}

// UniquePairs returns each unordered pair once (i < j), n*(n-1)/2 in total
func UniquePairs(points []models.Location) []models.Pair {
	n := len(points)
	if n < 2 {
		return nil
	}

	pairs := make([]models.Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, models.Pair{From: points[i], To: points[j]})
		}
	}
	return pairs
}
