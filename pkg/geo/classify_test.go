package geo

import (
	"testing"

	"github.com/kass/go-danger-map/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		radius   float64
		expected models.Safety
	}{
		{name: "at center", distance: 0, radius: 950, expected: models.Dangerous},
		{name: "inside", distance: 500, radius: 950, expected: models.Dangerous},
		{name: "at threshold", distance: 950, radius: 950, expected: models.Dangerous},
		{name: "just past threshold", distance: 950.000001, radius: 950, expected: models.Safe},
		{name: "far away", distance: 5000, radius: 950, expected: models.Safe},
		{name: "zero radius at center", distance: 0, radius: 0, expected: models.Dangerous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.distance, tt.radius))
		})
	}
}

func TestClassifierScenario(t *testing.T) {
	center, err := Centroid([]models.Location{
		{Lat: 40.3507, Lon: -3.8193},
		{Lat: 40.3493, Lon: -3.8061},
	})
	require.NoError(t, err)

	c := NewClassifier(models.DangerZone{Center: center, RadiusMeters: 950}, nil)
	assert.Equal(t, center, c.Zone().Center)

	atCenter := c.Classify(models.Home{Location: center})
	assert.Equal(t, models.Dangerous, atCenter.Safety)
	assert.InDelta(t, 0, atCenter.DistanceMeters, 1e-6)

	far := Destination(center, 45, 5000)
	farAway := c.Classify(models.Home{Location: far})
	assert.Equal(t, models.Safe, farAway.Safety)
	assert.InDelta(t, 5000, farAway.DistanceMeters, 1e-3)
}

func TestClassifierBoundaryIsInclusive(t *testing.T) {
	zone := models.DangerZone{Center: models.Location{Lat: 10, Lon: 10}, RadiusMeters: 950}

	exact := NewClassifier(zone, func(a, b models.Location) float64 { return 950 })
	assert.Equal(t, models.Dangerous, exact.Classify(models.Home{}).Safety)

	beyond := NewClassifier(zone, func(a, b models.Location) float64 { return 950 + 1e-9 })
	assert.Equal(t, models.Safe, beyond.Classify(models.Home{}).Safety)
}

func TestClassifyAllKeepsOrder(t *testing.T) {
	center := models.Location{Lat: 40.35, Lon: -3.81}
	c := NewClassifier(models.DangerZone{Center: center, RadiusMeters: 1000}, nil)

	homes := []models.Home{
		{Location: Destination(center, 0, 200)},
		{Location: Destination(center, 90, 3000)},
		{Location: center},
	}

	got := c.ClassifyAll(homes)
	require.Len(t, got, 3)
	assert.Equal(t, models.Dangerous, got[0].Safety)
	assert.Equal(t, models.Safe, got[1].Safety)
	assert.Equal(t, models.Dangerous, got[2].Safety)
	assert.Equal(t, homes[1], got[1].Home)
}

func TestDistanceModels(t *testing.T) {
	a := models.Location{Lat: 0, Lon: 0}
	b := models.Location{Lat: 1, Lon: 0}

	// One degree of latitude at the equator
	assert.InDelta(t, 110574.4, Distance(a, b), 1.0)
	assert.InDelta(t, 111319.5, SphericalDistance(a, b), 1.0)
	assert.Zero(t, Distance(a, a))
}

func TestParseDistanceModel(t *testing.T) {
	a := models.Location{Lat: 40.35, Lon: -3.81}
	b := models.Location{Lat: 40.36, Lon: -3.80}

	fn, err := ParseDistanceModel("")
	require.NoError(t, err)
	assert.Equal(t, Distance(a, b), fn(a, b))

	fn, err = ParseDistanceModel("Spherical")
	require.NoError(t, err)
	assert.Equal(t, SphericalDistance(a, b), fn(a, b))

	_, err = ParseDistanceModel("flat")
	assert.Error(t, err)
}

func TestSafetyString(t *testing.T) {
	assert.Equal(t, "safe", models.Safe.String())
	assert.Equal(t, "dangerous", models.Dangerous.String())
}
