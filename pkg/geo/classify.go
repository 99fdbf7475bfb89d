package geo

import "github.com/kass/go-danger-map/pkg/models"

// Classify returns Dangerous when distance is within radius (inclusive)
func Classify(distanceMeters, radiusMeters float64) models.Safety {
	if distanceMeters <= radiusMeters {
		return models.Dangerous
	}
	return models.Safe
}

// Assessment is the classification of a single home
type Assessment struct {
	Home           models.Home   `json:"home"`
	DistanceMeters float64       `json:"distance_meters"`
	Safety         models.Safety `json:"safety"`
}

// Classifier evaluates homes against a danger zone
type Classifier struct {
	zone     models.DangerZone
	distance DistanceFunc
}

// NewClassifier creates a classifier. A nil distance uses Distance.
func NewClassifier(zone models.DangerZone, distance DistanceFunc) *Classifier {
	if distance == nil {
		distance = Distance
	}
	return &Classifier{zone: zone, distance: distance}
}

// Zone returns the danger zone the classifier evaluates against
func (c *Classifier) Zone() models.DangerZone {
	return c.zone
}

// Classify measures a single home against the zone center
func (c *Classifier) Classify(home models.Home) Assessment {
	d := c.distance(home.Location, c.zone.Center)
	return Assessment{
		Home:           home,
		DistanceMeters: d,
		Safety:         Classify(d, c.zone.RadiusMeters),
	}
}

// ClassifyAll evaluates homes in order, each independently
func (c *Classifier) ClassifyAll(homes []models.Home) []Assessment {
	out := make([]Assessment, len(homes))
	for i, h := range homes {
		out[i] = c.Classify(h)
	}
	return out
}
