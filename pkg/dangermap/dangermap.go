// Package dangermap composes the danger map: it locates the incident
// centroid, draws incidents and the danger zone, and classifies homes.
package dangermap

import (
	"fmt"
	"math"

	"github.com/kass/go-danger-map/pkg/geo"
	"github.com/kass/go-danger-map/pkg/models"
	"github.com/kass/go-danger-map/pkg/render"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ErrInvalidRadius is returned for a negative or non-finite danger radius
var ErrInvalidRadius = eris.New("dangermap: radius must be a finite, non-negative number")

// MarkerStatus reports whether an incident marker was drawn
type MarkerStatus int

const (
	Rendered MarkerStatus = iota
	Skipped
)

func (s MarkerStatus) String() string {
	if s == Skipped {
		return "skipped"
	}
	return "rendered"
}

// MarkerOutcome is the result of drawing one incident marker
type MarkerOutcome struct {
	Index    int
	Incident models.Incident
	Status   MarkerStatus
	Reason   string
}

// Result holds everything a single build produced
type Result struct {
	Zone        models.DangerZone
	Canvas      *render.Canvas
	Markers     []MarkerOutcome
	Segments    int
	Assessments []geo.Assessment
}

// Skipped returns the incident markers that were not drawn
func (r *Result) Skipped() []MarkerOutcome {
	var out []MarkerOutcome
	for _, m := range r.Markers {
		if m.Status == Skipped {
			out = append(out, m)
		}
	}
	return out
}

// Dangerous counts homes classified inside the danger zone
func (r *Result) Dangerous() int {
	n := 0
	for _, a := range r.Assessments {
		if a.Safety == models.Dangerous {
			n++
		}
	}
	return n
}

// Build runs the pipeline: centroid, canvas, incident markers, danger
// zone and home classification. Nothing is written; export the canvas
// from the result.
func Build(incidents, homes []models.Location, radiusMeters float64, opts Options) (*Result, error) {
	log := zap.L().With(zap.String("component", "dangermap"))
	opts = opts.withDefaults()

	if radiusMeters < 0 || math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) {
		return nil, ErrInvalidRadius
	}

	distance, err := geo.ParseDistanceModel(opts.DistanceModel)
	if err != nil {
		return nil, err
	}

	center, err := geo.Centroid(incidents)
	if err != nil {
		return nil, eris.Wrap(err, "dangermap: locate incident centroid")
	}
	zone := models.DangerZone{Center: center, RadiusMeters: radiusMeters}

	canvas := render.NewCanvas(center, *opts.Zoom)
	canvas.SetTiles(render.Tiles{URL: opts.TileURL, Attribution: opts.Attribution})

	res := &Result{Zone: zone, Canvas: canvas}

	res.Markers = plotIncidents(canvas, incidents, opts)
	for _, m := range res.Skipped() {
		log.Warn("incident marker skipped",
			zap.Int("index", m.Index),
			zap.Int("incidents", len(incidents)),
			zap.Int("labels", len(opts.Labels)),
			zap.String("reason", m.Reason),
		)
	}

	res.Segments = plotDangerZone(canvas, incidents, zone, opts)

	classifier := geo.NewClassifier(zone, distance)
	res.Assessments = plotHomes(canvas, classifier, homes, opts)

	log.Debug("danger map built",
		zap.Stringer("center", center),
		zap.Float64("radius_m", radiusMeters),
		zap.Int("incidents", len(incidents)),
		zap.Int("segments", res.Segments),
		zap.Int("homes", len(homes)),
		zap.Int("dangerous", res.Dangerous()),
	)

	return res, nil
}

// plotIncidents draws one custom icon per incident. Labels are checked
// up front; an index the label list does not cover is skipped.
func plotIncidents(c *render.Canvas, incidents []models.Location, opts Options) []MarkerOutcome {
	icon := render.ImageIcon(opts.IconPath, opts.IconSize)
	out := make([]MarkerOutcome, len(incidents))

	for i, loc := range incidents {
		outcome := MarkerOutcome{Index: i, Incident: models.Incident{Location: loc}}

		if opts.Labels != nil {
			if i >= len(opts.Labels) {
				outcome.Status = Skipped
				outcome.Reason = fmt.Sprintf("no label for incident %d: %d labels for %d incidents",
					i, len(opts.Labels), len(incidents))
				out[i] = outcome
				continue
			}
			outcome.Incident.Label = opts.Labels[i]
		}

		c.AddMarker(render.Marker{Location: loc, Icon: icon, Popup: outcome.Incident.Label})
		outcome.Status = Rendered
		out[i] = outcome
	}

	return out
}

// plotDangerZone draws the centroid marker, the radius circle and one
// segment per incident pair. It returns the number of segments.
func plotDangerZone(c *render.Canvas, incidents []models.Location, zone models.DangerZone, opts Options) int {
	c.AddMarker(render.Marker{
		Location: zone.Center,
		Icon:     render.GlyphIcon(opts.DangerColor, centroidGlyph),
	})

	c.AddCircle(render.Circle{
		Center:       zone.Center,
		RadiusMeters: zone.RadiusMeters,
		Color:        opts.BorderColor,
		FillColor:    opts.FillColor,
		Fill:         true,
		FillOpacity:  circleFillOpacity,
	})

	var pairs []models.Pair
	if opts.DedupeSegments {
		pairs = geo.UniquePairs(incidents)
	} else {
		pairs = geo.Pairs(incidents)
	}
	if len(pairs) == 0 {
		return 0
	}

	segments := make([][]models.Location, len(pairs))
	for i, p := range pairs {
		segments[i] = []models.Location{p.From, p.To}
	}
	c.AddPolyLine(render.PolyLine{
		Segments: segments,
		Color:    opts.DangerColor,
		Weight:   segmentWeight,
		Opacity:  segmentOpacity,
	})

	return len(segments)
}

// plotHomes classifies each home and draws it in the safe or danger color
func plotHomes(c *render.Canvas, classifier *geo.Classifier, homes []models.Location, opts Options) []geo.Assessment {
	out := make([]geo.Assessment, len(homes))

	for i, loc := range homes {
		a := classifier.Classify(models.Home{Location: loc})

		color := opts.SafeColor
		if a.Safety == models.Dangerous {
			color = opts.DangerColor
		}
		c.AddMarker(render.Marker{Location: loc, Icon: render.GlyphIcon(color, homeGlyph)})

		out[i] = a
	}

	return out
}
