package dangermap

import "github.com/kass/go-danger-map/pkg/geo"

// Defaults applied to zero-valued Options fields
const (
	DefaultZoom        = 14.0
	DefaultSafeColor   = "green"
	DefaultDangerColor = "red"
	DefaultBorderColor = "crimson"
	DefaultFillColor   = "crimson"
	DefaultIconPath    = "./images/thief_3.png"
	DefaultIconSize    = 50
)

// Line and circle styling
const (
	segmentWeight     = 2.0
	segmentOpacity    = 0.7
	circleFillOpacity = 0.2
	centroidGlyph     = "point"
	homeGlyph         = "home"
)

// Options enumerates every recognised map option. Zero values fall
// back to the package defaults.
type Options struct {
	// Zoom is the initial Leaflet zoom level. Nil uses DefaultZoom;
	// use ZoomLevel(0) for the whole world.
	Zoom        *float64
	SafeColor   string
	DangerColor string
	BorderColor string
	FillColor   string

	// Labels are popup texts paired with incidents by position. Nil
	// means no popups; a list shorter than the incidents skips the
	// uncovered markers.
	Labels []string

	// DedupeSegments draws each incident pair once instead of in both
	// directions.
	DedupeSegments bool

	// DistanceModel is "ellipsoidal" (default) or "spherical".
	DistanceModel string

	IconPath string
	IconSize int

	TileURL     string
	Attribution string
}

// ZoomLevel returns an explicit zoom level for Options.Zoom
func ZoomLevel(z float64) *float64 {
	return &z
}

func (o Options) withDefaults() Options {
	if o.Zoom == nil {
		o.Zoom = ZoomLevel(DefaultZoom)
	}
	if o.SafeColor == "" {
		o.SafeColor = DefaultSafeColor
	}
	if o.DangerColor == "" {
		o.DangerColor = DefaultDangerColor
	}
	if o.BorderColor == "" {
		o.BorderColor = DefaultBorderColor
	}
	if o.FillColor == "" {
		o.FillColor = DefaultFillColor
	}
	if o.DistanceModel == "" {
		o.DistanceModel = geo.ModelEllipsoidal
	}
	if o.IconPath == "" {
		o.IconPath = DefaultIconPath
	}
	if o.IconSize <= 0 {
		o.IconSize = DefaultIconSize
	}
	return o
}
