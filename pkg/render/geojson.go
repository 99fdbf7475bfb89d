package render

import (
	"io"

	"github.com/kass/go-danger-map/pkg/geo"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rotisserie/eris"
)

var _ Renderer = GeoJSONRenderer{}

// GeoJSONRenderer writes a canvas as a GeoJSON FeatureCollection. Circles
// become points carrying a radius property.
type GeoJSONRenderer struct{}

// Render encodes every command as one feature, in draw order
func (GeoJSONRenderer) Render(w io.Writer, c *Canvas) error {
	fc := geojson.NewFeatureCollection()

	for _, cmd := range c.Commands() {
		f, err := toFeature(cmd)
		if err != nil {
			return err
		}
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return eris.Wrap(err, "render: marshal geojson")
	}
	if _, err := w.Write(data); err != nil {
		return eris.Wrap(err, "render: write geojson")
	}
	return nil
}

func toFeature(cmd Command) (*geojson.Feature, error) {
	switch v := cmd.(type) {
	case Marker:
		f := geojson.NewFeature(geo.ToPoint(v.Location))
		f.Properties["kind"] = v.Kind()
		if v.Icon.Kind == IconImage {
			f.Properties["icon"] = v.Icon.URL
		} else {
			f.Properties["color"] = v.Icon.Color
			f.Properties["glyph"] = v.Icon.Glyph
		}
		if v.Popup != "" {
			f.Properties["popup"] = v.Popup
		}
		return f, nil
	case Circle:
		f := geojson.NewFeature(geo.ToPoint(v.Center))
		f.Properties["kind"] = v.Kind()
		f.Properties["radius"] = v.RadiusMeters
		f.Properties["color"] = v.Color
		f.Properties["fill_color"] = v.FillColor
		return f, nil
	case PolyLine:
		mls := make(orb.MultiLineString, len(v.Segments))
		for i, s := range v.Segments {
			ls := make(orb.LineString, len(s))
			for j, l := range s {
				ls[j] = geo.ToPoint(l)
			}
			mls[i] = ls
		}
		f := geojson.NewFeature(mls)
		f.Properties["kind"] = v.Kind()
		f.Properties["color"] = v.Color
		f.Properties["weight"] = v.Weight
		f.Properties["opacity"] = v.Opacity
		return f, nil
	default:
		return nil, eris.Errorf("render: unsupported command %T", cmd)
	}
}
