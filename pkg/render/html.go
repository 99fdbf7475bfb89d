package render

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"

	"github.com/kass/go-danger-map/pkg/models"
	"github.com/rotisserie/eris"
)

//go:embed map.html.tmpl
var mapTemplate string

var pageTemplate = template.Must(template.New("map").Parse(mapTemplate))

// DefaultTitle is the page title of a rendered map
const DefaultTitle = "Danger map"

var _ Renderer = HTMLRenderer{}

// HTMLRenderer writes a canvas as a standalone Leaflet page
type HTMLRenderer struct {
	Title string
}

type page struct {
	Title       string
	Center      [2]float64
	Zoom        float64
	TileURL     string
	Attribution string
	Elements    []element
}

type element struct {
	Kind     string
	LatLng   [2]float64
	Segments [][][2]float64
	Icon     map[string]any
	Popup    string
	Options  map[string]any
}

// Render executes the page template into a buffer and copies it to w,
// so nothing is written when the template fails.
func (r HTMLRenderer) Render(w io.Writer, c *Canvas) error {
	title := r.Title
	if title == "" {
		title = DefaultTitle
	}

	p := page{
		Title:       title,
		Center:      latLng(c.Center()),
		Zoom:        c.Zoom(),
		TileURL:     c.Tiles().URL,
		Attribution: c.Tiles().Attribution,
	}

	for _, cmd := range c.Commands() {
		el, err := toElement(cmd)
		if err != nil {
			return err
		}
		p.Elements = append(p.Elements, el)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return eris.Wrap(err, "render: execute map template")
	}
	if _, err := buf.WriteTo(w); err != nil {
		return eris.Wrap(err, "render: write html")
	}
	return nil
}

func toElement(cmd Command) (element, error) {
	switch v := cmd.(type) {
	case Marker:
		return element{
			Kind:   v.Kind(),
			LatLng: latLng(v.Location),
			Icon:   iconOptions(v.Icon),
			Popup:  v.Popup,
		}, nil
	case Circle:
		return element{
			Kind:   v.Kind(),
			LatLng: latLng(v.Center),
			Options: map[string]any{
				"radius":      v.RadiusMeters,
				"color":       v.Color,
				"fill":        v.Fill,
				"fillColor":   v.FillColor,
				"fillOpacity": v.FillOpacity,
			},
		}, nil
	case PolyLine:
		segs := make([][][2]float64, len(v.Segments))
		for i, s := range v.Segments {
			segs[i] = make([][2]float64, len(s))
			for j, l := range s {
				segs[i][j] = latLng(l)
			}
		}
		return element{
			Kind:     v.Kind(),
			Segments: segs,
			Options: map[string]any{
				"color":   v.Color,
				"weight":  v.Weight,
				"opacity": v.Opacity,
			},
		}, nil
	default:
		return element{}, eris.Errorf("render: unsupported command %T", cmd)
	}
}

func iconOptions(i Icon) map[string]any {
	if i.Kind == IconImage {
		return map[string]any{"image": i.URL, "size": i.Size}
	}
	return map[string]any{"color": i.Color, "glyph": i.Glyph}
}

func latLng(l models.Location) [2]float64 {
	return [2]float64{l.Lat, l.Lon}
}
