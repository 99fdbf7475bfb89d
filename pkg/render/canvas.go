// Package render accumulates map drawing commands on a Canvas and hands
// the finished command list to a renderer.
package render

import (
	"io"

	"github.com/kass/go-danger-map/pkg/models"
)

// Default Leaflet tile layer
const (
	DefaultTileURL     = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
)

// IconKind selects how a marker icon is drawn
type IconKind int

const (
	// IconGlyph is a colored pin with a named glyph
	IconGlyph IconKind = iota
	// IconImage is a custom bitmap icon
	IconImage
)

// Icon describes a marker icon
type Icon struct {
	Kind  IconKind
	Color string
	Glyph string
	URL   string
	Size  int
}

// GlyphIcon returns a colored pin icon with the given glyph
func GlyphIcon(color, glyph string) Icon {
	return Icon{Kind: IconGlyph, Color: color, Glyph: glyph}
}

// ImageIcon returns a square bitmap icon of size pixels
func ImageIcon(url string, size int) Icon {
	return Icon{Kind: IconImage, URL: url, Size: size}
}

// Command is a single drawing instruction
type Command interface {
	Kind() string
}

// Marker places an icon at a location, with an optional popup
type Marker struct {
	Location models.Location
	Icon     Icon
	Popup    string
}

func (Marker) Kind() string { return "marker" }

// Circle draws a circle of radius meters around a center
type Circle struct {
	Center       models.Location
	RadiusMeters float64
	Color        string
	FillColor    string
	Fill         bool
	FillOpacity  float64
}

func (Circle) Kind() string { return "circle" }

// PolyLine draws one or more independent segments with a shared style
type PolyLine struct {
	Segments [][]models.Location
	Color    string
	Weight   float64
	Opacity  float64
}

func (PolyLine) Kind() string { return "polyline" }

// Tiles is the base tile layer of the map
type Tiles struct {
	URL         string
	Attribution string
}

// Canvas is a map viewport plus the ordered list of drawing commands
type Canvas struct {
	center   models.Location
	zoom     float64
	tiles    Tiles
	commands []Command
}

// NewCanvas creates an empty canvas centered on center
func NewCanvas(center models.Location, zoom float64) *Canvas {
	return &Canvas{
		center: center,
		zoom:   zoom,
		tiles:  Tiles{URL: DefaultTileURL, Attribution: DefaultAttribution},
	}
}

// SetTiles replaces the base tile layer. Empty fields keep the defaults.
func (c *Canvas) SetTiles(t Tiles) {
	if t.URL != "" {
		c.tiles.URL = t.URL
	}
	if t.Attribution != "" {
		c.tiles.Attribution = t.Attribution
	}
}

// AddMarker appends a marker command
func (c *Canvas) AddMarker(m Marker) {
	c.commands = append(c.commands, m)
}

// AddCircle appends a circle command
func (c *Canvas) AddCircle(circle Circle) {
	c.commands = append(c.commands, circle)
}

// AddPolyLine appends a polyline command
func (c *Canvas) AddPolyLine(p PolyLine) {
	c.commands = append(c.commands, p)
}

// Center returns the viewport center
func (c *Canvas) Center() models.Location { return c.center }

// Zoom returns the initial zoom level
func (c *Canvas) Zoom() float64 { return c.zoom }

// Tiles returns the base tile layer
func (c *Canvas) Tiles() Tiles { return c.tiles }

// Commands returns the drawing commands in draw order
func (c *Canvas) Commands() []Command {
	out := make([]Command, len(c.commands))
	copy(out, c.commands)
	return out
}

// Renderer turns a finished canvas into an artifact
type Renderer interface {
	Render(w io.Writer, c *Canvas) error
}
