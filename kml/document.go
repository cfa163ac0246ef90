package kml

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Namespaces written on the <kml> root element.
const (
	NamespaceKML  = "http://www.opengis.net/kml/2.2"
	NamespaceGx   = "http://www.google.com/kml/ext/2.2"
	NamespaceAtom = "http://www.w3.org/2005/Atom"
)

// Style references. The styles themselves live in the static style block.
const (
	StylePlacemark = "#style_placemark"
	StyleLine      = "#style_line"
	StyleShape     = "#style_shape"
	StyleCircle    = "#style_circle"
	StyleBulls     = "#style_bulls"
	StyleBullsThin = "#style_bulls_thin"
)

// KML is the document root.
type KML struct {
	XMLName   xml.Name `xml:"kml"`
	Xmlns     string   `xml:"xmlns,attr"`
	XmlnsGx   string   `xml:"xmlns:gx,attr,omitempty"`
	XmlnsKML  string   `xml:"xmlns:kml,attr,omitempty"`
	XmlnsAtom string   `xml:"xmlns:atom,attr,omitempty"`
	Document  Document `xml:"Document"`
}

// Document holds the name, the raw style block and the placemarks.
type Document struct {
	ID         string      `xml:"id,attr,omitempty"`
	Name       string      `xml:"name"`
	Styles     string      `xml:",innerxml"`
	Placemarks []Placemark `xml:"Placemark"`
}

// Placemark carries exactly one geometry.
type Placemark struct {
	Name          string         `xml:"name"`
	StyleURL      string         `xml:"styleUrl,omitempty"`
	Point         *Point         `xml:"Point,omitempty"`
	LineString    *LineString    `xml:"LineString,omitempty"`
	Polygon       *Polygon       `xml:"Polygon,omitempty"`
	MultiGeometry *MultiGeometry `xml:"MultiGeometry,omitempty"`
}

// Point is a KML point geometry.
type Point struct {
	Coordinates Coordinates `xml:"coordinates"`
}

// LineString is an open KML path.
type LineString struct {
	Coordinates Coordinates `xml:"coordinates"`
}

// LinearRing is a closed KML path.
type LinearRing struct {
	Coordinates Coordinates `xml:"coordinates"`
}

// Boundary wraps the ring of a polygon boundary.
type Boundary struct {
	LinearRing LinearRing `xml:"LinearRing"`
}

// Polygon is a KML polygon with an outer boundary only.
type Polygon struct {
	OuterBoundaryIs Boundary `xml:"outerBoundaryIs"`
}

// MultiGeometry groups polygons and line strings under one placemark.
type MultiGeometry struct {
	Polygons    []Polygon    `xml:"Polygon"`
	LineStrings []LineString `xml:"LineString"`
}

// NewPolygon builds a polygon whose outer boundary is ring.
func NewPolygon(ring orb.Ring) *Polygon {
	return &Polygon{OuterBoundaryIs: Boundary{LinearRing: LinearRing{Coordinates: Coordinates(ring)}}}
}

// Ring returns the outer boundary coordinates.
func (p *Polygon) Ring() orb.Ring {
	return orb.Ring(p.OuterBoundaryIs.LinearRing.Coordinates)
}

// Coordinates is a KML coordinate list. Each point is written as
// "longitude,latitude,0"; points are separated by a single space.
type Coordinates []orb.Point

// MarshalText implements encoding.TextMarshaler.
func (c Coordinates) MarshalText() ([]byte, error) {
	var b strings.Builder
	for i, p := range c {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(FormatDegrees(p[0]))
		b.WriteByte(',')
		b.WriteString(FormatDegrees(p[1]))
		b.WriteString(",0")
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Altitudes are ignored.
func (c *Coordinates) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	out := make(Coordinates, 0, len(fields))
	for _, f := range fields {
		parts := strings.Split(f, ",")
		if len(parts) < 2 {
			return fmt.Errorf("invalid coordinate %q", f)
		}
		lon, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return fmt.Errorf("invalid longitude in %q: %w", f, err)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return fmt.Errorf("invalid latitude in %q: %w", f, err)
		}
		out = append(out, orb.Point{lon, lat})
	}
	*c = out
	return nil
}

// FormatDegrees writes f in its shortest exact decimal form, keeping a ".0"
// on integral values so 2 is written as "2.0".
func FormatDegrees(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
