package kml

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/martinemde/comeng/sitac"
)

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithSamples sets the number of points sampled around circles and ellipses.
func WithSamples(n int) RendererOption {
	return func(r *Renderer) {
		if n > 0 {
			r.samples = n
		}
	}
}

// WithStyles replaces the static style block.
func WithStyles(styles string) RendererOption {
	return func(r *Renderer) {
		r.styles = styles
	}
}

// Renderer converts figures into KML. It keeps no state between calls, so
// rendering the same figures twice yields identical output.
type Renderer struct {
	logger  *slog.Logger
	samples int
	styles  string
}

// NewRenderer creates a Renderer. A nil logger discards log output.
func NewRenderer(logger *slog.Logger, opts ...RendererOption) *Renderer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Renderer{
		logger:  logger.With("component", "kml"),
		samples: DefaultSamples,
		styles:  DefaultStyles,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render builds the document for figs and returns it as XML text, header
// included. Nil figures are skipped.
func (r *Renderer) Render(figs []sitac.Figure, name string) ([]byte, error) {
	doc := r.Build(figs, name)
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding KML document %q: %w", name, err)
	}

	buf := make([]byte, 0, len(xml.Header)+len(out)+1)
	buf = append(buf, xml.Header...)
	buf = append(buf, out...)
	buf = append(buf, '\n')

	r.logger.Info("built KML document",
		"name", name,
		"figures", len(figs),
		"placemarks", len(doc.Document.Placemarks),
		"bytes", len(buf))
	return buf, nil
}

// Build assembles the document tree without encoding it.
func (r *Renderer) Build(figs []sitac.Figure, name string) *KML {
	doc := &KML{
		Xmlns:     NamespaceKML,
		XmlnsGx:   NamespaceGx,
		XmlnsKML:  NamespaceKML,
		XmlnsAtom: NamespaceAtom,
		Document: Document{
			ID:     DocumentID(name),
			Name:   name,
			Styles: r.styles,
		},
	}
	for _, f := range figs {
		if sitac.IsNil(f) {
			continue
		}
		doc.Document.Placemarks = append(doc.Document.Placemarks, r.Placemarks(f)...)
	}
	return doc
}

// DocumentID derives a stable identifier from the document name.
func DocumentID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:sitac:"+name)).String()
}

// Placemarks renders one figure. Corridors render to nothing.
func (r *Renderer) Placemarks(f sitac.Figure) []Placemark {
	if sitac.IsNil(f) {
		return nil
	}
	switch fig := f.(type) {
	case *sitac.Point:
		return []Placemark{r.point(fig)}
	case *sitac.Line:
		return []Placemark{r.line(fig)}
	case *sitac.Polygon:
		return []Placemark{r.polygon(fig.Name, pointsOf(fig.Points))}
	case *sitac.Rectangle:
		return []Placemark{r.rectangle(fig)}
	case *sitac.Bullseye:
		return r.bullseye(fig)
	case *sitac.Ellipse:
		return []Placemark{r.ellipse(fig)}
	case *sitac.Corridor:
		r.logger.Debug("corridor rendering is not implemented, skipping", "figure", fig.Name)
		return nil
	default:
		r.logger.Warn("unknown figure type", "type", fmt.Sprintf("%T", f))
		return nil
	}
}

func (r *Renderer) point(p *sitac.Point) Placemark {
	return Placemark{
		Name:     p.Name,
		StyleURL: StylePlacemark,
		Point:    &Point{Coordinates: Coordinates{PointOf(*p)}},
	}
}

func (r *Renderer) line(l *sitac.Line) Placemark {
	return Placemark{
		Name:       l.Name,
		StyleURL:   StyleLine,
		LineString: &LineString{Coordinates: Coordinates(pointsOf(l.Points))},
	}
}

func (r *Renderer) polygon(name string, points []orb.Point) Placemark {
	return Placemark{
		Name:     name,
		StyleURL: StyleShape,
		Polygon:  NewPolygon(ClosedRing(points)),
	}
}

func (r *Renderer) rectangle(rect *sitac.Rectangle) Placemark {
	ring := RectangleRing(PointOf(rect.Start), rect.Horizontal, rect.Vertical)
	return r.polygon(rect.Name, ring)
}

// bullseye draws thick rings on even indexes, thin rings on odd indexes and
// SpokeCount spokes out to the vertical radius. Rings are spaced by half the
// ring distance and the outermost ring lies on the vertical radius.
func (r *Renderer) bullseye(b *sitac.Bullseye) []Placemark {
	center := PointOf(b.Center)
	radius := MetersToDegrees(b.VRadius)
	half := MetersToDegrees(b.RingDistance) / 2
	smallest := radius - float64(b.Rings)*half

	thick := &MultiGeometry{}
	thin := &MultiGeometry{}
	if b.Rings > 0 {
		if smallest < 0 {
			r.logger.Warn("bullseye rings extend past its center",
				"figure", b.Name, "rings", b.Rings, "ring_distance", b.RingDistance)
		}
		for i := 0; i <= b.Rings; i += 2 {
			thick.Polygons = append(thick.Polygons, *NewPolygon(SampleCircle(center, smallest+float64(i)*half, r.samples)))
		}
		for i := 1; i <= b.Rings; i += 2 {
			thin.Polygons = append(thin.Polygons, *NewPolygon(SampleCircle(center, smallest+float64(i)*half, r.samples)))
		}
	}

	spokes := &MultiGeometry{}
	step := 360.0 / SpokeCount
	for i := 0; i < SpokeCount; i++ {
		spokes.LineStrings = append(spokes.LineStrings, LineString{
			Coordinates: Coordinates(Spoke(center, radius, float64(i)*step)),
		})
	}

	return []Placemark{
		{Name: b.Name, StyleURL: StyleBulls, MultiGeometry: thick},
		{Name: b.Name + "_second", StyleURL: StyleBullsThin, MultiGeometry: thin},
		{Name: b.Name + "_lines", StyleURL: StyleLine, MultiGeometry: spokes},
	}
}

func (r *Renderer) ellipse(e *sitac.Ellipse) Placemark {
	ring := SampleEllipse(PointOf(e.Center), MetersToDegrees(e.HRadius), MetersToDegrees(e.VRadius), r.samples)
	return Placemark{
		Name:     e.Name,
		StyleURL: StyleCircle,
		Polygon:  NewPolygon(ring),
	}
}
