package kml

import (
	"encoding/xml"
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinemde/comeng/sitac"
)

func render(t *testing.T, figs []sitac.Figure, opts ...RendererOption) (string, *KML) {
	t.Helper()
	out, err := NewRenderer(nil, opts...).Render(figs, "Doc")
	require.NoError(t, err)

	var doc KML
	require.NoError(t, xml.Unmarshal(out, &doc))
	return string(out), &doc
}

func pointFig(name string, lat, lon float64) *sitac.Point {
	p := sitac.NewPoint(name, lat, lon)
	return &p
}

func TestRenderEnvelope(t *testing.T) {
	out, doc := render(t, nil)
	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, `xmlns="http://www.opengis.net/kml/2.2"`)
	assert.Contains(t, out, `xmlns:gx="http://www.google.com/kml/ext/2.2"`)
	assert.Contains(t, out, "<name>Doc</name>")
	assert.Contains(t, out, `<Style id="style_bulls_thin">`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</kml>"))

	assert.Equal(t, "Doc", doc.Document.Name)
	assert.Equal(t, DocumentID("Doc"), doc.Document.ID)
	assert.Empty(t, doc.Document.Placemarks)
}

func TestRenderPoint(t *testing.T) {
	out, doc := render(t, []sitac.Figure{pointFig("Pt1", 48.0, 2.0)})
	assert.Contains(t, out, "<coordinates>2.0,48.0,0</coordinates>")

	require.Len(t, doc.Document.Placemarks, 1)
	pm := doc.Document.Placemarks[0]
	assert.Equal(t, "Pt1", pm.Name)
	assert.Equal(t, StylePlacemark, pm.StyleURL)
	require.NotNil(t, pm.Point)
	assert.Equal(t, Coordinates{{2, 48}}, pm.Point.Coordinates)
}

func TestRenderLineKeepsOrder(t *testing.T) {
	line := sitac.NewLine("L", sitac.PointsFromPairs([][2]float64{{3, 1}, {1, 2}, {2, 3}}))
	out, doc := render(t, []sitac.Figure{line})
	assert.Contains(t, out, "<coordinates>1.0,3.0,0 2.0,1.0,0 3.0,2.0,0</coordinates>")

	pm := doc.Document.Placemarks[0]
	assert.Equal(t, StyleLine, pm.StyleURL)
	require.NotNil(t, pm.LineString)
	assert.Len(t, pm.LineString.Coordinates, 3)
}

func TestRenderPolygonClosesOpenRing(t *testing.T) {
	points := sitac.PointsFromPairs([][2]float64{{0, 0}, {0, 1}, {1, 1}})
	poly := sitac.NewPolygon("P", points)
	_, doc := render(t, []sitac.Figure{poly})

	pm := doc.Document.Placemarks[0]
	assert.Equal(t, StyleShape, pm.StyleURL)
	require.NotNil(t, pm.Polygon)
	ring := pm.Polygon.Ring()
	require.Len(t, ring, 4)
	assert.Equal(t, ring[0], ring[3])
	assert.Len(t, poly.Points, 3, "figure must not change")
}

func TestRenderPolygonDoesNotDuplicateClosingPoint(t *testing.T) {
	points := sitac.PointsFromPairs([][2]float64{{0, 0}, {0, 1}, {1, 1}, {0, 0}})
	_, doc := render(t, []sitac.Figure{sitac.NewPolygon("P", points)})
	assert.Len(t, doc.Document.Placemarks[0].Polygon.Ring(), 4)
}

func TestRenderRectangle(t *testing.T) {
	rect := sitac.NewRectangle("R", sitac.NewPoint("", 0, 0), 111111, 111111)
	_, doc := render(t, []sitac.Figure{rect})

	require.Len(t, doc.Document.Placemarks, 1)
	pm := doc.Document.Placemarks[0]
	assert.Equal(t, "R", pm.Name)
	assert.Equal(t, StyleShape, pm.StyleURL)

	// (lat, lon) corners: (0,0) (1,0) (1,1) (0,1) (0,0)
	want := []orb.Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}
	ring := pm.Polygon.Ring()
	require.Len(t, ring, len(want))
	for i := range want {
		assert.InDelta(t, want[i].Lat(), ring[i].Lat(), eps, "corner %d lat", i)
		assert.InDelta(t, want[i].Lon(), ring[i].Lon(), eps, "corner %d lon", i)
	}
}

func TestRenderBullseye(t *testing.T) {
	b := sitac.NewBullseye("BE", sitac.NewPoint("", 45, 5), 2000, 2000, 2, 500)
	_, doc := render(t, []sitac.Figure{b})

	require.Len(t, doc.Document.Placemarks, 3)
	thick, thin, lines := doc.Document.Placemarks[0], doc.Document.Placemarks[1], doc.Document.Placemarks[2]

	assert.Equal(t, "BE", thick.Name)
	assert.Equal(t, StyleBulls, thick.StyleURL)
	assert.Equal(t, "BE_second", thin.Name)
	assert.Equal(t, StyleBullsThin, thin.StyleURL)
	assert.Equal(t, "BE_lines", lines.Name)
	assert.Equal(t, StyleLine, lines.StyleURL)

	require.NotNil(t, thick.MultiGeometry)
	require.NotNil(t, thin.MultiGeometry)
	require.NotNil(t, lines.MultiGeometry)
	require.Len(t, thick.MultiGeometry.Polygons, 2)
	require.Len(t, thin.MultiGeometry.Polygons, 1)
	require.Len(t, lines.MultiGeometry.LineStrings, SpokeCount)

	// vradius 1000 m, half ring distance 250 m: rings at 500, 750 and 1000 m.
	center := orb.Point{5, 45}
	radii := []float64{500, 1000}
	for i, poly := range thick.MultiGeometry.Polygons {
		ring := poly.Ring()
		require.Len(t, ring, DefaultSamples+1)
		assert.Equal(t, ring[0], ring[len(ring)-1])
		assert.InDelta(t, center[0]+MetersToDegrees(radii[i]), ring[0][0], eps, "thick ring %d", i)
		assert.InDelta(t, center[1], ring[0][1], eps, "thick ring %d", i)
	}
	thinRing := thin.MultiGeometry.Polygons[0].Ring()
	require.Len(t, thinRing, DefaultSamples+1)
	assert.InDelta(t, center[0]+MetersToDegrees(750), thinRing[0][0], eps)

	for i, ls := range lines.MultiGeometry.LineStrings {
		require.Len(t, ls.Coordinates, 2, "spoke %d", i)
		assert.Equal(t, center, ls.Coordinates[0])
		tip := ls.Coordinates[1]
		assert.InDelta(t, MetersToDegrees(1000), math.Hypot(tip[0]-center[0], tip[1]-center[1]), eps, "spoke %d", i)
	}
	// First spoke points east, third points north.
	assert.InDelta(t, center[1], lines.MultiGeometry.LineStrings[0].Coordinates[1][1], eps)
	assert.InDelta(t, center[0], lines.MultiGeometry.LineStrings[2].Coordinates[1][0], eps)
}

func TestRenderBullseyeWithoutRings(t *testing.T) {
	b := sitac.NewBullseye("B0", sitac.NewPoint("", 0, 0), 2000, 2000, 0, 500)
	out, doc := render(t, []sitac.Figure{b})

	require.Len(t, doc.Document.Placemarks, 3)
	assert.Empty(t, doc.Document.Placemarks[0].MultiGeometry.Polygons)
	assert.Empty(t, doc.Document.Placemarks[1].MultiGeometry.Polygons)
	assert.Len(t, doc.Document.Placemarks[2].MultiGeometry.LineStrings, SpokeCount)
	assert.Equal(t, 3, strings.Count(out, "<MultiGeometry>"))
}

func TestRenderEllipse(t *testing.T) {
	e := sitac.NewEllipse("E", sitac.NewPoint("", 10, 20), 2*111111, 111111)
	_, doc := render(t, []sitac.Figure{e})

	pm := doc.Document.Placemarks[0]
	assert.Equal(t, StyleCircle, pm.StyleURL)
	ring := pm.Polygon.Ring()
	require.Len(t, ring, DefaultSamples+1)
	assert.Equal(t, ring[0], ring[len(ring)-1])

	// Horizontal radius runs along longitude, vertical along latitude.
	assert.InDelta(t, 21.0, ring[0].Lon(), eps)
	assert.InDelta(t, 10.0, ring[0].Lat(), eps)
	quarter := ring[DefaultSamples/4]
	assert.InDelta(t, 20.0, quarter.Lon(), eps)
	assert.InDelta(t, 10.5, quarter.Lat(), eps)
}

func TestRenderCorridorIsEmpty(t *testing.T) {
	cases := []*sitac.Corridor{
		sitac.NewCorridor("C", sitac.NewPoint("", 0, 0), sitac.NewPoint("", 1, 1), 100),
		sitac.NewCorridor("", sitac.Point{}, sitac.Point{}, -5),
	}
	r := NewRenderer(nil)
	for _, c := range cases {
		assert.Empty(t, r.Placemarks(c))
	}

	out, doc := render(t, []sitac.Figure{cases[0]})
	assert.Empty(t, doc.Document.Placemarks)
	assert.NotContains(t, out, "<Placemark>")
}

func TestRenderSkipsNilAndKeepsOrder(t *testing.T) {
	figs := []sitac.Figure{
		pointFig("a", 1, 1),
		nil,
		sitac.NewLine("b", nil),
		pointFig("c", 2, 2),
	}
	_, doc := render(t, figs)
	require.Len(t, doc.Document.Placemarks, 3)
	assert.Equal(t, "a", doc.Document.Placemarks[0].Name)
	assert.Equal(t, "b", doc.Document.Placemarks[1].Name)
	assert.Equal(t, "c", doc.Document.Placemarks[2].Name)
}

func TestRenderSkipsTypedNilFigures(t *testing.T) {
	figs := []sitac.Figure{
		(*sitac.Point)(nil),
		pointFig("a", 1, 1),
		(*sitac.Line)(nil),
		(*sitac.Bullseye)(nil),
		(*sitac.Ellipse)(nil),
	}
	_, doc := render(t, figs)
	require.Len(t, doc.Document.Placemarks, 1)
	assert.Equal(t, "a", doc.Document.Placemarks[0].Name)
	assert.Nil(t, NewRenderer(nil).Placemarks((*sitac.Rectangle)(nil)))
}

func TestRenderIsDeterministic(t *testing.T) {
	figs := []sitac.Figure{
		pointFig("a", 1, 1),
		sitac.NewBullseye("b", sitac.NewPoint("", 1, 1), 1000, 1000, 3, 100),
		sitac.NewEllipse("e", sitac.NewPoint("", 1, 1), 100, 50),
	}
	r := NewRenderer(nil)
	first, err := r.Render(figs, "same")
	require.NoError(t, err)
	second, err := r.Render(figs, "same")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderOptions(t *testing.T) {
	e := sitac.NewEllipse("E", sitac.NewPoint("", 0, 0), 10, 10)
	out, doc := render(t, []sitac.Figure{e}, WithSamples(8), WithStyles(`<Style id="custom"/>`))
	assert.Len(t, doc.Document.Placemarks[0].Polygon.Ring(), 9)
	assert.Contains(t, out, `<Style id="custom"/>`)
	assert.NotContains(t, out, "style_bulls")
}

func TestDocumentIDIsStable(t *testing.T) {
	assert.Equal(t, DocumentID("x"), DocumentID("x"))
	assert.NotEqual(t, DocumentID("x"), DocumentID("y"))
}

func TestFormatDegrees(t *testing.T) {
	assert.Equal(t, "2.0", FormatDegrees(2))
	assert.Equal(t, "-1.25", FormatDegrees(-1.25))
	assert.Equal(t, "0.0", FormatDegrees(0))
	assert.Equal(t, "0.000001", FormatDegrees(1e-6))
}
