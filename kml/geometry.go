package kml

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/martinemde/comeng/sitac"
)

const (
	// DefaultSamples is the number of points sampled around circles and ellipses.
	DefaultSamples = 400

	// SpokeCount is the number of radial spokes drawn on a bullseye.
	SpokeCount = 8
)

// PointOf converts a SITAC point to an orb point (longitude, latitude).
func PointOf(p sitac.Point) orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// Offset moves p by the given distances in meters, east then north.
func Offset(p orb.Point, eastMeters, northMeters float64) orb.Point {
	return orb.Point{p[0] + MetersToDegrees(eastMeters), p[1] + MetersToDegrees(northMeters)}
}

// SampleEllipse returns n points on the axis-aligned ellipse around center,
// starting at angle 0 (east) and turning counter-clockwise, followed by a
// repeat of the first point. Radii are in degrees. n < 1 uses DefaultSamples.
func SampleEllipse(center orb.Point, hradius, vradius float64, n int) orb.Ring {
	if n < 1 {
		n = DefaultSamples
	}
	ring := make(orb.Ring, 0, n+1)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		theta := float64(i) * step
		ring = append(ring, orb.Point{
			center[0] + hradius*math.Cos(theta),
			center[1] + vradius*math.Sin(theta),
		})
	}
	return append(ring, ring[0])
}

// SampleCircle is SampleEllipse with equal radii.
func SampleCircle(center orb.Point, radius float64, n int) orb.Ring {
	return SampleEllipse(center, radius, radius, n)
}

// Spoke returns the segment from center to the point length degrees away at
// angleDeg, measured counter-clockwise from east.
func Spoke(center orb.Point, length, angleDeg float64) orb.LineString {
	theta := angleDeg * math.Pi / 180
	return orb.LineString{
		center,
		{center[0] + length*math.Cos(theta), center[1] + length*math.Sin(theta)},
	}
}

// ClosedRing copies points and appends the first one when the last differs.
// The input slice is never modified.
func ClosedRing(points []orb.Point) orb.Ring {
	ring := make(orb.Ring, len(points), len(points)+1)
	copy(ring, points)
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}

// RectangleRing expands an anchor and meter extents into the closed ring
// anchor, north, north-east, east, anchor.
func RectangleRing(anchor orb.Point, horizontal, vertical float64) orb.Ring {
	return orb.Ring{
		anchor,
		Offset(anchor, 0, vertical),
		Offset(anchor, horizontal, vertical),
		Offset(anchor, horizontal, 0),
		anchor,
	}
}

func pointsOf(points []sitac.Point) []orb.Point {
	out := make([]orb.Point, len(points))
	for i, p := range points {
		out[i] = PointOf(p)
	}
	return out
}
