package kml

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinemde/comeng/sitac"
)

const eps = 1e-9

func TestPointOfUsesLongitudeFirst(t *testing.T) {
	p := PointOf(sitac.NewPoint("", 48, 2))
	assert.Equal(t, 2.0, p.Lon())
	assert.Equal(t, 48.0, p.Lat())
}

func TestSampleEllipseIsClosed(t *testing.T) {
	ring := SampleEllipse(orb.Point{2, 48}, 0.02, 0.01, DefaultSamples)
	require.Len(t, ring, DefaultSamples+1)
	assert.True(t, ring.Closed())
	assert.Equal(t, ring[0], ring[len(ring)-1])
}

func TestSampleEllipseStartsEastAndTurnsCounterClockwise(t *testing.T) {
	center := orb.Point{10, 20}
	ring := SampleEllipse(center, 2, 1, 4)
	require.Len(t, ring, 5)

	want := []orb.Point{{12, 20}, {10, 21}, {8, 20}, {10, 19}, {12, 20}}
	for i := range want {
		assert.InDelta(t, want[i][0], ring[i][0], eps, "point %d lon", i)
		assert.InDelta(t, want[i][1], ring[i][1], eps, "point %d lat", i)
	}
}

func TestSampleCircleRadius(t *testing.T) {
	center := orb.Point{-3, 51}
	ring := SampleCircle(center, 0.5, 64)
	for i, p := range ring {
		d := math.Hypot(p[0]-center[0], p[1]-center[1])
		assert.InDelta(t, 0.5, d, eps, "point %d", i)
	}
}

func TestSampleEllipseDefaultsSamples(t *testing.T) {
	assert.Len(t, SampleEllipse(orb.Point{}, 1, 1, 0), DefaultSamples+1)
}

func TestSpoke(t *testing.T) {
	center := orb.Point{1, 1}
	s := Spoke(center, 2, 90)
	require.Len(t, s, 2)
	assert.Equal(t, center, s[0])
	assert.InDelta(t, 1.0, s[1][0], eps)
	assert.InDelta(t, 3.0, s[1][1], eps)

	s = Spoke(center, 2, 225)
	assert.InDelta(t, 1-math.Sqrt2, s[1][0], eps)
	assert.InDelta(t, 1-math.Sqrt2, s[1][1], eps)
}

func TestClosedRingAppendsFirstPoint(t *testing.T) {
	open := []orb.Point{{0, 0}, {1, 0}, {1, 1}}
	ring := ClosedRing(open)
	require.Len(t, ring, 4)
	assert.Equal(t, orb.Point{0, 0}, ring[3])
	assert.Len(t, open, 3, "input must not change")
}

func TestClosedRingKeepsClosedRing(t *testing.T) {
	closed := []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 0}}
	ring := ClosedRing(closed)
	assert.Len(t, ring, 4)
	assert.Empty(t, ClosedRing(nil))
}

func TestRectangleRing(t *testing.T) {
	ring := RectangleRing(orb.Point{0, 0}, 111111, 111111)
	want := orb.Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}
	require.Len(t, ring, len(want))
	for i := range want {
		assert.InDelta(t, want[i][0], ring[i][0], eps, "corner %d lon", i)
		assert.InDelta(t, want[i][1], ring[i][1], eps, "corner %d lat", i)
	}
	assert.True(t, ring.Closed())
}

func TestRectangleRingNegativeExtents(t *testing.T) {
	ring := RectangleRing(orb.Point{5, 5}, -111111, -222222)
	assert.InDelta(t, 3.0, ring[1][1], eps)
	assert.InDelta(t, 4.0, ring[2][0], eps)
}
