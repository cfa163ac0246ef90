package sitac

// FigureKind names a figure variant.
type FigureKind string

const (
	KindPoint     FigureKind = "point"
	KindLine      FigureKind = "line"
	KindPolygon   FigureKind = "polygon"
	KindRectangle FigureKind = "rectangle"
	KindBullseye  FigureKind = "bullseye"
	KindEllipse   FigureKind = "ellipse"
	KindCorridor  FigureKind = "corridor"
)

// Figure is one decoded SITAC figure. The set of implementations is closed:
// Point, Line, Polygon, Rectangle, Bullseye, Ellipse and Corridor.
type Figure interface {
	Kind() FigureKind
	FigureName() string
	figure()
}

// Point is a named geographic position in degrees.
type Point struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// NewPoint creates a Point.
func NewPoint(name string, latitude, longitude float64) Point {
	return Point{Name: name, Latitude: latitude, Longitude: longitude}
}

// SamePosition reports whether p and o have identical coordinates. Names are ignored.
func (p Point) SamePosition(o Point) bool {
	return p.Latitude == o.Latitude && p.Longitude == o.Longitude
}

// PointsFromPairs converts raw {latitude, longitude} pairs into unnamed Points.
func PointsFromPairs(pairs [][2]float64) []Point {
	points := make([]Point, len(pairs))
	for i, pair := range pairs {
		points[i] = Point{Latitude: pair[0], Longitude: pair[1]}
	}
	return points
}

// Line is an open polyline. Point order is drawing order.
type Line struct {
	Name   string
	Points []Point
}

// NewLine creates a Line owning a copy of points.
func NewLine(name string, points []Point) *Line {
	return &Line{Name: name, Points: copyPoints(points)}
}

// Polygon is a closed shape. Renderers close it on their own copy when the
// last point differs from the first.
type Polygon struct {
	Name   string
	Points []Point
}

// NewPolygon creates a Polygon owning a copy of points.
func NewPolygon(name string, points []Point) *Polygon {
	return &Polygon{Name: name, Points: copyPoints(points)}
}

// Rectangle is anchored at its bottom-left corner and extends Horizontal
// meters east and Vertical meters north. Negative lengths flip the direction.
type Rectangle struct {
	Name       string
	Start      Point
	Horizontal float64
	Vertical   float64
}

// NewRectangle creates a Rectangle.
func NewRectangle(name string, start Point, horizontal, vertical float64) *Rectangle {
	return &Rectangle{Name: name, Start: start, Horizontal: horizontal, Vertical: vertical}
}

// Bullseye is a set of concentric rings with radial spokes around Center.
// HRadius and VRadius are radii in meters; RingDistance is in meters.
type Bullseye struct {
	Name         string
	Center       Point
	HRadius      float64
	VRadius      float64
	Rings        int
	RingDistance float64
}

// NewBullseye creates a Bullseye. The SITAC format gives the horizontal and
// vertical extents as diameters; they are halved here.
func NewBullseye(name string, center Point, horizontal, vertical float64, rings int, ringDistance float64) *Bullseye {
	return &Bullseye{
		Name:         name,
		Center:       center,
		HRadius:      horizontal / 2,
		VRadius:      vertical / 2,
		Rings:        rings,
		RingDistance: ringDistance,
	}
}

// Ellipse is an axis-aligned ellipse. Radii are in meters.
type Ellipse struct {
	Name    string
	Center  Point
	HRadius float64
	VRadius float64
}

// NewEllipse creates an Ellipse from diameters, halved like NewBullseye.
func NewEllipse(name string, center Point, horizontal, vertical float64) *Ellipse {
	return &Ellipse{Name: name, Center: center, HRadius: horizontal / 2, VRadius: vertical / 2}
}

// Corridor is a band of Width meters between Start and End.
type Corridor struct {
	Name  string
	Start Point
	End   Point
	Width float64
}

// NewCorridor creates a Corridor.
func NewCorridor(name string, start, end Point, width float64) *Corridor {
	return &Corridor{Name: name, Start: start, End: end, Width: width}
}

func (p *Point) Kind() FigureKind     { return KindPoint }
func (l *Line) Kind() FigureKind      { return KindLine }
func (p *Polygon) Kind() FigureKind   { return KindPolygon }
func (r *Rectangle) Kind() FigureKind { return KindRectangle }
func (b *Bullseye) Kind() FigureKind  { return KindBullseye }
func (e *Ellipse) Kind() FigureKind   { return KindEllipse }
func (c *Corridor) Kind() FigureKind  { return KindCorridor }

func (p *Point) FigureName() string     { return p.Name }
func (l *Line) FigureName() string      { return l.Name }
func (p *Polygon) FigureName() string   { return p.Name }
func (r *Rectangle) FigureName() string { return r.Name }
func (b *Bullseye) FigureName() string  { return b.Name }
func (e *Ellipse) FigureName() string   { return e.Name }
func (c *Corridor) FigureName() string  { return c.Name }

func (*Point) figure()     {}
func (*Line) figure()      {}
func (*Polygon) figure()   {}
func (*Rectangle) figure() {}
func (*Bullseye) figure()  {}
func (*Ellipse) figure()   {}
func (*Corridor) figure()  {}

// IsNil reports whether f is nil or a typed nil pointer to a figure.
func IsNil(f Figure) bool {
	switch fig := f.(type) {
	case nil:
		return true
	case *Point:
		return fig == nil
	case *Line:
		return fig == nil
	case *Polygon:
		return fig == nil
	case *Rectangle:
		return fig == nil
	case *Bullseye:
		return fig == nil
	case *Ellipse:
		return fig == nil
	case *Corridor:
		return fig == nil
	}
	return false
}

func copyPoints(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	return out
}
