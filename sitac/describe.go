package sitac

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is a named scalar attribute of a described figure.
type Field struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Node describes one figure: its scalar attributes as Fields and its
// nested points as Children.
type Node struct {
	Name     string     `yaml:"name"`
	Kind     FigureKind `yaml:"kind"`
	Fields   []Field    `yaml:"fields,omitempty"`
	Children []Node     `yaml:"children,omitempty"`
}

// Tree is the description of a whole document.
type Tree struct {
	Root  string `yaml:"root"`
	Nodes []Node `yaml:"figures"`
}

// Describe returns the tree node of f. Nil figures describe as an empty node.
func Describe(f Figure) Node {
	if IsNil(f) {
		return Node{}
	}
	switch fig := f.(type) {
	case *Point:
		return describePoint(*fig)
	case *Line:
		return Node{Name: fig.Name, Kind: KindLine, Children: describePoints(fig.Points)}
	case *Polygon:
		return Node{Name: fig.Name, Kind: KindPolygon, Children: describePoints(fig.Points)}
	case *Rectangle:
		return Node{
			Name: fig.Name,
			Kind: KindRectangle,
			Fields: []Field{
				{"horizontal", formatFloat(fig.Horizontal)},
				{"vertical", formatFloat(fig.Vertical)},
			},
			Children: []Node{describePoint(fig.Start)},
		}
	case *Bullseye:
		return Node{
			Name: fig.Name,
			Kind: KindBullseye,
			Fields: []Field{
				{"hradius", formatFloat(fig.HRadius)},
				{"vradius", formatFloat(fig.VRadius)},
				{"rings", strconv.Itoa(fig.Rings)},
				{"ring_distance", formatFloat(fig.RingDistance)},
			},
			Children: []Node{describePoint(fig.Center)},
		}
	case *Ellipse:
		return Node{
			Name: fig.Name,
			Kind: KindEllipse,
			Fields: []Field{
				{"hradius", formatFloat(fig.HRadius)},
				{"vradius", formatFloat(fig.VRadius)},
			},
			Children: []Node{describePoint(fig.Center)},
		}
	case *Corridor:
		return Node{
			Name:     fig.Name,
			Kind:     KindCorridor,
			Fields:   []Field{{"width", formatFloat(fig.Width)}},
			Children: []Node{describePoint(fig.Start), describePoint(fig.End)},
		}
	}
	return Node{}
}

func describePoint(p Point) Node {
	return Node{
		Name: p.Name,
		Kind: KindPoint,
		Fields: []Field{
			{"latitude", formatFloat(p.Latitude)},
			{"longitude", formatFloat(p.Longitude)},
		},
	}
}

func describePoints(points []Point) []Node {
	nodes := make([]Node, 0, len(points))
	for _, p := range points {
		nodes = append(nodes, describePoint(p))
	}
	return nodes
}

// DescribeAll describes every non-nil figure under a "SITAC" root.
func DescribeAll(figs []Figure) Tree {
	t := Tree{Root: "SITAC"}
	for _, f := range figs {
		if IsNil(f) {
			continue
		}
		t.Nodes = append(t.Nodes, Describe(f))
	}
	return t
}

// String renders the tree with two-space indentation per level.
func (t Tree) String() string {
	var b strings.Builder
	b.WriteString(t.Root)
	b.WriteByte('\n')
	for _, n := range t.Nodes {
		n.write(&b, 1)
	}
	return b.String()
}

func (n Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

func (n Node) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	name := n.Name
	if name == "" {
		name = "-"
	}
	fmt.Fprintf(b, "%s%s (%s)\n", indent, name, n.Kind)
	for _, f := range n.Fields {
		fmt.Fprintf(b, "%s  %s: %s\n", indent, f.Key, f.Value)
	}
	for _, c := range n.Children {
		c.write(b, depth+1)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
