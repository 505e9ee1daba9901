// Package scene is a small retained-mode scene for the 3D demo: a flat list
// of drawable primitives projected through an orthographic camera onto a 2D
// drawing context. It is deliberately not a general scene graph; the demo
// only needs lines, arrows, a wireframe sphere and text labels.
package scene

import "github.com/ziotom78/geomdemos/geom"

// Color is an RGB triple in [0, 1].
type Color struct {
	R, G, B float64
}

var (
	White = Color{1, 1, 1}
	Red   = Color{0.9, 0.2, 0.2}
	Green = Color{0.2, 0.8, 0.3}
	Blue  = Color{0.3, 0.45, 0.95}
	Gray  = Color{0.55, 0.55, 0.55}
)

// Node is a drawable primitive. Nodes are added by pointer so that the same
// node can be mutated between frames and removed by identity.
type Node interface {
	isNode()
}

// Line is a straight segment between two world-space points.
type Line struct {
	From, To geom.Vec3
	Color    Color
	Width    float64
}

// Arrow is a direction indicator: a shaft from Origin along Dir (unit
// vector) of the given Length, with a flat two-stroke head at the tip.
type Arrow struct {
	Origin geom.Vec3
	Dir    geom.Vec3
	Length float64
	Color  Color
	Width  float64
}

// Tip returns the world-space position of the arrow head.
func (a *Arrow) Tip() geom.Vec3 {
	return a.Origin.Add(a.Dir.Scale(a.Length))
}

// WireSphere is a latitude/longitude wireframe around Center.
type WireSphere struct {
	Center    geom.Vec3
	Radius    float64
	Color     Color
	Meridians int
	Parallels int
}

// Label is a text sprite anchored at a world-space point.
type Label struct {
	Text  string
	At    geom.Vec3
	Color Color
}

func (*Line) isNode()       {}
func (*Arrow) isNode()      {}
func (*WireSphere) isNode() {}
func (*Label) isNode()      {}

// Scene is an ordered list of nodes. Not safe for concurrent use; the demos
// are single event-loop programs.
type Scene struct {
	nodes []Node
}

// Add appends a node. Adding the same pointer twice draws it twice.
func (s *Scene) Add(n Node) {
	s.nodes = append(s.nodes, n)
}

// Remove deletes a node by identity. Removing a node that is not in the
// scene is a no-op.
func (s *Scene) Remove(n Node) {
	for i, existing := range s.nodes {
		if existing == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return
		}
	}
}

// Nodes returns the node list in draw order.
func (s *Scene) Nodes() []Node {
	return s.nodes
}
