// Package morley maintains a draggable triangle and derives from it the
// first Morley triangle: by Morley's trisector theorem, the intersections of
// adjacent angle trisectors of any triangle form an equilateral triangle.
package morley

import (
	"math"

	"github.com/ziotom78/geomdemos/geom"
)

// Triangle is three vertices plus derived interior angles (radians) and side
// lengths. Derived fields are named after the vertex they belong to: AngleA
// is measured at P1, SideA is the side opposite P1, and so on. They are
// recomputed atomically on every vertex mutation, so a reader never observes
// stale or partially updated values.
type Triangle struct {
	P1, P2, P3             geom.Point
	AngleA, AngleB, AngleC float64
	SideA, SideB, SideC    float64
}

// Segment is a guide line between two points.
type Segment struct {
	Start, End geom.Point
}

// New builds a triangle and computes its derived fields.
func New(p1, p2, p3 geom.Point) Triangle {
	t := Triangle{P1: p1, P2: p2, P3: p3}
	t.recompute()
	return t
}

// Vertex returns vertex i (0, 1 or 2).
func (t *Triangle) Vertex(i int) geom.Point {
	switch i {
	case 0:
		return t.P1
	case 1:
		return t.P2
	}
	return t.P3
}

// UpdateVertex replaces vertex i and recomputes all angles and sides in the
// same step. After it returns, the derived fields are always consistent with
// the three vertices.
func (t *Triangle) UpdateVertex(i int, p geom.Point) {
	switch i {
	case 0:
		t.P1 = p
	case 1:
		t.P2 = p
	case 2:
		t.P3 = p
	}
	t.recompute()
}

func (t *Triangle) recompute() {
	t.AngleA = angleAt(t.P1, t.P2, t.P3)
	t.AngleB = angleAt(t.P2, t.P3, t.P1)
	t.AngleC = angleAt(t.P3, t.P1, t.P2)
	t.SideA = geom.Distance(t.P2, t.P3)
	t.SideB = geom.Distance(t.P3, t.P1)
	t.SideC = geom.Distance(t.P1, t.P2)
}

// angleAt returns the interior angle at vertex v. Floating-point drift can
// push the cosine slightly outside [-1, 1], so it is clamped before acos;
// a degenerate (collinear or zero-length) configuration therefore yields 0
// or π rather than NaN.
func angleAt(v, a, b geom.Point) float64 {
	u := a.Sub(v)
	w := b.Sub(v)
	cos := u.Dot(w) / (u.Norm() * w.Norm())
	return math.Acos(geom.Clamp(cos, -1, 1))
}

// PointFromTrilinear converts trilinear coordinates (x : y : z) relative to
// this triangle into a Cartesian point. If a·x + b·y + c·z == 0 the weights
// are degenerate and the result has non-finite coordinates; this function
// does not validate against that, callers must avoid degenerate input.
func (t *Triangle) PointFromTrilinear(x, y, z float64) geom.Point {
	wa := t.SideA * x
	wb := t.SideB * y
	wc := t.SideC * z
	sum := wa + wb + wc
	return geom.Point{
		X: (wa*t.P1.X + wb*t.P2.X + wc*t.P3.X) / sum,
		Y: (wa*t.P1.Y + wb*t.P2.Y + wc*t.P3.Y) / sum,
	}
}

// FirstMorleyTriangle returns the equilateral triangle of Morley's theorem.
// Each vertex has trilinears (1 : 2cos(C/3) : 2cos(B/3)) cyclically
// permuted; vertex i of the result lies nearest the side opposite vertex i
// of t. Pure function, t is not modified.
func (t *Triangle) FirstMorleyTriangle() Triangle {
	ca := 2 * math.Cos(t.AngleA/3)
	cb := 2 * math.Cos(t.AngleB/3)
	cc := 2 * math.Cos(t.AngleC/3)

	return New(
		t.PointFromTrilinear(1, cc, cb),
		t.PointFromTrilinear(cc, 1, ca),
		t.PointFromTrilinear(cb, ca, 1),
	)
}

// TrisectorGuides returns the six segments joining each vertex of t to the
// two Morley vertices its trisectors pass through. m must be the triangle
// returned by FirstMorleyTriangle.
func (t *Triangle) TrisectorGuides(m Triangle) []Segment {
	return []Segment{
		{t.P2, m.P1}, {t.P3, m.P1},
		{t.P3, m.P2}, {t.P1, m.P2},
		{t.P1, m.P3}, {t.P2, m.P3},
	}
}
