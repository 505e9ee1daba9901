package geom

import "math"

// Point is a location in 2D screen space. Vec2 is a free displacement; it
// never owns a position. Keeping the two as distinct types makes it a compile
// error to, say, add two locations together.
type Point struct {
	X, Y float64
}

type Vec2 struct {
	X, Y float64
}

// Sub returns the displacement from o to p.
func (p Point) Sub(o Point) Vec2 {
	return Vec2{p.X - o.X, p.Y - o.Y}
}

// Add returns p translated by d.
func (p Point) Add(d Vec2) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Distance returns the Euclidean distance between p and o.
func Distance(p, o Point) float64 {
	return p.Sub(o).Norm()
}

func (d Vec2) Add(o Vec2) Vec2 {
	return Vec2{d.X + o.X, d.Y + o.Y}
}

func (d Vec2) Scale(s float64) Vec2 {
	return Vec2{d.X * s, d.Y * s}
}

func (d Vec2) Dot(o Vec2) float64 {
	return d.X*o.X + d.Y*o.Y
}

func (d Vec2) Norm() float64 {
	return math.Sqrt(d.Dot(d))
}
