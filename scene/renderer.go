package scene

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/ziotom78/geomdemos/geom"
)

// Arrow head proportions in world units, relative to the arrow length.
const (
	headLength = 0.08
	headSpread = 0.04
)

// Renderer strokes a Scene onto a gg context through an OrthoCamera. It is
// software projection: every primitive is reduced to 2D polylines, which is
// plenty for a handful of arrows and a wireframe sphere.
type Renderer struct {
	Camera *OrthoCamera
}

func NewRenderer(camera *OrthoCamera) *Renderer {
	return &Renderer{Camera: camera}
}

// Render clears the context and draws every node in scene order.
func (r *Renderer) Render(dc *gg.Context, s *Scene) {
	dc.SetRGB(0.08, 0.08, 0.1)
	dc.Clear()

	for _, node := range s.Nodes() {
		switch n := node.(type) {
		case *Line:
			r.drawLine(dc, n)
		case *Arrow:
			r.drawArrow(dc, n)
		case *WireSphere:
			r.drawWireSphere(dc, n)
		case *Label:
			r.drawLabel(dc, n)
		}
	}
}

func (r *Renderer) strokeSegment(dc *gg.Context, from, to geom.Vec3, color Color, width float64) {
	x1, y1 := r.Camera.Project(from)
	x2, y2 := r.Camera.Project(to)
	dc.SetRGB(color.R, color.G, color.B)
	dc.SetLineWidth(width)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}

func (r *Renderer) drawLine(dc *gg.Context, n *Line) {
	width := n.Width
	if width == 0 {
		width = 1
	}
	r.strokeSegment(dc, n.From, n.To, n.Color, width)
}

func (r *Renderer) drawArrow(dc *gg.Context, n *Arrow) {
	width := n.Width
	if width == 0 {
		width = 2
	}
	tip := n.Tip()
	r.strokeSegment(dc, n.Origin, tip, n.Color, width)

	// Head: two short strokes splayed around the reversed direction. Built
	// in world space with an arbitrary perpendicular, which reads fine from
	// any viewpoint at these sizes.
	perp := perpendicular(n.Dir)
	back := n.Dir.Scale(-headLength * n.Length)
	side := perp.Scale(headSpread * n.Length)
	r.strokeSegment(dc, tip, tip.Add(back).Add(side), n.Color, width)
	r.strokeSegment(dc, tip, tip.Add(back).Sub(side), n.Color, width)
}

// perpendicular returns a unit vector orthogonal to v.
func perpendicular(v geom.Vec3) geom.Vec3 {
	if math.Abs(v.X) < 0.9 {
		return v.Cross(geom.Vec3{X: 1}).Normalize()
	}
	return v.Cross(geom.Vec3{Y: 1}).Normalize()
}

const sphereSegments = 48

func (r *Renderer) drawWireSphere(dc *gg.Context, n *WireSphere) {
	dc.SetRGB(n.Color.R, n.Color.G, n.Color.B)
	dc.SetLineWidth(0.5)

	// Parallels: circles of constant latitude
	for i := 1; i <= n.Parallels; i++ {
		lat := math.Pi * float64(i) / float64(n.Parallels+1)
		z := n.Radius * math.Cos(lat)
		rad := n.Radius * math.Sin(lat)
		r.strokeCircle(dc, n.Center, func(t float64) geom.Vec3 {
			return geom.Vec3{X: rad * math.Cos(t), Y: rad * math.Sin(t), Z: z}
		})
	}

	// Meridians: great circles through the poles
	for i := 0; i < n.Meridians; i++ {
		lon := math.Pi * float64(i) / float64(n.Meridians)
		sinLon, cosLon := math.Sin(lon), math.Cos(lon)
		r.strokeCircle(dc, n.Center, func(t float64) geom.Vec3 {
			x := n.Radius * math.Sin(t)
			return geom.Vec3{X: x * cosLon, Y: x * sinLon, Z: n.Radius * math.Cos(t)}
		})
	}
}

func (r *Renderer) strokeCircle(dc *gg.Context, center geom.Vec3, at func(t float64) geom.Vec3) {
	for i := 0; i <= sphereSegments; i++ {
		t := 2 * math.Pi * float64(i) / float64(sphereSegments)
		x, y := r.Camera.Project(center.Add(at(t)))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()
}

func (r *Renderer) drawLabel(dc *gg.Context, n *Label) {
	x, y := r.Camera.Project(n.At)
	dc.SetRGB(n.Color.R, n.Color.G, n.Color.B)
	dc.DrawStringAnchored(n.Text, x, y, 0.5, 0.5)
}
