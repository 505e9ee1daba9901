package widget

import (
	"github.com/ziotom78/geomdemos/canvas"
	"github.com/ziotom78/geomdemos/geom"
	"github.com/ziotom78/geomdemos/morley"
	"github.com/ziotom78/geomdemos/pointer"
)

// Morley is the 2D widget: a draggable triangle, its first Morley triangle
// and the trisector guide lines. Unlike the 3D widget it redraws only after
// state-changing events; the hosting loop should check Dirty before asking
// for a frame.
type Morley struct {
	Triangle morley.Triangle

	drag  morley.DragState
	dirty bool
}

// NewMorley builds the widget with its fixed initial triangle, proportional
// to the viewport size.
func NewMorley(width, height int) *Morley {
	fw, fh := float64(width), float64(height)
	return &Morley{
		Triangle: morley.New(
			geom.Point{X: fw * 0.22, Y: fh * 0.75},
			geom.Point{X: fw * 0.80, Y: fh * 0.68},
			geom.Point{X: fw * 0.45, Y: fh * 0.18},
		),
		dirty: true,
	}
}

// Press runs the Idle → Dragging transition. A press away from every vertex
// leaves the widget idle and does not dirty it.
func (w *Morley) Press(ev pointer.Event) {
	w.drag = morley.HandlePress(&w.Triangle, ev)
}

// Move drags the grabbed vertex, if any, and schedules a redraw.
func (w *Morley) Move(ev pointer.Event) {
	if !w.drag.Active {
		return
	}
	w.drag = morley.HandleMove(w.drag, &w.Triangle, ev)
	w.dirty = true
}

// Release ends the drag session unconditionally.
func (w *Morley) Release() {
	w.drag = morley.HandleRelease(w.drag)
}

// Dragging reports whether a vertex is currently grabbed.
func (w *Morley) Dragging() bool {
	return w.drag.Active
}

// Dirty reports whether the on-screen frame is stale.
func (w *Morley) Dirty() bool {
	return w.dirty
}

// Invalidate forces a redraw on the next frame.
func (w *Morley) Invalidate() {
	w.dirty = true
}

// Draw clears the surface and redraws everything: base triangle, trisector
// guides, Morley triangle, then the vertex markers on top.
func (w *Morley) Draw(s canvas.Surface) {
	s.Clear(0.98, 0.98, 0.96)

	m := w.Triangle.FirstMorleyTriangle()

	s.Save()

	s.SetColor(0.6, 0.6, 0.6)
	s.SetLineWidth(1)
	for _, g := range w.Triangle.TrisectorGuides(m) {
		s.MoveTo(g.Start.X, g.Start.Y)
		s.LineTo(g.End.X, g.End.Y)
		s.Stroke()
	}

	s.SetColor(0.15, 0.15, 0.2)
	s.SetLineWidth(2)
	strokeTriangle(s, w.Triangle)

	s.SetColor(0.85, 0.25, 0.25)
	s.SetLineWidth(2)
	strokeTriangle(s, m)

	s.SetColor(0.2, 0.35, 0.8)
	for i := 0; i < 3; i++ {
		v := w.Triangle.Vertex(i)
		s.FillCircle(v.X, v.Y, morley.PointRadius)
	}

	s.Restore()
	w.dirty = false
}

func strokeTriangle(s canvas.Surface, t morley.Triangle) {
	s.MoveTo(t.P1.X, t.P1.Y)
	s.LineTo(t.P2.X, t.P2.Y)
	s.LineTo(t.P3.X, t.P3.Y)
	s.LineTo(t.P1.X, t.P1.Y)
	s.Stroke()
}
