// Package canvas defines the immediate-mode 2D drawing surface consumed by
// the triangle demo, and an implementation backed by fogleman/gg. Keeping
// the surface an interface means the widget layer never imports a drawing
// library and tests can record draw calls instead of rasterizing.
package canvas

import "github.com/fogleman/gg"

// Surface is the drawing contract: path building, filled circles and
// style save/restore. Coordinates are surface-local pixels.
type Surface interface {
	Clear(r, g, b float64)
	SetColor(r, g, b float64)
	SetLineWidth(w float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	FillPath()
	FillCircle(x, y, radius float64)
	Save()
	Restore()
}

// GG is a Surface over a gg.Context.
type GG struct {
	DC *gg.Context

	// Offset of the surface inside its hosting window, subtracted when
	// translating pointer coordinates to surface-local space.
	OffsetX, OffsetY float64
}

func NewGG(dc *gg.Context) *GG {
	return &GG{DC: dc}
}

// ToLocal translates window/page coordinates into surface-local ones. Every
// pointer event must go through this before any hit test or delta math.
func (g *GG) ToLocal(pageX, pageY float64) (float64, float64) {
	return pageX - g.OffsetX, pageY - g.OffsetY
}

func (g *GG) Clear(r, gr, b float64) {
	g.DC.SetRGB(r, gr, b)
	g.DC.Clear()
}

func (g *GG) SetColor(r, gr, b float64) { g.DC.SetRGB(r, gr, b) }
func (g *GG) SetLineWidth(w float64) { g.DC.SetLineWidth(w) }
func (g *GG) MoveTo(x, y float64) { g.DC.MoveTo(x, y) }
func (g *GG) LineTo(x, y float64) { g.DC.LineTo(x, y) }
func (g *GG) Stroke() { g.DC.Stroke() }
func (g *GG) FillPath() { g.DC.Fill() }

func (g *GG) FillCircle(x, y, radius float64) {
	g.DC.DrawCircle(x, y, radius)
	g.DC.Fill()
}

func (g *GG) Save()    { g.DC.Push() }
func (g *GG) Restore() { g.DC.Pop() }
