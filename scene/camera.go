package scene

import (
	"github.com/ziotom78/geomdemos/geom"
)

// OrthoCamera projects world space onto the viewport with an orthographic
// frustum. The vertical half-extent is fixed (it acts as the zoom level);
// the horizontal half-extent follows the viewport aspect ratio, so resizing
// the container never stretches the image. The camera always looks at the
// origin with +Y as the up reference.
type OrthoCamera struct {
	HalfHeight float64
	Eye        geom.Vec3

	width, height int
}

// NewOrthoCamera returns a camera with the given vertical half-extent and
// an initial viewport.
func NewOrthoCamera(halfHeight float64, width, height int) *OrthoCamera {
	return &OrthoCamera{
		HalfHeight: halfHeight,
		Eye:        geom.Vec3{Z: 5},
		width:      width,
		height:     height,
	}
}

// SetViewport updates the projection for a new container size. Must be
// called whenever the viewport is resized.
func (c *OrthoCamera) SetViewport(width, height int) {
	c.width, c.height = width, height
}

// Viewport returns the current viewport size in pixels.
func (c *OrthoCamera) Viewport() (int, int) {
	return c.width, c.height
}

func (c *OrthoCamera) aspect() float64 {
	if c.height == 0 {
		return 1
	}
	return float64(c.width) / float64(c.height)
}

// basis returns the right/up/forward view vectors for the current eye
// position. Falls back to +X for right when the view direction is parallel
// to the up reference.
func (c *OrthoCamera) basis() (right, up, fwd geom.Vec3) {
	fwd = c.Eye.Scale(-1).Normalize() // look at the origin
	worldUp := geom.Vec3{Y: 1}
	right = fwd.Cross(worldUp)
	if right.Norm() < 1e-6 {
		right = geom.Vec3{X: 1}
	}
	right = right.Normalize()
	up = right.Cross(fwd).Normalize()
	return right, up, fwd
}

// Project maps a world-space point to pixel coordinates. With an
// orthographic frustum every point projects; no clipping is done, points
// behind the eye simply land where their plane coordinates put them.
func (c *OrthoCamera) Project(p geom.Vec3) (x, y float64) {
	right, up, _ := c.basis()
	rel := p.Sub(c.Eye)

	halfW := c.HalfHeight * c.aspect()
	nx := rel.Dot(right) / halfW // [-1, 1] across the viewport
	ny := rel.Dot(up) / c.HalfHeight

	x = (nx + 1) / 2 * float64(c.width)
	y = (1 - ny) / 2 * float64(c.height)
	return x, y
}
