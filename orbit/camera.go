// Package orbit implements a drag-to-orbit, wheel-to-zoom camera controller.
// The camera moves on a sphere around the origin and always looks at it; its
// state is independent of whatever the scene displays.
package orbit

import (
	"math"

	"github.com/ziotom78/geomdemos/geom"
	"github.com/ziotom78/geomdemos/pointer"
)

const (
	// Sensitivity converts pointer pixels into orbit radians.
	Sensitivity = 0.01
	// ZoomRate converts wheel delta into a relative distance change.
	ZoomRate = 0.001
	// PoleEpsilon keeps the elevation away from 0 and π, where the view
	// basis would flip.
	PoleEpsilon = 0.01

	MinDistance = 1.5
	MaxDistance = 20.0
)

// Camera holds the orbit state. Azimuth and Elevation are in radians,
// Elevation ∈ (0, π) measured from the +Y axis. The zero value is not
// useful; use NewCamera.
type Camera struct {
	Azimuth   float64
	Elevation float64
	Distance  float64

	dragging     bool
	lastX, lastY float64
}

// NewCamera returns a camera at a three-quarter view of the origin.
func NewCamera() *Camera {
	return &Camera{
		Azimuth:   math.Pi / 4,
		Elevation: math.Pi / 3,
		Distance:  5,
	}
}

// Press starts an orbit drag at the given pointer position.
func (c *Camera) Press(ev pointer.Event) {
	c.dragging = true
	c.lastX, c.lastY = ev.X, ev.Y
}

// Move updates the orbit angles from the pointer delta since the last event.
// Does nothing unless a drag is in progress.
func (c *Camera) Move(ev pointer.Event) {
	if !c.dragging {
		return
	}
	dx := ev.X - c.lastX
	dy := ev.Y - c.lastY
	c.lastX, c.lastY = ev.X, ev.Y

	c.Azimuth -= dx * Sensitivity
	c.Elevation = geom.Clamp(c.Elevation-dy*Sensitivity, PoleEpsilon, math.Pi-PoleEpsilon)
}

// Release ends the drag. There is no momentum.
func (c *Camera) Release() {
	c.dragging = false
}

// Dragging reports whether an orbit drag is in progress.
func (c *Camera) Dragging() bool {
	return c.dragging
}

// Wheel zooms by scaling the distance, clamped to [MinDistance, MaxDistance].
// The hosting adapter must suppress any default scroll behavior.
func (c *Camera) Wheel(ev pointer.WheelEvent) {
	c.Distance = geom.Clamp(c.Distance*(1+ev.DeltaY*ZoomRate), MinDistance, MaxDistance)
}

// Position returns the camera location in world space. The camera looks at
// the origin with +Y as the up reference.
func (c *Camera) Position() geom.Vec3 {
	sinE, cosE := math.Sin(c.Elevation), math.Cos(c.Elevation)
	sinA, cosA := math.Sin(c.Azimuth), math.Cos(c.Azimuth)
	return geom.Vec3{
		X: c.Distance * sinE * sinA,
		Y: c.Distance * cosE,
		Z: c.Distance * sinE * cosA,
	}
}
