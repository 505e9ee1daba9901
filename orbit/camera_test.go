package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ziotom78/geomdemos/pointer"
)

const tolerance = 1e-9

func TestMoveRequiresPress(t *testing.T) {
	c := NewCamera()
	az, el := c.Azimuth, c.Elevation

	c.Move(pointer.Event{X: 100, Y: 100})
	assert.Equal(t, az, c.Azimuth)
	assert.Equal(t, el, c.Elevation)
}

func TestDragUpdatesAngles(t *testing.T) {
	c := NewCamera()
	az, el := c.Azimuth, c.Elevation

	c.Press(pointer.Event{X: 10, Y: 20})
	c.Move(pointer.Event{X: 30, Y: 25})

	assert.InDelta(t, az-20*Sensitivity, c.Azimuth, tolerance)
	assert.InDelta(t, el-5*Sensitivity, c.Elevation, tolerance)

	// Deltas are relative to the previous move, not to the press
	c.Move(pointer.Event{X: 30, Y: 35})
	assert.InDelta(t, el-15*Sensitivity, c.Elevation, tolerance)

	c.Release()
	assert.False(t, c.Dragging())
	c.Move(pointer.Event{X: 1000, Y: 1000})
	assert.InDelta(t, el-15*Sensitivity, c.Elevation, tolerance)
}

func TestElevationClampedAtPoles(t *testing.T) {
	c := NewCamera()

	// Drag far upward: elevation must stop at the epsilon band, not flip
	c.Press(pointer.Event{X: 0, Y: 0})
	c.Move(pointer.Event{X: 0, Y: 1e6})
	assert.InDelta(t, PoleEpsilon, c.Elevation, tolerance)

	c.Move(pointer.Event{X: 0, Y: -2e6})
	assert.InDelta(t, math.Pi-PoleEpsilon, c.Elevation, tolerance)
}

func TestWheelZoomClamped(t *testing.T) {
	c := NewCamera()

	c.Wheel(pointer.WheelEvent{DeltaY: 100})
	assert.InDelta(t, 5*(1+100*ZoomRate), c.Distance, tolerance)

	for i := 0; i < 100; i++ {
		c.Wheel(pointer.WheelEvent{DeltaY: 1000})
	}
	assert.InDelta(t, MaxDistance, c.Distance, tolerance)

	for i := 0; i < 100; i++ {
		c.Wheel(pointer.WheelEvent{DeltaY: -900})
	}
	assert.InDelta(t, MinDistance, c.Distance, tolerance)
}

func TestPositionFormula(t *testing.T) {
	c := &Camera{Azimuth: 0, Elevation: math.Pi / 2, Distance: 3}
	p := c.Position()
	assert.InDelta(t, 0, p.X, tolerance)
	assert.InDelta(t, 0, p.Y, tolerance)
	assert.InDelta(t, 3, p.Z, tolerance)

	// Looking straight down the +Y axis from near the pole
	c = &Camera{Azimuth: 0, Elevation: PoleEpsilon, Distance: 2}
	p = c.Position()
	assert.InDelta(t, 2*math.Cos(PoleEpsilon), p.Y, tolerance)

	c = &Camera{Azimuth: math.Pi / 2, Elevation: math.Pi / 2, Distance: 4}
	p = c.Position()
	assert.InDelta(t, 4, p.X, tolerance)
	assert.InDelta(t, 0, p.Z, tolerance)
}
