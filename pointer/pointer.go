// Package pointer defines the input events shared by the interaction
// controllers. Adapters are responsible for translating page/viewport
// coordinates into widget-local space before building an Event, so the
// controllers never see the hosting surface's offset.
package pointer

import "github.com/ziotom78/geomdemos/geom"

// Event is a press, move or release at a widget-local position.
type Event struct {
	X, Y float64
}

// Point returns the event position as a 2D point.
func (e Event) Point() geom.Point {
	return geom.Point{X: e.X, Y: e.Y}
}

// WheelEvent is a scroll step. Positive DeltaY scrolls down/away.
type WheelEvent struct {
	DeltaY float64
}
