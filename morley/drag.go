package morley

import (
	"github.com/ziotom78/geomdemos/geom"
	"github.com/ziotom78/geomdemos/pointer"
)

// PointRadius is the render radius of a vertex marker in pixels. A press
// within twice this radius of a vertex grabs it.
const PointRadius = 5.0

const hitRadius = 2 * PointRadius

// DragState is the state of the vertex-drag machine. The zero value is the
// idle state. While active, the new vertex position is always computed from
// the positions recorded at press time plus the total pointer delta, so the
// drag never accumulates per-event rounding error.
type DragState struct {
	Active       bool
	VertexIndex  int
	PointerStart geom.Point
	VertexStart  geom.Point
}

// HandlePress transitions Idle → Dragging if the press lands within the hit
// radius of a vertex. Vertices are checked in index order and the first
// match wins. A press away from every vertex leaves the machine idle.
func HandlePress(t *Triangle, ev pointer.Event) DragState {
	p := ev.Point()
	for i := 0; i < 3; i++ {
		v := t.Vertex(i)
		if geom.Distance(p, v) <= hitRadius {
			return DragState{
				Active:       true,
				VertexIndex:  i,
				PointerStart: p,
				VertexStart:  v,
			}
		}
	}
	return DragState{}
}

// HandleMove moves the grabbed vertex by the pointer delta since the press
// and recomputes the triangle's derived fields. A move while idle is a
// no-op. The returned state is unchanged; it is passed back for symmetry
// with the other transitions.
func HandleMove(s DragState, t *Triangle, ev pointer.Event) DragState {
	if !s.Active {
		return s
	}
	t.UpdateVertex(s.VertexIndex, s.VertexStart.Add(ev.Point().Sub(s.PointerStart)))
	return s
}

// HandleRelease transitions back to Idle unconditionally. No snapping.
func HandleRelease(DragState) DragState {
	return DragState{}
}
