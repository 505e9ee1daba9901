package morley

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziotom78/geomdemos/geom"
)

const tolerance = 1e-9

func TestRightTriangleDerivedFields(t *testing.T) {
	tri := New(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 0, Y: 3})

	assert.InDelta(t, math.Pi/2, tri.AngleA, tolerance)

	// Sides are opposite their like-named vertex: the hypotenuse faces the
	// right angle at P1.
	assert.InDelta(t, 5, tri.SideA, tolerance)
	assert.InDelta(t, 3, tri.SideB, tolerance)
	assert.InDelta(t, 4, tri.SideC, tolerance)

	// Angle sum closes
	assert.InDelta(t, math.Pi, tri.AngleA+tri.AngleB+tri.AngleC, tolerance)
}

func TestUpdateVertexRecomputesEverything(t *testing.T) {
	tri := New(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 0, Y: 3})

	tri.UpdateVertex(1, geom.Point{X: 3, Y: 0})

	fresh := New(tri.P1, tri.P2, tri.P3)
	assert.Equal(t, fresh, tri)
	assert.InDelta(t, 3, tri.SideC, tolerance)
}

func TestUpdateVertexIdempotent(t *testing.T) {
	tri := New(geom.Point{X: 10, Y: 10}, geom.Point{X: 200, Y: 40}, geom.Point{X: 90, Y: 300})

	once := tri
	once.UpdateVertex(2, geom.Point{X: 120, Y: 250})

	twice := tri
	twice.UpdateVertex(2, geom.Point{X: 120, Y: 250})
	twice.UpdateVertex(2, geom.Point{X: 120, Y: 250})

	assert.Equal(t, once, twice)
}

func TestPointFromTrilinearIncenter(t *testing.T) {
	// (1 : 1 : 1) is the incenter, equidistant from the three sides. For a
	// 3-4-5 triangle with legs on the axes the inradius is 1, so the
	// incenter sits at (1, 1).
	tri := New(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 0, Y: 3})
	p := tri.PointFromTrilinear(1, 1, 1)
	assert.InDelta(t, 1, p.X, tolerance)
	assert.InDelta(t, 1, p.Y, tolerance)
}

func TestPointFromTrilinearVertices(t *testing.T) {
	tri := New(geom.Point{X: 2, Y: 1}, geom.Point{X: 7, Y: 3}, geom.Point{X: 4, Y: 9})

	p := tri.PointFromTrilinear(1, 0, 0)
	assert.InDelta(t, tri.P1.X, p.X, tolerance)
	assert.InDelta(t, tri.P1.Y, p.Y, tolerance)

	p = tri.PointFromTrilinear(0, 0, 1)
	assert.InDelta(t, tri.P3.X, p.X, tolerance)
	assert.InDelta(t, tri.P3.Y, p.Y, tolerance)
}

func TestPointFromTrilinearDegenerateWeights(t *testing.T) {
	// A zero weighted-side sum is documented to yield non-finite output
	// rather than an error.
	tri := New(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 0, Y: 3})
	p := tri.PointFromTrilinear(0, 0, 0)
	assert.False(t, isFinite(p.X) && isFinite(p.Y))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Morley's theorem: the first derived triangle is equilateral for any
// non-degenerate input. Checked over fixture triangles of varied shape.
func TestFirstMorleyTriangleIsEquilateral(t *testing.T) {
	fixtureNames := []string{"equilateral", "scalene", "obtuse", "thin"}

	triangles := []Triangle{
		New(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 0, Y: 3}),
	}
	for _, name := range fixtureNames {
		triangles = append(triangles, LoadFixtureTriangle(name))
	}

	for _, tri := range triangles {
		m := tri.FirstMorleyTriangle()

		require.Greater(t, m.SideA, 0.0)
		scale := m.SideA
		assert.InDelta(t, 1, m.SideB/scale, 1e-6)
		assert.InDelta(t, 1, m.SideC/scale, 1e-6)

		// All three interior angles are 60°
		assert.InDelta(t, math.Pi/3, m.AngleA, 1e-6)
		assert.InDelta(t, math.Pi/3, m.AngleB, 1e-6)
		assert.InDelta(t, math.Pi/3, m.AngleC, 1e-6)
	}
}

func TestFirstMorleyTriangleDoesNotMutateInput(t *testing.T) {
	tri := New(geom.Point{X: 40, Y: 320}, geom.Point{X: 360, Y: 280}, geom.Point{X: 140, Y: 60})
	before := tri
	tri.FirstMorleyTriangle()
	assert.Equal(t, before, tri)
}

func TestTrisectorGuides(t *testing.T) {
	tri := New(geom.Point{X: 40, Y: 320}, geom.Point{X: 360, Y: 280}, geom.Point{X: 140, Y: 60})
	m := tri.FirstMorleyTriangle()

	guides := tri.TrisectorGuides(m)
	require.Len(t, guides, 6)

	// Each Morley vertex is reached from the two base vertices whose
	// trisectors meet there.
	assert.Equal(t, Segment{tri.P2, m.P1}, guides[0])
	assert.Equal(t, Segment{tri.P3, m.P1}, guides[1])
	assert.Equal(t, Segment{tri.P1, m.P2}, guides[3])
}
