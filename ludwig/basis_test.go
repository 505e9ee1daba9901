package ludwig

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

// Sample the full angular range on a 10°×10° grid and check that every basis
// is orthonormal. Orthogonality is an algebraic identity of the closed
// forms, so any failure here means a transcription error in BasisAt.
func TestBasisOrthonormal(t *testing.T) {
	for theta := 0.0; theta <= 180.0; theta += 10.0 {
		for phi := 0.0; phi <= 360.0; phi += 10.0 {
			b := BasisAt(theta, phi)

			assert.InDelta(t, 1, b.Radial.Norm(), tolerance,
				"radial norm at θ=%v φ=%v", theta, phi)
			assert.InDelta(t, 1, b.CoPolar.Norm(), tolerance,
				"co-polar norm at θ=%v φ=%v", theta, phi)
			assert.InDelta(t, 1, b.CrossPolar.Norm(), tolerance,
				"cross-polar norm at θ=%v φ=%v", theta, phi)

			assert.InDelta(t, 0, b.Radial.Dot(b.CoPolar), tolerance,
				"radial·co at θ=%v φ=%v", theta, phi)
			assert.InDelta(t, 0, b.Radial.Dot(b.CrossPolar), tolerance,
				"radial·cross at θ=%v φ=%v", theta, phi)
			assert.InDelta(t, 0, b.CoPolar.Dot(b.CrossPolar), tolerance,
				"co·cross at θ=%v φ=%v", theta, phi)
		}
	}
}

// At boresight the radial vector must point along +Z no matter what the
// azimuth is; phi only rotates the transverse pair.
func TestBasisAtBoresight(t *testing.T) {
	for phi := 0.0; phi <= 360.0; phi += 15.0 {
		t.Run(fmt.Sprintf("phi=%v", phi), func(t *testing.T) {
			b := BasisAt(0, phi)
			assert.InDelta(t, 0, b.Radial.X, tolerance)
			assert.InDelta(t, 0, b.Radial.Y, tolerance)
			assert.InDelta(t, 1, b.Radial.Z, tolerance)
		})
	}
}

// Spot-check a couple of axis-aligned configurations.
func TestBasisKnownDirections(t *testing.T) {
	// θ=90°, φ=0° points along +X; the co-polar axis degenerates to -Z.
	b := BasisAt(90, 0)
	assert.InDelta(t, 1, b.Radial.X, tolerance)
	assert.InDelta(t, 0, b.Radial.Y, tolerance)
	assert.InDelta(t, 0, b.Radial.Z, tolerance)
	assert.InDelta(t, -1, b.CoPolar.Z, tolerance)

	// θ=180° is the anti-boresight direction.
	b = BasisAt(180, 0)
	assert.InDelta(t, -1, b.Radial.Z, tolerance)
}
