// Package ludwig computes the polarization basis of Ludwig's third
// convention: for a pointing direction given by spherical angles (theta,
// phi), it yields the radial unit vector together with the co-polar and
// cross-polar unit vectors used to decompose a transverse electromagnetic
// field relative to a reference polarization. Theta = 0 is boresight.
package ludwig

import (
	"math"

	"github.com/ziotom78/geomdemos/geom"
)

// Basis is the orthonormal frame at (theta, phi). The co-polar and
// cross-polar vectors always lie in the plane orthogonal to the radial
// vector; this is an algebraic identity of the closed forms below, not
// something enforced at runtime.
type Basis struct {
	Radial     geom.Vec3
	CoPolar    geom.Vec3
	CrossPolar geom.Vec3
}

// Offsets applied when placing labels next to the basis arrows. Purely
// cosmetic spacing, no geometric meaning.
const (
	ArrowLabelOffset = 1.1
	TipLabelOffset   = 1.02
)

// BasisAt returns the basis for the given colatitude and azimuth in degrees.
// Valid for theta in [0, 180] and phi in [0, 360]; the closed forms are
// well defined for any input, so no range check is done here (sliders clamp
// upstream).
func BasisAt(thetaDeg, phiDeg float64) Basis {
	theta := geom.Radians(thetaDeg)
	phi := geom.Radians(phiDeg)

	sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

	return Basis{
		Radial: geom.Vec3{
			X: sinTheta * cosPhi,
			Y: sinTheta * sinPhi,
			Z: cosTheta,
		},
		CoPolar: geom.Vec3{
			X: cosTheta*cosPhi*cosPhi + sinPhi*sinPhi,
			Y: (cosTheta - 1) * cosPhi * sinPhi,
			Z: -sinTheta * cosPhi,
		},
		CrossPolar: geom.Vec3{
			X: (cosTheta - 1) * cosPhi * sinPhi,
			Y: cosPhi*cosPhi + cosTheta*sinPhi*sinPhi,
			Z: -sinTheta * sinPhi,
		},
	}
}
