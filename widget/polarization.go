// Package widget holds the per-widget context objects. All mutable demo
// state (angles, camera, triangle, drag session) lives here rather than in
// package-level variables, so several instances can coexist in one process.
package widget

import (
	"github.com/fogleman/gg"

	"github.com/ziotom78/geomdemos/geom"
	"github.com/ziotom78/geomdemos/ludwig"
	"github.com/ziotom78/geomdemos/orbit"
	"github.com/ziotom78/geomdemos/pointer"
	"github.com/ziotom78/geomdemos/scene"
)

// SphericalAngles are the slider-driven parameters of the basis viewer, in
// degrees. Theta is the colatitude, phi the azimuth.
type SphericalAngles struct {
	ThetaDeg float64
	PhiDeg   float64
}

// Polarization is the 3D widget: a wireframe unit sphere, the three basis
// arrows of Ludwig's third convention, and an orbitable camera. It redraws
// every frame (the hosting loop calls Draw unconditionally).
type Polarization struct {
	Angles SphericalAngles
	Camera *orbit.Camera

	scn      *scene.Scene
	view     *scene.OrthoCamera
	renderer *scene.Renderer

	radial, coPolar, crossPolar      *scene.Arrow
	radialLabel, coLabel, crossLabel *scene.Label
}

// NewPolarization builds the widget with its initial scene for a viewport
// of the given pixel size.
func NewPolarization(width, height int) *Polarization {
	w := &Polarization{
		Angles: SphericalAngles{ThetaDeg: 45, PhiDeg: 30},
		Camera: orbit.NewCamera(),
		scn:    &scene.Scene{},
		view:   scene.NewOrthoCamera(1.6, width, height),
	}
	w.renderer = scene.NewRenderer(w.view)

	w.scn.Add(&scene.WireSphere{Radius: 1, Color: scene.Gray, Meridians: 8, Parallels: 5})

	// Fixed reference axes, slightly longer than the sphere radius
	for _, axis := range []geom.Vec3{{X: 1.3}, {Y: 1.3}, {Z: 1.3}} {
		w.scn.Add(&scene.Line{To: axis, Color: scene.Gray, Width: 1})
	}
	w.scn.Add(&scene.Label{Text: "z", At: geom.Vec3{Z: 1.3 * ludwig.TipLabelOffset}, Color: scene.Gray})

	w.radial = &scene.Arrow{Length: 1, Color: scene.Red}
	w.coPolar = &scene.Arrow{Length: 1, Color: scene.Green}
	w.crossPolar = &scene.Arrow{Length: 1, Color: scene.Blue}
	w.radialLabel = &scene.Label{Text: "radial", Color: scene.Red}
	w.coLabel = &scene.Label{Text: "co-polar", Color: scene.Green}
	w.crossLabel = &scene.Label{Text: "cross-polar", Color: scene.Blue}
	for _, n := range []scene.Node{
		w.radial, w.coPolar, w.crossPolar,
		w.radialLabel, w.coLabel, w.crossLabel,
	} {
		w.scn.Add(n)
	}

	w.rebuild()
	return w
}

// SetTheta sets the colatitude slider, clamped to [0°, 180°].
func (w *Polarization) SetTheta(deg float64) {
	w.Angles.ThetaDeg = geom.Clamp(deg, 0, 180)
	w.rebuild()
}

// SetPhi sets the azimuth slider, clamped to [0°, 360°].
func (w *Polarization) SetPhi(deg float64) {
	w.Angles.PhiDeg = geom.Clamp(deg, 0, 360)
	w.rebuild()
}

// rebuild repoints the arrows and labels at the current basis. Labels sit a
// bit beyond the arrow tips so they don't overlap the heads.
func (w *Polarization) rebuild() {
	b := ludwig.BasisAt(w.Angles.ThetaDeg, w.Angles.PhiDeg)

	w.radial.Dir = b.Radial
	w.coPolar.Dir = b.CoPolar
	w.crossPolar.Dir = b.CrossPolar

	w.radialLabel.At = b.Radial.Scale(ludwig.ArrowLabelOffset)
	w.coLabel.At = b.CoPolar.Scale(ludwig.ArrowLabelOffset)
	w.crossLabel.At = b.CrossPolar.Scale(ludwig.ArrowLabelOffset)
}

// Press/Move/Release/Wheel forward pointer input to the orbit camera.
func (w *Polarization) Press(ev pointer.Event) { w.Camera.Press(ev) }
func (w *Polarization) Move(ev pointer.Event)  { w.Camera.Move(ev) }
func (w *Polarization) Release()               { w.Camera.Release() }

func (w *Polarization) Wheel(ev pointer.WheelEvent) { w.Camera.Wheel(ev) }

// Resize must be called whenever the hosting viewport changes size.
func (w *Polarization) Resize(width, height int) {
	w.view.SetViewport(width, height)
}

// Draw renders the current state. The camera eye is refreshed here so a
// frame always reflects the latest orbit position.
func (w *Polarization) Draw(dc *gg.Context) {
	w.view.Eye = w.Camera.Position()
	w.renderer.Render(dc, w.scn)
}

// Scene exposes the node list for debugging dumps.
func (w *Polarization) Scene() *scene.Scene {
	return w.scn
}
