// Interactive geometry demos: a 3D viewer of the polarization basis of
// Ludwig's third convention, and a 2D draggable-triangle illustration of
// Morley's trisector theorem.
//
// The geometry engines (packages ludwig and morley) are pure and carry no
// rendering dependencies; packages scene and canvas adapt them to a drawing
// backend; package widget wires geometry, input and drawing into per-widget
// contexts. The cmd directory hosts each widget in an interactive window.
package geomdemos

import "github.com/ziotom78/geomdemos/widget"

type Polarization = widget.Polarization
type Morley = widget.Morley

// NewPolarization returns the 3D basis viewer widget for the given viewport.
func NewPolarization(width, height int) *Polarization {
	return widget.NewPolarization(width, height)
}

// NewMorley returns the 2D Morley triangle widget for the given viewport.
func NewMorley(width, height int) *Morley {
	return widget.NewMorley(width, height)
}
