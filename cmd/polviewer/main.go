// Interactive viewer for the polarization basis of Ludwig's third
// convention. Drag to orbit, scroll to zoom, arrow keys to steer the
// (theta, phi) pointing direction. --snapshot renders a single frame to a
// PNG (and previews it in the terminal) instead of opening a window.
package main

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/ziotom78/geomdemos/pointer"
	"github.com/ziotom78/geomdemos/widget"
)

var (
	width    = kingpin.Flag("width", "Window width in pixels.").Default("800").Int()
	height   = kingpin.Flag("height", "Window height in pixels.").Default("600").Int()
	theta    = kingpin.Flag("theta", "Initial colatitude in degrees (0-180).").Default("45").Float64()
	phi      = kingpin.Flag("phi", "Initial azimuth in degrees (0-360).").Default("30").Float64()
	snapshot = kingpin.Flag("snapshot", "Render one frame to this PNG file and exit.").String()
)

// Degrees per tick while a slider key is held.
const angleStep = 1.0

// Wheel steps are small on most mice; scale them up so a notch is a visible
// zoom change. The sign flip makes wheel-up zoom in.
const wheelScale = -40.0

type game struct {
	w             *widget.Polarization
	dc            *gg.Context
	width, height int
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()
	ev := pointer.Event{X: float64(x), Y: float64(y)}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.w.Press(ev)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.w.Release()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.w.Move(ev)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.w.Wheel(pointer.WheelEvent{DeltaY: wy * wheelScale})
	}

	// Arrow keys stand in for the theta/phi sliders; the widget clamps to
	// the declared ranges.
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.w.SetTheta(g.w.Angles.ThetaDeg - angleStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.w.SetTheta(g.w.Angles.ThetaDeg + angleStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.w.SetPhi(g.w.Angles.PhiDeg - angleStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.w.SetPhi(g.w.Angles.PhiDeg + angleStep)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.w.Draw(g.dc)
	screen.WritePixels(g.dc.Image().(*image.RGBA).Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.dc = gg.NewContext(g.width, g.height)
		g.w.Resize(g.width, g.height)
	}
	return g.width, g.height
}

func writeSnapshot(w *widget.Polarization, path string) error {
	dc := gg.NewContext(*width, *height)
	w.Draw(dc)
	if err := dc.SavePNG(path); err != nil {
		return errors.Wrapf(err, "could not write snapshot %q", path)
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

func main() {
	kingpin.Parse()

	w := widget.NewPolarization(*width, *height)
	w.SetTheta(*theta)
	w.SetPhi(*phi)

	if *snapshot != "" {
		if err := writeSnapshot(w, *snapshot); err != nil {
			log.Fatalf("polviewer: %v", err)
		}
		return
	}

	fmt.Println(aurora.Green("polviewer"),
		"— drag to orbit, scroll to zoom, arrow keys to steer the boresight")

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Ludwig-3 polarization basis")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	g := &game{w: w, dc: gg.NewContext(*width, *height), width: *width, height: *height}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("polviewer: %v", err)
	}
}
