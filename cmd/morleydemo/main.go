// Interactive illustration of Morley's trisector theorem: drag the blue
// vertices of the triangle and watch its first Morley triangle stay
// equilateral. --snapshot renders a single frame to a PNG (and previews it
// in the terminal) instead of opening a window.
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

	"github.com/ziotom78/geomdemos/canvas"
	"github.com/ziotom78/geomdemos/pointer"
	"github.com/ziotom78/geomdemos/widget"
)

var (
	width    = kingpin.Flag("width", "Window width in pixels.").Default("640").Int()
	height   = kingpin.Flag("height", "Window height in pixels.").Default("480").Int()
	snapshot = kingpin.Flag("snapshot", "Render one frame to this PNG file and exit.").String()
)

type game struct {
	w       *widget.Morley
	surface *canvas.GG
}

// localEvent translates window coordinates into surface-local ones. The
// canvas fills the whole window here, but the translation is where a
// nonzero offset would be applied.
func (g *game) localEvent(x, y int) pointer.Event {
	lx, ly := g.surface.ToLocal(float64(x), float64(y))
	return pointer.Event{X: lx, Y: ly}
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.w.Press(g.localEvent(x, y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.w.Release()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.w.Move(g.localEvent(x, y))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	// The widget re-renders only when its state changed; the cached frame
	// is blitted either way.
	if g.w.Dirty() {
		g.w.Draw(g.surface)
	}
	screen.WritePixels(g.surface.DC.Image().(*image.RGBA).Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return *width, *height
}

func writeSnapshot(w *widget.Morley, path string) error {
	surface := canvas.NewGG(gg.NewContext(*width, *height))
	w.Draw(surface)
	if err := surface.DC.SavePNG(path); err != nil {
		return errors.Wrapf(err, "could not write snapshot %q", path)
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

func main() {
	kingpin.Parse()

	w := widget.NewMorley(*width, *height)

	if *snapshot != "" {
		if err := writeSnapshot(w, *snapshot); err != nil {
			log.Fatalf("morleydemo: %v", err)
		}
		return
	}

	fmt.Println(aurora.Green("morleydemo"), "— drag the blue vertices")

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Morley's trisector theorem")
	g := &game{w: w, surface: canvas.NewGG(gg.NewContext(*width, *height))}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("morleydemo: %v", err)
	}
}
