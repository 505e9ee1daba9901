package morley

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"github.com/ziotom78/geomdemos/geom"
)

// Test triangles live as SVG files in fixtures/, which makes them easy to
// eyeball in a viewer when a property test fails. Each fixture must contain
// exactly one <polygon> with exactly three points. Anything else panics the
// test binary; fixtures are trusted input.

//go:embed fixtures
var fixtures embed.FS

func LoadFixtureTriangle(name string) Triangle {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	points := []geom.Point{}
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, geom.Point{X: x, Y: y})
	}

	if len(points) != 3 {
		log.Fatalf("Fixture %q has %d points, want 3", name, len(points))
	}
	return New(points[0], points[1], points[2])
}
