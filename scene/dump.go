package scene

import (
	"fmt"
	"strings"

	"github.com/ziotom78/geomdemos/dbg"
)

// DebugDump lists the scene's nodes with readable names, one per line, in
// draw order. For debugging only.
func (s *Scene) DebugDump() string {
	var b strings.Builder
	for _, node := range s.nodes {
		switch n := node.(type) {
		case *Line:
			fmt.Fprintf(&b, "%s: Line %v -> %v\n", dbg.Name(n), n.From, n.To)
		case *Arrow:
			fmt.Fprintf(&b, "%s: Arrow at %v dir %v len %g\n", dbg.Name(n), n.Origin, n.Dir, n.Length)
		case *WireSphere:
			fmt.Fprintf(&b, "%s: WireSphere r=%g\n", dbg.Name(n), n.Radius)
		case *Label:
			fmt.Fprintf(&b, "%s: Label %q at %v\n", dbg.Name(n), n.Text, n.At)
		}
	}
	return b.String()
}
