package geom_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/gridshell/envelope/pkg/geom"
)

func ExampleFromRing() {
	// Lift a 2-D footprint to a 3-D polygon at ground level.
	ring := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	footprint := geom.FromRing(ring, 0)

	fmt.Println("vertices:", len(footprint))
	fmt.Println("area:", footprint.Area())
	// Output:
	// vertices: 4
	// area: 100
}

func ExamplePolygon_Translate() {
	floor := geom.Polygon{geom.V(0, 0, 0), geom.V(10, 0, 0), geom.V(10, 10, 0), geom.V(0, 10, 0)}
	ceiling := floor.Translate(geom.V(0, 0, 3))

	fmt.Println("floor z:", floor[0].Z)
	fmt.Println("ceiling z:", ceiling[0].Z)
	// Output:
	// floor z: 0
	// ceiling z: 3
}
