package block

import (
	"fmt"

	"github.com/gridshell/envelope/pkg/geom"
)

// Zone is a named, immutable surface collection ready for handoff to a
// model-serialization layer. Walls with zero area are dropped at
// construction; floors, ceilings and roofs pass through unfiltered,
// including empty placeholder groups.
type Zone struct {
	Name     string
	Walls    []geom.Polygon
	Floors   []geom.Polygon
	Ceilings []geom.Polygon
	Roofs    []geom.Polygon
}

// NewZone assembles a zone from one storey's surfaces. Degenerate walls,
// produced by duplicate adjacent footprint vertices, are filtered out here
// rather than treated as errors.
func NewZone(name string, s Surfaces) Zone {
	walls := make([]geom.Polygon, 0, len(s.Walls))
	for _, w := range s.Walls {
		if w.Area() > 0 {
			walls = append(walls, w)
		}
	}
	return Zone{
		Name:     name,
		Walls:    walls,
		Floors:   s.Floors,
		Ceilings: s.Ceilings,
		Roofs:    s.Roofs,
	}
}

// ZonesPerStorey assembles one zone per storey, named after the block and
// the storey index ("Tower Storey 0", "Tower Storey -1", ...).
func (b *Block) ZonesPerStorey() []Zone {
	storeys := b.Storeys()
	out := make([]Zone, len(storeys))
	for i, s := range storeys {
		out[i] = NewZone(fmt.Sprintf("%s Storey %d", b.name, s.Index), s.Surfaces)
	}
	return out
}
