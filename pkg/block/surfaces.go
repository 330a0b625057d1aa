package block

import "github.com/gridshell/envelope/pkg/geom"

// Surfaces holds the four surface groups of a single storey. A storey
// without a ceiling (the topmost) or without a roof (all but the topmost)
// carries an empty group rather than a zero-vertex polygon, so absence is
// structural and cannot be mistaken for degenerate geometry.
type Surfaces struct {
	Walls    []geom.Polygon
	Floors   []geom.Polygon
	Ceilings []geom.Polygon
	Roofs    []geom.Polygon
}

// SurfaceSet holds the surface groups for every storey of a block, each
// ordered from the deepest basement upward.
type SurfaceSet struct {
	Walls    [][]geom.Polygon
	Floors   [][]geom.Polygon
	Ceilings [][]geom.Polygon
	Roofs    [][]geom.Polygon
}

// Walls returns one wall polygon per footprint edge for every storey.
// Corners are ordered upper-left, lower-left, lower-right, upper-right
// relative to the edge direction, which fixes the outward normal convention
// downstream consumers rely on.
func (b *Block) Walls() [][]geom.Polygon {
	floors, ceilings := b.FloorElevations(), b.CeilingElevations()
	edges := b.footprint.Edges()

	out := make([][]geom.Polygon, b.storeys)
	for i := range out {
		storey := make([]geom.Polygon, len(edges))
		for j, e := range edges {
			storey[j] = makeWall(e, floors[i], ceilings[i])
		}
		out[i] = storey
	}
	return out
}

// Floors returns each storey's floor slab: the footprint with inverted
// winding, translated to the storey's floor elevation. The inversion keeps
// floor normals consistent with the walls.
func (b *Block) Floors() [][]geom.Polygon {
	inverted := b.footprint.Invert()

	out := make([][]geom.Polygon, b.storeys)
	for i, fh := range b.FloorElevations() {
		out[i] = []geom.Polygon{inverted.Translate(geom.V(0, 0, fh))}
	}
	return out
}

// Ceilings returns each storey's ceiling slab: the footprint at its original
// winding, translated to the storey's ceiling elevation. The topmost storey
// gets an empty group since its top face is the roof.
func (b *Block) Ceilings() [][]geom.Polygon {
	ceilings := b.CeilingElevations()

	out := make([][]geom.Polygon, b.storeys)
	for i := range out {
		if i == b.storeys-1 {
			out[i] = nil
			continue
		}
		out[i] = []geom.Polygon{b.footprint.Translate(geom.V(0, 0, ceilings[i]))}
	}
	return out
}

// Roofs returns an entry per storey for structural consistency with the
// other groups. Only the topmost storey has roof geometry: the footprint at
// total height.
func (b *Block) Roofs() [][]geom.Polygon {
	out := make([][]geom.Polygon, b.storeys)
	out[b.storeys-1] = []geom.Polygon{b.footprint.Translate(geom.V(0, 0, b.height))}
	return out
}

// SurfaceSet returns all four surface groups for every storey.
func (b *Block) SurfaceSet() SurfaceSet {
	return SurfaceSet{
		Walls:    b.Walls(),
		Floors:   b.Floors(),
		Ceilings: b.Ceilings(),
		Roofs:    b.Roofs(),
	}
}

// makeWall builds one rectangular wall polygon for a footprint edge between
// floor height fh and ceiling height ch. The corner order (p1 at ceiling,
// p1 at floor, p2 at floor, p2 at ceiling) must not change: it determines
// the wall's outward normal.
func makeWall(e geom.Edge, fh, ch float64) geom.Polygon {
	return geom.Polygon{
		e.P1.Add(geom.V(0, 0, ch)), // upper left
		e.P1.Add(geom.V(0, 0, fh)), // lower left
		e.P2.Add(geom.V(0, 0, fh)), // lower right
		e.P2.Add(geom.V(0, 0, ch)), // upper right
	}
}
