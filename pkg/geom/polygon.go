package geom

import (
	"slices"

	"github.com/paulmach/orb"
)

// Polygon is an ordered sequence of vertices describing a closed planar face.
// Closure is implicit: the edge from the last vertex back to the first is
// part of the polygon and never stored as a duplicate point.
//
// Polygon values are treated as immutable. Every method returns a new
// polygon and leaves the receiver untouched.
type Polygon []Vector

// Edge is one directed polygon edge as an ordered endpoint pair.
type Edge struct {
	P1, P2 Vector
}

// FromRing lifts a 2-D ring into 3-D at elevation z.
// If the ring carries an explicit closing point equal to its first point,
// the duplicate is dropped so closure stays implicit.
func FromRing(r orb.Ring, z float64) Polygon {
	pts := []orb.Point(r)
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	p := make(Polygon, len(pts))
	for i, pt := range pts {
		p[i] = Vector{X: pt[0], Y: pt[1], Z: z}
	}
	return p
}

// Translate returns a copy of p with d added to every vertex.
func (p Polygon) Translate(d Vector) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Add(d)
	}
	return out
}

// Edges enumerates the polygon's directed edges in vertex order,
// including the implicit closing edge from the last vertex to the first.
func (p Polygon) Edges() []Edge {
	edges := make([]Edge, len(p))
	for i, v := range p {
		edges[i] = Edge{P1: v, P2: p[(i+1)%len(p)]}
	}
	return edges
}

// Invert returns a copy of p with reversed winding, flipping its normal.
func (p Polygon) Invert() Polygon {
	out := slices.Clone(p)
	slices.Reverse(out)
	return out
}

// Normal returns the polygon's (unnormalized) face normal computed with
// Newell's method. Its length equals twice the polygon area, and its
// direction follows the right-hand rule over the vertex order.
func (p Polygon) Normal() Vector {
	var n Vector
	for i, v := range p {
		n = n.Add(v.Cross(p[(i+1)%len(p)]))
	}
	return n
}

// Area returns the polygon's area. Degenerate polygons (fewer than three
// vertices, or collapsed to a line or point) have zero area.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	return p.Normal().Length() / 2
}
