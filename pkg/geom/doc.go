// Package geom provides the small 3-D polygon capability used to assemble
// building surfaces.
//
// The package deliberately stays minimal: it covers construction from ordered
// point sequences, translation, edge enumeration, winding inversion, and area
// computation. Footprints arrive as 2-D rings ([github.com/paulmach/orb.Ring])
// and are lifted into 3-D with [FromRing].
//
// # Core Types
//
//   - [Vector]: a point or displacement in 3-D space
//   - [Polygon]: an ordered, implicitly closed sequence of vertices
//   - [Edge]: one directed polygon edge as an ordered endpoint pair
//
// # Winding
//
// A polygon's vertex order determines its face normal (right-hand rule).
// [Polygon.Invert] reverses the order, flipping the normal. Area is computed
// with Newell's method and is always non-negative; planar polygons with
// coincident vertices collapse to zero area rather than failing.
//
// # Concurrency
//
// All operations return new values and never mutate their receiver, so
// polygons are safe to share between goroutines.
package geom
