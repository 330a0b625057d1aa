// Package block derives a complete three-dimensional building envelope from a
// minimal description: a 2-D footprint outline, an overall height, a storey
// count, and an optional count of below-ground storeys.
//
// # Derivation
//
// A [Block] partitions a prism of the given footprint and height into uniform
// storeys and generates watertight, consistently wound surfaces for each:
//
//   - Walls: one rectangle per footprint edge, per storey
//   - Floors: the footprint with inverted winding at the storey's floor level
//   - Ceilings: the footprint at the storey's ceiling level, except the
//     topmost storey, whose top face is the roof
//   - Roofs: the footprint at total height, topmost storey only
//
// Storey elevations follow the original geomeppy rule: every storey is
// H/(N−B) tall, and the below-ground storey height only sets how deep the
// lowest basement floor starts. Storey indices run from −B (deepest basement)
// upward, with the ground storey at index 0.
//
// # Zones
//
// A [Zone] wraps a storey's surfaces under a name, dropping walls with zero
// area (produced by duplicate adjacent footprint vertices). Zones are what a
// model-serialization layer consumes.
//
// # Purity
//
// All derived properties are pure functions of the block's construction
// inputs. Nothing is cached and nothing is mutated after [New] returns, so a
// block is safe for concurrent use.
package block
