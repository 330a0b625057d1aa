package block

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/gridshell/envelope/pkg/geom"
)

func TestWalls(t *testing.T) {
	b := mustBlock(t, Definition{Name: "a", Footprint: square, Height: 9, Storeys: 3})
	walls := b.Walls()

	if len(walls) != 3 {
		t.Fatalf("storey count = %d, want 3", len(walls))
	}
	for i, storey := range walls {
		// One wall per footprint edge.
		if len(storey) != 4 {
			t.Errorf("storey %d wall count = %d, want 4", i, len(storey))
		}
		for j, w := range storey {
			if len(w) != 4 {
				t.Errorf("storey %d wall %d has %d corners, want 4", i, j, len(w))
			}
		}
	}

	// Ground storey wall for the first edge (0,0)→(10,0): corner order is
	// p1@ceiling, p1@floor, p2@floor, p2@ceiling.
	want := geom.Polygon{
		geom.V(0, 0, 3), geom.V(0, 0, 0), geom.V(10, 0, 0), geom.V(10, 0, 3),
	}
	got := walls[0][0]
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}

	// Second storey walls span floor 3 to ceiling 6.
	if walls[1][0][0].Z != 6 || walls[1][0][1].Z != 3 {
		t.Errorf("second storey wall z range = %v..%v, want 3..6",
			walls[1][0][1].Z, walls[1][0][0].Z)
	}
}

func TestFloorsInvertWinding(t *testing.T) {
	b := mustBlock(t, Definition{Name: "a", Footprint: square, Height: 9, Storeys: 3})

	footprintNormal := b.Footprint().Normal()
	floors := b.Floors()

	if len(floors) != 3 {
		t.Fatalf("floor group count = %d, want 3", len(floors))
	}
	wantZ := []float64{0, 3, 6}
	for i, group := range floors {
		if len(group) != 1 {
			t.Fatalf("storey %d floor count = %d, want 1", i, len(group))
		}
		slab := group[0]
		if slab[0].Z != wantZ[i] {
			t.Errorf("storey %d floor z = %v, want %v", i, slab[0].Z, wantZ[i])
		}
		// Floor winding must oppose the footprint's.
		if n := slab.Normal(); !almostEqual(n.Z, -footprintNormal.Z) {
			t.Errorf("storey %d floor normal z = %v, want %v", i, n.Z, -footprintNormal.Z)
		}
	}
}

func TestCeilingsAndRoofs(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
	}{
		{
			name: "ThreeStoreys",
			def:  Definition{Name: "a", Footprint: square, Height: 9, Storeys: 3},
		},
		{
			name: "SingleStorey",
			def:  Definition{Name: "a", Footprint: square, Height: 3},
		},
		{
			name: "WithBasement",
			def: Definition{
				Name: "a", Footprint: square, Height: 6,
				Storeys: 3, BelowGroundStoreys: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBlock(t, tt.def)
			ceilings, roofs := b.Ceilings(), b.Roofs()
			top := b.StoreyCount() - 1

			for i := 0; i < b.StoreyCount(); i++ {
				if i == top {
					// Topmost storey: no ceiling, one roof at total height.
					if len(ceilings[i]) != 0 {
						t.Errorf("topmost storey has %d ceilings, want 0", len(ceilings[i]))
					}
					if len(roofs[i]) != 1 {
						t.Fatalf("topmost storey has %d roofs, want 1", len(roofs[i]))
					}
					if z := roofs[i][0][0].Z; !almostEqual(z, b.Height()) {
						t.Errorf("roof z = %v, want %v", z, b.Height())
					}
					// Roof keeps the footprint's original winding.
					if n := roofs[i][0].Normal(); !almostEqual(n.Z, b.Footprint().Normal().Z) {
						t.Errorf("roof normal z = %v, want footprint's %v",
							n.Z, b.Footprint().Normal().Z)
					}
					continue
				}
				if len(ceilings[i]) != 1 {
					t.Errorf("storey %d has %d ceilings, want 1", i, len(ceilings[i]))
					continue
				}
				if len(roofs[i]) != 0 {
					t.Errorf("storey %d has %d roofs, want 0", i, len(roofs[i]))
				}
				if z, want := ceilings[i][0][0].Z, b.CeilingElevations()[i]; !almostEqual(z, want) {
					t.Errorf("storey %d ceiling z = %v, want %v", i, z, want)
				}
				// Ceilings keep the footprint's original winding.
				if n := ceilings[i][0].Normal(); !almostEqual(n.Z, b.Footprint().Normal().Z) {
					t.Errorf("storey %d ceiling normal z = %v, want footprint's %v",
						i, n.Z, b.Footprint().Normal().Z)
				}
			}
		})
	}
}

func TestSurfaceSet(t *testing.T) {
	b := mustBlock(t, Definition{
		Name: "a", Footprint: square, Height: 6,
		Storeys: 3, BelowGroundStoreys: 1,
	})
	set := b.SurfaceSet()

	for name, group := range map[string][][]geom.Polygon{
		"walls":    set.Walls,
		"floors":   set.Floors,
		"ceilings": set.Ceilings,
		"roofs":    set.Roofs,
	} {
		if len(group) != 3 {
			t.Errorf("%s has %d storeys, want 3", name, len(group))
		}
	}
}

func TestStoreys(t *testing.T) {
	b := mustBlock(t, Definition{
		Name: "a", Footprint: square, Height: 6,
		Storeys: 4, BelowGroundStoreys: 2, BelowGroundStoreyHeight: 2,
	})
	storeys := b.Storeys()

	if len(storeys) != 4 {
		t.Fatalf("storey count = %d, want 4", len(storeys))
	}

	wantIndex := []int{-2, -1, 0, 1}
	for i, s := range storeys {
		if s.Index != wantIndex[i] {
			t.Errorf("storey %d index = %d, want %d", i, s.Index, wantIndex[i])
		}
		if got := s.Ceiling - s.Floor; !almostEqual(got, b.StoreyHeight()) {
			t.Errorf("storey %d height = %v, want %v", i, got, b.StoreyHeight())
		}
		if len(s.Surfaces.Walls) != 4 {
			t.Errorf("storey %d wall count = %d, want 4", i, len(s.Surfaces.Walls))
		}
	}

	if storeys[0].Floor != -4 {
		t.Errorf("deepest floor = %v, want -4", storeys[0].Floor)
	}
	if got := storeys[3].Surfaces.Roofs; len(got) != 1 {
		t.Errorf("top storey roof count = %d, want 1", len(got))
	}
}

func TestStoreysRecompute(t *testing.T) {
	b := mustBlock(t, Definition{Name: "a", Footprint: square, Height: 9, Storeys: 3})

	// Two queries must produce equal, independent geometry.
	first, second := b.Storeys(), b.Storeys()
	first[0].Surfaces.Walls[0][0] = geom.V(99, 99, 99)
	if second[0].Surfaces.Walls[0][0] == geom.V(99, 99, 99) {
		t.Error("storey queries share underlying geometry")
	}
	if got := b.Storeys()[0].Surfaces.Walls[0][0]; got == geom.V(99, 99, 99) {
		t.Error("mutation of a query result leaked into the block")
	}
}

func TestDegenerateEdgeProducesZeroAreaWall(t *testing.T) {
	// Duplicate adjacent vertex: one zero-length edge.
	ring := orb.Ring{{0, 0}, {10, 0}, {10, 0}, {10, 10}, {0, 10}}
	b := mustBlock(t, Definition{Name: "a", Footprint: ring, Height: 3})

	walls := b.Walls()[0]
	if len(walls) != 5 {
		t.Fatalf("raw wall count = %d, want 5", len(walls))
	}

	zeroArea := 0
	for _, w := range walls {
		if w.Area() == 0 {
			zeroArea++
		}
	}
	if zeroArea != 1 {
		t.Errorf("zero-area wall count = %d, want 1", zeroArea)
	}
}
