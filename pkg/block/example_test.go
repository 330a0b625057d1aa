package block_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/gridshell/envelope/pkg/block"
)

func ExampleNew() {
	b, err := block.New(block.Definition{
		Name:      "Tower",
		Footprint: orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		Height:    9,
		Storeys:   3,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("storey height:", b.StoreyHeight())
	fmt.Println("floors:", b.FloorElevations())
	fmt.Println("ceilings:", b.CeilingElevations())
	// Output:
	// storey height: 3
	// floors: [0 3 6]
	// ceilings: [3 6 9]
}

func ExampleBlock_Storeys() {
	b, _ := block.New(block.Definition{
		Name:               "Tower",
		Footprint:          orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		Height:             6,
		Storeys:            3,
		BelowGroundStoreys: 1,
	})

	for _, s := range b.Storeys() {
		fmt.Printf("storey %d: floor %.1f, ceiling %.1f, %d walls, %d roofs\n",
			s.Index, s.Floor, s.Ceiling, len(s.Surfaces.Walls), len(s.Surfaces.Roofs))
	}
	// Output:
	// storey -1: floor -2.5, ceiling 0.5, 4 walls, 0 roofs
	// storey 0: floor 0.5, ceiling 3.5, 4 walls, 0 roofs
	// storey 1: floor 3.5, ceiling 6.5, 4 walls, 1 roofs
}

func ExampleBlock_ZonesPerStorey() {
	b, _ := block.New(block.Definition{
		Name:      "Shed",
		Footprint: orb.Ring{{0, 0}, {5, 0}, {5, 5}, {0, 5}},
		Height:    3,
	})

	for _, z := range b.ZonesPerStorey() {
		fmt.Printf("%s: %d walls, %d floors, %d ceilings, %d roofs\n",
			z.Name, len(z.Walls), len(z.Floors), len(z.Ceilings), len(z.Roofs))
	}
	// Output:
	// Shed Storey 0: 4 walls, 1 floors, 0 ceilings, 1 roofs
}
