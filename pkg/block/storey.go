package block

// Storey is one horizontal slice of a block, bounded by a floor and a
// ceiling elevation. Storeys are derived on demand and never cached; they
// always reflect the block's construction inputs.
type Storey struct {
	// Index is the storey number. Below-ground storeys are negative, the
	// ground storey is 0, and indices increase upward.
	Index int

	// Floor and Ceiling are the storey's bounding elevations.
	Floor   float64
	Ceiling float64

	// Surfaces holds the storey's four surface groups.
	Surfaces Surfaces
}

// Storeys returns every storey of the block with its index, elevations and
// surfaces, ordered from the deepest basement upward.
func (b *Block) Storeys() []Storey {
	floors, ceilings := b.FloorElevations(), b.CeilingElevations()
	walls := b.Walls()
	floorSlabs := b.Floors()
	ceilingSlabs := b.Ceilings()
	roofs := b.Roofs()

	out := make([]Storey, b.storeys)
	for i := range out {
		out[i] = Storey{
			Index:   i - b.belowGround,
			Floor:   floors[i],
			Ceiling: ceilings[i],
			Surfaces: Surfaces{
				Walls:    walls[i],
				Floors:   floorSlabs[i],
				Ceilings: ceilingSlabs[i],
				Roofs:    roofs[i],
			},
		}
	}
	return out
}
