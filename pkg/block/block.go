package block

import (
	"errors"
	"slices"

	"github.com/paulmach/orb"

	"github.com/gridshell/envelope/pkg/geom"
)

var (
	// ErrNonPositiveHeight is returned by [New] when the block height is
	// zero or negative. A zero-height prism has no storeys to derive.
	ErrNonPositiveHeight = errors.New("height must be positive")

	// ErrNoAboveGroundStoreys is returned by [New] when the total storey
	// count does not exceed the below-ground storey count. The above-ground
	// storey height H/(N−B) would be undefined, so the configuration is
	// rejected before any elevation is computed.
	ErrNoAboveGroundStoreys = errors.New("storey count must exceed below-ground storey count")

	// ErrNegativeBelowGround is returned by [New] when the below-ground
	// storey count is negative.
	ErrNegativeBelowGround = errors.New("below-ground storey count must not be negative")

	// ErrNonPositiveBasementHeight is returned by [New] when below-ground
	// storeys are requested with a zero or negative basement storey height.
	ErrNonPositiveBasementHeight = errors.New("below-ground storey height must be positive")

	// ErrDegenerateFootprint is returned by [New] when the footprint has
	// fewer than three distinct points after removing the duplicate
	// closing point. Such an outline cannot enclose any floor area.
	ErrDegenerateFootprint = errors.New("footprint must have at least three distinct points")
)

// Defaults applied by [Definition.SetDefaults].
const (
	// DefaultStoreys is the storey count used when none is given.
	DefaultStoreys = 1

	// DefaultBelowGroundStoreyHeight is the basement storey height, in
	// model units, used when none is given.
	DefaultBelowGroundStoreyHeight = 2.5
)

// Definition is the raw input a [Block] is constructed from.
// The zero value is not usable on its own; at minimum Name, Footprint and
// Height must be set. Storeys and BelowGroundStoreyHeight fall back to
// defaults when left zero.
type Definition struct {
	// Name identifies the block in zone names and exports.
	Name string

	// Footprint is the building outline in plan view. An explicit closing
	// point equal to the first point is accepted and dropped.
	Footprint orb.Ring

	// Height is the total height from ground level to the roof.
	Height float64

	// Storeys is the total storey count, including below-ground storeys.
	// Defaults to 1.
	Storeys int

	// BelowGroundStoreys is the number of storeys below ground level.
	BelowGroundStoreys int

	// BelowGroundStoreyHeight sets how deep the lowest basement floor
	// starts: lowest floor level = −(BelowGroundStoreys × this value).
	// It does NOT set the height of basement storeys themselves; every
	// storey is Height/(Storeys−BelowGroundStoreys) tall. Defaults to 2.5.
	BelowGroundStoreyHeight float64
}

// SetDefaults fills unset optional fields with their defaults.
// It is idempotent and called by [New], so explicit use is only needed when
// inspecting a definition before construction.
func (d *Definition) SetDefaults() {
	if d.Storeys == 0 {
		d.Storeys = DefaultStoreys
	}
	if d.BelowGroundStoreyHeight == 0 {
		d.BelowGroundStoreyHeight = DefaultBelowGroundStoreyHeight
	}
}

// Block is a single building volume with derived storey and surface geometry.
// Blocks are immutable after construction; all derived properties recompute
// from the construction inputs on each call, so a Block is safe for
// concurrent use.
type Block struct {
	name              string
	footprint         geom.Polygon // at elevation 0, closing duplicate removed
	height            float64
	storeys           int
	belowGround       int
	belowGroundHeight float64
}

// New validates def and constructs a Block.
//
// Configuration errors (undefined storey height, degenerate footprint,
// non-positive dimensions) are rejected here so that derived properties are
// total: once a Block exists, every query on it succeeds.
func New(def Definition) (*Block, error) {
	def.SetDefaults()

	if def.Height <= 0 {
		return nil, ErrNonPositiveHeight
	}
	if def.BelowGroundStoreys < 0 {
		return nil, ErrNegativeBelowGround
	}
	if def.Storeys-def.BelowGroundStoreys <= 0 {
		return nil, ErrNoAboveGroundStoreys
	}
	if def.BelowGroundStoreys > 0 && def.BelowGroundStoreyHeight <= 0 {
		return nil, ErrNonPositiveBasementHeight
	}

	footprint := geom.FromRing(def.Footprint, 0)
	if distinctPoints(footprint) < 3 {
		return nil, ErrDegenerateFootprint
	}

	return &Block{
		name:              def.Name,
		footprint:         footprint,
		height:            def.Height,
		storeys:           def.Storeys,
		belowGround:       def.BelowGroundStoreys,
		belowGroundHeight: def.BelowGroundStoreyHeight,
	}, nil
}

// Name returns the block's identifier.
func (b *Block) Name() string { return b.name }

// Height returns the total height from ground level to the roof.
func (b *Block) Height() float64 { return b.height }

// StoreyCount returns the total storey count, including basements.
func (b *Block) StoreyCount() int { return b.storeys }

// BelowGroundStoreyCount returns the number of storeys below ground.
func (b *Block) BelowGroundStoreyCount() int { return b.belowGround }

// Footprint returns the building outline as a 3-D polygon at elevation 0.
func (b *Block) Footprint() geom.Polygon {
	return slices.Clone(b.footprint)
}

// StoreyHeight returns the uniform storey height, Height/(N−B).
// Basement storeys share this height; see [Definition.BelowGroundStoreyHeight].
func (b *Block) StoreyHeight() float64 {
	return b.height / float64(b.storeys-b.belowGround)
}

// LowestFloorLevel returns the floor elevation of the deepest basement
// storey, −(B × below-ground storey height), or 0 for blocks without
// basements.
func (b *Block) LowestFloorLevel() float64 {
	return -(float64(b.belowGround) * b.belowGroundHeight)
}

// FloorElevations returns one floor elevation per storey, ordered from the
// deepest basement upward.
func (b *Block) FloorElevations() []float64 {
	lfl, sh := b.LowestFloorLevel(), b.StoreyHeight()
	out := make([]float64, b.storeys)
	for i := range out {
		out[i] = lfl + sh*float64(i)
	}
	return out
}

// CeilingElevations returns one ceiling elevation per storey, ordered from
// the deepest basement upward.
func (b *Block) CeilingElevations() []float64 {
	lfl, sh := b.LowestFloorLevel(), b.StoreyHeight()
	out := make([]float64, b.storeys)
	for i := range out {
		out[i] = lfl + sh*float64(i+1)
	}
	return out
}

// distinctPoints counts unique vertices in a polygon.
func distinctPoints(p geom.Polygon) int {
	seen := make(map[geom.Vector]struct{}, len(p))
	for _, v := range p {
		seen[v] = struct{}{}
	}
	return len(seen)
}
