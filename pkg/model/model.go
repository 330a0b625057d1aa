package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/gridshell/envelope/pkg/block"
	"github.com/gridshell/envelope/pkg/geom"
)

// =============================================================================
// Model - Derived Geometry Serialization
// =============================================================================

// Surface is one polygon as an ordered list of [x, y, z] coordinates.
type Surface [][3]float64

// Zone is the serialized form of a [block.Zone]. Absent ceiling or roof
// groups are omitted from the JSON rather than encoded as empty polygons.
type Zone struct {
	Name     string    `json:"name"`
	Walls    []Surface `json:"walls"`
	Floors   []Surface `json:"floors"`
	Ceilings []Surface `json:"ceilings,omitempty"`
	Roofs    []Surface `json:"roofs,omitempty"`
}

// Model is the canonical export format for derived building geometry.
type Model struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Zones []Zone `json:"zones"`
}

// FromZones assembles a model from named zones and stamps it with a fresh
// UUID so exports can be tracked by downstream tooling.
func FromZones(name string, zones []block.Zone) Model {
	out := Model{
		ID:    uuid.NewString(),
		Name:  name,
		Zones: make([]Zone, len(zones)),
	}
	for i, z := range zones {
		out.Zones[i] = zoneFromBlock(z)
	}
	return out
}

// zoneFromBlock converts a geometry zone to its serialization form.
func zoneFromBlock(z block.Zone) Zone {
	return Zone{
		Name:     z.Name,
		Walls:    surfacesFromPolygons(z.Walls),
		Floors:   surfacesFromPolygons(z.Floors),
		Ceilings: surfacesFromPolygons(z.Ceilings),
		Roofs:    surfacesFromPolygons(z.Roofs),
	}
}

func surfacesFromPolygons(polys []geom.Polygon) []Surface {
	if len(polys) == 0 {
		return nil
	}
	out := make([]Surface, len(polys))
	for i, p := range polys {
		s := make(Surface, len(p))
		for j, v := range p {
			s[j] = [3]float64{v.X, v.Y, v.Z}
		}
		out[i] = s
	}
	return out
}

// Polygon converts a serialized surface back to a geometry polygon.
func (s Surface) Polygon() geom.Polygon {
	p := make(geom.Polygon, len(s))
	for i, pt := range s {
		p[i] = geom.Vector{X: pt[0], Y: pt[1], Z: pt[2]}
	}
	return p
}

// =============================================================================
// Reading and Writing
// =============================================================================

// WriteModel encodes a model as indented JSON and writes it to w.
// The output can be re-imported with [ReadModel] for round-trip processing.
func WriteModel(m Model, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return nil
}

// ReadModel decodes a model from JSON.
func ReadModel(r io.Reader) (Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Model{}, fmt.Errorf("decode model: %w", err)
	}
	return m, nil
}

// ExportModel writes a model to a JSON file at path.
// This is a convenience wrapper around [WriteModel] for file-based output.
func ExportModel(m Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteModel(m, f)
}

// ReadModelFile reads a model from a JSON file at path.
func ReadModelFile(path string) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return Model{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadModel(f)
}
