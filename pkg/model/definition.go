package model

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/gridshell/envelope/pkg/block"
	"github.com/gridshell/envelope/pkg/errors"
)

// =============================================================================
// Definition Files
// =============================================================================

// Definition describes one block in a definition file. Field names follow
// the file formats; see [Definition.Block] for defaults and validation.
type Definition struct {
	Name                    string      `toml:"name" yaml:"name" json:"name"`
	Footprint               [][]float64 `toml:"footprint" yaml:"footprint" json:"footprint"`
	Height                  float64     `toml:"height" yaml:"height" json:"height"`
	Storeys                 int         `toml:"storeys" yaml:"storeys" json:"storeys,omitempty"`
	BelowGroundStoreys      int         `toml:"below_ground_storeys" yaml:"below_ground_storeys" json:"below_ground_storeys,omitempty"`
	BelowGroundStoreyHeight float64     `toml:"below_ground_storey_height" yaml:"below_ground_storey_height" json:"below_ground_storey_height,omitempty"`
}

// File is a parsed definition file: a named collection of blocks.
type File struct {
	Name   string       `toml:"name" yaml:"name" json:"name"`
	Blocks []Definition `toml:"blocks" yaml:"blocks" json:"blocks"`
}

// Formats accepted by [Parse].
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// formatForExt maps file extensions to parse formats.
var formatForExt = map[string]string{
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
}

// LoadFile reads and parses a definition file, choosing the format by file
// extension. Unknown extensions are rejected with ErrCodeInvalidFormat.
func LoadFile(path string) (File, error) {
	format, ok := formatForExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return File{}, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported definition format %q (use .toml, .yaml or .json)", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition file %s", path)
		}
		return File{}, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	return Parse(data, format)
}

// Parse decodes definition data in the given format ([FormatTOML],
// [FormatYAML] or [FormatJSON]).
func Parse(data []byte, format string) (File, error) {
	var f File
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	default:
		return File{}, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "parse %s definitions", format)
	}

	if f.Name == "" {
		f.Name = "envelope"
	}
	return f, nil
}

// Block validates the definition and constructs the geometry block.
// Construction failures surface as coded errors so CLI and API callers can
// distinguish configuration mistakes from degenerate geometry.
func (d Definition) Block() (*block.Block, error) {
	ring := make(orb.Ring, len(d.Footprint))
	for i, pt := range d.Footprint {
		if len(pt) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidDefinition,
				"block %q: footprint point %d has %d coordinates, want 2", d.Name, i, len(pt))
		}
		ring[i] = orb.Point{pt[0], pt[1]}
	}

	b, err := block.New(block.Definition{
		Name:                    d.Name,
		Footprint:               ring,
		Height:                  d.Height,
		Storeys:                 d.Storeys,
		BelowGroundStoreys:      d.BelowGroundStoreys,
		BelowGroundStoreyHeight: d.BelowGroundStoreyHeight,
	})
	if err != nil {
		return nil, errors.Wrap(codeForBlockErr(err), err, "block %q", d.Name)
	}
	return b, nil
}

// Build derives geometry for every block in the file and assembles the
// result into a single exportable model, one zone per storey.
func (f File) Build() (Model, error) {
	var zones []block.Zone
	for _, def := range f.Blocks {
		b, err := def.Block()
		if err != nil {
			return Model{}, err
		}
		zones = append(zones, b.ZonesPerStorey()...)
	}
	return FromZones(f.Name, zones), nil
}

// codeForBlockErr maps core construction errors onto error codes.
func codeForBlockErr(err error) errors.Code {
	switch {
	case stderrors.Is(err, block.ErrDegenerateFootprint):
		return errors.ErrCodeDegenerateFootprint
	case stderrors.Is(err, block.ErrNoAboveGroundStoreys),
		stderrors.Is(err, block.ErrNegativeBelowGround):
		return errors.ErrCodeInvalidStoreys
	default:
		return errors.ErrCodeInvalidDefinition
	}
}
