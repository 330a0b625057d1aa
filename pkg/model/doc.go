// Package model sits at the serialization boundary of the envelope toolkit.
//
// It covers both directions of the boundary:
//
//   - [File], [Definition]: block definitions read from TOML, YAML or JSON
//     files, with defaults and validation applied before construction
//   - [Model], [Zone], [Surface]: derived geometry exported as JSON for
//     downstream model authoring tools
//
// # Definition Files
//
// A definition file lists one or more blocks:
//
//	name = "campus"
//
//	[[blocks]]
//	name = "tower"
//	height = 9.0
//	storeys = 3
//	footprint = [[0.0, 0.0], [10.0, 0.0], [10.0, 10.0], [0.0, 10.0]]
//
// The format is chosen by file extension (.toml, .yaml/.yml, .json).
//
// # Exported Models
//
// Models serialize zones as plain coordinate lists so consumers need no
// geometry types of their own:
//
//	{
//	  "id": "4e0b...",
//	  "name": "campus",
//	  "zones": [{"name": "tower Storey 0", "walls": [[[0,0,3], ...]], ...}]
//	}
//
// Round-trip fidelity holds: write → read produces an identical model.
package model
