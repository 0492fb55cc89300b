// Package core provides the field mapping model used to transcode pile
// design records between project documents and the calculation engine's
// wire format.
//
// The package has no I/O. It can be used by the CLI, by a service wrapping
// the engine, or by tests without modification.
//
// # Mapping Tables
//
// Each wire record kind (settings, soil profile, soil layer, load point,
// results) is described by a [MappingTable]: an ordered list of
// [MappingRule] values giving the model type, wire type, fallback and
// transform of one wire field. Tables are built once at package init with
// [MustTable] and registered via [Register]:
//
//	var LoadPointInput = core.MustTable(
//	    core.TableInfo{Key: "load_point_input", Group: "input", Label: "Load point"},
//	    core.MappingRule{Field: "_Pname", Model: core.TypeString, Wire: core.TypeString},
//	    core.MappingRule{Field: "_BetonZyl", Model: core.TypeNone, Wire: core.TypeInt, Fallback: 25},
//	)
//
// # Transforms
//
// [TransformSpec] is a closed set: [NoTransform], [LinearScale], [EnumMap]
// and [Custom]. [ApplyTransform] switches over all four.
//
// # Engine
//
// [Map] and [Unmap] convert one record and stop at the first failing field.
// [MapBestEffort] and [UnmapBestEffort] keep going, leave the prior value in
// place and return a [CopyReport] listing every skipped field.
//
// # Error Handling
//
// Field failures are [*MappingError] values. Errors are mapped to
// operator-facing messages using [MapError]; see error_messages.go for the
// code reference.
package core
