// Package post prepares an engine response for the project: it scales
// result values back to project units, rounds them to two decimals and
// replaces the NaN sentinel with nil.
package post

import (
	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/core/tables"
	"github.com/JonMunkholm/pilexchange/internal/document"
	"github.com/JonMunkholm/pilexchange/internal/reshape"
	"github.com/JonMunkholm/pilexchange/internal/units"
)

// KeyPileName identifies the pile of a LastPunktOutput entry.
const KeyPileName = "_Pname"

// Result wraps the OutputDaten map of an engine response.
type Result struct {
	Output *document.Map

	// Skipped lists result values that could not be scaled. They keep the
	// value the engine sent.
	Skipped []*units.ConversionError

	processed bool
}

// NewResult wraps out for processing. out is modified in place.
func NewResult(out *document.Map) *Result {
	return &Result{Output: out}
}

// Processed reports whether Process already ran.
func (r *Result) Processed() bool {
	return r.processed
}

// Process normalizes the result groups, applies the reverse unit scales,
// rounds the pile, soil usage and load results, and turns NaN into nil.
// A processed result is left untouched, so calling Process twice is safe.
func Process(r *Result) error {
	if r.processed {
		return nil
	}
	if err := reshape.NormalizeResults(r.Output); err != nil {
		return err
	}

	r.Skipped = units.Results.ConvertBestEffort(r.Output, units.Reverse)

	for _, rec := range Piles(r.Output) {
		clean(rec, tables.LoadPointOutput)
	}
	for _, entry := range reshape.ResultGroup(r.Output, reshape.SoilUsagePath) {
		for _, rec := range UsedLayers(entry) {
			clean(rec, tables.SoilLayerOutput)
		}
	}
	for _, entry := range reshape.ResultGroup(r.Output, reshape.LoadResultsPath) {
		for _, rec := range LoadResults(entry) {
			clean(rec, tables.HLoadPointOutput)
		}
	}

	r.processed = true
	return nil
}

// Piles returns the LastPunktOutput entries.
func Piles(out *document.Map) []*document.Map {
	return reshape.ResultGroup(out, reshape.PileResultsPath)
}

// UsedLayers returns the BodenSchichtNutzung entries of a soil usage entry.
func UsedLayers(entry *document.Map) []*document.Map {
	value := reshape.EntryValue(entry)
	if value == nil {
		return nil
	}
	return reshape.ResultGroup(value, []string{reshape.KeyUsedLayers, reshape.KeyUsedLayer})
}

// LoadResults returns the HLastPunktHorOutput entries of a load case entry.
func LoadResults(entry *document.Map) []*document.Map {
	value := reshape.EntryValue(entry)
	if value == nil {
		return nil
	}
	return reshape.ResultGroup(value, []string{reshape.KeyLoadResult})
}

// clean rounds the numeric leaves of one result record and replaces NaN
// with nil. Fields the table declares as text, integer or flag and the
// pile name keep their value.
func clean(rec *document.Map, table *core.MappingTable) {
	for _, k := range rec.Keys() {
		v := rec.Value(k)
		if core.IsNaN(v) {
			rec.Set(k, nil)
			continue
		}
		if k == KeyPileName {
			continue
		}
		if table != nil {
			if r, ok := table.Rule(k); ok && r.Wire != core.TypeFloat {
				continue
			}
		}
		if rounded, ok := core.RoundValue(v); ok {
			rec.Set(k, rounded)
		}
	}
}
