package pipeline

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/core/tables"
	"github.com/JonMunkholm/pilexchange/internal/document"
	"github.com/JonMunkholm/pilexchange/internal/driven"
	"github.com/JonMunkholm/pilexchange/internal/keys"
	"github.com/JonMunkholm/pilexchange/internal/logging"
	"github.com/JonMunkholm/pilexchange/internal/reshape"
	"github.com/JonMunkholm/pilexchange/internal/units"
)

const wirePileType = "_PfahlTyp"

// Import is a project read from a request document.
type Import struct {
	Project *document.Map

	// Reports lists the records with fields that could not be read.
	// Those fields keep the wire value.
	Reports []core.CopyReport

	// Unscaled lists values that could not be converted to project units.
	Unscaled []*units.ConversionError

	// Folded is the number of soil layers whose qskStern moved to qsk.
	Folded int
}

// ImportWire converts an InputDaten document (as written by BuildRequest or
// exported by the engine client) into a project document with settings,
// piles, soil profiles and load cases.
//
// The project name and company logo of the imported settings are dropped;
// they belong to the project the file is imported into. Scaled values are
// rounded to two decimals.
func ImportWire(ctx context.Context, doc *document.Map) (*Import, error) {
	log := logging.WithFields(ctx, "stage", "import")

	flat, err := reshape.Flatten(doc)
	if err != nil {
		return nil, fmt.Errorf("import wire document: %w", err)
	}

	imp := &Import{}
	r := &reader{imp: imp}

	wireSettings, _ := document.AsMap(flat.Value(reshape.KeySettings))
	settings := r.unmap(wireSettings, tables.Settings, keys.Settings)
	settings.Delete(reshape.KeyName)
	settings.Delete(KeyCompanyAltLogo)
	for _, k := range settings.Keys() {
		if b, ok := textBool(settings.Value(k)); ok {
			settings.Set(k, b)
		}
	}

	piles := make([]any, 0)
	for _, pile := range reshape.Rows(flat, reshape.KeyPiles) {
		rec := r.unmap(pile, tables.LoadPointInput, keys.Pile)
		if sym, ok := tables.PileSymbol(rec.Value(driven.KeyPileType)); ok {
			rec.Set(driven.KeyPileType, sym)
		}
		piles = append(piles, rec)
	}

	profiles := make([]any, 0)
	for _, profile := range reshape.Rows(flat, reshape.KeySoilProfiles) {
		layers := make([]any, 0)
		for _, layer := range reshape.Rows(profile, reshape.KeyAllLayers) {
			rec := r.unmap(layer, tables.SoilLayerInput, keys.SoilLayer)
			for _, k := range rec.Keys() {
				if core.IsNaN(rec.Value(k)) {
					rec.Set(k, nil)
				}
			}
			layers = append(layers, rec)
		}
		profile.Delete(reshape.KeyAllLayers)
		rec := r.unmap(profile, tables.SoilProfileInput, keys.SoilProfile)
		rec.Set(reshape.KeySoilLayers, layers)
		profiles = append(profiles, rec)
	}

	cases := make([]any, 0)
	for _, lc := range reshape.Rows(flat, reshape.KeyLoadCases) {
		loads := make([]any, 0)
		for _, load := range reshape.Rows(lc, reshape.KeyLoadPoints) {
			loads = append(loads, r.unmap(load, tables.HLoadPointInput, keys.HorizontalLoad))
		}
		lc.Delete(reshape.KeyLoadPoints)
		rec := r.unmap(lc, tables.HLoadCaseInput, keys.HorizontalLoadCase)
		rec.Set(reshape.KeyLoads, loads)
		cases = append(cases, rec)
	}

	project := document.NewMap()
	project.Set(reshape.KeySettings, settings)
	project.Set(reshape.KeyPiles, piles)
	project.Set(reshape.KeySoilProfiles, profiles)
	project.Set(reshape.KeyLoadCases, cases)

	imp.Unscaled = units.Project.ConvertBestEffort(project, units.Reverse, units.WithRounding())
	for _, e := range imp.Unscaled {
		log.Warn("value not scaled", "path", e.Path, "value", e.Value)
	}
	imp.Folded = driven.Fold(project)

	for _, rep := range imp.Reports {
		for _, s := range rep.Skipped {
			log.Warn("field not read", "table", rep.Table, "field", s.Field, "error", s.Err)
		}
	}

	imp.Project = project
	log.Info("wire document imported",
		"piles", len(piles),
		"soil_profiles", len(profiles),
		"load_cases", len(cases),
		"folded_layers", imp.Folded,
	)
	return imp, nil
}

// reader unmaps wire records and collects the copy reports of an import.
type reader struct {
	imp *Import
}

// unmap converts one wire record to model values and project keys. Only
// fields present in the wire record are kept; row_index is carried over.
func (r *reader) unmap(wire *document.Map, table *core.MappingTable, dict string) *document.Map {
	if wire == nil {
		wire = document.NewMap()
	}
	out, report := core.UnmapBestEffort(wire, table)
	if !report.OK() {
		r.imp.Reports = append(r.imp.Reports, report)
	}
	for _, f := range table.StoredFields() {
		if !wire.Has(f) {
			out.Delete(f)
		}
	}
	if idx, ok := wire.Get(reshape.KeyRowIndex); ok {
		out.Set(reshape.KeyRowIndex, idx)
	}
	return keys.RenameMap(out, keys.MustGet(dict), keys.ToModel)
}

// textBool reads the literal strings "true" and "false".
func textBool(v any) (bool, bool) {
	switch v {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
