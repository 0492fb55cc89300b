package pipeline

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/core/tables"
	"github.com/JonMunkholm/pilexchange/internal/document"
	"github.com/JonMunkholm/pilexchange/internal/keys"
	"github.com/JonMunkholm/pilexchange/internal/logging"
	"github.com/JonMunkholm/pilexchange/internal/post"
	"github.com/JonMunkholm/pilexchange/internal/reshape"
)

// projectPileName holds the name of a project pile row.
const projectPileName = "Pname"

// ProcessResults checks an engine response for reported failures and
// post-processes its results.
//
// An ErrorData response or a non-empty _fehlerText yields a
// *CalculationError. On _fehlerText the result groups are removed from the
// response, since they are incomplete.
func ProcessResults(ctx context.Context, response *document.Map) (*post.Result, error) {
	log := logging.WithFields(ctx, "stage", "results")

	if response == nil {
		return nil, reshape.Structural("", "response is empty")
	}

	if v, ok := response.Get(reshape.RootError); ok {
		errData, _ := document.AsMap(v)
		list, _ := document.Lookup(errData, reshape.KeyErrorList, reshape.KeyErrorListItem)
		err := &CalculationError{Rejected: true, Messages: messages(list)}
		log.Warn("engine rejected request", "messages", err.Messages)
		return nil, err
	}

	v, ok := response.Get(reshape.RootOutput)
	if !ok {
		return nil, reshape.Structural("", "expected %s or %s", reshape.RootOutput, reshape.RootError)
	}
	out, ok := document.AsMap(v)
	if !ok {
		return nil, reshape.Structural(reshape.RootOutput, "expected an object, got %s", document.KindOf(v))
	}

	if text, ok := out.Value(reshape.KeyErrorText).(string); ok && text != "" {
		for _, k := range reshape.ResultGroupKeys {
			out.Delete(k)
		}
		log.Warn("calculation failed", "error", text)
		return nil, &CalculationError{Messages: []string{text}}
	}

	result := post.NewResult(out)
	if err := post.Process(result); err != nil {
		return nil, fmt.Errorf("process results: %w", err)
	}
	for _, e := range result.Skipped {
		log.Warn("result not scaled", "path", e.Path, "value", e.Value)
	}

	log.Info("results processed",
		"piles", len(post.Piles(out)),
		"soil_usages", len(reshape.ResultGroup(out, reshape.SoilUsagePath)),
		"load_cases", len(reshape.ResultGroup(out, reshape.LoadResultsPath)),
	)
	return result, nil
}

// messages flattens the InfoInhalt entries of an ErrorData response.
func messages(v any) []string {
	var out []string
	for _, item := range document.AsList(v) {
		switch m := item.(type) {
		case nil:
		case *document.Map:
			m.Range(func(_ string, v any) bool {
				if s := core.ToString(v); s != "" {
					out = append(out, s)
				}
				return true
			})
		default:
			if s := core.ToString(m); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Applied counts the project rows that received results.
type Applied struct {
	Piles  int
	Layers int
	Loads  int

	// Unmatched lists result entries without a project row of that name,
	// and project rows that share a name with an earlier row and so never
	// receive results.
	Unmatched []string

	// Reports lists the result records with fields that could not be read
	// as their declared type. Those fields carry the engine value unchanged.
	Reports []core.CopyReport
}

func (a *Applied) copy(row, rec *document.Map, table *core.MappingTable, dict string) {
	if report := copyResult(row, rec, table, dict); !report.OK() {
		a.Reports = append(a.Reports, report)
	}
}

// ApplyResults copies processed results into a copy of project and returns
// it. Pile results are matched by pile name; when project rows share a
// name the first one receives the results. Soil usage entries are
// matched by profile name and their layers are paired with the profile
// layers in row order; load case results likewise. Surplus entries on
// either side are left alone.
func ApplyResults(ctx context.Context, project *document.Map, result *post.Result) (*document.Map, *Applied, error) {
	log := logging.WithFields(ctx, "stage", "apply")

	if !result.Processed() {
		if err := post.Process(result); err != nil {
			return nil, nil, fmt.Errorf("apply results: %w", err)
		}
	}
	p, err := reshape.Normalize(project)
	if err != nil {
		return nil, nil, fmt.Errorf("apply results: %w", err)
	}

	applied := &Applied{}

	piles := applied.byName(p, reshape.KeyPiles, projectPileName, "pile")
	for _, rec := range post.Piles(result.Output) {
		name := core.ToString(rec.Value(post.KeyPileName))
		pile, ok := piles[name]
		if !ok {
			applied.Unmatched = append(applied.Unmatched, "pile "+name)
			continue
		}
		applied.copy(pile, rec, tables.LoadPointOutput, keys.PileResult)
		applied.Piles++
	}

	profiles := applied.byName(p, reshape.KeySoilProfiles, reshape.KeyName, "soil profile")
	for _, entry := range reshape.ResultGroup(result.Output, reshape.SoilUsagePath) {
		name := core.ToString(entry.Value(reshape.KeyEntryKey))
		profile, ok := profiles[name]
		if !ok {
			applied.Unmatched = append(applied.Unmatched, "soil profile "+name)
			continue
		}
		applied.Layers += applied.zip(reshape.Rows(profile, reshape.KeySoilLayers), post.UsedLayers(entry),
			tables.SoilLayerOutput, keys.SoilLayerResult)
	}

	cases := applied.byName(p, reshape.KeyLoadCases, reshape.KeyName, "load case")
	for _, entry := range reshape.ResultGroup(result.Output, reshape.LoadResultsPath) {
		name := core.ToString(entry.Value(reshape.KeyEntryKey))
		lc, ok := cases[name]
		if !ok {
			applied.Unmatched = append(applied.Unmatched, "load case "+name)
			continue
		}
		applied.Loads += applied.zip(reshape.Rows(lc, reshape.KeyLoads), post.LoadResults(entry),
			tables.HLoadPointOutput, keys.HorizontalResult)
	}

	for _, u := range applied.Unmatched {
		log.Warn("result not applied", "entry", u)
	}
	for _, rep := range applied.Reports {
		for _, sk := range rep.Skipped {
			log.Warn("result field not read", "table", rep.Table, "field", sk.Field, "error", sk.Err)
		}
	}
	log.Info("results applied",
		"piles", applied.Piles,
		"layers", applied.Layers,
		"loads", applied.Loads,
		"skipped", len(applied.Reports),
	)
	return p, applied, nil
}

// ClearResults returns a copy of project with every result field of piles,
// soil layers and horizontal loads set to nil.
func ClearResults(project *document.Map) (*document.Map, error) {
	p, err := reshape.Normalize(project)
	if err != nil {
		return nil, fmt.Errorf("clear results: %w", err)
	}
	for _, pile := range reshape.Rows(p, reshape.KeyPiles) {
		clearFields(pile, keys.PileResult)
	}
	for _, profile := range reshape.Rows(p, reshape.KeySoilProfiles) {
		for _, layer := range reshape.Rows(profile, reshape.KeySoilLayers) {
			clearFields(layer, keys.SoilLayerResult)
		}
	}
	for _, lc := range reshape.Rows(p, reshape.KeyLoadCases) {
		for _, load := range reshape.Rows(lc, reshape.KeyLoads) {
			clearFields(load, keys.HorizontalResult)
		}
	}
	return p, nil
}

// byName indexes the rows under key by their nameKey value. The first row
// of a name wins; later ones are listed as unmatched.
func (a *Applied) byName(p *document.Map, key, nameKey, kind string) map[string]*document.Map {
	out := make(map[string]*document.Map)
	for _, row := range reshape.Rows(p, key) {
		name := core.ToString(row.Value(nameKey))
		if _, dup := out[name]; dup {
			a.Unmatched = append(a.Unmatched, fmt.Sprintf("%s %s (duplicate name)", kind, name))
			continue
		}
		out[name] = row
	}
	return out
}

func (a *Applied) zip(rows, results []*document.Map, table *core.MappingTable, dict string) int {
	n := min(len(rows), len(results))
	for i := 0; i < n; i++ {
		a.copy(rows[i], results[i], table, dict)
	}
	return n
}

// copyResult stores the result fields of rec on row under their project
// names. Fields the table does not keep are ignored; values that cannot be
// read as the declared type are stored as sent and listed in the report.
func copyResult(row, rec *document.Map, table *core.MappingTable, dict string) core.CopyReport {
	values, report := core.UnmapBestEffort(rec, table)
	for _, pair := range keys.MustGet(dict).Pairs() {
		if !rec.Has(pair.To) {
			continue
		}
		v, ok := values.Get(pair.To)
		if !ok {
			continue
		}
		if core.IsNaN(v) {
			v = nil
		}
		row.Set(pair.From, v)
	}
	return report
}

func clearFields(row *document.Map, dict string) {
	for _, k := range keys.MustGet(dict).Sources() {
		row.Set(k, nil)
	}
}
