// Package driven moves skin friction between qsk and qskStern for soil
// profiles used by driven piles.
//
// The engine reads the skin friction of driven piles from qskStern, the
// project keeps a single qsk per layer. Apply prepares a normalized project
// for the engine, Fold undoes it for imported engine input.
package driven

import (
	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/core/tables"
	"github.com/JonMunkholm/pilexchange/internal/document"
	"github.com/JonMunkholm/pilexchange/internal/reshape"
)

// Model keys touched by this package.
const (
	KeyPileType    = "PfahlTyp"
	KeyPileProfile = "BodenProfil"
	KeyQsk         = "qsk"
	KeyQskStern    = "qskStern"
)

// Profiles returns the names of the soil profiles referenced by a driven
// pile, in pile order without duplicates.
func Profiles(project *document.Map) []string {
	var names []string
	seen := make(map[string]bool)
	for _, pile := range reshape.Rows(project, reshape.KeyPiles) {
		if !tables.IsDriven(pile.Value(KeyPileType)) {
			continue
		}
		name := core.ToString(pile.Value(KeyPileProfile))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// Apply rewrites the layers of every soil profile in place. Layers of a
// profile used by a driven pile get qskStern = qsk and qsk = 0; layers of
// all other profiles get qskStern = 0. It returns the driven profiles.
func Apply(project *document.Map) []string {
	names := Profiles(project)
	driven := make(map[string]bool, len(names))
	for _, n := range names {
		driven[n] = true
	}

	for _, profile := range reshape.Rows(project, reshape.KeySoilProfiles) {
		isDriven := driven[core.ToString(profile.Value(reshape.KeyName))]
		for _, layer := range reshape.Rows(profile, reshape.KeySoilLayers) {
			if isDriven {
				layer.Set(KeyQskStern, layer.Value(KeyQsk))
				layer.Set(KeyQsk, 0.0)
			} else {
				layer.Set(KeyQskStern, 0.0)
			}
		}
	}
	return names
}

// Fold merges qskStern back into qsk for layers whose qsk is absent, nil,
// zero or NaN, and clears qskStern on those layers. It returns the number
// of layers changed. A layer with a real qsk of zero and no qskStern ends up
// with a nil qsk.
func Fold(project *document.Map) int {
	n := 0
	for _, profile := range reshape.Rows(project, reshape.KeySoilProfiles) {
		for _, layer := range reshape.Rows(profile, reshape.KeySoilLayers) {
			if !unset(layer.Value(KeyQsk)) {
				continue
			}
			layer.Set(KeyQsk, layer.Value(KeyQskStern))
			layer.Set(KeyQskStern, nil)
			n++
		}
	}
	return n
}

func unset(v any) bool {
	if v == nil || core.IsNaN(v) {
		return true
	}
	if !core.IsNumeric(v) {
		return false
	}
	f, err := core.ToFloat(v)
	return err == nil && f == 0
}
