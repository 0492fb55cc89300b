package units

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/pilexchange/internal/core"
	_ "github.com/JonMunkholm/pilexchange/internal/core/tables"
	"github.com/JonMunkholm/pilexchange/internal/document"
)

func sampleProject() *document.Map {
	layer := func(qsk any) *document.Map {
		return document.MapOf("qsk", qsk, "qskStern", 0.0, "phi", 30.0, "ESoben", 12.0, "MaxElementWeite", 10.0)
	}
	return document.MapOf(
		"settings", document.MapOf("AbtreppungsWinkelRad", 45.0, "MaxLaengs", 28.0, "MvonMaxfuerSchub", 50.0, "ProjektOrt", "Hamburg"),
		"piles", []any{
			document.MapOf("Pname", "P1", "prozentualerMantelAnteil", 100.0),
			document.MapOf("Pname", "P2", "prozentualerMantelAnteil", "NaN"),
		},
		"soil_profiles", []any{
			document.MapOf("name", "BP1", "soil_layers", []any{layer(12.5), layer("40")}),
		},
	)
}

func TestProject_Forward(t *testing.T) {
	doc := sampleProject()
	require.NoError(t, Project.Convert(doc, Forward))

	v, _ := document.Lookup(doc, "settings", "AbtreppungsWinkelRad")
	assert.InDelta(t, math.Pi/4, v, 1e-12)
	v, _ = document.Lookup(doc, "settings", "MaxLaengs")
	assert.InDelta(t, 0.028, v, 1e-12)
	v, _ = document.Lookup(doc, "settings", "ProjektOrt")
	assert.Equal(t, "Hamburg", v)

	piles := document.Maps(doc.Value("piles"))
	assert.InDelta(t, 1.0, piles[0].Value("prozentualerMantelAnteil"), 1e-12)
	assert.Equal(t, "NaN", piles[1].Value("prozentualerMantelAnteil"))

	profile := document.Maps(doc.Value("soil_profiles"))[0]
	layers := document.Maps(profile.Value("soil_layers"))
	assert.InDelta(t, 12500.0, layers[0].Value("qsk"), 1e-9)
	assert.InDelta(t, 40000.0, layers[1].Value("qsk"), 1e-9)
	assert.InDelta(t, 0.1, layers[0].Value("MaxElementWeite"), 1e-12)
	assert.InDelta(t, 12000.0, layers[0].Value("ESoben"), 1e-9)
}

func TestProject_RoundTrip(t *testing.T) {
	doc := sampleProject()
	want := doc.Clone()

	require.NoError(t, Project.Convert(doc, Forward))
	require.NoError(t, Project.Convert(doc, Reverse))

	for _, f := range Project.Fields() {
		walk(want, strings.Split(f.Path, "."), "", func(m *document.Map, key, at string) bool {
			got, ok := lookupPath(doc, at)
			require.True(t, ok, at)
			orig := m.Value(key)
			if core.IsNaN(orig) {
				assert.Equal(t, orig, got, at)
				return true
			}
			o, err := core.ToFloat(orig)
			require.NoError(t, err)
			assert.InDelta(t, o, got, 1e-9, at)
			return true
		})
	}
}

// lookupPath resolves a concrete path like "piles[1].Pname".
func lookupPath(doc *document.Map, at string) (any, bool) {
	var cur any = doc
	for _, seg := range strings.Split(at, ".") {
		idx := -1
		if i := strings.IndexByte(seg, '['); i >= 0 {
			n := 0
			for _, c := range seg[i+1 : len(seg)-1] {
				n = n*10 + int(c-'0')
			}
			seg, idx = seg[:i], n
		}
		m, ok := document.AsMap(cur)
		if !ok {
			return nil, false
		}
		cur = m.Value(seg)
		if idx >= 0 {
			list := document.AsList(cur)
			if idx >= len(list) {
				return nil, false
			}
			cur = list[idx]
		}
	}
	return cur, true
}

func TestConvert_Errors(t *testing.T) {
	doc := document.MapOf(
		"piles", []any{
			document.MapOf("prozentualerMantelAnteil", "viel"),
			document.MapOf("prozentualerMantelAnteil", 50.0),
		},
		"settings", document.MapOf("MaxLaengs", true),
	)

	err := Project.Convert(doc.Clone(), Forward)
	require.Error(t, err)
	var ce *ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "settings.MaxLaengs", ce.Path)
	assert.Equal(t, "CNV001", core.MapError(err).Code)

	errs := Project.ConvertBestEffort(doc, Forward)
	require.Len(t, errs, 2)
	assert.Equal(t, "piles[0].prozentualerMantelAnteil", errs[1].Path)
	assert.Contains(t, errs[1].Error(), `"viel"`)

	piles := document.Maps(doc.Value("piles"))
	assert.Equal(t, "viel", piles[0].Value("prozentualerMantelAnteil"))
	assert.InDelta(t, 0.5, piles[1].Value("prozentualerMantelAnteil"), 1e-12)
	v, _ := document.Lookup(doc, "settings", "MaxLaengs")
	assert.Equal(t, true, v)
}

func TestConvert_SkipsMissingAndNil(t *testing.T) {
	doc := document.MapOf("settings", document.MapOf("MaxLaengs", nil))
	require.NoError(t, Project.Convert(doc, Forward))

	settings, _ := document.AsMap(doc.Value("settings"))
	assert.Equal(t, []string{"MaxLaengs"}, settings.Keys())
	assert.Nil(t, settings.Value("MaxLaengs"))

	require.NoError(t, Project.Convert(document.NewMap(), Forward))
}

func TestConvert_WithRounding(t *testing.T) {
	doc := document.MapOf("piles", []any{document.MapOf("prozentualerMantelAnteil", 0.0123456)})
	require.NoError(t, Project.Convert(doc, Reverse, WithRounding()))

	pile := document.Maps(doc.Value("piles"))[0]
	assert.Equal(t, 1.23, pile.Value("prozentualerMantelAnteil"))
}

func TestResults_Reverse(t *testing.T) {
	out := document.MapOf(
		"pfaehle", document.MapOf("LastPunktOutputList", document.MapOf(
			"LastPunktOutput", []any{document.MapOf("_EzuR", "0.85")},
		)),
		"BodenNutzung", document.MapOf("BodenNutzungDict", document.MapOf(
			"a:KeyValueOfstringBodenNutzungOutputDB_PsWP3v", []any{
				document.MapOf("a:Key", "BP1", "a:Value", document.MapOf(
					"_schichten", document.MapOf("BodenSchichtNutzung", []any{
						document.MapOf("_usedQsk", "12500", "_usedQbk01", "NaN"),
					}),
				)),
			},
		)),
	)

	require.NoError(t, Results.Convert(out, Reverse))

	v, _ := document.Lookup(out, "pfaehle", "LastPunktOutputList", "LastPunktOutput")
	assert.InDelta(t, 85.0, document.Maps(v)[0].Value("_EzuR"), 1e-9)

	v, _ = document.Lookup(out, "BodenNutzung", "BodenNutzungDict", "a:KeyValueOfstringBodenNutzungOutputDB_PsWP3v")
	layers, _ := document.Lookup(document.Maps(v)[0], "a:Value", "_schichten", "BodenSchichtNutzung")
	layer := document.Maps(layers)[0]
	assert.InDelta(t, 12.5, layer.Value("_usedQsk"), 1e-9)
	assert.Equal(t, "NaN", layer.Value("_usedQbk01"))
}

func TestNewTable_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
	}{
		{"empty path", []Field{{Path: "", Factor: 1}}},
		{"empty segment", []Field{{Path: "a..b", Factor: 1}}},
		{"zero factor", []Field{{Path: "a", Factor: 0}}},
		{"nan factor", []Field{{Path: "a", Factor: math.NaN()}}},
		{"duplicate", []Field{{Path: "a", Factor: 1}, {Path: "a", Factor: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.fields...)
			assert.Error(t, err)
		})
	}
}

// ----------------------------------------------------------------------------
// Scale factors are owned by this package; the mapping tables must not
// scale the same fields a second time.
// ----------------------------------------------------------------------------

func TestScaledFields_HaveNoTableTransform(t *testing.T) {
	check := func(field string) {
		found := false
		for _, table := range core.All() {
			r, ok := table.Rule(field)
			if !ok {
				continue
			}
			found = true
			if r.Transform != nil {
				assert.Equal(t, core.NoTransform{}, r.Transform, "%s.%s", table.Key(), field)
			}
		}
		assert.True(t, found, "no table declares %s", field)
	}

	for _, f := range Project.Fields() {
		check("_" + f.Name())
	}
	for _, f := range Results.Fields() {
		check(f.Name())
	}
}
