package reshape

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/document"
)

func TestColorReorder(t *testing.T) {
	twice, err := ColorToWire(mustColor(t, ColorToModel, "FF00FF00"))
	require.NoError(t, err)
	assert.Equal(t, "FF00FF00", twice)

	moved, err := ColorToWire("00FF00FF")
	require.NoError(t, err)
	assert.Equal(t, "FF00FF00", moved, "trailing alpha moves to the front")

	back, err := ColorToModel("80D8D8D8")
	require.NoError(t, err)
	assert.Equal(t, "D8D8D880", back)
}

func TestColor_FormatErrors(t *testing.T) {
	for _, in := range []string{"", "FF00FF", "FF00FF001", "GG00FF00", "#FF00FF00"} {
		_, err := ColorToWire(in)
		var me *core.MappingError
		if assert.ErrorAs(t, err, &me, in) {
			assert.Equal(t, core.ReasonFormat, me.Reason)
		}
		_, err = ColorToModel(in)
		assert.Error(t, err, in)
	}
}

func TestColor_ProjectValues(t *testing.T) {
	tests := []struct {
		in   string
		wire string
	}{
		{"D8D8D8", "FFD8D8D8"},
		{"#d8d8d8", "FFd8d8d8"},
		{"00FF0080", "8000FF00"},
	}

	for _, tt := range tests {
		got, err := ColorForWire(tt.in)
		if err != nil {
			t.Fatalf("ColorForWire(%q) error: %v", tt.in, err)
		}
		if got != tt.wire {
			t.Errorf("ColorForWire(%q) = %q, want %q", tt.in, got, tt.wire)
		}
	}

	opaque, err := ColorForModel("FFD8D8D8")
	require.NoError(t, err)
	assert.Equal(t, "D8D8D8", opaque)

	_, err = ColorForWire("#12345")
	assert.Error(t, err)
}

func mustColor(t *testing.T, fn func(string) (string, error), in string) string {
	t.Helper()
	out, err := fn(in)
	require.NoError(t, err)
	return out
}

// ----------------------------------------------------------------------------

func TestNormalize_SortsByRowIndex(t *testing.T) {
	project := document.MapOf(
		KeyPiles, []any{
			document.MapOf("Pname", "P2", KeyRowIndex, int64(1)),
			document.MapOf("Pname", "P3"),
			document.MapOf("Pname", "P1", KeyRowIndex, 0.0),
		},
		KeySoilProfiles, []any{
			document.MapOf(KeyName, "B1", KeySoilLayers, []any{
				document.MapOf("endKote", -2.0, KeyRowIndex, int64(1)),
				document.MapOf("endKote", -1.0, KeyRowIndex, int64(0)),
			}),
		},
	)

	out, err := Normalize(project)
	require.NoError(t, err)

	var names []any
	for _, p := range Rows(out, KeyPiles) {
		names = append(names, p.Value("Pname"))
	}
	assert.Equal(t, []any{"P1", "P2", "P3"}, names)

	layers := Rows(Rows(out, KeySoilProfiles)[0], KeySoilLayers)
	assert.Equal(t, -1.0, layers[0].Value("endKote"))

	assert.NotNil(t, out.Value(KeySettings), "missing settings become empty")
	assert.Empty(t, out.Value(KeyLoadCases))

	first := project.Value(KeyPiles).([]any)[0].(*document.Map)
	assert.Equal(t, "P2", first.Value("Pname"), "input is not reordered")
}

func TestNormalize_StructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		project *document.Map
		path    string
	}{
		{"nil", nil, ""},
		{"settings list", document.MapOf(KeySettings, []any{}), KeySettings},
		{"piles object", document.MapOf(KeyPiles, document.NewMap()), KeyPiles},
		{"pile scalar", document.MapOf(KeyPiles, []any{"P1"}), "piles[0]"},
		{"bad row index", document.MapOf(KeyPiles, []any{document.MapOf(KeyRowIndex, "x")}), "piles[0].row_index"},
		{"layers object", document.MapOf(KeySoilProfiles, []any{
			document.MapOf(KeySoilLayers, "none"),
		}), "soil_profiles[0].soil_layers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.project)
			var se *StructuralError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.path, se.Path)
			assert.Equal(t, "STR001", core.MapError(err).Code)
		})
	}
}

// ----------------------------------------------------------------------------

func sampleRequest() Request {
	return Request{
		ProjectInfo: document.MapOf("_ProjektName", "Demo"),
		UserMail:    "calc@example.com",
		UserKey:     "k1",
		SoilProfiles: []*document.Map{
			document.MapOf("_profilName", "B1", KeyAllLayers, []any{
				document.MapOf("_endKote", -1.0),
				document.MapOf("_endKote", -2.0),
			}),
			document.MapOf("_profilName", "B2", KeyAllLayers, []any{
				document.MapOf("_endKote", -3.0),
			}),
		},
		Piles: []*document.Map{
			document.MapOf("_Pname", "P1"),
		},
		LoadCases: []*document.Map{
			document.MapOf(KeyLoadTableName, "H1", KeyLoadPoints, []any{
				document.MapOf("_Pname", "P1"),
			}),
		},
	}
}

func TestNest_RootOrderAndContainers(t *testing.T) {
	doc := Nest(sampleRequest())

	root, ok := document.AsMap(doc.Value(RootInput))
	require.True(t, ok)
	assert.Equal(t, []string{
		KeyProjectInfo, KeyUserMail, KeyUserKey, KeyUserKeyHorizontal,
		KeySoil, KeyPileData, KeyHLoads, KeyUserInfo, KeyCustomerInfo,
		KeyXmlns, KeyXmlnsI,
	}, root.Keys())
	assert.Equal(t, DefaultXmlns, root.Value(KeyXmlns))

	profiles, ok := document.Lookup(root, KeySoil, KeyAllProfiles, KeyProfile)
	require.True(t, ok)
	require.Len(t, profiles, 2)

	layers, ok := document.Lookup(profiles.([]any)[0], KeyAllLayers, KeyLayer)
	require.True(t, ok)
	assert.Len(t, layers, 2)
}

func TestFlatten_InverseOfNest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, document.EncodeXML(&buf, Nest(sampleRequest()), false))

	// Through XML the one-layer profile and the single pile become bare objects.
	decoded, err := document.DecodeXML(&buf)
	require.NoError(t, err)

	flat, err := Flatten(decoded)
	require.NoError(t, err)

	assert.Equal(t, "Demo", flat.Value(KeySettings).(*document.Map).Value("_ProjektName"))

	piles := Rows(flat, KeyPiles)
	require.Len(t, piles, 1)
	assert.Equal(t, int64(0), piles[0].Value(KeyRowIndex))

	profiles := Rows(flat, KeySoilProfiles)
	require.Len(t, profiles, 2)
	first := Rows(profiles[0], KeyAllLayers)
	require.Len(t, first, 2)
	assert.Equal(t, int64(1), first[1].Value(KeyRowIndex))
	second := Rows(profiles[1], KeyAllLayers)
	require.Len(t, second, 1, "bare layer becomes a one-element list")
	assert.Equal(t, int64(0), second[0].Value(KeyRowIndex))

	cases := Rows(flat, KeyLoadCases)
	require.Len(t, cases, 1)
	assert.Len(t, Rows(cases[0], KeyLoadPoints), 1)
}

func TestFlatten_MissingGroups(t *testing.T) {
	flat, err := Flatten(document.MapOf(RootInput, document.MapOf(KeyProjectInfo, document.NewMap())))
	require.NoError(t, err)
	assert.Empty(t, flat.Value(KeyPiles))
	assert.Empty(t, flat.Value(KeySoilProfiles))

	_, err = Flatten(document.MapOf(RootInput, document.MapOf(KeyPileData, "x")))
	var se *StructuralError
	assert.ErrorAs(t, err, &se)
}

// ----------------------------------------------------------------------------

func TestNormalizeResults_BareObjectBecomesList(t *testing.T) {
	out := document.MapOf(
		"pfaehle", document.MapOf("LastPunktOutputList", document.MapOf(
			"LastPunktOutput", document.MapOf("_Pname", "P1"),
		)),
		"BodenNutzung", document.MapOf("BodenNutzungDict", document.MapOf(
			"a:KeyValueOfstringBodenNutzungOutputDB_PsWP3v", document.MapOf(
				KeyEntryKey, "B1",
				KeyEntryValue, document.MapOf(KeyUsedLayers, document.MapOf(
					KeyUsedLayer, document.MapOf("_usedQsk", "1"),
				)),
			),
		)),
	)

	require.NoError(t, NormalizeResults(out))

	piles := ResultGroup(out, PileResultsPath)
	require.Len(t, piles, 1)
	assert.Equal(t, "P1", piles[0].Value("_Pname"))

	raw, _ := document.Lookup(out, PileResultsPath...)
	assert.IsType(t, []any{}, raw)

	usage := ResultGroup(out, SoilUsagePath)
	require.Len(t, usage, 1)
	layers, _ := document.Lookup(EntryValue(usage[0]), KeyUsedLayers, KeyUsedLayer)
	assert.Len(t, layers, 1)

	assert.Nil(t, ResultGroup(out, LoadResultsPath), "missing group is skipped")
}

func TestNormalizeResults_ListUnaffected(t *testing.T) {
	group := []any{
		document.MapOf("_Pname", "P1"),
		document.MapOf("_Pname", "P2"),
		document.MapOf("_Pname", "P3"),
	}
	out := document.MapOf("pfaehle", document.MapOf("LastPunktOutputList", document.MapOf(
		"LastPunktOutput", group,
	)))

	require.NoError(t, NormalizeResults(out))

	raw, _ := document.Lookup(out, PileResultsPath...)
	assert.Equal(t, group, raw)
}

func TestNormalizeResults_Errors(t *testing.T) {
	err := NormalizeResults(document.MapOf("pfaehle", "oops"))
	var se *StructuralError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "pfaehle", se.Path)

	assert.Error(t, NormalizeResults(nil))
}
