package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/pilexchange/internal/document"
)

func TestBuiltinDictionaries(t *testing.T) {
	for _, name := range []string{
		Settings, SoilProfile, SoilLayer, Pile, HorizontalLoadCase, HorizontalLoad,
		PileResult, SoilProfileResult, SoilLayerResult, HorizontalResult,
		UserInfo, CustomerInfo,
	} {
		d, ok := Get(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, d.Pairs(), name)
	}
	assert.Len(t, Names(), 12)
	assert.Panics(t, func() { MustGet("nope") })
}

func TestDictionary_SharedWireKey(t *testing.T) {
	d := MustGet(Settings)

	to, ok := d.Lookup("ProjektOrt", ToWire)
	require.True(t, ok)
	assert.Equal(t, "_projektLocation", to)

	to, ok = d.Lookup("projektLocation", ToWire)
	require.True(t, ok)
	assert.Equal(t, "_projektLocation", to)

	from, ok := d.Lookup("_projektLocation", ToModel)
	require.True(t, ok)
	assert.Equal(t, "projektLocation", from, "first declared source wins")
}

func TestNewDictionary_Errors(t *testing.T) {
	_, err := NewDictionary("x", Pair{From: "a", To: "_a"}, Pair{From: "a", To: "_b"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = NewDictionary("x", Pair{From: "", To: "_a"})
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestParse(t *testing.T) {
	dicts, err := Parse([]byte("pile:\n  Pname: _Pname\n  Zeta: _Zeta\n  Alpha: _Alpha\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Pname", "Zeta", "Alpha"}, dicts["pile"].Sources(), "yaml order is kept")

	_, err = Parse([]byte("pile: [a, b]\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("pile:\n  a: _a\n  a: _b\n"))
	assert.Error(t, err)
}

// ----------------------------------------------------------------------------

func TestRename_RecursiveAndReversible(t *testing.T) {
	d, err := NewDictionary("test",
		Pair{From: "name", To: "_profilName"},
		Pair{From: "soil_layers", To: "alleBodenSchichten"},
		Pair{From: "qsk", To: "_qsk"},
	)
	require.NoError(t, err)

	in := document.MapOf(
		"name", "B1",
		"extra", 1.0,
		"soil_layers", []any{
			document.MapOf("qsk", 12.5, "row_index", int64(0)),
		},
	)

	wire := Rename(in, d, ToWire).(*document.Map)
	assert.Equal(t, []string{"_profilName", "extra", "alleBodenSchichten"}, wire.Keys())
	layers := document.Maps(wire.Value("alleBodenSchichten"))
	require.Len(t, layers, 1)
	assert.Equal(t, 12.5, layers[0].Value("_qsk"))
	assert.Equal(t, int64(0), layers[0].Value("row_index"), "unknown keys pass through")

	back := Rename(wire, d, ToModel).(*document.Map)
	assert.Equal(t, in.Keys(), back.Keys())
	assert.True(t, in.Has("name"), "input is not modified")
}

func TestFilter(t *testing.T) {
	in := []any{
		document.MapOf("a", 1.0, "b", 2.0, "c", document.MapOf("a", 3.0, "z", 4.0)),
		"scalar",
	}
	out := Filter(in, []string{"a", "c"}).([]any)

	first := out[0].(*document.Map)
	assert.Equal(t, []string{"a", "c"}, first.Keys())
	assert.Equal(t, []string{"a"}, first.Value("c").(*document.Map).Keys())
	assert.Equal(t, "scalar", out[1])
}

func TestSort(t *testing.T) {
	m := document.MapOf("c", 3.0, "x", 9.0, "a", 1.0)

	tests := []struct {
		name            string
		includeUnlisted bool
		want            []string
	}{
		{"with unlisted", true, []string{"a", "b", "c", "x"}},
		{"listed only", false, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Sort(m, []string{"a", "b", "c"}, tt.includeUnlisted)
			assert.Equal(t, tt.want, out.Keys())
			assert.True(t, out.Has("b"))
			assert.Nil(t, out.Value("b"), "missing ordered keys are filled with nil")
		})
	}
}
