package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/document"
)

func TestRegistry_Contents(t *testing.T) {
	assert.Equal(t, 10, core.TableCount())
	assert.Equal(t, []string{GroupInput, GroupOutput}, core.Groups())
	assert.Len(t, core.ByGroup(GroupInput), 6)
	assert.Len(t, core.ByGroup(GroupOutput), 4)

	for _, key := range []string{
		KeySettings, KeySoilProfileInput, KeySoilLayerInput, KeyLoadPointInput,
		KeyHLoadCaseInput, KeyHLoadPointInput, KeySoilProfileOutput,
		KeySoilLayerOutput, KeyLoadPointOutput, KeyHLoadPointOutput,
	} {
		table, ok := core.Get(key)
		require.True(t, ok, key)
		assert.Positive(t, table.Len(), key)
	}
}

// sampleWire builds a well-formed wire record for a table with one value
// per wire type. overrides replace values that must belong to an enum or
// follow a fixed format.
func sampleWire(table *core.MappingTable, overrides map[string]any) *document.Map {
	w := document.NewMap()
	for _, r := range table.Rules() {
		if v, ok := overrides[r.Field]; ok {
			w.Set(r.Field, v)
			continue
		}
		switch r.Wire {
		case core.TypeString:
			w.Set(r.Field, "text")
		case core.TypeBool:
			w.Set(r.Field, true)
		case core.TypeInt:
			w.Set(r.Field, int64(1))
		case core.TypeFloat:
			w.Set(r.Field, 1.5)
		case core.TypeDict:
			w.Set(r.Field, document.MapOf("child", "x"))
		case core.TypeBytes:
			w.Set(r.Field, []byte("x"))
		}
	}
	return w
}

func TestTables_MapOfUnmapRoundTrip(t *testing.T) {
	overrides := map[string]map[string]any{
		KeySettings:       {"_BetonZyl": int64(30)},
		KeySoilLayerInput: {"_bodenSchichtColor": "FF00FF00"},
		KeyLoadPointInput: {"_PfahlTyp": "c"},
	}

	for _, table := range core.All() {
		t.Run(table.Key(), func(t *testing.T) {
			w := sampleWire(table, overrides[table.Key()])

			model, err := core.Unmap(w, table)
			require.NoError(t, err)
			assert.Equal(t, table.StoredFields(), model.Keys())

			back, err := core.Map(model, table)
			require.NoError(t, err)
			require.Equal(t, table.Fields(), back.Keys(), "every wire field is emitted")

			for _, r := range table.Rules() {
				if r.Model == core.TypeNone {
					want, err := core.Coerce(r.Fallback, r.Wire)
					require.NoError(t, err)
					assert.Equal(t, want, back.Value(r.Field), r.Field)
					continue
				}
				assert.Equal(t, w.Value(r.Field), back.Value(r.Field), r.Field)
			}
		})
	}
}

// ----------------------------------------------------------------------------

func TestLoadPoint_PileTypeSymbols(t *testing.T) {
	tests := []struct {
		name string
		code any
		want string
	}{
		{"bored", int64(4), "bp"},
		{"driven concrete", int64(14), "c"},
		{"json float", 15.0, "r"},
		{"missing uses fallback", nil, "bp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := document.NewMap()
			for _, f := range LoadPointInput.StoredFields() {
				record.Set(f, 1.0)
			}
			record.Set("_Pname", "P1")
			record.Set("_BodenProfil", "B1")
			record.Set("_PfahlTyp", tt.code)

			out, err := core.Map(record, LoadPointInput)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Value("_PfahlTyp"))
		})
	}
}

func TestLoadPoint_UnknownPileType(t *testing.T) {
	record := document.MapOf("_PfahlTyp", int64(99))
	_, err := core.Map(record, LoadPointInput)

	var me *core.MappingError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, core.ReasonMissing, me.Reason, "_Pname comes first and is required")

	record = sampleModel(LoadPointInput)
	record.Set("_PfahlTyp", int64(99))
	_, err = core.Map(record, LoadPointInput)
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "_PfahlTyp", me.Field)
	assert.Equal(t, core.ReasonEnum, me.Reason)
	assert.Equal(t, "MAP002", core.MapError(err).Code)
}

func TestSettings_ConcreteGrade(t *testing.T) {
	record := sampleModel(Settings)
	record.Set("_BetonZyl", int64(40))
	_, err := core.Map(record, Settings)
	var me *core.MappingError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "_BetonZyl", me.Field)

	record.Set("_BetonZyl", nil)
	out, err := core.Map(record, Settings)
	require.NoError(t, err)
	assert.Equal(t, int64(25), out.Value("_BetonZyl"))
	assert.Equal(t, int64(100), out.Value("_MaxLaenge"))
	assert.Equal(t, int64(1), out.Value("_Norm"))
}

func TestSoilLayer_Color(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		wire    string
		back    string
		wantErr bool
	}{
		{"six digits become opaque", "00FF00", "FF00FF00", "00FF00", false},
		{"hash prefix", "#D8D8D8", "FFD8D8D8", "D8D8D8", false},
		{"alpha moves to the front", "00FF0080", "8000FF00", "00FF0080", false},
		{"wrong length", "ABC", "", "", true},
		{"not hex", "GGGGGG", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := sampleModel(SoilLayerInput)
			record.Set("_bodenSchichtColor", tt.model)

			out, err := core.Map(record, SoilLayerInput)
			if tt.wantErr {
				var me *core.MappingError
				require.ErrorAs(t, err, &me)
				assert.Equal(t, core.ReasonFormat, me.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wire, out.Value("_bodenSchichtColor"))

			model, err := core.Unmap(out, SoilLayerInput)
			require.NoError(t, err)
			assert.Equal(t, tt.back, model.Value("_bodenSchichtColor"))
		})
	}
}

func TestSoilLayerOutput_PlaceholderDropped(t *testing.T) {
	w := document.MapOf("_Pfahltyp", "Bohrpfahl", "_usedQsk", "12.5")
	model, err := core.Unmap(w, SoilLayerOutput)
	require.NoError(t, err)
	assert.False(t, model.Has("_Pfahltyp"))
	assert.Equal(t, 12.5, model.Value("_usedQsk"))
	assert.Nil(t, model.Value("_usedQbk01"))
}

// ----------------------------------------------------------------------------

func TestLookupPileType(t *testing.T) {
	tests := []struct {
		in     any
		code   int64
		driven bool
		ok     bool
	}{
		{"bp", 4, false, true},
		{"C", 14, true, true},
		{" r ", 15, true, true},
		{int64(17), 17, false, true},
		{"16", 16, false, true},
		{14.0, 14, true, true},
		{"xx", 0, false, false},
		{int64(8), 0, false, false},
		{nil, 0, false, false},
	}

	for _, tt := range tests {
		p, ok := LookupPileType(tt.in)
		if ok != tt.ok {
			t.Errorf("LookupPileType(%v) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if p.Code != tt.code {
			t.Errorf("LookupPileType(%v) = %d, want %d", tt.in, p.Code, tt.code)
		}
		if IsDriven(tt.in) != tt.driven {
			t.Errorf("IsDriven(%v) = %v, want %v", tt.in, !tt.driven, tt.driven)
		}
	}
}

func TestPileTypeEnum_Bijective(t *testing.T) {
	for _, p := range PileTypes {
		w, ok := PileTypeEnum.Forward(p.Code)
		require.True(t, ok)
		m, ok := PileTypeEnum.Reverse(w)
		require.True(t, ok)
		assert.Equal(t, p.Code, m)
	}
}

// sampleModel returns a model record with every stored field set to a
// valid value.
func sampleModel(table *core.MappingTable) *document.Map {
	m := document.NewMap()
	for _, r := range table.Rules() {
		switch r.Model {
		case core.TypeNone:
			continue
		case core.TypeString:
			m.Set(r.Field, "text")
		case core.TypeBool:
			m.Set(r.Field, false)
		case core.TypeInt:
			m.Set(r.Field, int64(1))
		case core.TypeFloat:
			m.Set(r.Field, 2.0)
		case core.TypeDict:
			m.Set(r.Field, document.NewMap())
		}
	}
	switch table {
	case LoadPointInput:
		m.Set("_PfahlTyp", DefaultPileType)
	case Settings:
		m.Set("_BetonZyl", int64(25))
	case SoilLayerInput:
		m.Set("_bodenSchichtColor", "D8D8D8")
	}
	return m
}
