package driven

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JonMunkholm/pilexchange/internal/document"
)

func project(pileTypes ...any) *document.Map {
	piles := make([]any, 0, len(pileTypes))
	for i, pt := range pileTypes {
		profile := "BP1"
		if i > 0 {
			profile = "BP2"
		}
		piles = append(piles, document.MapOf("Pname", "P", "PfahlTyp", pt, "BodenProfil", profile))
	}
	return document.MapOf(
		"piles", piles,
		"soil_profiles", []any{
			document.MapOf("name", "BP1", "soil_layers", []any{
				document.MapOf("qsk", 12.5, "qskStern", 3.0),
			}),
			document.MapOf("name", "BP2", "soil_layers", []any{
				document.MapOf("qsk", 20.0, "qskStern", 7.0),
			}),
		},
	)
}

func layer(p *document.Map, profile int) *document.Map {
	profiles := document.Maps(p.Value("soil_profiles"))
	return document.Maps(profiles[profile].Value("soil_layers"))[0]
}

func TestApply_DrivenProfile(t *testing.T) {
	p := project("c", "bp")

	assert.Equal(t, []string{"BP1"}, Apply(p))

	assert.Equal(t, 0.0, layer(p, 0).Value("qsk"))
	assert.Equal(t, 12.5, layer(p, 0).Value("qskStern"))
	assert.Equal(t, 20.0, layer(p, 1).Value("qsk"))
	assert.Equal(t, 0.0, layer(p, 1).Value("qskStern"))
}

func TestApply_NumericCodes(t *testing.T) {
	p := project(int64(4), int64(15))

	assert.Equal(t, []string{"BP2"}, Apply(p))
	assert.Equal(t, 12.5, layer(p, 0).Value("qsk"))
	assert.Equal(t, 0.0, layer(p, 0).Value("qskStern"))
	assert.Equal(t, 20.0, layer(p, 1).Value("qskStern"))
}

func TestApply_NoDrivenPiles(t *testing.T) {
	p := project("bp")

	assert.Empty(t, Apply(p))
	assert.Equal(t, 12.5, layer(p, 0).Value("qsk"))
	assert.Equal(t, 0.0, layer(p, 0).Value("qskStern"))
	assert.Equal(t, 0.0, layer(p, 1).Value("qskStern"))
}

func TestFold_InverseOfApply(t *testing.T) {
	p := project("c", "r")
	Apply(p)

	assert.Equal(t, 2, Fold(p))
	assert.Equal(t, 12.5, layer(p, 0).Value("qsk"))
	assert.Nil(t, layer(p, 0).Value("qskStern"))
	assert.Equal(t, 20.0, layer(p, 1).Value("qsk"))
}

func TestFold_Conditions(t *testing.T) {
	tests := []struct {
		name   string
		qsk    any
		folded bool
	}{
		{"nil", nil, true},
		{"zero", 0.0, true},
		{"zero text", "0", true},
		{"nan", "NaN", true},
		{"value", 12.5, false},
		{"text value", "12.5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := document.MapOf("qsk", tt.qsk, "qskStern", 9.0)
			p := document.MapOf("soil_profiles", []any{
				document.MapOf("name", "BP1", "soil_layers", []any{l}),
			})

			n := Fold(p)
			if tt.folded {
				assert.Equal(t, 1, n)
				assert.Equal(t, 9.0, l.Value("qsk"))
				assert.Nil(t, l.Value("qskStern"))
			} else {
				assert.Zero(t, n)
				assert.Equal(t, tt.qsk, l.Value("qsk"))
				assert.Equal(t, 9.0, l.Value("qskStern"))
			}
		})
	}

	l := document.MapOf("qskStern", 4.0)
	Fold(document.MapOf("soil_profiles", []any{document.MapOf("soil_layers", []any{l})}))
	assert.Equal(t, 4.0, l.Value("qsk"))
}

func TestFold_ZeroQskWithoutStern(t *testing.T) {
	l := document.MapOf("qsk", 0.0, "qskStern", nil)
	p := document.MapOf("soil_profiles", []any{document.MapOf("soil_layers", []any{l})})

	assert.Equal(t, 1, Fold(p))
	assert.True(t, l.Has("qsk"))
	assert.Nil(t, l.Value("qsk"), "a zero qsk cannot be told from an unset one")
}
