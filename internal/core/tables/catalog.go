package tables

import (
	"strings"

	"github.com/JonMunkholm/pilexchange/internal/core"
)

// PileType is one entry of the engine's pile type catalog.
type PileType struct {
	Code   int64
	Symbol string // Short name used on the wire and in project documents
	Name   string // Long name reported in soil usage results
	Driven bool   // Installed by impact driving
}

// PileTypes lists every pile type the engine knows, ordered by code.
var PileTypes = []PileType{
	{Code: 0, Symbol: "js", Name: "Jac-S"},
	{Code: 1, Symbol: "jo", Name: "Jac-O"},
	{Code: 2, Symbol: "jb", Name: "Jac-B"},
	{Code: 3, Symbol: "jv", Name: "Jac-V"},
	{Code: 4, Symbol: "bp", Name: "Bohrpfahl"},
	{Code: 5, Symbol: "a", Name: "Atlas"},
	{Code: 6, Symbol: "f", Name: "Fundex"},
	{Code: 7, Symbol: "v", Name: "VGS"},
	{Code: 14, Symbol: "c", Name: "Betonfertigrammpfahl", Driven: true},
	{Code: 15, Symbol: "r", Name: "Stahlrohrrammpfahl, hb=0.8; hs=0.6", Driven: true},
	{Code: 16, Symbol: "fv", Name: "Fundex"},
	{Code: 17, Symbol: "fdp", Name: "Atlas-FDP"},
}

// DefaultPileType is the bored pile, used when a record names no type.
const DefaultPileType int64 = 4

// PileTypeEnum maps pile type codes (model) to symbols (wire).
var PileTypeEnum = buildPileTypeEnum()

func buildPileTypeEnum() core.EnumMap {
	pairs := make([]core.EnumPair, len(PileTypes))
	for i, p := range PileTypes {
		pairs[i] = core.EnumPair{Model: p.Code, Wire: p.Symbol}
	}
	return core.MustEnumMap(pairs...)
}

// ConcreteGrade is a concrete strength class accepted by the engine.
type ConcreteGrade struct {
	Code  int64
	Label string
}

// ConcreteGrades lists the supported grades.
var ConcreteGrades = []ConcreteGrade{
	{Code: 25, Label: "C25/30"},
	{Code: 30, Label: "C30/37"},
	{Code: 35, Label: "C35/40"},
}

// ConcreteEnum accepts only known grade codes. Model and wire values are
// the same code.
var ConcreteEnum = buildConcreteEnum()

func buildConcreteEnum() core.EnumMap {
	pairs := make([]core.EnumPair, len(ConcreteGrades))
	for i, g := range ConcreteGrades {
		pairs[i] = core.EnumPair{Model: g.Code, Wire: g.Code}
	}
	return core.MustEnumMap(pairs...)
}

// LookupPileType resolves a pile type from its code (number or numeric
// text) or its symbol.
func LookupPileType(v any) (PileType, bool) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		for _, p := range PileTypes {
			if strings.EqualFold(p.Symbol, s) {
				return p, true
			}
		}
		if !core.IsNumeric(s) {
			return PileType{}, false
		}
	}
	code, err := core.ToInt(v)
	if err != nil {
		return PileType{}, false
	}
	for _, p := range PileTypes {
		if p.Code == code {
			return p, true
		}
	}
	return PileType{}, false
}

// CanonicalPileType returns the code of a pile type given as code or symbol.
func CanonicalPileType(v any) (int64, bool) {
	p, ok := LookupPileType(v)
	return p.Code, ok
}

// PileSymbol returns the symbol of a pile type given as code or symbol.
func PileSymbol(v any) (string, bool) {
	p, ok := LookupPileType(v)
	return p.Symbol, ok
}

// IsDriven reports whether v names a driven pile type.
func IsDriven(v any) bool {
	p, ok := LookupPileType(v)
	return ok && p.Driven
}
