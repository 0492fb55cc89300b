package tables

import (
	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/reshape"
)

// Input table keys.
const (
	KeySettings         = "project_settings"
	KeySoilProfileInput = "soil_profile_input"
	KeySoilLayerInput   = "soil_layer_input"
	KeyLoadPointInput   = "load_point_input"
	KeyHLoadCaseInput   = "horizontal_load_case_input"
	KeyHLoadPointInput  = "horizontal_load_point_input"
)

// Short aliases keep the rule lists aligned.
const (
	tNone  = core.TypeNone
	tStr   = core.TypeString
	tBool  = core.TypeBool
	tInt   = core.TypeInt
	tFloat = core.TypeFloat
	tDict  = core.TypeDict
)

// Fields scaled by the units package carry no transform here; the units
// table is the only owner of scale factors.

// Settings is the projektInfo block. Field order is the order the engine
// reads them in; fields missing from a project are filled from Fallback.
var Settings = core.MustTable(core.TableInfo{Key: KeySettings, Group: GroupInput, Label: "Project settings"}, []core.MappingRule{
	{Field: "_ProjektName", Model: tStr, Wire: tStr},
	{Field: "_runHorBemessung", Model: tBool, Wire: tBool},
	{Field: "_AbtreppungsWinkelRad", Model: tFloat, Wire: tFloat},
	{Field: "_AchsabstandGleicherTiefe", Model: tFloat, Wire: tFloat},
	{Field: "_AuslastungProzent", Model: tFloat, Wire: tFloat},
	{Field: "_Beeinflussungsweite", Model: tFloat, Wire: tFloat},
	{Field: "_EAErhoehungProzent", Model: tFloat, Wire: tFloat},
	{Field: "_Exzentrizitaet", Model: tFloat, Wire: tFloat},
	{Field: "_FuszBeeinfluszung", Model: tInt, Wire: tInt},
	{Field: "_FuszErhoehungProzent", Model: tFloat, Wire: tFloat},
	{Field: "_Knicklaenge", Model: tNone, Wire: tFloat, Fallback: 0.0},
	{Field: "_MantelErhoehungProzent", Model: tFloat, Wire: tFloat},
	{Field: "_MindestEinbindung", Model: tFloat, Wire: tFloat},
	{Field: "_MindestPfahllaenge", Model: tFloat, Wire: tFloat},
	{Field: "_Norm", Model: tNone, Wire: tInt, Fallback: 1},
	{Field: "_Schrittweite", Model: tFloat, Wire: tFloat},
	{Field: "_SpitzendruckMittelung", Model: tBool, Wire: tBool},
	{Field: "_WinkelAusProfilen", Model: tBool, Wire: tBool},
	{Field: "_gammaDruck", Model: tFloat, Wire: tFloat},
	{Field: "_gammaStaendig", Model: tFloat, Wire: tFloat},
	{Field: "_gammaVeraenderlich", Model: tFloat, Wire: tFloat},
	{Field: "_gammaZug", Model: tFloat, Wire: tFloat},
	{Field: "_gegenRaeumlichenEP", Model: tBool, Wire: tBool},
	{Field: "_ksNichtReduzieren", Model: tBool, Wire: tBool},
	{Field: "_useErhoehung", Model: tInt, Wire: tInt},
	{Field: "_zulaessigeSetzungCm", Model: tFloat, Wire: tFloat},
	{Field: "_BetonZyl", Model: tInt, Wire: tInt, Fallback: 25, Transform: ConcreteEnum},
	{Field: "_KopfEinbindung", Model: tFloat, Wire: tFloat},
	{Field: "_MaxLaenge", Model: tNone, Wire: tInt, Fallback: 100},
	{Field: "_projektLocation", Model: tStr, Wire: tStr, Fallback: ""},
	{Field: "_projektPostalCode", Model: tStr, Wire: tStr, Fallback: ""},
	{Field: "_projektStreet", Model: tStr, Wire: tStr, Fallback: ""},
	{Field: "_companyAltEmail", Model: tStr, Wire: tStr, Fallback: ""},
	{Field: "_companyAltFax", Model: tNone, Wire: tStr, Fallback: ""},
	{Field: "_companyAltLocation", Model: tStr, Wire: tStr, Fallback: ""},
	{Field: "_companyAltName", Model: tStr, Wire: tStr, Fallback: ""},
	{Field: "_companyAltPhone", Model: tStr, Wire: tStr, Fallback: ""},
	{Field: "_companyAltPostalCode", Model: tStr, Wire: tStr, Fallback: ""},
	{Field: "_companyAltStreet", Model: tStr, Wire: tStr, Fallback: ""},
	{Field: "_companyAltLogo", Model: tStr, Wire: tStr, Fallback: ""},
	{Field: "_nameAnlageAuszen", Model: tStr, Wire: tStr, Fallback: ""},
	{Field: "_seitenBezeichnung", Model: tStr, Wire: tStr, Fallback: "Seite"},
	{Field: "_seitenStartNummer", Model: tInt, Wire: tInt, Fallback: 1},
	{Field: "_SeiteVonSeiten", Model: tBool, Wire: tInt, Fallback: true},
	{Field: "_erstelleUebersichtAuszen", Model: tBool, Wire: tInt, Fallback: true},
	{Field: "_UebersichtQuer", Model: tBool, Wire: tInt, Fallback: true},
	{Field: "_erstelleEinzelnachweise", Model: tBool, Wire: tInt, Fallback: true},
	{Field: "_zeichneNachweislinien", Model: tBool, Wire: tInt, Fallback: true},
	{Field: "_UKKotenInTabelle", Model: tBool, Wire: tInt, Fallback: true},
	{Field: "_erstellegrafikAuszen", Model: tBool, Wire: tInt, Fallback: true},
	{Field: "_erstellegrafikInnen", Model: tBool, Wire: tInt, Fallback: true},
	// Reinforcement and horizontal design settings.
	{Field: "_bemesseHorizontal", Model: tBool, Wire: tBool, Fallback: true},
	{Field: "_qskQcAb0", Model: tBool, Wire: tBool, Fallback: false},
	{Field: "_qbkQcAb0", Model: tBool, Wire: tBool, Fallback: false},
	{Field: "_qskCukAb0", Model: tBool, Wire: tBool, Fallback: false},
	{Field: "_qbkCukAb0", Model: tBool, Wire: tBool, Fallback: false},
	{Field: "_MaxLaengs", Model: tFloat, Wire: tFloat},
	{Field: "_MaxBuegel", Model: tFloat, Wire: tFloat},
	{Field: "_MinLaengsAbstand", Model: tFloat, Wire: tFloat},
	{Field: "_MindestEindringung", Model: tFloat, Wire: tFloat, Fallback: 0.75},
	{Field: "_Stahlsorte", Model: tStr, Wire: tStr, Fallback: "B500B"},
	{Field: "_StandardPfahlTyp", Model: tStr, Wire: tStr, Fallback: "bp"},
	{Field: "_falsermInner", Model: tInt, Wire: tInt, Fallback: 1},
	{Field: "_MvonMaxfuerSchub", Model: tFloat, Wire: tFloat},
	{Field: "_Betondeckung", Model: tFloat, Wire: tFloat},
}...)

// SoilProfileInput is one BodenProfilDaten entry. The layers are mapped
// separately and passed through alleBodenSchichten as is.
var SoilProfileInput = core.MustTable(core.TableInfo{Key: KeySoilProfileInput, Group: GroupInput, Label: "Soil profile"}, []core.MappingRule{
	{Field: "_profilName", Model: tStr, Wire: tStr},
	{Field: "_PfahlTyp", Model: tInt, Wire: tInt, Fallback: DefaultPileType},
	{Field: "_grundwasserStand", Model: tFloat, Wire: tFloat},
	{Field: "_startKote", Model: tFloat, Wire: tFloat},
	{Field: "alleBodenSchichten", Model: tDict, Wire: tDict},
}...)

// SoilLayerInput is one BodenSchichtDaten entry.
var SoilLayerInput = core.MustTable(core.TableInfo{Key: KeySoilLayerInput, Group: GroupInput, Label: "Soil layer"}, []core.MappingRule{
	{Field: "_endKote", Model: tFloat, Wire: tFloat},
	{Field: "_bodenArt", Model: tStr, Wire: tStr},
	{Field: "_ESoben", Model: tFloat, Wire: tFloat},
	{Field: "_ESunten", Model: tFloat, Wire: tFloat},
	{Field: "_FuszAbsetzbar", Model: tBool, Wire: tInt},
	{Field: "_IstEindringRelevant", Model: tBool, Wire: tInt},
	{Field: "_MaxElementWeite", Model: tFloat, Wire: tFloat, Fallback: 0.1},
	{Field: "_cuEP", Model: tFloat, Wire: tFloat},
	{Field: "_cuk", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_deltaVonPhi", Model: tFloat, Wire: tFloat},
	{Field: "_gammaBoden", Model: tFloat, Wire: tFloat},
	{Field: "_gammaStrichBoden", Model: tFloat, Wire: tFloat},
	{Field: "_phi", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_qbk002", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_qbk003", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_qbk01", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_qc", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_qsk", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_qskStern", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_tauNk", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_qskZug", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_bodenSchichtColor", Model: tStr, Wire: tStr, Transform: layerColor},
}...)

// LoadPointInput is one LastPunktInput entry (a pile with its loads).
// Two field names carry no leading underscore on the wire.
var LoadPointInput = core.MustTable(core.TableInfo{Key: KeyLoadPointInput, Group: GroupInput, Label: "Load point"}, []core.MappingRule{
	{Field: "_Pname", Model: tStr, Wire: tStr},
	{Field: "_AEHoehe", Model: tFloat, Wire: tFloat},
	{Field: "_AlternativeCharakteristischeLastZ", Model: tFloat, Wire: tFloat},
	{Field: "AlternativeCharakteristischeMinLastZ", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_AlternativeDesignLastZ", Model: tFloat, Wire: tFloat},
	{Field: "AlternativeDesignMinLastZ", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_BetonZyl", Model: tNone, Wire: tInt, Fallback: 25},
	{Field: "_BodenProfil", Model: tStr, Wire: tStr},
	{Field: "_Hochwert", Model: tFloat, Wire: tFloat},
	{Field: "_PfahlAchsAbstandxD", Model: tFloat, Wire: tFloat, Fallback: 3.0},
	{Field: "_PfahlAnzahl", Model: tFloat, Wire: tFloat, Fallback: 1.0},
	{Field: "_PfahlTyp", Model: tInt, Wire: tStr, Fallback: "bp", Transform: PileTypeEnum},
	{Field: "_Rechtswert", Model: tFloat, Wire: tFloat},
	{Field: "_SollDurchmesser", Model: tFloat, Wire: tFloat},
	{Field: "_SollPfahlOberKante", Model: tFloat, Wire: tFloat},
	{Field: "_einzelAusnutzung", Model: tNone, Wire: tFloat, Fallback: 1.0},
	{Field: "_einzelExzentrizitaet", Model: tNone, Wire: tFloat, Fallback: 0.1},
	{Field: "_einzelKnickLaenge", Model: tNone, Wire: tFloat, Fallback: 0.0},
	{Field: "_einzelMaximaleBohrtiefe", Model: tNone, Wire: tFloat, Fallback: 100.0},
	{Field: "_einzelMindestEindringung", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_einzelzulaessigeSetzungCm", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_prozentualerMantelAnteil", Model: tFloat, Wire: tFloat, Fallback: 1.0},
}...)

// HLoadCaseInput is one HLastInputTabelle entry; its load points are
// mapped separately and passed through hLastPunkte.
var HLoadCaseInput = core.MustTable(core.TableInfo{Key: KeyHLoadCaseInput, Group: GroupInput, Label: "Horizontal load case"}, []core.MappingRule{
	{Field: "hTabelleName", Model: tStr, Wire: tStr},
	{Field: "hLastPunkte", Model: tDict, Wire: tDict},
}...)

// HLoadPointInput is one HLastPunktInput entry.
var HLoadPointInput = core.MustTable(core.TableInfo{Key: KeyHLoadPointInput, Group: GroupInput, Label: "Horizontal load point"}, []core.MappingRule{
	{Field: "_Pname", Model: tStr, Wire: tStr},
	{Field: "_Grundwasser", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_Hgkx", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_Hgky", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_Hqkx", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_Hqky", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_Mgkx", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_Mgky", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_Mqkx", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_Mqky", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_OKBodenBiegung", Model: tFloat, Wire: tFloat, Fallback: 0.0},
	{Field: "_gkz", Model: tFloat, Wire: tFloat},
	{Field: "_pAnOberkante", Model: tFloat, Wire: tFloat, Fallback: 1.9},
	{Field: "_qkz", Model: tFloat, Wire: tFloat},
}...)

// layerColor converts soil layer colors between RRGGBB(AA) in the model
// and AARRGGBB on the wire.
var layerColor = core.Custom{Name: "layer_color", Fn: func(v any, forward bool) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, core.FormatError(v, "color must be text")
	}
	if forward {
		return reshape.ColorForWire(s)
	}
	return reshape.ColorForModel(s)
}}

func registerInputTables() {
	core.Register(Settings)
	core.Register(SoilProfileInput)
	core.Register(SoilLayerInput)
	core.Register(LoadPointInput)
	core.Register(HLoadCaseInput)
	core.Register(HLoadPointInput)
}
