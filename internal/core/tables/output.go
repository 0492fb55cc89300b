package tables

import "github.com/JonMunkholm/pilexchange/internal/core"

// Output table keys.
const (
	KeySoilProfileOutput = "soil_profile_output"
	KeySoilLayerOutput   = "soil_layer_output"
	KeyLoadPointOutput   = "load_point_output"
	KeyHLoadPointOutput  = "horizontal_load_point_output"
)

// SoilLayerPlaceholder is what the engine writes into _Pfahltyp of every
// soil usage layer after the first one.
const SoilLayerPlaceholder = `"`

// SoilProfileOutput is one soil usage entry. The profile name is the key of
// the surrounding KeyValueOf element, not a field.
var SoilProfileOutput = core.MustTable(core.TableInfo{Key: KeySoilProfileOutput, Group: GroupOutput, Label: "Soil usage"}, []core.MappingRule{
	{Field: "_PfahlTyp", Model: tStr, Wire: tStr},
	{Field: "_schichten", Model: tDict, Wire: tDict},
}...)

// SoilLayerOutput is one BodenSchichtNutzung entry.
var SoilLayerOutput = core.MustTable(core.TableInfo{Key: KeySoilLayerOutput, Group: GroupOutput, Label: "Soil layer usage"}, []core.MappingRule{
	{Field: "_Pfahltyp", Model: tNone, Wire: tStr, Fallback: SoilLayerPlaceholder},
	{Field: "_usedQsk", Model: tFloat, Wire: tFloat},
	{Field: "_usedQbk002", Model: tFloat, Wire: tFloat},
	{Field: "_usedQbk003", Model: tFloat, Wire: tFloat},
	{Field: "_usedQbk01", Model: tFloat, Wire: tFloat},
}...)

// LoadPointOutput is one LastPunktOutput entry. Fields the project does not
// keep are declared with a None model so they are read past, not stored.
var LoadPointOutput = core.MustTable(core.TableInfo{Key: KeyLoadPointOutput, Group: GroupOutput, Label: "Pile result"}, []core.MappingRule{
	{Field: "_Federsteifigkeit", Model: tFloat, Wire: tFloat},
	{Field: "_MinFedersteifigkeit", Model: tNone, Wire: tFloat},
	{Field: "_MinSetzung", Model: tNone, Wire: tFloat},
	{Field: "_Nachweisgruppe", Model: tInt, Wire: tInt},
	{Field: "_R_d", Model: tFloat, Wire: tFloat},
	{Field: "_R_d_Min", Model: tFloat, Wire: tFloat},
	{Field: "_Rb_k", Model: tFloat, Wire: tFloat},
	{Field: "_Rs_k", Model: tFloat, Wire: tFloat},
	{Field: "_Setzung", Model: tFloat, Wire: tFloat},
	{Field: "_laenge_mit", Model: tFloat, Wire: tFloat},
	{Field: "_laenge_ohne", Model: tFloat, Wire: tFloat},
	{Field: "nachweisErbracht", Model: tNone, Wire: tBool},
	{Field: "nachweisErbrachtMin", Model: tNone, Wire: tBool},
	{Field: "_GewaehltePfahlAnzahl", Model: tNone, Wire: tInt},
	{Field: "_GewaehlterDurchmesser", Model: tNone, Wire: tFloat},
	{Field: "_PfahlKosten", Model: tNone, Wire: tFloat},
	{Field: "_HerstellDauer", Model: tNone, Wire: tFloat},
	{Field: "_MaterialKosten", Model: tNone, Wire: tFloat},
	{Field: "_hatWasserAuflast", Model: tNone, Wire: tBool},
	{Field: "_laengeImWasser", Model: tNone, Wire: tFloat},
	{Field: "_ASQuer", Model: tNone, Wire: tFloat},
	{Field: "_AsLaengs", Model: tFloat, Wire: tFloat},
	{Field: "_AsLaengsCalc", Model: tNone, Wire: tFloat},
	{Field: "_AsQuerCalc", Model: tNone, Wire: tFloat},
	{Field: "_BetonGuete", Model: tNone, Wire: tStr},
	{Field: "_BewBZWLieferlaenge", Model: tFloat, Wire: tFloat},
	// -1 when the horizontal calculation failed.
	{Field: "_BewTyp", Model: tNone, Wire: tFloat},
	{Field: "_BohrLaenge", Model: tFloat, Wire: tFloat},
	{Field: "_EindringTiefe", Model: tFloat, Wire: tFloat},
	{Field: "_EindringTiefeZug", Model: tNone, Wire: tFloat},
	{Field: "_EzuR", Model: tFloat, Wire: tFloat},
	{Field: "_EzuRMin", Model: tNone, Wire: tFloat},
	{Field: "_GesamtBewBZWLieferlaenge", Model: tNone, Wire: tFloat},
	{Field: "_GesamtBohrLaenge", Model: tFloat, Wire: tFloat},
	{Field: "_KoteUeberdrueckt", Model: tNone, Wire: tFloat},
	{Field: "_MMax", Model: tNone, Wire: tFloat},
	{Field: "_PfahlVolumen", Model: tFloat, Wire: tFloat},
	{Field: "_QMax", Model: tNone, Wire: tFloat},
	{Field: "_Soll_UK_Pfahl", Model: tFloat, Wire: tFloat},
	{Field: "_delta_Laenge", Model: tFloat, Wire: tFloat},
}...)

// HLoadPointOutput is one HLastPunktHorOutput entry.
var HLoadPointOutput = core.MustTable(core.TableInfo{Key: KeyHLoadPointOutput, Group: GroupOutput, Label: "Horizontal result"}, []core.MappingRule{
	{Field: "_AsLaengs", Model: tFloat, Wire: tFloat},
	{Field: "_AsLaengsCalc", Model: tFloat, Wire: tFloat},
	{Field: "_AsLaengsMin", Model: tNone, Wire: tFloat},
	{Field: "_AsQuer", Model: tFloat, Wire: tFloat},
	{Field: "_AsQuerCalc", Model: tFloat, Wire: tFloat},
	{Field: "_AsSchubMin", Model: tNone, Wire: tFloat},
	{Field: "_Berechnung", Model: tNone, Wire: tBool},
	{Field: "_BerechnungOK", Model: tNone, Wire: tFloat},
	{Field: "_BewTyp", Model: tStr, Wire: tStr},
	// Stored as delivered; the percent range is not documented.
	{Field: "_EpsO", Model: tFloat, Wire: tFloat},
	{Field: "_Eps1", Model: tFloat, Wire: tFloat},
	{Field: "_KoteUeberdrueckt", Model: tFloat, Wire: tFloat},
	{Field: "_MMax", Model: tFloat, Wire: tFloat},
	{Field: "_MxMax", Model: tFloat, Wire: tFloat},
	{Field: "_MyMax", Model: tFloat, Wire: tFloat},
	{Field: "_Nachweisgruppe", Model: tInt, Wire: tInt},
	{Field: "_QMax", Model: tFloat, Wire: tFloat},
	{Field: "_QxMax", Model: tFloat, Wire: tFloat},
	{Field: "_QyMax", Model: tFloat, Wire: tFloat},
	{Field: "_wOben", Model: tFloat, Wire: tFloat},
	{Field: "_wxOben", Model: tFloat, Wire: tFloat},
	{Field: "_wyOben", Model: tFloat, Wire: tFloat},
	{Field: "_MdKopf", Model: tNone, Wire: tFloat},
	{Field: "_MdKopfx", Model: tNone, Wire: tFloat},
	{Field: "_MdKopfy", Model: tNone, Wire: tFloat},
	{Field: "_wStrichKopf", Model: tNone, Wire: tFloat},
	{Field: "_wStrichKopfx", Model: tNone, Wire: tFloat},
	{Field: "_wStrichKopfy", Model: tNone, Wire: tFloat},
}...)

func registerOutputTables() {
	core.Register(SoilProfileOutput)
	core.Register(SoilLayerOutput)
	core.Register(LoadPointOutput)
	core.Register(HLoadPointOutput)
}
