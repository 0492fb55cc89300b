package units

import "math"

const degToRad = math.Pi / 180

// Project scales project fields before they are sent to the engine
// (Forward) and after an engine input file is imported (Reverse).
var Project = MustTable(
	Field{Path: "settings.AbtreppungsWinkelRad", Factor: degToRad},
	Field{Path: "settings.MaxLaengs", Factor: 0.001},
	Field{Path: "settings.MaxBuegel", Factor: 0.001},
	Field{Path: "settings.MinLaengsAbstand", Factor: 0.001},
	Field{Path: "settings.Betondeckung", Factor: 0.001},
	Field{Path: "settings.MvonMaxfuerSchub", Factor: 0.01},

	Field{Path: "piles[].prozentualerMantelAnteil", Factor: 0.01},

	Field{Path: "soil_profiles[].soil_layers[].ESoben", Factor: 1000},
	Field{Path: "soil_profiles[].soil_layers[].ESunten", Factor: 1000},
	Field{Path: "soil_profiles[].soil_layers[].MaxElementWeite", Factor: 0.01},
	Field{Path: "soil_profiles[].soil_layers[].phi", Factor: degToRad},
	Field{Path: "soil_profiles[].soil_layers[].qsk", Factor: 1000},
	Field{Path: "soil_profiles[].soil_layers[].qskStern", Factor: 1000},
	Field{Path: "soil_profiles[].soil_layers[].qbk002", Factor: 1000},
	Field{Path: "soil_profiles[].soil_layers[].qbk003", Factor: 1000},
	Field{Path: "soil_profiles[].soil_layers[].qbk01", Factor: 1000},
)

// Results scales engine results back to project units with Reverse. Paths
// are relative to OutputDaten after result groups have been normalized.
var Results = MustTable(
	Field{Path: "pfaehle.LastPunktOutputList.LastPunktOutput[]._EzuR", Factor: 0.01},

	Field{Path: usedLayers + "._usedQsk", Factor: 1000},
	Field{Path: usedLayers + "._usedQbk002", Factor: 1000},
	Field{Path: usedLayers + "._usedQbk003", Factor: 1000},
	Field{Path: usedLayers + "._usedQbk01", Factor: 1000},
)

const usedLayers = "BodenNutzung.BodenNutzungDict.a:KeyValueOfstringBodenNutzungOutputDB_PsWP3v[].a:Value._schichten.BodenSchichtNutzung[]"
