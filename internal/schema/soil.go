package schema

import "github.com/JonMunkholm/pilexchange/internal/core"

// InfoSuffix ends the name of the sheet holding a soil profile's own
// values. The layer sheet before it carries the profile name.
const InfoSuffix = "-Info"

// ImportedPileType is the pile type code given to imported soil profiles.
const ImportedPileType int64 = 4

// SoilLayers is the layout of a soil layer sheet.
var SoilLayers = newLayout("soil_layers", "Endkote",
	Column{Header: "Endkote", Key: "endKote", Type: core.TypeFloat},
	Column{Header: "Bodenart", Key: "bodenArt", Type: core.TypeString},
	Column{Header: "Es oben", Key: "ESoben", Type: core.TypeFloat},
	Column{Header: "Es unten", Key: "ESunten", Type: core.TypeFloat},
	Column{Header: "Fuß absetzbar", Key: "FuszAbsetzbar", Type: core.TypeBool},
	Column{Header: "Eindringrelevant", Key: "IstEindringRelevant", Type: core.TypeBool},
	Column{Header: "Max. Elementweite", Key: "MaxElementWeite", Type: core.TypeFloat},
	Column{Header: "cu EP", Key: "cuEP", Type: core.TypeFloat},
	Column{Header: "cuk", Key: "cuk", Type: core.TypeFloat},
	Column{Header: "delta/phi", Key: "deltaVonPhi", Type: core.TypeFloat},
	Column{Header: "Wichte", Key: "gammaBoden", Type: core.TypeFloat},
	Column{Header: "Wichte unter Auftrieb", Key: "gammaStrichBoden", Type: core.TypeFloat},
	Column{Header: "phi", Key: "phi", Type: core.TypeFloat},
	Column{Header: "qbk 0.02", Key: "qbk002", Type: core.TypeFloat},
	Column{Header: "qbk 0.03", Key: "qbk003", Type: core.TypeFloat},
	Column{Header: "qbk 0.1", Key: "qbk01", Type: core.TypeFloat},
	Column{Header: "qc", Key: "qc", Type: core.TypeFloat},
	Column{Header: "qsk", Key: "qsk", Type: core.TypeFloat},
	Column{Header: "qsk*", Key: "qskStern", Type: core.TypeFloat},
	Column{Header: "tau nk", Key: "tauNk", Type: core.TypeFloat},
	Column{Header: "qsk Zug", Key: "qskZug", Type: core.TypeFloat},
	Column{Header: "Farbe", Key: "bodenSchichtColor", Type: core.TypeString},
)

// SoilInfo is the layout of a "<Profile>-Info" sheet. Only its first data
// row is read.
var SoilInfo = newLayout("soil_info", "Grundwasserstand",
	Column{Header: "Grundwasserstand", Key: "grundwasserStand", Type: core.TypeFloat},
	Column{Header: "Startkote", Key: "startKote", Type: core.TypeFloat},
)
