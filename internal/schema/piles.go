package schema

import "github.com/JonMunkholm/pilexchange/internal/core"

// PileSheetName is the name of the first sheet on export.
const PileSheetName = "Pfahltabelle"

// Piles is the layout of the pile sheet, always the first sheet.
var Piles = newLayout("piles", "Lastpunkt",
	Column{Header: "Lastpunkt", Key: "Pname", Type: core.TypeString},
	Column{Header: "Rechtswert", Key: "Rechtswert", Type: core.TypeFloat},
	Column{Header: "Hochwert", Key: "Hochwert", Type: core.TypeFloat},
	Column{Header: "Bodenprofil", Key: "BodenProfil", Type: core.TypeString},
	Column{Header: "Pfahltyp", Key: "PfahlTyp", Type: core.TypeString},
	Column{Header: "Durchmesser", Key: "SollDurchmesser", Type: core.TypeFloat},
	Column{Header: "Pfahloberkante", Key: "SollPfahlOberKante", Type: core.TypeFloat},
	Column{Header: "Arbeitsebene", Key: "AEHoehe", Type: core.TypeFloat},
	Column{Header: "Last Z char.", Key: "AlternativeCharakteristischeLastZ", Type: core.TypeFloat},
	Column{Header: "Min. Last Z char.", Key: "AlternativeCharakteristischeMinLastZ", Type: core.TypeFloat},
	Column{Header: "Last Z Design", Key: "AlternativeDesignLastZ", Type: core.TypeFloat},
	Column{Header: "Min. Last Z Design", Key: "AlternativeDesignMinLastZ", Type: core.TypeFloat},
	Column{Header: "Betonfestigkeit", Key: "BetonZyl", Type: core.TypeInt},
	Column{Header: "Achsabstand xD", Key: "PfahlAchsAbstandxD", Type: core.TypeFloat},
	Column{Header: "Pfahlanzahl", Key: "PfahlAnzahl", Type: core.TypeInt},
	Column{Header: "Ausnutzung", Key: "einzelAusnutzung", Type: core.TypeInt},
	Column{Header: "Exzentrizität", Key: "einzelExzentrizitaet", Type: core.TypeFloat},
	Column{Header: "Knicklänge", Key: "einzelKnickLaenge", Type: core.TypeInt},
	Column{Header: "Max. Bohrtiefe", Key: "einzelMaximaleBohrtiefe", Type: core.TypeInt},
	Column{Header: "Mindesteindringung", Key: "einzelMindestEindringung", Type: core.TypeFloat},
	Column{Header: "Zul. Setzung [cm]", Key: "einzelzulaessigeSetzungCm", Type: core.TypeFloat},
	Column{Header: "Mantelanteil [%]", Key: "prozentualerMantelAnteil", Type: core.TypeFloat},
)
