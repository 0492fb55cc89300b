package schema

import "github.com/JonMunkholm/pilexchange/internal/core"

// Loads is the layout of a horizontal load case sheet. The sheet name is
// the load case name.
var Loads = newLayout("horizontal_loads", "Lastpunkt",
	Column{Header: "Lastpunkt", Key: "Pname", Type: core.TypeString},
	Column{Header: "Grundwasser", Key: "Grundwasser", Type: core.TypeFloat},
	Column{Header: "Hgkx", Key: "Hgkx", Type: core.TypeFloat},
	Column{Header: "Hgky", Key: "Hgky", Type: core.TypeFloat},
	Column{Header: "Hqkx", Key: "Hqkx", Type: core.TypeFloat},
	Column{Header: "Hqky", Key: "Hqky", Type: core.TypeFloat},
	Column{Header: "Mgkx", Key: "Mgkx", Type: core.TypeFloat},
	Column{Header: "Mgky", Key: "Mgky", Type: core.TypeFloat},
	Column{Header: "Mqkx", Key: "Mqkx", Type: core.TypeFloat},
	Column{Header: "Mqky", Key: "Mqky", Type: core.TypeFloat},
	Column{Header: "OK Boden Biegung", Key: "OKBodenBiegung", Type: core.TypeFloat},
	Column{Header: "gkz", Key: "gkz", Type: core.TypeFloat},
	Column{Header: "p an Oberkante", Key: "pAnOberkante", Type: core.TypeFloat},
	Column{Header: "qkz", Key: "qkz", Type: core.TypeFloat},
)
