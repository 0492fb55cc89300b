package reshape

import "github.com/JonMunkholm/pilexchange/internal/document"

// Wire document element names.
const (
	RootInput  = "InputDaten"
	RootOutput = "OutputDaten"
	RootError  = "ErrorData"

	KeyProjectInfo       = "projektInfo"
	KeyUserMail          = "userMailAddress"
	KeyUserKey           = "userKey"
	KeyUserKeyHorizontal = "userKeyHorizontal"
	KeySoil              = "boden"
	KeyPileData          = "pfaehle"
	KeyHLoads            = "hLasten"
	KeyUserInfo          = "_userInfo"
	KeyCustomerInfo      = "_customerInfo"
	KeyXmlns             = "@xmlns"
	KeyXmlnsI            = "@xmlns:i"

	KeyAllProfiles   = "alleBodenProfile"
	KeyProfile       = "BodenProfilDaten"
	KeyAllLayers     = "alleBodenSchichten"
	KeyLayer         = "BodenSchichtDaten"
	KeyPileList      = "LastPunktInputList"
	KeyPile          = "LastPunktInput"
	KeyLoadTables    = "hTabellen"
	KeyLoadTable     = "HLastInputTabelle"
	KeyLoadPoints    = "hLastPunkte"
	KeyLoadPoint     = "HLastPunktInput"
	KeyLoadTableName = "hTabelleName"
)

// Default namespaces of the request root.
const (
	DefaultXmlns  = "http://schemas.datacontract.org/2004/07/DHPD"
	DefaultXmlnsI = "http://www.w3.org/2001/XMLSchema-instance"
)

// Request holds the mapped wire records of one calculation request.
// SoilProfiles carry their layers as a list under alleBodenSchichten and
// LoadCases carry their points as a list under hLastPunkte.
type Request struct {
	ProjectInfo       *document.Map
	UserMail          string
	UserKey           string
	UserKeyHorizontal string
	SoilProfiles      []*document.Map
	Piles             []*document.Map
	LoadCases         []*document.Map
	UserInfo          *document.Map
	CustomerInfo      *document.Map
	Xmlns             string
	XmlnsI            string
}

// Nest builds the request document {"InputDaten": {...}} with the child
// keys in the order the engine expects. Records are wrapped, not copied.
func Nest(req Request) *document.Map {
	profiles := make([]any, len(req.SoilProfiles))
	for i, p := range req.SoilProfiles {
		p.Set(KeyAllLayers, document.MapOf(KeyLayer, listOf(p.Value(KeyAllLayers))))
		profiles[i] = p
	}

	cases := make([]any, len(req.LoadCases))
	for i, c := range req.LoadCases {
		c.Set(KeyLoadPoints, document.MapOf(KeyLoadPoint, listOf(c.Value(KeyLoadPoints))))
		cases[i] = c
	}

	piles := make([]any, len(req.Piles))
	for i, p := range req.Piles {
		piles[i] = p
	}

	xmlns, xmlnsI := req.Xmlns, req.XmlnsI
	if xmlns == "" {
		xmlns = DefaultXmlns
	}
	if xmlnsI == "" {
		xmlnsI = DefaultXmlnsI
	}

	info := req.ProjectInfo
	if info == nil {
		info = document.NewMap()
	}

	root := document.NewMap()
	root.Set(KeyProjectInfo, info)
	root.Set(KeyUserMail, req.UserMail)
	root.Set(KeyUserKey, req.UserKey)
	root.Set(KeyUserKeyHorizontal, req.UserKeyHorizontal)
	root.Set(KeySoil, document.MapOf(KeyAllProfiles, document.MapOf(KeyProfile, profiles)))
	root.Set(KeyPileData, document.MapOf(KeyPileList, document.MapOf(KeyPile, piles)))
	root.Set(KeyHLoads, document.MapOf(KeyLoadTables, document.MapOf(KeyLoadTable, cases)))
	root.Set(KeyUserInfo, orEmpty(req.UserInfo))
	root.Set(KeyCustomerInfo, orEmpty(req.CustomerInfo))
	root.Set(KeyXmlns, xmlns)
	root.Set(KeyXmlnsI, xmlnsI)

	return document.MapOf(RootInput, root)
}

func listOf(v any) []any {
	items := document.AsList(v)
	if items == nil {
		return []any{}
	}
	return items
}

func orEmpty(m *document.Map) *document.Map {
	if m == nil {
		return document.NewMap()
	}
	return m
}
