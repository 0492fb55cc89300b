// Package pipeline chains the transcoding stages into the three flows the
// tool offers: building a calculation request from a project, importing a
// request document back into a project, and applying engine results.
package pipeline

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/pilexchange/internal/config"
	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/core/tables"
	"github.com/JonMunkholm/pilexchange/internal/document"
	"github.com/JonMunkholm/pilexchange/internal/driven"
	"github.com/JonMunkholm/pilexchange/internal/keys"
	"github.com/JonMunkholm/pilexchange/internal/logging"
	"github.com/JonMunkholm/pilexchange/internal/reshape"
	"github.com/JonMunkholm/pilexchange/internal/units"
)

// Settings keys handled before mapping.
const (
	KeyDefaultCompanyInfo = "default_company_info"
	KeyCompanyAltLogo     = "companyAltLogo"
	KeyInvoiceStyle       = "_companyInvoiceStyle"
)

// companyAlt maps the alternative company settings to the customer keys
// they are filled from when default_company_info is set.
var companyAlt = []struct{ setting, company string }{
	{"companyAltName", "name"},
	{"companyAltLocation", "location"},
	{"companyAltStreet", "address"},
	{"companyAltPostalCode", "postal_code"},
	{"companyAltEmail", "email"},
	{"companyAltPhone", "phone"},
	{"companyAltFax", "fax"},
}

// Party is the user and company a request is issued for, keyed by the
// project-side names of the user_info and customer_info dictionaries.
// Either may be nil.
type Party struct {
	User    *document.Map
	Company *document.Map
}

// Request is a built calculation request.
type Request struct {
	Document *document.Map

	// DrivenProfiles are the soil profiles whose skin friction was moved
	// to qskStern.
	DrivenProfiles []string

	// Reports lists the records with fields that could not be mapped.
	// Those fields carry the project value unchanged.
	Reports []core.CopyReport

	// Unscaled lists values that could not be converted to engine units.
	Unscaled []*units.ConversionError
}

// Skipped returns the number of fields that were copied unconverted.
func (r *Request) Skipped() int {
	n := len(r.Unscaled)
	for _, rep := range r.Reports {
		n += len(rep.Skipped)
	}
	return n
}

// BuildRequest converts a project document into an InputDaten request
// document. The project is not modified.
//
// Field problems do not abort the request: they are logged, reported on the
// result and the engine gets the unconverted value. Shape problems abort.
func BuildRequest(ctx context.Context, project *document.Map, party Party, cfg *config.Config) (*Request, error) {
	log := logging.WithFields(ctx, "stage", "request")

	p, err := reshape.Normalize(project)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	settings, _ := document.AsMap(p.Value(reshape.KeySettings))
	if !settings.Has(reshape.KeyName) {
		settings.Set(reshape.KeyName, p.Value(reshape.KeyName))
	}
	if flag, err := core.ToBool(settings.Value(KeyDefaultCompanyInfo)); err == nil && flag {
		useCompanyInfo(settings, party.Company, cfg.Company.ImageDir)
	}

	req := &Request{}
	req.DrivenProfiles = driven.Apply(p)
	if len(req.DrivenProfiles) > 0 {
		log.Debug("driven pile profiles", "profiles", req.DrivenProfiles)
	}

	req.Unscaled = units.Project.ConvertBestEffort(p, units.Forward)
	for _, e := range req.Unscaled {
		log.Warn("value not scaled", "path", e.Path, "value", e.Value)
	}

	b := &builder{req: req}

	info := b.mapRecord(settings, keys.Settings, tables.Settings)

	piles := make([]*document.Map, 0)
	for _, pile := range reshape.Rows(p, reshape.KeyPiles) {
		piles = append(piles, b.mapPile(pile))
	}

	profiles := make([]*document.Map, 0)
	for _, profile := range reshape.Rows(p, reshape.KeySoilProfiles) {
		var layers []any
		for _, layer := range reshape.Rows(profile, reshape.KeySoilLayers) {
			layers = append(layers, b.mapRecord(layer, keys.SoilLayer, tables.SoilLayerInput))
		}
		profile.Delete(reshape.KeySoilLayers)
		profiles = append(profiles, b.mapParent(profile, keys.SoilProfile, tables.SoilProfileInput, reshape.KeyAllLayers, layers))
	}

	cases := make([]*document.Map, 0)
	for _, lc := range reshape.Rows(p, reshape.KeyLoadCases) {
		var points []any
		for _, load := range reshape.Rows(lc, reshape.KeyLoads) {
			points = append(points, b.mapRecord(load, keys.HorizontalLoad, tables.HLoadPointInput))
		}
		lc.Delete(reshape.KeyLoads)
		cases = append(cases, b.mapParent(lc, keys.HorizontalLoadCase, tables.HLoadCaseInput, reshape.KeyLoadPoints, points))
	}

	for _, rep := range req.Reports {
		for _, s := range rep.Skipped {
			log.Warn("field not mapped", "table", rep.Table, "field", s.Field, "error", s.Err)
		}
	}

	req.Document = reshape.Nest(reshape.Request{
		ProjectInfo:       info,
		UserMail:          cfg.Engine.UserMail,
		UserKey:           cfg.Engine.UserKey,
		UserKeyHorizontal: cfg.Engine.UserKeyHorizontal,
		SoilProfiles:      profiles,
		Piles:             piles,
		LoadCases:         cases,
		UserInfo:          userInfo(party.User),
		CustomerInfo:      customerInfo(party.Company),
		Xmlns:             cfg.Wire.Xmlns,
		XmlnsI:            cfg.Wire.XmlnsI,
	})

	log.Info("request built",
		"piles", len(piles),
		"soil_profiles", len(profiles),
		"load_cases", len(cases),
		"skipped", req.Skipped(),
	)
	return req, nil
}

// builder maps records and collects the copy reports of a request.
type builder struct {
	req *Request
}

func (b *builder) mapRecord(rec *document.Map, dict string, table *core.MappingTable) *document.Map {
	wire := keys.RenameMap(rec, keys.MustGet(dict), keys.ToWire)
	return b.mapWire(wire, table)
}

func (b *builder) mapWire(wire *document.Map, table *core.MappingTable) *document.Map {
	out, report := core.MapBestEffort(wire, table)
	if !report.OK() {
		b.req.Reports = append(b.req.Reports, report)
	}
	return out
}

// mapPile maps a pile; the pile type may be given as code or symbol.
func (b *builder) mapPile(pile *document.Map) *document.Map {
	wire := keys.RenameMap(pile, keys.MustGet(keys.Pile), keys.ToWire)
	if code, ok := tables.CanonicalPileType(wire.Value(wirePileType)); ok {
		wire.Set(wirePileType, code)
	}
	return b.mapWire(wire, tables.LoadPointInput)
}

// mapParent maps a record whose child rows were mapped separately and
// attaches them under childKey.
func (b *builder) mapParent(rec *document.Map, dict string, table *core.MappingTable, childKey string, children []any) *document.Map {
	wire := keys.RenameMap(rec, keys.MustGet(dict), keys.ToWire)
	if children == nil {
		children = []any{}
	}
	wire.Set(childKey, children)
	return b.mapWire(wire, table)
}

// useCompanyInfo overwrites the alternative company settings with the
// customer record. The logo is addressed relative to imageDir.
func useCompanyInfo(settings, company *document.Map, imageDir string) {
	if company == nil {
		return
	}
	for _, f := range companyAlt {
		settings.Set(f.setting, company.Value(f.company))
	}
	logo := core.ToString(company.Value("logo"))
	if logo != "" {
		logo = imageDir + logo
	}
	settings.Set(KeyCompanyAltLogo, logo)
}

func userInfo(user *document.Map) *document.Map {
	if user == nil {
		return nil
	}
	d := keys.MustGet(keys.UserInfo)
	return keys.Sort(keys.RenameMap(user, d, keys.ToWire), d.Targets(), false)
}

func customerInfo(company *document.Map) *document.Map {
	if company == nil {
		return nil
	}
	d := keys.MustGet(keys.CustomerInfo)
	out := keys.Sort(keys.RenameMap(company, d, keys.ToWire), d.Targets(), false)
	out.Set(KeyInvoiceStyle, company.Value(reshape.KeyName))
	return out
}
