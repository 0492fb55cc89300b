// Package sheet reads and writes the project spreadsheet.
//
// Workbook layout:
//
//	sheet 1              piles
//	<Profile>            soil layers of a profile
//	<Profile>-Info       ground water level and start elevation
//	...                  one pair per profile, up to the last -Info sheet
//	<LoadCase>           horizontal loads, one sheet per load case
package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/document"
	"github.com/JonMunkholm/pilexchange/internal/keys"
	"github.com/JonMunkholm/pilexchange/internal/reshape"
	"github.com/JonMunkholm/pilexchange/internal/schema"
)

// Import reads a workbook into a project document.
func Import(r io.Reader) (*document.Map, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read converts an open workbook into a project document with piles,
// soil_profiles and horizontal_loadcases. Every cell that does not parse
// as its column type is reported in one core.ValidationErrors.
func Read(f *excelize.File) (*document.Map, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("open spreadsheet: workbook has no sheets")
	}

	var invalid core.ValidationErrors
	read := func(sheet string, layout *schema.Layout) ([]any, error) {
		rows, errs, err := readRows(f, sheet, layout)
		invalid = append(invalid, errs...)
		return rows, err
	}

	piles, err := read(sheets[0], schema.Piles)
	if err != nil {
		return nil, err
	}

	boundary := infoBoundary(sheets)
	if boundary%2 != 0 {
		return nil, reshape.Structural(sheets[boundary], "sheet layout: soil sheets must come in pairs after the pile sheet")
	}

	profiles := []any{}
	for i := 1; i < boundary; i += 2 {
		name, info := sheets[i], sheets[i+1]
		if info != name+schema.InfoSuffix {
			return nil, reshape.Structural(info, "sheet boundary: expected %q after %q", name+schema.InfoSuffix, name)
		}

		layers, err := read(name, schema.SoilLayers)
		if err != nil {
			return nil, err
		}
		reshape.Reindex(layers)

		profile := document.MapOf(
			reshape.KeyName, name,
			"pfahlTyp", schema.ImportedPileType,
			"grundwasserStand", nil,
			"startKote", nil,
		)
		infoRows, err := read(info, schema.SoilInfo)
		if err != nil {
			return nil, err
		}
		if len(infoRows) > 0 {
			first := infoRows[0].(*document.Map)
			for _, k := range schema.SoilInfo.Keys() {
				profile.Set(k, first.Value(k))
			}
		}
		profile.Set(reshape.KeySoilLayers, layers)
		profiles = append(profiles, profile)
	}

	cases := []any{}
	for _, name := range sheets[boundary+1:] {
		loads, err := read(name, schema.Loads)
		if err != nil {
			return nil, err
		}
		reshape.Reindex(loads)
		cases = append(cases, document.MapOf(reshape.KeyName, name, reshape.KeyLoads, loads))
	}

	if len(invalid) > 0 {
		return nil, invalid
	}

	reshape.Reindex(piles)
	reshape.Reindex(profiles)
	reshape.Reindex(cases)
	return document.MapOf(
		reshape.KeyPiles, piles,
		reshape.KeySoilProfiles, profiles,
		reshape.KeyLoadCases, cases,
	), nil
}

// infoBoundary returns the index of the last "-Info" sheet, or 0 when the
// workbook has none.
func infoBoundary(sheets []string) int {
	for i := len(sheets) - 1; i > 0; i-- {
		if strings.HasSuffix(sheets[i], schema.InfoSuffix) {
			return i
		}
	}
	return 0
}

// readRows returns the data rows of a sheet as project records in sheet
// order. Unknown columns are ignored. Rows with an empty marker cell are
// dropped, as is everything when the sheet has no marker column.
func readRows(f *excelize.File, sheet string, layout *schema.Layout) ([]any, core.ValidationErrors, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	out := []any{}
	if len(rows) == 0 {
		return out, nil, nil
	}

	header := make([]string, len(rows[0]))
	marker := -1
	for j, h := range rows[0] {
		header[j] = strings.TrimSpace(h)
		if header[j] == layout.Marker {
			marker = j
		}
	}
	if marker < 0 {
		return out, nil, nil
	}

	var invalid core.ValidationErrors
	for i, row := range rows[1:] {
		if marker >= len(row) || core.CleanCell(row[marker]) == "" {
			continue
		}

		raw := document.NewMap()
		for j, h := range header {
			if h == "" || raw.Has(h) {
				continue
			}
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			raw.Set(h, cell)
		}

		record := keys.Filter(raw, layout.Headers()).(*document.Map)
		record = keys.Sort(record, layout.Headers(), false)
		for _, c := range layout.Columns {
			v, err := core.ParseCell(core.ToString(record.Value(c.Header)), c.Type)
			if err != nil {
				ref, _ := excelize.CoordinatesToCellName(columnOf(header, c.Header)+1, i+2)
				invalid = append(invalid, core.ValidationError{
					Field:   fmt.Sprintf("%s!%s (%s)", sheet, ref, c.Header),
					Value:   core.ToString(record.Value(c.Header)),
					Message: err.Error(),
				})
				continue
			}
			record.Set(c.Header, v)
		}
		out = append(out, keys.RenameMap(record, layout.Dictionary(), keys.ToModel))
	}
	return out, invalid, nil
}

func columnOf(header []string, name string) int {
	for j, h := range header {
		if h == name {
			return j
		}
	}
	return 0
}
