package sheet

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/document"
	"github.com/JonMunkholm/pilexchange/internal/keys"
	"github.com/JonMunkholm/pilexchange/internal/reshape"
	"github.com/JonMunkholm/pilexchange/internal/schema"
)

// DefaultNumberFormat is the built-in excel number format "0.00".
const DefaultNumberFormat = 2

// Option configures Export.
type Option func(*options)

type options struct {
	numFmt int
}

// WithNumberFormat sets the built-in number format id of numeric columns.
func WithNumberFormat(id int) Option {
	return func(o *options) { o.numFmt = id }
}

// Export writes a project document to a new workbook. Rows are written in
// row_index order; an empty group gets one blank placeholder row under its
// header. The caller closes the returned file.
func Export(project *document.Map, opts ...Option) (*excelize.File, error) {
	o := options{numFmt: DefaultNumberFormat}
	for _, opt := range opts {
		opt(&o)
	}

	p, err := reshape.Normalize(project)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	w := &writer{file: f}
	if err := f.SetSheetName(f.GetSheetName(0), schema.PileSheetName); err != nil {
		f.Close()
		return nil, err
	}
	w.style, err = f.NewStyle(&excelize.Style{NumFmt: o.numFmt})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := w.sheet(schema.PileSheetName, schema.Piles, reshape.Rows(p, reshape.KeyPiles), true); err != nil {
		f.Close()
		return nil, err
	}
	for _, profile := range reshape.Rows(p, reshape.KeySoilProfiles) {
		name := core.ToString(profile.Value(reshape.KeyName))
		if err := w.sheet(name, schema.SoilLayers, reshape.Rows(profile, reshape.KeySoilLayers), false); err != nil {
			f.Close()
			return nil, err
		}
		if err := w.sheet(name+schema.InfoSuffix, schema.SoilInfo, []*document.Map{profile}, false); err != nil {
			f.Close()
			return nil, err
		}
	}
	for _, lc := range reshape.Rows(p, reshape.KeyLoadCases) {
		name := core.ToString(lc.Value(reshape.KeyName))
		if err := w.sheet(name, schema.Loads, reshape.Rows(lc, reshape.KeyLoads), false); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// Write exports a project document and writes the workbook to dst.
func Write(project *document.Map, dst io.Writer, opts ...Option) error {
	f, err := Export(project, opts...)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(dst); err != nil {
		return fmt.Errorf("write spreadsheet: %w", err)
	}
	return nil
}

type writer struct {
	file  *excelize.File
	style int
}

func (w *writer) sheet(name string, layout *schema.Layout, rows []*document.Map, exists bool) error {
	if !exists {
		if idx, _ := w.file.GetSheetIndex(name); idx >= 0 {
			return reshape.Structural(name, "sheet layout: duplicate sheet name")
		}
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}

	headers := layout.Headers()
	if err := w.file.SetSheetRow(name, "A1", &headers); err != nil {
		return err
	}

	if len(rows) == 0 {
		rows = []*document.Map{document.NewMap()}
	}
	for i, row := range rows {
		record := keys.Filter(row, layout.Keys()).(*document.Map)
		record = keys.Sort(keys.RenameMap(record, layout.Dictionary(), keys.ToWire), headers, false)

		values := make([]any, 0, record.Len())
		record.Range(func(_ string, v any) bool {
			values = append(values, v)
			return true
		})
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := w.file.SetSheetRow(name, cell, &values); err != nil {
			return err
		}
	}

	last := strconv.Itoa(len(rows) + 1)
	for j, c := range layout.Columns {
		if c.Type != core.TypeFloat {
			continue
		}
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		if err := w.file.SetCellStyle(name, col+"2", col+last, w.style); err != nil {
			return err
		}
	}
	return nil
}
