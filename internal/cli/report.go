package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/pipeline"
	"github.com/JonMunkholm/pilexchange/internal/units"
)

// renderSkipped prints one row per field that was copied unconverted.
// Nothing is printed when every field converted.
func renderSkipped(w io.Writer, reports []core.CopyReport, unscaled []*units.ConversionError) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Table", "Field", "Value", "Code", "Problem"})

	n := 0
	for _, rep := range reports {
		for _, s := range rep.Skipped {
			msg := core.MapError(s.Err)
			t.AppendRow(table.Row{rep.Table, s.Field, core.ToString(s.Value), msg.Code, msg.Message})
			n++
		}
	}
	for _, u := range unscaled {
		msg := core.MapError(u)
		t.AppendRow(table.Row{"units", u.Path, core.ToString(u.Value), msg.Code, msg.Message})
		n++
	}
	if n == 0 {
		return
	}

	t.SetTitle("%d fields copied unconverted", n)
	t.Render()
}

// renderApplied prints the applied counts, the entries that were not
// applied and the result fields stored unconverted.
func renderApplied(w io.Writer, a *pipeline.Applied) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Piles", "Soil layers", "Horizontal loads", "Unmatched"})
	t.AppendRow(table.Row{a.Piles, a.Layers, a.Loads, len(a.Unmatched)})
	t.Render()

	for _, u := range a.Unmatched {
		io.WriteString(w, "not applied: "+u+"\n")
	}
	renderSkipped(w, a.Reports, nil)
}
