package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/pilexchange/internal/core"
)

func newTablesCommand() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "tables [TABLE]",
		Short: "List the mapping tables",
		Long: `Without arguments, list the registered mapping tables, optionally only
those of one group. With a table key, list its fields in wire order.`,
		Example: `  pilexchange tables
  pilexchange tables --group output
  pilexchange tables soil_layer_input`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)

			if len(args) == 0 {
				tables := core.All()
				if group != "" {
					if groups := core.Groups(); !slices.Contains(groups, group) {
						return fmt.Errorf("unknown group %q (known: %s)", group, strings.Join(groups, ", "))
					}
					tables = core.ByGroup(group)
				}
				t.AppendHeader(table.Row{"Key", "Group", "Label", "Fields"})
				for _, mt := range tables {
					t.AppendRow(table.Row{mt.Info.Key, mt.Info.Group, mt.Info.Label, mt.Len()})
				}
				t.Render()
				return nil
			}

			mt, ok := core.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown table %q", args[0])
			}
			t.SetTitle("%s (%s)", mt.Info.Label, mt.Info.Key)
			t.AppendHeader(table.Row{"Field", "Model", "Wire", "Fallback", "Transform"})
			for _, r := range mt.Rules() {
				fallback := "required"
				if r.HasFallback() {
					fallback = core.ToString(r.Fallback)
				}
				t.AppendRow(table.Row{r.Field, r.Model, r.Wire, fallback, describeTransform(r.Transform)})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "only list tables of this group (input or output)")
	return cmd
}

func describeTransform(spec core.TransformSpec) string {
	switch s := spec.(type) {
	case nil:
		return "none"
	case core.EnumMap:
		return "enum: " + strings.Join(s.WireValues(), ", ")
	default:
		return fmt.Sprint(s)
	}
}
