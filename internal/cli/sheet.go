package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/pilexchange/internal/config"
	"github.com/JonMunkholm/pilexchange/internal/logging"
	"github.com/JonMunkholm/pilexchange/internal/reshape"
	"github.com/JonMunkholm/pilexchange/internal/sheet"
)

func newSheetCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Exchange projects with xlsx workbooks",
	}
	cmd.AddCommand(newSheetExportCommand(cfg), newSheetImportCommand())
	return cmd
}

func newSheetExportCommand(cfg *config.Config) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export PROJECT",
		Short: "Write a project to a workbook",
		Long: `Write the piles, soil profiles and horizontal load cases of a project to
an xlsx workbook. Numeric columns use the number format PILEX_SHEET_NUMBER_FORMAT.`,
		Example: `  pilexchange sheet export project.json -o project.xlsx`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			err = writeOutput(cmd, output, func(w io.Writer) error {
				return sheet.Write(project, w, sheet.WithNumberFormat(cfg.Sheet.NumberFormat))
			})
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Info("workbook written",
				"piles", len(reshape.Rows(project, reshape.KeyPiles)),
				"soil_profiles", len(reshape.Rows(project, reshape.KeySoilProfiles)),
			)
			return nil
		},
	}

	addOutputFlag(cmd.Flags(), &output)
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newSheetImportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "import WORKBOOK",
		Short: "Read a project from a workbook",
		Long: `Read piles, soil profiles and horizontal load cases from an xlsx workbook
into a project JSON document. Rows without the row marker are ignored. All
invalid cells of the workbook are reported together.`,
		Example: `  pilexchange sheet import project.xlsx -o project.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			project, err := sheet.Import(r)
			if err != nil {
				return err
			}
			return writeJSON(cmd, output, project)
		},
	}

	addOutputFlag(cmd.Flags(), &output)
	return cmd
}
