package cli

import (
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/pilexchange/internal/pipeline"
)

func newResultsCommand() *cobra.Command {
	var projectPath, output string

	cmd := &cobra.Command{
		Use:   "results RESPONSE",
		Short: "Process a calculation response",
		Long: `Process a DHPD OutputDaten response.

Without --project the processed results are written as JSON. With --project
the results are copied into that project and the updated project is written.
Engine errors in the response fail the command and nothing is applied.`,
		Example: `  pilexchange results response.xml
  pilexchange results response.xml --project project.json -o project.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := pipeline.ProcessResults(cmd.Context(), response)
			if err != nil {
				return err
			}
			renderSkipped(cmd.ErrOrStderr(), nil, result.Skipped)

			if projectPath == "" {
				return writeJSON(cmd, output, result.Output)
			}

			project, err := readDocument(cmd, projectPath)
			if err != nil {
				return err
			}
			updated, applied, err := pipeline.ApplyResults(cmd.Context(), project, result)
			if err != nil {
				return err
			}
			renderApplied(cmd.ErrOrStderr(), applied)

			return writeJSON(cmd, output, updated)
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "project JSON file to copy the results into")
	addOutputFlag(cmd.Flags(), &output)
	return cmd
}

func newClearResultsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "clear-results PROJECT",
		Short:   "Remove calculation results from a project",
		Example: `  pilexchange clear-results project.json -o project.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			cleared, err := pipeline.ClearResults(project)
			if err != nil {
				return err
			}
			return writeJSON(cmd, output, cleared)
		},
	}

	addOutputFlag(cmd.Flags(), &output)
	return cmd
}
