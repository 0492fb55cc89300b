// Package cli implements the pilexchange command tree.
//
// Converted documents go to stdout or the --output file. Logs and field
// reports go to stderr.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/pilexchange/internal/config"
	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/logging"
	"github.com/JonMunkholm/pilexchange/internal/pipeline"
)

// NewRootCmd builds the command tree for cfg.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "pilexchange",
		Short: "Convert pile foundation projects for the DHPD calculation engine",
		Long: `pilexchange converts pile foundation projects between the project JSON
model, the DHPD XML exchange format and xlsx workbooks.

A project is turned into a calculation request with "request"; the engine
response is read back with "results".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			ctx := logging.WithOperation(cmd.Context())
			cmd.SetContext(ctx)
			logging.FromContext(ctx).Debug("command started", "command", cmd.CommandPath())
		},
	}

	root.AddCommand(
		newRequestCommand(cfg),
		newImportWireCommand(),
		newResultsCommand(),
		newClearResultsCommand(),
		newSheetCommand(cfg),
		newTablesCommand(),
	)
	return root
}

// Execute runs the command tree with args and returns the exit code.
func Execute(ctx context.Context, cfg *config.Config, args []string) int {
	root := NewRootCmd(cfg)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		ue := core.NewUserError(err)
		logging.FromContext(ctx).Debug("command failed", "code", ue.User.Code, "error", ue.Technical)
		fmt.Fprintln(root.ErrOrStderr(), "Error:", describe(err))
		return 1
	}
	return 0
}

// describe renders err for the terminal: the support message and code when
// the error is known, followed by the technical detail.
func describe(err error) string {
	var ce *pipeline.CalculationError
	if errors.As(err, &ce) && len(ce.Messages) > 1 {
		msg := core.FormatUserError(err)
		for _, m := range ce.Messages {
			msg += "\n  - " + m
		}
		return msg
	}
	if !core.IsUserFacing(err) {
		return err.Error()
	}
	return fmt.Sprintf("%s\n  %v", core.FormatUserError(err), err)
}
