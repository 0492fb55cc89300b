package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/pilexchange/internal/config"
	"github.com/JonMunkholm/pilexchange/internal/document"
	"github.com/JonMunkholm/pilexchange/internal/pipeline"
)

func newRequestCommand(cfg *config.Config) *cobra.Command {
	var (
		userPath    string
		companyPath string
		output      string
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "request PROJECT",
		Short: "Build a calculation request from a project",
		Long: `Build a DHPD InputDaten request from a project JSON document.

Fields that cannot be converted are sent unchanged and listed on stderr;
--strict turns them into an error. The engine credentials are read from
PILEX_ENGINE_USER_MAIL and PILEX_ENGINE_USER_KEY.`,
		Example: `  pilexchange request project.json -o request.xml
  pilexchange request project.json --user user.json --company company.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Engine.RequireEngine(); err != nil {
				return err
			}

			project, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			var party pipeline.Party
			if userPath != "" {
				if party.User, err = readDocument(cmd, userPath); err != nil {
					return err
				}
			}
			if companyPath != "" {
				if party.Company, err = readDocument(cmd, companyPath); err != nil {
					return err
				}
			}

			req, err := pipeline.BuildRequest(cmd.Context(), project, party, cfg)
			if err != nil {
				return err
			}
			renderSkipped(cmd.ErrOrStderr(), req.Reports, req.Unscaled)
			if strict && req.Skipped() > 0 {
				return fmt.Errorf("%d fields could not be converted: %w", req.Skipped(), requestErr(req))
			}

			return writeOutput(cmd, output, func(w io.Writer) error {
				return document.EncodeXML(w, req.Document, true)
			})
		},
	}

	cmd.Flags().StringVar(&userPath, "user", "", "JSON file with the user info")
	cmd.Flags().StringVar(&companyPath, "company", "", "JSON file with the company info")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a field cannot be converted")
	addOutputFlag(cmd.Flags(), &output)
	return cmd
}

func requestErr(req *pipeline.Request) error {
	var errs []error
	for _, rep := range req.Reports {
		errs = append(errs, rep.Err())
	}
	for _, u := range req.Unscaled {
		errs = append(errs, u)
	}
	return errors.Join(errs...)
}

func newImportWireCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "import-wire REQUEST",
		Short: "Read a project back from a calculation request",
		Long: `Convert a DHPD InputDaten document into a project JSON document.

The project name and company logo of the request are not imported.`,
		Example: `  pilexchange import-wire request.xml -o project.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			imp, err := pipeline.ImportWire(cmd.Context(), doc)
			if err != nil {
				return err
			}
			renderSkipped(cmd.ErrOrStderr(), imp.Reports, imp.Unscaled)

			return writeJSON(cmd, output, imp.Project)
		},
	}

	addOutputFlag(cmd.Flags(), &output)
	return cmd
}
