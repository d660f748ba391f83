package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartal/portfolio/internal/datacheck"
	"github.com/bartal/portfolio/internal/storage/filestore"
)

var errInvalidData = errors.New("data documents failed validation")

func NewValidateCmd() *cobra.Command {
	var opt filestore.Options

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the projects and companies documents",
		Long: `Validate reads both data documents and reports missing or duplicate ids,
missing required fields and unknown categories or header colors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := filestore.New(opt)
			st := datacheck.NewChecker(store).Run(cmd.Context())

			out := cmd.OutOrStdout()
			switch st.State {
			case datacheck.StateError:
				return fmt.Errorf("read data: %s", st.Error)
			case datacheck.StateInvalid:
				for _, is := range st.Issues {
					fmt.Fprintln(out, is.String())
				}
				return fmt.Errorf("%w: %d issue(s)", errInvalidData, len(st.Issues))
			}

			fmt.Fprintf(out, "ok: %d projects (%s), %d companies (%s)\n",
				st.Projects, store.ProjectsPath(), st.Companies, store.CompaniesPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&opt.Dir, "data-dir", envOr("DATA_DIR", "./data"), "directory holding the data documents")
	cmd.Flags().StringVar(&opt.ProjectsFile, "projects", envOr("PROJECTS_FILE", "projects.json"), "projects document")
	cmd.Flags().StringVar(&opt.CompaniesFile, "companies", envOr("COMPANIES_FILE", "companies.json"), "companies document")

	return cmd
}
