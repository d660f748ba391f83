package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/bartal/portfolio/internal/apiclient"
	"github.com/bartal/portfolio/internal/ui/catalog"
)

func NewCatalogCmd() *cobra.Command {
	var (
		apiURL   string
		category string
		width    int
		retries  uint
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Preview the featured project grid from a running API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := apiclient.New(apiURL, apiclient.WithTimeout(timeout), apiclient.WithRetries(retries))
			projects, err := client.FetchProjects(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch projects: %w", err)
			}

			all := catalog.Derive(projects, catalog.AllProjects)
			filter, err := catalog.Select(catalog.AllProjects, category, all.Counts)
			if err != nil {
				return err
			}
			filter = catalog.ResetForWidth(width, filter)

			return renderCatalog(cmd.OutOrStdout(), catalog.Derive(projects, filter))
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", envOr("PORTFOLIO_API_URL", "http://localhost:5001"), "base URL of the portfolio API")
	cmd.Flags().StringVar(&category, "category", string(catalog.AllProjects), "filter key: web, mobile, complex-systems or \"All Projects\"")
	cmd.Flags().IntVar(&width, "width", catalog.DesktopWidth, "viewport width used for the responsive reset")
	cmd.Flags().UintVar(&retries, "retries", 0, "retries for transient API failures")
	cmd.Flags().DurationVar(&timeout, "timeout", apiclient.DefaultTimeout, "request timeout")

	return cmd
}

func renderCatalog(w io.Writer, v catalog.View) error {
	counts := make([]string, 0, len(v.Counts))
	for _, c := range v.Counts {
		counts = append(counts, fmt.Sprintf("%s=%d", c.Filter.Label(), c.N))
	}
	fmt.Fprintf(w, "%s\n%s\n\n", v.Summary(), strings.Join(counts, "  "))

	if v.Empty() {
		fmt.Fprintln(w, v.EmptyMessage())
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("#", "ID", "Title", "Category", "Year", "Tools")
	for i, p := range v.Visible {
		if err := table.Append([]string{
			strconv.Itoa(i + 1),
			p.ID,
			p.Title,
			catalog.Filter(p.Category).Label(),
			p.Year,
			strings.Join(p.Tools, ", "),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
