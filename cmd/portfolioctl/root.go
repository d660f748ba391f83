package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for portfolioctl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolioctl",
		Short: "Maintenance tool for the portfolio site",
		Long: `portfolioctl checks the projects and companies documents served by the
portfolio API and previews the project catalog as the site would show it.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewCatalogCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
