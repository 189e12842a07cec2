// Package main provides the entry point for the thronedex CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/thronedex/internal/app"
)

var version = "0.1.0-dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	apiURL     string
	verbose    bool
}

func (g globalFlags) options() app.Options {
	return app.Options{
		ConfigPath: g.configPath,
		APIURL:     g.apiURL,
		Verbose:    g.verbose,
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "thronedex: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "thronedex",
		Short:         "Browse Game of Thrones characters from thronesapi.com",
		Long:          "Launches a terminal card browser over the thronesapi.com character list. Use list or export for one-shot output.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), flags.options())
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file path (default ~/.config/thronedex/config.toml)")
	root.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "override the API base URL")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging to the log file")

	root.AddCommand(
		newListCmd(&flags),
		newExportCmd(&flags),
	)
	return root
}

// filterFlags binds the view-state flags shared by list and export.
func filterFlags(cmd *cobra.Command, f *app.Filters) {
	cmd.Flags().StringVarP(&f.Query, "query", "q", "", "case-insensitive name filter")
	cmd.Flags().StringVarP(&f.Family, "family", "f", "", "only show this family (default All)")
	cmd.Flags().BoolVar(&f.Descending, "desc", false, "sort names Z to A")
}
