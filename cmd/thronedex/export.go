package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/five82/thronedex/internal/app"
	"github.com/five82/thronedex/internal/config"
)

func newExportCmd(flags *globalFlags) *cobra.Command {
	var (
		opts    app.ExportOptions
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export character cards as HTML",
		Long:  "Fetches the character list once and writes an HTML page with the family options and one card per matching character.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" || outPath == "-" {
				return app.Export(cmd.Context(), flags.options(), opts, cmd.OutOrStdout())
			}
			return exportToFile(cmd, flags, opts, outPath)
		},
	}

	filterFlags(cmd, &opts.Filters)
	cmd.Flags().StringVar(&outPath, "out", "", "write to this file instead of stdout")
	cmd.Flags().StringVar(&opts.Title, "title", "", "page title")

	return cmd
}

func exportToFile(cmd *cobra.Command, flags *globalFlags, opts app.ExportOptions, outPath string) (err error) {
	path, err := config.ExpandPath(outPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if err := app.Export(cmd.Context(), flags.options(), opts, f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
	return nil
}
