package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/thronedex/internal/app"
)

func newListCmd(flags *globalFlags) *cobra.Command {
	var opts app.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List characters",
		Long:  "Fetches the character list once and prints the filtered, sorted view as a table, JSON or YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.List(cmd.Context(), flags.options(), opts, cmd.OutOrStdout())
		},
	}

	filterFlags(cmd, &opts.Filters)
	cmd.Flags().StringVarP(&opts.Format, "format", "o", "table", "output format: table, json or yaml")
	cmd.Flags().BoolVar(&opts.Families, "families", false, "print the family list above the table")

	return cmd
}
