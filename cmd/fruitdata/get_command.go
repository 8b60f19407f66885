package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fruitdata/internal/catalog"
)

func newGetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show details for one fruit (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, _, err := ctx.loadCatalogue(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			record, found := catalog.Find(records, args[0])
			if !found {
				return catalog.Wrap(catalog.ErrNotFound, "get",
					fmt.Sprintf("fruit %q not found", args[0]), nil)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", record.Name)
			fmt.Fprintf(out, "Dimensions: %s x %s x %s\n",
				formatNumber(record.Length),
				formatNumber(record.Width),
				formatNumber(record.Height))
			fmt.Fprintf(out, "Volume: %s\n", formatNumber(record.Volume()))
			return nil
		},
	}
}
