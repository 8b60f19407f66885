package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all fruits in the catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, _, err := ctx.loadCatalogue(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No fruits in the catalogue.")
				return nil
			}

			if useTable(out) {
				headers := []string{"Name", "Length", "Width", "Height", "Volume"}
				rows := make([][]string, 0, len(records))
				for _, r := range records {
					rows = append(rows, []string{
						r.Name,
						formatNumber(r.Length),
						formatNumber(r.Width),
						formatNumber(r.Height),
						formatNumber(r.Volume()),
					})
				}
				aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
				return nil
			}

			for _, r := range records {
				fmt.Fprintf(out, "%s\t%s x %s x %s\tvolume %s\n",
					r.Name,
					formatNumber(r.Length),
					formatNumber(r.Width),
					formatNumber(r.Height),
					formatNumber(r.Volume()))
			}
			return nil
		},
	}
}
