package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fruitdata/internal/catalog"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <length> <width> <height>",
		Short: "Add a fruit to the catalogue",
		Long: `Add appends a new fruit record and saves the catalogue.

The name must not be empty and must not match an existing fruit
(comparison ignores case); all three dimensions must be positive numbers.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			dims := make([]float64, 3)
			for i, label := range []string{"length", "width", "height"} {
				value, err := strconv.ParseFloat(args[i+1], 64)
				if err != nil {
					return catalog.Wrap(catalog.ErrValidation, "add",
						fmt.Sprintf("%s must be a number (got %q)", label, args[i+1]), nil)
				}
				dims[i] = value
			}

			records, store, err := ctx.loadCatalogue(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			updated, added, err := catalog.Add(records, args[0], dims[0], dims[1], dims[2])
			if err != nil {
				return err
			}

			if err := store.Save(updated); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s x %s x %s, volume %s).\n",
				added.Name,
				formatNumber(added.Length),
				formatNumber(added.Width),
				formatNumber(added.Height),
				formatNumber(added.Volume()))
			return nil
		},
	}

	// Stop flag parsing at the first positional so negative dimensions
	// like -2 reach validation instead of being read as flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
