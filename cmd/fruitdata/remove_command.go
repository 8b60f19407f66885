package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fruitdata/internal/catalog"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a fruit from the catalogue (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, store, err := ctx.loadCatalogue(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			updated, removed, err := catalog.Remove(records, args[0])
			if err != nil {
				return err
			}

			if err := store.Save(updated); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q.\n", removed.Name)
			return nil
		},
	}
}
