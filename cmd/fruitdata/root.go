package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var fileFlag string
	var configFlag string
	var logLevelFlag string

	ctx := newCommandContext(&fileFlag, &configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "fruitdata",
		Short:         "Manage a catalogue of fruits and their dimensions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Path to the fruit catalogue JSON file")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Diagnostic log level (debug, info, warn, error)")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newGetCommand(ctx))
	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newRemoveCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
