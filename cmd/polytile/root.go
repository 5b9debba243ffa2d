package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd(logger zerolog.Logger) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "polytile",
		Short: "Decide whether a polyomino tiles the plane, and build its tiling",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = logger.Level(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newFactorizeCmd(&logger))
	root.AddCommand(newTileCmd(&logger))
	return root
}
