package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	polytile "github.com/alexpetrov/polytile"
	"github.com/alexpetrov/polytile/tiling"
)

func newTileCmd(logger *zerolog.Logger) *cobra.Command {
	var windowX, windowY, maxDepth int

	cmd := &cobra.Command{
		Use:   "tile <boundary-word>",
		Short: "Generate the isohedral tiling around a polyomino's boundary word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boundary := args[0]
			logger.Debug().Str("boundary", boundary).Int("windowX", windowX).Int("windowY", windowY).Msg("tiling")

			var opts []tiling.Option
			if maxDepth > 0 {
				opts = append(opts, tiling.WithMaxDepth(maxDepth))
			} else {
				opts = append(opts, tiling.WithWindow(windowX, windowY))
			}

			result, err := polytile.Tile(boundary, opts...)
			if err != nil {
				return fmt.Errorf("tile: %w", err)
			}

			for _, entry := range result.Polygons {
				cmd.Printf("depth=%d polygon=%v\n", entry.Depth, entry.Polygon)
			}
			logger.Info().Int("count", len(result.Polygons)).Msg("tiling generated")
			return nil
		},
	}

	cmd.Flags().IntVar(&windowX, "window-x", 16, "horizontal window extent (full width, centered on the origin)")
	cmd.Flags().IntVar(&windowY, "window-y", 16, "vertical window extent (full height, centered on the origin)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "bound expansion by BFS depth instead of window (diagnostic)")

	return cmd
}
