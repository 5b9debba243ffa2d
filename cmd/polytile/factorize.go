package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	polytile "github.com/alexpetrov/polytile"
)

func newFactorizeCmd(logger *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "factorize <boundary-word>",
		Short: "Find the first matching boundary criterion for a boundary word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boundary := args[0]
			logger.Debug().Str("boundary", boundary).Msg("factorizing")

			result, found, err := polytile.Factorize(boundary)
			if err != nil {
				return fmt.Errorf("factorize: %w", err)
			}
			if !found {
				cmd.Println("no factorization")
				return nil
			}

			cmd.Printf("kind: %s\n", result.BW.Kind)
			for i, f := range result.BW.Factorization.Factors {
				cmd.Printf("  factor %d: start=%d finish=%d content=%s\n", i, f.Start, f.Finish, f.Content)
			}
			cmd.Printf("transforms: %d\n", len(result.Transforms))
			return nil
		},
	}
}
