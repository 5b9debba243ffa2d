// Command polytile is a CLI front end over the boundary-word factorization
// engine and tiling generator.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Fatal().Err(err).Msg("polytile: command failed")
	}
}
