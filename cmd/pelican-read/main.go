package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, files, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if flags.verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS env
	// value, in which case the runtime default applies.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug().Msgf(format, args...)
	}))

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: pelican-read [flags] <file>...")
		os.Exit(1)
	}

	if err := run(context.Background(), logger, flags, files); err != nil {
		logger.Error().Err(err).Msg("read failed")
		os.Exit(1)
	}
}
