package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line options.
type cliFlags struct {
	format       string
	settingsPath string
	outDir       string
	workers      int
	metadataOnly bool
	verbose      bool
}

// parseFlags parses args (including the program name) and returns the flags
// plus the positional source file arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("pelican-read", flag.ContinueOnError)
	fs.StringVar(&flags.format, "format", "", "explicit format override (a file extension, e.g. rst)")
	fs.StringVar(&flags.settingsPath, "settings", "", "path to a YAML settings file")
	fs.StringVar(&flags.outDir, "out-dir", "", "directory for rendered output (default: next to each source)")
	fs.IntVar(&flags.workers, "workers", 0, "number of parallel workers (default: one per CPU, capped)")
	fs.BoolVar(&flags.metadataOnly, "metadata-only", false, "emit metadata without writing rendered content")
	fs.BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}
