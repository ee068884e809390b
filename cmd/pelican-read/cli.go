package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jedahu/pelican"
	"github.com/jedahu/pelican/internal/yamlutil"
)

// Worker pool bounds. Reading is CPU-bound in-process for Markdown and HTML
// but spawns subprocesses for the other formats, so the cap stays modest.
const (
	minWorkers = 1
	maxWorkers = 8
)

// run reads every source file through the dispatch entry point, writing
// rendered content and a metadata sidecar per file. Files are processed in
// parallel; each dispatch call is independently re-entrant.
func run(ctx context.Context, logger zerolog.Logger, flags *cliFlags, files []string) error {
	var settings pelican.Settings
	if flags.settingsPath != "" {
		loaded, err := pelican.LoadSettings(flags.settingsPath)
		if err != nil {
			return err
		}
		settings = loaded
	}

	workers := resolveWorkers(flags.workers)
	logger.Debug().Int("workers", workers).Int("files", len(files)).Msg("starting batch")

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	var mu sync.Mutex
	var failed []string

	for _, path := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := processFile(ctx, flags, settings, path); err != nil {
				logger.Error().Err(err).Str("path", path).Msg("skipping file")
				mu.Lock()
				failed = append(failed, path)
				mu.Unlock()
				return
			}
			logger.Info().Str("path", path).Msg("read")
		}(path)
	}
	wg.Wait()

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed: %s", len(failed), len(files), strings.Join(failed, ", "))
	}
	return nil
}

// processFile dispatches one source file and writes its outputs.
func processFile(ctx context.Context, flags *cliFlags, settings pelican.Settings, path string) error {
	content, metadata, err := pelican.ReadFile(ctx, path, flags.format, settings)
	if err != nil {
		return err
	}

	metaOut, err := yamlutil.Marshal(metadata)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPathFor(path, flags.outDir, ".meta.yaml"), metaOut, 0o644); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}

	if flags.metadataOnly {
		return nil
	}
	if err := os.WriteFile(outputPathFor(path, flags.outDir, ".html"), []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing content: %w", err)
	}
	return nil
}

// outputPathFor derives an output path from a source path by swapping the
// extension, optionally redirecting into outDir.
func outputPathFor(path, outDir, suffix string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	return filepath.Join(outDir, base+suffix)
}

// resolveWorkers clamps the requested worker count, defaulting to one per
// CPU within bounds.
func resolveWorkers(requested int) int {
	if requested <= 0 {
		requested = runtime.NumCPU()
	}
	if requested < minWorkers {
		return minWorkers
	}
	if requested > maxWorkers {
		return maxWorkers
	}
	return requested
}
