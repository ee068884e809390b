package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		flags, files, err := parseFlags([]string{"pelican-read", "a.md", "b.md"})
		if err != nil {
			t.Fatalf("parseFlags() unexpected error: %v", err)
		}
		if flags.format != "" || flags.workers != 0 || flags.metadataOnly {
			t.Errorf("flags = %+v, want zero values", flags)
		}
		if len(files) != 2 || files[0] != "a.md" || files[1] != "b.md" {
			t.Errorf("files = %v, want [a.md b.md]", files)
		}
	})

	t.Run("all options", func(t *testing.T) {
		t.Parallel()

		flags, files, err := parseFlags([]string{
			"pelican-read",
			"--format", "rst",
			"--settings", "conf.yaml",
			"--out-dir", "out",
			"--workers", "3",
			"--metadata-only",
			"--verbose",
			"post.rst",
		})
		if err != nil {
			t.Fatalf("parseFlags() unexpected error: %v", err)
		}
		if flags.format != "rst" {
			t.Errorf("format = %q, want %q", flags.format, "rst")
		}
		if flags.settingsPath != "conf.yaml" {
			t.Errorf("settingsPath = %q, want %q", flags.settingsPath, "conf.yaml")
		}
		if flags.outDir != "out" {
			t.Errorf("outDir = %q, want %q", flags.outDir, "out")
		}
		if flags.workers != 3 {
			t.Errorf("workers = %d, want 3", flags.workers)
		}
		if !flags.metadataOnly || !flags.verbose {
			t.Errorf("bool flags = %+v, want both set", flags)
		}
		if len(files) != 1 || files[0] != "post.rst" {
			t.Errorf("files = %v, want [post.rst]", files)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parseFlags([]string{"pelican-read", "--bogus"}); err == nil {
			t.Error("expected error for unknown flag")
		}
	})
}

func TestOutputPathFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		outDir string
		suffix string
		want   string
	}{
		{
			name:   "next to source",
			path:   filepath.Join("content", "post.md"),
			suffix: ".html",
			want:   filepath.Join("content", "post.html"),
		},
		{
			name:   "redirected into out dir",
			path:   filepath.Join("content", "post.md"),
			outDir: "out",
			suffix: ".meta.yaml",
			want:   filepath.Join("out", "post.meta.yaml"),
		},
		{
			name:   "no extension",
			path:   filepath.Join("content", "README"),
			suffix: ".html",
			want:   filepath.Join("content", "README.html"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := outputPathFor(tt.path, tt.outDir, tt.suffix); got != tt.want {
				t.Errorf("outputPathFor(%q, %q, %q) = %q, want %q", tt.path, tt.outDir, tt.suffix, got, tt.want)
			}
		})
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "explicit in range", requested: 3, want: 3},
		{name: "above cap clamps", requested: 100, want: maxWorkers},
		{name: "zero uses CPU count", requested: 0, want: clamp(runtime.NumCPU())},
		{name: "negative uses CPU count", requested: -1, want: clamp(runtime.NumCPU())},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveWorkers(tt.requested); got != tt.want {
				t.Errorf("resolveWorkers(%d) = %d, want %d", tt.requested, got, tt.want)
			}
		})
	}
}

func clamp(n int) int {
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("writes content and metadata sidecars", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "page.html")
		page := "<!--# title: Hello -->\n<p>Body</p>\n"
		if err := os.WriteFile(src, []byte(page), 0o644); err != nil {
			t.Fatal(err)
		}

		outDir := t.TempDir()
		flags := &cliFlags{outDir: outDir, workers: 2}

		if err := run(context.Background(), zerolog.Nop(), flags, []string{src}); err != nil {
			t.Fatalf("run() unexpected error: %v", err)
		}

		content, err := os.ReadFile(filepath.Join(outDir, "page.html"))
		if err != nil {
			t.Fatalf("reading content output: %v", err)
		}
		if !strings.Contains(string(content), "<p>Body</p>") {
			t.Errorf("content = %q, want it to contain %q", content, "<p>Body</p>")
		}

		meta, err := os.ReadFile(filepath.Join(outDir, "page.meta.yaml"))
		if err != nil {
			t.Fatalf("reading metadata output: %v", err)
		}
		if !strings.Contains(string(meta), "Hello") {
			t.Errorf("metadata = %q, want it to contain %q", meta, "Hello")
		}
	})

	t.Run("metadata only skips content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "page.htm")
		if err := os.WriteFile(src, []byte("<p>Body</p>"), 0o644); err != nil {
			t.Fatal(err)
		}

		outDir := t.TempDir()
		flags := &cliFlags{outDir: outDir, workers: 1, metadataOnly: true}

		if err := run(context.Background(), zerolog.Nop(), flags, []string{src}); err != nil {
			t.Fatalf("run() unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(outDir, "page.meta.yaml")); err != nil {
			t.Errorf("expected metadata sidecar: %v", err)
		}
		if _, err := os.Stat(filepath.Join(outDir, "page.html")); !os.IsNotExist(err) {
			t.Errorf("content output should not exist, stat err = %v", err)
		}
	})

	t.Run("failed files are reported", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		bad := filepath.Join(dir, "mystery.xyz")
		if err := os.WriteFile(bad, []byte("?"), 0o644); err != nil {
			t.Fatal(err)
		}

		flags := &cliFlags{outDir: t.TempDir(), workers: 1}
		err := run(context.Background(), zerolog.Nop(), flags, []string{bad})
		if err == nil {
			t.Fatal("expected error for unsupported file")
		}
		if !strings.Contains(err.Error(), "1 of 1 files failed") {
			t.Errorf("error = %q, want a failure count", err.Error())
		}
	})

	t.Run("missing settings file", func(t *testing.T) {
		t.Parallel()

		flags := &cliFlags{settingsPath: filepath.Join(t.TempDir(), "absent.yaml")}
		if err := run(context.Background(), zerolog.Nop(), flags, nil); err == nil {
			t.Error("expected error for missing settings file")
		}
	})
}
