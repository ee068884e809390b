package pelican

import (
	"context"
	"fmt"
	"strings"
)

// ReadFile resolves path to a reader through the default registry, invokes
// it, and returns rendered content plus coerced metadata. An empty format
// derives the format from the path's trailing extension. The settings
// context is passed through to the reader unchanged.
func ReadFile(ctx context.Context, path, format string, settings Settings) (string, Metadata, error) {
	return DefaultRegistry().ReadFile(ctx, path, format, settings)
}

// ReadFile dispatches path to the reader registered for format. See the
// package-level ReadFile.
func (r *Registry) ReadFile(ctx context.Context, path, format string, settings Settings) (string, Metadata, error) {
	if format == "" {
		format = trailingExtension(path)
	}

	entry, ok := r.lookup(format)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	reader := entry.descriptor.factory(settings)

	// Per-format engine extension override, e.g. MD_EXTENSIONS.
	if names := settings.StringList(strings.ToUpper(format) + "_EXTENSIONS"); names != nil {
		reader.SetEngineExtensions(names)
	}

	if !entry.enabled {
		return "", nil, fmt.Errorf("%w: %s", ErrMissingDependency, entry.descriptor.format)
	}

	content, metadata, err := reader.Read(ctx, path)
	if err != nil {
		return "", nil, err
	}

	if metadata == nil {
		metadata = Metadata{}
	}
	if _, ok := metadata["title"]; !ok {
		metadata["title"] = ""
	}

	if settings.Bool("TYPOGRIFY") {
		content = defaultTypographer.Filter(content)
		if title, ok := metadata["title"].(string); ok {
			metadata["title"] = defaultTypographer.Filter(title)
		}
	}

	return content, metadata, nil
}

// trailingExtension returns the text after the path's last dot, or the
// whole path when it has none. Matching is case-sensitive on the literal
// suffix.
func trailingExtension(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}
