package pelican

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// htmlMetadataPattern matches embedded metadata comment markers of the
// shape <!--# key : value -->, whitespace tolerant.
var htmlMetadataPattern = regexp.MustCompile(`<!--#\s*([A-Za-z0-9_-]+)\s*:\s*(.*?)\s*-->`)

// htmlReader passes (x)HTML content through unrendered and extracts
// metadata from embedded comment markers.
type htmlReader struct {
	baseReader
}

func newHTMLReader(settings Settings) *htmlReader {
	return &htmlReader{baseReader: newBaseReader(settings)}
}

// Read returns the file content verbatim. Metadata comes from comment
// markers; title defaults to the literal "unnamed" when no marker sets it.
func (r *htmlReader) Read(ctx context.Context, path string) (string, Metadata, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	source, err := os.ReadFile(path) // #nosec G304 -- content path is caller-provided
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	content := string(source)
	metadata := Metadata{"title": "unnamed"}

	for _, match := range htmlMetadataPattern.FindAllStringSubmatch(content, -1) {
		name := strings.ToLower(match[1])
		value, err := r.processMetadata(name, match[2])
		if err != nil {
			return "", nil, err
		}
		metadata[name] = value
	}

	return content, metadata, nil
}
