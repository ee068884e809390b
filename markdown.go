package pelican

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// baselineMarkdownExtensions is the fixed engine extension set every
// Markdown read starts from. Caller-configured names (MD_EXTENSIONS) are
// added on top; front-matter support is always appended.
var baselineMarkdownExtensions = []string{"gfm", "footnote", "highlighting"}

// markdownExtensionByName maps caller-facing extension names to goldmark
// extenders.
var markdownExtensionByName = map[string]goldmark.Extender{
	"gfm":             extension.GFM,
	"table":           extension.Table,
	"strikethrough":   extension.Strikethrough,
	"linkify":         extension.Linkify,
	"tasklist":        extension.TaskList,
	"footnote":        extension.Footnote,
	"definition-list": extension.DefinitionList,
	"typographer":     extension.Typographer,
	"highlighting": highlighting.NewHighlighting(
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(true), // CSS classes keep the HTML small and externally styleable
		),
	),
}

// markdownReader renders Markdown with goldmark and reads metadata from the
// document's front-matter block.
type markdownReader struct {
	baseReader
	engineExtensions []string
}

func newMarkdownReader(settings Settings) *markdownReader {
	return &markdownReader{
		baseReader:       newBaseReader(settings),
		engineExtensions: baselineMarkdownExtensions,
	}
}

// SetEngineExtensions replaces the caller-configured engine extension list.
func (r *markdownReader) SetEngineExtensions(names []string) {
	r.engineExtensions = names
}

// Read renders the file body to HTML and coerces every front-matter field.
// Front-matter values that decode as sequences contribute their first
// element; field names are lowercased.
func (r *markdownReader) Read(ctx context.Context, path string) (string, Metadata, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	source, err := os.ReadFile(path) // #nosec G304 -- content path is caller-provided
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	engine, err := r.buildEngine()
	if err != nil {
		return "", nil, err
	}

	pctx := parser.NewContext()
	var buf bytes.Buffer
	if err := engine.Convert(source, &buf, parser.WithContext(pctx)); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrEngineFailed, err)
	}

	metadata := Metadata{}
	for name, raw := range meta.Get(pctx) {
		name = strings.ToLower(name)
		value, err := r.processMetadata(name, firstMetadataValue(raw))
		if err != nil {
			return "", nil, err
		}
		metadata[name] = value
	}

	return buf.String(), metadata, nil
}

// buildEngine assembles a goldmark instance from the baseline plus
// caller-configured extensions, deduplicated, with front-matter support.
func (r *markdownReader) buildEngine() (goldmark.Markdown, error) {
	extenders := []goldmark.Extender{meta.Meta}
	seen := map[string]bool{}

	for _, name := range append(append([]string{}, baselineMarkdownExtensions...), r.engineExtensions...) {
		name = strings.ToLower(name)
		if seen[name] {
			continue
		}
		seen[name] = true

		extender, ok := markdownExtensionByName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, name)
		}
		extenders = append(extenders, extender)
	}

	return goldmark.New(
		goldmark.WithExtensions(extenders...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			html.WithUnsafe(), // articles may embed raw HTML
		),
	), nil
}

// firstMetadataValue normalizes a decoded front-matter value to its raw
// string form, taking the first element of sequences.
func firstMetadataValue(raw any) string {
	switch v := raw.(type) {
	case []any:
		if len(v) == 0 {
			return ""
		}
		return fmt.Sprint(v[0])
	case []string:
		if len(v) == 0 {
			return ""
		}
		return v[0]
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
