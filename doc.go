// Package pelican implements the content-reader subsystem of a static-site
// generator: it converts a source file in one of several markup formats
// (reStructuredText, Markdown, AsciiDoc, raw HTML) into rendered body
// content plus a normalized metadata record.
//
// # Quick Start
//
// Dispatch on a file and receive content and metadata:
//
//	content, meta, err := pelican.ReadFile(ctx, "posts/hello.md", "", settings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(meta["title"], meta["date"])
//
// The format is derived from the file's trailing extension unless an
// explicit format override is given as the second argument.
//
// # Readers
//
// One reader exists per markup format. Each reader extracts raw metadata
// using that format's own idiom (reStructuredText docinfo fields, Markdown
// front matter, AsciiDoc header lines, HTML comment markers) and delegates
// body rendering to the format's engine. Markdown is rendered in-process by
// goldmark; reStructuredText and AsciiDoc shell out to docutils and
// asciidoctor, and their readers are disabled when the binary is not on
// PATH. Dispatching to a disabled reader returns ErrMissingDependency.
//
// # Metadata
//
// Field names are lowercased on ingestion. Known fields are coerced to
// typed values: "tags" to []Tag, "date" to time.Time, "category" to
// Category, "author" to Author, "status" to a trimmed string. Fields with
// no coercion rule pass through unchanged as strings. A "title" field is
// always present after dispatch completes.
//
// # Settings
//
// Settings is an externally owned key/value configuration, read-only from
// the subsystem's perspective. Recognized keys include MD_EXTENSIONS (names
// of goldmark extensions to enable), TYPOGRIFY (apply the typography filter
// to content and title), and ASCIIDOC_CONF (configuration file passed to
// the AsciiDoc engine). Load one from a YAML file with LoadSettings.
package pelican
