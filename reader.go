package pelican

import "context"

// Reader is the capability contract every format reader satisfies: parse a
// source file into rendered content plus raw metadata. Instances are created
// per dispatch call and retain no cross-call state.
type Reader interface {
	// Read parses the file at path and returns rendered body content and
	// the coerced metadata record.
	Read(ctx context.Context, path string) (string, Metadata, error)

	// SetEngineExtensions replaces the list of engine extension or plugin
	// names the reader passes to its underlying engine. Readers whose
	// engine takes no plugins ignore the call.
	SetEngineExtensions(names []string)
}

// baseReader carries the settings context and the metadata-coercion hook
// shared by all format readers.
type baseReader struct {
	settings Settings
	coercers CoercionTable
}

func newBaseReader(settings Settings) baseReader {
	return baseReader{settings: settings, coercers: coercers}
}

// processMetadata coerces a single raw metadata value by field name,
// delegating to the coercion table.
func (b baseReader) processMetadata(name, value string) (any, error) {
	return b.coercers.Coerce(name, value, b.settings)
}

// SetEngineExtensions is a no-op default for readers whose engine takes no
// extension list.
func (b baseReader) SetEngineExtensions([]string) {}
