package pelican

import "errors"

// Sentinel errors for dispatch and metadata operations.
var (
	// ErrUnsupportedFormat is returned when no reader is registered for a
	// file's extension. The wrapping error names the offending path.
	ErrUnsupportedFormat = errors.New("no reader knows how to parse file")

	// ErrMissingDependency is returned when a format is recognized but its
	// rendering engine is unavailable. The wrapping error names the format.
	ErrMissingDependency = errors.New("missing dependencies for format")

	// ErrMetadataCoercion is returned when a typed metadata field's raw
	// value cannot be converted. The wrapping error names the field and the
	// raw value.
	ErrMetadataCoercion = errors.New("metadata coercion failed")

	// Engine invocation errors.
	ErrEngineNotFound = errors.New("rendering engine not found")
	ErrEngineFailed   = errors.New("rendering engine failed")

	// Source and settings errors.
	ErrReadSource       = errors.New("failed to read source file")
	ErrUnknownExtension = errors.New("unknown engine extension")
	ErrSettingsNotFound = errors.New("settings file not found")
	ErrSettingsParse    = errors.New("failed to parse settings")
)
