package pelican

import (
	"fmt"
	"os"

	"github.com/jedahu/pelican/internal/yamlutil"
)

// Settings is the externally owned configuration passed through dispatch.
// It is read-only from the subsystem's perspective: readers consult it but
// never mutate it. A nil Settings behaves like an empty one.
type Settings map[string]any

// String returns the string value stored under key, or "" when the key is
// absent or holds a non-string value.
func (s Settings) String(key string) string {
	v, _ := s[key].(string)
	return v
}

// Bool returns the boolean value stored under key, defaulting to false.
func (s Settings) Bool(key string) bool {
	v, _ := s[key].(bool)
	return v
}

// StringList returns the list of strings stored under key. YAML decoding
// produces []any, so scalar elements are stringified. Absent or
// non-list values yield nil.
func (s Settings) StringList(key string) []string {
	switch v := s[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	}
	return nil
}

// LoadSettings reads a YAML settings file into a Settings map.
// Returns ErrSettingsNotFound if the file does not exist (no silent
// fallback) and ErrSettingsParse on malformed YAML.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- settings path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	var raw map[string]any
	if err := yamlutil.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSettingsParse, err)
	}

	return Settings(raw), nil
}
