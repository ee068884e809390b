package pelican

import (
	"fmt"
	"strings"

	"github.com/jedahu/pelican/internal/dateutil"
)

// Metadata maps lowercased field names to typed values. There is no fixed
// schema: fields without a coercion rule pass through as strings.
type Metadata map[string]any

// Tag is a content tag identity derived from a raw metadata string.
type Tag struct {
	Name string
	Slug string
}

// NewTag builds a Tag from a raw name. The settings context is accepted for
// parity with the other identity constructors but is not consulted yet.
func NewTag(name string, _ Settings) Tag {
	name = strings.TrimSpace(name)
	return Tag{Name: name, Slug: slugify(name)}
}

// Category is a content category identity.
type Category struct {
	Name string
	Slug string
}

// NewCategory builds a Category from a raw name.
func NewCategory(name string, _ Settings) Category {
	name = strings.TrimSpace(name)
	return Category{Name: name, Slug: slugify(name)}
}

// Author is a content author identity.
type Author struct {
	Name string
	Slug string
}

// NewAuthor builds an Author from a raw name.
func NewAuthor(name string, _ Settings) Author {
	name = strings.TrimSpace(name)
	return Author{Name: name, Slug: slugify(name)}
}

// slugify lowercases a name and collapses runs of non-alphanumeric
// characters into single hyphens.
func slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Coercer converts a raw string metadata value into a typed domain value.
// Coercers are pure: no side effects, settings consulted read-only.
type Coercer func(raw string, settings Settings) (any, error)

// CoercionTable maps lowercased field names to coercion rules. It is built
// once during package initialization and treated as read-only afterwards.
type CoercionTable map[string]Coercer

// defaultCoercers returns the registered coercion rules. Absence of a rule
// for a field is not an error; the raw value passes through unchanged.
func defaultCoercers() CoercionTable {
	return CoercionTable{
		"tags": func(raw string, settings Settings) (any, error) {
			parts := strings.Split(raw, ",")
			tags := make([]Tag, 0, len(parts))
			for _, part := range parts {
				tags = append(tags, NewTag(part, settings))
			}
			return tags, nil
		},
		"date": func(raw string, _ Settings) (any, error) {
			return dateutil.Parse(raw)
		},
		"status": func(raw string, _ Settings) (any, error) {
			return strings.TrimSpace(raw), nil
		},
		"category": func(raw string, settings Settings) (any, error) {
			return NewCategory(raw, settings), nil
		},
		"author": func(raw string, settings Settings) (any, error) {
			return NewAuthor(raw, settings), nil
		},
	}
}

// coercers is the process-wide coercion table. Read-only after init.
var coercers = defaultCoercers()

// Coerce applies the rule registered for name (lowercased) to raw. Fields
// without a rule pass through unchanged. A failing rule surfaces as
// ErrMetadataCoercion naming the field and the raw value.
func (t CoercionTable) Coerce(name, raw string, settings Settings) (any, error) {
	coercer, ok := t[strings.ToLower(name)]
	if !ok {
		return raw, nil
	}

	value, err := coercer(raw, settings)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q value %q: %v", ErrMetadataCoercion, name, raw, err)
	}
	return value, nil
}
