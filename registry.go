package pelican

import (
	"sort"
	"sync"
)

// readerDescriptor statically declares one format reader: its name, the file
// extensions it claims, a feature probe for its rendering engine, and a
// factory binding a settings context to a fresh reader instance.
type readerDescriptor struct {
	format     string
	extensions []string
	enabled    func() bool
	factory    func(Settings) Reader
}

// defaultDescriptors enumerates every known reader. The registry is built
// from this list; making it an explicit table keeps the registry content
// auditable instead of relying on runtime type discovery.
func defaultDescriptors() []readerDescriptor {
	return []readerDescriptor{
		{
			format:     "rst",
			extensions: []string{"rst"},
			enabled:    docutilsAvailable,
			factory:    func(s Settings) Reader { return newRSTReader(s) },
		},
		{
			format:     "md",
			extensions: []string{"md", "markdown", "mkd"},
			enabled:    func() bool { return true },
			factory:    func(s Settings) Reader { return newMarkdownReader(s) },
		},
		{
			format:     "asciidoc",
			extensions: []string{"txt"},
			enabled:    asciidocAvailable,
			factory:    func(s Settings) Reader { return newAsciiDocReader(s) },
		},
		{
			format:     "html",
			extensions: []string{"html", "htm"},
			enabled:    func() bool { return true },
			factory:    func(s Settings) Reader { return newHTMLReader(s) },
		},
	}
}

// registryEntry caches a descriptor together with its probe result. Probes
// run once at registry build, not per dispatch.
type registryEntry struct {
	descriptor readerDescriptor
	enabled    bool
}

// Registry maps file extensions to reader descriptors. Built once,
// read-only thereafter, safe for concurrent lookups.
type Registry struct {
	byExtension map[string]registryEntry
}

// newRegistry builds a registry from the given descriptors, registering
// every declared extension. When two descriptors claim the same extension
// the last registered wins.
func newRegistry(descriptors []readerDescriptor) *Registry {
	byExtension := make(map[string]registryEntry)
	for _, d := range descriptors {
		entry := registryEntry{descriptor: d, enabled: d.enabled()}
		for _, ext := range d.extensions {
			byExtension[ext] = entry
		}
	}
	return &Registry{byExtension: byExtension}
}

// lookup resolves a format string (a literal file extension) to its entry.
func (r *Registry) lookup(format string) (registryEntry, bool) {
	entry, ok := r.byExtension[format]
	return entry, ok
}

// Extensions reports every registered file extension, sorted, for
// diagnostics.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExtension))
	for ext := range r.byExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the process-wide registry, built on first use
// from the static descriptor table.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = newRegistry(defaultDescriptors())
	})
	return defaultRegistry
}
