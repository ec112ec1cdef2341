// Package config holds the merged configuration snapshot.
//
// This package has no I/O dependencies (no file operations, no network
// calls). A snapshot is produced once by the loader, stays read-only for
// the rest of the process, and is discarded at exit.
//
// # Shape
//
// The snapshot is a nested mapping from string keys to strings, integers,
// booleans, or nested mappings. Later sources override earlier ones for
// the same key; environment overrides apply last. Keys are normalized to
// lower case by the loader, so accessor paths use lower case too:
//
//	cfg.StringAt("cloud_details.sample_domain.provider")
//	cfg.IntAt("database_details.sample_domain.port")
//
// Accessors are strict: an integer is never returned as a string, a
// boolean never as an integer. Callers that need to report a mismatch can
// name the offending type with TypeName.
package config

// Source describes one layered configuration document as it was found at
// load time.
type Source struct {
	// Name is the layer name: "cloud", "app", "database" or "secrets".
	Name string

	// Path is the absolute path of the document.
	Path string

	// Exists reports whether the document was present when the snapshot
	// was built. Absent documents are skipped by the loader, not errors.
	Exists bool

	// Size is the document size in bytes, zero when absent.
	Size int64
}

// Config is the read-only merged configuration snapshot.
type Config struct {
	profile string
	data    map[string]any
	sources []Source
}

// New creates a snapshot from an already merged mapping. The loader is
// the usual caller; tests construct snapshots directly.
func New(profile string, data map[string]any, sources []Source) *Config {
	if data == nil {
		data = map[string]any{}
	}
	return &Config{
		profile: profile,
		data:    data,
		sources: sources,
	}
}

// Profile returns the active environment profile name.
func (c *Config) Profile() string {
	return c.profile
}

// Sources returns the layered documents in merge order.
func (c *Config) Sources() []Source {
	return c.sources
}

// Source returns the document with the given layer name.
func (c *Config) Source(name string) (Source, bool) {
	for _, src := range c.sources {
		if src.Name == name {
			return src, true
		}
	}
	return Source{}, false
}

// All returns the merged mapping. The mapping is shared with the
// snapshot and must be treated as read-only.
func (c *Config) All() map[string]any {
	return c.data
}
