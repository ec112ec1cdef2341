package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Lookup resolves a dot-separated path against the merged mapping. It
// returns the raw value and whether the full path exists. Intermediate
// segments must be mappings.
func (c *Config) Lookup(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var cur any = c.data
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Has reports whether a top-level key is present.
func (c *Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// StringAt returns the string value at path. It reports false when the
// path is absent or the value has another type.
func (c *Config) StringAt(path string) (string, bool) {
	v, ok := c.Lookup(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// IntAt returns the integer value at path. YAML decodes integers as int
// or int64 depending on magnitude; both are accepted. Floats, booleans
// and numeric strings are not.
func (c *Config) IntAt(path string) (int, bool) {
	v, ok := c.Lookup(path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	}
	return 0, false
}

// BoolAt returns the boolean value at path. It reports false when the
// path is absent or the value has another type.
func (c *Config) BoolAt(path string) (bool, bool) {
	v, ok := c.Lookup(path)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// MapAt returns the nested mapping at path.
func (c *Config) MapAt(path string) (map[string]any, bool) {
	v, ok := c.Lookup(path)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

// DomainKeys returns the sorted domain names under a top-level section
// such as "cloud_details" or "database_details". It returns nil when the
// section is absent or not a mapping.
func (c *Config) DomainKeys(section string) []string {
	m, ok := c.MapAt(section)
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(m))
}

// TypeName names a configuration value's type in YAML vocabulary, for
// use in mismatch reports.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int32, int64, uint64:
		return "integer"
	case float32, float64:
		return "float"
	case map[string]any:
		return "mapping"
	case []any:
		return "list"
	}
	return fmt.Sprintf("%T", v)
}
