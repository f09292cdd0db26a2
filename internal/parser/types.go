package parser

import (
	"path/filepath"
	"strings"
)

// Format represents the supported manifest file formats.
type Format string

const (
	// FormatTOML is for TOML manifests (Cargo.toml, etc.).
	FormatTOML Format = "toml"

	// FormatJSON is for JSON manifests.
	FormatJSON Format = "json"

	// FormatYAML is for YAML manifests.
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatTOML, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format, returning FormatTOML as fallback.
func ParseFormat(s string) Format {
	f := Format(strings.ToLower(s))
	if f == "yml" {
		return FormatYAML
	}
	if f.IsValid() {
		return f
	}
	return FormatTOML
}

// FormatFromPath infers the format from the file extension.
// Unknown or missing extensions are treated as TOML.
func FormatFromPath(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return ParseFormat(ext)
}

// Document is the decoded content of a manifest. Nested tables are
// map[string]any, arrays are []any.
type Document map[string]any

// Lookup retrieves a value using dot notation.
// Example: "workspace.members" accesses doc["workspace"]["members"].
// The second result is false when any segment is absent or not a table.
func (d Document) Lookup(field string) (any, bool) {
	if field == "" {
		return nil, false
	}

	current := any(map[string]any(d))
	for part := range strings.SplitSeq(field, ".") {
		table, ok := AsTable(current)
		if !ok {
			return nil, false
		}
		value, exists := table[part]
		if !exists {
			return nil, false
		}
		current = value
	}

	return current, true
}

// AsTable converts a decoded value to a table when it is one.
func AsTable(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Document:
		return t, true
	default:
		return nil, false
	}
}
