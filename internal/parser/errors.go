package parser

import (
	"errors"
	"fmt"
)

// NotFoundError indicates that a manifest file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("manifest not found: %s", e.Path)
}

// ReadError indicates that a manifest exists but could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read manifest %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError indicates that a manifest is not valid structured data.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s manifest at %s: %v", e.Format, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError indicates that a required key is absent or has the wrong shape.
type SchemaError struct {
	Path   string
	Key    string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid manifest at %s: %s %s", e.Path, e.Key, e.Reason)
}

// Suggestion returns guidance for the most common schema failures.
func (e *SchemaError) Suggestion() string {
	switch e.Key {
	case "workspace":
		return "Run depdrift from the workspace root, where Cargo.toml declares a [workspace] table."
	case "workspace.members":
		return "Declare the member packages, e.g.:\n\n  [workspace]\n  members = [\"crates/a\", \"crates/b\"]\n"
	case "package", "package.name":
		return "Every workspace member needs a [package] table with a name."
	default:
		return ""
	}
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsSchema reports whether err is, or wraps, a SchemaError.
func IsSchema(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
