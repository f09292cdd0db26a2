package parser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"
	"github.com/indaco/depdrift/internal/core"
	"github.com/pelletier/go-toml/v2"
)

// Reader loads manifest documents through a core.FileSystem.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read loads the manifest at path, inferring the format from its extension.
func (r *Reader) Read(ctx context.Context, path string) (Document, error) {
	return r.ReadAs(ctx, path, FormatFromPath(path))
}

// ReadAs loads the manifest at path using an explicit format.
func (r *Reader) ReadAs(ctx context.Context, path string, format Format) (Document, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest path is required")
	}

	if !format.IsValid() {
		return nil, fmt.Errorf("invalid format: %s", format)
	}

	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &ReadError{Path: path, Err: err}
	}

	return Decode(data, path, format)
}

// Decode parses raw manifest bytes. The path is only used in error messages.
func Decode(data []byte, path string, format Format) (Document, error) {
	var (
		doc map[string]any
		err error
	)

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}

	// A JSON "null" decodes to a nil map; an empty TOML or YAML file is an empty document.
	if doc == nil && format == FormatJSON {
		return nil, &ParseError{Path: path, Format: format, Err: errors.New("top-level value is not an object")}
	}
	if doc == nil {
		doc = map[string]any{}
	}

	return Document(doc), nil
}
