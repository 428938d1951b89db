// Package loader reads object schema documents into host values the schema
// parser accepts. Mapping order in the document is kept.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/objschema/objschema/dynamic"
)

// Format document format
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
)

var (
	// ErrUnsupportedFormat the document format is not known
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrNoDefinitions the document root holds no schema sequence
	ErrNoDefinitions = errors.New("document has no object schema definitions")
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Decode decodes a whole document
func Decode(data []byte, format Format) (interface{}, error) {
	switch format {
	case YAML:
		return dynamic.DecodeYAML(data)
	case JSON:
		return decodeJSON(data)
	case TOML:
		return decodeTOML(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// LoadFile reads and decodes the document at path, returning its definitions
func LoadFile(path string) (interface{}, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return Definitions(doc)
}

// Definitions returns the sequence of object schema definitions of a
// document. The root is either that sequence or a mapping with a `schema` key.
func Definitions(doc interface{}) (interface{}, error) {
	if dynamic.IsArray(doc) {
		return doc, nil
	}

	if object, ok := dynamic.AsObject(doc); ok {
		if definitions, ok := object.Get("schema"); ok {
			if !dynamic.IsArray(definitions) {
				return nil, fmt.Errorf("%w: 'schema' must be a sequence, got %s", ErrNoDefinitions, dynamic.TypeOf(definitions))
			}
			return definitions, nil
		}
	}
	return nil, fmt.Errorf("%w: root must be a sequence or a mapping with a 'schema' sequence, got %s", ErrNoDefinitions, dynamic.TypeOf(doc))
}
