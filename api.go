package objschema

import (
	"fmt"

	"github.com/objschema/objschema/loader"
	"github.com/objschema/objschema/schema"
)

// Parse parses an ordered sequence of object type definitions given as host values
func (db *DB) Parse(definitions interface{}) (*Result, error) {
	parsed, err := db.parser().ParseSchema(definitions)
	if err != nil {
		return nil, err
	}
	return &Result{Result: parsed, namer: db.NamingStrategy}, nil
}

// ParseBytes decodes a schema document and parses its definitions
func (db *DB) ParseBytes(data []byte, format loader.Format) (*Result, error) {
	doc, err := loader.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s document: %w", format, err)
	}

	definitions, err := loader.Definitions(doc)
	if err != nil {
		return nil, err
	}
	return db.parseDocument(definitions)
}

// ParseFile loads the schema document at path and parses its definitions
func (db *DB) ParseFile(path string) (*Result, error) {
	definitions, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}

	result, err := db.parseDocument(definitions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

func (db *DB) parseDocument(definitions interface{}) (*Result, error) {
	result, err := db.Parse(definitions)
	if err != nil {
		return nil, err
	}

	for name, defaults := range result.Defaults {
		if err := schema.NormalizeDefaults(result.Schema.Find(name), defaults, db.Protector, db.Location); err != nil {
			result.Release()
			return nil, err
		}
	}
	return result, nil
}
