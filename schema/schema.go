package schema

import (
	"context"
	"errors"
	"time"

	"github.com/objschema/objschema/dynamic"
	"github.com/objschema/objschema/logger"
)

// Schema object schemas in declaration order
type Schema []*ObjectSchema

// Find returns the first object schema with the name, or nil
func (s Schema) Find(name string) *ObjectSchema {
	for _, objectSchema := range s {
		if objectSchema.Name == name {
			return objectSchema
		}
	}
	return nil
}

// Names returns the object type names in declaration order
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, objectSchema := range s {
		names[i] = objectSchema.Name
	}
	return names
}

// Result the parsed schema plus the defaults and constructors captured for each object type
type Result struct {
	Schema       Schema
	Defaults     DefaultsMap
	Constructors ConstructorMap
}

// Release releases every default and constructor handle
func (result *Result) Release() {
	if result == nil {
		return
	}
	result.Defaults.Release()
	result.Constructors.Release()
}

// Parser parses definitions. The zero value is ready to use.
type Parser struct {
	// Protector extends the lifetime of captured defaults and constructors
	Protector dynamic.Protector
	// Logger traces every object schema, optional
	Logger  logger.Interface
	Context context.Context
}

// Parse parses an ordered sequence of object type definitions
func Parse(definitions interface{}, protector dynamic.Protector) (*Result, error) {
	return (&Parser{Protector: protector}).ParseSchema(definitions)
}

// ParseSchema parses definitions in order. Names are not checked for
// uniqueness and object type references are not resolved, that is left to
// the storage engine. Any failure aborts the whole schema and releases
// everything captured so far.
func (p *Parser) ParseSchema(definitions interface{}) (*Result, error) {
	items, ok := dynamic.AsArray(definitions)
	if !ok {
		return nil, newError(ErrMalformedShape, "Schema must be an array of object schema definitions, got %s", dynamic.TypeOf(definitions))
	}

	result := &Result{
		Schema:       make(Schema, 0, len(items)),
		Defaults:     DefaultsMap{},
		Constructors: ConstructorMap{},
	}

	for idx, definition := range items {
		begin := time.Now()
		parsed, err := p.ParseObjectSchema(definition)
		p.trace(begin, parsed, err)
		if err != nil {
			result.Release()
			return nil, withPosition(err, idx+1)
		}

		name := parsed.Schema.Name
		result.Schema = append(result.Schema, parsed.Schema)

		// first declaration of a name keeps its defaults and constructor
		if _, ok := result.Defaults[name]; ok {
			parsed.Release()
			continue
		}
		result.Defaults[name] = parsed.Defaults
		if parsed.Constructor != nil {
			result.Constructors[name] = parsed.Constructor
		}
	}

	return result, nil
}

func (p *Parser) protector() dynamic.Protector {
	if p.Protector == nil {
		return dynamic.NopProtector
	}
	return p.Protector
}

func (p *Parser) trace(begin time.Time, parsed ObjectSchemaResult, err error) {
	if p.Logger == nil {
		return
	}

	ctx := p.Context
	if ctx == nil {
		ctx = context.Background()
	}

	p.Logger.Trace(ctx, begin, func() (string, int) {
		if parsed.Schema != nil {
			return parsed.Schema.Name, len(parsed.Schema.Properties)
		}
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			return schemaErr.ObjectType, 0
		}
		return "", 0
	}, err)
}
