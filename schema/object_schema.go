package schema

import (
	"fmt"

	"github.com/objschema/objschema/dynamic"
)

type ObjectSchema struct {
	Name string
	// Properties in declaration order
	Properties []Property
	PrimaryKey string
}

func (objectSchema ObjectSchema) String() string {
	return objectSchema.Name
}

// PropertyForName returns the property with the exact name, or nil
func (objectSchema *ObjectSchema) PropertyForName(name string) *Property {
	for i := range objectSchema.Properties {
		if objectSchema.Properties[i].Name == name {
			return &objectSchema.Properties[i]
		}
	}
	return nil
}

// PrimaryKeyProperty returns the primary key property, or nil when none is declared
func (objectSchema *ObjectSchema) PrimaryKeyProperty() *Property {
	if objectSchema.PrimaryKey == "" {
		return nil
	}
	return objectSchema.PropertyForName(objectSchema.PrimaryKey)
}

// Descriptor re-derives a map-shaped definition of the object schema
func (objectSchema *ObjectSchema) Descriptor() *dynamic.Map {
	properties := dynamic.NewMap()
	for _, prop := range objectSchema.Properties {
		properties.Set(prop.Name, prop.Descriptor())
	}

	descriptor := dynamic.MapOf("name", objectSchema.Name, "properties", properties)
	if objectSchema.PrimaryKey != "" {
		descriptor.Set("primaryKey", objectSchema.PrimaryKey)
	}
	return descriptor
}

// ObjectSchemaResult a parsed object schema with the values captured while parsing it
type ObjectSchemaResult struct {
	Schema *ObjectSchema
	// Defaults is never nil, possibly empty
	Defaults ObjectDefaults
	// Constructor is set only for definitions given as a constructor
	Constructor *dynamic.Protected[dynamic.Constructor]
}

// Release releases every handle held by the result
func (result ObjectSchemaResult) Release() {
	result.Defaults.Release()
	result.Constructor.Release()
}

// ParseObjectSchema parses one object type definition, either a plain
// descriptor object or a constructor carrying a static `schema`.
func (p *Parser) ParseObjectSchema(definition interface{}) (ObjectSchemaResult, error) {
	def, err := classifyType(definition)
	if err != nil {
		return ObjectSchemaResult{}, err
	}

	var (
		object      dynamic.Object
		constructor dynamic.Constructor
	)
	switch d := def.(type) {
	case plainDefinition:
		object = d.object
	case constructorDefinition:
		object, constructor = d.object, d.constructor
	}

	name, err := dynamic.ValidatedGetString(object, "name")
	if err != nil {
		return ObjectSchemaResult{}, asSchemaError(err)
	}
	if name == "" {
		return ObjectSchemaResult{}, newError(ErrMissingField, "Object schema 'name' must not be empty")
	}

	var (
		objectSchema = &ObjectSchema{Name: name}
		defaults     = ObjectDefaults{}
		fail         = func(err error) (ObjectSchemaResult, error) {
			defaults.Release()
			return ObjectSchemaResult{}, withObjectType(err, name)
		}
	)

	shape, err := classifyProperties(object)
	if err != nil {
		return fail(err)
	}

	switch s := shape.(type) {
	case arrayShape:
		objectSchema.Properties = make([]Property, 0, len(s.items))
		for i, item := range s.items {
			descriptor, err := dynamic.ValidatedToObject(item, fmt.Sprintf("properties[%d]", i))
			if err != nil {
				return fail(err)
			}

			propertyName, err := dynamic.ValidatedGetString(descriptor, "name")
			if err != nil {
				return fail(withProperty(err, fmt.Sprintf("properties[%d]", i)))
			}

			if err := p.addProperty(objectSchema, defaults, descriptor, propertyName); err != nil {
				return fail(err)
			}
		}
	case mapShape:
		keys := s.object.Keys()
		objectSchema.Properties = make([]Property, 0, len(keys))
		for _, propertyName := range keys {
			if err := p.addProperty(objectSchema, defaults, dynamic.GetProperty(s.object, propertyName), propertyName); err != nil {
				return fail(err)
			}
		}
	}

	if value := dynamic.GetProperty(object, "primaryKey"); !dynamic.IsUndefined(value) {
		primaryKey, err := dynamic.ValidatedToString(value, "primaryKey")
		if err != nil {
			return fail(err)
		}

		prop := objectSchema.PropertyForName(primaryKey)
		if prop == nil {
			return fail(newError(ErrMissingPrimaryKey, "Missing primary key property '%s'", primaryKey))
		}
		prop.IsPrimary = true
		objectSchema.PrimaryKey = primaryKey
	}

	result := ObjectSchemaResult{Schema: objectSchema, Defaults: defaults}
	if constructor != nil {
		result.Constructor = dynamic.Protect(p.protector(), constructor)
	}
	return result, nil
}

func (p *Parser) addProperty(objectSchema *ObjectSchema, defaults ObjectDefaults, definition interface{}, name string) error {
	if name == "" {
		return newError(ErrMissingField, "Property name must not be empty")
	}
	if objectSchema.PropertyForName(name) != nil {
		return withProperty(newError(ErrDuplicateProperty, "Property '%s' is declared more than once", name), name)
	}

	parsed, err := p.ParseProperty(definition, name)
	if err != nil {
		return err
	}

	objectSchema.Properties = append(objectSchema.Properties, parsed.Property)
	if parsed.Default != nil {
		defaults[name] = parsed.Default
	}
	return nil
}
