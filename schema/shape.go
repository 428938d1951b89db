package schema

import (
	"fmt"

	"github.com/objschema/objschema/dynamic"
)

// Definitions accept several shapes. Each is detected once, up front, into
// one of the variants below before any field is read.

// propertyDefinition is shortForm or longForm
type propertyDefinition interface{ isPropertyDefinition() }

// shortForm `age: "int"`
type shortForm struct{ typeName string }

// longForm `age: {type: "int", optional: true}`
type longForm struct{ descriptor dynamic.Object }

func (shortForm) isPropertyDefinition() {}
func (longForm) isPropertyDefinition()  {}

func classifyProperty(definition interface{}, name string) (propertyDefinition, error) {
	if descriptor, ok := dynamic.AsObject(definition); ok {
		return longForm{descriptor: descriptor}, nil
	}

	typeName, err := dynamic.ValidatedToString(definition, name)
	if err != nil {
		return nil, err
	}
	return shortForm{typeName: typeName}, nil
}

// typeDefinition is plainDefinition or constructorDefinition
type typeDefinition interface{ isTypeDefinition() }

type plainDefinition struct{ object dynamic.Object }

// constructorDefinition a constructor whose static `schema` holds the definition
type constructorDefinition struct {
	constructor dynamic.Constructor
	object      dynamic.Object
}

func (plainDefinition) isTypeDefinition()       {}
func (constructorDefinition) isTypeDefinition() {}

func classifyType(definition interface{}) (typeDefinition, error) {
	if constructor, ok := dynamic.ToConstructor(definition); ok {
		object, err := dynamic.ValidatedGetObject(constructor, "schema", "Realm object constructor must have a 'schema' property.")
		if err != nil {
			return nil, &SchemaError{Kind: ErrMissingField, Message: err.Error(), Err: err}
		}
		return constructorDefinition{constructor: constructor, object: object}, nil
	}

	if object, ok := dynamic.AsObject(definition); ok {
		return plainDefinition{object: object}, nil
	}
	return nil, newError(ErrMalformedShape, "Object schema must be an object or a constructor, got %s", dynamic.TypeOf(definition))
}

// propertiesShape is arrayShape or mapShape
type propertiesShape interface{ isPropertiesShape() }

// arrayShape ordered descriptors that carry their own name
type arrayShape struct{ items []interface{} }

// mapShape named entries in enumeration order
type mapShape struct{ object dynamic.Object }

func (arrayShape) isPropertiesShape() {}
func (mapShape) isPropertiesShape()   {}

func classifyProperties(object dynamic.Object) (propertiesShape, error) {
	value := dynamic.GetProperty(object, "properties")
	if items, ok := dynamic.AsArray(value); ok {
		return arrayShape{items: items}, nil
	}
	if properties, ok := dynamic.AsObject(value); ok {
		return mapShape{object: properties}, nil
	}

	kind := ErrMalformedShape
	if dynamic.IsUndefined(value) {
		kind = ErrMissingField
	}
	return nil, &SchemaError{
		Kind:    kind,
		Message: "ObjectSchema must have a 'properties' object.",
		Err:     fmt.Errorf("got %s", dynamic.TypeOf(value)),
	}
}
