package schema

import (
	"github.com/objschema/objschema/dynamic"
)

// PropertyType closed set of property types, named by their definition keyword
type PropertyType string

const (
	Bool   PropertyType = "bool"
	Int    PropertyType = "int"
	Float  PropertyType = "float"
	Double PropertyType = "double"
	String PropertyType = "string"
	Date   PropertyType = "date"
	Data   PropertyType = "data"
	Array  PropertyType = "list"
	Object PropertyType = "object"
)

// IsValid reports whether t is one of the known property types
func (t PropertyType) IsValid() bool {
	switch t {
	case Bool, Int, Float, Double, String, Date, Data, Array, Object:
		return true
	}
	return false
}

func (t PropertyType) String() string {
	return string(t)
}

// ParsePropertyType returns the property type for a definition keyword
func ParsePropertyType(keyword string) (PropertyType, bool) {
	t := PropertyType(keyword)
	return t, t.IsValid()
}

// IsLink reports whether properties of this type reference another object type
func (t PropertyType) IsLink() bool {
	return t == Array || t == Object
}

type Property struct {
	Name string
	Type PropertyType
	// ObjectType is set iff Type is Array or Object
	ObjectType string
	IsNullable bool
	IsIndexed  bool
	IsPrimary  bool
}

// PropertyResult a parsed property and the default value its descriptor declared
type PropertyResult struct {
	Property Property
	// Default is nil when no default was declared; the receiver owns the handle
	Default *dynamic.Protected[any]
}

// ParseProperty parses a short-form type string or a long-form descriptor object.
//
// Nullability: Object-typed properties default to nullable, everything else
// to non-nullable. An explicit `optional` always wins, for every type.
func (p *Parser) ParseProperty(definition interface{}, name string) (PropertyResult, error) {
	def, err := classifyProperty(definition, name)
	if err != nil {
		return PropertyResult{}, withProperty(err, name)
	}

	var (
		prop       = Property{Name: name}
		descriptor dynamic.Object
		typeName   string
		optional   *bool
	)

	switch d := def.(type) {
	case shortForm:
		typeName = d.typeName
	case longForm:
		descriptor = d.descriptor
		if typeName, err = dynamic.ValidatedGetString(descriptor, "type"); err != nil {
			return PropertyResult{}, withProperty(err, name)
		}

		if value := dynamic.GetProperty(descriptor, "optional"); !dynamic.IsUndefined(value) {
			isOptional, err := dynamic.ValidatedToBoolean(value, "optional")
			if err != nil {
				return PropertyResult{}, withProperty(err, name)
			}
			optional = &isOptional
		}
	}

	switch t := PropertyType(typeName); t {
	case Bool, Int, Float, Double, String, Date, Data:
		prop.Type = t
	case Array:
		if descriptor == nil {
			return PropertyResult{}, withProperty(newError(ErrMissingObjectType, "List property must specify 'objectType'"), name)
		}
		prop.Type = Array
		if prop.ObjectType, err = objectTypeOf(descriptor, "List"); err != nil {
			return PropertyResult{}, withProperty(err, name)
		}
	case Object:
		if descriptor == nil {
			return PropertyResult{}, withProperty(newError(ErrMissingObjectType, "Object property must specify 'objectType'"), name)
		}
		prop.Type = Object
		prop.IsNullable = true
		if prop.ObjectType, err = objectTypeOf(descriptor, "Object"); err != nil {
			return PropertyResult{}, withProperty(err, name)
		}
	default:
		if typeName == "" {
			return PropertyResult{}, withProperty(newError(ErrMalformedShape, "Property type must not be empty"), name)
		}
		// any other name references a declared object type, resolved by the storage engine
		prop.Type = Object
		prop.ObjectType = typeName
		prop.IsNullable = true
	}

	if optional != nil {
		prop.IsNullable = *optional
	}

	result := PropertyResult{}
	if descriptor != nil {
		if value := dynamic.GetProperty(descriptor, "indexed"); !dynamic.IsUndefined(value) {
			if prop.IsIndexed, err = dynamic.ValidatedToBoolean(value, "indexed"); err != nil {
				return PropertyResult{}, withProperty(err, name)
			}
		}

		if value := dynamic.GetProperty(descriptor, "default"); !dynamic.IsUndefined(value) {
			result.Default = dynamic.Protect(p.protector(), value)
		}
	}

	result.Property = prop
	return result, nil
}

func objectTypeOf(descriptor dynamic.Object, kind string) (string, error) {
	value := dynamic.GetProperty(descriptor, "objectType")
	if dynamic.IsUndefined(value) {
		return "", newError(ErrMissingObjectType, "%s property must specify 'objectType'", kind)
	}

	objectType, err := dynamic.ValidatedToString(value, "objectType")
	if err != nil {
		return "", err
	}
	if objectType == "" {
		return "", newError(ErrMissingObjectType, "%s property must specify 'objectType'", kind)
	}
	return objectType, nil
}

// Descriptor re-derives the long-form definition of the property. Parsing it
// back under the same name yields an equal Property, except IsPrimary which
// belongs to the object schema.
func (prop Property) Descriptor() *dynamic.Map {
	descriptor := dynamic.MapOf("type", string(prop.Type))
	if prop.ObjectType != "" {
		descriptor.Set("objectType", prop.ObjectType)
	}
	descriptor.Set("optional", prop.IsNullable)
	descriptor.Set("indexed", prop.IsIndexed)
	return descriptor
}
