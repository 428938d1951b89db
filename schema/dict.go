package schema

import (
	"github.com/objschema/objschema/dynamic"
)

// DictForPropertyArray pairs positional values with the object schema's
// properties in declaration order.
func DictForPropertyArray(objectSchema *ObjectSchema, values interface{}) (*dynamic.Map, error) {
	arr, ok := dynamic.AsArray(values)
	if !ok {
		return nil, &SchemaError{
			ObjectType: objectSchema.Name,
			Kind:       ErrMalformedShape,
			Message:    "Object values must be an array, got " + dynamic.TypeOf(values),
		}
	}

	if len(arr) != len(objectSchema.Properties) {
		return nil, &SchemaError{
			ObjectType: objectSchema.Name,
			Kind:       ErrMalformedShape,
			Message:    "Array must contain values for all object properties",
		}
	}

	dict := dynamic.NewMap()
	for i, prop := range objectSchema.Properties {
		dict.Set(prop.Name, arr[i])
	}
	return dict, nil
}
