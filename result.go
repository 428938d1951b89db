package objschema

import (
	"fmt"

	"github.com/objschema/objschema/dynamic"
	"github.com/objschema/objschema/schema"
)

// Result a parsed schema. Release must be called once the defaults and
// constructors are no longer needed.
type Result struct {
	*schema.Result
	namer schema.Namer
}

// TableName storage table of an object type
func (result *Result) TableName(objectType string) string {
	return result.namer.TableName(objectType)
}

// ColumnName storage column of a property
func (result *Result) ColumnName(objectType, property string) string {
	return result.namer.ColumnName(objectType, property)
}

// ObjectSchema returns the first object schema declared with the name
func (result *Result) ObjectSchema(objectType string) (*schema.ObjectSchema, error) {
	if objectSchema := result.Schema.Find(objectType); objectSchema != nil {
		return objectSchema, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownObjectType, objectType)
}

// DefaultValues plain default values of an object type
func (result *Result) DefaultValues(objectType string) map[string]interface{} {
	return result.Defaults[objectType].Values()
}

// Dict names positional values by the properties of an object type
func (result *Result) Dict(objectType string, values interface{}) (*dynamic.Map, error) {
	objectSchema, err := result.ObjectSchema(objectType)
	if err != nil {
		return nil, err
	}
	return schema.DictForPropertyArray(objectSchema, values)
}

// NewObject builds an object from positional values, through the object
// type's constructor when it was declared in constructor form.
func (result *Result) NewObject(objectType string, values interface{}) (interface{}, error) {
	dict, err := result.Dict(objectType, values)
	if err != nil {
		return nil, err
	}

	if constructor, ok := result.Constructors[objectType]; ok {
		return constructor.Value().Construct(dict)
	}
	return dict, nil
}
