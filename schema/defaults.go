package schema

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/objschema/objschema/dynamic"
)

// ObjectDefaults default values of one object type, by property name
type ObjectDefaults map[string]*dynamic.Protected[any]

// Values returns the plain default values
func (defaults ObjectDefaults) Values() map[string]interface{} {
	values := make(map[string]interface{}, len(defaults))
	for name, handle := range defaults {
		values[name] = handle.Value()
	}
	return values
}

func (defaults ObjectDefaults) Release() {
	for _, handle := range defaults {
		handle.Release()
	}
}

// DefaultsMap per object type defaults, by object type name
type DefaultsMap map[string]ObjectDefaults

func (m DefaultsMap) Release() {
	for _, defaults := range m {
		defaults.Release()
	}
}

// ConstructorMap constructors of object types declared in constructor form
type ConstructorMap map[string]*dynamic.Protected[dynamic.Constructor]

func (m ConstructorMap) Release() {
	for _, handle := range m {
		handle.Release()
	}
}

// NormalizeDefaults converts string defaults of date properties into
// time.Time, for text formats that have no date literal. Replaced handles are
// released and the new values protected through protector.
func NormalizeDefaults(objectSchema *ObjectSchema, defaults ObjectDefaults, protector dynamic.Protector, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	config := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: loc,
		TimeFormats:  append([]string{time.RFC3339Nano}, now.TimeFormats...),
	}

	for _, prop := range objectSchema.Properties {
		if prop.Type != Date {
			continue
		}

		handle, ok := defaults[prop.Name]
		if !ok {
			continue
		}

		str, ok := handle.Value().(string)
		if !ok {
			continue
		}

		t, err := config.Parse(str)
		if err != nil {
			return &SchemaError{
				ObjectType: objectSchema.Name,
				Property:   prop.Name,
				Kind:       ErrMalformedShape,
				Message:    "Default value of a date property must be a date, got '" + str + "'",
				Err:        err,
			}
		}

		handle.Release()
		defaults[prop.Name] = dynamic.Protect[any](protector, t)
	}
	return nil
}
