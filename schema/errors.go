package schema

import (
	"errors"
	"fmt"

	"github.com/objschema/objschema/dynamic"
)

var (
	// ErrMissingField a required field such as name, properties, type or schema is absent
	ErrMissingField = errors.New("missing required field")
	// ErrMalformedShape a value is not of the expected shape or kind
	ErrMalformedShape = errors.New("malformed shape")
	// ErrMissingObjectType list or object property declared without objectType
	ErrMissingObjectType = errors.New("missing objectType")
	// ErrMissingPrimaryKey declared primary key names no property
	ErrMissingPrimaryKey = errors.New("missing primary key property")
	// ErrDuplicateProperty property name declared twice in one object schema
	ErrDuplicateProperty = errors.New("duplicate property")
)

// SchemaError is returned for every invalid schema definition. Message is
// meant to be shown to the author of the definition as is.
type SchemaError struct {
	// ObjectType owning object schema, empty when not yet known
	ObjectType string
	// Property offending property, if any
	Property string
	// Position 1-based index of the definition in the schema, 0 when unknown
	Position int
	Message  string
	// Kind is one of the Err* sentinels
	Kind error
	Err  error
}

func (e *SchemaError) Error() string {
	switch {
	case e.ObjectType != "" && e.Property != "":
		return fmt.Sprintf("%s (property '%s.%s')", e.Message, e.ObjectType, e.Property)
	case e.ObjectType != "":
		return fmt.Sprintf("%s (object type '%s')", e.Message, e.ObjectType)
	case e.Property != "":
		return fmt.Sprintf("%s (property '%s')", e.Message, e.Property)
	case e.Position > 0:
		return fmt.Sprintf("%s (object schema #%d)", e.Message, e.Position)
	}
	return e.Message
}

func (e *SchemaError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newError(kind error, format string, args ...interface{}) *SchemaError {
	return &SchemaError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// asSchemaError converts errors from the dynamic runtime into a SchemaError
func asSchemaError(err error) *SchemaError {
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr
	}

	kind := ErrMalformedShape
	var typeErr *dynamic.TypeError
	if errors.As(err, &typeErr) && typeErr.Missing() {
		kind = ErrMissingField
	}
	return &SchemaError{Kind: kind, Message: err.Error(), Err: err}
}

func withProperty(err error, property string) error {
	schemaErr := asSchemaError(err)
	if schemaErr.Property == "" {
		schemaErr.Property = property
	}
	return schemaErr
}

func withObjectType(err error, objectType string) error {
	schemaErr := asSchemaError(err)
	if schemaErr.ObjectType == "" {
		schemaErr.ObjectType = objectType
	}
	return schemaErr
}

func withPosition(err error, position int) error {
	schemaErr := asSchemaError(err)
	if schemaErr.Position == 0 {
		schemaErr.Position = position
	}
	return schemaErr
}
