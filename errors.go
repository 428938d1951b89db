package objschema

import (
	"errors"

	"github.com/objschema/objschema/schema"
)

var (
	// ErrUnknownObjectType object type is not declared in the schema
	ErrUnknownObjectType = errors.New("unknown object type")

	ErrMissingField      = schema.ErrMissingField
	ErrMalformedShape    = schema.ErrMalformedShape
	ErrMissingObjectType = schema.ErrMissingObjectType
	ErrMissingPrimaryKey = schema.ErrMissingPrimaryKey
	ErrDuplicateProperty = schema.ErrDuplicateProperty
)
