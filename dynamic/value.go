// Package dynamic models the host runtime values schema definitions are authored in:
// objects with enumerable properties, arrays, constructors carrying static
// properties, and handles that keep captured values alive.
package dynamic

import (
	"reflect"
	"sort"
	"time"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is returned for properties that are not present on an object.
var Undefined any = undefined{}

// IsUndefined reports whether v is Undefined
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// Object host object with enumerable properties
type Object interface {
	Get(name string) (any, bool)
	Set(name string, value any)
	// Keys returns property names in enumeration order
	Keys() []string
}

// goMap adapts a plain Go map, enumerating keys in sorted order
type goMap map[string]any

func (m goMap) Get(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

func (m goMap) Set(name string, value any) { m[name] = value }

func (m goMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsObject reports whether v can be used as an Object. Constructors are objects too.
func IsObject(v any) bool {
	_, ok := AsObject(v)
	return ok
}

// AsObject returns v as an Object
func AsObject(v any) (Object, bool) {
	switch o := v.(type) {
	case Object:
		if o == nil || reflect.ValueOf(o).Kind() == reflect.Ptr && reflect.ValueOf(o).IsNil() {
			return nil, false
		}
		return o, true
	case map[string]any:
		if o == nil {
			return nil, false
		}
		return goMap(o), true
	}
	return nil, false
}

// IsArray reports whether v is an array value. Byte slices are data, not arrays.
func IsArray(v any) bool {
	switch v.(type) {
	case nil, []byte:
		return false
	case []any:
		return true
	}
	kind := reflect.ValueOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// AsArray returns the elements of an array value
func AsArray(v any) ([]any, bool) {
	if !IsArray(v) {
		return nil, false
	}
	if arr, ok := v.([]any); ok {
		return arr, true
	}

	rv := reflect.ValueOf(v)
	arr := make([]any, rv.Len())
	for i := range arr {
		arr[i] = rv.Index(i).Interface()
	}
	return arr, true
}

// IsConstructor reports whether v is a callable constructor
func IsConstructor(v any) bool {
	_, ok := ToConstructor(v)
	return ok
}

// ToConstructor returns v as a Constructor
func ToConstructor(v any) (Constructor, bool) {
	c, ok := v.(Constructor)
	if !ok || c == nil || reflect.ValueOf(c).Kind() == reflect.Ptr && reflect.ValueOf(c).IsNil() {
		return nil, false
	}
	return c, true
}

// TypeOf names the kind of a host value, used in error messages.
func TypeOf(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	case time.Time:
		return "date"
	case []byte:
		return "data"
	case Constructor:
		return "function"
	default:
		if IsArray(v) {
			return "array"
		}
		if IsObject(v) {
			return "object"
		}
		return reflect.TypeOf(v).String()
	}
}

// GetProperty returns the named property or Undefined when it is absent
func GetProperty(obj Object, name string) any {
	if v, ok := obj.Get(name); ok {
		return v
	}
	return Undefined
}
