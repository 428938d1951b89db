package dynamic

// ValidatedToString requires v to be a string; name is used as error context
func ValidatedToString(v any, name string) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", typeError(name, "string", v)
}

// ValidatedToBoolean requires v to be a boolean
func ValidatedToBoolean(v any, name string) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, typeError(name, "boolean", v)
}

// ValidatedToObject requires v to be an object
func ValidatedToObject(v any, name string) (Object, error) {
	if obj, ok := AsObject(v); ok {
		return obj, nil
	}
	return nil, typeError(name, "object", v)
}

// ValidatedGetString reads a required string property
func ValidatedGetString(obj Object, name string) (string, error) {
	return ValidatedToString(GetProperty(obj, name), name)
}

// ValidatedGetObject reads a required object property, message overrides the error text
func ValidatedGetObject(obj Object, name string, message string) (Object, error) {
	v := GetProperty(obj, name)
	if o, ok := AsObject(v); ok {
		return o, nil
	}
	err := typeError(name, "object", v)
	err.Message = message
	return nil, err
}

// ValidatedGetLength returns the length of an array value
func ValidatedGetLength(v any, name string) (int, error) {
	arr, ok := AsArray(v)
	if !ok {
		return 0, typeError(name, "array", v)
	}
	return len(arr), nil
}

// ValidatedGetIndex returns the element at index i of an array value
func ValidatedGetIndex(v any, i int) (any, error) {
	arr, ok := AsArray(v)
	if !ok {
		return nil, typeError("", "array", v)
	}
	if i < 0 || i >= len(arr) {
		return Undefined, nil
	}
	return arr[i], nil
}
