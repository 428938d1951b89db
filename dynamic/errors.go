package dynamic

import "fmt"

// TypeError a host value was not of the expected kind
type TypeError struct {
	Name     string
	Expected string
	Actual   string
	// Message replaces the generated message when set
	Message string
}

func (e *TypeError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Name == "" {
		return fmt.Sprintf("Value must be of type '%s', got %s", e.Expected, e.Actual)
	}
	if e.Actual == "undefined" {
		return fmt.Sprintf("Missing '%s' property, expected %s", e.Name, e.Expected)
	}
	return fmt.Sprintf("Property '%s' must be of type '%s', got %s", e.Name, e.Expected, e.Actual)
}

// Missing reports whether the value was absent rather than of the wrong kind
func (e *TypeError) Missing() bool {
	return e.Actual == "undefined"
}

func typeError(name, expected string, v any) *TypeError {
	return &TypeError{Name: name, Expected: expected, Actual: TypeOf(v)}
}
