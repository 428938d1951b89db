package dynamic

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Map is an Object that keeps properties in insertion order, the way a
// host object enumerates its own keys.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map
func NewMap() *Map {
	return &Map{values: map[string]any{}}
}

// MapOf builds a Map from alternating keys and values, e.g. MapOf("type", "int", "indexed", true)
func MapOf(pairs ...any) *Map {
	if len(pairs)%2 != 0 {
		panic("dynamic.MapOf: odd number of arguments")
	}

	m := NewMap()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("dynamic.MapOf: key %v is not a string", pairs[i]))
		}
		m.Set(key, pairs[i+1])
	}
	return m
}

func (m *Map) Get(name string) (any, bool) {
	v, ok := m.values[name]
	return v, ok
}

func (m *Map) Set(name string, value any) {
	if m.values == nil {
		m.values = map[string]any{}
	}
	if _, ok := m.values[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.values[name] = value
}

// Delete removes a property, keeping the order of the rest
func (m *Map) Delete(name string) {
	if _, ok := m.values[name]; !ok {
		return
	}
	delete(m.values, name)
	for i, k := range m.keys {
		if k == name {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

func (m *Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

func (m *Map) Len() int {
	return len(m.keys)
}

// MarshalJSON encodes the map as a JSON object in key order
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
