package loader

import (
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/objschema/objschema/dynamic"
)

func decodeTOML(data []byte) (interface{}, error) {
	var doc map[string]interface{}
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, err
	}
	return fromTOML(doc, nil, keyOrder(md, doc)), nil
}

// keyOrder maps every key path to its position in the document. The decoded
// maps lose document order, MetaData keeps it. Paths carry the element index
// under each array of tables, so every element keeps its own key order.
func keyOrder(md toml.MetaData, doc map[string]interface{}) map[string]int {
	var (
		order   = map[string]int{}
		headers = map[string]int{}
		spans   = map[string]*inlineSpan{}
	)

	for idx, key := range md.Keys() {
		var indexed []string
		for i, segment := range key {
			indexed = append(indexed, segment)
			path := keyPath(indexed)
			last := i == len(key)-1

			switch elems := lookupTOML(doc, indexed).(type) {
			case []map[string]interface{}:
				// [[table]], each header starts a new element
				if last {
					headers[path]++
				}
				indexed = append(indexed, strconv.Itoa(headers[path]-1))
			case []interface{}:
				// inline array, keys of its tables follow the array key contiguously
				if last {
					spans[path] = newInlineSpan(elems)
				} else if span, ok := spans[path]; ok {
					indexed = append(indexed, strconv.Itoa(span.next()))
				}
			}
		}

		path := keyPath(indexed)
		if _, ok := order[path]; !ok {
			order[path] = idx
		}
	}
	return order
}

// inlineSpan assigns the keys listed after an inline array of tables to its elements
type inlineSpan struct {
	sizes []int
	elem  int
	used  int
}

func newInlineSpan(elems []interface{}) *inlineSpan {
	span := &inlineSpan{sizes: make([]int, len(elems))}
	for i, elem := range elems {
		span.sizes[i] = countKeys(elem)
	}
	return span
}

func (s *inlineSpan) next() int {
	for s.elem < len(s.sizes)-1 && s.used >= s.sizes[s.elem] {
		s.elem++
		s.used = 0
	}
	s.used++
	return s.elem
}

// countKeys number of keys MetaData lists for an inline value
func countKeys(value interface{}) int {
	switch v := value.(type) {
	case map[string]interface{}:
		n := 0
		for _, item := range v {
			n += 1 + countKeys(item)
		}
		return n
	case []interface{}:
		n := 0
		for _, item := range v {
			n += countKeys(item)
		}
		return n
	}
	return 0
}

func lookupTOML(value interface{}, path []string) interface{} {
	for _, segment := range path {
		switch v := value.(type) {
		case map[string]interface{}:
			value = v[segment]
		case []map[string]interface{}:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(v) {
				return nil
			}
			value = v[i]
		case []interface{}:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(v) {
				return nil
			}
			value = v[i]
		default:
			return nil
		}
	}
	return value
}

func keyPath(key []string) string {
	return strings.Join(key, "\x00")
}

func childPath(path []string, segment string) []string {
	return append(append(make([]string, 0, len(path)+1), path...), segment)
}

func fromTOML(value interface{}, path []string, order map[string]int) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}

		position := func(k string) (int, bool) {
			idx, ok := order[keyPath(childPath(path, k))]
			return idx, ok
		}
		sort.Slice(keys, func(i, j int) bool {
			pi, oki := position(keys[i])
			pj, okj := position(keys[j])
			switch {
			case oki && okj:
				return pi < pj
			case oki != okj:
				return oki
			}
			return keys[i] < keys[j]
		})

		m := dynamic.NewMap()
		for _, k := range keys {
			m.Set(k, fromTOML(v[k], childPath(path, k), order))
		}
		return m
	case []map[string]interface{}:
		arr := make([]interface{}, len(v))
		for i, item := range v {
			arr[i] = fromTOML(item, childPath(path, strconv.Itoa(i)), order)
		}
		return arr
	case []interface{}:
		arr := make([]interface{}, len(v))
		for i, item := range v {
			arr[i] = fromTOML(item, childPath(path, strconv.Itoa(i)), order)
		}
		return arr
	case int64:
		return int(v)
	default:
		return v
	}
}
