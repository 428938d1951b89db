package dynamic

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a YAML (or JSON) document into host values. Mappings
// become *Map with keys in document order, sequences become []any.
func DecodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return Undefined, nil
	}
	return FromYAMLNode(&doc)
}

// FromYAMLNode converts a yaml.v3 node tree into host values
func FromYAMLNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Undefined, nil
		}
		return FromYAMLNode(node.Content[0])
	case yaml.MappingNode:
		return fromYAMLMapping(node)
	case yaml.SequenceNode:
		arr := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := FromYAMLNode(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		return arr, nil
	case yaml.AliasNode:
		return FromYAMLNode(node.Alias)
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("line %d: unsupported yaml node kind %v", node.Line, node.Kind)
}

// fromYAMLMapping converts a mapping, expanding `<<` merge keys in place.
// Explicit keys win over merged ones, earlier merge sources over later ones.
func fromYAMLMapping(node *yaml.Node) (any, error) {
	explicit := map[string]bool{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if key := node.Content[i]; !isMergeKey(key) {
			explicit[key.Value] = true
		}
	}

	m := NewMap()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, valueNode := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
		}

		if isMergeKey(key) {
			sources := []*yaml.Node{valueNode}
			if resolveAlias(valueNode).Kind == yaml.SequenceNode {
				sources = resolveAlias(valueNode).Content
			}

			for _, source := range sources {
				if resolveAlias(source).Kind != yaml.MappingNode {
					return nil, fmt.Errorf("line %d: merge key must reference a mapping", source.Line)
				}
				merged, err := FromYAMLNode(source)
				if err != nil {
					return nil, err
				}
				for _, name := range merged.(*Map).Keys() {
					if _, ok := m.Get(name); ok || explicit[name] {
						continue
					}
					value, _ := merged.(*Map).Get(name)
					m.Set(name, value)
				}
			}
			continue
		}

		value, err := FromYAMLNode(valueNode)
		if err != nil {
			return nil, err
		}
		m.Set(key.Value, value)
	}
	return m, nil
}

func isMergeKey(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.Value == "<<" && key.ShortTag() == "!!merge"
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
