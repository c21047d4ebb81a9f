package schema

import (
	"maps"
	"strings"
)

// KindFragment marks a synthetic node grouping several sibling nodes. The
// engine renders its children in order without emitting a wrapper element.
const KindFragment = "fragment"

// Props is the free-form property bag attached to a node.
type Props map[string]any

// Node is a single entry of a schema document.
type Node struct {
	Type     string
	Props    Props
	Children []Node
}

// New builds a node of the given kind with a copy of props.
func New(kind string, props Props) Node {
	return Node{
		Type:  strings.TrimSpace(kind),
		Props: maps.Clone(props),
	}
}

// Fragment groups nodes so they can be rendered as a single region.
func Fragment(nodes ...Node) Node {
	return Node{
		Type:     KindFragment,
		Children: append([]Node(nil), nodes...),
	}
}

// IsZero reports whether the node carries no kind and no children.
func (n Node) IsZero() bool {
	return n.Type == "" && len(n.Children) == 0
}

// Prop returns the raw property value for key.
func (n Node) Prop(key string) (any, bool) {
	if n.Props == nil {
		return nil, false
	}
	value, ok := n.Props[key]
	return value, ok
}

// String returns the property as a trimmed string, or fallback when missing or
// not a string.
func (n Node) String(key, fallback string) string {
	if value, ok := n.Prop(key); ok {
		if str, ok := value.(string); ok {
			if trimmed := strings.TrimSpace(str); trimmed != "" {
				return trimmed
			}
		}
	}
	return fallback
}

// Int returns the property as an int, or fallback when missing or not numeric.
func (n Node) Int(key string, fallback int) int {
	if value, ok := n.Prop(key); ok {
		if out, ok := ToInt(value); ok {
			return out
		}
	}
	return fallback
}

// Bool returns the property as a bool, or fallback when missing.
func (n Node) Bool(key string, fallback bool) bool {
	if value, ok := n.Prop(key); ok {
		if out, ok := value.(bool); ok {
			return out
		}
	}
	return fallback
}

// WithProps returns a copy of the node with overrides merged on top of its own
// properties. The receiver is left untouched.
func (n Node) WithProps(overrides Props) Node {
	out := Node{
		Type:     n.Type,
		Props:    make(Props, len(n.Props)+len(overrides)),
		Children: n.Children,
	}
	maps.Copy(out.Props, n.Props)
	maps.Copy(out.Props, overrides)
	return out
}

// Collection decodes a body-like value (single object, list of objects or a
// ready-made Node) into nodes. Entries that are not objects are skipped.
func Collection(raw any) []Node {
	switch value := raw.(type) {
	case nil:
		return nil
	case Node:
		if value.IsZero() {
			return nil
		}
		return []Node{value}
	case []Node:
		if len(value) == 0 {
			return nil
		}
		return append([]Node(nil), value...)
	case []any:
		out := make([]Node, 0, len(value))
		for _, entry := range value {
			if node, ok := FromValue(entry); ok {
				out = append(out, node)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		if node, ok := FromValue(value); ok {
			return []Node{node}
		}
		return nil
	}
}

// FromValue converts a decoded JSON/YAML object into a Node.
func FromValue(raw any) (Node, bool) {
	switch value := raw.(type) {
	case Node:
		return value, !value.IsZero()
	case map[string]any:
		return fromMap(value), true
	case map[any]any:
		return fromMap(normalizeMap(value)), true
	default:
		return Node{}, false
	}
}

func fromMap(in map[string]any) Node {
	node := Node{Props: make(Props, len(in))}
	for key, value := range in {
		if key == "type" {
			if kind, ok := value.(string); ok {
				node.Type = strings.TrimSpace(kind)
			}
			continue
		}
		node.Props[key] = normalizeValue(value)
	}
	return node
}
