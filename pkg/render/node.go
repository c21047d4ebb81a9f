package render

import (
	"maps"
	"slices"
	"strings"
)

// Node is an element of the rendered tree. A Node with an empty Tag is a
// fragment: serializers emit its children without a wrapping element.
type Node struct {
	Tag      string
	Classes  []string
	Attrs    map[string]string
	Text     string
	// HTML holds markup that was already sanitized by the producing component.
	HTML     string
	Children []*Node

	// Kind and Props record the component and the props that produced the
	// node, when it was produced by a registered component.
	Kind  string
	Props map[string]any
}

// El builds an element node with the given tag, class list and children. Nil
// children are dropped.
func El(tag string, classes []string, children ...*Node) *Node {
	node := &Node{
		Tag:     tag,
		Classes: cleanClasses(classes),
	}
	node.Append(children...)
	return node
}

// Text builds a text-only element.
func Text(tag, text string, classes ...string) *Node {
	return &Node{
		Tag:     tag,
		Classes: cleanClasses(classes),
		Text:    text,
	}
}

// Group builds a fragment node.
func Group(children ...*Node) *Node {
	node := &Node{}
	node.Append(children...)
	return node
}

// Append adds non-nil children to the node.
func (n *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		if child == nil {
			continue
		}
		n.Children = append(n.Children, child)
	}
	return n
}

// SetAttr sets an attribute, initialising the attribute map when needed.
func (n *Node) SetAttr(name, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
	return n
}

// AddClass appends classes, skipping empty entries and duplicates.
func (n *Node) AddClass(classes ...string) *Node {
	for _, class := range cleanClasses(classes) {
		if !slices.Contains(n.Classes, class) {
			n.Classes = append(n.Classes, class)
		}
	}
	return n
}

// HasClass reports whether the node carries class.
func (n *Node) HasClass(class string) bool {
	return n != nil && slices.Contains(n.Classes, class)
}

// IsFragment reports whether the node has no element of its own.
func (n *Node) IsFragment() bool {
	return n != nil && n.Tag == "" && n.Text == "" && n.HTML == ""
}

// Mark records the producing component on the node and returns it.
func (n *Node) Mark(kind string, props map[string]any) *Node {
	if n == nil {
		return nil
	}
	n.Kind = kind
	n.Props = maps.Clone(props)
	return n
}

// Walk visits the node and its descendants depth first. Returning false from
// fn stops the walk below the current node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || fn == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// FindKind returns every node produced by the given component kind.
func (n *Node) FindKind(kind string) []*Node {
	var out []*Node
	n.Walk(func(node *Node) bool {
		if node.Kind == kind {
			out = append(out, node)
		}
		return true
	})
	return out
}

func cleanClasses(classes []string) []string {
	if len(classes) == 0 {
		return nil
	}
	out := make([]string, 0, len(classes))
	for _, class := range classes {
		for _, part := range strings.Fields(class) {
			if !slices.Contains(out, part) {
				out = append(out, part)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
