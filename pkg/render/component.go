package render

import "github.com/goliatone/go-pagewrap/pkg/schema"

// OverrideData is the override key replacing the ambient data of the subtree
// being rendered. Every other override key is merged over the node props.
const OverrideData = "data"

// Overrides are the props a parent forces onto a nested render call.
type Overrides map[string]any

// Host is the capability a component renders nested content through. It is
// scoped to the component instance being rendered.
type Host interface {
	// Render resolves node (or a fragment) in the named region of the current
	// component and returns its rendered tree.
	Render(region string, node schema.Node, overrides Overrides) (*Node, error)
	// Translate resolves a message key for the active locale.
	Translate(key string) string
	// Data returns the ambient data visible to the current component.
	Data() map[string]any
	// Bind registers a page-change style callback and returns the action id
	// that triggers it.
	Bind(fn func(int)) string
}

// Component renders one node kind. node carries the effective props for the
// current pass, overrides included.
type Component interface {
	Render(host Host, node schema.Node) (*Node, error)
}

// Attacher is implemented by components that need to synchronise state when
// they are mounted.
type Attacher interface {
	OnAttach(node schema.Node)
}

// Updater is implemented by components that react to configuration changes
// between two render passes of the same instance.
type Updater interface {
	OnConfigChange(prev, next schema.Node)
}

// ComponentFunc adapts a function into a stateless Component.
type ComponentFunc func(host Host, node schema.Node) (*Node, error)

// Render implements Component.
func (f ComponentFunc) Render(host Host, node schema.Node) (*Node, error) {
	return f(host, node)
}

// Factory creates a component instance. store is the instance created for the
// definition's StoreKind, or nil when the definition declares none.
type Factory func(node schema.Node, store any) (Component, error)

// Stateless wraps a ComponentFunc into a Factory sharing the same function for
// every instance.
func Stateless(fn ComponentFunc) Factory {
	return func(schema.Node, any) (Component, error) {
		return fn, nil
	}
}
