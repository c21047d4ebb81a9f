package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Definition binds a component kind to its factory and the store kind the host
// must create for every instance. An empty StoreKind means the component is
// stateless from the host's point of view.
type Definition struct {
	Kind      string
	StoreKind string
	Factory   Factory
}

// Registry stores component definitions by kind, providing discovery and
// duplication safeguards. It is populated at process start and read by the
// engine at dispatch time.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]Definition
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]Definition),
	}
}

// Register adds a definition by its Kind. Duplicate kinds return an error.
func (r *Registry) Register(def Definition) error {
	kind := normalize(def.Kind)
	if kind == "" {
		return fmt.Errorf("render: component kind is required")
	}
	if def.Factory == nil {
		return fmt.Errorf("render: factory for %q is nil", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[kind]; exists {
		return fmt.Errorf("render: component %q already registered", kind)
	}

	def.Kind = kind
	def.StoreKind = strings.TrimSpace(def.StoreKind)
	r.definitions[kind] = def
	return nil
}

// MustRegister panics on registration failure. Useful for start-up wiring.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Get retrieves a definition by kind.
func (r *Registry) Get(kind string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.definitions[normalize(kind)]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return def, nil
}

// List returns a sorted list of registered kinds.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.definitions))
	for kind := range r.definitions {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Has reports whether a kind is registered.
func (r *Registry) Has(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.definitions[normalize(kind)]
	return ok
}

func normalize(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}
