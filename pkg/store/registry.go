package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-pagewrap/pkg/render"
)

// Factory creates a fresh store instance.
type Factory func() any

// Registry maps store kinds to factories so hosts can create the store a
// component definition declares.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// NewDefaultRegistry returns a registry with the built-in store kinds.
func NewDefaultRegistry(options ...Option) *Registry {
	reg := NewRegistry()
	reg.MustRegister(KindPagination, func() any {
		return NewPagination(options...)
	})
	return reg
}

// Register binds kind to factory. Existing entries are replaced.
func (r *Registry) Register(kind string, factory Factory) error {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return fmt.Errorf("store: kind is required")
	}
	if factory == nil {
		return fmt.Errorf("store: factory for %q is nil", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[kind] = factory
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(kind string, factory Factory) {
	if err := r.Register(kind, factory); err != nil {
		panic(err)
	}
}

// New creates a store of the requested kind.
func (r *Registry) New(kind string) (any, error) {
	r.mu.RLock()
	factory, ok := r.factories[strings.TrimSpace(kind)]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", render.ErrUnknownStoreKind, kind)
	}
	return factory(), nil
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
