package wrapper

import (
	"fmt"

	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
	"github.com/goliatone/go-pagewrap/pkg/store"
)

// Kind is the schema type handled by this component.
const Kind = "pagination-wrapper"

// Component is one mounted pagination wrapper. The host owns the store and
// calls OnAttach once, OnConfigChange after every configuration update and
// Render on every pass.
type Component struct {
	defaults Defaults
	store    Store
	resolver *Resolver
	config   Config
}

// New builds a component bound to s. The store is never replaced.
func New(s Store, d Defaults) *Component {
	return &Component{
		defaults: d,
		store:    s,
		resolver: NewResolver(s),
	}
}

// OnAttach implements render.Attacher.
func (c *Component) OnAttach(node schema.Node) {
	c.config = ConfigFromNode(node, c.defaults)
	c.resolver.OnAttach(c.config)
}

// OnConfigChange implements render.Updater.
func (c *Component) OnConfigChange(prev, next schema.Node) {
	prevCfg := ConfigFromNode(prev, c.defaults)
	c.config = ConfigFromNode(next, c.defaults)
	c.resolver.OnConfigChange(prevCfg, c.config)
}

// Config returns the configuration of the current pass.
func (c *Component) Config() Config {
	return c.config
}

// Render implements render.Component.
func (c *Component) Render(host render.Host, _ schema.Node) (*render.Node, error) {
	return Compose(c.config, c.store, host)
}

// Option customises the registered definition.
type Option func(*Defaults)

// WithDefaults replaces the defaults applied to omitted properties.
func WithDefaults(d Defaults) Option {
	return func(target *Defaults) {
		*target = d
	}
}

// WithMaxButtonsDefault overrides only the maxButtons default.
func WithMaxButtonsDefault(n int) Option {
	return func(target *Defaults) {
		target.MaxButtons = n
	}
}

// Factory returns the render.Factory building components with d.
func Factory(d Defaults) render.Factory {
	return func(_ schema.Node, s any) (render.Component, error) {
		st, ok := s.(Store)
		if !ok {
			return nil, fmt.Errorf("%w: %s requires %s, got %T", render.ErrStoreMismatch, Kind, store.KindPagination, s)
		}
		return New(st, d), nil
	}
}

// Register binds the component to reg under Kind, declaring the pagination
// store kind.
func Register(reg *render.Registry, options ...Option) error {
	defaults := ComponentDefaults()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&defaults)
	}
	return reg.Register(render.Definition{
		Kind:      Kind,
		StoreKind: store.KindPagination,
		Factory:   Factory(defaults),
	})
}

var (
	_ render.Component = (*Component)(nil)
	_ render.Attacher  = (*Component)(nil)
	_ render.Updater   = (*Component)(nil)
	_ Store            = (*store.Pagination)(nil)
)
