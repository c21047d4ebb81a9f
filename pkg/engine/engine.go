package engine

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/goliatone/go-pagewrap/pkg/components/basic"
	"github.com/goliatone/go-pagewrap/pkg/components/pager"
	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
	"github.com/goliatone/go-pagewrap/pkg/store"
	"github.com/goliatone/go-pagewrap/pkg/wrapper"
)

// RootPath is the region path of the root node.
const RootPath = "root"

// ErrUnknownAction is returned by Dispatch for ids not bound during the last
// pass.
var ErrUnknownAction = errors.New("engine: unknown action")

type dataSetter interface {
	SetData(map[string]any)
}

type instance struct {
	kind      string
	node      schema.Node
	component render.Component
	store     any
	pass      uint64
}

// Engine renders schema trees. Passes and dispatches are serialised, so one
// engine may be shared by concurrent callers.
type Engine struct {
	mu         sync.Mutex
	registry   *render.Registry
	stores     *store.Registry
	translator render.Translator
	onMissing  render.MissingTranslationHandler
	locale     string
	logger     zerolog.Logger
	metrics    Recorder

	pass      uint64
	instances map[string]*instance
	actions   map[string]func(int)
}

// New creates an engine over registry.
func New(registry *render.Registry, options ...Option) *Engine {
	e := &Engine{
		registry:   registry,
		translator: render.DefaultMessages,
		logger:     zerolog.Nop(),
		metrics:    nopRecorder{},
		instances:  make(map[string]*instance),
		actions:    make(map[string]func(int)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.stores == nil {
		e.stores = store.NewDefaultRegistry(store.WithLogger(e.logger))
	}
	return e
}

// NewDefaultRegistry returns a registry holding the pagination wrapper, the
// pager control and the basic components.
func NewDefaultRegistry(options ...wrapper.Option) (*render.Registry, error) {
	reg := render.NewRegistry()
	if err := wrapper.Register(reg, options...); err != nil {
		return nil, err
	}
	if err := pager.Register(reg); err != nil {
		return nil, err
	}
	if err := basic.Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Render performs one pass over root with data as ambient data.
func (e *Engine) Render(ctx context.Context, root schema.Node, data map[string]any) (*render.Node, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.registry == nil {
		return nil, fmt.Errorf("engine: registry is nil")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.pass++
	e.actions = make(map[string]func(int))

	p := &pass{ctx: ctx, engine: e, id: e.pass}
	out, err := p.render(RootPath, root, data, nil)
	if err != nil {
		e.metrics.Error()
		e.logger.Error().Err(err).Uint64("pass", p.id).Msg("render failed")
		return nil, err
	}

	e.release(p.id)
	e.metrics.Pass()
	e.logger.Debug().
		Uint64("pass", p.id).
		Int("instances", len(e.instances)).
		Int("actions", len(e.actions)).
		Msg("render pass complete")
	return out, nil
}

// Dispatch invokes the action bound under id during the last pass. The caller
// re-renders to observe the effect.
func (e *Engine) Dispatch(ctx context.Context, id string, page int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	fn, ok := e.actions[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, id)
	}
	fn(page)
	e.metrics.Dispatch()
	e.logger.Debug().Str("action", id).Int("page", page).Msg("action dispatched")
	return nil
}

// Actions lists the action ids bound during the last pass.
func (e *Engine) Actions() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := lo.Keys(e.actions)
	sort.Strings(ids)
	return ids
}

// Mounted lists the region paths of live instances.
func (e *Engine) Mounted() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	paths := lo.Keys(e.instances)
	sort.Strings(paths)
	return paths
}

// Store returns the store of the instance mounted at path, if any.
func (e *Engine) Store(path string) (any, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	inst, ok := e.instances[path]
	if !ok || inst.store == nil {
		return nil, false
	}
	return inst.store, true
}

func (e *Engine) release(id uint64) {
	for path, inst := range e.instances {
		if inst.pass == id {
			continue
		}
		delete(e.instances, path)
		e.metrics.Unmount(inst.kind)
		e.logger.Debug().Str("path", path).Str("kind", inst.kind).Msg("instance released")
	}
}

func (e *Engine) translate(key string) string {
	return render.Translate(e.translator, e.onMissing, e.locale, key)
}

type pass struct {
	ctx    context.Context
	engine *Engine
	id     uint64
}

func (p *pass) render(path string, node schema.Node, data map[string]any, overrides render.Overrides) (*render.Node, error) {
	if err := p.ctx.Err(); err != nil {
		return nil, err
	}

	if node.Type == schema.KindFragment {
		out := render.Group()
		for i, child := range node.Children {
			rendered, err := p.render(path+"/"+strconv.Itoa(i), child, data, overrides)
			if err != nil {
				return nil, err
			}
			out.Append(rendered)
		}
		return out, nil
	}

	e := p.engine
	def, err := e.registry.Get(node.Type)
	if err != nil {
		return nil, fmt.Errorf("engine: %s: %w", path, err)
	}

	effective := node
	if len(overrides) > 0 {
		effective = node.WithProps(schema.Props(overrides))
	}

	inst, err := p.mount(path, def, effective, data)
	if err != nil {
		return nil, err
	}

	scope := &scope{pass: p, path: path, data: data}
	out, err := inst.component.Render(scope, effective)
	if err != nil {
		return nil, err
	}
	if out != nil && out.Kind == "" {
		out.Mark(def.Kind, effective.Props)
	}
	return out, nil
}

func (p *pass) mount(path string, def render.Definition, node schema.Node, data map[string]any) (*instance, error) {
	e := p.engine

	inst, ok := e.instances[path]
	if ok && inst.kind == def.Kind {
		if setter, ok := inst.store.(dataSetter); ok {
			setter.SetData(data)
		}
		if updater, ok := inst.component.(render.Updater); ok {
			updater.OnConfigChange(inst.node, node)
		}
		inst.node = node
		inst.pass = p.id
		return inst, nil
	}
	if ok {
		e.metrics.Unmount(inst.kind)
	}

	var st any
	if def.StoreKind != "" {
		created, err := e.stores.New(def.StoreKind)
		if err != nil {
			return nil, fmt.Errorf("engine: %s: %w", path, err)
		}
		st = created
	}

	component, err := def.Factory(node, st)
	if err != nil {
		return nil, fmt.Errorf("engine: %s: %w", path, err)
	}

	inst = &instance{kind: def.Kind, node: node, component: component, store: st, pass: p.id}
	if setter, ok := st.(dataSetter); ok {
		setter.SetData(data)
	}
	if attacher, ok := component.(render.Attacher); ok {
		attacher.OnAttach(node)
	}
	e.instances[path] = inst
	e.metrics.Mount(def.Kind)
	e.logger.Debug().Str("path", path).Str("kind", def.Kind).Msg("instance attached")
	return inst, nil
}

// scope is the render.Host handed to one component instance.
type scope struct {
	pass  *pass
	path  string
	data  map[string]any
	binds int
}

func (s *scope) Render(region string, node schema.Node, overrides render.Overrides) (*render.Node, error) {
	data := s.data
	var rest render.Overrides
	if len(overrides) > 0 {
		rest = maps.Clone(overrides)
		if scoped, ok := rest[render.OverrideData]; ok {
			delete(rest, render.OverrideData)
			if m, ok := scoped.(map[string]any); ok {
				data = m
			}
		}
	}
	return s.pass.render(s.path+"/"+region, node, data, rest)
}

func (s *scope) Translate(key string) string {
	return s.pass.engine.translate(key)
}

func (s *scope) Data() map[string]any {
	return s.data
}

func (s *scope) Bind(fn func(int)) string {
	if fn == nil {
		return ""
	}
	id := s.path
	if s.binds > 0 {
		id += "#" + strconv.Itoa(s.binds)
	}
	s.binds++
	s.pass.engine.actions[id] = fn
	return id
}

var _ render.Host = (*scope)(nil)
