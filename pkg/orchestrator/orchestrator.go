package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/goliatone/go-pagewrap/pkg/components/pager"
	"github.com/goliatone/go-pagewrap/pkg/engine"
	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/renderers/html"
	"github.com/goliatone/go-pagewrap/pkg/renderers/text"
	"github.com/goliatone/go-pagewrap/pkg/schema"
)

// Output formats.
const (
	FormatHTML = "html"
	FormatText = "text"
)

const defaultTitle = "pagewrap"

// Engine is the subset of the render engine the orchestrator drives.
type Engine interface {
	Render(ctx context.Context, root schema.Node, data map[string]any) (*render.Node, error)
	Dispatch(ctx context.Context, id string, page int) error
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithEngine injects the render engine.
func WithEngine(e Engine) Option {
	return func(o *Orchestrator) {
		o.engine = e
	}
}

// WithHTMLRenderer injects the HTML serializer.
func WithHTMLRenderer(r *html.Renderer) Option {
	return func(o *Orchestrator) {
		o.html = r
	}
}

// WithTextRenderer injects the text serializer.
func WithTextRenderer(r *text.Renderer) Option {
	return func(o *Orchestrator) {
		o.text = r
	}
}

// WithDefaultFormat overrides the format used when a request omits one.
func WithDefaultFormat(format string) Option {
	return func(o *Orchestrator) {
		o.defaultFormat = format
	}
}

// WithTransformer registers a Transformer applied to the data of every
// request before rendering.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		if t != nil {
			o.transformers = append(o.transformers, t)
		}
	}
}

// Orchestrator coordinates the pipeline from schema and data documents to
// rendered output. Missing dependencies are built with their defaults.
type Orchestrator struct {
	engine        Engine
	html          *html.Renderer
	text          *text.Renderer
	defaultFormat string
	transformers  []Transformer
	initialiseErr error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultFormat: FormatHTML}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// SchemaPath locates the schema document. Optional when Schema is set.
	SchemaPath string
	Schema     *schema.Node

	// DataPath locates the data document. Optional when Data is set; both
	// empty renders with no ambient data.
	DataPath string
	Data     map[string]any

	// Page selects a page of the first bound pager before output is produced.
	// Values below 2 select the first page.
	Page int

	// Format is FormatHTML or FormatText; empty uses the default format.
	Format string

	// Document wraps HTML output in the page layout.
	Document bool
	Title    string
}

// Generate executes the load → transform → render → serialize sequence.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	root, err := resolveSchema(req)
	if err != nil {
		return nil, err
	}
	data, err := resolveData(req)
	if err != nil {
		return nil, err
	}
	for _, t := range o.transformers {
		if err := t.Transform(ctx, data); err != nil {
			return nil, fmt.Errorf("orchestrator: transform data: %w", err)
		}
	}

	tree, err := o.engine.Render(ctx, root, data)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render: %w", err)
	}
	// Stores outlive a request, so the first page is selected explicitly too.
	controls := pager.Controls(tree)
	switch {
	case len(controls) > 0:
		page := max(req.Page, 1)
		if controls[0].Active != page {
			if err := o.engine.Dispatch(ctx, controls[0].Action, page); err != nil {
				return nil, fmt.Errorf("orchestrator: switch page: %w", err)
			}
			if tree, err = o.engine.Render(ctx, root, data); err != nil {
				return nil, fmt.Errorf("orchestrator: render: %w", err)
			}
		}
	case req.Page > 1:
		return nil, fmt.Errorf("orchestrator: page %d requested but no pager is bound", req.Page)
	}

	return o.serialize(req, tree)
}

func (o *Orchestrator) serialize(req Request, tree *render.Node) ([]byte, error) {
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = o.defaultFormat
	}

	switch format {
	case FormatText:
		return []byte(o.text.Render(tree)), nil
	case FormatHTML:
		if !req.Document {
			out, err := o.html.Render(tree)
			if err != nil {
				return nil, fmt.Errorf("orchestrator: render output: %w", err)
			}
			return []byte(out), nil
		}
		title := req.Title
		if title == "" {
			title = defaultTitle
		}
		out, err := o.html.Document(title, tree)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: render output: %w", err)
		}
		return []byte(out), nil
	default:
		return nil, fmt.Errorf("orchestrator: unknown format %q", req.Format)
	}
}

func resolveSchema(req Request) (schema.Node, error) {
	if req.Schema != nil {
		return *req.Schema, nil
	}
	if req.SchemaPath == "" {
		return schema.Node{}, errors.New("orchestrator: schema or schema path is required")
	}
	root, err := schema.LoadFile(req.SchemaPath)
	if err != nil {
		return schema.Node{}, fmt.Errorf("orchestrator: load schema: %w", err)
	}
	return root, nil
}

func resolveData(req Request) (map[string]any, error) {
	if req.Data != nil {
		return maps.Clone(req.Data), nil
	}
	if req.DataPath == "" {
		return map[string]any{}, nil
	}
	data, err := schema.LoadData(req.DataPath)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load data: %w", err)
	}
	return data, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.engine == nil {
		reg, err := engine.NewDefaultRegistry()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default registry: %w", err)
			return
		}
		o.engine = engine.New(reg)
	}
	if o.html == nil {
		r, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default html renderer: %w", err)
			return
		}
		o.html = r
	}
	if o.text == nil {
		o.text = text.New()
	}
	if o.defaultFormat == "" {
		o.defaultFormat = FormatHTML
	}
}
