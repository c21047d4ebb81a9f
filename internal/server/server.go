// Package server is the fasthttp preview server for paginated schemas.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/goliatone/go-pagewrap/pkg/components/pager"
	"github.com/goliatone/go-pagewrap/pkg/engine"
	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
)

// Engine is the subset of the render engine the server uses.
type Engine interface {
	Render(ctx context.Context, root schema.Node, data map[string]any) (*render.Node, error)
	Dispatch(ctx context.Context, id string, page int) error
}

// Documenter wraps a rendered tree into a full page.
type Documenter interface {
	Document(title string, node *render.Node) (string, error)
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithGatherer sets the metrics source exposed on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		if g != nil {
			s.gatherer = g
		}
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(s *Server) {
		s.title = title
	}
}

// WithTimeouts sets the read and write timeouts.
func WithTimeouts(read, write time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = read
		s.writeTimeout = write
	}
}

// Server renders one schema against one data document per request.
type Server struct {
	engine       Engine
	documents    Documenter
	root         schema.Node
	data         map[string]any
	title        string
	logger       zerolog.Logger
	gatherer     prometheus.Gatherer
	readTimeout  time.Duration
	writeTimeout time.Duration
	metrics      fasthttp.RequestHandler
	// base is handed to the engine; fasthttp request contexts are only usable
	// while attached to a running server.
	base context.Context
}

// New builds a server.
func New(e Engine, documents Documenter, root schema.Node, data map[string]any, options ...Option) *Server {
	s := &Server{
		engine:       e,
		documents:    documents,
		root:         root,
		data:         data,
		title:        "pagewrap",
		logger:       zerolog.Nop(),
		gatherer:     prometheus.DefaultGatherer,
		readTimeout:  10 * time.Second,
		writeTimeout: 10 * time.Second,
		base:         context.Background(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	s.metrics = fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return s
}

// Handler routes requests.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/":
			s.page(ctx)
		case "/healthz":
			s.healthz(ctx)
		case "/metrics":
			s.metrics(ctx)
		default:
			ctx.Error("not found", fasthttp.StatusNotFound)
		}
	}
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &fasthttp.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		Name:         "pagewrap",
	}

	s.base = ctx

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(addr)
	}()
	s.logger.Info().Str("addr", addr).Msg("preview server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) page(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() && !ctx.IsHead() {
		ctx.Error("method not allowed", fasthttp.StatusMethodNotAllowed)
		return
	}

	args := ctx.QueryArgs()
	if action := string(args.Peek(pager.ActionParam)); action != "" {
		page, err := args.GetUint(pager.PageParam)
		if err != nil {
			ctx.Error("invalid page", fasthttp.StatusBadRequest)
			return
		}
		if err := s.engine.Dispatch(s.base, action, page); err != nil {
			status := fasthttp.StatusInternalServerError
			if errors.Is(err, engine.ErrUnknownAction) {
				status = fasthttp.StatusBadRequest
			}
			s.logger.Warn().Err(err).Str("action", action).Msg("dispatch failed")
			ctx.Error(err.Error(), status)
			return
		}
	}

	tree, err := s.engine.Render(s.base, s.root, s.data)
	if err != nil {
		s.logger.Error().Err(err).Msg("render failed")
		ctx.Error("render failed", fasthttp.StatusInternalServerError)
		return
	}
	doc, err := s.documents.Document(s.title, tree)
	if err != nil {
		s.logger.Error().Err(err).Msg("document failed")
		ctx.Error("render failed", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("text/html; charset=utf-8")
	ctx.SetStatusCode(fasthttp.StatusOK)
	_, _ = ctx.WriteString(doc)
}

func (s *Server) healthz(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	_, _ = ctx.WriteString("{\"status\":\"ok\"}")
}
