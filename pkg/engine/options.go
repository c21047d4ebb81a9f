package engine

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/store"
)

// Option customises an Engine.
type Option func(*Engine)

// WithStores sets the registry used to create per-instance stores.
func WithStores(stores *store.Registry) Option {
	return func(e *Engine) {
		if stores != nil {
			e.stores = stores
		}
	}
}

// WithTranslator sets the message source used by Host.Translate.
func WithTranslator(t render.Translator) Option {
	return func(e *Engine) {
		e.translator = t
	}
}

// WithLocale sets the active locale.
func WithLocale(locale string) Option {
	return func(e *Engine) {
		e.locale = locale
	}
}

// WithMissingTranslation sets the handler used when a key cannot be resolved.
func WithMissingTranslation(handler render.MissingTranslationHandler) Option {
	return func(e *Engine) {
		e.onMissing = handler
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Recorder receives lifecycle counts from the engine.
type Recorder interface {
	Pass()
	Mount(kind string)
	Unmount(kind string)
	Dispatch()
	Error()
}

type nopRecorder struct{}

func (nopRecorder) Pass()          {}
func (nopRecorder) Mount(string)   {}
func (nopRecorder) Unmount(string) {}
func (nopRecorder) Dispatch()      {}
func (nopRecorder) Error()         {}

// WithMetrics sets the recorder updated on every pass.
func WithMetrics(r Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.metrics = r
		}
	}
}
