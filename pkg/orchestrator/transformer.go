package orchestrator

import (
	"context"
	"fmt"
	"io/fs"
	"maps"

	"github.com/goliatone/go-pagewrap/pkg/schema"
)

// Transformer mutates the data document before it is rendered.
type Transformer interface {
	Transform(ctx context.Context, data map[string]any) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, data map[string]any) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, data map[string]any) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, data)
}

// OverlayTransformer copies the top level keys of a preset document over the
// data, replacing existing keys:
//
//	title: Orders
//	items: []
type OverlayTransformer struct {
	overlay map[string]any
}

// NewOverlayTransformer parses a JSON or YAML preset document.
func NewOverlayTransformer(raw []byte) (*OverlayTransformer, error) {
	overlay, err := schema.ParseData(raw, "overlay")
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse overlay: %w", err)
	}
	return &OverlayTransformer{overlay: overlay}, nil
}

// NewOverlayTransformerFromFS loads the preset document at path.
func NewOverlayTransformerFromFS(fsys fs.FS, path string) (*OverlayTransformer, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: read overlay %s: %w", path, err)
	}
	return NewOverlayTransformer(raw)
}

// Transform implements Transformer.
func (t *OverlayTransformer) Transform(_ context.Context, data map[string]any) error {
	if t == nil || data == nil {
		return nil
	}
	maps.Copy(data, t.overlay)
	return nil
}
