// Package pagewrap renders schema documents built around pagination wrappers.
// The root package re-exports the common entry points; the sub packages hold
// the components, the render engine and the output renderers.
package pagewrap

import (
	"context"

	"github.com/goliatone/go-pagewrap/pkg/orchestrator"
	"github.com/goliatone/go-pagewrap/pkg/schema"
)

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the schema and data documents and renders the requested
// page as an HTML fragment. An empty dataPath renders without ambient data.
func GenerateHTML(ctx context.Context, schemaPath, dataPath string, page int, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		SchemaPath: schemaPath,
		DataPath:   dataPath,
		Page:       page,
		Format:     orchestrator.FormatHTML,
	})
}

// GenerateHTMLFromSchema renders an already parsed schema, bypassing the
// loader.
func GenerateHTMLFromSchema(ctx context.Context, root schema.Node, data map[string]any, page int, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Schema: &root,
		Data:   data,
		Page:   page,
		Format: orchestrator.FormatHTML,
	})
}
