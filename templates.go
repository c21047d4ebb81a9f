package pagewrap

import (
	"io/fs"

	"github.com/goliatone/go-pagewrap/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in HTML document layout so callers can
// reuse or extend it without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
