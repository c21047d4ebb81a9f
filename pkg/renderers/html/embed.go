package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// DocumentTemplate is the template name used by Document.
const DocumentTemplate = "templates/document.tmpl"

// TemplatesFS exposes the embedded layout bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
