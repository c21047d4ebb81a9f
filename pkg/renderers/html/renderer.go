// Package html serialises rendered trees into markup and wraps them in a
// pongo2 page layout.
package html

import (
	"bytes"
	"errors"
	"fmt"
	gohtml "html"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-pagewrap/pkg/render"
)

// ContentType is the media type produced by the renderer.
const ContentType = "text/html; charset=utf-8"

var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templateFS fs.FS
	lang       string
	stylesheet string

	manifest  *theme.Manifest
	selector  theme.ThemeSelector
	themeName string
	variant   string
}

// WithTemplatesFS supplies an alternate layout bundle. It must contain
// DocumentTemplate.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads the layout bundle from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithLang sets the document language attribute.
func WithLang(lang string) Option {
	return func(cfg *config) {
		cfg.lang = strings.TrimSpace(lang)
	}
}

// WithStylesheet appends extra CSS to the document head.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = css
	}
}

// Renderer turns render trees into HTML.
type Renderer struct {
	set        *pongo2.TemplateSet
	document   *pongo2.Template
	lang       string
	stylesheet string
	theme      themeStyle
}

// New constructs a renderer, compiling the document layout up front.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), lang: "en"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	set := pongo2.NewSet("pagewrap", pongo2.NewFSLoader(cfg.templateFS))
	document, err := set.FromFile(DocumentTemplate)
	if err != nil {
		return nil, fmt.Errorf("html renderer: load layout: %w", err)
	}

	style, err := cfg.resolveTheme()
	if err != nil {
		return nil, err
	}

	return &Renderer{
		set:        set,
		document:   document,
		lang:       cfg.lang,
		stylesheet: cfg.stylesheet,
		theme:      style,
	}, nil
}

// Render serialises node. Text and attribute values are escaped; the HTML
// field is written as is and must already be sanitised.
func (r *Renderer) Render(node *render.Node) (string, error) {
	var buf strings.Builder
	if err := write(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Document renders node inside the page layout.
func (r *Renderer) Document(title string, node *render.Node) (string, error) {
	if r == nil || r.document == nil {
		return "", errors.New("html renderer: layout is nil")
	}

	body, err := r.Render(node)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = r.document.ExecuteWriter(pongo2.Context{
		"title":      title,
		"lang":       r.lang,
		"body":       body,
		"stylesheet": r.stylesheet,
		"theme":      r.theme.name,
		"variant":    r.theme.variant,
		"theme_vars": r.theme.rootVars(),
		"theme_href": r.theme.stylesheet,
	}, &buf)
	if err != nil {
		return "", fmt.Errorf("html renderer: execute layout: %w", err)
	}
	return buf.String(), nil
}

func write(buf *strings.Builder, node *render.Node) error {
	if node == nil {
		return nil
	}

	if node.Tag == "" {
		buf.WriteString(gohtml.EscapeString(node.Text))
		buf.WriteString(node.HTML)
		for _, child := range node.Children {
			if err := write(buf, child); err != nil {
				return err
			}
		}
		return nil
	}

	tag := strings.ToLower(strings.TrimSpace(node.Tag))
	if strings.ContainsAny(tag, " <>\"'/=") {
		return fmt.Errorf("html renderer: invalid tag %q", node.Tag)
	}

	buf.WriteByte('<')
	buf.WriteString(tag)
	if len(node.Classes) > 0 {
		writeAttr(buf, "class", strings.Join(node.Classes, " "))
	}
	names := make([]string, 0, len(node.Attrs))
	for name := range node.Attrs {
		if name == "class" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writeAttr(buf, name, node.Attrs[name])
	}
	buf.WriteByte('>')

	if _, void := voidTags[tag]; void {
		return nil
	}

	buf.WriteString(gohtml.EscapeString(node.Text))
	buf.WriteString(node.HTML)
	for _, child := range node.Children {
		if err := write(buf, child); err != nil {
			return err
		}
	}
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
	return nil
}

func writeAttr(buf *strings.Builder, name, value string) {
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteString(`="`)
	buf.WriteString(gohtml.EscapeString(value))
	buf.WriteByte('"')
}
