// Package text renders trees as plain terminal text, with the pager drawn as
// a single line such as "‹ 1 [2] 3 … 9 ›".
package text

import (
	gohtml "html"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-pagewrap/pkg/components/pager"
	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
	"github.com/goliatone/go-pagewrap/pkg/wrapper"
)

// Palette colours.
const (
	ColorActive = lipgloss.Color("39")
	ColorMuted  = lipgloss.Color("245")
)

var blockTags = map[string]struct{}{
	"div": {}, "p": {}, "section": {}, "article": {}, "ul": {}, "ol": {}, "li": {},
	"form": {}, "table": {}, "tr": {}, "header": {}, "footer": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
}

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithPlain disables styling.
func WithPlain() Option {
	return func(r *Renderer) {
		r.active = lipgloss.NewStyle()
		r.muted = lipgloss.NewStyle()
	}
}

// Renderer turns render trees into lines of text.
type Renderer struct {
	active lipgloss.Style
	muted  lipgloss.Style
}

// New builds a renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{
		active: lipgloss.NewStyle().Foreground(ColorActive).Bold(true),
		muted:  lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Render returns the text form of node. Every component root and block
// element starts a new line.
func (r *Renderer) Render(node *render.Node) string {
	w := &lineWriter{}
	r.walk(w, node)
	w.flush()
	return strings.Join(w.lines, "\n")
}

// Pager renders the pager line for the given props.
func (r *Renderer) Pager(props map[string]any) string {
	last := max(intProp(props, "lastPage", 1), 1)
	active := min(max(intProp(props, "activePage", 1), 1), last)
	maxButtons := intProp(props, "maxButton", pager.DefaultMaxButtons)

	parts := []string{r.arrow("‹", active <= 1)}
	if mode, _ := props["mode"].(string); mode == pager.ModeSimple {
		parts = append(parts, r.active.Render("["+strconv.Itoa(active)+"]"))
	} else {
		for _, page := range pager.Window(active, last, maxButtons) {
			switch page {
			case pager.Ellipsis:
				parts = append(parts, "…")
			case active:
				parts = append(parts, r.active.Render("["+strconv.Itoa(page)+"]"))
			default:
				parts = append(parts, strconv.Itoa(page))
			}
		}
	}
	parts = append(parts, r.arrow("›", active >= last))
	return strings.Join(parts, " ")
}

func (r *Renderer) arrow(symbol string, disabled bool) string {
	if disabled {
		return r.muted.Render(symbol)
	}
	return symbol
}

func (r *Renderer) walk(w *lineWriter, n *render.Node) {
	if n == nil {
		return
	}
	if n.Kind == pager.Kind {
		w.line(r.Pager(n.Props))
		return
	}
	if n.HasClass(wrapper.ClassPlaceholder) {
		w.line(r.muted.Render(n.Text))
		return
	}

	_, block := blockTags[strings.ToLower(n.Tag)]
	block = block || n.Kind != ""
	if block {
		w.flush()
	}
	w.write(n.Text)
	if n.HTML != "" {
		w.write(StripMarkup(n.HTML))
	}
	for _, child := range n.Children {
		r.walk(w, child)
	}
	if block {
		w.flush()
	}
}

// StripMarkup removes every tag from markup and decodes entities.
func StripMarkup(markup string) string {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return gohtml.UnescapeString(stripPolicy.Sanitize(markup))
}

func intProp(props map[string]any, key string, fallback int) int {
	if n, ok := schema.ToInt(props[key]); ok {
		return n
	}
	return fallback
}

type lineWriter struct {
	cur   strings.Builder
	lines []string
}

func (w *lineWriter) write(s string) {
	w.cur.WriteString(s)
}

func (w *lineWriter) line(s string) {
	w.flush()
	w.lines = append(w.lines, s)
}

func (w *lineWriter) flush() {
	if text := strings.TrimSpace(w.cur.String()); text != "" {
		w.lines = append(w.lines, text)
	}
	w.cur.Reset()
}
