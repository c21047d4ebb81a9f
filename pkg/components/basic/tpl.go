package basic

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
)

var placeholderPattern = regexp.MustCompile(`\$\{\s*([^}]*?)\s*\}`)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// Interpolate replaces ${path} references with values resolved from data.
// Unknown paths render as empty strings.
func Interpolate(text string, data map[string]any) string {
	if !strings.Contains(text, "${") {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := placeholderPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return ""
		}
		value, ok := schema.Lookup(data, groups[1])
		if !ok {
			return ""
		}
		return schema.Stringify(value)
	})
}

// RenderTpl renders the "tpl" component. The html property is interpolated
// then sanitized; text (or its tpl alias) is interpolated and escaped by the
// serializer.
func RenderTpl(host render.Host, node schema.Node) (*render.Node, error) {
	tag := node.String("wrapperComponent", "span")
	classes := []string{"Tpl", node.String("className", "")}

	if markup := node.String("html", ""); markup != "" {
		out := render.El(tag, classes)
		out.HTML = SanitizeMarkup(Interpolate(markup, host.Data()))
		return out, nil
	}

	text := node.String("text", node.String("tpl", ""))
	return render.Text(tag, Interpolate(text, host.Data()), classes...), nil
}

// SanitizeMarkup strips anything outside the user generated content policy.
func SanitizeMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(sanitizer().Sanitize(trimmed))
}

func sanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		markupPolicy = policy
	})
	return markupPolicy
}
