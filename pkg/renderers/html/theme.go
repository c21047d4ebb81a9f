package html

import (
	"fmt"
	"maps"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// StylesheetAsset is the manifest asset key linked from the document head.
const StylesheetAsset = "pagewrap.stylesheet"

// WithTheme applies manifest, with variant layered over its base values.
// Tokens become CSS variables on :root.
func WithTheme(manifest *theme.Manifest, variant string) Option {
	return func(cfg *config) {
		cfg.manifest = manifest
		cfg.variant = variant
		cfg.selector = nil
	}
}

// WithThemeSelector resolves the theme through selector when the renderer is
// built.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.themeName = name
		cfg.variant = variant
		cfg.manifest = nil
	}
}

type themeStyle struct {
	name       string
	variant    string
	vars       map[string]string
	stylesheet string
}

func (cfg config) resolveTheme() (themeStyle, error) {
	manifest, variant := cfg.manifest, cfg.variant
	if cfg.selector != nil {
		selection, err := cfg.selector.Select(cfg.themeName, cfg.variant)
		if err != nil {
			return themeStyle{}, fmt.Errorf("html renderer: select theme %q: %w", cfg.themeName, err)
		}
		if selection == nil {
			return themeStyle{}, nil
		}
		manifest, variant = selection.Manifest, selection.Variant
	}
	if manifest == nil {
		return themeStyle{}, nil
	}

	tokens := maps.Clone(manifest.Tokens)
	if tokens == nil {
		tokens = map[string]string{}
	}
	prefix := manifest.Assets.Prefix
	file := manifest.Assets.Files[StylesheetAsset]
	if v, ok := manifest.Variants[variant]; ok {
		maps.Copy(tokens, v.Tokens)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
		if f := v.Assets.Files[StylesheetAsset]; f != "" {
			file = f
		}
	}

	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars["--"+strings.TrimPrefix(key, "--")] = value
	}
	return themeStyle{
		name:       manifest.Name,
		variant:    variant,
		vars:       vars,
		stylesheet: assetURL(prefix, file),
	}, nil
}

var cssValue = strings.NewReplacer("<", "", ">", "", "{", "", "}", "", ";", "")

// rootVars renders the variables as a :root rule in key order.
func (t themeStyle) rootVars() string {
	if len(t.vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(t.vars))
	for key := range t.vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {")
	for _, key := range keys {
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cssValue.Replace(t.vars[key]))
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}

func assetURL(prefix, file string) string {
	if file == "" {
		return ""
	}
	if prefix == "" {
		return file
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
}
