// Package config loads the YAML configuration of the pagewrap CLI.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/renderers/html"
	"github.com/goliatone/go-pagewrap/pkg/wrapper"
)

// Config is the CLI configuration file.
type Config struct {
	Locale   string   `yaml:"locale,omitempty"`
	Title    string   `yaml:"title,omitempty"`
	Logging  Logging  `yaml:"logging,omitempty"`
	Wrapper  Wrapper  `yaml:"wrapper,omitempty"`
	Server   Server   `yaml:"server,omitempty"`
	Messages Messages `yaml:"messages,omitempty"`
	Theme    Theme    `yaml:"theme,omitempty"`
}

// Theme describes the page theme: design tokens exposed as CSS variables and
// an optional stylesheet, with named variants layered on top.
type Theme struct {
	Name        string                  `yaml:"name,omitempty"`
	Version     string                  `yaml:"version,omitempty"`
	Variant     string                  `yaml:"variant,omitempty"`
	AssetPrefix string                  `yaml:"asset_prefix,omitempty"`
	Stylesheet  string                  `yaml:"stylesheet,omitempty"`
	Tokens      map[string]string       `yaml:"tokens,omitempty"`
	Variants    map[string]ThemeVariant `yaml:"variants,omitempty"`
}

// ThemeVariant overrides tokens and the stylesheet of the base theme.
type ThemeVariant struct {
	Stylesheet string            `yaml:"stylesheet,omitempty"`
	Tokens     map[string]string `yaml:"tokens,omitempty"`
}

// Logging controls logger construction.
type Logging struct {
	Level string `yaml:"level,omitempty"`
	JSON  bool   `yaml:"json,omitempty"`
}

// Wrapper holds the defaults applied to omitted wrapper properties.
type Wrapper struct {
	// Documented selects the documented maxButtons default instead of the
	// component one.
	Documented bool   `yaml:"documented_defaults,omitempty"`
	MaxButtons int    `yaml:"max_buttons,omitempty"`
	PerPage    int    `yaml:"per_page,omitempty"`
	Position   string `yaml:"position,omitempty"`
}

// Server configures the preview server.
type Server struct {
	Addr         string        `yaml:"addr,omitempty"`
	ReadTimeout  time.Duration `yaml:"read_timeout,omitempty"`
	WriteTimeout time.Duration `yaml:"write_timeout,omitempty"`
}

// Messages maps locale to message key to text.
type Messages map[string]map[string]string

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Locale:  "en",
		Title:   "pagewrap",
		Logging: Logging{Level: "info"},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// Load reads path over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes raw into cfg, keeping values the document omits.
func Parse(raw []byte, cfg *Config) error {
	if cfg == nil {
		return errors.New("config: target is nil")
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("config: decode: %w", err)
	}
	return cfg.Validate()
}

// Validate reports settings the CLI cannot honour.
func (c Config) Validate() error {
	if c.Wrapper.MaxButtons < 0 {
		return fmt.Errorf("config: wrapper.max_buttons must not be negative")
	}
	if c.Wrapper.PerPage < 0 {
		return fmt.Errorf("config: wrapper.per_page must not be negative")
	}
	switch wrapper.Position(strings.ToLower(c.Wrapper.Position)) {
	case "", wrapper.PositionTop, wrapper.PositionBottom, wrapper.PositionNone:
	default:
		return fmt.Errorf("config: wrapper.position %q is not one of top, bottom, none", c.Wrapper.Position)
	}
	if c.Theme.Name == "" && (c.Theme.Variant != "" || len(c.Theme.Tokens) > 0 || c.Theme.Stylesheet != "") {
		return fmt.Errorf("config: theme.name is required when a theme is configured")
	}
	if c.Theme.Variant != "" {
		if _, ok := c.Theme.Variants[c.Theme.Variant]; !ok {
			return fmt.Errorf("config: theme.variant %q is not defined", c.Theme.Variant)
		}
	}
	return nil
}

// ThemeManifest converts the theme section into a manifest, or nil when no
// theme is configured.
func (c Config) ThemeManifest() *theme.Manifest {
	t := c.Theme
	if t.Name == "" {
		return nil
	}
	manifest := &theme.Manifest{
		Name:    t.Name,
		Version: t.Version,
		Tokens:  maps.Clone(t.Tokens),
		Assets:  theme.Assets{Prefix: t.AssetPrefix, Files: map[string]string{}},
	}
	if t.Stylesheet != "" {
		manifest.Assets.Files[html.StylesheetAsset] = t.Stylesheet
	}
	if len(t.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(t.Variants))
		for name, v := range t.Variants {
			variant := theme.Variant{Tokens: maps.Clone(v.Tokens)}
			if v.Stylesheet != "" {
				variant.Assets = theme.Assets{Files: map[string]string{html.StylesheetAsset: v.Stylesheet}}
			}
			manifest.Variants[name] = variant
		}
	}
	return manifest
}

// Defaults resolves the wrapper defaults.
func (c Config) Defaults() wrapper.Defaults {
	d := wrapper.ComponentDefaults()
	if c.Wrapper.Documented {
		d = wrapper.DocumentedDefaults()
	}
	if c.Wrapper.MaxButtons > 0 {
		d.MaxButtons = c.Wrapper.MaxButtons
	}
	if c.Wrapper.PerPage > 0 {
		d.PerPage = c.Wrapper.PerPage
	}
	if c.Wrapper.Position != "" {
		d.Position = wrapper.Position(strings.ToLower(c.Wrapper.Position))
	}
	return d
}

// Catalog returns the built-in messages overlaid with the configured ones.
func (c Config) Catalog() render.Catalog {
	out := make(render.Catalog, len(render.DefaultMessages)+len(c.Messages))
	for locale, messages := range render.DefaultMessages {
		out[locale] = maps.Clone(messages)
	}
	for locale, messages := range c.Messages {
		if out[locale] == nil {
			out[locale] = make(map[string]string, len(messages))
		}
		maps.Copy(out[locale], messages)
	}
	return out
}
