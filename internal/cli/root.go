// Package cli implements the pagewrap command tree.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagewrap/internal/config"
	"github.com/goliatone/go-pagewrap/internal/logging"
	"github.com/goliatone/go-pagewrap/internal/metrics"
	"github.com/goliatone/go-pagewrap/pkg/engine"
	"github.com/goliatone/go-pagewrap/pkg/renderers/html"
	"github.com/goliatone/go-pagewrap/pkg/wrapper"
)

// app carries the state resolved from the global flags.
type app struct {
	configPath string
	logLevel   string
	locale     string

	cfg    config.Config
	logger zerolog.Logger
}

// NewRootCmd creates the root command.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "pagewrap",
		Short:         "Render paginated schema documents",
		Long:          "pagewrap renders schema documents containing pagination wrappers as HTML or text, interactively or over HTTP.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.locale, "locale", "", "message locale")

	cmd.AddCommand(
		newRenderCmd(a),
		newBrowseCmd(a),
		newServeCmd(a),
	)
	return cmd
}

// Execute runs the root command and reports the error on stderr.
func Execute(ctx context.Context, version string, args []string, stderr io.Writer) int {
	cmd := NewRootCmd(version)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "pagewrap: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.locale != "" {
		cfg.Locale = a.locale
	}
	a.cfg = cfg
	a.logger = logging.New(logging.Options{
		Level: cfg.Logging.Level,
		JSON:  cfg.Logging.JSON,
		Out:   stderr,
	})
	a.logger.Debug().Str("config", a.configPath).Str("locale", cfg.Locale).Msg("configuration loaded")
	return nil
}

// newEngine builds an engine from the resolved configuration. reg may be nil
// to skip metrics.
func (a *app) newEngine(reg prometheus.Registerer) (*engine.Engine, error) {
	registry, err := engine.NewDefaultRegistry(wrapper.WithDefaults(a.cfg.Defaults()))
	if err != nil {
		return nil, err
	}

	options := []engine.Option{
		engine.WithTranslator(a.cfg.Catalog()),
		engine.WithLocale(a.cfg.Locale),
		engine.WithLogger(logging.Component(a.logger, "engine")),
	}
	if reg != nil {
		collector, err := metrics.New(reg)
		if err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
		options = append(options, engine.WithMetrics(collector))
	}
	return engine.New(registry, options...), nil
}

// newHTMLRenderer builds the HTML renderer with the configured locale and
// theme.
func (a *app) newHTMLRenderer() (*html.Renderer, error) {
	options := []html.Option{html.WithLang(a.cfg.Locale)}
	if manifest := a.cfg.ThemeManifest(); manifest != nil {
		options = append(options, html.WithTheme(manifest, a.cfg.Theme.Variant))
		a.logger.Debug().Str("theme", manifest.Name).Str("variant", a.cfg.Theme.Variant).Msg("theme applied")
	}
	return html.New(options...)
}
