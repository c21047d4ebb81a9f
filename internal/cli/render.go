package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagewrap/pkg/orchestrator"
	"github.com/goliatone/go-pagewrap/pkg/renderers/text"
)

type renderOptions struct {
	schema   string
	data     string
	page     int
	format   string
	document bool
	output   string
	plain    bool
}

func newRenderCmd(a *app) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a schema once",
		Example: `  pagewrap render --schema list.yaml --data rows.json
  pagewrap render --schema list.yaml --data rows.json --page 3 --format text`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.newEngine(nil)
			if err != nil {
				return err
			}
			htmlRenderer, err := a.newHTMLRenderer()
			if err != nil {
				return err
			}
			var textOptions []text.Option
			if opts.plain {
				textOptions = append(textOptions, text.WithPlain())
			}

			gen := orchestrator.New(
				orchestrator.WithEngine(e),
				orchestrator.WithHTMLRenderer(htmlRenderer),
				orchestrator.WithTextRenderer(text.New(textOptions...)),
			)
			out, err := gen.Generate(cmd.Context(), orchestrator.Request{
				SchemaPath: opts.schema,
				DataPath:   opts.data,
				Page:       opts.page,
				Format:     opts.format,
				Document:   opts.document,
				Title:      a.cfg.Title,
			})
			if err != nil {
				return err
			}

			if opts.output != "" {
				if err := os.WriteFile(opts.output, out, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				a.logger.Info().Str("path", opts.output).Int("bytes", len(out)).Msg("output written")
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.schema, "schema", "", "schema document (JSON or YAML)")
	flags.StringVar(&opts.data, "data", "", "data document (JSON or YAML)")
	flags.IntVar(&opts.page, "page", 1, "page of the first pager to render")
	flags.StringVar(&opts.format, "format", orchestrator.FormatHTML, "output format (html, text)")
	flags.BoolVar(&opts.document, "document", false, "wrap HTML output in a full page")
	flags.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	flags.BoolVar(&opts.plain, "plain", false, "disable text styling")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
