package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagewrap/internal/logging"
	"github.com/goliatone/go-pagewrap/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var schemaPath, dataPath, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, data, err := loadInputs(schemaPath, dataPath)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			e, err := a.newEngine(reg)
			if err != nil {
				return err
			}
			documents, err := a.newHTMLRenderer()
			if err != nil {
				return err
			}

			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			srv := server.New(e, documents, root, data,
				server.WithLogger(logging.Component(a.logger, "server")),
				server.WithGatherer(reg),
				server.WithTitle(a.cfg.Title),
				server.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&schemaPath, "schema", "", "schema document (JSON or YAML)")
	flags.StringVar(&dataPath, "data", "", "data document (JSON or YAML)")
	flags.StringVar(&addr, "addr", "", "listen address (defaults to server.addr from the config)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
