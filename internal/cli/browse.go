package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagewrap/internal/browse"
	"github.com/goliatone/go-pagewrap/internal/logging"
	"github.com/goliatone/go-pagewrap/pkg/renderers/text"
	"github.com/goliatone/go-pagewrap/pkg/schema"
)

func newBrowseCmd(a *app) *cobra.Command {
	var schemaPath, dataPath string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through a schema interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, data, err := loadInputs(schemaPath, dataPath)
			if err != nil {
				return err
			}
			e, err := a.newEngine(nil)
			if err != nil {
				return err
			}

			session := &browse.Session{
				Engine:  e,
				Printer: text.New(),
				Driver:  browse.NewSurveyDriver(),
				Root:    root,
				Data:    data,
				Logger:  logging.Component(a.logger, "browse"),
			}
			return session.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "schema document (JSON or YAML)")
	cmd.Flags().StringVar(&dataPath, "data", "", "data document (JSON or YAML)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func loadInputs(schemaPath, dataPath string) (schema.Node, map[string]any, error) {
	root, err := schema.LoadFile(schemaPath)
	if err != nil {
		return schema.Node{}, nil, err
	}
	data := map[string]any{}
	if dataPath != "" {
		if data, err = schema.LoadData(dataPath); err != nil {
			return schema.Node{}, nil, err
		}
	}
	return root, data, nil
}
