package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/printforge/reportform/pkg/engine"
)

var (
	renderSchemaFlag   string
	renderRendererFlag string
	renderOutFlag      string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a form template",
	Long: `Loads a form template, builds its schema, and renders it with the
selected renderer (HTML by default).

Example:
  reportform render --schema .github/ISSUE_TEMPLATE/bug_report.yml > form.html`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderSchemaFlag, "schema", "", "Form template path or URL (required)")
	renderCmd.Flags().StringVar(&renderRendererFlag, "renderer", "html", "Renderer to use")
	renderCmd.Flags().StringVar(&renderOutFlag, "out", "", "Output file (stdout when empty)")
	renderCmd.MarkFlagRequired("schema")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	source, err := resolveSource(renderSchemaFlag)
	if err != nil {
		return err
	}

	output, err := newEngine().Render(ctx, engine.Request{
		Source:   source,
		Renderer: renderRendererFlag,
	})
	if err != nil {
		return err
	}

	if renderOutFlag == "" {
		fmt.Println(string(output))
		return nil
	}
	if err := os.WriteFile(renderOutFlag, output, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", renderOutFlag, err)
	}
	logger.Info("form written", zap.String("path", renderOutFlag), zap.Int("bytes", len(output)))
	return nil
}
