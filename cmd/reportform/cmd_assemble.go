package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/printforge/reportform/pkg/engine"
	"github.com/printforge/reportform/pkg/report"
)

var (
	assembleSchemaFlag     string
	assembleSubmissionFlag string
	assemblePreviewFlag    bool
	assembleOutFlag        string
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a submission into a report record",
	Long: `Validates the submission and builds the forwardable markdown report.
Invalid submissions print their field errors and exit non-zero.

Use --preview to render the markdown for the terminal instead of
printing the raw document.`,
	RunE: runAssemble,
}

func init() {
	assembleCmd.Flags().StringVar(&assembleSchemaFlag, "schema", "", "Form template path or URL (required)")
	assembleCmd.Flags().StringVar(&assembleSubmissionFlag, "submission", "", "Submission file in JSON encoding (required)")
	assembleCmd.Flags().BoolVar(&assemblePreviewFlag, "preview", false, "Render the report markdown for the terminal")
	assembleCmd.Flags().StringVar(&assembleOutFlag, "out", "", "Output file (stdout when empty)")
	assembleCmd.MarkFlagRequired("schema")
	assembleCmd.MarkFlagRequired("submission")
}

func runAssemble(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	source, err := resolveSource(assembleSchemaFlag)
	if err != nil {
		return err
	}
	sub, err := readSubmission(assembleSubmissionFlag)
	if err != nil {
		return err
	}

	record, err := newEngine().Assemble(ctx, engine.Request{Source: source}, sub)
	if err != nil {
		var assemblyErr *report.AssemblyError
		if errors.As(err, &assemblyErr) {
			for _, fieldErr := range assemblyErr.Errors {
				fmt.Printf("%s: %s\n", fieldErr.Field, fieldErr.Message)
			}
			return fmt.Errorf("submission has %d validation error(s)", len(assemblyErr.Errors))
		}
		return err
	}

	markdown := fmt.Sprintf("# %s\n\n%s", record.Title, record.Body)

	if assembleOutFlag != "" {
		if err := os.WriteFile(assembleOutFlag, []byte(markdown), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", assembleOutFlag, err)
		}
		logger.Info("report written", zap.String("path", assembleOutFlag), zap.String("id", record.ID))
		return nil
	}

	if assemblePreviewFlag {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		pretty, err := renderer.Render(markdown)
		if err != nil {
			return fmt.Errorf("render preview: %w", err)
		}
		fmt.Print(pretty)
		return nil
	}

	fmt.Print(markdown)
	return nil
}
