package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/printforge/reportform/pkg/engine"
)

var (
	checkSchemaFlag     string
	checkSubmissionFlag string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a submission against a form template",
	Long: `Validates the submission file against the template's schema and
prints every field error in schema order. Exits non-zero when the
submission is invalid, so the command slots into CI pipelines.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkSchemaFlag, "schema", "", "Form template path or URL (required)")
	checkCmd.Flags().StringVar(&checkSubmissionFlag, "submission", "", "Submission file in JSON encoding (required)")
	checkCmd.MarkFlagRequired("schema")
	checkCmd.MarkFlagRequired("submission")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	source, err := resolveSource(checkSchemaFlag)
	if err != nil {
		return err
	}
	sub, err := readSubmission(checkSubmissionFlag)
	if err != nil {
		return err
	}

	result, err := newEngine().Validate(ctx, engine.Request{Source: source}, sub)
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Println("submission is valid")
		return nil
	}
	for _, fieldErr := range result.Errors {
		fmt.Printf("%s: %s\n", fieldErr.Field, fieldErr.Message)
	}
	return fmt.Errorf("submission has %d validation error(s)", len(result.Errors))
}
