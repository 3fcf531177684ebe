package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/printforge/reportform/pkg/engine"
	"github.com/printforge/reportform/pkg/render"
	"github.com/printforge/reportform/pkg/renderers/tui"
)

var (
	collectSchemaFlag string
	collectFormatFlag string
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect a submission interactively",
	Long: `Walks the template's fields as terminal prompts and prints the
collected submission in the selected serialization.

Formats:
  json    canonical submission encoding, accepted by check and assemble
  form    application/x-www-form-urlencoded payload
  pretty  human-friendly summary`,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().StringVar(&collectSchemaFlag, "schema", "", "Form template path or URL (required)")
	collectCmd.Flags().StringVar(&collectFormatFlag, "format", "json", "Output format (json, form, pretty)")
	collectCmd.MarkFlagRequired("schema")
}

func runCollect(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	source, err := resolveSource(collectSchemaFlag)
	if err != nil {
		return err
	}
	format, err := outputFormat(collectFormatFlag)
	if err != nil {
		return err
	}

	eng := newEngine()
	formSchema, err := eng.Schema(ctx, engine.Request{Source: source})
	if err != nil {
		return err
	}

	collector, err := tui.New(tui.WithOutputFormat(format))
	if err != nil {
		return err
	}
	raw, err := collector.Render(ctx, formSchema, render.RenderOptions{})
	if errors.Is(err, tui.ErrAborted) {
		return errors.New("collection aborted")
	}
	if err != nil {
		return err
	}

	fmt.Println(string(raw))
	return nil
}

func outputFormat(raw string) (tui.OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "json":
		return tui.OutputFormatJSON, nil
	case "form":
		return tui.OutputFormatFormURLEncoded, nil
	case "pretty":
		return tui.OutputFormatPrettyText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (json, form, pretty)", raw)
	}
}
