package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/printforge/reportform"
	"github.com/printforge/reportform/pkg/engine"
	"github.com/printforge/reportform/pkg/schema"
	"github.com/printforge/reportform/pkg/submission"
)

var (
	verbose bool
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "reportform",
	Short: "Render, collect, validate, and assemble structured report forms",
	Long: `reportform drives declarative form templates through the full pipeline:
render them as HTML, collect answers interactively on the terminal,
validate submission files, and assemble forwardable report records.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Operation timeout")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(templatesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func newEngine() *engine.Engine {
	return reportform.NewEngine(engine.WithLogger(logger))
}

// resolveSource accepts a filesystem path or an HTTP(S) URL.
func resolveSource(raw string) (schema.Source, error) {
	target := strings.TrimSpace(raw)
	if target == "" {
		return nil, errors.New("schema path is required")
	}
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return schema.SourceFromURL(target), nil
	}
	return schema.SourceFromFile(target), nil
}

// readSubmission decodes a submission file in the canonical JSON encoding,
// the same shape `reportform collect --format json` emits.
func readSubmission(path string) (submission.Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read submission: %w", err)
	}
	var sub submission.Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, fmt.Errorf("decode submission %s: %w", path, err)
	}
	return sub, nil
}
