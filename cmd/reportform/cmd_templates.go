package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/printforge/reportform"
	"github.com/printforge/reportform/pkg/engine"
	"github.com/printforge/reportform/pkg/issueform"
	"github.com/printforge/reportform/pkg/model"
	"github.com/printforge/reportform/pkg/schema"
	"github.com/printforge/reportform/pkg/store"
)

var (
	templatesDirFlag      string
	templatesPatternsFlag []string
	templatesWatchFlag    bool
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List form templates",
	Long: `Lists the form templates bundled with the binary and, when --dir is
given, the templates discovered under that directory.

Use --watch to keep the process alive and log reloads as the directory
changes.`,
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().StringVar(&templatesDirFlag, "dir", "", "Template directory to scan")
	templatesCmd.Flags().StringSliceVar(&templatesPatternsFlag, "pattern", nil, "Glob patterns for discovery (doublestar syntax)")
	templatesCmd.Flags().BoolVar(&templatesWatchFlag, "watch", false, "Watch the directory and reload on changes")
}

func runTemplates(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	if err := listEmbedded(ctx); err != nil {
		return err
	}
	if templatesDirFlag == "" {
		return nil
	}
	return listDirectory(ctx)
}

func listEmbedded(ctx context.Context) error {
	entries, err := fs.Glob(issueform.EmbeddedFS(), "*.yml")
	if err != nil {
		return fmt.Errorf("glob embedded templates: %w", err)
	}

	eng := reportform.NewEngine(
		engine.WithLogger(logger),
		engine.WithLoader(reportform.NewLoader(schema.WithFileSystem(issueform.EmbeddedFS()))),
	)

	fmt.Println("embedded templates:")
	for _, entry := range entries {
		formSchema, err := eng.Schema(ctx, engine.Request{Source: schema.SourceFromFS(entry)})
		if err != nil {
			return fmt.Errorf("load embedded template %s: %w", entry, err)
		}
		printTemplate(formSchema, entry)
	}
	return nil
}

func listDirectory(ctx context.Context) error {
	options := []store.Option{
		store.WithEngine(newEngine()),
		store.WithLogger(logger),
	}
	if len(templatesPatternsFlag) > 0 {
		options = append(options, store.WithPatterns(templatesPatternsFlag...))
	}
	st := store.New(templatesDirFlag, options...)

	if err := st.Discover(ctx); err != nil {
		return err
	}

	fmt.Printf("\nform templates (%s):\n", templatesDirFlag)
	if st.Len() == 0 {
		fmt.Println("  none found")
	}
	for _, name := range st.Names() {
		formSchema, ok := st.Get(name)
		if !ok {
			continue
		}
		printTemplate(formSchema, "")
	}

	if !templatesWatchFlag {
		return nil
	}

	watchCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching template directory", zap.String("dir", templatesDirFlag))
	if err := st.Watch(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printTemplate(formSchema model.FormSchema, origin string) {
	title := formSchema.Title
	if title == "" {
		title = "-"
	}
	if origin != "" {
		fmt.Printf("  %-24s %-16s %d field(s)  %s\n", formSchema.Name, title, len(formSchema.InputFields()), origin)
		return
	}
	fmt.Printf("  %-24s %-16s %d field(s)\n", formSchema.Name, title, len(formSchema.InputFields()))
}
