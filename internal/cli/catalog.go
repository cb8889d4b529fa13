package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
	"github.com/spf13/cobra"

	"github.com/mark3labs/petstore-client/internal/emitter/catalog"
	"github.com/mark3labs/petstore-client/internal/spec"
	"github.com/mark3labs/petstore-client/petstore"
)

var catalogRunner = runCatalog

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Export model attribute type maps and operation descriptors",
		Long: "Write the catalog of models and operations as JSON and/or YAML. " +
			"The catalog comes from the generated client, or from the document with --source document.",
		Example: strings.TrimSpace(`  petstore catalog --out ./catalog --format json,yaml
  petstore catalog --source document --input spec.yaml --include-tags pets --dry-run`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), cmd.ErrOrStderr(), cfg.Verbose)
			return catalogRunner(ctx, cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.String("input", "", "Path or URL to the OpenAPI document (embedded document when omitted)")
	flags.String("out", "", "Output directory (default \"catalog\")")
	flags.StringSlice("format", nil, "Formats to write (json|yaml); defaults to json")
	flags.String("source", "", "Where models and operations come from (client|document)")
	flags.StringSlice("include-tags", nil, "Only include operations with these tags (document source)")
	flags.StringSlice("exclude-tags", nil, "Exclude operations with these tags (document source)")
	flags.Duration("timeout", 0, "Timeout for fetching a remote document")
	flags.Bool("dry-run", false, "Preview planned outputs without writing files")
	flags.Bool("force", false, "Overwrite a non-empty output directory")
	return cmd
}

func runCatalog(ctx context.Context, cfg *Config, out io.Writer) error {
	sm, err := loadServiceModel(ctx, cfg)
	if err != nil {
		return err
	}

	c := catalog.Catalog{Title: sm.Title, Version: sm.Version}
	switch cfg.Source {
	case SourceDocument:
		models, err := spec.DeriveModels(sm)
		if err != nil {
			return fmt.Errorf("derive models: %w", err)
		}
		c.Models = models
		c.Operations = spec.DeriveOperations(sm)
	default:
		c.Models = petstore.Models()
		c.Operations = petstore.Operations()
	}

	outDir := cfg.Out
	if outDir == "" {
		outDir = defaultConfig().Out
	}
	absOut := outDir
	if ap, err := filepath.Abs(outDir); err == nil {
		absOut = ap
	}

	res, err := catalog.Emit(ctx, c, catalog.Options{
		OutDir:  outDir,
		Formats: cfg.Formats,
		Force:   cfg.Force,
		DryRun:  cfg.DryRun,
	})
	if err != nil {
		return wrapOutputError(err, absOut)
	}
	svc1log.FromContext(ctx).Debug("Emitted catalog",
		svc1log.SafeParam("source", cfg.Source),
		svc1log.SafeParam("models", len(c.Models)),
		svc1log.SafeParam("operations", len(c.Operations)),
		svc1log.SafeParam("dryRun", cfg.DryRun))

	verb := "Wrote"
	if cfg.DryRun {
		verb = "Planned writes to"
	}
	fmt.Fprintf(out, "%s %s (%d files):\n", verb, absOut, len(res.Planned))
	for _, p := range res.Planned {
		fmt.Fprintf(out, "- %s\n", p.RelPath)
	}
	return nil
}

func wrapOutputError(err error, outDir string) error {
	msg := err.Error()
	lower := strings.ToLower(msg)
	if strings.Contains(lower, "permission") || strings.Contains(lower, "read-only") || strings.Contains(lower, "mkdir") || strings.Contains(lower, "rename") || strings.Contains(lower, "output directory") {
		return newUsageError(fmt.Sprintf("output error for %s: %s\nHint: choose a different --out or use --force when appropriate.", outDir, msg))
	}
	return err
}
