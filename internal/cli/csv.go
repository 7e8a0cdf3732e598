package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexglyph/pkg/errors"
	"github.com/matzehuels/hexglyph/pkg/pipeline"
)

// csvCommand creates the csv batch command.
func (c *CLI) csvCommand() *cobra.Command {
	var flags drawFlags
	var outDir, prefix string

	cmd := &cobra.Command{
		Use:   "csv <file>...",
		Short: "Render every image reference found in CSV files",
		Long: `Scan CSV files for cells like HexstrikeImages/F2Ra.png and render each
referenced spec. Invalid specs are reported and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCSV(cmd.Context(), args, outDir, prefix, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory (default from config, public/images)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "image reference prefix (default from config, HexstrikeImages/)")
	return cmd
}

func (c *CLI) runCSV(ctx context.Context, files []string, outDir, prefix string, flags drawFlags) error {
	cfg := c.config()
	if outDir == "" {
		outDir = cfg.OutDir
	}
	if prefix == "" {
		prefix = cfg.ReferencePrefix
	}

	var specs []string
	for _, name := range files {
		found, err := scanFile(name, prefix)
		if err != nil {
			return err
		}
		loggerFromContext(ctx).Debug("scanned csv", "file", name, "references", len(found))
		specs = append(specs, found...)
	}
	if len(specs) == 0 {
		printWarning("No %s*.png references found", prefix)
		return nil
	}

	runner, err := c.newRunner(ctx, flags)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	done := stopwatch(loggerFromContext(ctx))
	results := runner.RenderBatch(ctx, specs, outDir)
	for _, res := range results {
		switch {
		case res.Skipped:
			printWarning("%s: %s", res.Spec, errors.UserMessage(res.Err))
		case res.Err != nil:
			printError("%s: %s", res.Spec, errors.UserMessage(res.Err))
		default:
			printFile(res.Path)
		}
	}

	sum := pipeline.Summarize(results)
	done("rendered diagrams", "rendered", sum.Rendered, "skipped", sum.Skipped, "failed", sum.Failed)
	if sum.Skipped > 0 {
		printDetail("%d invalid specs skipped", sum.Skipped)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if sum.Failed > 0 {
		return fmt.Errorf("%d specs failed to render", sum.Failed)
	}
	return nil
}

func scanFile(name, prefix string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", name)
	}
	defer f.Close()

	specs, err := pipeline.ScanCSV(f, prefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return specs, nil
}
