package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexglyph/pkg/errors"
	"github.com/matzehuels/hexglyph/pkg/notation"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags drawFlags
	var outDir string

	cmd := &cobra.Command{
		Use:   "render <spec>...",
		Short: "Render specs to PNG files",
		Long: `Render one or more specs to <output>/<spec>.png.

Specs may be given bare (F2Ra) or as image references
(HexstrikeImages/F2Ra.png); the prefix and extension are stripped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args, outDir, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory (default from config, public/images)")
	return cmd
}

func (c *CLI) runRender(ctx context.Context, args []string, outDir string, flags drawFlags) error {
	cfg := c.config()
	if outDir == "" {
		outDir = cfg.OutDir
	}

	runner, err := c.newRunner(ctx, flags)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	var failed int
	var lastErr error
	for _, arg := range args {
		spec := notation.Normalize(arg, cfg.ReferencePrefix)
		path, err := runner.Render(ctx, spec, outDir)
		if err != nil {
			printError("%s: %s", spec, errors.UserMessage(err))
			failed++
			lastErr = err
			continue
		}
		printFile(path)
	}

	switch {
	case failed == 0:
		return nil
	case len(args) == 1:
		return lastErr
	default:
		return fmt.Errorf("%d of %d specs failed", failed, len(args))
	}
}
