package cli

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexglyph/pkg/notation"
	"github.com/matzehuels/hexglyph/pkg/sheet"
)

// sheetCommand creates the contact sheet command.
func (c *CLI) sheetCommand() *cobra.Command {
	var flags drawFlags
	var output string
	var columns, gap int

	cmd := &cobra.Command{
		Use:   "sheet <spec>...",
		Short: "Compose several specs into one contact sheet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSheet(cmd.Context(), args, output, columns, gap, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "sheet.png", "output file")
	cmd.Flags().IntVar(&columns, "columns", 0, "images per row (0 for a square grid)")
	cmd.Flags().IntVar(&gap, "gap", sheet.DefaultGap, "spacing between images in pixels")
	return cmd
}

func (c *CLI) runSheet(ctx context.Context, args []string, output string, columns, gap int, flags drawFlags) error {
	runner, err := c.newRunner(ctx, flags)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	blobs := make([][]byte, 0, len(args))
	for _, arg := range args {
		spec := notation.Normalize(arg, c.config().ReferencePrefix)
		data, _, err := runner.RenderPNG(ctx, spec)
		if err != nil {
			return err
		}
		blobs = append(blobs, data)
	}

	images, err := sheet.Decode(blobs)
	if err != nil {
		return err
	}
	composed, err := sheet.Compose(images, columns, gap)
	if err != nil {
		return err
	}
	if err := writeImage(output, composed); err != nil {
		return err
	}

	printSuccess("Composed %d diagrams", len(images))
	printFile(output)
	return nil
}

func writeImage(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := sheet.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
